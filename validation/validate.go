package validation

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"openreaction.dev/ordkit/chem"
	"openreaction.dev/ordkit/reaction"
)

// Result holds the findings of one validation run in deterministic order.
type Result struct {
	Findings []Finding
}

// Errors returns the error-severity findings.
func (r *Result) Errors() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			out = append(out, f)
		}
	}
	return out
}

// Warnings returns the warning-severity findings.
func (r *Result) Warnings() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == SeverityWarning {
			out = append(out, f)
		}
	}
	return out
}

// OK reports whether the run produced no error-severity findings.
func (r *Result) OK() bool { return len(r.Errors()) == 0 }

var recordIDRe = regexp.MustCompile(`^ord-[0-9a-f]{32}$`)

// ValidateReaction checks a reaction record against every rule, walking
// submessages depth-first in field order (map keys sorted). The record may be
// modified in place with unambiguous fixes: DateTime values are normalized
// and a derived MOL_BINARY identifier is added to compounds that have a
// parseable structural identifier but no binary one.
//
// In Strict mode the first error-severity finding is returned as a *Error and
// the Result covers only the findings up to that point. In Permissive mode
// the error return is always nil.
func ValidateReaction(r *reaction.Reaction, opts *Options) (*Result, error) {
	v := &validator{opts: opts}
	v.reaction(r)

	res := &Result{Findings: v.findings}
	if opts != nil && opts.Mode == Strict {
		for _, f := range v.findings {
			if f.Severity == SeverityError {
				return res, &Error{RuleID: f.RuleID, Path: f.Path, Message: f.Message}
			}
		}
	}
	return res, nil
}

type validator struct {
	opts     *Options
	findings []Finding
}

func (v *validator) report(sev Severity, ruleID, path, format string, args ...any) {
	if v.opts.disabled(ruleID) {
		return
	}
	v.findings = append(v.findings, Finding{
		Severity: v.opts.severity(ruleID, sev),
		RuleID:   ruleID,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (v *validator) errorf(ruleID, path, format string, args ...any) {
	v.report(SeverityError, ruleID, path, format, args...)
}

func (v *validator) warnf(ruleID, path, format string, args ...any) {
	v.report(SeverityWarning, ruleID, path, format, args...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (v *validator) reaction(r *reaction.Reaction) {
	if len(r.Inputs) == 0 {
		v.errorf(RuleReactionNeedsInput, "inputs", "reactions should have at least 1 reaction input")
	}
	if len(r.Outcomes) == 0 {
		v.errorf(RuleReactionNeedsOutcome, "outcomes", "reactions should have at least 1 reaction outcome")
	}
	if conversionSpecified(r) && !hasLimitingComponent(r) {
		v.errorf(RuleConversionNeedsLimiting, "outcomes",
			"if reaction conversion is specified, at least one reaction input component must be labeled is_limiting")
	}
	if analysisUsesInternalStandard(r) && !hasInternalStandard(r) {
		v.warnf(RuleInternalStandardRequired, "outcomes",
			"reaction analysis uses an internal standard, but no input or workup component has reaction role INTERNAL_STANDARD")
	}

	for i, id := range r.Identifiers {
		v.reactionIdentifier(id, fmt.Sprintf("identifiers.%d", i))
	}
	for _, key := range sortedKeys(r.Inputs) {
		v.reactionInput(r.Inputs[key], "inputs."+key)
	}
	if r.Setup != nil {
		v.reactionSetup(r.Setup, "setup")
	}
	if r.Conditions != nil {
		v.reactionConditions(r.Conditions, "conditions")
	}
	for i, obs := range r.Observations {
		v.observation(obs, fmt.Sprintf("observations.%d", i))
	}
	for i, w := range r.Workups {
		v.workup(w, fmt.Sprintf("workups.%d", i))
	}
	for i, o := range r.Outcomes {
		v.outcome(o, fmt.Sprintf("outcomes.%d", i))
	}
	if r.Provenance != nil {
		v.provenance(r.Provenance, r.ReactionID, "provenance")
	} else if r.ReactionID != "" && !recordIDRe.MatchString(r.ReactionID) {
		v.errorf(RuleRecordIDFormat, "reaction_id", "record ID %q is malformed", r.ReactionID)
	}
}

func conversionSpecified(r *reaction.Reaction) bool {
	for _, o := range r.Outcomes {
		if o.Conversion != nil {
			return true
		}
	}
	return false
}

func hasLimitingComponent(r *reaction.Reaction) bool {
	for _, in := range r.Inputs {
		for _, c := range in.Components {
			if c.IsLimiting != nil && *c.IsLimiting {
				return true
			}
		}
	}
	return false
}

func analysisUsesInternalStandard(r *reaction.Reaction) bool {
	for _, o := range r.Outcomes {
		for _, a := range o.Analyses {
			if a.UsesInternalStandard != nil && *a.UsesInternalStandard {
				return true
			}
		}
	}
	return false
}

func hasInternalStandard(r *reaction.Reaction) bool {
	for _, in := range r.Inputs {
		for _, c := range in.Components {
			if c.Role == reaction.RoleInternalStandard {
				return true
			}
		}
	}
	for _, w := range r.Workups {
		if w.Input == nil {
			continue
		}
		for _, c := range w.Input.Components {
			if c.Role == reaction.RoleInternalStandard {
				return true
			}
		}
	}
	return false
}

func (v *validator) reactionIdentifier(id *reaction.ReactionIdentifier, path string) {
	if id.Type == reaction.ReactionIdentifierCustom && id.Details == "" {
		v.errorf(RuleDetailsRequiredForCustom, path, "custom identifier type requires details")
	}
	if id.Value == "" {
		v.errorf(RuleIdentifierValueRequired, path, "identifier value must be set")
	}
	if id.Type == reaction.ReactionIdentifierReactionSmiles && id.Value != "" {
		if _, _, _, err := chem.SplitReactionSmiles(id.Value); err != nil {
			v.errorf(RuleUnparseableStructure, path, "could not parse reaction SMILES %q", id.Value)
		}
	}
}

func (v *validator) reactionInput(in *reaction.ReactionInput, path string) {
	if len(in.Components) == 0 {
		v.errorf(RuleInputNeedsComponent, path, "reaction inputs must have at least one component")
	}
	for i, c := range in.Components {
		cpath := fmt.Sprintf("%s.components.%d", path, i)
		if c.Amount == nil {
			v.errorf(RuleComponentNeedsAmount, cpath, "reaction input components require an amount")
		}
		v.compound(c, cpath)
	}
	v.timeMsg(in.AdditionTime, path+".addition_time")
	v.timeMsg(in.AdditionDuration, path+".addition_duration")
	v.flowRate(in.FlowRate, path+".flow_rate")
	v.temperature(in.AdditionTemperature, path+".addition_temperature")
}

func (v *validator) compound(c *reaction.Compound, path string) {
	if len(c.Identifiers) == 0 {
		v.errorf(RuleCompoundNeedsIdentifier, path, "compounds must have at least one identifier")
	}

	// Check parseable structural identifiers, remembering the first good
	// molecule so a MOL_BINARY identifier can be derived from it.
	var mol *chem.Mol
	hasBinary := false
	for _, id := range c.Identifiers {
		if id.Type == reaction.CompoundIdentifierMolBinary {
			hasBinary = true
		}
	}
	for i, id := range c.Identifiers {
		ipath := fmt.Sprintf("%s.identifiers.%d", path, i)
		v.compoundIdentifier(id, ipath)
		if id.Type == reaction.CompoundIdentifierSmiles && id.Value != "" {
			m, err := chem.ParseSmiles(id.Value)
			if err != nil {
				v.errorf(RuleUnparseableStructure, ipath, "could not parse SMILES identifier %q", id.Value)
				continue
			}
			if mol == nil {
				mol = m
			}
		}
	}
	if mol != nil && !hasBinary && (v.opts == nil || !v.opts.SkipDerivedIdentifiers) {
		id := c.AddBytesIdentifier(mol.ToBinary(), reaction.CompoundIdentifierMolBinary)
		id.Details = "derived from first parseable structural identifier"
	}

	if c.Amount != nil {
		v.amount(c.Amount, path+".amount")
	}
	for i, p := range c.Preparations {
		if p.Type == reaction.PreparationCustom && p.Details == "" {
			v.errorf(RuleDetailsRequiredForCustom, fmt.Sprintf("%s.preparations.%d", path, i),
				"custom preparation requires details")
		}
	}
	for _, key := range sortedKeys(c.Features) {
		v.data(c.Features[key], path+".features."+key)
	}
}

func (v *validator) compoundIdentifier(id *reaction.CompoundIdentifier, path string) {
	if id.Type == reaction.CompoundIdentifierCustom && id.Details == "" {
		v.errorf(RuleDetailsRequiredForCustom, path, "custom identifier type requires details")
	}
	hasValue := id.Value != ""
	hasBytes := len(id.BytesValue) > 0
	if !hasValue && !hasBytes {
		v.errorf(RuleIdentifierValueRequired, path, "identifier value or bytes_value must be set")
	}
	if hasValue && hasBytes {
		v.errorf(RuleIdentifierValueOneof, path, "identifier must set exactly one of value and bytes_value")
	}
	if id.Type == reaction.CompoundIdentifierMolBinary && hasBytes {
		if _, err := chem.MolFromBinary(id.BytesValue); err != nil {
			v.errorf(RuleUnparseableStructure, path, "could not decode MOL_BINARY identifier: %v", err)
		}
	}
}

func (v *validator) amount(a *reaction.Amount, path string) {
	set := 0
	if a.Mass != nil {
		set++
		v.mass(a.Mass, path+".mass")
	}
	if a.Moles != nil {
		set++
		v.moles(a.Moles, path+".moles")
	}
	if a.Volume != nil {
		set++
		v.volume(a.Volume, path+".volume")
	}
	if a.Concentration != nil {
		set++
		v.concentration(a.Concentration, path+".concentration")
	}
	if set != 1 {
		v.errorf(RuleAmountOneof, path, "amount must set exactly one measurement, got %d", set)
	}
}

func (v *validator) reactionSetup(s *reaction.ReactionSetup, path string) {
	if s.Vessel != nil {
		if s.Vessel.Type == reaction.VesselCustom && s.Vessel.Details == "" {
			v.errorf(RuleDetailsRequiredForCustom, path+".vessel", "custom vessel type requires details")
		}
		v.volume(s.Vessel.Volume, path+".vessel.volume")
	}
	for _, key := range sortedKeys(s.AutomationCode) {
		v.data(s.AutomationCode[key], path+".automation_code."+key)
	}
}

func (v *validator) reactionConditions(c *reaction.ReactionConditions, path string) {
	dynamic := c.ConditionsAreDynamic != nil && *c.ConditionsAreDynamic
	if dynamic && c.Details == "" {
		v.errorf(RuleDynamicConditionsDetails, path,
			"conditions are dynamic, but no details provided to explain how the procedure deviates")
	}
	if c.Details != "" && !dynamic {
		v.warnf(RuleDetailsWithoutDynamic, path,
			"condition details provided but conditions_are_dynamic is unset; set it if the schema cannot capture the conditions")
	}
	if c.Temperature != nil {
		v.temperatureConditions(c.Temperature, path+".temperature")
	}
	if c.Pressure != nil {
		v.pressureConditions(c.Pressure, path+".pressure")
	}
	if c.Stirring != nil {
		v.stirringConditions(c.Stirring, path+".stirring")
	}
	if c.Illumination != nil {
		if c.Illumination.Type == reaction.IlluminationCustom && c.Illumination.Details == "" {
			v.errorf(RuleDetailsRequiredForCustom, path+".illumination", "custom illumination requires details")
		}
		v.wavelength(c.Illumination.PeakWavelength, path+".illumination.peak_wavelength")
	}
	if c.Electrochemistry != nil {
		v.current(c.Electrochemistry.Current, path+".electrochemistry.current")
		v.voltage(c.Electrochemistry.Voltage, path+".electrochemistry.voltage")
	}
	if c.Flow != nil {
		v.length(c.Flow.Tubing, path+".flow.tubing_diameter")
	}
}

func (v *validator) temperatureConditions(tc *reaction.TemperatureConditions, path string) {
	if tc.Control != nil && tc.Control.Type == reaction.TemperatureControlCustom && tc.Control.Details == "" {
		v.errorf(RuleDetailsRequiredForCustom, path+".control", "custom temperature control requires details")
	}
	if tc.Setpoint == nil || tc.Setpoint.Value == nil {
		v.warnf(RuleSetpointRecommended, path+".setpoint",
			"temperature setpoints should be specified; even for ambient conditions, estimate room temperature")
	}
	v.temperature(tc.Setpoint, path+".setpoint")
	for i, m := range tc.Measurements {
		mpath := fmt.Sprintf("%s.measurements.%d", path, i)
		v.timeMsg(m.Time, mpath+".time")
		v.temperature(m.Temperature, mpath+".temperature")
	}
}

func (v *validator) pressureConditions(pc *reaction.PressureConditions, path string) {
	if pc.Atmosphere != nil && pc.Atmosphere.Type == reaction.AtmosphereCustom && pc.Atmosphere.Details == "" {
		v.errorf(RuleDetailsRequiredForCustom, path+".atmosphere", "custom atmosphere requires details")
	}
	v.pressure(pc.Setpoint, path+".setpoint")
}

func (v *validator) stirringConditions(sc *reaction.StirringConditions, path string) {
	if sc.Type == reaction.StirringCustom && sc.Details == "" {
		v.errorf(RuleDetailsRequiredForCustom, path, "custom stirring method requires details")
	}
	if sc.Rate != nil && sc.Rate.RPM < 0 {
		v.errorf(RuleRPMNonNegative, path+".rate.rpm", "stirring rate rpm must be non-negative")
	}
}

func (v *validator) observation(o *reaction.ReactionObservation, path string) {
	v.timeMsg(o.Time, path+".time")
	if o.Image != nil {
		v.data(o.Image, path+".image")
	}
}

func (v *validator) workup(w *reaction.ReactionWorkup, path string) {
	if w.Type == reaction.WorkupCustom && w.Details == "" {
		v.errorf(RuleDetailsRequiredForCustom, path, "custom workup type requires details")
	}
	if w.Type == reaction.WorkupWait && (w.Duration == nil || w.Duration.Value == nil) {
		v.errorf(RuleWorkupWaitDuration, path, "WAIT workup steps require a defined duration")
	}
	if w.Type == reaction.WorkupTemperature && w.Temperature == nil {
		v.errorf(RuleWorkupTemperature, path, "TEMPERATURE workup steps require defined temperature conditions")
	}
	if (w.Type == reaction.WorkupExtraction || w.Type == reaction.WorkupFiltration) && w.KeepPhase == "" {
		v.errorf(RuleWorkupKeepPhase, path, "EXTRACTION and FILTRATION workup steps require keep_phase")
	}
	switch w.Type {
	case reaction.WorkupAddition, reaction.WorkupWash, reaction.WorkupDryWithMaterial,
		reaction.WorkupScavenging, reaction.WorkupDissolution, reaction.WorkupPHAdjust:
		if w.Input == nil || len(w.Input.Components) == 0 {
			v.errorf(RuleWorkupInputRequired, path, "workup step %s requires an input definition", w.Type)
		}
	}
	if w.Type == reaction.WorkupStirring && w.Stirring == nil {
		v.errorf(RuleWorkupStirring, path, "STIRRING workup step requires a stirring definition")
	}
	if w.Type == reaction.WorkupPHAdjust && w.TargetPH == nil {
		v.errorf(RuleWorkupTargetPH, path, "PH_ADJUST workup requires a target pH")
	}

	v.timeMsg(w.Duration, path+".duration")
	if w.Input != nil {
		v.reactionInput(w.Input, path+".input")
	}
	if w.Amount != nil {
		v.amount(w.Amount, path+".amount")
	}
	if w.Temperature != nil {
		v.temperatureConditions(w.Temperature, path+".temperature")
	}
	if w.Stirring != nil {
		v.stirringConditions(w.Stirring, path+".stirring")
	}
}

func (v *validator) outcome(o *reaction.ReactionOutcome, path string) {
	desired := 0
	for _, p := range o.Products {
		if p.IsDesiredProduct != nil && *p.IsDesiredProduct {
			desired++
		}
	}
	if desired > 1 {
		v.errorf(RuleSingleDesiredProduct, path, "cannot have more than one desired product")
	}
	if len(o.Products) == 0 && o.Conversion == nil {
		v.errorf(RuleOutcomeNeedsResult, path, "outcome must specify products or conversion")
	}

	v.timeMsg(o.ReactionTime, path+".reaction_time")
	v.percentage(o.Conversion, path+".conversion")

	for i, p := range o.Products {
		ppath := fmt.Sprintf("%s.products.%d", path, i)
		v.product(p, o, ppath)
	}
	for _, key := range sortedKeys(o.Analyses) {
		v.analysis(o.Analyses[key], path+".analyses."+key)
	}
}

func (v *validator) product(p *reaction.ReactionProduct, o *reaction.ReactionOutcome, path string) {
	refs := []struct {
		field string
		keys  []string
	}{
		{"analysis_identity", p.AnalysisIdentity},
		{"analysis_yield", p.AnalysisYield},
		{"analysis_purity", p.AnalysisPurity},
		{"analysis_selectivity", p.AnalysisSelectivity},
	}
	for _, ref := range refs {
		for _, key := range ref.keys {
			if _, ok := o.Analyses[key]; !ok {
				v.errorf(RuleUndefinedAnalysisKey, path+"."+ref.field, "undefined analysis key %q", key)
			}
		}
	}

	if p.Compound != nil {
		v.compound(p.Compound, path+".compound")
	}
	v.percentage(p.CompoundYield, path+".compound_yield")
	v.percentage(p.Purity, path+".purity")
	if p.Selectivity != nil {
		v.selectivity(p.Selectivity, path+".selectivity")
	}
}

func (v *validator) selectivity(s *reaction.Selectivity, path string) {
	if s.Type == reaction.SelectivityCustom && s.Details == "" {
		v.errorf(RuleDetailsRequiredForCustom, path, "custom selectivity type requires details")
	}
	if s.Precision != nil && *s.Precision < 0 {
		v.errorf(RulePrecisionNonNegative, path+".precision", "selectivity precision must be non-negative")
	}
	if s.Type == reaction.SelectivityEE && s.Value != nil {
		if *s.Value < 0 || *s.Value > 100 {
			v.errorf(RuleSelectivityEERange, path+".value", "EE selectivity must be between 0 and 100")
		}
		if *s.Value > 0 && *s.Value < 1 {
			v.warnf(RuleSelectivityEEFraction, path+".value",
				"EE selectivity values are 0-100, not fractions (%g used)", *s.Value)
		}
	}
}

func (v *validator) analysis(a *reaction.ReactionAnalysis, path string) {
	if a.Type == reaction.AnalysisCustom && a.Details == "" {
		v.errorf(RuleDetailsRequiredForCustom, path, "custom analysis type requires details")
	}
	for _, key := range sortedKeys(a.Data) {
		v.data(a.Data[key], path+".data."+key)
	}
	v.dateTime(a.InstrumentLastCalibrated, path+".instrument_last_calibrated")
}

func (v *validator) provenance(p *reaction.ReactionProvenance, recordID, path string) {
	if p.RecordCreated == nil {
		v.errorf(RuleRecordCreatedRequired, path, "reactions must have record_created defined")
	}

	var start, created, modified time.Time
	if t, err := parseDateTime(p.ExperimentStart); err == nil {
		start = t
	}
	v.dateTime(p.ExperimentStart, path+".experiment_start")

	if p.RecordCreated != nil {
		v.recordEvent(p.RecordCreated, path+".record_created")
		if t, err := parseDateTime(p.RecordCreated.Time); err == nil {
			created = t
		}
	}
	for i, ev := range p.RecordModified {
		epath := fmt.Sprintf("%s.record_modified.%d", path, i)
		v.recordEvent(ev, epath)
		// The last entry is the most recent modification.
		if t, err := parseDateTime(ev.Time); err == nil {
			modified = t
		}
	}

	if !start.IsZero() && !created.IsZero() && created.Before(start) {
		v.errorf(RuleCreatedAfterStart, path, "record creation time should be after the experiment start")
	}
	if !modified.IsZero() && !created.IsZero() && modified.Before(created) {
		v.errorf(RuleModifiedAfterCreated, path, "record modified time should be after creation")
	}

	if p.Experimenter != nil {
		v.person(p.Experimenter, path+".experimenter")
	}
	if recordID != "" && !recordIDRe.MatchString(recordID) {
		v.errorf(RuleRecordIDFormat, "reaction_id", "record ID %q is malformed", recordID)
	}
}

func (v *validator) recordEvent(ev *reaction.RecordEvent, path string) {
	if ev.Time == nil || ev.Time.Value == "" {
		v.errorf(RuleRecordEventTime, path, "record events must have a time")
	} else {
		v.dateTime(ev.Time, path+".time")
	}
	if ev.Person != nil {
		v.person(ev.Person, path+".person")
	}
}

func (v *validator) person(p *reaction.Person, path string) {
	if p.ORCID != "" && !reaction.ValidORCID(p.ORCID) {
		v.errorf(RuleORCIDFormat, path+".orcid", "invalid ORCID %q: enter as 0000-0000-0000-0000", p.ORCID)
	}
}

func parseDateTime(d *reaction.DateTime) (time.Time, error) {
	if d == nil || d.Value == "" {
		return time.Time{}, fmt.Errorf("empty")
	}
	return d.Parse()
}

// dateTime validates and normalizes a timestamp in place.
func (v *validator) dateTime(d *reaction.DateTime, path string) {
	if d == nil || d.Value == "" {
		return
	}
	if _, err := d.Parse(); err != nil {
		v.errorf(RuleDateTimeFormat, path, "could not parse DateTime string %q", d.Value)
		return
	}
	d.Normalize()
}

func (v *validator) data(d *reaction.Data, path string) {
	set := 0
	if d.FloatValue != nil {
		set++
	}
	if d.IntegerValue != nil {
		set++
	}
	if len(d.BytesValue) > 0 {
		set++
	}
	if d.StringValue != nil {
		set++
	}
	if d.URL != nil {
		set++
	}
	if set != 1 {
		v.errorf(RuleDataOneof, path, "data requires exactly one of float, integer, bytes, string, url")
	}
	if len(d.BytesValue) > 0 && d.Format == "" {
		v.errorf(RuleDataFormatRequired, path, "data format is required for bytes_value")
	}
}

// measurement applies the shared value/precision/units rules.
func (v *validator) measurement(path string, value, precision *float64, unitsSet bool) {
	if value != nil && *value < 0 {
		v.errorf(RuleValueNonNegative, path+".value", "value must be non-negative")
	}
	if precision != nil && *precision < 0 {
		v.errorf(RulePrecisionNonNegative, path+".precision", "precision must be non-negative")
	}
	if value != nil && !unitsSet {
		v.errorf(RuleUnitsRequired, path+".units", "units must be specified when a value is defined")
	}
}

func (v *validator) timeMsg(m *reaction.Time, path string) {
	if m == nil {
		return
	}
	v.measurement(path, m.Value, m.Precision, m.Units != reaction.TimeUnitUnspecified)
}

func (v *validator) mass(m *reaction.Mass, path string) {
	if m == nil {
		return
	}
	v.measurement(path, m.Value, m.Precision, m.Units != reaction.MassUnitUnspecified)
}

func (v *validator) moles(m *reaction.Moles, path string) {
	if m == nil {
		return
	}
	v.measurement(path, m.Value, m.Precision, m.Units != reaction.MolesUnitUnspecified)
}

func (v *validator) volume(m *reaction.Volume, path string) {
	if m == nil {
		return
	}
	v.measurement(path, m.Value, m.Precision, m.Units != reaction.VolumeUnitUnspecified)
}

func (v *validator) concentration(m *reaction.Concentration, path string) {
	if m == nil {
		return
	}
	v.measurement(path, m.Value, m.Precision, m.Units != reaction.ConcentrationUnitUnspecified)
}

func (v *validator) pressure(m *reaction.Pressure, path string) {
	if m == nil {
		return
	}
	v.measurement(path, m.Value, m.Precision, m.Units != reaction.PressureUnitUnspecified)
}

// temperature applies per-unit lower bounds instead of plain non-negativity.
func (v *validator) temperature(m *reaction.Temperature, path string) {
	if m == nil {
		return
	}
	if m.Value != nil {
		var min float64
		switch m.Units {
		case reaction.TemperatureUnitCelsius:
			min = -273.15
		case reaction.TemperatureUnitFahrenheit:
			min = -459
		case reaction.TemperatureUnitKelvin:
			min = 0
		default:
			min = -273.15
		}
		if *m.Value < min {
			v.errorf(RuleTemperatureBound, path+".value",
				"temperature %g %s is below the physical minimum %g", *m.Value, m.Units, min)
		}
		if m.Units == reaction.TemperatureUnitUnspecified {
			v.errorf(RuleUnitsRequired, path+".units", "units must be specified when a value is defined")
		}
	}
	if m.Precision != nil && *m.Precision < 0 {
		v.errorf(RulePrecisionNonNegative, path+".precision", "precision must be non-negative")
	}
}

func (v *validator) current(m *reaction.Current, path string) {
	if m == nil {
		return
	}
	v.measurement(path, m.Value, m.Precision, m.Units != reaction.CurrentUnitUnspecified)
}

func (v *validator) voltage(m *reaction.Voltage, path string) {
	if m == nil {
		return
	}
	v.measurement(path, m.Value, m.Precision, m.Units != reaction.VoltageUnitUnspecified)
}

func (v *validator) length(m *reaction.Length, path string) {
	if m == nil {
		return
	}
	v.measurement(path, m.Value, m.Precision, m.Units != reaction.LengthUnitUnspecified)
}

func (v *validator) wavelength(m *reaction.Wavelength, path string) {
	if m == nil {
		return
	}
	v.measurement(path, m.Value, m.Precision, m.Units != reaction.WavelengthUnitUnspecified)
}

func (v *validator) flowRate(m *reaction.FlowRate, path string) {
	if m == nil {
		return
	}
	v.measurement(path, m.Value, m.Precision, m.Units != reaction.FlowRateUnitUnspecified)
}

// percentage values live in [0, 105]; a generous upper bound for overreported
// yields. Values strictly inside (0, 1) look like fractions and warn.
func (v *validator) percentage(m *reaction.Percentage, path string) {
	if m == nil {
		return
	}
	if m.Value != nil {
		if *m.Value > 0 && *m.Value < 1 {
			v.warnf(RulePercentageFraction, path+".value",
				"percentage values are 0-100, not fractions (%g used)", *m.Value)
		}
		if *m.Value < 0 || *m.Value > 105 {
			v.errorf(RulePercentageRange, path+".value", "percentage must be between 0 and 105")
		}
	}
	if m.Precision != nil && *m.Precision < 0 {
		v.errorf(RulePrecisionNonNegative, path+".precision", "precision must be non-negative")
	}
}
