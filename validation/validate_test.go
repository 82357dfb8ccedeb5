package validation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"openreaction.dev/ordkit/chem"
	"openreaction.dev/ordkit/reaction"
)

// validReaction builds the smallest record that passes every error-severity
// rule.
func validReaction(t *testing.T) *reaction.Reaction {
	t.Helper()
	r := &reaction.Reaction{}
	in := r.AddInput("ethanol")
	c := in.AddComponent()
	c.AddIdentifier("CCO", reaction.CompoundIdentifierSmiles)
	c.Amount = &reaction.Amount{
		Volume: &reaction.Volume{
			Value: reaction.Float64(5),
			Units: reaction.VolumeUnitMilliliter,
		},
	}
	out := r.AddOutcome()
	p := out.AddProduct()
	p.Compound = &reaction.Compound{}
	p.Compound.AddIdentifier("CC=O", reaction.CompoundIdentifierSmiles)
	return r
}

func findingIDs(res *Result) []string {
	var ids []string
	for _, f := range res.Findings {
		ids = append(ids, f.RuleID)
	}
	return ids
}

func hasRule(res *Result, ruleID string) bool {
	for _, f := range res.Findings {
		if f.RuleID == ruleID {
			return true
		}
	}
	return false
}

func TestValidateReaction_Valid(t *testing.T) {
	res, err := ValidateReaction(validReaction(t), nil)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !res.OK() {
		t.Errorf("expected no errors, got %v", res.Errors())
	}
}

func TestValidateReaction_MissingInputsAndOutcomes(t *testing.T) {
	res, err := ValidateReaction(&reaction.Reaction{}, nil)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !hasRule(res, RuleReactionNeedsInput) {
		t.Error("expected missing-input finding")
	}
	if !hasRule(res, RuleReactionNeedsOutcome) {
		t.Error("expected missing-outcome finding")
	}
}

func TestValidateReaction_StrictReturnsError(t *testing.T) {
	_, err := ValidateReaction(&reaction.Reaction{}, &Options{Mode: Strict})
	if err == nil {
		t.Fatal("expected error in strict mode")
	}
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if verr.RuleID != RuleReactionNeedsInput {
		t.Errorf("expected first finding %s, got %s", RuleReactionNeedsInput, verr.RuleID)
	}
	if RuleID(err) != RuleReactionNeedsInput {
		t.Errorf("RuleID helper: got %q", RuleID(err))
	}
}

func TestValidateReaction_ConversionNeedsLimiting(t *testing.T) {
	r := validReaction(t)
	r.Outcomes[0].Conversion = &reaction.Percentage{Value: reaction.Float64(85)}
	res, _ := ValidateReaction(r, nil)
	if !hasRule(res, RuleConversionNeedsLimiting) {
		t.Error("expected conversion-needs-limiting finding")
	}

	r2 := validReaction(t)
	r2.Outcomes[0].Conversion = &reaction.Percentage{Value: reaction.Float64(85)}
	r2.Inputs["ethanol"].Components[0].IsLimiting = reaction.Bool(true)
	res, _ = ValidateReaction(r2, nil)
	if hasRule(res, RuleConversionNeedsLimiting) {
		t.Error("limiting component set; rule must not fire")
	}
}

func TestValidateReaction_InternalStandard(t *testing.T) {
	withStandardAnalysis := func() *reaction.Reaction {
		r := validReaction(t)
		a := r.Outcomes[0].AddAnalysis("gc")
		a.Type = reaction.AnalysisGC
		a.UsesInternalStandard = reaction.Bool(true)
		return r
	}

	r := withStandardAnalysis()
	res, _ := ValidateReaction(r, nil)
	if !hasRule(res, RuleInternalStandardRequired) {
		t.Error("expected internal-standard finding")
	}
	if !res.OK() {
		t.Errorf("internal-standard should be a warning, got errors %v", res.Errors())
	}

	// An input component with the INTERNAL_STANDARD role satisfies the rule.
	r = withStandardAnalysis()
	std := r.Inputs["ethanol"].AddComponent()
	std.AddIdentifier("c1ccccc1", reaction.CompoundIdentifierSmiles)
	std.Role = reaction.RoleInternalStandard
	std.Amount = &reaction.Amount{
		Moles: &reaction.Moles{Value: reaction.Float64(0.1), Units: reaction.MolesUnitMillimole},
	}
	res, _ = ValidateReaction(r, nil)
	if hasRule(res, RuleInternalStandardRequired) {
		t.Error("input internal standard present; rule must not fire")
	}

	// A workup component with the role satisfies it too.
	r = withStandardAnalysis()
	wIn := &reaction.ReactionInput{}
	wc := wIn.AddComponent()
	wc.AddIdentifier("c1ccccc1", reaction.CompoundIdentifierSmiles)
	wc.Role = reaction.RoleInternalStandard
	wc.Amount = &reaction.Amount{
		Moles: &reaction.Moles{Value: reaction.Float64(0.1), Units: reaction.MolesUnitMillimole},
	}
	r.Workups = []*reaction.ReactionWorkup{{Type: reaction.WorkupAddition, Input: wIn}}
	res, _ = ValidateReaction(r, nil)
	if hasRule(res, RuleInternalStandardRequired) {
		t.Error("workup internal standard present; rule must not fire")
	}

	// Analyses that do not use an internal standard never trigger it.
	r = validReaction(t)
	r.Outcomes[0].AddAnalysis("gc").Type = reaction.AnalysisGC
	res, _ = ValidateReaction(r, nil)
	if hasRule(res, RuleInternalStandardRequired) {
		t.Error("no analysis uses an internal standard; rule must not fire")
	}
}

func TestValidateReaction_BadSmiles(t *testing.T) {
	r := validReaction(t)
	r.Inputs["ethanol"].Components[0].Identifiers[0].Value = "C(("
	res, _ := ValidateReaction(r, nil)
	if !hasRule(res, RuleUnparseableStructure) {
		t.Error("expected unparseable-structure finding")
	}
}

func TestValidateReaction_DerivesMolBinary(t *testing.T) {
	r := validReaction(t)
	res, err := ValidateReaction(r, nil)
	if err != nil || !res.OK() {
		t.Fatalf("validate: %v %v", err, res.Errors())
	}

	ids := r.Inputs["ethanol"].Components[0].Identifiers
	if len(ids) != 2 {
		t.Fatalf("expected derived identifier, got %d identifiers", len(ids))
	}
	derived := ids[1]
	if derived.Type != reaction.CompoundIdentifierMolBinary {
		t.Fatalf("expected MOL_BINARY, got %v", derived.Type)
	}
	mol, err := chem.MolFromBinary(derived.BytesValue)
	if err != nil {
		t.Fatalf("decode derived binary: %v", err)
	}
	want, _ := chem.Canonicalize("CCO")
	if mol.CanonicalSmiles() != want {
		t.Errorf("derived molecule mismatch: %q != %q", mol.CanonicalSmiles(), want)
	}

	// A second run must not add another one.
	if _, err := ValidateReaction(r, nil); err != nil {
		t.Fatalf("revalidate: %v", err)
	}
	if n := len(r.Inputs["ethanol"].Components[0].Identifiers); n != 2 {
		t.Errorf("expected derivation to be idempotent, got %d identifiers", n)
	}
}

func TestValidateReaction_SkipDerivedIdentifiers(t *testing.T) {
	r := validReaction(t)
	if _, err := ValidateReaction(r, &Options{SkipDerivedIdentifiers: true}); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if n := len(r.Inputs["ethanol"].Components[0].Identifiers); n != 1 {
		t.Errorf("expected no derived identifier, got %d", n)
	}
}

func TestValidateReaction_IdentifierOneof(t *testing.T) {
	r := validReaction(t)
	c := r.Inputs["ethanol"].Components[0]
	c.Identifiers[0].BytesValue = []byte{1}
	res, _ := ValidateReaction(r, nil)
	if !hasRule(res, RuleIdentifierValueOneof) {
		t.Error("expected value/bytes oneof finding")
	}

	r = validReaction(t)
	c = r.Inputs["ethanol"].Components[0]
	c.Identifiers[0].Value = ""
	res, _ = ValidateReaction(r, nil)
	if !hasRule(res, RuleIdentifierValueRequired) {
		t.Error("expected value-required finding")
	}
}

func TestValidateReaction_AmountOneof(t *testing.T) {
	r := validReaction(t)
	a := r.Inputs["ethanol"].Components[0].Amount
	a.Moles = &reaction.Moles{Value: reaction.Float64(1), Units: reaction.MolesUnitMillimole}
	res, _ := ValidateReaction(r, nil)
	if !hasRule(res, RuleAmountOneof) {
		t.Error("expected amount oneof finding")
	}
}

func TestValidateReaction_Measurements(t *testing.T) {
	r := validReaction(t)
	vol := r.Inputs["ethanol"].Components[0].Amount.Volume
	vol.Value = reaction.Float64(-1)
	vol.Precision = reaction.Float64(-0.5)
	res, _ := ValidateReaction(r, nil)
	if !hasRule(res, RuleValueNonNegative) || !hasRule(res, RulePrecisionNonNegative) {
		t.Errorf("expected non-negativity findings, got %v", findingIDs(res))
	}

	r = validReaction(t)
	r.Inputs["ethanol"].Components[0].Amount.Volume.Units = reaction.VolumeUnitUnspecified
	res, _ = ValidateReaction(r, nil)
	if !hasRule(res, RuleUnitsRequired) {
		t.Error("expected units-required finding")
	}
}

func TestValidateReaction_TemperatureBounds(t *testing.T) {
	cases := []struct {
		units reaction.TemperatureUnit
		value float64
		bad   bool
	}{
		{reaction.TemperatureUnitCelsius, -273.15, false},
		{reaction.TemperatureUnitCelsius, -300, true},
		{reaction.TemperatureUnitFahrenheit, -459, false},
		{reaction.TemperatureUnitFahrenheit, -460, true},
		{reaction.TemperatureUnitKelvin, 0, false},
		{reaction.TemperatureUnitKelvin, -1, true},
	}
	for _, c := range cases {
		r := validReaction(t)
		r.Conditions = &reaction.ReactionConditions{
			Temperature: &reaction.TemperatureConditions{
				Setpoint: &reaction.Temperature{
					Value: reaction.Float64(c.value),
					Units: c.units,
				},
			},
		}
		res, _ := ValidateReaction(r, nil)
		if got := hasRule(res, RuleTemperatureBound); got != c.bad {
			t.Errorf("temperature %g %v: bound finding = %v, want %v", c.value, c.units, got, c.bad)
		}
	}
}

func TestValidateReaction_PercentageRules(t *testing.T) {
	r := validReaction(t)
	r.Outcomes[0].Products[0].CompoundYield = &reaction.Percentage{Value: reaction.Float64(0.8)}
	res, _ := ValidateReaction(r, nil)
	if !hasRule(res, RulePercentageFraction) {
		t.Error("expected fraction warning")
	}
	if !res.OK() {
		t.Errorf("fraction should be a warning, got errors %v", res.Errors())
	}

	r = validReaction(t)
	r.Outcomes[0].Products[0].CompoundYield = &reaction.Percentage{Value: reaction.Float64(150)}
	res, _ = ValidateReaction(r, nil)
	if !hasRule(res, RulePercentageRange) {
		t.Error("expected range finding")
	}
}

func TestValidateReaction_Workups(t *testing.T) {
	r := validReaction(t)
	r.Workups = []*reaction.ReactionWorkup{
		{Type: reaction.WorkupWait},
		{Type: reaction.WorkupTemperature},
		{Type: reaction.WorkupExtraction},
		{Type: reaction.WorkupStirring},
		{Type: reaction.WorkupPHAdjust},
	}
	res, _ := ValidateReaction(r, nil)
	for _, want := range []string{
		RuleWorkupWaitDuration,
		RuleWorkupTemperature,
		RuleWorkupKeepPhase,
		RuleWorkupStirring,
		RuleWorkupTargetPH,
		RuleWorkupInputRequired,
	} {
		if !hasRule(res, want) {
			t.Errorf("expected %s finding, got %v", want, findingIDs(res))
		}
	}
}

func TestValidateReaction_Outcome(t *testing.T) {
	r := validReaction(t)
	out := r.Outcomes[0]
	out.Products[0].IsDesiredProduct = reaction.Bool(true)
	p2 := out.AddProduct()
	p2.IsDesiredProduct = reaction.Bool(true)
	res, _ := ValidateReaction(r, nil)
	if !hasRule(res, RuleSingleDesiredProduct) {
		t.Error("expected single-desired-product finding")
	}

	r = validReaction(t)
	r.Outcomes[0].Products[0].AnalysisYield = []string{"missing-key"}
	res, _ = ValidateReaction(r, nil)
	if !hasRule(res, RuleUndefinedAnalysisKey) {
		t.Error("expected undefined-analysis-key finding")
	}

	r = validReaction(t)
	r.Outcomes[0].Products[0].AnalysisYield = []string{"gc"}
	r.Outcomes[0].AddAnalysis("gc").Type = reaction.AnalysisGC
	res, _ = ValidateReaction(r, nil)
	if hasRule(res, RuleUndefinedAnalysisKey) {
		t.Error("defined key must not fire")
	}

	r = validReaction(t)
	r.Outcomes[0].Products = nil
	res, _ = ValidateReaction(r, nil)
	if !hasRule(res, RuleOutcomeNeedsResult) {
		t.Error("expected products-or-conversion finding")
	}
}

func TestValidateReaction_Selectivity(t *testing.T) {
	r := validReaction(t)
	r.Outcomes[0].Products[0].Selectivity = &reaction.Selectivity{
		Type:  reaction.SelectivityEE,
		Value: reaction.Float64(120),
	}
	res, _ := ValidateReaction(r, nil)
	if !hasRule(res, RuleSelectivityEERange) {
		t.Error("expected EE range finding")
	}

	r = validReaction(t)
	r.Outcomes[0].Products[0].Selectivity = &reaction.Selectivity{
		Type:  reaction.SelectivityEE,
		Value: reaction.Float64(0.95),
	}
	res, _ = ValidateReaction(r, nil)
	if !hasRule(res, RuleSelectivityEEFraction) {
		t.Error("expected EE fraction warning")
	}
}

func TestValidateReaction_Provenance(t *testing.T) {
	r := validReaction(t)
	r.Provenance = &reaction.ReactionProvenance{
		ExperimentStart: &reaction.DateTime{Value: "2024-05-02"},
		RecordCreated: &reaction.RecordEvent{
			Time: &reaction.DateTime{Value: "2024-05-01"},
		},
	}
	res, _ := ValidateReaction(r, nil)
	if !hasRule(res, RuleCreatedAfterStart) {
		t.Error("expected created-after-start finding")
	}

	r = validReaction(t)
	r.Provenance = &reaction.ReactionProvenance{
		RecordCreated: &reaction.RecordEvent{
			Time: &reaction.DateTime{Value: "2024-05-01"},
		},
		RecordModified: []*reaction.RecordEvent{
			{Time: &reaction.DateTime{Value: "2024-04-01"}},
		},
	}
	res, _ = ValidateReaction(r, nil)
	if !hasRule(res, RuleModifiedAfterCreated) {
		t.Error("expected modified-after-created finding")
	}

	r = validReaction(t)
	r.Provenance = &reaction.ReactionProvenance{}
	res, _ = ValidateReaction(r, nil)
	if !hasRule(res, RuleRecordCreatedRequired) {
		t.Error("expected record-created-required finding")
	}

	r = validReaction(t)
	r.Provenance = &reaction.ReactionProvenance{
		Experimenter:  &reaction.Person{ORCID: "not-an-orcid"},
		RecordCreated: &reaction.RecordEvent{Time: &reaction.DateTime{Value: "2024-05-01"}},
	}
	res, _ = ValidateReaction(r, nil)
	if !hasRule(res, RuleORCIDFormat) {
		t.Error("expected ORCID finding")
	}
}

func TestValidateReaction_RecordIDFormat(t *testing.T) {
	r := validReaction(t)
	r.ReactionID = "ord-0123456789abcdef0123456789abcdef"
	res, _ := ValidateReaction(r, nil)
	if hasRule(res, RuleRecordIDFormat) {
		t.Error("well-formed record ID must not fire")
	}

	r.ReactionID = "ord-XYZ"
	res, _ = ValidateReaction(r, nil)
	if !hasRule(res, RuleRecordIDFormat) {
		t.Error("expected malformed record ID finding")
	}
}

func TestValidateReaction_DateTimeNormalized(t *testing.T) {
	r := validReaction(t)
	r.Provenance = &reaction.ReactionProvenance{
		RecordCreated: &reaction.RecordEvent{
			Time: &reaction.DateTime{Value: "2024-05-01 13:30"},
		},
	}
	if _, err := ValidateReaction(r, nil); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got := r.Provenance.RecordCreated.Time.Value; got != "2024-05-01T13:30:00Z" {
		t.Errorf("expected normalized timestamp, got %q", got)
	}
}

func TestValidateReaction_Data(t *testing.T) {
	r := validReaction(t)
	r.Inputs["ethanol"].Components[0].Features = map[string]*reaction.Data{
		"empty": {},
		"image": {BytesValue: []byte{1, 2}},
	}
	res, _ := ValidateReaction(r, nil)
	if !hasRule(res, RuleDataOneof) {
		t.Error("expected data oneof finding")
	}
	if !hasRule(res, RuleDataFormatRequired) {
		t.Error("expected data format finding")
	}
}

func TestValidateReaction_Options(t *testing.T) {
	base := func() *reaction.Reaction { return &reaction.Reaction{} }

	res, _ := ValidateReaction(base(), &Options{Disabled: map[string]bool{RuleReactionNeedsInput: true}})
	if hasRule(res, RuleReactionNeedsInput) {
		t.Error("disabled rule must not report")
	}

	res, _ = ValidateReaction(base(), &Options{Demoted: map[string]bool{RuleReactionNeedsInput: true}})
	for _, f := range res.Findings {
		if f.RuleID == RuleReactionNeedsInput && f.Severity != SeverityWarning {
			t.Error("demoted rule must report a warning")
		}
	}

	r := validReaction(t)
	r.Outcomes[0].Products[0].CompoundYield = &reaction.Percentage{Value: reaction.Float64(0.8)}
	res, _ = ValidateReaction(r, &Options{DenyWarnings: true, SkipDerivedIdentifiers: true})
	if res.OK() {
		t.Error("deny-warnings must promote the fraction warning to an error")
	}
}

func TestValidateReaction_Deterministic(t *testing.T) {
	build := func() *reaction.Reaction {
		r := validReaction(t)
		r.AddInput("acid").AddComponent() // missing identifier and amount
		r.Workups = []*reaction.ReactionWorkup{{Type: reaction.WorkupWait}}
		return r
	}
	a, _ := ValidateReaction(build(), nil)
	b, _ := ValidateReaction(build(), nil)
	if diff := cmp.Diff(a.Findings, b.Findings); diff != "" {
		t.Errorf("findings differ between runs (-first +second):\n%s", diff)
	}
}
