package reaction

// Reaction is the top-level record message: how a single reaction was run and
// what happened. Field names in ord tags are the stable wire names used by
// the record envelope and the presence API.
type Reaction struct {
	Identifiers  []*ReactionIdentifier     `ord:"identifiers"`
	Inputs       map[string]*ReactionInput `ord:"inputs"`
	Setup        *ReactionSetup            `ord:"setup"`
	Conditions   *ReactionConditions       `ord:"conditions"`
	Notes        *ReactionNotes            `ord:"notes"`
	Observations []*ReactionObservation    `ord:"observations"`
	Workups      []*ReactionWorkup         `ord:"workups"`
	Outcomes     []*ReactionOutcome        `ord:"outcomes"`
	Provenance   *ReactionProvenance       `ord:"provenance"`
	// ReactionID is assigned on dataset ingestion: "ord-" + 32 hex digits.
	ReactionID string `ord:"reaction_id"`
}

// AddIdentifier appends a reaction identifier and returns it for further
// mutation, mirroring repeated-field add semantics.
func (r *Reaction) AddIdentifier(value string, typ ReactionIdentifierType) *ReactionIdentifier {
	id := &ReactionIdentifier{Value: value, Type: typ}
	r.Identifiers = append(r.Identifiers, id)
	return id
}

// AddInput creates, registers and returns the named input.
func (r *Reaction) AddInput(key string) *ReactionInput {
	if r.Inputs == nil {
		r.Inputs = map[string]*ReactionInput{}
	}
	in := &ReactionInput{}
	r.Inputs[key] = in
	return in
}

// AddOutcome appends an empty outcome and returns it.
func (r *Reaction) AddOutcome() *ReactionOutcome {
	out := &ReactionOutcome{}
	r.Outcomes = append(r.Outcomes, out)
	return out
}

// ReactionIdentifier names the whole reaction in some notation.
type ReactionIdentifier struct {
	Type     ReactionIdentifierType `ord:"type"`
	Details  string                 `ord:"details"`
	Value    string                 `ord:"value"`
	IsMapped *bool                  `ord:"is_mapped"`
}

// ReactionInput is one addition made to the reaction vessel: which compounds
// and how they were added.
type ReactionInput struct {
	Components          []*Compound  `ord:"components"`
	AdditionOrder       int32        `ord:"addition_order"`
	AdditionTime        *Time        `ord:"addition_time"`
	AdditionDuration    *Time        `ord:"addition_duration"`
	FlowRate            *FlowRate    `ord:"flow_rate"`
	AdditionTemperature *Temperature `ord:"addition_temperature"`
}

// AddComponent appends an empty component compound and returns it.
func (in *ReactionInput) AddComponent() *Compound {
	c := &Compound{}
	in.Components = append(in.Components, c)
	return c
}

// ReactionSetup covers vessel and automation.
type ReactionSetup struct {
	Vessel             *Vessel          `ord:"vessel"`
	IsAutomated        *bool            `ord:"is_automated"`
	AutomationPlatform string           `ord:"automation_platform"`
	AutomationCode     map[string]*Data `ord:"automation_code"`
}

// Vessel describes the reaction vessel.
type Vessel struct {
	Type    VesselType `ord:"type"`
	Details string     `ord:"details"`
	Volume  *Volume    `ord:"volume"`
}

// ReactionConditions aggregates all condition submessages.
type ReactionConditions struct {
	Temperature          *TemperatureConditions      `ord:"temperature"`
	Pressure             *PressureConditions         `ord:"pressure"`
	Stirring             *StirringConditions         `ord:"stirring"`
	Illumination         *IlluminationConditions     `ord:"illumination"`
	Electrochemistry     *ElectrochemistryConditions `ord:"electrochemistry"`
	Flow                 *FlowConditions             `ord:"flow"`
	Reflux               *bool                       `ord:"reflux"`
	PH                   *float64                    `ord:"ph"`
	ConditionsAreDynamic *bool                       `ord:"conditions_are_dynamic"`
	Details              string                      `ord:"details"`
}

// TemperatureConditions describes temperature control and observations.
type TemperatureConditions struct {
	Control      *TemperatureControl       `ord:"control"`
	Setpoint     *Temperature              `ord:"setpoint"`
	Measurements []*TemperatureMeasurement `ord:"measurements"`
}

// TemperatureControl names the temperature control method.
type TemperatureControl struct {
	Type    TemperatureControlType `ord:"type"`
	Details string                 `ord:"details"`
}

// TemperatureMeasurement is one observed temperature point.
type TemperatureMeasurement struct {
	Details     string       `ord:"details"`
	Time        *Time        `ord:"time"`
	Temperature *Temperature `ord:"temperature"`
}

// PressureConditions describes pressure control and atmosphere.
type PressureConditions struct {
	Atmosphere *Atmosphere `ord:"atmosphere"`
	Setpoint   *Pressure   `ord:"setpoint"`
	Details    string      `ord:"details"`
}

// Atmosphere names the gas environment.
type Atmosphere struct {
	Type    AtmosphereType `ord:"type"`
	Details string         `ord:"details"`
}

// StirringConditions describes agitation.
type StirringConditions struct {
	Type    StirringMethod `ord:"type"`
	Details string         `ord:"details"`
	Rate    *StirringRate  `ord:"rate"`
}

// StirringRate is the agitation speed; RPM zero means unreported.
type StirringRate struct {
	Details string `ord:"details"`
	RPM     int32  `ord:"rpm"`
}

// IlluminationConditions describes photochemistry conditions.
type IlluminationConditions struct {
	Type           IlluminationType `ord:"type"`
	Details        string           `ord:"details"`
	PeakWavelength *Wavelength      `ord:"peak_wavelength"`
}

// ElectrochemistryConditions describes electrochemistry conditions.
type ElectrochemistryConditions struct {
	Details string   `ord:"details"`
	Current *Current `ord:"current"`
	Voltage *Voltage `ord:"voltage"`
}

// FlowConditions describes flow chemistry conditions.
type FlowConditions struct {
	Details string  `ord:"details"`
	Tubing  *Length `ord:"tubing_diameter"`
}

// ReactionNotes holds free-form and boolean observations about the reaction
// as a whole.
type ReactionNotes struct {
	IsHeterogeneous  *bool  `ord:"is_heterogeneous"`
	FormsPrecipitate *bool  `ord:"forms_precipitate"`
	IsExothermic     *bool  `ord:"is_exothermic"`
	Offgasses        *bool  `ord:"offgasses"`
	SafetyNotes      string `ord:"safety_notes"`
	ProcedureDetails string `ord:"procedure_details"`
}

// ReactionObservation is a timestamped note or image taken during the
// reaction.
type ReactionObservation struct {
	Time    *Time  `ord:"time"`
	Comment string `ord:"comment"`
	Image   *Data  `ord:"image"`
}

// ReactionWorkup is one step of post-reaction processing, in order.
type ReactionWorkup struct {
	Type        ReactionWorkupType     `ord:"type"`
	Details     string                 `ord:"details"`
	Duration    *Time                  `ord:"duration"`
	Input       *ReactionInput         `ord:"input"`
	Amount      *Amount                `ord:"amount"`
	Temperature *TemperatureConditions `ord:"temperature"`
	Stirring    *StirringConditions    `ord:"stirring"`
	TargetPH    *float64               `ord:"target_ph"`
	KeepPhase   string                 `ord:"keep_phase"`
}
