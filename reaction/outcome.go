package reaction

// ReactionOutcome describes the state of the reaction at one analysis time:
// products observed and the analyses supporting them.
type ReactionOutcome struct {
	ReactionTime *Time                        `ord:"reaction_time"`
	Conversion   *Percentage                  `ord:"conversion"`
	Products     []*ReactionProduct           `ord:"products"`
	Analyses     map[string]*ReactionAnalysis `ord:"analyses"`
}

// AddProduct appends an empty product and returns it.
func (o *ReactionOutcome) AddProduct() *ReactionProduct {
	p := &ReactionProduct{}
	o.Products = append(o.Products, p)
	return p
}

// AddAnalysis creates, registers and returns the named analysis.
func (o *ReactionOutcome) AddAnalysis(key string) *ReactionAnalysis {
	if o.Analyses == nil {
		o.Analyses = map[string]*ReactionAnalysis{}
	}
	a := &ReactionAnalysis{}
	o.Analyses[key] = a
	return a
}

// ReactionProduct is one product species of an outcome. The Analysis* slices
// hold keys into the enclosing outcome's Analyses map.
type ReactionProduct struct {
	Compound            *Compound    `ord:"compound"`
	IsDesiredProduct    *bool        `ord:"is_desired_product"`
	CompoundYield       *Percentage  `ord:"compound_yield"`
	Purity              *Percentage  `ord:"purity"`
	Selectivity         *Selectivity `ord:"selectivity"`
	AnalysisIdentity    []string     `ord:"analysis_identity"`
	AnalysisYield       []string     `ord:"analysis_yield"`
	AnalysisPurity      []string     `ord:"analysis_purity"`
	AnalysisSelectivity []string     `ord:"analysis_selectivity"`
	IsolatedColor       string       `ord:"isolated_color"`
}

// Selectivity is a selectivity measurement; EE values are percentages.
type Selectivity struct {
	Type      SelectivityType `ord:"type"`
	Details   string          `ord:"details"`
	Value     *float64        `ord:"value"`
	Precision *float64        `ord:"precision"`
}

// ReactionAnalysis describes one analytical measurement.
type ReactionAnalysis struct {
	Type                     AnalysisType     `ord:"type"`
	Details                  string           `ord:"details"`
	UsesInternalStandard     *bool            `ord:"uses_internal_standard"`
	IsOfIsolatedSpecies      *bool            `ord:"is_of_isolated_species"`
	Data                     map[string]*Data `ord:"data"`
	InstrumentManufacturer   string           `ord:"instrument_manufacturer"`
	InstrumentLastCalibrated *DateTime        `ord:"instrument_last_calibrated"`
}
