package validation

// Stable rule IDs. These must not change across versions; policy documents
// and callers reference them.
const (
	// Reaction-level structure.
	RuleReactionNeedsInput       = "ORD-VAL-001"
	RuleReactionNeedsOutcome     = "ORD-VAL-002"
	RuleInternalStandardRequired = "ORD-VAL-003"
	RuleConversionNeedsLimiting  = "ORD-VAL-004"

	// Identifiers and compounds.
	RuleDetailsRequiredForCustom = "ORD-VAL-010"
	RuleIdentifierValueRequired  = "ORD-VAL-011"
	RuleInputNeedsComponent      = "ORD-VAL-012"
	RuleComponentNeedsAmount     = "ORD-VAL-013"
	RuleCompoundNeedsIdentifier  = "ORD-VAL-014"
	RuleUnparseableStructure     = "ORD-VAL-015"
	RuleIdentifierValueOneof     = "ORD-VAL-016"
	RuleAmountOneof              = "ORD-VAL-017"

	// Conditions.
	RuleDynamicConditionsDetails = "ORD-VAL-020"
	RuleDetailsWithoutDynamic    = "ORD-VAL-021"
	RuleSetpointRecommended      = "ORD-VAL-022"

	// Workups.
	RuleWorkupWaitDuration  = "ORD-VAL-030"
	RuleWorkupTemperature   = "ORD-VAL-031"
	RuleWorkupKeepPhase     = "ORD-VAL-032"
	RuleWorkupInputRequired = "ORD-VAL-033"
	RuleWorkupStirring      = "ORD-VAL-034"
	RuleWorkupTargetPH      = "ORD-VAL-035"

	// Outcomes.
	RuleSingleDesiredProduct  = "ORD-VAL-040"
	RuleUndefinedAnalysisKey  = "ORD-VAL-041"
	RuleOutcomeNeedsResult    = "ORD-VAL-042"
	RuleSelectivityEERange    = "ORD-VAL-043"
	RuleSelectivityEEFraction = "ORD-VAL-044"

	// Provenance.
	RuleRecordCreatedRequired = "ORD-VAL-050"
	RuleCreatedAfterStart     = "ORD-VAL-051"
	RuleModifiedAfterCreated  = "ORD-VAL-052"
	RuleRecordIDFormat        = "ORD-VAL-053"
	RuleRecordEventTime       = "ORD-VAL-054"
	RuleORCIDFormat           = "ORD-VAL-055"
	RuleDateTimeFormat        = "ORD-VAL-056"

	// Measurements.
	RuleValueNonNegative     = "ORD-VAL-060"
	RulePrecisionNonNegative = "ORD-VAL-061"
	RuleUnitsRequired        = "ORD-VAL-062"
	RuleTemperatureBound     = "ORD-VAL-063"
	RulePercentageRange      = "ORD-VAL-064"
	RulePercentageFraction   = "ORD-VAL-065"
	RuleRPMNonNegative       = "ORD-VAL-066"

	// Data payloads.
	RuleDataOneof          = "ORD-VAL-070"
	RuleDataFormatRequired = "ORD-VAL-071"
)
