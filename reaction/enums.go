package reaction

import "fmt"

// Enum types follow the generated-code convention: an int32 named type, an
// UNSPECIFIED zero value, a CUSTOM value whose use requires a details string,
// a stable name table, and a Parse function accepting the stable names.

func enumString[T ~int32](names map[T]string, v T) string {
	if s, ok := names[v]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN(%d)", int32(v))
}

func parseEnum[T ~int32](names map[T]string, typeName, s string) (T, error) {
	for v, name := range names {
		if name == s {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("reaction: %s has no value named %q", typeName, s)
}

// ReactionIdentifierType names the notation of a reaction-level identifier.
type ReactionIdentifierType int32

const (
	ReactionIdentifierUnspecified ReactionIdentifierType = iota
	ReactionIdentifierCustom
	ReactionIdentifierReactionSmiles
	ReactionIdentifierRDFile
	ReactionIdentifierRInChI
	ReactionIdentifierName
)

var reactionIdentifierTypeNames = map[ReactionIdentifierType]string{
	ReactionIdentifierUnspecified:    "UNSPECIFIED",
	ReactionIdentifierCustom:         "CUSTOM",
	ReactionIdentifierReactionSmiles: "REACTION_SMILES",
	ReactionIdentifierRDFile:         "RDFILE",
	ReactionIdentifierRInChI:         "RINCHI",
	ReactionIdentifierName:           "NAME",
}

func (t ReactionIdentifierType) String() string {
	return enumString(reactionIdentifierTypeNames, t)
}

func (t ReactionIdentifierType) KnownValue() bool {
	_, ok := reactionIdentifierTypeNames[t]
	return ok
}

func ParseReactionIdentifierType(s string) (ReactionIdentifierType, error) {
	return parseEnum(reactionIdentifierTypeNames, "ReactionIdentifierType", s)
}

// CompoundIdentifierType names the notation of a compound identifier.
type CompoundIdentifierType int32

const (
	CompoundIdentifierUnspecified CompoundIdentifierType = iota
	CompoundIdentifierCustom
	CompoundIdentifierSmiles
	CompoundIdentifierInChI
	CompoundIdentifierInChIKey
	CompoundIdentifierMolblock
	CompoundIdentifierIUPACName
	CompoundIdentifierName
	CompoundIdentifierCASNumber
	CompoundIdentifierPubchemCID
	CompoundIdentifierChemspiderID
	CompoundIdentifierCXSmiles
	CompoundIdentifierXYZ
	// CompoundIdentifierMolBinary is the versioned binary molecule encoding
	// produced by chem.ToBinary. RDKIT_BINARY is accepted as a parse alias
	// for interoperability with records produced by other toolkits.
	CompoundIdentifierMolBinary
)

var compoundIdentifierTypeNames = map[CompoundIdentifierType]string{
	CompoundIdentifierUnspecified:  "UNSPECIFIED",
	CompoundIdentifierCustom:       "CUSTOM",
	CompoundIdentifierSmiles:       "SMILES",
	CompoundIdentifierInChI:        "INCHI",
	CompoundIdentifierInChIKey:     "INCHI_KEY",
	CompoundIdentifierMolblock:     "MOLBLOCK",
	CompoundIdentifierIUPACName:    "IUPAC_NAME",
	CompoundIdentifierName:         "NAME",
	CompoundIdentifierCASNumber:    "CAS_NUMBER",
	CompoundIdentifierPubchemCID:   "PUBCHEM_CID",
	CompoundIdentifierChemspiderID: "CHEMSPIDER_ID",
	CompoundIdentifierCXSmiles:     "CXSMILES",
	CompoundIdentifierXYZ:          "XYZ",
	CompoundIdentifierMolBinary:    "MOL_BINARY",
}

func (t CompoundIdentifierType) String() string {
	return enumString(compoundIdentifierTypeNames, t)
}

func (t CompoundIdentifierType) KnownValue() bool {
	_, ok := compoundIdentifierTypeNames[t]
	return ok
}

func ParseCompoundIdentifierType(s string) (CompoundIdentifierType, error) {
	if s == "RDKIT_BINARY" {
		return CompoundIdentifierMolBinary, nil
	}
	return parseEnum(compoundIdentifierTypeNames, "CompoundIdentifierType", s)
}

// ReactionRole describes what a compound does in a reaction input.
type ReactionRole int32

const (
	RoleUnspecified ReactionRole = iota
	RoleReactant
	RoleReagent
	RoleSolvent
	RoleCatalyst
	RoleWorkup
	RoleInternalStandard
	RoleAuthenticStandard
	RoleProduct
)

var reactionRoleNames = map[ReactionRole]string{
	RoleUnspecified:       "UNSPECIFIED",
	RoleReactant:          "REACTANT",
	RoleReagent:           "REAGENT",
	RoleSolvent:           "SOLVENT",
	RoleCatalyst:          "CATALYST",
	RoleWorkup:            "WORKUP",
	RoleInternalStandard:  "INTERNAL_STANDARD",
	RoleAuthenticStandard: "AUTHENTIC_STANDARD",
	RoleProduct:           "PRODUCT",
}

func (r ReactionRole) String() string { return enumString(reactionRoleNames, r) }

func (r ReactionRole) KnownValue() bool {
	_, ok := reactionRoleNames[r]
	return ok
}

func ParseReactionRole(s string) (ReactionRole, error) {
	return parseEnum(reactionRoleNames, "ReactionRole", s)
}

// VesselType names the reaction vessel.
type VesselType int32

const (
	VesselUnspecified VesselType = iota
	VesselCustom
	VesselRoundBottomFlask
	VesselVial
	VesselWellPlate
	VesselMicrowaveVial
	VesselTube
	VesselContinuousStirredTankReactor
	VesselPackedBedReactor
)

var vesselTypeNames = map[VesselType]string{
	VesselUnspecified:                  "UNSPECIFIED",
	VesselCustom:                       "CUSTOM",
	VesselRoundBottomFlask:             "ROUND_BOTTOM_FLASK",
	VesselVial:                         "VIAL",
	VesselWellPlate:                    "WELL_PLATE",
	VesselMicrowaveVial:                "MICROWAVE_VIAL",
	VesselTube:                         "TUBE",
	VesselContinuousStirredTankReactor: "CONTINUOUS_STIRRED_TANK_REACTOR",
	VesselPackedBedReactor:             "PACKED_BED_REACTOR",
}

func (t VesselType) String() string { return enumString(vesselTypeNames, t) }

func (t VesselType) KnownValue() bool {
	_, ok := vesselTypeNames[t]
	return ok
}

func ParseVesselType(s string) (VesselType, error) {
	return parseEnum(vesselTypeNames, "VesselType", s)
}

// TemperatureControlType names how temperature was controlled.
type TemperatureControlType int32

const (
	TemperatureControlUnspecified TemperatureControlType = iota
	TemperatureControlCustom
	TemperatureControlAmbient
	TemperatureControlOilBath
	TemperatureControlWaterBath
	TemperatureControlSandBath
	TemperatureControlIceBath
	TemperatureControlDryAluminumPlate
	TemperatureControlMicrowave
	TemperatureControlDryIceBath
	TemperatureControlLiquidNitrogen
)

var temperatureControlTypeNames = map[TemperatureControlType]string{
	TemperatureControlUnspecified:      "UNSPECIFIED",
	TemperatureControlCustom:           "CUSTOM",
	TemperatureControlAmbient:          "AMBIENT",
	TemperatureControlOilBath:          "OIL_BATH",
	TemperatureControlWaterBath:        "WATER_BATH",
	TemperatureControlSandBath:         "SAND_BATH",
	TemperatureControlIceBath:          "ICE_BATH",
	TemperatureControlDryAluminumPlate: "DRY_ALUMINUM_PLATE",
	TemperatureControlMicrowave:        "MICROWAVE",
	TemperatureControlDryIceBath:       "DRY_ICE_BATH",
	TemperatureControlLiquidNitrogen:   "LIQUID_NITROGEN",
}

func (t TemperatureControlType) String() string {
	return enumString(temperatureControlTypeNames, t)
}

func (t TemperatureControlType) KnownValue() bool {
	_, ok := temperatureControlTypeNames[t]
	return ok
}

// AtmosphereType names the gas environment of the reaction.
type AtmosphereType int32

const (
	AtmosphereUnspecified AtmosphereType = iota
	AtmosphereCustom
	AtmosphereAir
	AtmosphereNitrogen
	AtmosphereArgon
	AtmosphereOxygen
	AtmosphereHydrogen
)

var atmosphereTypeNames = map[AtmosphereType]string{
	AtmosphereUnspecified: "UNSPECIFIED",
	AtmosphereCustom:      "CUSTOM",
	AtmosphereAir:         "AIR",
	AtmosphereNitrogen:    "NITROGEN",
	AtmosphereArgon:       "ARGON",
	AtmosphereOxygen:      "OXYGEN",
	AtmosphereHydrogen:    "HYDROGEN",
}

func (t AtmosphereType) String() string { return enumString(atmosphereTypeNames, t) }

func (t AtmosphereType) KnownValue() bool {
	_, ok := atmosphereTypeNames[t]
	return ok
}

// StirringMethod names how the reaction was stirred.
type StirringMethod int32

const (
	StirringUnspecified StirringMethod = iota
	StirringCustom
	StirringNone
	StirringStirBar
	StirringOverheadMixer
	StirringAgitation
)

var stirringMethodNames = map[StirringMethod]string{
	StirringUnspecified:   "UNSPECIFIED",
	StirringCustom:        "CUSTOM",
	StirringNone:          "NONE",
	StirringStirBar:       "STIR_BAR",
	StirringOverheadMixer: "OVERHEAD_MIXER",
	StirringAgitation:     "AGITATION",
}

func (m StirringMethod) String() string { return enumString(stirringMethodNames, m) }

func (m StirringMethod) KnownValue() bool {
	_, ok := stirringMethodNames[m]
	return ok
}

// IlluminationType names the light source.
type IlluminationType int32

const (
	IlluminationUnspecified IlluminationType = iota
	IlluminationCustom
	IlluminationAmbient
	IlluminationDarkOrSealed
	IlluminationLED
	IlluminationHalogenLamp
	IlluminationDeuteriumLamp
	IlluminationSolarSimulator
	IlluminationBroadSpectrum
)

var illuminationTypeNames = map[IlluminationType]string{
	IlluminationUnspecified:    "UNSPECIFIED",
	IlluminationCustom:         "CUSTOM",
	IlluminationAmbient:        "AMBIENT",
	IlluminationDarkOrSealed:   "DARK_OR_SEALED",
	IlluminationLED:            "LED",
	IlluminationHalogenLamp:    "HALOGEN_LAMP",
	IlluminationDeuteriumLamp:  "DEUTERIUM_LAMP",
	IlluminationSolarSimulator: "SOLAR_SIMULATOR",
	IlluminationBroadSpectrum:  "BROAD_SPECTRUM",
}

func (t IlluminationType) String() string { return enumString(illuminationTypeNames, t) }

func (t IlluminationType) KnownValue() bool {
	_, ok := illuminationTypeNames[t]
	return ok
}

// ReactionWorkupType names a post-reaction processing step.
type ReactionWorkupType int32

const (
	WorkupUnspecified ReactionWorkupType = iota
	WorkupCustom
	WorkupAddition
	WorkupTemperature
	WorkupConcentration
	WorkupExtraction
	WorkupFiltration
	WorkupWash
	WorkupDryInVacuo
	WorkupDryWithMaterial
	WorkupFlashChromatography
	WorkupOtherChromatography
	WorkupScavenging
	WorkupWait
	WorkupStirring
	WorkupPHAdjust
	WorkupDissolution
	WorkupDistillation
)

var reactionWorkupTypeNames = map[ReactionWorkupType]string{
	WorkupUnspecified:         "UNSPECIFIED",
	WorkupCustom:              "CUSTOM",
	WorkupAddition:            "ADDITION",
	WorkupTemperature:         "TEMPERATURE",
	WorkupConcentration:       "CONCENTRATION",
	WorkupExtraction:          "EXTRACTION",
	WorkupFiltration:          "FILTRATION",
	WorkupWash:                "WASH",
	WorkupDryInVacuo:          "DRY_IN_VACUO",
	WorkupDryWithMaterial:     "DRY_WITH_MATERIAL",
	WorkupFlashChromatography: "FLASH_CHROMATOGRAPHY",
	WorkupOtherChromatography: "OTHER_CHROMATOGRAPHY",
	WorkupScavenging:          "SCAVENGING",
	WorkupWait:                "WAIT",
	WorkupStirring:            "STIRRING",
	WorkupPHAdjust:            "PH_ADJUST",
	WorkupDissolution:         "DISSOLUTION",
	WorkupDistillation:        "DISTILLATION",
}

func (t ReactionWorkupType) String() string { return enumString(reactionWorkupTypeNames, t) }

func (t ReactionWorkupType) KnownValue() bool {
	_, ok := reactionWorkupTypeNames[t]
	return ok
}

func ParseReactionWorkupType(s string) (ReactionWorkupType, error) {
	return parseEnum(reactionWorkupTypeNames, "ReactionWorkupType", s)
}

// SelectivityType names a selectivity measure.
type SelectivityType int32

const (
	SelectivityUnspecified SelectivityType = iota
	SelectivityCustom
	SelectivityEE
	SelectivityER
	SelectivityDE
	SelectivityEZ
	SelectivityZE
)

var selectivityTypeNames = map[SelectivityType]string{
	SelectivityUnspecified: "UNSPECIFIED",
	SelectivityCustom:      "CUSTOM",
	SelectivityEE:          "EE",
	SelectivityER:          "ER",
	SelectivityDE:          "DE",
	SelectivityEZ:          "EZ",
	SelectivityZE:          "ZE",
}

func (t SelectivityType) String() string { return enumString(selectivityTypeNames, t) }

func (t SelectivityType) KnownValue() bool {
	_, ok := selectivityTypeNames[t]
	return ok
}

// AnalysisType names an analytical technique.
type AnalysisType int32

const (
	AnalysisUnspecified AnalysisType = iota
	AnalysisCustom
	AnalysisLC
	AnalysisGC
	AnalysisIR
	AnalysisNMR1H
	AnalysisNMR13C
	AnalysisNMROther
	AnalysisMP
	AnalysisUV
	AnalysisTLC
	AnalysisMS
	AnalysisHRMS
	AnalysisMSMS
	AnalysisHPLC
	AnalysisRaman
	AnalysisED
)

var analysisTypeNames = map[AnalysisType]string{
	AnalysisUnspecified: "UNSPECIFIED",
	AnalysisCustom:      "CUSTOM",
	AnalysisLC:          "LC",
	AnalysisGC:          "GC",
	AnalysisIR:          "IR",
	AnalysisNMR1H:       "NMR_1H",
	AnalysisNMR13C:      "NMR_13C",
	AnalysisNMROther:    "NMR_OTHER",
	AnalysisMP:          "MP",
	AnalysisUV:          "UV",
	AnalysisTLC:         "TLC",
	AnalysisMS:          "MS",
	AnalysisHRMS:        "HRMS",
	AnalysisMSMS:        "MSMS",
	AnalysisHPLC:        "HPLC",
	AnalysisRaman:       "RAMAN",
	AnalysisED:          "ED",
}

func (t AnalysisType) String() string { return enumString(analysisTypeNames, t) }

func (t AnalysisType) KnownValue() bool {
	_, ok := analysisTypeNames[t]
	return ok
}

func ParseAnalysisType(s string) (AnalysisType, error) {
	return parseEnum(analysisTypeNames, "AnalysisType", s)
}

// CompoundPreparationType names how a compound was prepared before use.
type CompoundPreparationType int32

const (
	PreparationUnspecified CompoundPreparationType = iota
	PreparationCustom
	PreparationNone
	PreparationRepurified
	PreparationSparged
	PreparationDried
	PreparationSynthesized
)

var compoundPreparationTypeNames = map[CompoundPreparationType]string{
	PreparationUnspecified: "UNSPECIFIED",
	PreparationCustom:      "CUSTOM",
	PreparationNone:        "NONE",
	PreparationRepurified:  "REPURIFIED",
	PreparationSparged:     "SPARGED",
	PreparationDried:       "DRIED",
	PreparationSynthesized: "SYNTHESIZED",
}

func (t CompoundPreparationType) String() string {
	return enumString(compoundPreparationTypeNames, t)
}

func (t CompoundPreparationType) KnownValue() bool {
	_, ok := compoundPreparationTypeNames[t]
	return ok
}
