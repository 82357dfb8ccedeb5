package reaction

// UnmarshalText implementations let reflection-based codecs restore enum
// values from their stable names without knowing the concrete type.

func setEnum[T ~int32](dst *T, names map[T]string, typeName string, b []byte) error {
	v, err := parseEnum(names, typeName, string(b))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func (t *ReactionIdentifierType) UnmarshalText(b []byte) error {
	return setEnum(t, reactionIdentifierTypeNames, "ReactionIdentifierType", b)
}

// UnmarshalText accepts the stable names plus the RDKIT_BINARY alias.
func (t *CompoundIdentifierType) UnmarshalText(b []byte) error {
	v, err := ParseCompoundIdentifierType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (r *ReactionRole) UnmarshalText(b []byte) error {
	return setEnum(r, reactionRoleNames, "ReactionRole", b)
}

func (t *VesselType) UnmarshalText(b []byte) error {
	return setEnum(t, vesselTypeNames, "VesselType", b)
}

func (t *TemperatureControlType) UnmarshalText(b []byte) error {
	return setEnum(t, temperatureControlTypeNames, "TemperatureControlType", b)
}

func (t *AtmosphereType) UnmarshalText(b []byte) error {
	return setEnum(t, atmosphereTypeNames, "AtmosphereType", b)
}

func (m *StirringMethod) UnmarshalText(b []byte) error {
	return setEnum(m, stirringMethodNames, "StirringMethod", b)
}

func (t *IlluminationType) UnmarshalText(b []byte) error {
	return setEnum(t, illuminationTypeNames, "IlluminationType", b)
}

func (t *ReactionWorkupType) UnmarshalText(b []byte) error {
	return setEnum(t, reactionWorkupTypeNames, "ReactionWorkupType", b)
}

func (t *SelectivityType) UnmarshalText(b []byte) error {
	return setEnum(t, selectivityTypeNames, "SelectivityType", b)
}

func (t *AnalysisType) UnmarshalText(b []byte) error {
	return setEnum(t, analysisTypeNames, "AnalysisType", b)
}

func (t *CompoundPreparationType) UnmarshalText(b []byte) error {
	return setEnum(t, compoundPreparationTypeNames, "CompoundPreparationType", b)
}

func (u *TimeUnit) UnmarshalText(b []byte) error {
	return setEnum(u, timeUnitNames, "TimeUnit", b)
}

func (u *MassUnit) UnmarshalText(b []byte) error {
	return setEnum(u, massUnitNames, "MassUnit", b)
}

func (u *MolesUnit) UnmarshalText(b []byte) error {
	return setEnum(u, molesUnitNames, "MolesUnit", b)
}

func (u *VolumeUnit) UnmarshalText(b []byte) error {
	return setEnum(u, volumeUnitNames, "VolumeUnit", b)
}

func (u *ConcentrationUnit) UnmarshalText(b []byte) error {
	return setEnum(u, concentrationUnitNames, "ConcentrationUnit", b)
}

func (u *PressureUnit) UnmarshalText(b []byte) error {
	return setEnum(u, pressureUnitNames, "PressureUnit", b)
}

func (u *TemperatureUnit) UnmarshalText(b []byte) error {
	return setEnum(u, temperatureUnitNames, "TemperatureUnit", b)
}

func (u *CurrentUnit) UnmarshalText(b []byte) error {
	return setEnum(u, currentUnitNames, "CurrentUnit", b)
}

func (u *VoltageUnit) UnmarshalText(b []byte) error {
	return setEnum(u, voltageUnitNames, "VoltageUnit", b)
}

func (u *LengthUnit) UnmarshalText(b []byte) error {
	return setEnum(u, lengthUnitNames, "LengthUnit", b)
}

func (u *WavelengthUnit) UnmarshalText(b []byte) error {
	return setEnum(u, wavelengthUnitNames, "WavelengthUnit", b)
}

func (u *FlowRateUnit) UnmarshalText(b []byte) error {
	return setEnum(u, flowRateUnitNames, "FlowRateUnit", b)
}
