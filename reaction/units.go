package reaction

// Measurements pair an optional value/precision with a unit enum. Value and
// precision use pointers so an unset value is distinguishable from zero; the
// validation layer requires units whenever a value is present.

// TimeUnit enumerates time units.
type TimeUnit int32

const (
	TimeUnitUnspecified TimeUnit = iota
	TimeUnitDay
	TimeUnitHour
	TimeUnitMinute
	TimeUnitSecond
)

var timeUnitNames = map[TimeUnit]string{
	TimeUnitUnspecified: "UNSPECIFIED",
	TimeUnitDay:         "DAY",
	TimeUnitHour:        "HOUR",
	TimeUnitMinute:      "MINUTE",
	TimeUnitSecond:      "SECOND",
}

func (u TimeUnit) String() string { return enumString(timeUnitNames, u) }

func (u TimeUnit) KnownValue() bool {
	_, ok := timeUnitNames[u]
	return ok
}

// Time is a duration measurement.
type Time struct {
	Value     *float64 `ord:"value"`
	Precision *float64 `ord:"precision"`
	Units     TimeUnit `ord:"units"`
}

// MassUnit enumerates mass units.
type MassUnit int32

const (
	MassUnitUnspecified MassUnit = iota
	MassUnitKilogram
	MassUnitGram
	MassUnitMilligram
	MassUnitMicrogram
)

var massUnitNames = map[MassUnit]string{
	MassUnitUnspecified: "UNSPECIFIED",
	MassUnitKilogram:    "KILOGRAM",
	MassUnitGram:        "GRAM",
	MassUnitMilligram:   "MILLIGRAM",
	MassUnitMicrogram:   "MICROGRAM",
}

func (u MassUnit) String() string { return enumString(massUnitNames, u) }

func (u MassUnit) KnownValue() bool {
	_, ok := massUnitNames[u]
	return ok
}

// Mass is a mass measurement.
type Mass struct {
	Value     *float64 `ord:"value"`
	Precision *float64 `ord:"precision"`
	Units     MassUnit `ord:"units"`
}

// MolesUnit enumerates amount-of-substance units.
type MolesUnit int32

const (
	MolesUnitUnspecified MolesUnit = iota
	MolesUnitMole
	MolesUnitMillimole
	MolesUnitMicromole
	MolesUnitNanomole
)

var molesUnitNames = map[MolesUnit]string{
	MolesUnitUnspecified: "UNSPECIFIED",
	MolesUnitMole:        "MOLE",
	MolesUnitMillimole:   "MILLIMOLE",
	MolesUnitMicromole:   "MICROMOLE",
	MolesUnitNanomole:    "NANOMOLE",
}

func (u MolesUnit) String() string { return enumString(molesUnitNames, u) }

func (u MolesUnit) KnownValue() bool {
	_, ok := molesUnitNames[u]
	return ok
}

// Moles is an amount-of-substance measurement.
type Moles struct {
	Value     *float64  `ord:"value"`
	Precision *float64  `ord:"precision"`
	Units     MolesUnit `ord:"units"`
}

// VolumeUnit enumerates volume units.
type VolumeUnit int32

const (
	VolumeUnitUnspecified VolumeUnit = iota
	VolumeUnitLiter
	VolumeUnitMilliliter
	VolumeUnitMicroliter
	VolumeUnitNanoliter
)

var volumeUnitNames = map[VolumeUnit]string{
	VolumeUnitUnspecified: "UNSPECIFIED",
	VolumeUnitLiter:       "LITER",
	VolumeUnitMilliliter:  "MILLILITER",
	VolumeUnitMicroliter:  "MICROLITER",
	VolumeUnitNanoliter:   "NANOLITER",
}

func (u VolumeUnit) String() string { return enumString(volumeUnitNames, u) }

func (u VolumeUnit) KnownValue() bool {
	_, ok := volumeUnitNames[u]
	return ok
}

// Volume is a volume measurement.
type Volume struct {
	Value     *float64   `ord:"value"`
	Precision *float64   `ord:"precision"`
	Units     VolumeUnit `ord:"units"`
}

// ConcentrationUnit enumerates concentration units.
type ConcentrationUnit int32

const (
	ConcentrationUnitUnspecified ConcentrationUnit = iota
	ConcentrationUnitMolar
	ConcentrationUnitMillimolar
	ConcentrationUnitMicromolar
)

var concentrationUnitNames = map[ConcentrationUnit]string{
	ConcentrationUnitUnspecified: "UNSPECIFIED",
	ConcentrationUnitMolar:       "MOLAR",
	ConcentrationUnitMillimolar:  "MILLIMOLAR",
	ConcentrationUnitMicromolar:  "MICROMOLAR",
}

func (u ConcentrationUnit) String() string { return enumString(concentrationUnitNames, u) }

func (u ConcentrationUnit) KnownValue() bool {
	_, ok := concentrationUnitNames[u]
	return ok
}

// Concentration is a concentration measurement.
type Concentration struct {
	Value     *float64          `ord:"value"`
	Precision *float64          `ord:"precision"`
	Units     ConcentrationUnit `ord:"units"`
}

// PressureUnit enumerates pressure units.
type PressureUnit int32

const (
	PressureUnitUnspecified PressureUnit = iota
	PressureUnitBar
	PressureUnitAtmosphere
	PressureUnitPSI
	PressureUnitKPa
	PressureUnitTorr
	PressureUnitMmHg
	PressureUnitPascal
)

var pressureUnitNames = map[PressureUnit]string{
	PressureUnitUnspecified: "UNSPECIFIED",
	PressureUnitBar:         "BAR",
	PressureUnitAtmosphere:  "ATMOSPHERE",
	PressureUnitPSI:         "PSI",
	PressureUnitKPa:         "KPA",
	PressureUnitTorr:        "TORR",
	PressureUnitMmHg:        "MM_HG",
	PressureUnitPascal:      "PASCAL",
}

func (u PressureUnit) String() string { return enumString(pressureUnitNames, u) }

func (u PressureUnit) KnownValue() bool {
	_, ok := pressureUnitNames[u]
	return ok
}

// Pressure is a pressure measurement.
type Pressure struct {
	Value     *float64     `ord:"value"`
	Precision *float64     `ord:"precision"`
	Units     PressureUnit `ord:"units"`
}

// TemperatureUnit enumerates temperature units.
type TemperatureUnit int32

const (
	TemperatureUnitUnspecified TemperatureUnit = iota
	TemperatureUnitCelsius
	TemperatureUnitFahrenheit
	TemperatureUnitKelvin
)

var temperatureUnitNames = map[TemperatureUnit]string{
	TemperatureUnitUnspecified: "UNSPECIFIED",
	TemperatureUnitCelsius:     "CELSIUS",
	TemperatureUnitFahrenheit:  "FAHRENHEIT",
	TemperatureUnitKelvin:      "KELVIN",
}

func (u TemperatureUnit) String() string { return enumString(temperatureUnitNames, u) }

func (u TemperatureUnit) KnownValue() bool {
	_, ok := temperatureUnitNames[u]
	return ok
}

// Temperature is a temperature measurement.
type Temperature struct {
	Value     *float64        `ord:"value"`
	Precision *float64        `ord:"precision"`
	Units     TemperatureUnit `ord:"units"`
}

// CurrentUnit enumerates electric current units.
type CurrentUnit int32

const (
	CurrentUnitUnspecified CurrentUnit = iota
	CurrentUnitAmpere
	CurrentUnitMilliampere
)

var currentUnitNames = map[CurrentUnit]string{
	CurrentUnitUnspecified: "UNSPECIFIED",
	CurrentUnitAmpere:      "AMPERE",
	CurrentUnitMilliampere: "MILLIAMPERE",
}

func (u CurrentUnit) String() string { return enumString(currentUnitNames, u) }

func (u CurrentUnit) KnownValue() bool {
	_, ok := currentUnitNames[u]
	return ok
}

// Current is an electric current measurement.
type Current struct {
	Value     *float64    `ord:"value"`
	Precision *float64    `ord:"precision"`
	Units     CurrentUnit `ord:"units"`
}

// VoltageUnit enumerates voltage units.
type VoltageUnit int32

const (
	VoltageUnitUnspecified VoltageUnit = iota
	VoltageUnitVolt
	VoltageUnitMillivolt
)

var voltageUnitNames = map[VoltageUnit]string{
	VoltageUnitUnspecified: "UNSPECIFIED",
	VoltageUnitVolt:        "VOLT",
	VoltageUnitMillivolt:   "MILLIVOLT",
}

func (u VoltageUnit) String() string { return enumString(voltageUnitNames, u) }

func (u VoltageUnit) KnownValue() bool {
	_, ok := voltageUnitNames[u]
	return ok
}

// Voltage is a voltage measurement.
type Voltage struct {
	Value     *float64    `ord:"value"`
	Precision *float64    `ord:"precision"`
	Units     VoltageUnit `ord:"units"`
}

// LengthUnit enumerates length units.
type LengthUnit int32

const (
	LengthUnitUnspecified LengthUnit = iota
	LengthUnitCentimeter
	LengthUnitMillimeter
	LengthUnitMeter
	LengthUnitInch
)

var lengthUnitNames = map[LengthUnit]string{
	LengthUnitUnspecified: "UNSPECIFIED",
	LengthUnitCentimeter:  "CENTIMETER",
	LengthUnitMillimeter:  "MILLIMETER",
	LengthUnitMeter:       "METER",
	LengthUnitInch:        "INCH",
}

func (u LengthUnit) String() string { return enumString(lengthUnitNames, u) }

func (u LengthUnit) KnownValue() bool {
	_, ok := lengthUnitNames[u]
	return ok
}

// Length is a length measurement.
type Length struct {
	Value     *float64   `ord:"value"`
	Precision *float64   `ord:"precision"`
	Units     LengthUnit `ord:"units"`
}

// WavelengthUnit enumerates wavelength units.
type WavelengthUnit int32

const (
	WavelengthUnitUnspecified WavelengthUnit = iota
	WavelengthUnitNanometer
	WavelengthUnitWavenumber
)

var wavelengthUnitNames = map[WavelengthUnit]string{
	WavelengthUnitUnspecified: "UNSPECIFIED",
	WavelengthUnitNanometer:   "NANOMETER",
	WavelengthUnitWavenumber:  "WAVENUMBER",
}

func (u WavelengthUnit) String() string { return enumString(wavelengthUnitNames, u) }

func (u WavelengthUnit) KnownValue() bool {
	_, ok := wavelengthUnitNames[u]
	return ok
}

// Wavelength is a wavelength measurement.
type Wavelength struct {
	Value     *float64       `ord:"value"`
	Precision *float64       `ord:"precision"`
	Units     WavelengthUnit `ord:"units"`
}

// FlowRateUnit enumerates flow rate units.
type FlowRateUnit int32

const (
	FlowRateUnitUnspecified FlowRateUnit = iota
	FlowRateUnitMicroliterPerMinute
	FlowRateUnitMicroliterPerSecond
	FlowRateUnitMilliliterPerMinute
	FlowRateUnitMilliliterPerSecond
)

var flowRateUnitNames = map[FlowRateUnit]string{
	FlowRateUnitUnspecified:         "UNSPECIFIED",
	FlowRateUnitMicroliterPerMinute: "MICROLITER_PER_MINUTE",
	FlowRateUnitMicroliterPerSecond: "MICROLITER_PER_SECOND",
	FlowRateUnitMilliliterPerMinute: "MILLILITER_PER_MINUTE",
	FlowRateUnitMilliliterPerSecond: "MILLILITER_PER_SECOND",
}

func (u FlowRateUnit) String() string { return enumString(flowRateUnitNames, u) }

func (u FlowRateUnit) KnownValue() bool {
	_, ok := flowRateUnitNames[u]
	return ok
}

// FlowRate is a flow rate measurement.
type FlowRate struct {
	Value     *float64     `ord:"value"`
	Precision *float64     `ord:"precision"`
	Units     FlowRateUnit `ord:"units"`
}

// Percentage is a unitless percentage in [0, 100] by convention; the
// validation layer warns when a value looks like a [0, 1] fraction.
type Percentage struct {
	Value     *float64 `ord:"value"`
	Precision *float64 `ord:"precision"`
}

// Float64 returns a pointer to v; a convenience for building measurements.
func Float64(v float64) *float64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
