package reaction

// Compound is one chemical species in a reaction input.
type Compound struct {
	Identifiers  []*CompoundIdentifier  `ord:"identifiers"`
	Amount       *Amount                `ord:"amount"`
	Role         ReactionRole           `ord:"reaction_role"`
	IsLimiting   *bool                  `ord:"is_limiting"`
	Preparations []*CompoundPreparation `ord:"preparations"`
	Source       *CompoundSource        `ord:"source"`
	Features     map[string]*Data       `ord:"features"`
}

// AddIdentifier appends a compound identifier with a text value.
func (c *Compound) AddIdentifier(value string, typ CompoundIdentifierType) *CompoundIdentifier {
	id := &CompoundIdentifier{Value: value, Type: typ}
	c.Identifiers = append(c.Identifiers, id)
	return id
}

// AddBytesIdentifier appends a compound identifier with a binary payload.
func (c *Compound) AddBytesIdentifier(value []byte, typ CompoundIdentifierType) *CompoundIdentifier {
	id := &CompoundIdentifier{BytesValue: value, Type: typ}
	c.Identifiers = append(c.Identifiers, id)
	return id
}

// CompoundIdentifier names a compound in some notation. Exactly one of Value
// and BytesValue must be set; text notations use Value, MOL_BINARY uses
// BytesValue.
type CompoundIdentifier struct {
	Type       CompoundIdentifierType `ord:"type"`
	Details    string                 `ord:"details"`
	Value      string                 `ord:"value"`
	BytesValue []byte                 `ord:"bytes_value"`
}

// Amount is the quantity of a compound. Exactly one of the measurement
// fields may be set.
type Amount struct {
	Mass          *Mass          `ord:"mass"`
	Moles         *Moles         `ord:"moles"`
	Volume        *Volume        `ord:"volume"`
	Concentration *Concentration `ord:"concentration"`
	// VolumeIncludesSolutes qualifies a Volume amount.
	VolumeIncludesSolutes *bool `ord:"volume_includes_solutes"`
}

// CompoundPreparation describes pre-treatment of a compound.
type CompoundPreparation struct {
	Type    CompoundPreparationType `ord:"type"`
	Details string                  `ord:"details"`
}

// CompoundSource identifies where a compound came from.
type CompoundSource struct {
	Vendor    string `ord:"vendor"`
	CatalogID string `ord:"catalog_id"`
	Lot       string `ord:"lot"`
}

// Data is a generic typed payload. Exactly one of the value fields may be
// set; binary payloads must carry a format description.
type Data struct {
	FloatValue   *float64 `ord:"float_value"`
	IntegerValue *int64   `ord:"integer_value"`
	BytesValue   []byte   `ord:"bytes_value"`
	StringValue  *string  `ord:"string_value"`
	URL          *string  `ord:"url"`
	Description  string   `ord:"description"`
	// Format describes the encoding of BytesValue, e.g. "png".
	Format string `ord:"format"`
}
