package reaction

import "testing"

func TestParseCompoundIdentifierType(t *testing.T) {
	typ, err := ParseCompoundIdentifierType("SMILES")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if typ != CompoundIdentifierSmiles {
		t.Errorf("expected SMILES, got %v", typ)
	}

	if _, err := ParseCompoundIdentifierType("NOT_A_TYPE"); err == nil {
		t.Error("expected error for unknown name")
	}
}

func TestParseCompoundIdentifierType_BinaryAlias(t *testing.T) {
	canonical, err := ParseCompoundIdentifierType("MOL_BINARY")
	if err != nil {
		t.Fatalf("parse canonical: %v", err)
	}
	alias, err := ParseCompoundIdentifierType("RDKIT_BINARY")
	if err != nil {
		t.Fatalf("parse alias: %v", err)
	}
	if canonical != alias || canonical != CompoundIdentifierMolBinary {
		t.Errorf("expected alias to map to MOL_BINARY, got %v / %v", canonical, alias)
	}
	if got := CompoundIdentifierMolBinary.String(); got != "MOL_BINARY" {
		t.Errorf("canonical name: expected MOL_BINARY, got %q", got)
	}
}

func TestEnumStringRoundTrip(t *testing.T) {
	for v, name := range reactionIdentifierTypeNames {
		if got := v.String(); got != name {
			t.Errorf("String(%d): expected %q, got %q", v, name, got)
		}
		back, err := ParseReactionIdentifierType(name)
		if err != nil {
			t.Errorf("parse %q: %v", name, err)
		} else if back != v {
			t.Errorf("parse %q: expected %v, got %v", name, v, back)
		}
	}
}

func TestEnumString_Unknown(t *testing.T) {
	if got := ReactionIdentifierType(42).String(); got != "UNKNOWN(42)" {
		t.Errorf("expected UNKNOWN(42), got %q", got)
	}
	if ReactionIdentifierType(42).KnownValue() {
		t.Error("expected 42 to be unknown")
	}
}

func TestValidORCID(t *testing.T) {
	good := []string{"0000-0002-1825-0097", "0000-0001-5109-370X"}
	for _, s := range good {
		if !ValidORCID(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	bad := []string{"", "0000-0002-1825-009", "0000000218250097", "0000-0002-1825-00977"}
	for _, s := range bad {
		if ValidORCID(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestDateTime(t *testing.T) {
	d := &DateTime{Value: "2024-05-01 13:30"}
	tm, err := d.Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tm.Hour() != 13 || tm.Minute() != 30 {
		t.Errorf("unexpected time %v", tm)
	}
	d.Normalize()
	if d.Value != "2024-05-01T13:30:00Z" {
		t.Errorf("normalize: got %q", d.Value)
	}

	bad := &DateTime{Value: "yesterday-ish"}
	if _, err := bad.Parse(); err == nil {
		t.Error("expected parse error")
	}
	bad.Normalize()
	if bad.Value != "yesterday-ish" {
		t.Errorf("normalize must not rewrite unparseable values, got %q", bad.Value)
	}
}
