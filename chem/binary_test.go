package chem

import (
	"bytes"
	"testing"
)

func TestBinaryRoundTrip(t *testing.T) {
	for _, s := range []string{
		"COO",
		"CCO",
		"c1ccccc1",
		"[13CH3][O-]",
		"[NH4+].[Cl-]",
		"CC(=O)Oc1ccccc1C(=O)O",
	} {
		m := mustParse(t, s)
		back, err := MolFromBinary(m.ToBinary())
		if err != nil {
			t.Fatalf("MolFromBinary(%q): %v", s, err)
		}
		if got, want := back.CanonicalSmiles(), m.CanonicalSmiles(); got != want {
			t.Errorf("round trip of %q: expected %q, got %q", s, want, got)
		}
	}
}

func TestBinaryPreservesGraph(t *testing.T) {
	m := mustParse(t, "[13CH3][O-]")
	back, err := MolFromBinary(m.ToBinary())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back.Atoms[0].Isotope != 13 {
		t.Errorf("expected isotope 13, got %d", back.Atoms[0].Isotope)
	}
	if back.Atoms[1].Charge != -1 {
		t.Errorf("expected charge -1, got %d", back.Atoms[1].Charge)
	}
	if back.NumBonds() != 1 {
		t.Errorf("expected 1 bond, got %d", back.NumBonds())
	}
}

func TestMolFromBinary_Errors(t *testing.T) {
	good := mustParse(t, "CCO").ToBinary()

	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"bad magic", []byte("NOPE\x01\x00")},
		{"bad version", append([]byte("ORDM\x7f"), good[5:]...)},
		{"truncated", good[:len(good)-3]},
		{"trailing bytes", append(bytes.Clone(good), 0x00)},
	}
	for _, c := range cases {
		if _, err := MolFromBinary(c.data); err == nil {
			t.Errorf("%s: expected error", c.name)
		} else if _, ok := err.(*DecodeError); !ok {
			t.Errorf("%s: expected *DecodeError, got %T", c.name, err)
		}
	}
}
