package chem

import "testing"

func TestCanonicalSmiles_OrderIndependent(t *testing.T) {
	pairs := [][2]string{
		{"CCO", "OCC"},
		{"CCCl", "ClCC"},
		{"CC(C)C", "C(C)(C)C"},
		{"Cc1ccccc1", "c1ccccc1C"},
		{"c1ccncc1", "n1ccccc1"},
		{"C1CCCCC1", "C1CCCCC1"},
		{"C(C)Cl", "CCCl"},
		{"[Na+].[Cl-]", "[Cl-].[Na+]"},
		{"O=C(O)C", "CC(=O)O"},
	}
	for _, p := range pairs {
		a := mustParse(t, p[0]).CanonicalSmiles()
		b := mustParse(t, p[1]).CanonicalSmiles()
		if a != b {
			t.Errorf("canonical(%q)=%q != canonical(%q)=%q", p[0], a, p[1], b)
		}
	}
}

func TestCanonicalSmiles_Idempotent(t *testing.T) {
	inputs := []string{
		"CCO",
		"c1ccccc1",
		"Cc1ccccc1",
		"c1ccc2ccccc2c1",
		"CC(=O)Oc1ccccc1C(=O)O",
		"[13CH4]",
		"CC(=O)[O-]",
		"[NH4+].[Cl-]",
		"C#N",
		"c1cc[nH]c1",
	}
	for _, s := range inputs {
		once := mustParse(t, s).CanonicalSmiles()
		twice := mustParse(t, once).CanonicalSmiles()
		if once != twice {
			t.Errorf("canonical form of %q not stable: %q then %q", s, once, twice)
		}
	}
}

func TestCanonicalSmiles_DistinguishesStructures(t *testing.T) {
	distinct := [][2]string{
		{"CCO", "CC=O"},
		{"CCO", "COC"},
		{"c1ccccc1", "C1CCCCC1"},
		{"CC(C)C", "CCCC"},
		{"[13CH4]", "C"},
		{"CC(=O)[O-]", "CC(=O)O"},
	}
	for _, p := range distinct {
		a := mustParse(t, p[0]).CanonicalSmiles()
		b := mustParse(t, p[1]).CanonicalSmiles()
		if a == b {
			t.Errorf("canonical(%q) == canonical(%q) == %q; expected distinct", p[0], p[1], a)
		}
	}
}

func TestCanonicalSmiles_ChargedAndExplicitH(t *testing.T) {
	got := mustParse(t, "[NH4+]").CanonicalSmiles()
	if got != "[NH4+]" {
		t.Errorf("expected [NH4+], got %q", got)
	}
	got = mustParse(t, "[CH4]").CanonicalSmiles()
	if got != "C" {
		t.Errorf("redundant bracket should drop: expected C, got %q", got)
	}
}

func TestCanonicalize(t *testing.T) {
	got, err := Canonicalize("OCC")
	if err != nil {
		t.Fatalf("canonicalize: %v", err)
	}
	want := mustParse(t, "CCO").CanonicalSmiles()
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if _, err := Canonicalize("C(("); err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestFormula(t *testing.T) {
	cases := []struct{ smiles, want string }{
		{"C", "CH4"},
		{"CCO", "C2H6O"},
		{"c1ccccc1", "C6H6"},
		{"[NH4+]", "H4N"},
		{"O", "H2O"},
		{"[Na+].[Cl-]", "ClNa"},
		{"C(C)Cl", "C2H5Cl"},
	}
	for _, c := range cases {
		if got := mustParse(t, c.smiles).Formula(); got != c.want {
			t.Errorf("Formula(%q): expected %q, got %q", c.smiles, c.want, got)
		}
	}
}

func TestMolecularWeight(t *testing.T) {
	got := mustParse(t, "CCO").MolecularWeight()
	if got < 46.0 || got > 46.2 {
		t.Errorf("ethanol weight: expected ~46.07, got %g", got)
	}
	got = mustParse(t, "O").MolecularWeight()
	if got < 18.0 || got > 18.1 {
		t.Errorf("water weight: expected ~18.02, got %g", got)
	}
}
