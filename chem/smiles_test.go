package chem

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, s string) *Mol {
	t.Helper()
	m, err := ParseSmiles(s)
	if err != nil {
		t.Fatalf("ParseSmiles(%q): %v", s, err)
	}
	return m
}

func TestParseSmiles_Methane(t *testing.T) {
	m := mustParse(t, "C")
	if m.NumAtoms() != 1 || m.NumBonds() != 0 {
		t.Fatalf("expected 1 atom 0 bonds, got %d/%d", m.NumAtoms(), m.NumBonds())
	}
	if m.Atoms[0].NumH != 4 {
		t.Errorf("expected 4 implicit hydrogens, got %d", m.Atoms[0].NumH)
	}
}

func TestParseSmiles_Ethanol(t *testing.T) {
	m := mustParse(t, "CCO")
	if m.NumAtoms() != 3 || m.NumBonds() != 2 {
		t.Fatalf("expected 3 atoms 2 bonds, got %d/%d", m.NumAtoms(), m.NumBonds())
	}
	for i, want := range []int{3, 2, 1} {
		if got := m.Atoms[i].NumH; got != want {
			t.Errorf("atom %d: expected %d hydrogens, got %d", i, want, got)
		}
	}
}

func TestParseSmiles_TwoLetterOrganic(t *testing.T) {
	m := mustParse(t, "CCl")
	if m.NumAtoms() != 2 {
		t.Fatalf("expected 2 atoms, got %d", m.NumAtoms())
	}
	if m.Atoms[1].Symbol != "Cl" {
		t.Errorf("expected Cl, got %q", m.Atoms[1].Symbol)
	}
}

func TestParseSmiles_BracketAtom(t *testing.T) {
	m := mustParse(t, "[NH4+]")
	a := m.Atoms[0]
	if a.Symbol != "N" || a.NumH != 4 || a.Charge != 1 {
		t.Errorf("expected N/H4/+1, got %q/%d/%d", a.Symbol, a.NumH, a.Charge)
	}

	m = mustParse(t, "[13CH4]")
	a = m.Atoms[0]
	if a.Isotope != 13 || a.NumH != 4 {
		t.Errorf("expected isotope 13 with 4 hydrogens, got %d/%d", a.Isotope, a.NumH)
	}

	m = mustParse(t, "[O-2]")
	if m.Atoms[0].Charge != -2 {
		t.Errorf("expected charge -2, got %d", m.Atoms[0].Charge)
	}
}

func TestParseSmiles_AromaticRing(t *testing.T) {
	m := mustParse(t, "c1ccccc1")
	if m.NumAtoms() != 6 || m.NumBonds() != 6 {
		t.Fatalf("expected 6 atoms 6 bonds, got %d/%d", m.NumAtoms(), m.NumBonds())
	}
	for i, a := range m.Atoms {
		if !a.Aromatic {
			t.Errorf("atom %d: expected aromatic", i)
		}
		if a.NumH != 1 {
			t.Errorf("atom %d: expected 1 hydrogen, got %d", i, a.NumH)
		}
	}
	for i, b := range m.Bonds {
		if b.Order != BondAromatic {
			t.Errorf("bond %d: expected aromatic order, got %d", i, b.Order)
		}
	}
}

func TestParseSmiles_PyridineNitrogenHasNoHydrogen(t *testing.T) {
	m := mustParse(t, "c1ccncc1")
	for _, a := range m.Atoms {
		if a.Symbol == "N" && a.NumH != 0 {
			t.Errorf("pyridine nitrogen: expected 0 hydrogens, got %d", a.NumH)
		}
	}
}

func TestParseSmiles_Branches(t *testing.T) {
	m := mustParse(t, "CC(C)(C)C")
	if m.NumAtoms() != 5 || m.NumBonds() != 4 {
		t.Fatalf("expected 5 atoms 4 bonds, got %d/%d", m.NumAtoms(), m.NumBonds())
	}
	if m.Atoms[1].NumH != 0 {
		t.Errorf("quaternary carbon: expected 0 hydrogens, got %d", m.Atoms[1].NumH)
	}
}

func TestParseSmiles_PercentRingClosure(t *testing.T) {
	a := mustParse(t, "C1CCCCC1")
	b := mustParse(t, "C%10CCCCC%10")
	if a.CanonicalSmiles() != b.CanonicalSmiles() {
		t.Errorf("expected %%nn ring closure to match digit form")
	}
}

func TestParseSmiles_Components(t *testing.T) {
	m := mustParse(t, "[Na+].[Cl-]")
	if m.NumAtoms() != 2 || m.NumBonds() != 0 {
		t.Fatalf("expected 2 atoms 0 bonds, got %d/%d", m.NumAtoms(), m.NumBonds())
	}
}

func TestParseSmiles_Errors(t *testing.T) {
	bad := []string{
		"",
		"C(",
		"C)C",
		"C1CC",
		"C=",
		"C==C",
		"[Xx]",
		"[CH4",
		"C..C",
		"1CC",
		"%5C",
		"Cq",
	}
	for _, s := range bad {
		if _, err := ParseSmiles(s); err == nil {
			t.Errorf("ParseSmiles(%q): expected error", s)
		}
	}
}

func TestParseSmiles_ErrorReportsOffset(t *testing.T) {
	_, err := ParseSmiles("CC(C")
	if err == nil {
		t.Fatal("expected error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Input != "CC(C" {
		t.Errorf("expected input echoed in error, got %q", pe.Input)
	}
	if !strings.Contains(pe.Error(), "invalid SMILES") {
		t.Errorf("unexpected message: %v", pe)
	}
}

func TestSplitReactionSmiles(t *testing.T) {
	reactants, agents, products, err := SplitReactionSmiles("C(C)Cl.Br>>C(C)Br.Cl")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(reactants) != 2 || len(agents) != 0 || len(products) != 2 {
		t.Fatalf("expected 2/0/2 components, got %d/%d/%d", len(reactants), len(agents), len(products))
	}
	if reactants[0] != "C(C)Cl" || products[1] != "Cl" {
		t.Errorf("unexpected components: %v %v", reactants, products)
	}

	if _, _, _, err := SplitReactionSmiles("CC>CC"); err == nil {
		t.Error("expected error for single > separator")
	}
	if _, _, _, err := SplitReactionSmiles(">>CC"); err == nil {
		t.Error("expected error for missing reactants")
	}
	if _, _, _, err := SplitReactionSmiles("CC.>>C"); err == nil {
		t.Error("expected error for empty component")
	}
}
