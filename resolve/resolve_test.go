package resolve

import (
	"testing"

	"openreaction.dev/ordkit/chem"
	"openreaction.dev/ordkit/reaction"
)

func TestCompound_FirstSuccessWins(t *testing.T) {
	c := &reaction.Compound{}
	c.AddIdentifier("ethanol", reaction.CompoundIdentifierName)
	c.AddIdentifier("CCO", reaction.CompoundIdentifierSmiles)
	c.AddIdentifier("OCC", reaction.CompoundIdentifierSmiles)

	res := Compound(c)
	if res.State != StateResolved {
		t.Fatalf("expected resolved, got %v", res.State)
	}
	if res.ResolvedIndex != 1 {
		t.Errorf("expected index 1, got %d", res.ResolvedIndex)
	}
	want, _ := chem.Canonicalize("CCO")
	if res.CanonicalSmiles() != want {
		t.Errorf("unexpected molecule %q", res.CanonicalSmiles())
	}

	states := []VerdictState{VerdictExcluded, VerdictResolved, VerdictRedundant}
	if len(res.Verdicts) != 3 {
		t.Fatalf("expected 3 verdicts, got %d", len(res.Verdicts))
	}
	for i, want := range states {
		if res.Verdicts[i].State != want {
			t.Errorf("verdict %d: expected %v, got %v", i, want, res.Verdicts[i].State)
		}
	}
}

func TestCompound_MolBinary(t *testing.T) {
	mol, err := chem.ParseSmiles("c1ccccc1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	c := &reaction.Compound{}
	c.AddBytesIdentifier(mol.ToBinary(), reaction.CompoundIdentifierMolBinary)

	res := Compound(c)
	if res.State != StateResolved {
		t.Fatalf("expected resolved, got %v (%v)", res.State, res.Exclusions())
	}
	if res.CanonicalSmiles() != mol.CanonicalSmiles() {
		t.Errorf("molecule mismatch: %q", res.CanonicalSmiles())
	}
}

func TestCompound_CXSmilesPrefix(t *testing.T) {
	c := &reaction.Compound{}
	c.AddIdentifier("CCO |$;;hydroxyl$|", reaction.CompoundIdentifierCXSmiles)
	res := Compound(c)
	if res.State != StateResolved {
		t.Fatalf("expected resolved, got %v (%v)", res.State, res.Exclusions())
	}
	want, _ := chem.Canonicalize("CCO")
	if res.CanonicalSmiles() != want {
		t.Errorf("unexpected molecule %q", res.CanonicalSmiles())
	}
}

func TestCompound_Unresolved(t *testing.T) {
	c := &reaction.Compound{}
	c.AddIdentifier("aspirin", reaction.CompoundIdentifierName)
	c.AddIdentifier("C((", reaction.CompoundIdentifierSmiles)
	c.AddIdentifier("50-78-2", reaction.CompoundIdentifierCASNumber)

	res := Compound(c)
	if res.State != StateUnresolved {
		t.Fatalf("expected unresolved, got %v", res.State)
	}
	if res.Mol != nil || res.ResolvedIndex != -1 {
		t.Error("unresolved resolution must carry no molecule")
	}
	exclusions := res.Exclusions()
	if len(exclusions) != 3 {
		t.Fatalf("expected 3 exclusions, got %d", len(exclusions))
	}
	for _, ex := range exclusions {
		if ex.Reason == "" {
			t.Errorf("exclusion %d has no reason", ex.Index)
		}
	}
}

func TestCompound_Deterministic(t *testing.T) {
	build := func() *reaction.Compound {
		c := &reaction.Compound{}
		c.AddIdentifier("name", reaction.CompoundIdentifierName)
		c.AddIdentifier("CC(=O)O", reaction.CompoundIdentifierSmiles)
		return c
	}
	a := Compound(build())
	b := Compound(build())
	if a.State != b.State || a.ResolvedIndex != b.ResolvedIndex || len(a.Verdicts) != len(b.Verdicts) {
		t.Fatal("resolution not deterministic")
	}
	if a.CanonicalSmiles() != b.CanonicalSmiles() {
		t.Errorf("molecules differ: %q vs %q", a.CanonicalSmiles(), b.CanonicalSmiles())
	}
}
