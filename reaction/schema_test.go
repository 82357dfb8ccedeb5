package reaction

import (
	"strings"
	"testing"
)

func TestReaction_AddIdentifierAndPresence(t *testing.T) {
	var r Reaction
	typ, err := ParseReactionIdentifierType("REACTION_SMILES")
	if err != nil {
		t.Fatalf("parse type: %v", err)
	}
	r.AddIdentifier("C(C)Cl.Br>>C(C)Br.Cl", typ)

	if !r.IsInitialized() {
		t.Error("expected freshly built reaction to be initialized")
	}
	if len(r.Identifiers) != 1 {
		t.Fatalf("expected 1 identifier, got %d", len(r.Identifiers))
	}
	if r.Identifiers[0].Value != "C(C)Cl.Br>>C(C)Br.Cl" {
		t.Errorf("unexpected value %q", r.Identifiers[0].Value)
	}
	if r.Identifiers[0].Type != ReactionIdentifierReactionSmiles {
		t.Errorf("unexpected type %v", r.Identifiers[0].Type)
	}

	set, err := HasField(&r, "setup")
	if err != nil {
		t.Fatalf("HasField(setup): %v", err)
	}
	if set {
		t.Error("expected setup to be unset")
	}

	r.Setup = &ReactionSetup{}
	set, err = HasField(&r, "setup")
	if err != nil {
		t.Fatalf("HasField(setup): %v", err)
	}
	if !set {
		t.Error("expected setup to be set")
	}
}

func TestHasField_UnknownFieldName(t *testing.T) {
	var r Reaction
	_, err := HasField(&r, "not_a_field")
	if err == nil {
		t.Fatal("expected error for unknown field name")
	}
	if !strings.Contains(err.Error(), "Reaction has no field not_a_field") {
		t.Errorf("error must identify the field: %v", err)
	}
}

func TestHasField_NoPresence(t *testing.T) {
	var r Reaction
	// Repeated and plain scalar fields have no presence semantics.
	for _, name := range []string{"identifiers", "reaction_id"} {
		if _, err := HasField(&r, name); err == nil {
			t.Errorf("HasField(%s): expected no-presence error", name)
		}
	}
}

func TestMessageNameAndFields(t *testing.T) {
	if got := MessageName(&Reaction{}); got != "Reaction" {
		t.Errorf("expected Reaction, got %q", got)
	}
	if got := MessageName(&CompoundIdentifier{}); got != "CompoundIdentifier" {
		t.Errorf("expected CompoundIdentifier, got %q", got)
	}

	fields := Fields(&Reaction{})
	want := map[string]bool{"identifiers": true, "setup": true, "outcomes": true, "reaction_id": true}
	for _, f := range fields {
		delete(want, f)
	}
	if len(want) != 0 {
		t.Errorf("missing fields: %v", want)
	}
}

func TestIsInitialized_UnknownEnumValue(t *testing.T) {
	var r Reaction
	r.AddIdentifier("x", ReactionIdentifierType(99))
	if r.IsInitialized() {
		t.Error("expected unknown enum value to make the reaction incomplete")
	}
}

func TestIsInitialized_NestedEnum(t *testing.T) {
	var r Reaction
	in := r.AddInput("solvent")
	c := in.AddComponent()
	c.AddIdentifier("CCO", CompoundIdentifierSmiles)
	c.Role = RoleSolvent
	if !r.IsInitialized() {
		t.Error("expected complete nested reaction to be initialized")
	}

	c.Role = ReactionRole(-1)
	if r.IsInitialized() {
		t.Error("expected bad nested enum to be reported")
	}
}
