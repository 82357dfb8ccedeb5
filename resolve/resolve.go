// Package resolve maps a compound's identifiers to a single molecule.
//
// Resolution is deterministic: identifiers are considered in order, the first
// one that yields a molecule wins, and every identifier receives an explicit
// verdict. There is no network lookup; NAME identifiers and notations
// outside the local chemistry layer are excluded with a reason.
package resolve

import (
	"fmt"
	"strings"

	"openreaction.dev/ordkit/chem"
	"openreaction.dev/ordkit/reaction"
)

type State string

const (
	StateResolved   State = "Resolved"
	StateUnresolved State = "Unresolved"
)

// VerdictState classifies what happened to one identifier.
type VerdictState string

const (
	// VerdictResolved marks the identifier the molecule came from.
	VerdictResolved VerdictState = "Resolved"
	// VerdictExcluded marks identifiers that cannot produce a molecule.
	VerdictExcluded VerdictState = "Excluded"
	// VerdictRedundant marks resolvable identifiers after the winner.
	VerdictRedundant VerdictState = "Redundant"
)

// Verdict is the per-identifier outcome of a resolution.
type Verdict struct {
	Index  int
	Type   reaction.CompoundIdentifierType
	State  VerdictState
	Reason string
}

// Resolution is the deterministic result of resolving one compound.
type Resolution struct {
	State State
	// Mol is non-nil exactly when State is StateResolved.
	Mol *chem.Mol
	// ResolvedIndex is the identifier index the molecule came from, or -1.
	ResolvedIndex int
	Verdicts      []Verdict
}

// Exclusions returns the excluded verdicts, in identifier order.
func (r *Resolution) Exclusions() []Verdict {
	var out []Verdict
	for _, v := range r.Verdicts {
		if v.State == VerdictExcluded {
			out = append(out, v)
		}
	}
	return out
}

// CanonicalSmiles returns the canonical notation of the resolved molecule,
// or "" when unresolved.
func (r *Resolution) CanonicalSmiles() string {
	if r.Mol == nil {
		return ""
	}
	return r.Mol.CanonicalSmiles()
}

// Compound resolves a compound's identifiers to a molecule.
func Compound(c *reaction.Compound) *Resolution {
	res := &Resolution{State: StateUnresolved, ResolvedIndex: -1}
	for i, id := range c.Identifiers {
		verdict := Verdict{Index: i, Type: id.Type}
		mol, reason := tryIdentifier(id)
		switch {
		case mol == nil:
			verdict.State = VerdictExcluded
			verdict.Reason = reason
		case res.Mol == nil:
			verdict.State = VerdictResolved
			res.Mol = mol
			res.ResolvedIndex = i
			res.State = StateResolved
		default:
			verdict.State = VerdictRedundant
		}
		res.Verdicts = append(res.Verdicts, verdict)
	}
	return res
}

func tryIdentifier(id *reaction.CompoundIdentifier) (*chem.Mol, string) {
	switch id.Type {
	case reaction.CompoundIdentifierSmiles, reaction.CompoundIdentifierCXSmiles:
		value := id.Value
		if id.Type == reaction.CompoundIdentifierCXSmiles {
			// Drop the CXSMILES extension block; the plain SMILES prefix
			// carries the constitution.
			if i := strings.Index(value, " |"); i >= 0 {
				value = value[:i]
			}
		}
		if value == "" {
			return nil, "empty value"
		}
		m, err := chem.ParseSmiles(value)
		if err != nil {
			return nil, fmt.Sprintf("SMILES parse failed: %v", err)
		}
		return m, ""
	case reaction.CompoundIdentifierMolBinary:
		if len(id.BytesValue) == 0 {
			return nil, "empty bytes_value"
		}
		m, err := chem.MolFromBinary(id.BytesValue)
		if err != nil {
			return nil, fmt.Sprintf("binary decode failed: %v", err)
		}
		return m, ""
	case reaction.CompoundIdentifierName, reaction.CompoundIdentifierIUPACName:
		return nil, "name resolution requires a network lookup, which is not supported"
	case reaction.CompoundIdentifierInChI,
		reaction.CompoundIdentifierInChIKey,
		reaction.CompoundIdentifierMolblock,
		reaction.CompoundIdentifierXYZ:
		return nil, fmt.Sprintf("%s is not supported by the local resolver", id.Type)
	default:
		return nil, fmt.Sprintf("%s is not a structural identifier", id.Type)
	}
}
