// Package chem implements the molecule model used by reaction records.
//
// It provides SMILES parsing, canonical SMILES generation, a versioned binary
// molecule encoding, and basic molecular properties (formula, weight).
// Canonical SMILES is the library's canonical text notation: two molecules are
// considered identical exactly when their canonical SMILES strings are equal.
package chem
