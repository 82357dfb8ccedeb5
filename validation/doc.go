// Package validation checks reaction records against a fixed set of named
// rules.
//
// Every rule has a stable ID (ORD-VAL-...) so callers and policy documents
// can reference, disable or demote individual rules. Findings are reported in
// the deterministic walk order of the record. Validation may apply
// unambiguous in-place fixes: timestamp normalization and derived binary
// structure identifiers.
package validation
