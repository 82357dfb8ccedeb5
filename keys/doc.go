// Package keys provides signing key helpers for record issuers.
//
// Stable:
//   - Pure, deterministic primitives for digesting, signing, issuer-key
//     formatting and role-seed derivation.
//
// Experimental:
//   - Filesystem-backed key storage (KeyStore and related functions). These
//     are local-first utilities used by the CLI, not part of the long-term
//     contract.
package keys
