// Package reaction defines the reaction record message schema.
//
// The messages mirror a protocol-buffer style data model: snake_case field
// names carried in struct tags, enum types with stable names, explicit
// presence for optional fields via pointers. Message semantics (presence
// queries, initialization checks) live in schema.go; validation rules live in
// the validation package.
package reaction
