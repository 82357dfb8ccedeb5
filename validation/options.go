package validation

// Mode selects how aggressively validation rejects problems.
//
// Strict prefers explicit failure over silent acceptance: the first
// error-severity finding aborts. Permissive collects every finding and leaves
// the decision to the caller.
type Mode int

const (
	Permissive Mode = iota
	Strict
)

// Options tunes a validation run. The zero value is Permissive with every
// rule enabled.
type Options struct {
	Mode Mode

	// Disabled rules are skipped entirely.
	Disabled map[string]bool

	// Demoted rules report warnings instead of errors.
	Demoted map[string]bool

	// DenyWarnings promotes warnings to errors. Rules explicitly listed in
	// Demoted stay warnings.
	DenyWarnings bool

	// SkipDerivedIdentifiers disables the in-place addition of a MOL_BINARY
	// identifier derived from the first parseable structural identifier.
	SkipDerivedIdentifiers bool
}

func (o *Options) disabled(ruleID string) bool {
	return o != nil && o.Disabled[ruleID]
}

func (o *Options) severity(ruleID string, s Severity) Severity {
	if o == nil {
		return s
	}
	if o.Demoted[ruleID] {
		return SeverityWarning
	}
	if s == SeverityWarning && o.DenyWarnings {
		return SeverityError
	}
	return s
}
