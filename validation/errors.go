package validation

import "errors"

// Severity splits findings into hard errors and advisory warnings.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Finding is one validation result: a stable rule ID, the dotted path of the
// offending field, and a human-readable message. Findings are ordered
// deterministically by the walk order of the record.
type Finding struct {
	Severity Severity
	RuleID   string
	Path     string
	Message  string
}

// Error is the structured error returned in Strict mode.
//
// RuleID is a stable identifier (e.g., ORD-VAL-014) naming the violated rule.
// Message is intended for humans; do not match on it.
type Error struct {
	RuleID  string
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return e.Path + ": " + e.Message
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// RuleID returns the stable rule ID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
