package chem

import "fmt"

// ParseError reports a SMILES syntax or valence problem, with the byte offset
// of the offending token in the input.
type ParseError struct {
	Input   string
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("chem: invalid SMILES %q at offset %d: %s", e.Input, e.Pos, e.Message)
}

func parseErrorf(input string, pos int, format string, args ...any) error {
	return &ParseError{Input: input, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// DecodeError reports a malformed binary molecule payload.
type DecodeError struct {
	Message string
}

func (e *DecodeError) Error() string {
	return "chem: invalid molecule binary: " + e.Message
}

func decodeErrorf(format string, args ...any) error {
	return &DecodeError{Message: fmt.Sprintf(format, args...)}
}
