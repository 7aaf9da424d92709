package parser

import (
	"fmt"
)

// ParseError reports where a type string deviated from the expected grammar
type ParseError struct {
	Input    string
	Pos      int
	Expected string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s, found %q", e.Expected, e.Found())
}

// Found returns the unparsed remainder of the input at the failure position
func (e *ParseError) Found() string {
	if e.Pos >= len(e.Input) {
		return ""
	}
	return e.Input[e.Pos:]
}

// newParseError creates a parse error at the given position
func newParseError(input string, pos int, expected string) *ParseError {
	return &ParseError{
		Input:    input,
		Pos:      pos,
		Expected: expected,
	}
}
