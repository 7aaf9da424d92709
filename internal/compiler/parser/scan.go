// Package parser splits structural type strings, as emitted by the component
// compiler, into their named or positional parts.
//
// Two grammars are supported: object shapes ("{ foo: string; bar?: number; }")
// and unions ("a | b | c"). Neither parser recurses: each returns the raw
// sub-strings, and callers re-invoke parsing on them to walk nested types.
package parser

import (
	"strings"
)

// cursor tracks the parse position within a type string
type cursor struct {
	input string
	pos   int
}

func (c *cursor) rest() string {
	return c.input[c.pos:]
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.input)
}

func (c *cursor) hasPrefix(prefix string) bool {
	return strings.HasPrefix(c.rest(), prefix)
}

// expect consumes a literal token or fails with a description of what was expected
func (c *cursor) expect(token, expected string) error {
	if !c.hasPrefix(token) {
		return newParseError(c.input, c.pos, expected)
	}
	c.pos += len(token)
	return nil
}

// scanTopLevel returns the text from the cursor up to the next occurrence of
// delim at nesting depth zero and leaves the cursor on the delimiter. When
// allowEnd is set, reaching the end of input also terminates the scan.
// One counter tracks every bracket pair ({}, [], ()); quoted literals are
// skipped so their contents never affect the depth.
func (c *cursor) scanTopLevel(delim string, allowEnd bool, expected string) (string, error) {
	start := c.pos
	depth := 0

	for i := c.pos; i < len(c.input); i++ {
		if depth == 0 && strings.HasPrefix(c.input[i:], delim) {
			c.pos = i
			return c.input[start:i], nil
		}

		switch ch := c.input[i]; ch {
		case '"', '\'':
			end := closingQuote(c.input, i)
			if end < 0 {
				return "", newParseError(c.input, start, expected)
			}
			i = end
		case '{', '[', '(':
			depth++
		case '}', ']', ')':
			depth--
			if depth < 0 {
				return "", newParseError(c.input, start, expected)
			}
		}
	}

	if allowEnd && depth == 0 {
		c.pos = len(c.input)
		return c.input[start:], nil
	}
	return "", newParseError(c.input, start, expected)
}

// closingQuote returns the index of the quote that closes the literal
// opened at start, or -1 when the literal is unterminated.
func closingQuote(s string, start int) int {
	quote := s[start]
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case quote:
			return i
		}
	}
	return -1
}

// HasTopLevelUnion reports whether s contains a " | " delimiter outside of
// any brackets, i.e. whether s is itself a union rather than a single member.
func HasTopLevelUnion(s string) bool {
	members, err := ParseUnion(s)
	return err == nil && len(members) > 1
}
