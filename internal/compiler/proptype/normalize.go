package proptype

import (
	"strings"
)

const (
	undefinedPrefix = "undefined | "
	undefinedSuffix = " | undefined"
)

// Normalize trims a type string, strips "undefined" union members from
// either end and removes one pair of parentheses wrapping the whole string.
// The boolean result reports whether any "undefined" member was stripped,
// which marks the value as optional.
//
//	Normalize("undefined | (string | number)") // "string | number", true
func Normalize(typeString string) (string, bool) {
	s := strings.TrimSpace(typeString)
	optional := false

	for {
		if strings.HasPrefix(s, undefinedPrefix) {
			s = strings.TrimPrefix(s, undefinedPrefix)
			optional = true
			continue
		}
		if strings.HasSuffix(s, undefinedSuffix) {
			s = strings.TrimSuffix(s, undefinedSuffix)
			optional = true
			continue
		}
		break
	}

	if wrappedInParens(s) {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s, optional
}

// wrappedInParens reports whether the opening parenthesis at the start of s
// is closed by the last character of s.
func wrappedInParens(s string) bool {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i == len(s)-1
			}
		}
	}
	return false
}

// parenthesize wraps an annotation or encoder expression that contains a
// space so it can be nested inside another one.
func parenthesize(expr string) string {
	if !strings.Contains(expr, " ") || wrappedInParens(expr) {
		return expr
	}
	return "(" + expr + ")"
}
