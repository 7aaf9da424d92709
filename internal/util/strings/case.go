package strings

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first rune of s and leaves the rest untouched
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Decapitalize lower-cases the first rune of s and leaves the rest untouched
func Decapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// DashToCamelCase converts kebab-case to camelCase.
// The input is lower-cased first, so "My-Button" becomes "myButton".
func DashToCamelCase(s string) string {
	segments := strings.Split(strings.ToLower(s), "-")
	var result strings.Builder
	for i, segment := range segments {
		if i == 0 {
			result.WriteString(segment)
			continue
		}
		result.WriteString(Capitalize(segment))
	}
	return result.String()
}

// PascalCase converts a custom element tag name (my-foo-bar) to MyFooBar
func PascalCase(tagName string) string {
	return Capitalize(DashToCamelCase(tagName))
}

// WordsToCamelCase joins words separated by dashes, underscores or spaces
// without changing the case of letters inside each word.
// Used for enum literals like "x-small" -> "xSmall".
func WordsToCamelCase(s string) string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	if len(fields) == 0 {
		return ""
	}
	var result strings.Builder
	result.WriteString(fields[0])
	for _, f := range fields[1:] {
		result.WriteString(Capitalize(f))
	}
	return result.String()
}

// IsUpperIdentifier reports whether s is usable as an Elm type or
// constructor name: an upper-case letter followed by letters, digits or
// underscores.
func IsUpperIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsUpper(r) || r > unicode.MaxASCII {
				return false
			}
			continue
		}
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}

var reservedWords = map[string]bool{
	"if": true, "then": true, "else": true, "case": true, "of": true,
	"let": true, "in": true, "type": true, "module": true, "where": true,
	"import": true, "exposing": true, "as": true, "port": true,
	"alias": true, "infix": true,
}

// LowerIdentifier turns a property or field name into a usable Elm record
// field or variable name. The first rune is lower-cased and reserved words
// get a trailing underscore, so "type" becomes "type_".
func LowerIdentifier(name string) string {
	ident := Decapitalize(name)
	if reservedWords[ident] {
		return ident + "_"
	}
	return ident
}
