package proptype

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/stencil-elm/elmproxy/internal/compiler/errors"
	strutil "github.com/stencil-elm/elmproxy/internal/util/strings"
)

// Enum maps a union of string literals ("small" | "large") to a generated
// sum type with one constructor per literal, bound through a generated
// toString case function.
type Enum struct {
	meta         Metadata
	values       []string
	constructors []string
}

// newEnum decodes every literal of a '"a" | "b"' type string. A literal that
// cannot become a constructor name is a hard error.
func newEnum(meta Metadata, typeString string) (*Enum, error) {
	e := &Enum{meta: meta}
	seen := make(map[string]bool)

	for _, token := range strings.Split(typeString, " | ") {
		var value string
		if err := json.Unmarshal([]byte(token), &value); err != nil {
			return nil, errors.NewInvalidConstructorName(meta.Component, meta.Property, token)
		}

		constructor := strutil.Capitalize(strutil.WordsToCamelCase(value))
		if !strutil.IsUpperIdentifier(constructor) {
			return nil, errors.NewInvalidConstructorName(meta.Component, meta.Property, token)
		}
		if seen[constructor] {
			return nil, errors.NewDuplicateConstructor(meta.Component, meta.Property, constructor)
		}
		seen[constructor] = true

		e.values = append(e.values, value)
		e.constructors = append(e.constructors, constructor)
	}

	return e, nil
}

func (e *Enum) Kind() Kind                { return KindEnum }
func (e *Enum) Name() string              { return e.meta.Name }
func (e *Enum) Supported() bool           { return true }
func (e *Enum) Annotation() string        { return e.customTypeName() }
func (e *Enum) CustomTypeNames() []string { return []string{e.customTypeName()} }
func (e *Enum) TypeAliasNames() []string  { return nil }
func (e *Enum) SettableAsAttribute() bool { return true }

func (e *Enum) TypeAliasDeclarations() []string { return nil }

// Constructors returns the generated constructor names in literal order
func (e *Enum) Constructors() []string { return e.constructors }

// Values returns the decoded literal values in source order
func (e *Enum) Values() []string { return e.values }

func (e *Enum) customTypeName() string {
	return strutil.Capitalize(e.meta.Name)
}

func (e *Enum) CustomTypeDeclarations() []string {
	return []string{fmt.Sprintf("type %s\n    = %s", e.customTypeName(), strings.Join(e.constructors, "\n    | "))}
}

func (e *Enum) AttributeEncoderName() string {
	return strutil.Decapitalize(e.meta.Name) + "ToString"
}

func (e *Enum) JSONEncoderName() string {
	return "(" + e.AttributeEncoderName() + " >> Encode.string)"
}

func (e *Enum) Encoders() []string {
	name := e.AttributeEncoderName()
	lines := []string{
		fmt.Sprintf("%s : %s -> String", name, e.customTypeName()),
		name + " value =",
		"    case value of",
	}
	for i, constructor := range e.constructors {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			fmt.Sprintf("        %s ->", constructor),
			"            "+elmString(e.values[i]),
		)
	}
	return []string{strings.Join(lines, "\n")}
}

// elmString renders s as an Elm string literal
func elmString(s string) string {
	out, err := json.MarshalNoEscape(s)
	if err != nil {
		return fmt.Sprintf("%q", s)
	}
	return string(out)
}
