package proptype

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stencil-elm/elmproxy/internal/compiler/parser"
	strutil "github.com/stencil-elm/elmproxy/internal/util/strings"
)

// Union maps a union of arbitrary member types to a generated sum type with
// one positional constructor per member, bound as a property through a
// generated case-expression encoder.
type Union struct {
	meta     Metadata
	members  []unionMember
	parseErr error
}

type unionMember struct {
	constructor string
	typ         Type
}

// errSingleMember rejects unions that would recurse into themselves
var errSingleMember = errors.New("not a union type: fewer than two non-undefined members")

func newUnion(meta Metadata, typeString string) (*Union, error) {
	u := &Union{meta: meta}

	parsed, err := parser.ParseUnion(typeString)
	if err != nil {
		u.parseErr = err
		return u, nil
	}

	memberStrings := make([]string, 0, len(parsed))
	for _, m := range parsed {
		if strings.TrimSpace(m.Type) == "undefined" {
			continue
		}
		memberStrings = append(memberStrings, m.Type)
	}
	if len(memberStrings) < 2 {
		u.parseErr = errSingleMember
		return u, nil
	}

	for i, memberString := range memberStrings {
		typ, err := Classify(meta.nested(SourceMember, fmt.Sprintf("%s%dValue", meta.Name, i), memberString))
		if err != nil {
			return nil, err
		}
		u.members = append(u.members, unionMember{
			constructor: fmt.Sprintf("%s%d", strutil.Capitalize(meta.Name), i),
			typ:         typ,
		})
	}
	return u, nil
}

// ParseErr returns the reason this union is unsupported, if it failed to parse
func (u *Union) ParseErr() error { return u.parseErr }

// Constructors returns the positional constructor names
func (u *Union) Constructors() []string {
	names := make([]string, 0, len(u.members))
	for _, m := range u.members {
		names = append(names, m.constructor)
	}
	return names
}

func (u *Union) Kind() Kind   { return KindUnion }
func (u *Union) Name() string { return u.meta.Name }

func (u *Union) Supported() bool {
	if u.parseErr != nil {
		return false
	}
	for _, m := range u.members {
		if !m.typ.Supported() {
			return false
		}
	}
	return true
}

func (u *Union) Annotation() string { return u.customTypeName() }

func (u *Union) customTypeName() string {
	return strutil.Capitalize(u.meta.Name)
}

func (u *Union) CustomTypeNames() []string {
	names := []string{u.customTypeName()}
	for _, m := range u.members {
		names = append(names, m.typ.CustomTypeNames()...)
	}
	return names
}

func (u *Union) CustomTypeDeclarations() []string {
	constructors := make([]string, 0, len(u.members))
	for _, m := range u.members {
		constructors = append(constructors, m.constructor+" "+parenthesize(m.typ.Annotation()))
	}

	decls := []string{fmt.Sprintf("type %s\n    = %s", u.customTypeName(), strings.Join(constructors, "\n    | "))}
	for _, m := range u.members {
		decls = append(decls, m.typ.CustomTypeDeclarations()...)
	}
	return decls
}

func (u *Union) TypeAliasNames() []string {
	var names []string
	for _, m := range u.members {
		names = append(names, m.typ.TypeAliasNames()...)
	}
	return names
}

func (u *Union) TypeAliasDeclarations() []string {
	var decls []string
	for _, m := range u.members {
		decls = append(decls, m.typ.TypeAliasDeclarations()...)
	}
	return decls
}

func (u *Union) AttributeEncoderName() string {
	return strutil.Decapitalize(u.meta.Name) + "Encoder"
}

func (u *Union) JSONEncoderName() string   { return u.AttributeEncoderName() }
func (u *Union) SettableAsAttribute() bool { return false }

func (u *Union) Encoders() []string {
	name := u.AttributeEncoderName()
	lines := []string{
		fmt.Sprintf("%s : %s -> Value", name, u.customTypeName()),
		name + " value =",
		"    case value of",
	}
	for i, m := range u.members {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			fmt.Sprintf("        %s member ->", m.constructor),
			fmt.Sprintf("            %s member", m.typ.JSONEncoderName()),
		)
	}

	encoders := []string{strings.Join(lines, "\n")}
	for _, m := range u.members {
		encoders = append(encoders, m.typ.Encoders()...)
	}
	return encoders
}
