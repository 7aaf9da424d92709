package proptype

import (
	"fmt"
	"strings"

	"github.com/stencil-elm/elmproxy/internal/compiler/parser"
	strutil "github.com/stencil-elm/elmproxy/internal/util/strings"
)

// FixedObject maps an object shape ("{ foo: string; bar?: number; }") to a
// generated record alias, bound as a property through a generated JSON
// encoder that delegates to each field's own encoder.
type FixedObject struct {
	meta     Metadata
	fields   []objectField
	parseErr error
}

type objectField struct {
	name     string
	optional bool
	typ      Type
}

func newFixedObject(meta Metadata, typeString string) (*FixedObject, error) {
	o := &FixedObject{meta: meta}

	fields, err := parser.ParseObject(typeString)
	if err != nil {
		o.parseErr = err
		return o, nil
	}

	for _, field := range fields {
		_, undefinedStripped := Normalize(field.Type)
		typ, err := Classify(meta.nested(SourceField, field.Name, field.Type))
		if err != nil {
			return nil, err
		}
		o.fields = append(o.fields, objectField{
			name:     field.Name,
			optional: !field.Required || undefinedStripped,
			typ:      typ,
		})
	}
	return o, nil
}

// ParseErr returns the grammar error that made this shape unsupported, if any
func (o *FixedObject) ParseErr() error { return o.parseErr }

func (o *FixedObject) Kind() Kind   { return KindFixedObject }
func (o *FixedObject) Name() string { return o.meta.Name }

func (o *FixedObject) Supported() bool {
	if o.parseErr != nil || len(o.fields) == 0 {
		return false
	}
	for _, f := range o.fields {
		if !f.typ.Supported() {
			return false
		}
	}
	return true
}

func (o *FixedObject) Annotation() string { return o.typeAliasName() }

func (o *FixedObject) typeAliasName() string {
	return strutil.Capitalize(o.meta.Name)
}

func (o *FixedObject) CustomTypeNames() []string {
	var names []string
	for _, f := range o.fields {
		names = append(names, f.typ.CustomTypeNames()...)
	}
	return names
}

func (o *FixedObject) CustomTypeDeclarations() []string {
	var decls []string
	for _, f := range o.fields {
		decls = append(decls, f.typ.CustomTypeDeclarations()...)
	}
	return decls
}

func (o *FixedObject) TypeAliasNames() []string {
	names := []string{o.typeAliasName()}
	for _, f := range o.fields {
		names = append(names, f.typ.TypeAliasNames()...)
	}
	return names
}

func (o *FixedObject) TypeAliasDeclarations() []string {
	recordFields := make([]string, 0, len(o.fields))
	for _, f := range o.fields {
		annotation := f.typ.Annotation()
		if f.optional {
			annotation = "Maybe " + parenthesize(annotation)
		}
		recordFields = append(recordFields, fmt.Sprintf("%s : %s", strutil.LowerIdentifier(f.name), annotation))
	}

	decls := []string{strings.Join([]string{
		fmt.Sprintf("type alias %s =", o.typeAliasName()),
		"    { " + strings.Join(recordFields, "\n    , "),
		"    }",
	}, "\n")}
	for _, f := range o.fields {
		decls = append(decls, f.typ.TypeAliasDeclarations()...)
	}
	return decls
}

func (o *FixedObject) AttributeEncoderName() string {
	return strutil.Decapitalize(o.meta.Name) + "Encoder"
}

func (o *FixedObject) JSONEncoderName() string   { return o.AttributeEncoderName() }
func (o *FixedObject) SettableAsAttribute() bool { return false }

// Encoders returns the record encoder followed by every field's encoders.
// Optional fields that are Nothing are left out of the encoded object.
func (o *FixedObject) Encoders() []string {
	name := o.AttributeEncoderName()
	entries := make([]string, 0, len(o.fields))
	for _, f := range o.fields {
		access := "value." + strutil.LowerIdentifier(f.name)
		key := elmString(f.name)
		if f.optional {
			entries = append(entries, fmt.Sprintf("%s |> Maybe.map (%s >> Tuple.pair %s)", access, f.typ.JSONEncoderName(), key))
		} else {
			entries = append(entries, fmt.Sprintf("Just ( %s, %s %s )", key, f.typ.JSONEncoderName(), access))
		}
	}

	encoders := []string{strings.Join([]string{
		fmt.Sprintf("%s : %s -> Value", name, o.typeAliasName()),
		name + " value =",
		"    [ " + strings.Join(entries, "\n    , "),
		"    ]",
		"        |> List.filterMap identity",
		"        |> Encode.object",
	}, "\n")}
	for _, f := range o.fields {
		encoders = append(encoders, f.typ.Encoders()...)
	}
	return encoders
}
