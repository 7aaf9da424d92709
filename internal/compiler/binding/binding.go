// Package binding adapts component properties and events into the items a
// generated view function binds onto its custom element.
package binding

import (
	"fmt"
	"strings"

	"github.com/stencil-elm/elmproxy/internal/compiler/metadata"
	"github.com/stencil-elm/elmproxy/internal/compiler/proptype"
	strutil "github.com/stencil-elm/elmproxy/internal/util/strings"
)

// RecordArgument is the name of the view argument when several items are
// combined into one Props record
const RecordArgument = "attributes"

// Item is one bindable entry of a generated view function
type Item interface {
	// Supported reports whether the item can be bound at all
	Supported() bool

	// IsEvent reports whether the item is an event listener
	IsEvent() bool

	// FieldName is the Props record field, or the bare argument name when
	// the item is the only one
	FieldName() string

	// ArgAnnotation is the Elm type of the argument, including Maybe for
	// optional items
	ArgAnnotation() string

	// FieldAnnotation is the "name : Type" line of the Props record
	FieldAnnotation() string

	// MaybeHTMLAttribute is the expression producing a Maybe (Attribute msg)
	MaybeHTMLAttribute(isOnly bool) string

	CustomTypeNames() []string
	CustomTypeDeclarations() []string
	TypeAliasNames() []string
	TypeAliasDeclarations() []string
	Encoders() []string
}

// Prop binds one component property through its classified type
type Prop struct {
	tagName  string
	property metadata.Property
	typ      proptype.Type
}

// NewProp classifies the property type. The error is a hard failure from
// classification; an unsupported type is reported by Supported instead.
func NewProp(tagName string, p metadata.Property) (*Prop, error) {
	typ, err := proptype.Classify(proptype.PropertyMetadata(
		tagName,
		p.Name,
		p.ComplexType.Original,
		p.ComplexType.Resolved,
	))
	if err != nil {
		return nil, err
	}
	return &Prop{tagName: tagName, property: p, typ: typ}, nil
}

// SlotProperty is the implicit optional string "slot" attribute every custom
// element accepts
func SlotProperty() metadata.Property {
	return metadata.Property{
		Name:        "slot",
		Attribute:   "slot",
		ComplexType: metadata.ComplexType{Original: "string", Resolved: "string"},
	}
}

// Type returns the classified type of the property
func (p *Prop) Type() proptype.Type { return p.typ }

// Property returns the underlying descriptor
func (p *Prop) Property() metadata.Property { return p.property }

func (p *Prop) Supported() bool { return p.typ.Supported() }
func (p *Prop) IsEvent() bool   { return false }

func (p *Prop) FieldName() string {
	return strutil.LowerIdentifier(p.property.Name)
}

func (p *Prop) ArgAnnotation() string {
	if p.property.Required {
		return p.typ.Annotation()
	}
	return "Maybe " + parenthesize(p.typ.Annotation())
}

func (p *Prop) FieldAnnotation() string {
	return fmt.Sprintf("%s : %s", p.FieldName(), p.ArgAnnotation())
}

// MaybeHTMLAttribute binds the value with attribute when it serializes to a
// string, otherwise with property. Required props always bind; optional
// props bind only when present.
//
//	disabled |> boolToString |> attribute "disabled" |> Just
//	attributes.size |> Maybe.map (sizeToString >> attribute "size")
func (p *Prop) MaybeHTMLAttribute(isOnly bool) string {
	setter := "property"
	if p.typ.SettableAsAttribute() {
		setter = "attribute"
	}
	bind := fmt.Sprintf("%s %q", setter, p.property.AttributeName())
	encoder := p.typ.AttributeEncoderName()
	value := argumentAccess(p.FieldName(), isOnly)

	if p.property.Required {
		if encoder == "" {
			return fmt.Sprintf("%s |> %s |> Just", value, bind)
		}
		return fmt.Sprintf("%s |> %s |> %s |> Just", value, encoder, bind)
	}

	if encoder == "" {
		return fmt.Sprintf("%s |> Maybe.map (%s)", value, bind)
	}
	return fmt.Sprintf("%s |> Maybe.map (%s >> %s)", value, encoder, bind)
}

func (p *Prop) CustomTypeNames() []string        { return p.typ.CustomTypeNames() }
func (p *Prop) CustomTypeDeclarations() []string { return p.typ.CustomTypeDeclarations() }
func (p *Prop) TypeAliasNames() []string         { return p.typ.TypeAliasNames() }
func (p *Prop) TypeAliasDeclarations() []string  { return p.typ.TypeAliasDeclarations() }
func (p *Prop) Encoders() []string               { return p.typ.Encoders() }

// Event binds a listener that sends a message every time the event fires.
// The event payload is not decoded.
type Event struct {
	tagName string
	name    string
}

// NewEvent wraps an event descriptor
func NewEvent(tagName string, e metadata.Event) *Event {
	return &Event{tagName: tagName, name: e.Name}
}

// Name returns the DOM event name
func (e *Event) Name() string { return e.name }

// Supported reports whether the event name yields a valid handler name
func (e *Event) Supported() bool {
	return strutil.IsUpperIdentifier(e.handlerSuffix())
}

func (e *Event) IsEvent() bool { return true }

// FieldName is the handler name: "on" followed by the camel-cased event name
func (e *Event) FieldName() string {
	return "on" + e.handlerSuffix()
}

func (e *Event) handlerSuffix() string {
	return strutil.Capitalize(strutil.WordsToCamelCase(e.name))
}

func (e *Event) ArgAnnotation() string { return "Maybe msg" }

func (e *Event) FieldAnnotation() string {
	return fmt.Sprintf("%s : %s", e.FieldName(), e.ArgAnnotation())
}

func (e *Event) MaybeHTMLAttribute(isOnly bool) string {
	return fmt.Sprintf("%s |> Maybe.map (Decode.succeed >> on %q)", argumentAccess(e.FieldName(), isOnly), e.name)
}

func (e *Event) CustomTypeNames() []string        { return nil }
func (e *Event) CustomTypeDeclarations() []string { return nil }
func (e *Event) TypeAliasNames() []string         { return nil }
func (e *Event) TypeAliasDeclarations() []string  { return nil }
func (e *Event) Encoders() []string               { return nil }

func argumentAccess(field string, isOnly bool) string {
	if isOnly {
		return field
	}
	return RecordArgument + "." + field
}

func parenthesize(annotation string) string {
	if strings.Contains(annotation, " ") {
		return "(" + annotation + ")"
	}
	return annotation
}
