package proptype

import (
	"strings"

	"github.com/stencil-elm/elmproxy/internal/compiler/parser"
)

// Array maps "T[]" to List T, bound as a property through Encode.list and
// the item's JSON encoder.
type Array struct {
	meta Metadata
	item Type
}

// newArray classifies the item type. An item that is itself a top-level
// union ("a | b[]") is not an array item, so the union category gets the
// whole string instead.
func newArray(meta Metadata, typeString string) (*Array, error) {
	a := &Array{meta: meta}

	itemString := strings.TrimSuffix(typeString, "[]")
	if itemString == "" || parser.HasTopLevelUnion(itemString) {
		return a, nil
	}

	item, err := Classify(meta.nested(SourceItem, meta.Name+"ListItem", itemString))
	if err != nil {
		return nil, err
	}
	a.item = item
	return a, nil
}

// Item returns the classified item type, or nil when the string was not an array
func (a *Array) Item() Type { return a.item }

func (a *Array) Kind() Kind   { return KindArray }
func (a *Array) Name() string { return a.meta.Name }

func (a *Array) Supported() bool {
	return a.item != nil && a.item.Supported()
}

func (a *Array) Annotation() string {
	return "List " + parenthesize(a.item.Annotation())
}

func (a *Array) CustomTypeNames() []string        { return a.item.CustomTypeNames() }
func (a *Array) CustomTypeDeclarations() []string { return a.item.CustomTypeDeclarations() }
func (a *Array) TypeAliasNames() []string         { return a.item.TypeAliasNames() }
func (a *Array) TypeAliasDeclarations() []string  { return a.item.TypeAliasDeclarations() }
func (a *Array) Encoders() []string               { return a.item.Encoders() }
func (a *Array) SettableAsAttribute() bool        { return false }

func (a *Array) AttributeEncoderName() string {
	return "Encode.list " + parenthesize(a.item.JSONEncoderName())
}

func (a *Array) JSONEncoderName() string { return a.AttributeEncoderName() }
