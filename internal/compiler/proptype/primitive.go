package proptype

import (
	"strings"
)

// Boolean maps "boolean" to Bool, bound as a "true"/"false" attribute
type Boolean struct {
	leaf
	meta Metadata
}

func (b *Boolean) Kind() Kind                   { return KindBoolean }
func (b *Boolean) Name() string                 { return b.meta.Name }
func (b *Boolean) Supported() bool              { return true }
func (b *Boolean) Annotation() string           { return "Bool" }
func (b *Boolean) AttributeEncoderName() string { return "boolToString" }
func (b *Boolean) JSONEncoderName() string      { return "Encode.bool" }
func (b *Boolean) SettableAsAttribute() bool    { return true }

func (b *Boolean) Encoders() []string {
	return []string{strings.Join([]string{
		"boolToString : Bool -> String",
		"boolToString bool =",
		"    if bool then",
		`        "true"`,
		"",
		"    else",
		`        "false"`,
	}, "\n")}
}

// Number maps "number" to Int. Floats are not supported.
type Number struct {
	leaf
	meta Metadata
}

func (n *Number) Kind() Kind                   { return KindNumber }
func (n *Number) Name() string                 { return n.meta.Name }
func (n *Number) Supported() bool              { return true }
func (n *Number) Annotation() string           { return "Int" }
func (n *Number) AttributeEncoderName() string { return "String.fromInt" }
func (n *Number) JSONEncoderName() string      { return "Encode.int" }
func (n *Number) Encoders() []string           { return nil }
func (n *Number) SettableAsAttribute() bool    { return true }

// String maps "string" to String, bound without conversion
type String struct {
	leaf
	meta Metadata
}

func (s *String) Kind() Kind                   { return KindString }
func (s *String) Name() string                 { return s.meta.Name }
func (s *String) Supported() bool              { return true }
func (s *String) Annotation() string           { return "String" }
func (s *String) AttributeEncoderName() string { return "" }
func (s *String) JSONEncoderName() string      { return "Encode.string" }
func (s *String) Encoders() []string           { return nil }
func (s *String) SettableAsAttribute() bool    { return true }

// AnyObject maps the nonspecific "object" type to an opaque Json.Encode.Value.
// The calling Elm code is responsible for encoding the value itself.
type AnyObject struct {
	leaf
	meta Metadata
}

func (a *AnyObject) Kind() Kind                   { return KindAnyObject }
func (a *AnyObject) Name() string                 { return a.meta.Name }
func (a *AnyObject) Supported() bool              { return true }
func (a *AnyObject) Annotation() string           { return "Value" }
func (a *AnyObject) AttributeEncoderName() string { return "" }
func (a *AnyObject) JSONEncoderName() string      { return "identity" }
func (a *AnyObject) Encoders() []string           { return nil }
func (a *AnyObject) SettableAsAttribute() bool    { return false }
