// Package proptype classifies structural type strings into a closed set of
// categories and synthesizes the Elm source each category needs: a type
// annotation, custom type and type alias declarations, encoder functions and
// the attribute-versus-property binding policy.
//
// Composite categories (fixed objects, arrays, unions) classify their
// sub-types recursively through Classify, so every node of a type tree is a
// Type of its own.
package proptype

// Type is the capability set shared by every category.
//
// Synthesis methods must only be called when Supported reports true;
// *Unsupported panics on every one of them.
type Type interface {
	// Kind returns the category of this type
	Kind() Kind

	// Name returns the name generated declarations are derived from
	Name() string

	// Supported reports whether this type and all of its sub-types can be
	// represented in Elm
	Supported() bool

	// Annotation returns the Elm type expression for a value of this type
	Annotation() string

	// CustomTypeNames returns the names of the sum types this type needs
	CustomTypeNames() []string

	// CustomTypeDeclarations returns the source of the sum types this type needs
	CustomTypeDeclarations() []string

	// TypeAliasNames returns the names of the record aliases this type needs
	TypeAliasNames() []string

	// TypeAliasDeclarations returns the source of the record aliases this type needs
	TypeAliasDeclarations() []string

	// AttributeEncoderName returns the function applied before binding the
	// value to the element, or "" when the value is bound as is
	AttributeEncoderName() string

	// JSONEncoderName returns the function that turns the value into a
	// Json.Encode.Value when it is nested inside another type
	JSONEncoderName() string

	// Encoders returns the source of every helper and encoder function
	Encoders() []string

	// SettableAsAttribute reports whether the value can be serialized to an
	// HTML attribute string; false forces a property binding
	SettableAsAttribute() bool
}

// leaf supplies empty declaration lists for categories without sub-types
type leaf struct{}

func (leaf) CustomTypeNames() []string        { return nil }
func (leaf) CustomTypeDeclarations() []string { return nil }
func (leaf) TypeAliasNames() []string         { return nil }
func (leaf) TypeAliasDeclarations() []string  { return nil }
