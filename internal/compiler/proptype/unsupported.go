package proptype

import (
	"fmt"
)

// Unsupported is the terminal category for type strings nothing else could
// represent. It keeps the metadata for diagnostics; every synthesis method
// panics because callers must check Supported first.
type Unsupported struct {
	meta Metadata
}

// NewUnsupported creates the unsupported category for meta
func NewUnsupported(meta Metadata) *Unsupported {
	return &Unsupported{meta: meta}
}

// Metadata returns the metadata that failed classification
func (u *Unsupported) Metadata() Metadata { return u.meta }

func (u *Unsupported) Kind() Kind      { return KindUnsupported }
func (u *Unsupported) Name() string    { return u.meta.Name }
func (u *Unsupported) Supported() bool { return false }

func (u *Unsupported) fail(method string) {
	panic(fmt.Sprintf("proptype: %s called on unsupported type %q (%s)", method, u.meta.TypeText(), u.meta.Name))
}

func (u *Unsupported) Annotation() string               { u.fail("Annotation"); return "" }
func (u *Unsupported) CustomTypeNames() []string        { u.fail("CustomTypeNames"); return nil }
func (u *Unsupported) CustomTypeDeclarations() []string { u.fail("CustomTypeDeclarations"); return nil }
func (u *Unsupported) TypeAliasNames() []string         { u.fail("TypeAliasNames"); return nil }
func (u *Unsupported) TypeAliasDeclarations() []string  { u.fail("TypeAliasDeclarations"); return nil }
func (u *Unsupported) AttributeEncoderName() string     { u.fail("AttributeEncoderName"); return "" }
func (u *Unsupported) JSONEncoderName() string          { u.fail("JSONEncoderName"); return "" }
func (u *Unsupported) Encoders() []string               { u.fail("Encoders"); return nil }
func (u *Unsupported) SettableAsAttribute() bool        { u.fail("SettableAsAttribute"); return false }
