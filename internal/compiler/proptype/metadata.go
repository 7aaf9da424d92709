package proptype

// Source tags where a piece of type metadata came from
type Source int

const (
	// SourceProperty is a component property with original and resolved forms
	SourceProperty Source = iota
	// SourceField is a field of a fixed object type
	SourceField
	// SourceMember is a member of a union type
	SourceMember
	// SourceItem is the item type of an array
	SourceItem
)

// Metadata is the input to classification: a name plus one or two candidate
// type strings. Nested nodes carry the same string as Original and Resolved.
type Metadata struct {
	Source Source
	// Component is the tag name of the owning component, for diagnostics
	Component string
	// Property is the top-level property this node belongs to
	Property string
	// Name is used to derive generated type and function names
	Name     string
	Original string
	Resolved string
}

// PropertyMetadata describes a top-level component property
func PropertyMetadata(tagName, name, original, resolved string) Metadata {
	return Metadata{
		Source:    SourceProperty,
		Component: tagName,
		Property:  name,
		Name:      name,
		Original:  original,
		Resolved:  resolved,
	}
}

// nested derives metadata for a sub-type of m
func (m Metadata) nested(source Source, name, typeString string) Metadata {
	return Metadata{
		Source:    source,
		Component: m.Component,
		Property:  m.Property,
		Name:      name,
		Original:  typeString,
		Resolved:  typeString,
	}
}

// candidates returns the distinct non-empty type strings, original first
func (m Metadata) candidates() []string {
	out := make([]string, 0, 2)
	if m.Original != "" {
		out = append(out, m.Original)
	}
	if m.Resolved != "" && m.Resolved != m.Original {
		out = append(out, m.Resolved)
	}
	return out
}

// TypeText returns the type string used in diagnostics
func (m Metadata) TypeText() string {
	if m.Original != "" {
		return m.Original
	}
	return m.Resolved
}
