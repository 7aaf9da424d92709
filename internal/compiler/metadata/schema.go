// Package metadata describes the custom elements a manifest declares and
// loads manifests from JSON or YAML files.
package metadata

import (
	"slices"
)

// Manifest is the list of component descriptors supplied by the host build
type Manifest struct {
	Version    string      `json:"version,omitempty" yaml:"version,omitempty"`
	Components []Component `json:"components" yaml:"components"`
}

// Component describes one custom element
type Component struct {
	TagName string `json:"tagName" yaml:"tagName"`
	// Internal components are never given a module
	Internal bool `json:"internal,omitempty" yaml:"internal,omitempty"`
	// HTMLTagNames lists the child tags the component renders; "slot" means
	// the component accepts children
	HTMLTagNames []string   `json:"htmlTagNames,omitempty" yaml:"htmlTagNames,omitempty"`
	Properties   []Property `json:"properties,omitempty" yaml:"properties,omitempty"`
	Events       []Event    `json:"events,omitempty" yaml:"events,omitempty"`
}

// Property describes one component property
type Property struct {
	Name string `json:"name" yaml:"name"`
	// Attribute is the HTML attribute name; empty when the property is not
	// reflected to an attribute
	Attribute   string      `json:"attribute,omitempty" yaml:"attribute,omitempty"`
	Required    bool        `json:"required,omitempty" yaml:"required,omitempty"`
	ComplexType ComplexType `json:"complexType" yaml:"complexType"`
}

// ComplexType holds a property type as written and with aliases expanded
type ComplexType struct {
	Original string `json:"original" yaml:"original"`
	Resolved string `json:"resolved" yaml:"resolved"`
}

// Event describes one event the component emits
type Event struct {
	Name string `json:"name" yaml:"name"`
}

// TakesChildren reports whether the component renders a slot
func (c Component) TakesChildren() bool {
	return slices.Contains(c.HTMLTagNames, "slot")
}

// AttributeName returns the attribute the property binds to
func (p Property) AttributeName() string {
	if p.Attribute != "" {
		return p.Attribute
	}
	return p.Name
}

// TagNames returns the tag names of every component in declaration order
func (m *Manifest) TagNames() []string {
	tags := make([]string, 0, len(m.Components))
	for _, c := range m.Components {
		tags = append(tags, c.TagName)
	}
	return tags
}

// Lookup finds a component by tag name
func (m *Manifest) Lookup(tagName string) (Component, bool) {
	for _, c := range m.Components {
		if c.TagName == tagName {
			return c, true
		}
	}
	return Component{}, false
}
