package errors

import (
	"fmt"
)

// Type error codes (TYP100-199)
const (
	// ErrUnsupportedPropertyType indicates a property type no category can map
	ErrUnsupportedPropertyType ErrorCode = "TYP100"
	// ErrUnsupportedEvent indicates an event that cannot be bound
	ErrUnsupportedEvent ErrorCode = "TYP101"
)

// NewUnsupportedPropertyType creates a TYP100 warning
func NewUnsupportedPropertyType(tagName, prop, typeText string) *CompilerError {
	return newError(
		ErrUnsupportedPropertyType,
		"unsupported_property_type",
		CategoryType,
		SeverityWarning,
		fmt.Sprintf("Component %q prop %q is not supported by the Elm output target", tagName, prop),
	).WithComponent(tagName).
		WithItem(prop).
		WithTypeText(typeText).
		WithSuggestion("Use a boolean, number, string, string-literal union, object shape, array or union type, or declare the prop as `object`")
}

// NewUnsupportedEvent creates a TYP101 warning
func NewUnsupportedEvent(tagName, event string) *CompilerError {
	return newError(
		ErrUnsupportedEvent,
		"unsupported_event",
		CategoryType,
		SeverityWarning,
		fmt.Sprintf("Component %q event %q is not supported by the Elm output target", tagName, event),
	).WithComponent(tagName).WithItem(event)
}
