package errors

import (
	"fmt"
)

// Code generation error codes (GEN600-699)
const (
	// ErrCodeGenFailed indicates a general code generation failure
	ErrCodeGenFailed ErrorCode = "GEN600"
	// ErrInvalidConstructorName indicates a string literal that can't become an Elm constructor
	ErrInvalidConstructorName ErrorCode = "GEN601"
	// ErrDuplicateConstructor indicates two literals that map to the same constructor
	ErrDuplicateConstructor ErrorCode = "GEN602"
)

// NewCodeGenFailed creates a GEN600 error
func NewCodeGenFailed(tagName, reason string) *CompilerError {
	return newError(
		ErrCodeGenFailed,
		"codegen_failed",
		CategoryCodeGen,
		SeverityError,
		fmt.Sprintf("Code generation failed: %s", reason),
	).WithComponent(tagName)
}

// NewInvalidConstructorName creates a GEN601 error
func NewInvalidConstructorName(tagName, prop, literal string) *CompilerError {
	return newError(
		ErrInvalidConstructorName,
		"invalid_constructor_name",
		CategoryCodeGen,
		SeverityError,
		fmt.Sprintf("Component %q prop %q value %s cannot be converted to an Elm custom type constructor name", tagName, prop, literal),
	).WithComponent(tagName).
		WithItem(prop).
		WithTypeText(literal).
		WithSuggestion("String literal values must start with a letter and contain only letters, digits, dashes, underscores or spaces")
}

// NewDuplicateConstructor creates a GEN602 error
func NewDuplicateConstructor(tagName, prop, constructor string) *CompilerError {
	return newError(
		ErrDuplicateConstructor,
		"duplicate_constructor",
		CategoryCodeGen,
		SeverityError,
		fmt.Sprintf("Component %q prop %q has more than one value that maps to the Elm constructor %s", tagName, prop, constructor),
	).WithComponent(tagName).WithItem(prop)
}
