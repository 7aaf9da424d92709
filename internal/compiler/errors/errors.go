// Package errors provides structured diagnostics for the Elm proxy generator.
// It defines error codes, categories and severities, and formats diagnostics
// for both terminal output and machine-parseable JSON.
package errors

import (
	"github.com/goccy/go-json"
)

// ErrorCode represents a unique diagnostic code
type ErrorCode string

// ErrorCategory represents the category of a diagnostic
type ErrorCategory string

const (
	// CategorySyntax represents type-string parse failures (SYN001-099)
	CategorySyntax ErrorCategory = "syntax"
	// CategoryType represents unsupported property/event types (TYP100-199)
	CategoryType ErrorCategory = "type"
	// CategoryCodeGen represents code generation errors (GEN600-699)
	CategoryCodeGen ErrorCategory = "codegen"
	// CategoryConfig represents configuration and manifest errors (CFG001-099)
	CategoryConfig ErrorCategory = "config"
)

// ErrorSeverity indicates the severity level of a diagnostic
type ErrorSeverity string

const (
	// SeverityError aborts generation
	SeverityError ErrorSeverity = "error"
	// SeverityWarning is advisory; generation continues
	SeverityWarning ErrorSeverity = "warning"
	// SeverityInfo indicates informational messages
	SeverityInfo ErrorSeverity = "info"
)

// CompilerError is a structured diagnostic raised while generating modules
type CompilerError struct {
	// Code is the unique diagnostic code (e.g., "TYP100", "GEN601")
	Code ErrorCode `json:"code"`
	// Type is a machine-readable identifier
	Type string `json:"type"`
	// Category is the diagnostic category
	Category ErrorCategory `json:"category"`
	// Severity is the diagnostic severity level
	Severity ErrorSeverity `json:"severity"`
	// Message is the primary message
	Message string `json:"message"`
	// Component is the custom element tag name, if any
	Component string `json:"component,omitempty"`
	// Item is the property or event name, if any
	Item string `json:"item,omitempty"`
	// TypeText is the offending type description, if any
	TypeText string `json:"type_text,omitempty"`
	// Suggestion provides a hint for fixing the problem
	Suggestion string `json:"suggestion,omitempty"`
}

// Error implements the error interface
func (e *CompilerError) Error() string {
	return FormatCompact(e)
}

// Format returns a human-readable message for terminal output
func (e *CompilerError) Format() string {
	return FormatError(e)
}

// ToJSON returns the diagnostic as a JSON string
func (e *CompilerError) ToJSON() (string, error) {
	bytes, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// WithComponent sets the component tag name
func (e *CompilerError) WithComponent(tagName string) *CompilerError {
	e.Component = tagName
	return e
}

// WithItem sets the property or event name
func (e *CompilerError) WithItem(item string) *CompilerError {
	e.Item = item
	return e
}

// WithTypeText sets the offending type description
func (e *CompilerError) WithTypeText(typeText string) *CompilerError {
	e.TypeText = typeText
	return e
}

// WithSuggestion sets a suggestion for fixing the problem
func (e *CompilerError) WithSuggestion(suggestion string) *CompilerError {
	e.Suggestion = suggestion
	return e
}

// ErrorList is a collection of diagnostics
type ErrorList []*CompilerError

// Error implements the error interface
func (el ErrorList) Error() string {
	if len(el) == 0 {
		return "no errors"
	}
	return FormatErrorList(el)
}

// HasErrors returns true if the list contains any errors (excludes warnings/info)
func (el ErrorList) HasErrors() bool {
	for _, err := range el {
		if err.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings returns true if the list contains any warnings
func (el ErrorList) HasWarnings() bool {
	for _, err := range el {
		if err.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// Warnings returns only the warning-level diagnostics
func (el ErrorList) Warnings() ErrorList {
	var warnings ErrorList
	for _, err := range el {
		if err.Severity == SeverityWarning {
			warnings = append(warnings, err)
		}
	}
	return warnings
}

// ToJSON returns all diagnostics as a JSON array
func (el ErrorList) ToJSON() (string, error) {
	if el == nil {
		el = ErrorList{}
	}
	bytes, err := json.MarshalIndent(el, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// ErrorCount returns the number of diagnostics by severity
func (el ErrorList) ErrorCount() (errors, warnings, info int) {
	for _, err := range el {
		switch err.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		case SeverityInfo:
			info++
		}
	}
	return
}

// newError creates a new CompilerError with the given parameters
func newError(
	code ErrorCode,
	typ string,
	category ErrorCategory,
	severity ErrorSeverity,
	message string,
) *CompilerError {
	return &CompilerError{
		Code:     code,
		Type:     typ,
		Category: category,
		Severity: severity,
		Message:  message,
	}
}
