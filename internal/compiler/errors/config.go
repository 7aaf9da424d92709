package errors

import (
	"fmt"
	"strings"
)

// Configuration error codes (CFG001-099)
const (
	// ErrMissingOutputDir indicates the required output directory setting is absent
	ErrMissingOutputDir ErrorCode = "CFG001"
	// ErrInvalidManifest indicates the component manifest could not be read
	ErrInvalidManifest ErrorCode = "CFG002"
	// ErrUnknownExcludedComponent indicates an excluded tag that no component declares
	ErrUnknownExcludedComponent ErrorCode = "CFG003"
)

// NewMissingOutputDir creates a CFG001 error
func NewMissingOutputDir() *CompilerError {
	return newError(
		ErrMissingOutputDir,
		"missing_output_dir",
		CategoryConfig,
		SeverityError,
		"output_dir is required",
	).WithSuggestion("Set output_dir in elmproxy.yaml or pass --output-dir")
}

// NewInvalidManifest creates a CFG002 error
func NewInvalidManifest(path, reason string) *CompilerError {
	return newError(
		ErrInvalidManifest,
		"invalid_manifest",
		CategoryConfig,
		SeverityError,
		fmt.Sprintf("Cannot read component manifest %s: %s", path, reason),
	)
}

// NewUnknownExcludedComponent creates a CFG003 warning
func NewUnknownExcludedComponent(tagName string, similar []string) *CompilerError {
	err := newError(
		ErrUnknownExcludedComponent,
		"unknown_excluded_component",
		CategoryConfig,
		SeverityWarning,
		fmt.Sprintf("Excluded component %q is not declared in the manifest", tagName),
	).WithComponent(tagName)
	if len(similar) > 0 {
		err.WithSuggestion("Did you mean: " + strings.Join(similar, ", ") + "?")
	}
	return err
}
