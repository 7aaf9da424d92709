package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/stencil-elm/elmproxy/internal/compiler/errors"
)

// ErrorLevel represents the severity of an error message
type ErrorLevel int

const (
	ErrorLevelError ErrorLevel = iota
	ErrorLevelWarning
	ErrorLevelInfo
)

// ErrorOptions configures the error message formatting
type ErrorOptions struct {
	Level        ErrorLevel
	Context      string
	Problem      string
	Detail       string
	Suggestions  []string
	HelpCommands []string
	NoColor      bool
}

func paint(noColor bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if noColor {
		c.DisableColor()
	}
	return c
}

// FormatError creates a standardized message with suggestions and help
// commands.
//
//	❌ TYP100 my-foo / callback: Component "my-foo" prop "callback" is not supported by the Elm output target
//	   Type: (value: string) => void
//
//	   Did you mean: ...?
//
//	   → Inspect a type: elmproxy inspect '<type>'
func FormatError(opts ErrorOptions) string {
	var b strings.Builder

	var header, body *color.Color
	var symbol string
	switch opts.Level {
	case ErrorLevelWarning:
		header = paint(opts.NoColor, color.FgYellow, color.Bold)
		body = paint(opts.NoColor, color.FgYellow)
		symbol = "⚠️"
	case ErrorLevelInfo:
		header = paint(opts.NoColor, color.FgCyan, color.Bold)
		body = paint(opts.NoColor, color.FgCyan)
		symbol = "ℹ️"
	default:
		header = paint(opts.NoColor, color.FgRed, color.Bold)
		body = paint(opts.NoColor, color.FgRed)
		symbol = "❌"
	}

	if opts.Context != "" {
		header.Fprintf(&b, "%s %s: %s\n", symbol, opts.Context, opts.Problem)
	} else {
		header.Fprintf(&b, "%s %s\n", symbol, opts.Problem)
	}

	if opts.Detail != "" {
		body.Fprintf(&b, "   %s\n", opts.Detail)
	}

	if len(opts.Suggestions) > 0 {
		b.WriteString("\n")
		paint(opts.NoColor, color.FgYellow).Fprintf(&b, "   %s\n", strings.Join(opts.Suggestions, "\n   "))
	}

	if len(opts.HelpCommands) > 0 {
		b.WriteString("\n")
		cyan := paint(opts.NoColor, color.FgCyan)
		for _, cmd := range opts.HelpCommands {
			cyan.Fprintf(&b, "   → %s\n", cmd)
		}
	}

	return b.String()
}

// FormatDiagnostic renders one generator diagnostic
func FormatDiagnostic(d *errors.CompilerError, noColor bool) string {
	level := ErrorLevelError
	switch d.Severity {
	case errors.SeverityWarning:
		level = ErrorLevelWarning
	case errors.SeverityInfo:
		level = ErrorLevelInfo
	}

	context := string(d.Code)
	if subject := diagnosticSubject(d); subject != "" {
		context += " " + subject
	}

	opts := ErrorOptions{
		Level:   level,
		Context: context,
		Problem: d.Message,
		NoColor: noColor,
	}
	if d.TypeText != "" {
		opts.Detail = "Type: " + d.TypeText
	}
	if d.Suggestion != "" {
		opts.Suggestions = []string{d.Suggestion}
	}
	if d.Code == errors.ErrUnsupportedPropertyType && d.TypeText != "" {
		opts.HelpCommands = []string{fmt.Sprintf("Inspect the type: elmproxy inspect %q", d.TypeText)}
	}
	return FormatError(opts)
}

func diagnosticSubject(d *errors.CompilerError) string {
	switch {
	case d.Component != "" && d.Item != "":
		return d.Component + " / " + d.Item
	default:
		return d.Component
	}
}

// WriteDiagnostics writes every diagnostic followed by a count line
func WriteDiagnostics(w io.Writer, diagnostics errors.ErrorList, noColor bool) {
	for _, d := range diagnostics {
		fmt.Fprintln(w, FormatDiagnostic(d, noColor))
	}
	if len(diagnostics) == 0 {
		return
	}

	errCount, warnCount, _ := diagnostics.ErrorCount()
	paint(noColor, color.FgHiBlack).Fprintf(w, "%d error(s), %d warning(s)\n", errCount, warnCount)
}

// WriteError writes a formatted error message to the writer
func WriteError(w io.Writer, opts ErrorOptions) {
	fmt.Fprint(w, FormatError(opts))
}

// FormatSuccess creates a success message
func FormatSuccess(message string, noColor bool) string {
	return paint(noColor, color.FgGreen, color.Bold).Sprintf("✓ %s", message)
}

// WriteSuccess writes a success message to the writer
func WriteSuccess(w io.Writer, message string, noColor bool) {
	fmt.Fprintln(w, FormatSuccess(message, noColor))
}

// ConfigError creates a standardized configuration error
func ConfigError(message string, suggestions []string, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:       ErrorLevelError,
		Context:     "CONFIGURATION ERROR",
		Problem:     message,
		Suggestions: suggestions,
		HelpCommands: []string{
			"Create a config file: elmproxy init",
			"Get help: elmproxy generate --help",
		},
		NoColor: noColor,
	})
}

// Warning creates a standardized warning message
func Warning(message string, suggestions []string, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:       ErrorLevelWarning,
		Problem:     message,
		Suggestions: suggestions,
		NoColor:     noColor,
	})
}

// Info creates a standardized info message
func Info(message string, noColor bool) string {
	return FormatError(ErrorOptions{
		Level:   ErrorLevelInfo,
		Problem: message,
		NoColor: noColor,
	})
}
