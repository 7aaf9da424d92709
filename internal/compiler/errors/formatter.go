package errors

import (
	"fmt"
	"strings"
)

// FormatError returns a human-readable diagnostic for terminal output
func FormatError(e *CompilerError) string {
	var b strings.Builder

	icon := severityIcon(e.Severity)
	categoryName := categoryDisplayName(e.Category, e.Severity)

	subject := e.Component
	if subject == "" {
		subject = "<config>"
	}
	if e.Item != "" {
		subject += " / " + e.Item
	}

	fmt.Fprintf(&b, "%s %s in %s [%s]\n", icon, categoryName, subject, e.Code)
	fmt.Fprintf(&b, "  %s\n", e.Message)

	if e.TypeText != "" {
		fmt.Fprintf(&b, "\n  Type: %s\n", e.TypeText)
	}

	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n💡 %s\n", e.Suggestion)
	}

	return b.String()
}

// FormatErrorList returns a formatted string of all diagnostics
func FormatErrorList(errors ErrorList) string {
	if len(errors) == 0 {
		return "no errors"
	}

	var b strings.Builder

	errCount, warnCount, infoCount := errors.ErrorCount()
	fmt.Fprintf(&b, "Generation finished with %d error(s), %d warning(s), %d info\n\n",
		errCount, warnCount, infoCount)

	for i, err := range errors {
		if i > 0 {
			b.WriteString("\n" + strings.Repeat("-", 80) + "\n\n")
		}
		b.WriteString(err.Format())
	}

	return b.String()
}

// FormatCompact returns a compact one-line format
func FormatCompact(e *CompilerError) string {
	var subject []string
	if e.Component != "" {
		subject = append(subject, e.Component)
	}
	if e.Item != "" {
		subject = append(subject, e.Item)
	}
	if len(subject) == 0 {
		return fmt.Sprintf("%s: %s [%s]", e.Severity, e.Message, e.Code)
	}
	return fmt.Sprintf("%s: %s: %s [%s]", strings.Join(subject, "."), e.Severity, e.Message, e.Code)
}

// severityIcon returns the emoji/icon for a severity level
func severityIcon(severity ErrorSeverity) string {
	switch severity {
	case SeverityError:
		return "❌"
	case SeverityWarning:
		return "⚠️ "
	case SeverityInfo:
		return "ℹ️ "
	default:
		return "❓"
	}
}

// categoryDisplayName returns a human-readable category name
func categoryDisplayName(category ErrorCategory, severity ErrorSeverity) string {
	suffix := "Error"
	if severity == SeverityWarning {
		suffix = "Warning"
	}
	switch category {
	case CategorySyntax:
		return "Syntax " + suffix
	case CategoryType:
		return "Type " + suffix
	case CategoryCodeGen:
		return "Code Generation " + suffix
	case CategoryConfig:
		return "Configuration " + suffix
	default:
		return "Generator " + suffix
	}
}
