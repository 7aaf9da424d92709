package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stencil-elm/elmproxy/internal/compiler/errors"
)

func TestFormatError(t *testing.T) {
	tests := []struct {
		name     string
		opts     ErrorOptions
		contains []string
	}{
		{
			name: "error with context",
			opts: ErrorOptions{
				Level:   ErrorLevelError,
				Context: "CONFIGURATION ERROR",
				Problem: "output_dir is required",
			},
			contains: []string{"❌ CONFIGURATION ERROR: output_dir is required"},
		},
		{
			name: "detail and suggestions",
			opts: ErrorOptions{
				Level:       ErrorLevelWarning,
				Problem:     "Excluded component is unknown",
				Detail:      "Type: string",
				Suggestions: []string{"Did you mean: my-button?"},
			},
			contains: []string{"⚠️ Excluded component is unknown", "   Type: string", "   Did you mean: my-button?"},
		},
		{
			name: "help commands",
			opts: ErrorOptions{
				Problem:      "Generation failed",
				HelpCommands: []string{"Get help: elmproxy generate --help"},
			},
			contains: []string{"→ Get help: elmproxy generate --help"},
		},
		{
			name:     "info",
			opts:     ErrorOptions{Level: ErrorLevelInfo, Problem: "Watching components.json"},
			contains: []string{"ℹ️ Watching components.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.NoColor = true
			out := FormatError(tt.opts)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestFormatDiagnostic(t *testing.T) {
	t.Run("unsupported property", func(t *testing.T) {
		out := FormatDiagnostic(errors.NewUnsupportedPropertyType("my-foo", "callback", "() => void"), true)

		assert.Contains(t, out, "⚠️ TYP100 my-foo / callback: ")
		assert.Contains(t, out, "Type: () => void")
		assert.Contains(t, out, `→ Inspect the type: elmproxy inspect "() => void"`)
	})

	t.Run("configuration error has no subject", func(t *testing.T) {
		out := FormatDiagnostic(errors.NewMissingOutputDir(), true)

		assert.Contains(t, out, "❌ CFG001: output_dir is required")
		assert.Contains(t, out, "Set output_dir in elmproxy.yaml or pass --output-dir")
		assert.NotContains(t, out, "→")
	})

	t.Run("component only", func(t *testing.T) {
		out := FormatDiagnostic(errors.NewUnknownExcludedComponent("my-buton", []string{"my-button"}), true)

		assert.Contains(t, out, "⚠️ CFG003 my-buton: ")
		assert.Contains(t, out, "Did you mean: my-button?")
	})
}

func TestWriteDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	WriteDiagnostics(&buf, errors.ErrorList{
		errors.NewUnsupportedPropertyType("my-foo", "callback", "() => void"),
		errors.NewUnsupportedEvent("my-foo", "foo:bar"),
	}, true)

	out := buf.String()
	assert.Contains(t, out, "TYP100 my-foo / callback")
	assert.Contains(t, out, "TYP101 my-foo / foo:bar")
	assert.Contains(t, out, "0 error(s), 2 warning(s)")

	buf.Reset()
	WriteDiagnostics(&buf, nil, true)
	assert.Empty(t, buf.String())
}

func TestFormatSuccess(t *testing.T) {
	assert.Equal(t, "✓ Generated 3 module(s)", FormatSuccess("Generated 3 module(s)", true))

	var buf bytes.Buffer
	WriteSuccess(&buf, "done", true)
	assert.Equal(t, "✓ done\n", buf.String())
}

func TestConfigError(t *testing.T) {
	out := ConfigError("cannot read elmproxy.yaml", nil, true)
	assert.Contains(t, out, "CONFIGURATION ERROR: cannot read elmproxy.yaml")
	assert.Contains(t, out, "→ Create a config file: elmproxy init")
}

func TestWarningAndInfo(t *testing.T) {
	assert.Contains(t, Warning("careful", []string{"Did you mean: x?"}, true), "Did you mean: x?")
	assert.Contains(t, Info("hello", true), "ℹ️ hello")
}
