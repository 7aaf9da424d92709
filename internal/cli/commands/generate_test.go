package commands

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencil-elm/elmproxy/internal/compiler/errors"
)

const testManifest = `{
  "components": [
    {
      "tagName": "my-card",
      "htmlTagNames": ["slot"],
      "properties": [
        {"name": "heading", "required": true, "complexType": {"original": "string", "resolved": "string"}}
      ]
    },
    {
      "tagName": "my-button",
      "properties": [
        {"name": "disabled", "complexType": {"original": "boolean", "resolved": "boolean"}},
        {"name": "onTap", "complexType": {"original": "() => void", "resolved": "() => void"}}
      ],
      "events": [{"name": "myClick"}]
    },
    {"tagName": "my-tooltip-internal", "internal": true}
  ]
}`

func projectEnv(t *testing.T, configYAML string) *Env {
	t.Helper()
	env := memEnv()
	require.NoError(t, afero.WriteFile(env.Fs, "/project/components.json", []byte(testManifest), 0o644))
	if configYAML != "" {
		require.NoError(t, afero.WriteFile(env.Fs, "/project/elmproxy.yaml", []byte(configYAML), 0o644))
	}
	return env
}

func TestNewGenerateCommand(t *testing.T) {
	cmd := NewGenerateCommand(memEnv(), &globalFlags{})

	assert.Equal(t, "generate", cmd.Use)
	for _, flag := range []string{"manifest", "output-dir", "module-prefix", "exclude", "slot-attribute", "json", "dry-run"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), flag)
	}
}

func TestGenerate_WritesModules(t *testing.T) {
	env := projectEnv(t, "output_dir: src/Components\n")

	stdout, stderr, err := run(t, env, "generate")
	require.NoError(t, err)

	for _, path := range []string{"/project/src/Components/MyButton.elm", "/project/src/Components/MyCard.elm"} {
		exists, err := afero.Exists(env.Fs, path)
		require.NoError(t, err)
		assert.True(t, exists, path)
	}
	exists, err := afero.Exists(env.Fs, "/project/src/Components/MyTooltipInternal.elm")
	require.NoError(t, err)
	assert.False(t, exists)

	source, err := afero.ReadFile(env.Fs, "/project/src/Components/MyButton.elm")
	require.NoError(t, err)
	assert.Contains(t, string(source), "module Components.MyButton exposing")
	assert.Contains(t, string(source), "onMyClick : Maybe msg")

	assert.Contains(t, stdout, "Components.MyButton")
	assert.Contains(t, stdout, "Generated 2 module(s)")
	assert.Contains(t, stdout, "(2 written, 0 unchanged)")
	assert.Contains(t, stderr, "TYP100 my-button / onTap")
}

func TestGenerate_SecondRunReportsUnchanged(t *testing.T) {
	env := projectEnv(t, "output_dir: src/Components\n")

	_, _, err := run(t, env, "generate")
	require.NoError(t, err)

	stdout, _, err := run(t, env, "generate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "(0 written, 2 unchanged)")
}

func TestGenerate_FlagsOverrideConfig(t *testing.T) {
	env := projectEnv(t, "output_dir: src/Components\nmodule_prefix: Ui\n")

	_, _, err := run(t, env, "generate", "--output-dir", "elm/Proxies", "--module-prefix", "Proxies", "--exclude", "my-card")
	require.NoError(t, err)

	source, err := afero.ReadFile(env.Fs, "/project/elm/Proxies/MyButton.elm")
	require.NoError(t, err)
	assert.Contains(t, string(source), "module Proxies.MyButton exposing")

	exists, err := afero.Exists(env.Fs, "/project/elm/Proxies/MyCard.elm")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGenerate_JSONReport(t *testing.T) {
	env := projectEnv(t, "output_dir: src/Components\nexclude_components: [my-cards]\n")

	stdout, _, err := run(t, env, "generate", "--json")
	require.NoError(t, err)

	var report struct {
		Success bool `json:"success"`
		Modules []struct {
			Component string `json:"component"`
			Module    string `json:"module"`
			Status    string `json:"status"`
		} `json:"modules"`
		Diagnostics errors.ErrorList `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))

	assert.True(t, report.Success)
	require.Len(t, report.Modules, 2)
	assert.Equal(t, "my-button", report.Modules[0].Component)
	assert.Equal(t, "Components.MyButton", report.Modules[0].Module)
	assert.Equal(t, "written", report.Modules[0].Status)

	require.Len(t, report.Diagnostics, 2)
	assert.Equal(t, errors.ErrUnknownExcludedComponent, report.Diagnostics[0].Code)
	assert.Equal(t, "Did you mean: my-card?", report.Diagnostics[0].Suggestion)
	assert.Equal(t, errors.ErrUnsupportedPropertyType, report.Diagnostics[1].Code)
}

func TestGenerate_DryRunWritesNothing(t *testing.T) {
	env := projectEnv(t, "output_dir: src/Components\n")

	stdout, _, err := run(t, env, "generate", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dry run: nothing was written")

	exists, err := afero.DirExists(env.Fs, "/project/src/Components")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGenerate_MissingOutputDir(t *testing.T) {
	env := projectEnv(t, "")

	_, _, err := run(t, env, "generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CFG001")
}

func TestGenerate_MissingOutputDirJSON(t *testing.T) {
	env := projectEnv(t, "")

	stdout, _, err := run(t, env, "generate", "--json")
	require.Error(t, err)

	var report struct {
		Success     bool             `json:"success"`
		Diagnostics errors.ErrorList `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.False(t, report.Success)
	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, errors.ErrMissingOutputDir, report.Diagnostics[0].Code)
}

func TestGenerate_InvalidManifest(t *testing.T) {
	env := memEnv()
	require.NoError(t, afero.WriteFile(env.Fs, "/project/components.json", []byte(`{"components": [`), 0o644))
	require.NoError(t, afero.WriteFile(env.Fs, "/project/elmproxy.yaml", []byte("output_dir: out\n"), 0o644))

	_, _, err := run(t, env, "generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CFG002")
}

func TestGenerate_HardFailureWritesNothingForComponent(t *testing.T) {
	env := memEnv()
	require.NoError(t, afero.WriteFile(env.Fs, "/project/components.json", []byte(`{"components": [
		{"tagName": "my-scale", "properties": [{"name": "scale", "complexType": {"original": "\"1x\" | \"2x\"", "resolved": "\"1x\" | \"2x\""}}]}
	]}`), 0o644))
	require.NoError(t, afero.WriteFile(env.Fs, "/project/elmproxy.yaml", []byte("output_dir: out\n"), 0o644))

	_, _, err := run(t, env, "generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEN601")

	exists, err := afero.Exists(env.Fs, "/project/out/MyScale.elm")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGenerate_ExplicitConfigFile(t *testing.T) {
	env := memEnv()
	require.NoError(t, afero.WriteFile(env.Fs, "/elsewhere/components.json", []byte(testManifest), 0o644))
	require.NoError(t, afero.WriteFile(env.Fs, "/elsewhere/proxies.yml", []byte("output_dir: gen\n"), 0o644))

	_, _, err := run(t, env, "generate", "--config", "/elsewhere/proxies.yml")
	require.NoError(t, err)

	exists, err := afero.Exists(env.Fs, "/elsewhere/gen/MyCard.elm")
	require.NoError(t, err)
	assert.True(t, exists)
}
