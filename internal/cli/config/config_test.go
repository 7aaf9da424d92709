package config

import (
	stderrors "errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencil-elm/elmproxy/internal/compiler/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(afero.NewMemMapFs(), "/project"), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultManifest, cfg.Manifest)
	assert.Empty(t, cfg.OutputDir)
	assert.Empty(t, cfg.ModulePrefix)
	assert.Empty(t, cfg.ExcludeComponents)
	assert.True(t, cfg.SlotAttribute)
	assert.Empty(t, cfg.File)
}

func TestLoad_SearchesDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/project/elmproxy.yaml", []byte(`
manifest: build/components.json
output_dir: src/Components
module_prefix: Ui.Components
exclude_components:
  - my-internal-tooltip
slot_attribute: false
`), 0o644))

	cfg, err := Load(New(fs, "/project"), "")
	require.NoError(t, err)

	assert.Equal(t, "/project/elmproxy.yaml", cfg.File)
	assert.Equal(t, "/project/build/components.json", cfg.Manifest)
	assert.Equal(t, "/project/src/Components", cfg.OutputDir)
	assert.Equal(t, "Ui.Components", cfg.ModulePrefix)
	assert.Equal(t, []string{"my-internal-tooltip"}, cfg.ExcludeComponents)
	assert.False(t, cfg.SlotAttribute)
}

func TestLoad_ExplicitFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/config/proxies.json", []byte(`{"output_dir": "/abs/out"}`), 0o644))

	cfg, err := Load(New(fs, "/project"), "/config/proxies.json")
	require.NoError(t, err)

	assert.Equal(t, "/abs/out", cfg.OutputDir)
	assert.Equal(t, "/config/components.json", cfg.Manifest)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(New(afero.NewMemMapFs(), "/project"), "/config/missing.yaml")
	assert.Error(t, err)
}

func TestLoad_InvalidFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/project/elmproxy.yaml", []byte("output_dir: [unterminated"), 0o644))

	_, err := Load(New(fs, "/project"), "")
	assert.Error(t, err)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ELMPROXY_OUTPUT_DIR", "/env/out")
	t.Setenv("ELMPROXY_SLOT_ATTRIBUTE", "false")

	cfg, err := Load(New(afero.NewMemMapFs(), "/project"), "")
	require.NoError(t, err)

	assert.Equal(t, "/env/out", cfg.OutputDir)
	assert.False(t, cfg.SlotAttribute)
}

func TestValidate(t *testing.T) {
	t.Run("missing output dir", func(t *testing.T) {
		err := Default().Validate()

		var compilerErr *errors.CompilerError
		require.True(t, stderrors.As(err, &compilerErr))
		assert.Equal(t, errors.ErrMissingOutputDir, compilerErr.Code)
	})

	t.Run("blank manifest", func(t *testing.T) {
		cfg := &Config{OutputDir: "out"}
		err := cfg.Validate()

		var compilerErr *errors.CompilerError
		require.True(t, stderrors.As(err, &compilerErr))
		assert.Equal(t, errors.ErrInvalidManifest, compilerErr.Code)
	})

	t.Run("valid", func(t *testing.T) {
		cfg := Default()
		cfg.OutputDir = "out"
		assert.NoError(t, cfg.Validate())
	})
}

func TestOptions(t *testing.T) {
	cfg := &Config{
		OutputDir:         "src/Components",
		ModulePrefix:      "Ui",
		ExcludeComponents: []string{"my-bar"},
		SlotAttribute:     true,
	}

	opts := cfg.Options(nil)
	assert.Equal(t, "src/Components", opts.OutputDir)
	assert.Equal(t, "Ui", opts.ModulePrefix)
	assert.Equal(t, []string{"my-bar"}, opts.ExcludeComponents)
	assert.True(t, opts.SlotAttribute)
}

func TestSave_RoundTripsThroughLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := Default()
	cfg.OutputDir = "src/Components"
	cfg.ExcludeComponents = []string{"my-bar"}
	require.NoError(t, Save(fs, "/project/elmproxy.yaml", cfg))

	loaded, err := Load(New(fs, "/project"), "")
	require.NoError(t, err)
	assert.Equal(t, "/project/src/Components", loaded.OutputDir)
	assert.Equal(t, []string{"my-bar"}, loaded.ExcludeComponents)
	assert.True(t, loaded.SlotAttribute)
}

func TestFiles(t *testing.T) {
	assert.Equal(t, []string{"components.json"}, Default().Files())

	cfg := &Config{Manifest: "/p/components.json", File: "/p/elmproxy.yaml"}
	assert.Equal(t, []string{"/p/components.json", "/p/elmproxy.yaml"}, cfg.Files())
}
