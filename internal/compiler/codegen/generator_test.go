package codegen

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/stencil-elm/elmproxy/internal/compiler/errors"
	"github.com/stencil-elm/elmproxy/internal/compiler/metadata"
	"github.com/stencil-elm/elmproxy/internal/output"
)

func manifestComponents() []metadata.Component {
	return []metadata.Component{
		{TagName: "my-foo", Properties: []metadata.Property{prop("disabled", "boolean", true)}},
		{TagName: "my-bar", Properties: []metadata.Property{prop("label", "string", false)}},
		{TagName: "my-internal", Internal: true},
		{TagName: "my-baz", Properties: []metadata.Property{prop("callback", "() => void", false)}},
	}
}

func TestFilterComponents(t *testing.T) {
	filtered := FilterComponents(manifestComponents(), []string{"my-bar"})

	tags := make([]string, 0, len(filtered))
	for _, c := range filtered {
		tags = append(tags, c.TagName)
	}
	assert.Equal(t, []string{"my-baz", "my-foo"}, tags)
}

func TestUnknownExclusions(t *testing.T) {
	assert.Equal(t, []string{"my-qux"}, UnknownExclusions(manifestComponents(), []string{"my-bar", "my-qux"}))
	assert.Empty(t, UnknownExclusions(manifestComponents(), nil))
}

func TestGenerate(t *testing.T) {
	fs := afero.NewMemMapFs()
	core, logs := observer.New(zapcore.WarnLevel)

	opts := DefaultOptions("src/Components")
	opts.Logger = zap.New(core)

	result, err := Generate(context.Background(), manifestComponents(), opts, output.NewFSWriter(fs))
	require.NoError(t, err)

	require.Len(t, result.Modules, 3)
	assert.Equal(t, "my-bar", result.Modules[0].Tag)
	assert.Equal(t, "my-baz", result.Modules[1].Tag)
	assert.Equal(t, "my-foo", result.Modules[2].Tag)
	assert.Equal(t, 3, result.Written())

	for _, path := range []string{"src/Components/MyBar.elm", "src/Components/MyBaz.elm", "src/Components/MyFoo.elm"} {
		exists, err := afero.Exists(fs, path)
		require.NoError(t, err)
		assert.True(t, exists, path)
	}
	exists, err := afero.Exists(fs, "src/Components/MyInternal.elm")
	require.NoError(t, err)
	assert.False(t, exists)

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, errors.ErrUnsupportedPropertyType, result.Diagnostics[0].Code)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "my-baz", entry.ContextMap()["component"])
	assert.Equal(t, "callback", entry.ContextMap()["item"])
	assert.Equal(t, "() => void", entry.ContextMap()["type"])
}

func TestGenerate_SecondRunIsUnchanged(t *testing.T) {
	w := output.NewFSWriter(afero.NewMemMapFs())
	opts := DefaultOptions("out/Proxies")

	_, err := Generate(context.Background(), manifestComponents(), opts, w)
	require.NoError(t, err)

	result, err := Generate(context.Background(), manifestComponents(), opts, w)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Written())
	assert.Equal(t, []output.Status{output.StatusUnchanged, output.StatusUnchanged, output.StatusUnchanged}, result.Statuses)
}

func TestGenerate_ExcludedComponentLeavesNoTrace(t *testing.T) {
	fs := afero.NewMemMapFs()
	opts := DefaultOptions("src/Components")
	opts.ExcludeComponents = []string{"my-bar"}

	result, err := Generate(context.Background(), manifestComponents(), opts, output.NewFSWriter(fs))
	require.NoError(t, err)

	for _, module := range result.Modules {
		assert.NotEqual(t, "my-bar", module.Tag)
		assert.NotContains(t, module.Source, "MyBar")
		assert.NotContains(t, module.Source, "my-bar")
	}
	exists, err := afero.Exists(fs, "src/Components/MyBar.elm")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGenerate_MissingOutputDir(t *testing.T) {
	_, err := Generate(context.Background(), manifestComponents(), Options{}, output.NewFSWriter(afero.NewMemMapFs()))

	var compilerErr *errors.CompilerError
	require.True(t, stderrors.As(err, &compilerErr))
	assert.Equal(t, errors.ErrMissingOutputDir, compilerErr.Code)
}

func TestGenerate_HardFailureFailsTheStep(t *testing.T) {
	components := append(manifestComponents(), metadata.Component{
		TagName:    "my-scale",
		Properties: []metadata.Property{prop("scale", `"1x" | "2x"`, false)},
	})

	_, err := Generate(context.Background(), components, DefaultOptions("out"), output.NewFSWriter(afero.NewMemMapFs()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate my-scale")

	var compilerErr *errors.CompilerError
	require.True(t, stderrors.As(err, &compilerErr))
	assert.Equal(t, errors.ErrInvalidConstructorName, compilerErr.Code)
}

type failingWriter struct {
	mu      sync.Mutex
	written []string
}

func (w *failingWriter) Write(path string, _ []byte) (output.Status, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if path == "out/MyFoo.elm" {
		return output.StatusWritten, fmt.Errorf("disk full")
	}
	w.written = append(w.written, path)
	return output.StatusWritten, nil
}

func TestGenerate_WriteFailure(t *testing.T) {
	_, err := Generate(context.Background(), manifestComponents(), DefaultOptions("out"), &failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "my-foo: error: Code generation failed: disk full")

	var compilerErr *errors.CompilerError
	require.True(t, stderrors.As(err, &compilerErr))
	assert.Equal(t, errors.ErrCodeGenFailed, compilerErr.Code)
	assert.Equal(t, "my-foo", compilerErr.Component)
}

func TestGenerate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Generate(ctx, manifestComponents(), DefaultOptions("out"), &failingWriter{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_ManyComponentsKeepTagOrder(t *testing.T) {
	var components []metadata.Component
	for i := 30; i > 0; i-- {
		components = append(components, metadata.Component{TagName: fmt.Sprintf("x-item-%02d", i)})
	}

	result, err := Generate(context.Background(), components, DefaultOptions("out"), output.NewFSWriter(afero.NewMemMapFs()))
	require.NoError(t, err)
	require.Len(t, result.Modules, 30)
	for i, module := range result.Modules {
		assert.Equal(t, fmt.Sprintf("x-item-%02d", i+1), module.Tag)
	}
}
