package codegen

import (
	"path/filepath"

	"go.uber.org/zap"
)

// Options configures module generation
type Options struct {
	// OutputDir is the directory modules are written to
	OutputDir string
	// ModulePrefix prefixes every module name; defaults to the base name of OutputDir
	ModulePrefix string
	// ExcludeComponents lists tag names that get no module
	ExcludeComponents []string
	// SlotAttribute adds the optional "slot" attribute to every view
	SlotAttribute bool
	// Logger receives advisory warnings; nil means no logging
	Logger *zap.Logger
}

// DefaultOptions returns options for writing modules to outputDir
func DefaultOptions(outputDir string) Options {
	return Options{
		OutputDir:     outputDir,
		SlotAttribute: true,
	}
}

func (o Options) modulePrefix() string {
	if o.ModulePrefix != "" {
		return o.ModulePrefix
	}
	return filepath.Base(filepath.Clean(o.OutputDir))
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
