package codegen

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/stencil-elm/elmproxy/internal/compiler/errors"
	"github.com/stencil-elm/elmproxy/internal/compiler/metadata"
	"github.com/stencil-elm/elmproxy/internal/output"
)

// Result is the outcome of generating every module of a manifest
type Result struct {
	// Modules holds one entry per generated component, in tag order
	Modules []*Module
	// Statuses holds the write status of each module, parallel to Modules
	Statuses []output.Status
	// Diagnostics merges the diagnostics of every module
	Diagnostics errors.ErrorList
}

// Written counts the modules whose file content changed
func (r *Result) Written() int {
	n := 0
	for _, s := range r.Statuses {
		if s == output.StatusWritten {
			n++
		}
	}
	return n
}

// FilterComponents drops internal and excluded components and sorts the
// rest by tag name.
func FilterComponents(components []metadata.Component, exclude []string) []metadata.Component {
	filtered := make([]metadata.Component, 0, len(components))
	for _, c := range components {
		if c.Internal || slices.Contains(exclude, c.TagName) {
			continue
		}
		filtered = append(filtered, c)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].TagName < filtered[j].TagName
	})
	return filtered
}

// UnknownExclusions returns the excluded tags that no component declares
func UnknownExclusions(components []metadata.Component, exclude []string) []string {
	var unknown []string
	for _, tag := range exclude {
		if !slices.ContainsFunc(components, func(c metadata.Component) bool { return c.TagName == tag }) {
			unknown = append(unknown, tag)
		}
	}
	return unknown
}

// Generate synthesizes and writes a module for every component that is not
// internal or excluded. Components are processed concurrently; the first
// failure cancels the rest and is returned. Files already written are left
// in place.
func Generate(ctx context.Context, components []metadata.Component, opts Options, w output.Writer) (*Result, error) {
	if opts.OutputDir == "" {
		return nil, errors.NewMissingOutputDir()
	}

	logger := opts.logger()
	filtered := FilterComponents(components, opts.ExcludeComponents)
	result := &Result{
		Modules:  make([]*Module, len(filtered)),
		Statuses: make([]output.Status, len(filtered)),
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, cmp := range filtered {
		i, cmp := i, cmp
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			module, err := GenerateModule(cmp, opts)
			if err != nil {
				return fmt.Errorf("failed to generate %s: %w", cmp.TagName, err)
			}

			status, err := w.Write(module.Path, []byte(module.Source))
			if err != nil {
				return errors.NewCodeGenFailed(cmp.TagName, err.Error())
			}

			result.Modules[i] = module
			result.Statuses[i] = status
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, module := range result.Modules {
		for _, diag := range module.Diagnostics {
			logger.Warn(diag.Message,
				zap.String("code", string(diag.Code)),
				zap.String("component", diag.Component),
				zap.String("item", diag.Item),
				zap.String("type", diag.TypeText),
			)
		}
		result.Diagnostics = append(result.Diagnostics, module.Diagnostics...)
		logger.Debug("generated module",
			zap.String("component", module.Tag),
			zap.String("module", module.Name),
			zap.String("path", module.Path),
			zap.Int("items", module.Items),
		)
	}

	return result, nil
}
