package commands

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stencil-elm/elmproxy/internal/cli/config"
	"github.com/stencil-elm/elmproxy/internal/cli/ui"
	"github.com/stencil-elm/elmproxy/internal/compiler/codegen"
	"github.com/stencil-elm/elmproxy/internal/compiler/errors"
	"github.com/stencil-elm/elmproxy/internal/compiler/metadata"
	"github.com/stencil-elm/elmproxy/internal/output"
)

// configFlags maps config keys to the flags that override them
var configFlags = map[string]string{
	"manifest":           "manifest",
	"output_dir":         "output-dir",
	"module_prefix":      "module-prefix",
	"exclude_components": "exclude",
	"slot_attribute":     "slot-attribute",
}

type generateFlags struct {
	json   bool
	dryRun bool
}

// moduleReport describes one generated module in --json output
type moduleReport struct {
	Component string `json:"component"`
	Module    string `json:"module"`
	Path      string `json:"path"`
	Status    string `json:"status"`
	Items     int    `json:"items"`
}

// generateReport is the --json output of generate
type generateReport struct {
	Success     bool             `json:"success"`
	DryRun      bool             `json:"dry_run,omitempty"`
	Modules     []moduleReport   `json:"modules"`
	Diagnostics errors.ErrorList `json:"diagnostics"`
	Duration    time.Duration    `json:"-"`
	written     int
}

// NewGenerateCommand creates the generate command
func NewGenerateCommand(env *Env, global *globalFlags) *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"g"},
		Short:   "Generate Elm modules from the component manifest",
		Long: `Read the component manifest and write one Elm module per component.

Internal components and components listed in exclude_components are
skipped. Properties and events whose types cannot be represented in Elm
are left out of the generated view and reported as warnings. Files whose
content would not change are not rewritten.`,
		Example: `  # Generate with elmproxy.yaml from the working directory
  elmproxy generate

  # Override the manifest and output directory
  elmproxy generate --manifest build/components.json --output-dir src/Components

  # Skip components and print a machine-readable report
  elmproxy generate --exclude my-internal-tooltip --json

  # Show what would change without writing anything
  elmproxy generate --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, env, global, flags)
		},
	}

	addConfigFlags(cmd)
	cmd.Flags().BoolVar(&flags.json, "json", false, "Output the result and diagnostics as JSON")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Generate without writing any file")

	_ = cmd.RegisterFlagCompletionFunc("exclude", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := loadConfig(cmd, env, global)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		manifest, err := metadata.Load(env.Fs, cfg.Manifest)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return manifest.TagNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// addConfigFlags registers the flags that override config keys
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("manifest", "m", "", "Component manifest, JSON or YAML, optionally gzipped (default: components.json)")
	cmd.Flags().StringP("output-dir", "o", "", "Directory the Elm modules are written to")
	cmd.Flags().String("module-prefix", "", "Elm module name prefix (default: base name of the output directory)")
	cmd.Flags().StringSlice("exclude", nil, "Component tag names to skip")
	cmd.Flags().Bool("slot-attribute", true, "Give every view an optional slot attribute")
}

// loadConfig reads the configuration with the command's flags bound over it
func loadConfig(cmd *cobra.Command, env *Env, global *globalFlags) (*config.Config, error) {
	v := config.New(env.Fs, env.Dir)
	for key, name := range configFlags {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
			}
		}
	}
	return config.Load(v, global.configFile)
}

func runGenerate(cmd *cobra.Command, env *Env, global *globalFlags, flags *generateFlags) error {
	logger := newLogger(cmd.ErrOrStderr(), global.verbose)
	defer func() { _ = logger.Sync() }()

	report, err := generateOnce(cmd.Context(), cmd, env, global, flags.dryRun, logger)
	if flags.json {
		if jsonErr := writeReportJSON(cmd.OutOrStdout(), report); jsonErr != nil {
			return jsonErr
		}
		return err
	}

	if err != nil {
		ui.WriteDiagnostics(cmd.ErrOrStderr(), report.Diagnostics.Warnings(), global.noColor)
		return err
	}
	ui.WriteDiagnostics(cmd.ErrOrStderr(), report.Diagnostics, global.noColor)

	writeSummary(cmd.OutOrStdout(), report, global.noColor)
	return nil
}

// generateOnce runs one full generation. The report is always returned;
// on failure it carries the diagnostic that stopped generation.
func generateOnce(ctx context.Context, cmd *cobra.Command, env *Env, global *globalFlags, dryRun bool, logger *zap.Logger) (*generateReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	report := &generateReport{DryRun: dryRun, Modules: []moduleReport{}, Diagnostics: errors.ErrorList{}}

	fail := func(err error) (*generateReport, error) {
		var compilerErr *errors.CompilerError
		if stderrors.As(err, &compilerErr) {
			report.Diagnostics = append(report.Diagnostics, compilerErr)
		}
		report.Duration = time.Since(start)
		return report, err
	}

	cfg, err := loadConfig(cmd, env, global)
	if err != nil {
		return fail(err)
	}
	if err := cfg.Validate(); err != nil {
		return fail(err)
	}
	logger.Debug("loaded configuration",
		zap.String("file", cfg.File),
		zap.String("manifest", cfg.Manifest),
		zap.String("output_dir", cfg.OutputDir),
	)

	manifest, err := metadata.Load(env.Fs, cfg.Manifest)
	if err != nil {
		return fail(err)
	}

	for _, tag := range codegen.UnknownExclusions(manifest.Components, cfg.ExcludeComponents) {
		report.Diagnostics = append(report.Diagnostics,
			errors.NewUnknownExcludedComponent(tag, ui.SuggestTags(tag, manifest.TagNames())))
	}

	var w output.Writer = output.NewFSWriter(env.Fs)
	if dryRun {
		w = output.NewDryRunWriter(env.Fs)
	}

	result, err := codegen.Generate(ctx, manifest.Components, cfg.Options(logger), w)
	if err != nil {
		return fail(err)
	}

	for i, module := range result.Modules {
		report.Modules = append(report.Modules, moduleReport{
			Component: module.Tag,
			Module:    module.Name,
			Path:      module.Path,
			Status:    result.Statuses[i].String(),
			Items:     module.Items,
		})
	}
	report.Diagnostics = append(report.Diagnostics, result.Diagnostics...)
	report.Success = true
	report.written = result.Written()
	report.Duration = time.Since(start)
	return report, nil
}

func writeReportJSON(w io.Writer, report *generateReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

func writeSummary(w io.Writer, report *generateReport, noColor bool) {
	if len(report.Modules) > 0 {
		table := ui.NewTable(w, []string{"Component", "Module", "Path", "Status"}, &ui.TableOptions{NoColor: noColor})
		table.StyleColumn(3, func(status string) *color.Color {
			if status == output.StatusWritten.String() {
				return color.New(color.FgGreen)
			}
			return color.New(color.FgHiBlack)
		})
		for _, m := range report.Modules {
			table.AddRow(m.Component, m.Module, m.Path, m.Status)
		}
		table.Render()
		fmt.Fprintln(w)
	}

	message := fmt.Sprintf("Generated %d module(s) in %.2fs (%d written, %d unchanged)",
		len(report.Modules), report.Duration.Seconds(), report.written, len(report.Modules)-report.written)
	if report.DryRun {
		message += ", dry run: nothing was written"
	}
	ui.WriteSuccess(w, message, noColor)
}
