package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stencil-elm/elmproxy/internal/cli/ui"
	"github.com/stencil-elm/elmproxy/internal/watch"
)

// NewWatchCommand creates the watch command
func NewWatchCommand(env *Env, global *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate Elm modules whenever the manifest or config changes",
		Long: `Generate once, then watch the component manifest and the config file
and regenerate when their content changes. Saves that leave the content
unchanged do not trigger a regeneration.`,
		Example: `  elmproxy watch
  elmproxy watch --manifest build/components.json --output-dir src/Components`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, env, global)
		},
	}

	addConfigFlags(cmd)
	return cmd
}

func runWatch(cmd *cobra.Command, env *Env, global *globalFlags) error {
	logger := newLogger(cmd.ErrOrStderr(), global.verbose)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(cmd, env, global)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	build := func(ctx context.Context) error {
		report, err := generateOnce(ctx, cmd, env, global, false, logger)
		if err != nil {
			ui.WriteDiagnostics(cmd.ErrOrStderr(), report.Diagnostics.Warnings(), global.noColor)
			return err
		}
		ui.WriteDiagnostics(cmd.ErrOrStderr(), report.Diagnostics, global.noColor)
		writeSummary(cmd.OutOrStdout(), report, global.noColor)
		return nil
	}

	files := make([]string, 0, 2)
	for _, f := range cfg.Files() {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		files = append(files, abs)
	}
	rebuilder := watch.NewRebuilder(env.Fs, build, logger)
	rebuilder.Prime(files)
	if err := build(ctx); err != nil {
		// Keep watching; the next save may fix the manifest.
		color.New(color.FgRed, color.Bold).Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}

	watcher, err := watch.NewFileWatcher(files, watch.DefaultDebounce, logger, func(changed []string) error {
		_, err := rebuilder.Rebuild(ctx, changed)
		return err
	})
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.Info(fmt.Sprintf("Watching %d file(s) for changes. Press Ctrl+C to stop.", len(files)), global.noColor))
	for _, f := range files {
		logger.Debug("watching file", zap.String("file", f))
	}

	<-ctx.Done()

	if err := watcher.Stop(); err != nil {
		return fmt.Errorf("error stopping watcher: %w", err)
	}
	return nil
}
