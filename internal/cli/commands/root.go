package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// Env holds the collaborators commands run against
type Env struct {
	// Fs is where config, manifest and generated modules live
	Fs afero.Fs
	// Dir is searched for elmproxy.yaml when --config is not given
	Dir string
	// Prompter asks the questions of init
	Prompter Prompter
}

// DefaultEnv runs against the real filesystem and the working directory
func DefaultEnv() *Env {
	return &Env{Fs: afero.NewOsFs(), Dir: ".", Prompter: SurveyPrompter{}}
}

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	configFile string
	verbose    bool
	noColor    bool
}

// NewRootCommand creates the root command against the real filesystem
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithEnv(DefaultEnv())
}

// NewRootCommandWithEnv creates the root command against env
func NewRootCommandWithEnv(env *Env) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "elmproxy",
		Short: "Generate typed Elm modules for custom-element web components",
		Long: color.CyanString(`elmproxy - Elm proxies for web components

elmproxy reads a component manifest describing custom elements, their
typed properties, events and slots, and writes one Elm module per
component. Each module exposes a view function that renders the element
behind a type-safe API.`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "Config file (default: elmproxy.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show debug logging")
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewGenerateCommand(env, flags))
	rootCmd.AddCommand(NewWatchCommand(env, flags))
	rootCmd.AddCommand(NewInspectCommand(flags))
	rootCmd.AddCommand(NewInitCommand(env, flags))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the elmproxy version, Git commit, build date, and Go version",
		Run: func(cmd *cobra.Command, args []string) {
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			out := cmd.OutOrStdout()
			titleColor := color.New(color.FgCyan, color.Bold)

			titleColor.Fprint(out, "elmproxy version: ")
			fmt.Fprintln(out, Version)
			titleColor.Fprint(out, "Git commit: ")
			fmt.Fprintln(out, GitCommit)
			titleColor.Fprint(out, "Build date: ")
			fmt.Fprintln(out, BuildDate)
			titleColor.Fprint(out, "Go version: ")
			fmt.Fprintln(out, goVer)
		},
	}
}

// newLogger builds the CLI logger. Without --verbose only errors are logged;
// advisory diagnostics are rendered by the ui package instead.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.ErrorLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if !color.NoColor {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core)
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
