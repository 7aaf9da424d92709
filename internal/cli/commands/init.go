package commands

import (
	"fmt"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/stencil-elm/elmproxy/internal/cli/config"
	"github.com/stencil-elm/elmproxy/internal/cli/ui"
	"github.com/stencil-elm/elmproxy/internal/compiler/metadata"
)

// Prompter asks the user for configuration values
type Prompter interface {
	Input(message, defaultValue string, required bool) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
	MultiSelect(message string, options []string) ([]string, error)
}

// SurveyPrompter prompts on the terminal
type SurveyPrompter struct{}

func (SurveyPrompter) Input(message, defaultValue string, required bool) (string, error) {
	var answer string
	opts := []survey.AskOpt{}
	if required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}
	err := survey.AskOne(&survey.Input{Message: message, Default: defaultValue}, &answer, opts...)
	return answer, err
}

func (SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	answer := defaultValue
	err := survey.AskOne(&survey.Confirm{Message: message, Default: defaultValue}, &answer)
	return answer, err
}

func (SurveyPrompter) MultiSelect(message string, options []string) ([]string, error) {
	var answer []string
	err := survey.AskOne(&survey.MultiSelect{Message: message, Options: options, PageSize: 12}, &answer)
	return answer, err
}

type initFlags struct {
	yes   bool
	force bool
}

// NewInitCommand creates the init command
func NewInitCommand(env *Env, global *globalFlags) *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an elmproxy.yaml config file",
		Long: `Ask for the manifest location, the output directory and the components
to skip, then write them to elmproxy.yaml. With --yes no questions are
asked and the flag values or defaults are written.`,
		Example: `  elmproxy init
  elmproxy init --yes --output-dir src/Components`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, env, global, flags)
		},
	}

	addConfigFlags(cmd)
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "Accept flag values and defaults without prompting")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite an existing config file")

	return cmd
}

func runInit(cmd *cobra.Command, env *Env, global *globalFlags, flags *initFlags) error {
	path := global.configFile
	if path == "" {
		path = filepath.Join(env.Dir, config.FileName+".yaml")
	}

	exists, err := afero.Exists(env.Fs, path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}
	if exists && !flags.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.Default()
	cfg.Manifest = stringFlag(cmd, "manifest", cfg.Manifest)
	cfg.OutputDir = stringFlag(cmd, "output-dir", "")
	cfg.ModulePrefix = stringFlag(cmd, "module-prefix", "")
	cfg.ExcludeComponents, _ = cmd.Flags().GetStringSlice("exclude")
	cfg.SlotAttribute, _ = cmd.Flags().GetBool("slot-attribute")

	if !flags.yes {
		if err := promptConfig(env, cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(env.Fs, path, cfg); err != nil {
		return err
	}

	ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("Wrote %s", path), global.noColor)
	return nil
}

func promptConfig(env *Env, cfg *config.Config) error {
	prompter := env.Prompter
	if prompter == nil {
		prompter = SurveyPrompter{}
	}

	var err error
	if cfg.Manifest, err = prompter.Input("Component manifest:", cfg.Manifest, true); err != nil {
		return err
	}
	if cfg.OutputDir, err = prompter.Input("Output directory for Elm modules:", cfg.OutputDir, true); err != nil {
		return err
	}
	if cfg.ModulePrefix, err = prompter.Input("Module prefix (empty for the output directory name):", cfg.ModulePrefix, false); err != nil {
		return err
	}
	if cfg.SlotAttribute, err = prompter.Confirm("Add an optional slot attribute to every view?", cfg.SlotAttribute); err != nil {
		return err
	}

	manifestPath := cfg.Manifest
	if !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(env.Dir, manifestPath)
	}
	manifest, err := metadata.Load(env.Fs, manifestPath)
	if err != nil {
		// The manifest may not be built yet; exclusions can be added later.
		return nil
	}

	var tags []string
	for _, c := range manifest.Components {
		if !c.Internal {
			tags = append(tags, c.TagName)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	cfg.ExcludeComponents, err = prompter.MultiSelect("Components to skip:", tags)
	return err
}

func stringFlag(cmd *cobra.Command, name, fallback string) string {
	if value, err := cmd.Flags().GetString(name); err == nil && value != "" {
		return value
	}
	return fallback
}
