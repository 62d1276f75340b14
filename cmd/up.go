package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/phoneagent/envctl/internal/bootstrap"
	"github.com/phoneagent/envctl/internal/interaction"
	"github.com/phoneagent/envctl/internal/logging"
	"github.com/phoneagent/envctl/internal/system"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Create the conda environment and install dependencies",
	Args:  cobra.NoArgs,
	RunE:  runUp,
}

var (
	upConfig      string
	upName        string
	upPython      string
	upOnExisting  string
	upProjectDir  string
	upSkipInstall bool
)

func init() {
	upCmd.Flags().StringVarP(&upConfig, "config", "c", "", "Path to envctl.toml (default: ./envctl.toml if present)")
	upCmd.Flags().StringVarP(&upName, "name", "n", "", "Environment name (default from config)")
	upCmd.Flags().StringVar(&upPython, "python", "", "Pinned Python version (default from config)")
	upCmd.Flags().StringVar(&upOnExisting, "on-existing", "", "Policy for an existing environment: prompt, recreate, reuse, or fail")
	upCmd.Flags().StringVar(&upProjectDir, "project-dir", "", "Directory holding requirements.txt and the project (default: config file directory)")
	upCmd.Flags().BoolVar(&upSkipInstall, "skip-install", false, "Skip dependency and editable installs")
	rootCmd.AddCommand(upCmd)
}

func runUp(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(upConfig, upName, upPython, upOnExisting, upProjectDir)
	if err != nil {
		return err
	}

	logging.Debug("starting bootstrap",
		"env", cfg.Environment.Name,
		"python", cfg.Environment.Python,
		"project_dir", cfg.ProjectDir)

	b := bootstrap.New(newCondaClient(), system.DefaultFS(), bootstrap.Options{
		Config:      cfg,
		SkipInstall: upSkipInstall,
		Prompter:    interaction.NewStdinPrompter(),
		Interactive: interaction.IsTerminal(os.Stdin),
	})

	result, err := b.Run(ctx)
	if err != nil {
		return err
	}

	if result.Outcome == bootstrap.OutcomeReused {
		return nil
	}

	printUsageBanner(result.EnvName)
	return nil
}
