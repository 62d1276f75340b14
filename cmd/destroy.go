package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phoneagent/envctl/internal/interaction"
)

var destroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Remove the conda environment",
	Args:  cobra.NoArgs,
	RunE:  runDestroy,
}

var (
	destroyConfig string
	destroyForce  bool
)

func init() {
	destroyCmd.Flags().StringVarP(&destroyConfig, "config", "c", "", "Path to envctl.toml (default: ./envctl.toml if present)")
	destroyCmd.Flags().BoolVarP(&destroyForce, "force", "f", false, "Remove without confirmation")
	rootCmd.AddCommand(destroyCmd)
}

func runDestroy(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(destroyConfig, "", "", "", "")
	if err != nil {
		return err
	}
	name := cfg.Environment.Name

	client := newCondaClient()

	exists, err := client.EnvExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		logInfo("Environment %s does not exist", name)
		return nil
	}

	if !destroyForce {
		prompter := interaction.NewStdinPrompter()
		yes, err := prompter.Confirm(fmt.Sprintf("Delete environment %s?", name))
		if err != nil {
			return err
		}
		if !yes {
			logInfo("Keeping environment %s", name)
			return nil
		}
	}

	if err := client.Remove(ctx, name); err != nil {
		return err
	}

	logSuccess("Environment %s removed", name)
	return nil
}
