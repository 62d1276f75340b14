package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show conda and environment status",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var statusConfig string

func init() {
	statusCmd.Flags().StringVarP(&statusConfig, "config", "c", "", "Path to envctl.toml (default: ./envctl.toml if present)")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(statusConfig, "", "", "", "")
	if err != nil {
		return err
	}
	name := cfg.Environment.Name

	client := newCondaClient()

	if _, err := client.Available(); err != nil {
		logError("conda not found on PATH")
		return nil
	}

	version, err := client.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Conda: %s\n", version)

	exists, err := client.EnvExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Printf("Environment: %s (not created, run: envctl up)\n", name)
		return nil
	}

	fmt.Printf("Environment: %s\n", name)
	if python, err := client.Env(name).PythonVersion(ctx); err == nil {
		fmt.Printf("Interpreter: %s\n", python)
	} else {
		logWarning("Could not query interpreter version: %v", err)
	}

	return nil
}
