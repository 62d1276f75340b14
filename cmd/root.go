package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/phoneagent/envctl/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "envctl",
	Short: "PythonAgent conda environment bootstrapper",
	Long: `envctl prepares the conda environment the phone agent runs in.

It verifies conda is installed, creates the pinned-Python environment,
auto-accepts Anaconda channel Terms of Service when creation is rejected
for that reason (retrying once), and installs project dependencies from
requirements.txt plus an editable install of the project itself.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
