package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phoneagent/envctl/internal/conda"
	"github.com/phoneagent/envctl/internal/config"
	"github.com/phoneagent/envctl/internal/errors"
	"github.com/phoneagent/envctl/internal/system"
)

// newCondaClient returns a conda client over the default executor.
func newCondaClient() *conda.Client {
	return conda.NewClient(system.DefaultExecutor())
}

// loadConfig loads the configuration and applies flag overrides that
// were explicitly set.
func loadConfig(path, name, python, onExisting, projectDir string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, errors.ConfigError("failed to load config", err)
	}

	if name != "" {
		cfg.Environment.Name = name
	}
	if python != "" {
		cfg.Environment.Python = python
	}
	if onExisting != "" {
		cfg.Environment.OnExisting = config.OnExisting(onExisting)
	}
	if projectDir != "" {
		cfg.ProjectDir = projectDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.ConfigError("invalid configuration", err)
	}

	return cfg, nil
}

var bannerStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("39")).
	Padding(0, 2)

// printUsageBanner prints the post-bootstrap usage guidance.
func printUsageBanner(envName string) {
	lines := []string{
		"Environment ready",
		"",
		fmt.Sprintf("Activate:    conda activate %s", envName),
		"Deactivate:  conda deactivate",
		"Recreate:    envctl up --on-existing recreate",
	}
	fmt.Fprintln(os.Stdout, bannerStyle.Render(strings.Join(lines, "\n")))
}
