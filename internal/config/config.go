package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
	shellquote "github.com/kballard/go-shellquote"
)

// envNameRegex validates conda environment names.
// conda rejects names containing '/', ' ', ':' or '#'; we additionally
// require the name to start with an alphanumeric character.
var envNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// pythonVersionRegex validates pinned interpreter versions like "3" or "3.11".
var pythonVersionRegex = regexp.MustCompile(`^\d+(\.\d+)*$`)

// ValidateEnvName checks if an environment name is acceptable to conda.
func ValidateEnvName(name string) error {
	if name == "" {
		return fmt.Errorf("environment name cannot be empty")
	}

	if !envNameRegex.MatchString(name) {
		return fmt.Errorf("invalid environment name %q: must start with a letter or digit and contain only letters, digits, dots, underscores, or hyphens", name)
	}

	return nil
}

// Defaults for the PythonAgent bootstrap.
const (
	DefaultConfigFile = "envctl.toml"
	DefaultEnvName    = "PythonAgent"
	DefaultPython     = "3.11"
	DefaultManifest   = "requirements.txt"
)

// DefaultToSChannels are the Anaconda channels whose Terms of Service
// must be accepted before package resolution succeeds.
var DefaultToSChannels = []string{
	"https://repo.anaconda.com/pkgs/main",
	"https://repo.anaconda.com/pkgs/r",
}

// OnExisting selects how the bootstrapper treats a pre-existing
// target environment.
type OnExisting string

const (
	// OnExistingPrompt asks the operator whether to recreate.
	OnExistingPrompt OnExisting = "prompt"
	// OnExistingRecreate removes and recreates without asking.
	OnExistingRecreate OnExisting = "recreate"
	// OnExistingReuse keeps the environment and stops successfully.
	OnExistingReuse OnExisting = "reuse"
	// OnExistingFail aborts with an error.
	OnExistingFail OnExisting = "fail"
)

// Valid reports whether the policy is one of the known values.
func (p OnExisting) Valid() bool {
	switch p {
	case OnExistingPrompt, OnExistingRecreate, OnExistingReuse, OnExistingFail:
		return true
	}
	return false
}

// Config is the envctl configuration, loaded from envctl.toml.
// Every field has a default; the file itself is optional.
type Config struct {
	Environment EnvironmentConfig `toml:"environment"`
	Channels    ChannelsConfig    `toml:"channels"`
	Install     InstallConfig     `toml:"install"`

	// ProjectDir is the directory the config was loaded from (or the
	// working directory when no file was found). Manifest and editable
	// install paths resolve against it. Not set from TOML.
	ProjectDir string `toml:"-"`
}

// EnvironmentConfig pins the target environment.
type EnvironmentConfig struct {
	Name       string     `toml:"name"`
	Python     string     `toml:"python"`
	OnExisting OnExisting `toml:"on_existing"`
}

// ChannelsConfig lists the channels to accept Terms of Service for
// when creation hits a ToS rejection.
type ChannelsConfig struct {
	ToS []string `toml:"tos"`
}

// InstallConfig controls the dependency install step.
type InstallConfig struct {
	Manifest string `toml:"manifest"`
	Editable bool   `toml:"editable"`
	PipArgs  string `toml:"pip_args"`
}

// Default returns the configuration used when no envctl.toml exists.
func Default() *Config {
	return &Config{
		Environment: EnvironmentConfig{
			Name:       DefaultEnvName,
			Python:     DefaultPython,
			OnExisting: OnExistingPrompt,
		},
		Channels: ChannelsConfig{
			ToS: append([]string(nil), DefaultToSChannels...),
		},
		Install: InstallConfig{
			Manifest: DefaultManifest,
			Editable: true,
		},
	}
}

// Load reads the configuration from path. An empty path looks for
// envctl.toml in the working directory and silently falls back to
// defaults when absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			cfg.ProjectDir = mustWorkingDir()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	cfg.ProjectDir = filepath.Dir(abs)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := ValidateEnvName(c.Environment.Name); err != nil {
		return err
	}

	if !pythonVersionRegex.MatchString(c.Environment.Python) {
		return fmt.Errorf("invalid python version %q", c.Environment.Python)
	}

	if !c.Environment.OnExisting.Valid() {
		return fmt.Errorf("invalid on_existing policy %q (must be prompt, recreate, reuse, or fail)", c.Environment.OnExisting)
	}

	if len(c.Channels.ToS) == 0 {
		return fmt.Errorf("at least one tos channel is required")
	}

	if c.Install.Manifest == "" {
		return fmt.Errorf("manifest filename cannot be empty")
	}
	if filepath.Dir(c.Install.Manifest) != "." {
		return fmt.Errorf("manifest must be a bare filename, not a path: %q", c.Install.Manifest)
	}

	if _, err := c.PipArgList(); err != nil {
		return fmt.Errorf("invalid pip_args: %w", err)
	}

	return nil
}

// PipArgList splits the configured extra pip arguments shell-style.
func (c *Config) PipArgList() ([]string, error) {
	if c.Install.PipArgs == "" {
		return nil, nil
	}
	return shellquote.Split(c.Install.PipArgs)
}

func mustWorkingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
