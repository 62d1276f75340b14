package bootstrap

import (
	"context"
	"fmt"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/phoneagent/envctl/internal/conda"
	"github.com/phoneagent/envctl/internal/config"
	"github.com/phoneagent/envctl/internal/errors"
	"github.com/phoneagent/envctl/internal/interaction"
	"github.com/phoneagent/envctl/internal/logging"
	"github.com/phoneagent/envctl/internal/system"
)

// condaInstallGuidance is printed when conda cannot be resolved.
const condaInstallGuidance = `conda is required but was not found on PATH.

Install it with one of:
  - Miniconda: https://docs.conda.io/en/latest/miniconda.html
  - Homebrew:  brew install miniconda

Then initialize your shell and retry:
  conda init "$(basename "$SHELL")"
  exec "$SHELL"
`

// Outcome describes how a bootstrap run ended successfully.
type Outcome string

const (
	// OutcomeCreated means the environment did not exist and was created.
	OutcomeCreated Outcome = "created"
	// OutcomeRecreated means an existing environment was removed first.
	OutcomeRecreated Outcome = "recreated"
	// OutcomeReused means the operator kept the existing environment;
	// this is a successful early exit, not an error.
	OutcomeReused Outcome = "reused"
)

// Result reports what a bootstrap run did.
type Result struct {
	Outcome           Outcome
	EnvName           string
	CondaVersion      string
	PythonVersion     string
	ManifestPath      string
	InstalledManifest bool
	InstalledEditable bool
}

// Options configures a Bootstrapper.
type Options struct {
	Config      *config.Config
	SkipInstall bool

	// Prompter answers the recreate question under the prompt policy.
	Prompter interaction.Prompter

	// Interactive reports whether stdin is a terminal. The prompt
	// policy refuses to block when it is false.
	Interactive bool
}

// Bootstrapper runs the environment bootstrap procedure: preflight,
// existing-environment resolution, creation with the single
// ToS-remediation retry, version verification, and dependency install.
type Bootstrapper struct {
	client *conda.Client
	fs     system.FileSystem
	opts   Options
}

// New creates a Bootstrapper.
func New(client *conda.Client, fs system.FileSystem, opts Options) *Bootstrapper {
	return &Bootstrapper{client: client, fs: fs, opts: opts}
}

// Run executes the bootstrap sequence. Steps run strictly in order
// and the first fatal error stops everything; there is no rollback of
// partially completed steps.
func (b *Bootstrapper) Run(ctx context.Context) (*Result, error) {
	cfg := b.opts.Config
	name := cfg.Environment.Name

	result := &Result{EnvName: name}

	// Preflight: conda must resolve before any mutating command.
	condaPath, err := b.client.Available()
	if err != nil {
		fmt.Fprint(logging.UserErr, condaInstallGuidance)
		return nil, errors.CondaMissing(err)
	}
	logging.Debug("conda resolved", "path", condaPath)

	if version, err := b.client.Version(ctx); err == nil {
		result.CondaVersion = version
		logging.UserInfo("Using %s", version)
	}

	b.client.EnsureReady(ctx)

	recreated, reused, err := b.resolveExisting(ctx, name)
	if err != nil {
		return nil, err
	}
	if reused {
		result.Outcome = OutcomeReused
		logging.UserInfo("Keeping existing environment. Activate it with: conda activate %s", name)
		return result, nil
	}

	if err := b.create(ctx, name, cfg.Environment.Python); err != nil {
		return nil, err
	}

	result.Outcome = OutcomeCreated
	if recreated {
		result.Outcome = OutcomeRecreated
	}
	logging.UserSuccess("Environment %s created", name)

	env := b.client.Env(name)

	// Observational only: the pinned version was already enforced at
	// creation, so a failed query degrades to a warning.
	if version, err := env.PythonVersion(ctx); err == nil {
		result.PythonVersion = version
		logging.UserInfo("%s", version)
	} else {
		logging.UserWarning("Could not query interpreter version: %v", err)
	}

	if b.opts.SkipInstall {
		logging.Debug("dependency install skipped by request")
		return result, nil
	}

	if err := b.installDependencies(ctx, env, result); err != nil {
		return nil, err
	}

	return result, nil
}

// resolveExisting decides what to do about a pre-existing environment.
// It returns recreated=true when the environment was removed and
// creation should proceed, and reused=true when the run should stop
// successfully without touching the environment.
func (b *Bootstrapper) resolveExisting(ctx context.Context, name string) (recreated, reused bool, err error) {
	exists, err := b.client.EnvExists(ctx, name)
	if err != nil {
		return false, false, errors.Wrap(errors.ExitGeneralError, "failed to query environments", err)
	}
	if !exists {
		return false, false, nil
	}

	policy := b.opts.Config.Environment.OnExisting
	logging.Debug("environment already exists", "name", name, "policy", policy)

	switch policy {
	case config.OnExistingReuse:
		return false, true, nil

	case config.OnExistingFail:
		return false, false, errors.New(errors.ExitGeneralError, fmt.Sprintf("environment %s already exists", name))

	case config.OnExistingPrompt:
		if !b.opts.Interactive {
			return false, false, errors.ConfigError(
				fmt.Sprintf("environment %s already exists and stdin is not a terminal; use --on-existing recreate|reuse|fail", name), nil)
		}
		yes, err := b.opts.Prompter.Confirm(fmt.Sprintf("Environment %s already exists. Delete and recreate?", name))
		if err != nil {
			return false, false, errors.Wrap(errors.ExitGeneralError, "failed to read answer", err)
		}
		if !yes {
			return false, true, nil
		}

	case config.OnExistingRecreate:
		// fall through to removal
	}

	logging.UserInfo("Removing environment %s...", name)
	if err := b.client.Remove(ctx, name); err != nil {
		return false, false, errors.RemoveFailed(name, err)
	}

	return true, false, nil
}

// create runs environment creation with the single retry policy:
// a Terms of Service rejection triggers best-effort acceptance for
// each configured channel and exactly one retry; any other failure is
// fatal with conda's output reproduced verbatim.
func (b *Bootstrapper) create(ctx context.Context, name, python string) error {
	logging.UserInfo("Creating environment %s (python=%s)...", name, python)

	result := b.client.Create(ctx, name, python)
	if result.OK() {
		return nil
	}

	if !result.ToSRejected() {
		return errors.CreateFailed(name, result.Output, result.Err)
	}

	logging.UserWarning("Channel Terms of Service not accepted; accepting and retrying...")
	for _, channel := range b.opts.Config.Channels.ToS {
		// Best-effort: one channel being unknown to this conda version
		// must not block accepting the other.
		if err := b.client.AcceptToS(ctx, channel); err != nil {
			logging.Debug("tos accept failed", "channel", channel, "err", err)
		}
	}

	if err := b.client.CreateStreaming(ctx, name, python); err != nil {
		return errors.Wrap(errors.ExitCreateFailed,
			fmt.Sprintf("failed to create environment %s after accepting channel terms", name), err)
	}

	return nil
}

// installDependencies installs the manifest and the editable project
// when a manifest is present; its absence is a warning, not an error.
func (b *Bootstrapper) installDependencies(ctx context.Context, env *conda.Env, result *Result) error {
	cfg := b.opts.Config

	manifestPath, err := securejoin.SecureJoin(cfg.ProjectDir, cfg.Install.Manifest)
	if err != nil {
		return errors.ConfigError("failed to resolve manifest path", err)
	}
	result.ManifestPath = manifestPath

	if !b.fs.Exists(manifestPath) {
		logging.UserWarning("%s not found in %s, skipping dependency install", cfg.Install.Manifest, cfg.ProjectDir)
		return nil
	}

	pipArgs, err := cfg.PipArgList()
	if err != nil {
		return errors.ConfigError("invalid pip_args", err)
	}

	logging.UserInfo("Installing dependencies from %s...", cfg.Install.Manifest)
	if err := env.PipInstall(ctx, cfg.ProjectDir, cfg.Install.Manifest, pipArgs); err != nil {
		return errors.InstallFailed(cfg.Install.Manifest, err)
	}
	result.InstalledManifest = true

	if cfg.Install.Editable {
		logging.UserInfo("Installing project in editable mode...")
		if err := env.PipInstallEditable(ctx, cfg.ProjectDir, pipArgs); err != nil {
			return errors.InstallFailed("project (editable)", err)
		}
		result.InstalledEditable = true
	}

	return nil
}
