package conda

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/phoneagent/envctl/internal/logging"
	"github.com/phoneagent/envctl/internal/system"
)

// ToSRejectionMarker is the substring conda prints when package
// resolution fails because channel Terms of Service have not been
// accepted. conda offers no machine-readable error code for this on
// its CLI, so the match is textual and tracks conda's current
// human-facing wording.
const ToSRejectionMarker = "Terms of Service have not been accepted"

// Client drives the conda command-line tool.
type Client struct {
	exec system.CommandExecutor
	bin  string
}

// NewClient creates a Client using the given executor.
func NewClient(exec system.CommandExecutor) *Client {
	return &Client{exec: exec, bin: "conda"}
}

// Available resolves the conda executable on the search path.
func (c *Client) Available() (string, error) {
	return c.exec.LookPath(c.bin)
}

// Version returns conda's version string, e.g. "conda 24.1.0".
func (c *Client) Version(ctx context.Context) (string, error) {
	output, err := c.exec.Execute(ctx, c.bin, "--version")
	if err != nil {
		return "", fmt.Errorf("conda --version failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// EnsureReady probes whether the environment registry is queryable.
// A fresh conda install that has never been initialized can fail the
// listing; in that case a single `conda info` is run to warm it up.
// Failures here are swallowed: the step is best-effort and later
// commands surface real problems themselves.
func (c *Client) EnsureReady(ctx context.Context) {
	if _, err := c.exec.Execute(ctx, c.bin, "env", "list"); err == nil {
		return
	}

	logging.Debug("environment listing failed, probing conda info")
	if _, err := c.exec.Execute(ctx, c.bin, "info"); err != nil {
		logging.Debug("conda info probe failed", "err", err)
	}
}

// EnvExists reports whether a named environment is registered.
// Names are matched as the first field of each listing line, so an
// environment called "PythonAgent" does not match "PythonAgent2".
func (c *Client) EnvExists(ctx context.Context, name string) (bool, error) {
	output, err := c.exec.Execute(ctx, c.bin, "env", "list")
	if err != nil {
		return false, fmt.Errorf("conda env list failed: %w", err)
	}

	scanner := bufio.NewScanner(strings.NewReader(string(output)))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == name {
			return true, nil
		}
	}

	return false, nil
}

// CreateResult carries the combined output and error of a creation
// attempt, held long enough to classify the failure.
type CreateResult struct {
	Output string
	Err    error
}

// OK reports whether the creation succeeded.
func (r CreateResult) OK() bool {
	return r.Err == nil
}

// ToSRejected reports whether the captured output identifies a
// Terms of Service rejection.
func (r CreateResult) ToSRejected() bool {
	return r.Err != nil && strings.Contains(r.Output, ToSRejectionMarker)
}

// Create creates a named environment with a pinned Python version,
// capturing combined output for failure classification.
func (c *Client) Create(ctx context.Context, name, python string) CreateResult {
	logging.Debug("creating environment", "name", name, "python", python)

	output, err := c.exec.Execute(ctx, c.bin, "create", "-n", name, "python="+python, "-y")
	return CreateResult{Output: string(output), Err: err}
}

// CreateStreaming creates a named environment with output connected
// to the terminal. Used for the post-remediation retry, whose failure
// propagates as-is.
func (c *Client) CreateStreaming(ctx context.Context, name, python string) error {
	logging.Debug("retrying environment creation", "name", name, "python", python)

	return c.exec.ExecuteStreaming(ctx, c.bin, "create", "-n", name, "python="+python, "-y")
}

// AcceptToS accepts the Terms of Service for a single channel.
// Output is discarded; callers treat failure as best-effort.
func (c *Client) AcceptToS(ctx context.Context, channel string) error {
	logging.Debug("accepting channel terms of service", "channel", channel)

	_, err := c.exec.Execute(ctx, c.bin, "tos", "accept", "--override-channels", "--channel", channel)
	return err
}

// Remove deletes a named environment without confirmation.
func (c *Client) Remove(ctx context.Context, name string) error {
	logging.Debug("removing environment", "name", name)

	if _, err := c.exec.Execute(ctx, c.bin, "env", "remove", "-n", name, "-y"); err != nil {
		return fmt.Errorf("conda env remove failed: %w", err)
	}
	return nil
}

// Env returns an activation context for a named environment.
func (c *Client) Env(name string) *Env {
	return &Env{client: c, name: name}
}

// Env is an explicit activation context: commands run inside the
// environment via `conda run` instead of mutating process state the
// way shell activation does.
type Env struct {
	client *Client
	name   string
}

// Name returns the environment name.
func (e *Env) Name() string {
	return e.name
}

// PythonVersion returns the interpreter version inside the
// environment, e.g. "Python 3.11.9".
func (e *Env) PythonVersion(ctx context.Context) (string, error) {
	output, err := e.client.exec.Execute(ctx, e.client.bin, "run", "-n", e.name, "python", "--version")
	if err != nil {
		return "", fmt.Errorf("python version query failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// PipInstall installs dependencies from a manifest file, running pip
// inside the environment with dir as the working directory. Output
// streams to the terminal so the operator sees install progress.
func (e *Env) PipInstall(ctx context.Context, dir, manifest string, extraArgs []string) error {
	args := e.pipArgs(dir, "install", "-r", manifest)
	args = append(args, extraArgs...)
	return e.client.exec.ExecuteStreaming(ctx, e.client.bin, args...)
}

// PipInstallEditable performs an editable install of the project
// rooted at dir.
func (e *Env) PipInstallEditable(ctx context.Context, dir string, extraArgs []string) error {
	args := e.pipArgs(dir, "install", "-e", ".")
	args = append(args, extraArgs...)
	return e.client.exec.ExecuteStreaming(ctx, e.client.bin, args...)
}

func (e *Env) pipArgs(dir string, pipCmd ...string) []string {
	args := []string{"run", "-n", e.name}
	if dir != "" {
		args = append(args, "--cwd", dir)
	}
	args = append(args, "pip")
	args = append(args, pipCmd...)
	return args
}
