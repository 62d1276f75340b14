package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Environment.Name != "PythonAgent" {
		t.Errorf("Name = %q, want %q", cfg.Environment.Name, "PythonAgent")
	}
	if cfg.Environment.Python != DefaultPython {
		t.Errorf("Python = %q, want %q", cfg.Environment.Python, DefaultPython)
	}
	if cfg.Environment.OnExisting != OnExistingPrompt {
		t.Errorf("OnExisting = %q, want %q", cfg.Environment.OnExisting, OnExistingPrompt)
	}
	if len(cfg.Channels.ToS) != 2 {
		t.Fatalf("len(ToS) = %d, want 2", len(cfg.Channels.ToS))
	}
	if cfg.Channels.ToS[0] != "https://repo.anaconda.com/pkgs/main" {
		t.Errorf("ToS[0] = %q, want pkgs/main channel", cfg.Channels.ToS[0])
	}
	if cfg.Channels.ToS[1] != "https://repo.anaconda.com/pkgs/r" {
		t.Errorf("ToS[1] = %q, want pkgs/r channel", cfg.Channels.ToS[1])
	}
	if cfg.Install.Manifest != "requirements.txt" {
		t.Errorf("Manifest = %q, want %q", cfg.Install.Manifest, "requirements.txt")
	}
	if !cfg.Install.Editable {
		t.Error("Editable should default to true")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestValidateEnvName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"PythonAgent", false},
		{"my-env", false},
		{"env_2", false},
		{"py3.11", false},
		{"", true},
		{"has space", true},
		{"has/slash", true},
		{"has:colon", true},
		{"-leading-dash", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEnvName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEnvName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
		})
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "envctl.toml")

	content := `
[environment]
name = "agent-dev"
python = "3.12"
on_existing = "recreate"

[channels]
tos = ["https://repo.anaconda.com/pkgs/main"]

[install]
manifest = "requirements-dev.txt"
editable = false
pip_args = "--no-cache-dir --quiet"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Environment.Name != "agent-dev" {
		t.Errorf("Name = %q, want %q", cfg.Environment.Name, "agent-dev")
	}
	if cfg.Environment.Python != "3.12" {
		t.Errorf("Python = %q, want %q", cfg.Environment.Python, "3.12")
	}
	if cfg.Environment.OnExisting != OnExistingRecreate {
		t.Errorf("OnExisting = %q, want recreate", cfg.Environment.OnExisting)
	}
	if len(cfg.Channels.ToS) != 1 {
		t.Errorf("len(ToS) = %d, want 1", len(cfg.Channels.ToS))
	}
	if cfg.Install.Editable {
		t.Error("Editable should be false")
	}
	if cfg.ProjectDir != tmpDir {
		t.Errorf("ProjectDir = %q, want %q", cfg.ProjectDir, tmpDir)
	}

	args, err := cfg.PipArgList()
	if err != nil {
		t.Fatalf("PipArgList: %v", err)
	}
	if len(args) != 2 || args[0] != "--no-cache-dir" || args[1] != "--quiet" {
		t.Errorf("PipArgList = %v, want [--no-cache-dir --quiet]", args)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "envctl.toml")

	content := `
[environment]
python = "3.9"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Environment.Python != "3.9" {
		t.Errorf("Python = %q, want %q", cfg.Environment.Python, "3.9")
	}
	// Untouched fields keep their defaults
	if cfg.Environment.Name != DefaultEnvName {
		t.Errorf("Name = %q, want default %q", cfg.Environment.Name, DefaultEnvName)
	}
	if len(cfg.Channels.ToS) != 2 {
		t.Errorf("len(ToS) = %d, want default 2", len(cfg.Channels.ToS))
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("Load should fail for an explicit missing path")
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "envctl.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should fail for invalid TOML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default ok", func(c *Config) {}, false},
		{"bad env name", func(c *Config) { c.Environment.Name = "bad name" }, true},
		{"bad python", func(c *Config) { c.Environment.Python = "three" }, true},
		{"bad policy", func(c *Config) { c.Environment.OnExisting = "ask-nicely" }, true},
		{"no channels", func(c *Config) { c.Channels.ToS = nil }, true},
		{"empty manifest", func(c *Config) { c.Install.Manifest = "" }, true},
		{"manifest with path", func(c *Config) { c.Install.Manifest = "sub/requirements.txt" }, true},
		{"unbalanced pip args", func(c *Config) { c.Install.PipArgs = `--index-url "broken` }, true},
		{"major-only python", func(c *Config) { c.Environment.Python = "3" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
