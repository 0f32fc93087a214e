package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Aashka20/UnixShell/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("expected not to receive error: got '%v'", err)
	}

	if cfg.Prompt != "tsh> " {
		t.Errorf("expected default prompt: got '%s'", cfg.Prompt)
	}

	if cfg.MaxJobs != 16 {
		t.Errorf("expected default max_jobs: got '%d', want '16'", cfg.MaxJobs)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yml")

	content := "prompt: \"$ \"\nmax_jobs: 4\nhistory_file: /tmp/hist\n"
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := config.Load(file)
	if err != nil {
		t.Fatalf("expected not to receive error: got '%v'", err)
	}

	if cfg.Prompt != "$ " {
		t.Errorf("expected prompt: got '%s', want '$ '", cfg.Prompt)
	}

	if cfg.MaxJobs != 4 {
		t.Errorf("expected max_jobs: got '%d', want '4'", cfg.MaxJobs)
	}

	if cfg.HistoryFile != "/tmp/hist" {
		t.Errorf("expected history_file: got '%s'", cfg.HistoryFile)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yml")

	if err := os.WriteFile(file, []byte("prompt: [unterminated"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := config.Load(file); err == nil {
		t.Error("expected error for malformed config")
	}
}
