package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/Aashka20/UnixShell/internal/jobs"
)

// Config holds the shell's settings. Zero values are filled with defaults
// by Load, so a partial (or absent) config file is fine.
type Config struct {
	Prompt      string `yaml:"prompt"`
	MaxJobs     int    `yaml:"max_jobs"`
	HistoryFile string `yaml:"history_file"`

	// NoPrompt suppresses the interactive prompt so automated harnesses see
	// only command output. Set by the -p flag rather than the file.
	NoPrompt bool `yaml:"-"`
}

// Load reads a YAML config from file. A missing file yields pure defaults.
func Load(file string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(file)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Prompt == "" {
		cfg.Prompt = "tsh> "
	}

	if cfg.MaxJobs <= 0 {
		cfg.MaxJobs = jobs.DefaultCapacity
	}

	if cfg.HistoryFile == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			cfg.HistoryFile = filepath.Join(homeDir, ".unixshell_history")
		}
	}

	return cfg, nil
}
