package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the shell's ambient, persisted settings — the part of
// the system that isn't spec.md's command-tree semantics but that a
// complete REPL still needs: display theme, history bound, the prompt
// tracker's seed, and the memory guard's available-memory floor.
type Config struct {
	Theme             string `yaml:"theme"`
	HistoryCapacity   int    `yaml:"history_capacity"`
	PromptHome        string `yaml:"prompt_home"`
	MaxMemoryBufferMB int    `yaml:"max_memory_buffer_mb"`
}

const DefaultMaxMemoryBufferMB = 100 // 100MB

func Default() *Config {
	return &Config{
		Theme:             "auto",
		HistoryCapacity:   20,
		PromptHome:        "~/",
		MaxMemoryBufferMB: DefaultMaxMemoryBufferMB,
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".xvsh"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads config.yaml under ConfigDir, falling back to Default for
// any field the file omits and for a missing file entirely.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		f, err := os.Open(path)
		if err == nil {
			defer f.Close()
			if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	if home := os.Getenv("XVSH_PROMPT_HOME"); home != "" {
		cfg.PromptHome = home
	}

	return cfg, nil
}
