package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/teachshell/xvsh/internal/config"
)

func TestLoad_EnvVarOverridesPromptHome(t *testing.T) {
	os.Setenv("XVSH_PROMPT_HOME", "/custom/")
	defer os.Unsetenv("XVSH_PROMPT_HOME")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "/custom/", cfg.PromptHome)
}

func TestConfigPath(t *testing.T) {
	path, err := config.ConfigPath()
	assert.NoError(t, err)
	assert.Contains(t, path, ".xvsh/config.yaml")
}

func TestDefaultValues(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "~/", cfg.PromptHome)
	assert.Equal(t, 20, cfg.HistoryCapacity)
	assert.Equal(t, config.DefaultMaxMemoryBufferMB, cfg.MaxMemoryBufferMB)
}
