package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.NotEmpty(t, cfg.DBPath, "db path should resolve to a default")
	assert.True(t, cfg.Jobs.Enabled)
	assert.Equal(t, 30, cfg.Jobs.LogRetentionDays)
	assert.Equal(t, 7, cfg.Jobs.DigestHour)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PREPMATE_ADDR", ":9191")
	t.Setenv("PREPMATE_LOG_LEVEL", "debug")
	t.Setenv("PREPMATE_JOBS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9191", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Jobs.Enabled)
}

func TestLoad_LLMProviderFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PREPMATE_LLM_PROVIDER", "mock")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mock", cfg.LLM.Provider)
}
