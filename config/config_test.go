package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var fileCfg = &Config{
	LogLevel:  "debug",
	LogFormat: "json",
	Sentry: SentryConfig{
		DSN:              "https://public@sentry.example.com/1",
		Environment:      "staging",
		TracesSampleRate: 0.25,
	},
}

func writeConfig(t *testing.T, cfg *Config) string {
	t.Helper()
	b, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, envs := range envBindings {
		for _, env := range envs {
			t.Setenv(env, "")
			require.NoError(t, os.Unsetenv(env))
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.JSONLogs())
	assert.Equal(t, "development", cfg.Sentry.Environment)
	assert.InDelta(t, 1.0, cfg.Sentry.TracesSampleRate, 1e-9)
	assert.False(t, cfg.Sentry.Enabled())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeConfig(t, fileCfg))
	require.NoError(t, err)
	assert.Equal(t, fileCfg, cfg)
	assert.True(t, cfg.JSONLogs())
	assert.True(t, cfg.Sentry.Enabled())
}

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SENTRY_DSN", "https://env@sentry.example.com/2")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "https://env@sentry.example.com/2", cfg.Sentry.DSN)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("MUSICAPP_LOG_LEVEL", "warn")
	t.Setenv("SENTRY_TRACES_SAMPLE_RATE", "0.5")

	cfg, err := Load(writeConfig(t, fileCfg))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.InDelta(t, 0.5, cfg.Sentry.TracesSampleRate, 1e-9)
	assert.Equal(t, "staging", cfg.Sentry.Environment)
}

func TestLoad_LegacyEnvName(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestConfig_Level(t *testing.T) {
	cfg := &Config{LogLevel: "debug"}
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	cfg.LogLevel = "loud"
	_, err = cfg.Level()
	assert.Error(t, err)
}
