package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config contains runtime configuration for the musicapp command
type Config struct {
	LogLevel  string       `mapstructure:"log_level" yaml:"log_level"`   // debug, info, warn or error
	LogFormat string       `mapstructure:"log_format" yaml:"log_format"` // console or json
	Sentry    SentryConfig `mapstructure:"sentry" yaml:"sentry"`
}

// SentryConfig configures error reporting. Reporting is disabled when DSN is empty.
type SentryConfig struct {
	DSN              string  `mapstructure:"dsn" yaml:"dsn"`
	Environment      string  `mapstructure:"environment" yaml:"environment"`
	TracesSampleRate float64 `mapstructure:"traces_sample_rate" yaml:"traces_sample_rate"`
}

// Enabled reports whether a Sentry DSN is configured
func (c SentryConfig) Enabled() bool {
	return c.DSN != ""
}

// Level parses LogLevel into a zap level
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// JSONLogs reports whether logs should use the JSON encoder
func (c *Config) JSONLogs() bool {
	return c.LogFormat == "json"
}

// Load loads the config from filePath, falling back to env vars if the path is empty or the
// file does not exist. Env vars that are set override values loaded from the file.
func Load(filePath string) (*Config, error) {
	v := newViper()

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if filePath != "" {
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			v.SetConfigFile(filePath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", filePath, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("sentry.environment", "development")
	v.SetDefault("sentry.traces_sample_rate", 1.0)
	return v
}

// envBindings maps config keys to the environment variables that can provide them.
// The first variable set wins.
var envBindings = map[string][]string{
	"log_level":                 {"MUSICAPP_LOG_LEVEL", "LOG_LEVEL"},
	"log_format":                {"MUSICAPP_LOG_FORMAT"},
	"sentry.dsn":                {"SENTRY_DSN"},
	"sentry.environment":        {"SENTRY_ENVIRONMENT"},
	"sentry.traces_sample_rate": {"SENTRY_TRACES_SAMPLE_RATE"},
}

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(slices.Clone(envs), 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
