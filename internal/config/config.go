// Package config loads application settings from config files and
// environment variables. A .env file in the working directory is
// loaded first, then PREPMATE_* environment variables override file
// values.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/prepmate/internal/llm"
	"github.com/abhisek/prepmate/internal/store"
)

// Config holds all application settings.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `mapstructure:"addr"`

	// DBPath is the SQLite database file path.
	DBPath string `mapstructure:"db_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	Jobs JobsConfig `mapstructure:"jobs"`

	// LLM is resolved separately from PREPMATE_* env vars since the
	// provider layer owns its own configuration surface.
	LLM llm.Config `mapstructure:"-"`
}

// JobsConfig controls the background job scheduler.
type JobsConfig struct {
	// Enabled toggles the scheduler as a whole.
	Enabled bool `mapstructure:"enabled"`

	// LogRetentionDays is how long LLM request log entries are kept.
	LogRetentionDays int `mapstructure:"log_retention_days"`

	// DigestHour is the hour of day (0-23, UTC) the due-review digest runs.
	DigestHour int `mapstructure:"digest_hour"`
}

// Load reads configuration: .env file (if present), then an optional
// prepmate.yaml in the working directory, then environment variables.
func Load() (*Config, error) {
	// Missing .env is fine; it only exists in dev setups.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("prepmate")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("jobs.enabled", true)
	v.SetDefault("jobs.log_retention_days", 30)
	v.SetDefault("jobs.digest_hour", 7)

	v.SetEnvPrefix("prepmate")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DBPath == "" {
		path, err := store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = path
	}

	cfg.LLM = llm.ConfigFromEnv()
	if cfg.LLM.Anthropic.APIKey == "" && cfg.LLM.OpenAI.APIKey == "" &&
		cfg.LLM.Gemini.APIKey == "" && cfg.LLM.OpenRouter.APIKey == "" {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg.LLM = discovered
		}
	}

	return &cfg, nil
}
