// Package config loads consumer-facing settings for example binaries and
// embedding applications: provider selection, model id, declaration index
// location and logging verbosity. Settings come from an optional YAML file
// overlaid with environment variables; a .env file is honored when present.
package config

import (
	"fmt"
	"os"
	"strconv"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/hupe1980/agentick/agent"
	"github.com/hupe1980/agentick/logging"
	"github.com/hupe1980/agentick/model"
	"github.com/hupe1980/agentick/model/anthropic"
	"github.com/hupe1980/agentick/model/openai"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the settings needed to bootstrap a run environment.
type Config struct {
	Provider   string `yaml:"provider"`    // "openai", "anthropic" or "mock"
	Model      string `yaml:"model"`       // provider-specific model id
	APIKey     string `yaml:"api_key"`     // usually supplied via environment
	IndexPath  string `yaml:"index_path"`  // declaration index artifact
	LogLevel   string `yaml:"log_level"`   // debug, info, warn, error
	MaxRetries int    `yaml:"max_retries"` // 0 means the default budget
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Provider:   "openai",
		LogLevel:   "info",
		MaxRetries: agent.DefaultMaxRetries,
	}
}

// Load reads a YAML config file (skipped when path is empty) and applies the
// environment overlay on top. A .env file in the working directory is loaded
// first, best-effort.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	_ = godotenv.Load() // missing .env is fine

	cfg.applyEnv()

	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = agent.DefaultMaxRetries
	}

	return cfg, nil
}

// applyEnv overlays AGENTICK_* variables plus the conventional provider key
// variables onto the config.
func (c *Config) applyEnv() {
	if v := os.Getenv("AGENTICK_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("AGENTICK_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("AGENTICK_INDEX_PATH"); v != "" {
		c.IndexPath = v
	}
	if v := os.Getenv("AGENTICK_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("AGENTICK_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxRetries = n
		}
	}
	if v := os.Getenv("AGENTICK_API_KEY"); v != "" {
		c.APIKey = v
	}
	if c.APIKey == "" {
		switch c.Provider {
		case "anthropic":
			c.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		case "openai":
			c.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}
}

// Level maps the configured log level onto the logging enum.
func (c Config) Level() logging.LogLevel {
	switch c.LogLevel {
	case "debug":
		return logging.LogLevelDebug
	case "warn":
		return logging.LogLevelWarn
	case "error":
		return logging.LogLevelError
	default:
		return logging.LogLevelInfo
	}
}

// NewClient constructs the model client selected by the config.
func (c Config) NewClient() (model.Client, error) {
	switch c.Provider {
	case "openai":
		return openai.NewClient(func(o *openai.Options) {
			if c.Model != "" {
				o.Model = c.Model
			}
			o.APIKey = c.APIKey
		}), nil
	case "anthropic":
		return anthropic.NewClient(func(o *anthropic.Options) {
			if c.Model != "" {
				o.Model = anthropicsdk.Model(c.Model)
			}
			o.APIKey = c.APIKey
		}), nil
	case "mock":
		return model.NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", c.Provider)
	}
}
