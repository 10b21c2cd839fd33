package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"agentlab/pkg/errors"
)

type Config struct {
	App           AppConfig
	AI            AIConfig
	Agents        AgentsConfig
	Cache         CacheConfig
	ErrorTracking ErrorTrackingConfig
}

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"agentlab"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type AIConfig struct {
	GeminiKey       string `envconfig:"GEMINI_API_KEY"`
	OpenAIKey       string `envconfig:"OPENAI_API_KEY"`
	VectorStoreID   string `envconfig:"VECTOR_STORE_ID"`
	DefaultProvider string `envconfig:"DEFAULT_AI_PROVIDER" default:"gemini"`
	DefaultModel    string `envconfig:"DEFAULT_AI_MODEL" default:"gemini-2.0-flash"`
}

// Key returns the API key configured for the given provider name.
func (c AIConfig) Key(provider string) string {
	switch provider {
	case "gemini":
		return c.GeminiKey
	case "openai":
		return c.OpenAIKey
	default:
		return ""
	}
}

// RequireKey returns the provider API key or an error when unset.
func (c AIConfig) RequireKey(provider string) (string, error) {
	key := c.Key(provider)
	if key == "" {
		return "", errors.Wrapf(errors.ErrMissingAPIKey, "%s", provider)
	}
	return key, nil
}

type AgentsConfig struct {
	ExecutionTimeout time.Duration `envconfig:"AGENT_EXECUTION_TIMEOUT" default:"2m"`
	MaxTokens        int           `envconfig:"AGENT_MAX_TOKENS" default:"4096"`
	Temperature      float64       `envconfig:"AGENT_TEMPERATURE" default:"0.7"`
	ModelRatePerSec  float64       `envconfig:"AGENT_MODEL_RATE_PER_SEC" default:"2"`
	StreamingEnabled bool          `envconfig:"AGENT_STREAMING_ENABLED" default:"true"`
}

type CacheConfig struct {
	RedisHost string        `envconfig:"REDIS_HOST"`
	RedisPort int           `envconfig:"REDIS_PORT" default:"6379"`
	RedisDB   int           `envconfig:"REDIS_DB" default:"0"`
	TTL       time.Duration `envconfig:"MODEL_CACHE_TTL" default:"10m"`
}

// Enabled reports whether a Redis endpoint is configured.
func (c CacheConfig) Enabled() bool {
	return c.RedisHost != ""
}

// Addr returns the Redis host:port pair.
func (c CacheConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

type ErrorTrackingConfig struct {
	Enabled     bool   `envconfig:"ERROR_TRACKING_ENABLED" default:"false"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"SENTRY_ENVIRONMENT" default:"development"`
}

// Load reads configuration from the environment, preferring a local .env file.
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process env config")
	}

	return &cfg, nil
}
