package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentlab/pkg/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "agentlab", cfg.App.Name)
	assert.Equal(t, "gemini", cfg.AI.DefaultProvider)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.DefaultModel)
	assert.Equal(t, 2*time.Minute, cfg.Agents.ExecutionTimeout)
	assert.Equal(t, 4096, cfg.Agents.MaxTokens)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DEFAULT_AI_PROVIDER", "openai")
	t.Setenv("AGENT_EXECUTION_TIMEOUT", "30s")
	t.Setenv("AGENT_MODEL_RATE_PER_SEC", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.AI.DefaultProvider)
	assert.Equal(t, 30*time.Second, cfg.Agents.ExecutionTimeout)
	assert.Equal(t, 5.0, cfg.Agents.ModelRatePerSec)
}

func TestAIConfigKey(t *testing.T) {
	ai := AIConfig{GeminiKey: "g-key", OpenAIKey: "o-key"}

	assert.Equal(t, "g-key", ai.Key("gemini"))
	assert.Equal(t, "o-key", ai.Key("openai"))
	assert.Empty(t, ai.Key("mistral"))
}

func TestAIConfigRequireKey(t *testing.T) {
	ai := AIConfig{GeminiKey: "g-key"}

	key, err := ai.RequireKey("gemini")
	require.NoError(t, err)
	assert.Equal(t, "g-key", key)

	_, err = ai.RequireKey("openai")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingAPIKey))
}

func TestCacheConfig(t *testing.T) {
	disabled := CacheConfig{}
	assert.False(t, disabled.Enabled())

	enabled := CacheConfig{RedisHost: "localhost", RedisPort: 6379}
	assert.True(t, enabled.Enabled())
	assert.Equal(t, "localhost:6379", enabled.Addr())
}
