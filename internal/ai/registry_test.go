package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agentlab/pkg/errors"
)

func TestNewDefaultRegistry(t *testing.T) {
	reg, err := NewDefaultRegistry("gemini-key", "openai-key")
	require.NoError(t, err)

	for _, name := range AllProviderNames() {
		provider, err := reg.Get(name.String())
		require.NoError(t, err)
		assert.Equal(t, name.String(), provider.Name())
	}
}

func TestRegistryDuplicateProvider(t *testing.T) {
	reg := NewProviderRegistry()
	require.NoError(t, reg.Register(NewGeminiProvider("key")))

	err := reg.Register(NewGeminiProvider("key"))
	assert.Error(t, err)
}

func TestRegistryUnknownProvider(t *testing.T) {
	reg := NewProviderRegistry()

	_, err := reg.Get("anthropic")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrProviderNotFound))
}

func TestResolveModel(t *testing.T) {
	reg, err := NewDefaultRegistry("gemini-key", "openai-key")
	require.NoError(t, err)

	info, err := reg.ResolveModel(context.Background(), "gemini", "gemini-2.0-flash")
	require.NoError(t, err)
	assert.Equal(t, ProviderNameGemini, info.Provider)
	assert.True(t, info.SupportsTools)
	assert.Greater(t, info.MaxTokens, 0)

	_, err = reg.ResolveModel(context.Background(), "gemini", "not-a-model")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrModelNotFound))
}

func TestListModelsCoversAllProviders(t *testing.T) {
	reg, err := NewDefaultRegistry("gemini-key", "openai-key")
	require.NoError(t, err)

	models, err := reg.ListModels(context.Background())
	require.NoError(t, err)

	assert.Len(t, models, 2)
	assert.NotEmpty(t, models["gemini"])
	assert.NotEmpty(t, models["openai"])
}

func TestProviderNameValidation(t *testing.T) {
	assert.True(t, ProviderNameGemini.IsValid())
	assert.True(t, ProviderNameOpenAI.IsValid())
	assert.False(t, ProviderName("bedrock").IsValid())
}
