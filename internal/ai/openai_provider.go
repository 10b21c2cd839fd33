package ai

import (
	"context"
	"strings"

	adkmodel "google.golang.org/adk/model"

	"agentlab/pkg/errors"
)

// OpenAIProvider exposes OpenAI model metadata.
type OpenAIProvider struct {
	apiKey string
	models []ModelInfo
}

// NewOpenAIProvider creates a new OpenAI provider instance.
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{apiKey: apiKey, models: openAIModels()}
}

// Name returns provider name.
func (p *OpenAIProvider) Name() string { return ProviderNameOpenAI.String() }

// GetModel returns model info by name.
func (p *OpenAIProvider) GetModel(_ context.Context, model string) (ModelInfo, error) {
	for _, m := range p.models {
		if strings.EqualFold(m.Name, model) {
			return m, nil
		}
	}
	return ModelInfo{}, errors.Wrapf(errors.ErrModelNotFound, "openai model %s", model)
}

// ListModels lists available models.
func (p *OpenAIProvider) ListModels(_ context.Context) ([]ModelInfo, error) {
	return p.models, nil
}

// NewLLM builds an ADK model backed by the chat-completions client.
func (p *OpenAIProvider) NewLLM(ctx context.Context, model string) (adkmodel.LLM, error) {
	if _, err := p.GetModel(ctx, model); err != nil {
		return nil, err
	}

	client, err := NewOpenAIChatClient(p.apiKey)
	if err != nil {
		return nil, err
	}

	return NewModelAdapter(client, model), nil
}

// SupportsStreaming indicates streaming support.
func (p *OpenAIProvider) SupportsStreaming() bool { return true }

// SupportsTools indicates tool calling support.
func (p *OpenAIProvider) SupportsTools() bool { return true }

func openAIModels() []ModelInfo {
	return []ModelInfo{
		{
			Provider:          ProviderNameOpenAI,
			Name:              "gpt-4o-mini",
			Family:            "gpt-4o",
			MaxTokens:         128000,
			SupportsTools:     true,
			SupportsStreaming: true,
			SupportsSchemas:   true,
		},
		{
			Provider:          ProviderNameOpenAI,
			Name:              "gpt-4o",
			Family:            "gpt-4o",
			MaxTokens:         128000,
			SupportsTools:     true,
			SupportsStreaming: true,
			SupportsSchemas:   true,
		},
		{
			Provider:          ProviderNameOpenAI,
			Name:              "o1-mini",
			Family:            "o1",
			MaxTokens:         65536,
			SupportsTools:     true,
			SupportsStreaming: true,
			SupportsSchemas:   false,
		},
	}
}
