package ai

import (
	"context"
	"strings"

	adkmodel "google.golang.org/adk/model"
	adkgemini "google.golang.org/adk/model/gemini"
	"google.golang.org/genai"

	"agentlab/pkg/errors"
)

// GeminiProvider exposes Google Gemini model metadata.
type GeminiProvider struct {
	apiKey string
	models []ModelInfo
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(apiKey string) *GeminiProvider {
	return &GeminiProvider{apiKey: apiKey, models: geminiModels()}
}

// Name returns provider name.
func (p *GeminiProvider) Name() string { return ProviderNameGemini.String() }

// GetModel returns model info by name.
func (p *GeminiProvider) GetModel(_ context.Context, model string) (ModelInfo, error) {
	for _, m := range p.models {
		if strings.EqualFold(m.Name, model) {
			return m, nil
		}
	}
	return ModelInfo{}, errors.Wrapf(errors.ErrModelNotFound, "gemini model %s", model)
}

// ListModels lists available models.
func (p *GeminiProvider) ListModels(_ context.Context) ([]ModelInfo, error) {
	return p.models, nil
}

// NewLLM builds a native Gemini ADK model talking to the Gemini API.
func (p *GeminiProvider) NewLLM(ctx context.Context, model string) (adkmodel.LLM, error) {
	if p.apiKey == "" {
		return nil, errors.Wrap(errors.ErrMissingAPIKey, "gemini")
	}
	if _, err := p.GetModel(ctx, model); err != nil {
		return nil, err
	}

	return adkgemini.NewModel(ctx, model, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// SupportsStreaming indicates streaming support.
func (p *GeminiProvider) SupportsStreaming() bool { return true }

// SupportsTools indicates tool calling support.
func (p *GeminiProvider) SupportsTools() bool { return true }

func geminiModels() []ModelInfo {
	return []ModelInfo{
		{
			Provider:          ProviderNameGemini,
			Name:              "gemini-2.0-flash",
			Family:            "gemini-2.0",
			MaxTokens:         1000000,
			SupportsTools:     true,
			SupportsStreaming: true,
			SupportsSchemas:   true,
		},
		{
			Provider:          ProviderNameGemini,
			Name:              "gemini-2.0-flash-lite",
			Family:            "gemini-2.0",
			MaxTokens:         1000000,
			SupportsTools:     true,
			SupportsStreaming: true,
			SupportsSchemas:   true,
		},
		{
			Provider:          ProviderNameGemini,
			Name:              "gemini-1.5-pro",
			Family:            "gemini-1.5",
			MaxTokens:         2000000,
			SupportsTools:     true,
			SupportsStreaming: true,
			SupportsSchemas:   true,
		},
	}
}
