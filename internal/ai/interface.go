package ai

import (
	"context"

	adkmodel "google.golang.org/adk/model"
)

// Provider defines the contract each AI provider implementation must satisfy.
type Provider interface {
	Name() string

	// GetModel returns metadata for a specific model.
	GetModel(ctx context.Context, model string) (ModelInfo, error)

	// ListModels returns the list of available models for the provider.
	ListModels(ctx context.Context) ([]ModelInfo, error)

	// NewLLM constructs the ADK model implementation that agents on this
	// provider generate content through.
	NewLLM(ctx context.Context, model string) (adkmodel.LLM, error)

	// SupportsStreaming indicates whether the provider can stream responses.
	SupportsStreaming() bool

	// SupportsTools indicates whether the provider supports tool/function calling.
	SupportsTools() bool
}

// ModelInfo describes the capabilities of a model.
type ModelInfo struct {
	Provider          ProviderName // Owning provider
	Name              string       // Provider-specific model identifier
	Family            string       // Family/category name (e.g., "gemini-2.0")
	MaxTokens         int          // Maximum context length
	SupportsTools     bool         // Whether tool calling is supported
	SupportsStreaming bool         // Whether streaming responses are available
	SupportsSchemas   bool         // Whether structured output schemas are supported
}
