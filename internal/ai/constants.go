package ai

// ProviderName represents an AI provider identifier
type ProviderName string

// Provider name constants
const (
	ProviderNameGemini ProviderName = "gemini"
	ProviderNameOpenAI ProviderName = "openai"
)

// String returns the string representation of the provider name
func (p ProviderName) String() string {
	return string(p)
}

// IsValid checks if the provider name is supported
func (p ProviderName) IsValid() bool {
	switch p {
	case ProviderNameGemini, ProviderNameOpenAI:
		return true
	default:
		return false
	}
}

// AllProviderNames returns all supported provider names
func AllProviderNames() []ProviderName {
	return []ProviderName{
		ProviderNameGemini,
		ProviderNameOpenAI,
	}
}

// GeminiOpenAIBaseURL is the OpenAI-compatible endpoint for the Gemini API.
// Reference: https://ai.google.dev/gemini-api/docs/openai
const GeminiOpenAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
