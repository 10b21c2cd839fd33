package ai

import (
	"context"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"agentlab/pkg/errors"
)

// ChatClient is a thin chat-completions wrapper shared by the OpenAI and
// Gemini OpenAI-compatible endpoints.
type ChatClient struct {
	client   openai.Client
	provider ProviderName
}

// NewOpenAIChatClient builds a chat client against api.openai.com.
func NewOpenAIChatClient(apiKey string) (*ChatClient, error) {
	if apiKey == "" {
		return nil, errors.Wrap(errors.ErrMissingAPIKey, "openai")
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &ChatClient{client: client, provider: ProviderNameOpenAI}, nil
}

// NewGeminiChatClient builds a chat client against the Gemini
// OpenAI-compatible endpoint using a Gemini API key.
func NewGeminiChatClient(apiKey string) (*ChatClient, error) {
	if apiKey == "" {
		return nil, errors.Wrap(errors.ErrMissingAPIKey, "gemini")
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(GeminiOpenAIBaseURL),
	)

	return &ChatClient{client: client, provider: ProviderNameGemini}, nil
}

// Provider returns the provider this client talks to.
func (c *ChatClient) Provider() ProviderName { return c.provider }

// ChatResult carries the completion text and token usage of a single call.
type ChatResult struct {
	Text             string
	PromptTokens     int64
	CompletionTokens int64
}

// Complete runs a single system+user chat completion and returns the text.
func (c *ChatClient) Complete(ctx context.Context, model, instructions, input string) (*ChatResult, error) {
	messages := []openai.ChatCompletionMessageParamUnion{}
	if instructions != "" {
		messages = append(messages, openai.SystemMessage(instructions))
	}
	messages = append(messages, openai.UserMessage(input))

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: messages,
		Model:    model,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "chat completion via %s", c.provider)
	}

	if len(completion.Choices) == 0 {
		return nil, errors.Wrapf(errors.ErrNoFinalResponse, "model %s", model)
	}

	return &ChatResult{
		Text:             completion.Choices[0].Message.Content,
		PromptTokens:     completion.Usage.PromptTokens,
		CompletionTokens: completion.Usage.CompletionTokens,
	}, nil
}

// Stream runs a streaming chat completion, invoking onDelta for each text
// fragment, and returns the accumulated text.
func (c *ChatClient) Stream(ctx context.Context, model, instructions, input string, onDelta func(string)) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{}
	if instructions != "" {
		messages = append(messages, openai.SystemMessage(instructions))
	}
	messages = append(messages, openai.UserMessage(input))

	stream := c.client.Chat.Completions.NewStreaming(ctx, openai.ChatCompletionNewParams{
		Messages: messages,
		Model:    model,
	})

	var full string
	for stream.Next() {
		chunk := stream.Current()
		for _, choice := range chunk.Choices {
			if choice.Delta.Content == "" {
				continue
			}
			full += choice.Delta.Content
			if onDelta != nil {
				onDelta(choice.Delta.Content)
			}
		}
	}
	if err := stream.Err(); err != nil {
		return "", errors.Wrapf(err, "streaming chat completion via %s", c.provider)
	}

	return full, nil
}
