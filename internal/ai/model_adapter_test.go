package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	adkmodel "google.golang.org/adk/model"
	"google.golang.org/genai"

	"agentlab/pkg/errors"
)

func TestConvertContentsToolLoop(t *testing.T) {
	req := &adkmodel.LLMRequest{
		Config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText("You are helpful.", genai.RoleUser),
		},
		Contents: []*genai.Content{
			genai.NewContentFromText("What's the weather in Tokyo?", genai.RoleUser),
			{
				Role: genai.RoleModel,
				Parts: []*genai.Part{
					{FunctionCall: &genai.FunctionCall{
						ID:   "fc-1",
						Name: "get_weather",
						Args: map[string]any{"city": "Tokyo"},
					}},
				},
			},
			{
				Role: genai.RoleUser,
				Parts: []*genai.Part{
					{FunctionResponse: &genai.FunctionResponse{
						ID:       "fc-1",
						Name:     "get_weather",
						Response: map[string]any{"conditions": "sunny"},
					}},
				},
			},
			genai.NewContentFromText("It is sunny in Tokyo.", genai.RoleModel),
		},
	}

	messages := convertContents(req)
	require.Len(t, messages, 5)

	assert.NotNil(t, messages[0].OfSystem)
	assert.NotNil(t, messages[1].OfUser)

	require.NotNil(t, messages[2].OfAssistant)
	require.Len(t, messages[2].OfAssistant.ToolCalls, 1)
	call := messages[2].OfAssistant.ToolCalls[0].OfFunction
	require.NotNil(t, call)
	assert.Equal(t, "fc-1", call.ID)
	assert.Equal(t, "get_weather", call.Function.Name)
	assert.Contains(t, call.Function.Arguments, "Tokyo")

	require.NotNil(t, messages[3].OfTool)
	assert.Equal(t, "fc-1", messages[3].OfTool.ToolCallID)

	assert.NotNil(t, messages[4].OfAssistant)
}

func TestConvertToolDeclarations(t *testing.T) {
	req := &adkmodel.LLMRequest{
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: []*genai.FunctionDeclaration{
					{
						Name:        "get_weather",
						Description: "Get the current weather for a city",
						ParametersJsonSchema: map[string]any{
							"type": "object",
							"properties": map[string]any{
								"city": map[string]any{"type": "string"},
							},
						},
					},
					{Name: "get_tutor_topics"},
				}},
			},
		},
	}

	tools := convertToolDeclarations(req)
	require.Len(t, tools, 2)

	require.NotNil(t, tools[0].OfFunction)
	assert.Equal(t, "get_weather", tools[0].OfFunction.Function.Name)
	assert.Equal(t, "object", tools[0].OfFunction.Function.Parameters["type"])
	assert.NotNil(t, tools[0].OfFunction.Function.Parameters["properties"])

	// A declaration without a schema still sends a valid parameters object.
	require.NotNil(t, tools[1].OfFunction)
	assert.Equal(t, "object", tools[1].OfFunction.Function.Parameters["type"])
}

func TestConvertToolDeclarationsEmpty(t *testing.T) {
	assert.Nil(t, convertToolDeclarations(&adkmodel.LLMRequest{}))
}

func TestToolCallIDFallsBackToName(t *testing.T) {
	assert.Equal(t, "fc-9", toolCallID("fc-9", "get_weather"))
	assert.Equal(t, "get_weather", toolCallID("", "get_weather"))
}

func TestMarshalArgs(t *testing.T) {
	assert.Equal(t, "{}", marshalArgs(nil))
	assert.JSONEq(t, `{"city":"Paris"}`, marshalArgs(map[string]any{"city": "Paris"}))
}

func TestConvertFinishReason(t *testing.T) {
	assert.Equal(t, genai.FinishReasonMaxTokens, convertFinishReason("length"))
	assert.Equal(t, genai.FinishReasonSafety, convertFinishReason("content_filter"))
	assert.Equal(t, genai.FinishReasonStop, convertFinishReason("stop"))
	assert.Equal(t, genai.FinishReasonStop, convertFinishReason(""))
}

func TestModelAdapterName(t *testing.T) {
	client, err := NewOpenAIChatClient("test-key")
	require.NoError(t, err)

	adapter := NewModelAdapter(client, "gpt-4o-mini")
	assert.Equal(t, "gpt-4o-mini", adapter.Name())
}

func TestProviderNewLLM(t *testing.T) {
	ctx := context.Background()

	_, err := NewGeminiProvider("").NewLLM(ctx, "gemini-2.0-flash")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingAPIKey))

	llm, err := NewOpenAIProvider("test-key").NewLLM(ctx, "gpt-4o-mini")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", llm.Name())

	_, err = NewOpenAIProvider("test-key").NewLLM(ctx, "not-a-model")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrModelNotFound))
}
