package ai

import (
	"context"
	"encoding/json"
	"iter"
	"sort"
	"strings"

	"github.com/openai/openai-go/v3"
	adkmodel "google.golang.org/adk/model"
	"google.golang.org/genai"

	"agentlab/pkg/errors"
	"agentlab/pkg/logger"
)

// ModelAdapter exposes a ChatClient as an ADK model.LLM so agents can
// generate content through the OpenAI chat-completions API. Gemini agents
// use the native ADK model instead.
type ModelAdapter struct {
	client    *ChatClient
	modelName string
	log       *logger.Logger
}

// NewModelAdapter wraps a chat client for the given model.
func NewModelAdapter(client *ChatClient, modelName string) *ModelAdapter {
	return &ModelAdapter{
		client:    client,
		modelName: modelName,
		log:       logger.Get().With("component", "model_adapter", "model", modelName),
	}
}

// Name returns the model name.
func (m *ModelAdapter) Name() string {
	return m.modelName
}

// GenerateContent implements the ADK model.LLM interface.
func (m *ModelAdapter) GenerateContent(ctx context.Context, req *adkmodel.LLMRequest, stream bool) iter.Seq2[*adkmodel.LLMResponse, error] {
	params := m.buildParams(req)

	if stream {
		return m.generateStream(ctx, params)
	}

	return func(yield func(*adkmodel.LLMResponse, error) bool) {
		resp, err := m.generate(ctx, params)
		yield(resp, err)
	}
}

func (m *ModelAdapter) buildParams(req *adkmodel.LLMRequest) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model:    m.modelName,
		Messages: convertContents(req),
		Tools:    convertToolDeclarations(req),
	}

	if req.Config != nil {
		if req.Config.Temperature != nil {
			params.Temperature = openai.Float(float64(*req.Config.Temperature))
		}
		if req.Config.MaxOutputTokens > 0 {
			params.MaxCompletionTokens = openai.Int(int64(req.Config.MaxOutputTokens))
		}
	}

	return params
}

func (m *ModelAdapter) generate(ctx context.Context, params openai.ChatCompletionNewParams) (*adkmodel.LLMResponse, error) {
	m.log.Debugw("Calling model", "messages", len(params.Messages), "tools", len(params.Tools))

	completion, err := m.client.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, errors.Wrapf(err, "chat completion via %s", m.client.provider)
	}
	if len(completion.Choices) == 0 {
		return nil, errors.Wrapf(errors.ErrNoFinalResponse, "model %s", m.modelName)
	}

	choice := completion.Choices[0]

	content := &genai.Content{Role: genai.RoleModel}
	if choice.Message.Content != "" {
		content.Parts = append(content.Parts, &genai.Part{Text: choice.Message.Content})
	}
	for _, tc := range choice.Message.ToolCalls {
		var args map[string]any
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			m.log.Warnf("Unparseable tool call arguments for %s: %v", tc.Function.Name, err)
			continue
		}
		content.Parts = append(content.Parts, &genai.Part{
			FunctionCall: &genai.FunctionCall{ID: tc.ID, Name: tc.Function.Name, Args: args},
		})
	}

	return &adkmodel.LLMResponse{
		Content:      content,
		FinishReason: convertFinishReason(string(choice.FinishReason)),
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     int32(completion.Usage.PromptTokens),
			CandidatesTokenCount: int32(completion.Usage.CompletionTokens),
			TotalTokenCount:      int32(completion.Usage.TotalTokens),
		},
		TurnComplete: true,
	}, nil
}

func (m *ModelAdapter) generateStream(ctx context.Context, params openai.ChatCompletionNewParams) iter.Seq2[*adkmodel.LLMResponse, error] {
	type aggCall struct {
		id, name string
		args     strings.Builder
	}

	return func(yield func(*adkmodel.LLMResponse, error) bool) {
		stream := m.client.client.Chat.Completions.NewStreaming(ctx, params)

		var full strings.Builder
		calls := map[int64]*aggCall{}
		finishReason := ""

		for stream.Next() {
			chunk := stream.Current()
			for _, choice := range chunk.Choices {
				if choice.Delta.Content != "" {
					full.WriteString(choice.Delta.Content)
					partial := &adkmodel.LLMResponse{
						Partial: true,
						Content: genai.NewContentFromText(choice.Delta.Content, genai.RoleModel),
					}
					if !yield(partial, nil) {
						return
					}
				}
				for _, tc := range choice.Delta.ToolCalls {
					ac, ok := calls[tc.Index]
					if !ok {
						ac = &aggCall{}
						calls[tc.Index] = ac
					}
					if tc.ID != "" {
						ac.id = tc.ID
					}
					if tc.Function.Name != "" {
						ac.name = tc.Function.Name
					}
					ac.args.WriteString(tc.Function.Arguments)
				}
				if choice.FinishReason != "" {
					finishReason = string(choice.FinishReason)
				}
			}
		}
		if err := stream.Err(); err != nil {
			yield(nil, errors.Wrapf(err, "streaming chat completion via %s", m.client.provider))
			return
		}

		content := &genai.Content{Role: genai.RoleModel}
		if full.Len() > 0 {
			content.Parts = append(content.Parts, &genai.Part{Text: full.String()})
		}
		indexes := make([]int64, 0, len(calls))
		for idx := range calls {
			indexes = append(indexes, idx)
		}
		sort.Slice(indexes, func(i, j int) bool { return indexes[i] < indexes[j] })
		for _, idx := range indexes {
			ac := calls[idx]
			var args map[string]any
			if err := json.Unmarshal([]byte(ac.args.String()), &args); err != nil {
				m.log.Warnf("Unparseable tool call arguments for %s: %v", ac.name, err)
				continue
			}
			content.Parts = append(content.Parts, &genai.Part{
				FunctionCall: &genai.FunctionCall{ID: ac.id, Name: ac.name, Args: args},
			})
		}

		yield(&adkmodel.LLMResponse{
			Content:      content,
			FinishReason: convertFinishReason(finishReason),
			TurnComplete: true,
		}, nil)
	}
}

// convertContents maps the ADK request history onto chat-completions
// messages. Function calls become assistant tool calls and function
// responses become tool messages, so multi-turn tool loops replay
// correctly.
func convertContents(req *adkmodel.LLMRequest) []openai.ChatCompletionMessageParamUnion {
	var messages []openai.ChatCompletionMessageParamUnion

	if req.Config != nil && req.Config.SystemInstruction != nil {
		if text := contentText(req.Config.SystemInstruction); text != "" {
			messages = append(messages, openai.SystemMessage(text))
		}
	}

	for _, content := range req.Contents {
		if content == nil {
			continue
		}

		text := contentText(content)
		var toolCalls []openai.ChatCompletionMessageToolCallUnionParam
		var toolResults []*genai.FunctionResponse

		for _, part := range content.Parts {
			if part == nil {
				continue
			}
			if part.FunctionCall != nil {
				toolCalls = append(toolCalls, openai.ChatCompletionMessageToolCallUnionParam{
					OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
						ID: toolCallID(part.FunctionCall.ID, part.FunctionCall.Name),
						Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{
							Name:      part.FunctionCall.Name,
							Arguments: marshalArgs(part.FunctionCall.Args),
						},
					},
				})
			}
			if part.FunctionResponse != nil {
				toolResults = append(toolResults, part.FunctionResponse)
			}
		}

		switch {
		case len(toolCalls) > 0:
			assistant := openai.ChatCompletionAssistantMessageParam{ToolCalls: toolCalls}
			if text != "" {
				assistant.Content.OfString = openai.String(text)
			}
			messages = append(messages, openai.ChatCompletionMessageParamUnion{OfAssistant: &assistant})
		case text != "":
			switch content.Role {
			case genai.RoleModel:
				messages = append(messages, openai.AssistantMessage(text))
			case "system":
				messages = append(messages, openai.SystemMessage(text))
			default:
				messages = append(messages, openai.UserMessage(text))
			}
		}

		for _, fr := range toolResults {
			payload := "{}"
			if data, err := json.Marshal(fr.Response); err == nil {
				payload = string(data)
			}
			messages = append(messages, openai.ToolMessage(payload, toolCallID(fr.ID, fr.Name)))
		}
	}

	return messages
}

// convertToolDeclarations translates the genai function declarations the
// ADK packed into the request config.
func convertToolDeclarations(req *adkmodel.LLMRequest) []openai.ChatCompletionToolUnionParam {
	if req.Config == nil {
		return nil
	}

	var out []openai.ChatCompletionToolUnionParam
	for _, t := range req.Config.Tools {
		if t == nil {
			continue
		}
		for _, decl := range t.FunctionDeclarations {
			if decl == nil {
				continue
			}
			out = append(out, openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
				Name:        decl.Name,
				Description: openai.String(decl.Description),
				Parameters:  declarationParameters(decl),
			}))
		}
	}

	return out
}

func declarationParameters(decl *genai.FunctionDeclaration) openai.FunctionParameters {
	for _, schema := range []any{decl.ParametersJsonSchema, decl.Parameters} {
		if schema == nil {
			continue
		}
		data, err := json.Marshal(schema)
		if err != nil {
			continue
		}
		var params openai.FunctionParameters
		if err := json.Unmarshal(data, &params); err == nil && len(params) > 0 {
			return params
		}
	}

	return openai.FunctionParameters{
		"type":       "object",
		"properties": map[string]any{},
	}
}

func contentText(content *genai.Content) string {
	var b strings.Builder
	for _, part := range content.Parts {
		if part == nil || part.Text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(part.Text)
	}
	return b.String()
}

func toolCallID(id, name string) string {
	if id != "" {
		return id
	}
	return name
}

func marshalArgs(args map[string]any) string {
	if len(args) == 0 {
		return "{}"
	}
	data, err := json.Marshal(args)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func convertFinishReason(reason string) genai.FinishReason {
	switch reason {
	case "length":
		return genai.FinishReasonMaxTokens
	case "content_filter":
		return genai.FinishReasonSafety
	default:
		return genai.FinishReasonStop
	}
}

// Ensure ModelAdapter implements model.LLM.
var _ adkmodel.LLM = (*ModelAdapter)(nil)
