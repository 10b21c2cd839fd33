package callbacks

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"agentlab/pkg/logger"
)

// TransferAnnouncementBeforeAgentCallback logs a custom message when the
// conversation is transferred to this agent. The run itself proceeds
// unchanged.
func TransferAnnouncementBeforeAgentCallback(message string) agent.BeforeAgentCallback {
	return func(ctx agent.CallbackContext) (*genai.Content, error) {
		logger.Get().With(
			"agent", ctx.AgentName(),
			"session", ctx.SessionID(),
		).Infof("Transfer: %s", message)
		return nil, nil
	}
}

// StripToolHistoryBeforeModelCallback removes prior tool calls and tool
// results from the request so a specialist sees only the conversation
// text, not the triage agent's tool traffic.
func StripToolHistoryBeforeModelCallback() llmagent.BeforeModelCallback {
	return func(ctx agent.CallbackContext, req *model.LLMRequest) (*model.LLMResponse, error) {
		if req == nil {
			return nil, nil
		}
		req.Contents = stripToolParts(req.Contents)
		return nil, nil
	}
}

// stripToolParts drops function call and function response parts, and any
// content left empty after the drop.
func stripToolParts(contents []*genai.Content) []*genai.Content {
	filtered := make([]*genai.Content, 0, len(contents))
	for _, content := range contents {
		if content == nil {
			continue
		}
		parts := make([]*genai.Part, 0, len(content.Parts))
		for _, part := range content.Parts {
			if part == nil || part.FunctionCall != nil || part.FunctionResponse != nil {
				continue
			}
			parts = append(parts, part)
		}
		if len(parts) == 0 {
			continue
		}
		filtered = append(filtered, &genai.Content{Role: content.Role, Parts: parts})
	}
	return filtered
}
