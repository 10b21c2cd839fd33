package agents

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/runner"
	adksession "google.golang.org/adk/session"
	adktool "google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
	"google.golang.org/genai"

	"agentlab/pkg/errors"
)

// NewAgentTool wraps an agent as a callable tool. Unlike a transfer, the
// wrapped agent answers a single request and control returns to the
// caller, which sees the answer as the tool result.
func NewAgentTool(name, description string, target agent.Agent) (adktool.Tool, error) {
	sessionService := adksession.InMemoryService()

	toolRunner, err := runner.New(runner.Config{
		AppName:        fmt.Sprintf("agentlab_tool_%s", name),
		Agent:          target,
		SessionService: sessionService,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "create runner for agent tool %s", name)
	}

	fn := func(ctx adktool.Context, args map[string]interface{}) (map[string]interface{}, error) {
		input, _ := args["input"].(string)
		if strings.TrimSpace(input) == "" {
			return nil, errors.Wrap(errors.ErrInvalidInput, "input is required")
		}

		content := genai.NewContentFromText(input, genai.RoleUser)
		sessionID := uuid.New().String()

		var sb strings.Builder
		for event, err := range toolRunner.Run(ctx, "tool", sessionID, content, agent.RunConfig{}) {
			if err != nil {
				return nil, errors.Wrapf(err, "agent tool %s", name)
			}
			if event == nil || event.LLMResponse.Partial || event.LLMResponse.Content == nil {
				continue
			}
			if !event.IsFinalResponse() {
				continue
			}
			for _, part := range event.LLMResponse.Content.Parts {
				if part.Text != "" {
					sb.WriteString(part.Text)
				}
			}
		}

		if sb.Len() == 0 {
			return nil, errors.Wrapf(errors.ErrNoFinalResponse, "agent tool %s", name)
		}

		return map[string]interface{}{"output": sb.String()}, nil
	}

	return functiontool.New(functiontool.Config{Name: name, Description: description}, fn)
}
