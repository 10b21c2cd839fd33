package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/runner"
	adksession "google.golang.org/adk/session"
	"google.golang.org/genai"

	"agentlab/internal/config"
	"agentlab/pkg/errors"
	"agentlab/pkg/logger"
)

// ExecutionInput contains input parameters for an agent run.
type ExecutionInput struct {
	UserID    string
	SessionID string // Reuse a session id to continue a conversation
	Message   string
	Context   map[string]interface{} // Extra context appended to the message
	Timeout   time.Duration          // 0 = use default from config
}

// ExecutionOutput contains the result of an agent run.
type ExecutionOutput struct {
	AgentName   string
	RawResponse string
	Result      map[string]interface{} // Structured output when the response carries JSON

	InputTokens   int
	OutputTokens  int
	TokensUsed    int
	Duration      time.Duration
	ToolCallCount int
	TurnCount     int

	Trace     []Message
	SessionID string
}

// StreamHandler receives run events as they happen. Any field may be nil.
type StreamHandler struct {
	OnDelta      func(text string)                               // Partial text chunk
	OnToolCall   func(name string, args map[string]interface{})  // Model requested a tool
	OnToolResult func(name string, result map[string]interface{}) // Tool finished
	OnAgent      func(author string)                             // A different agent took over
}

// Runner executes a single agent tree with session handling, timing, and
// token accounting.
type Runner struct {
	agent          agent.Agent
	runner         *runner.Runner
	runtimeConfig  config.AgentsConfig
	sessionService adksession.Service
	defaultTimeout time.Duration

	log *logger.Logger
}

// NewRunner creates a runner for the given agent.
func NewRunner(ag agent.Agent, runtimeConfig config.AgentsConfig, sessionService adksession.Service) (*Runner, error) {
	if sessionService == nil {
		sessionService = adksession.InMemoryService()
	}

	runnerInstance, err := runner.New(runner.Config{
		AppName:        fmt.Sprintf("agentlab_%s", ag.Name()),
		Agent:          ag,
		SessionService: sessionService,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create ADK runner")
	}

	return &Runner{
		agent:          ag,
		runner:         runnerInstance,
		runtimeConfig:  runtimeConfig,
		sessionService: sessionService,
		defaultTimeout: runtimeConfig.ExecutionTimeout,
		log:            logger.Get().With("component", "agent_runner", "agent", ag.Name()),
	}, nil
}

// Execute runs the agent to completion and returns the final response.
func (r *Runner) Execute(ctx context.Context, input ExecutionInput) (*ExecutionOutput, error) {
	return r.run(ctx, input, agent.RunConfig{}, StreamHandler{})
}

// ExecuteStream runs the agent in streaming mode, forwarding events to
// the handler as they arrive. The returned output is the same final
// result Execute would produce.
func (r *Runner) ExecuteStream(ctx context.Context, input ExecutionInput, handler StreamHandler) (*ExecutionOutput, error) {
	runConfig := agent.RunConfig{StreamingMode: agent.StreamingModeSSE}
	return r.run(ctx, input, runConfig, handler)
}

func (r *Runner) run(ctx context.Context, input ExecutionInput, runConfig agent.RunConfig, handler StreamHandler) (*ExecutionOutput, error) {
	startTime := time.Now()

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	userID := input.UserID
	if userID == "" {
		userID = "anonymous"
	}

	timeout := input.Timeout
	if timeout == 0 {
		timeout = r.defaultTimeout
	}

	execCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	message := buildMessage(input)
	if message == "" {
		return nil, errors.Wrap(errors.ErrInvalidInput, "message is required")
	}

	r.log.Infof("Starting run: session=%s user=%s", sessionID, userID)

	trace := NewConversationTrace()
	trace.AddUserMessage(message)

	userContent := genai.NewContentFromText(message, genai.RoleUser)

	toolCallCount := 0
	tracker := newToolCallTracker()
	totalInputTokens := 0
	totalOutputTokens := 0
	lastAuthor := ""
	var finalResponse *adksession.Event

	for event, err := range r.runner.Run(execCtx, userID, sessionID, userContent, runConfig) {
		if err != nil {
			if execCtx.Err() == context.DeadlineExceeded {
				return nil, errors.Wrap(errors.ErrRunTimeout, r.agent.Name())
			}
			return nil, errors.Wrap(err, "agent run failed")
		}

		if event == nil {
			continue
		}

		if event.LLMResponse.Partial {
			if handler.OnDelta != nil && event.LLMResponse.Content != nil {
				for _, part := range event.LLMResponse.Content.Parts {
					if part.Text != "" {
						handler.OnDelta(part.Text)
					}
				}
			}
			continue
		}

		if event.Author != "" && event.Author != lastAuthor {
			lastAuthor = event.Author
			if handler.OnAgent != nil {
				handler.OnAgent(event.Author)
			}
		}

		if event.UsageMetadata != nil {
			totalInputTokens += int(event.UsageMetadata.PromptTokenCount)
			totalOutputTokens += int(event.UsageMetadata.CandidatesTokenCount)
		}

		if event.LLMResponse.Content != nil {
			assistantContent := ""
			var toolCalls []ToolCall

			for _, part := range event.LLMResponse.Content.Parts {
				if part.Text != "" {
					assistantContent += part.Text
				}

				if part.FunctionCall != nil {
					toolCallCount++
					call := ToolCall{
						ID:        tracker.TrackCall(part.FunctionCall),
						Name:      part.FunctionCall.Name,
						Arguments: part.FunctionCall.Args,
					}
					toolCalls = append(toolCalls, call)
					if handler.OnToolCall != nil {
						handler.OnToolCall(call.Name, call.Arguments)
					}
					r.log.Debugf("Tool call: %s(%v)", call.Name, call.Arguments)
				}

				if part.FunctionResponse != nil {
					if err := trace.AddToolResult(
						tracker.MatchResponse(part.FunctionResponse),
						part.FunctionResponse.Name,
						part.FunctionResponse.Response,
					); err != nil {
						r.log.Warnf("Failed to record tool result: %v", err)
					}
					if handler.OnToolResult != nil {
						handler.OnToolResult(part.FunctionResponse.Name, part.FunctionResponse.Response)
					}
				}
			}

			if assistantContent != "" || len(toolCalls) > 0 {
				trace.AddAssistantMessage(event.Author, assistantContent, toolCalls)
			}
		}

		if event.TurnComplete && event.IsFinalResponse() {
			finalResponse = event
			break
		}
	}

	output := &ExecutionOutput{
		AgentName:     r.agent.Name(),
		InputTokens:   totalInputTokens,
		OutputTokens:  totalOutputTokens,
		TokensUsed:    totalInputTokens + totalOutputTokens,
		ToolCallCount: toolCallCount,
		TurnCount:     trace.TurnCount(),
		Trace:         trace.History(),
		SessionID:     sessionID,
		Duration:      time.Since(startTime),
	}

	if finalResponse == nil || finalResponse.LLMResponse.Content == nil {
		return nil, errors.Wrap(errors.ErrNoFinalResponse, r.agent.Name())
	}

	rawResponse := ""
	for _, part := range finalResponse.LLMResponse.Content.Parts {
		if part.Text != "" {
			rawResponse += part.Text
		}
	}
	output.RawResponse = rawResponse

	if structured, err := ExtractStructuredOutput(rawResponse); err == nil {
		output.Result = structured
	}

	r.log.Infof("Run complete: session=%s duration=%v tokens=%d tools=%d",
		sessionID, output.Duration, output.TokensUsed, output.ToolCallCount)

	return output, nil
}

// toolCallTracker pairs function responses with the call that produced
// them, so parallel calls to the same tool keep their own ids. Calls
// and responses that carry model-assigned ids match on those; anything
// else falls back to a per-tool FIFO of generated ids.
type toolCallTracker struct {
	seq     int
	pending map[string][]string
}

func newToolCallTracker() *toolCallTracker {
	return &toolCallTracker{pending: make(map[string][]string)}
}

// TrackCall registers a function call and returns the id to record it
// under.
func (t *toolCallTracker) TrackCall(fc *genai.FunctionCall) string {
	t.seq++
	id := fc.ID
	if id == "" {
		id = fmt.Sprintf("call_%d", t.seq)
	}
	t.pending[fc.Name] = append(t.pending[fc.Name], id)
	return id
}

// MatchResponse returns the id of the call this response answers.
func (t *toolCallTracker) MatchResponse(fr *genai.FunctionResponse) string {
	if fr.ID != "" {
		t.dequeue(fr.Name, fr.ID)
		return fr.ID
	}
	if queue := t.pending[fr.Name]; len(queue) > 0 {
		id := queue[0]
		t.pending[fr.Name] = queue[1:]
		return id
	}
	// Response without a recorded call, keep it attributable anyway.
	t.seq++
	return fmt.Sprintf("call_%d", t.seq)
}

func (t *toolCallTracker) dequeue(name, id string) {
	queue := t.pending[name]
	for i, queued := range queue {
		if queued == id {
			t.pending[name] = append(queue[:i], queue[i+1:]...)
			return
		}
	}
}

func buildMessage(input ExecutionInput) string {
	message := input.Message

	if len(input.Context) > 0 {
		if data, err := json.Marshal(input.Context); err == nil {
			message += "\n\nAdditional context:\n" + string(data)
		}
	}

	return message
}

// ExtractStructuredOutput finds the first complete JSON object in a
// model response and unmarshals it. Responses without JSON return an
// error so callers can fall back to the raw text.
func ExtractStructuredOutput(response string) (map[string]interface{}, error) {
	start := -1
	braceCount := 0

	for i, ch := range response {
		if ch == '{' {
			if start == -1 {
				start = i
			}
			braceCount++
		} else if ch == '}' {
			braceCount--
			if braceCount == 0 && start != -1 {
				jsonStr := response[start : i+1]
				var result map[string]interface{}
				if err := json.Unmarshal([]byte(jsonStr), &result); err == nil {
					return result, nil
				}
				// Malformed candidate, keep scanning.
				start = -1
			}
		}
	}

	return nil, errors.Wrap(errors.ErrNotFound, "no structured output in response")
}
