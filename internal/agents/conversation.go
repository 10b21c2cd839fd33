package agents

import (
	"encoding/json"
	"time"

	"agentlab/pkg/errors"
)

// Message represents a single entry in the conversation trace.
type Message struct {
	Role       string                 `json:"role"` // "user", "assistant", "tool"
	Content    string                 `json:"content"`
	ToolCalls  []ToolCall             `json:"tool_calls,omitempty"`
	ToolCallID string                 `json:"tool_call_id,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// ToolCall represents a function call requested by the model.
type ToolCall struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

// ConversationTrace accumulates the messages exchanged during a run.
// It is an audit trail, not the model's context: the ADK session service
// owns the actual conversation state.
type ConversationTrace struct {
	history   []Message
	turnCount int
}

// NewConversationTrace creates an empty trace.
func NewConversationTrace() *ConversationTrace {
	return &ConversationTrace{history: make([]Message, 0, 16)}
}

// AddUserMessage records a user message and starts a new turn.
func (t *ConversationTrace) AddUserMessage(content string) {
	t.history = append(t.history, Message{
		Role:      "user",
		Content:   content,
		Timestamp: time.Now(),
	})
	t.turnCount++
}

// AddAssistantMessage records a model message with any tool calls it made.
func (t *ConversationTrace) AddAssistantMessage(author, content string, toolCalls []ToolCall) {
	t.history = append(t.history, Message{
		Role:      "assistant",
		Content:   content,
		ToolCalls: toolCalls,
		Timestamp: time.Now(),
		Metadata:  map[string]interface{}{"author": author},
	})
}

// AddToolResult records the response to a prior tool call.
func (t *ConversationTrace) AddToolResult(toolCallID, toolName string, result interface{}) error {
	content := ""
	switch v := result.(type) {
	case string:
		content = v
	default:
		data, err := json.Marshal(result)
		if err != nil {
			return errors.Wrapf(err, "marshal result for tool %s", toolName)
		}
		content = string(data)
	}

	t.history = append(t.history, Message{
		Role:       "tool",
		Content:    content,
		ToolCallID: toolCallID,
		Timestamp:  time.Now(),
		Metadata:   map[string]interface{}{"tool_name": toolName},
	})

	return nil
}

// History returns a copy of the recorded messages.
func (t *ConversationTrace) History() []Message {
	out := make([]Message, len(t.history))
	copy(out, t.history)
	return out
}

// LastMessage returns the most recent message, or nil when empty.
func (t *ConversationTrace) LastMessage() *Message {
	if len(t.history) == 0 {
		return nil
	}
	return &t.history[len(t.history)-1]
}

// TurnCount reports how many user turns the trace contains.
func (t *ConversationTrace) TurnCount() int {
	return t.turnCount
}

// Clear drops all recorded messages.
func (t *ConversationTrace) Clear() {
	t.history = t.history[:0]
	t.turnCount = 0
}
