package agents

import "testing"

func TestConversationTraceOrdering(t *testing.T) {
	trace := NewConversationTrace()
	trace.AddUserMessage("What's the weather in Tokyo?")
	trace.AddAssistantMessage("WeatherHaiku", "", []ToolCall{{ID: "call_1", Name: "get_weather", Arguments: map[string]interface{}{"city": "Tokyo"}}})

	if err := trace.AddToolResult("call_1", "get_weather", map[string]interface{}{"conditions": "sunny"}); err != nil {
		t.Fatalf("AddToolResult: %v", err)
	}

	trace.AddAssistantMessage("WeatherHaiku", "Sunlight on the streets", nil)

	history := trace.History()
	if len(history) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(history))
	}

	wantRoles := []string{"user", "assistant", "tool", "assistant"}
	for i, role := range wantRoles {
		if history[i].Role != role {
			t.Errorf("message %d: expected role %s, got %s", i, role, history[i].Role)
		}
	}

	if trace.TurnCount() != 1 {
		t.Errorf("expected 1 turn, got %d", trace.TurnCount())
	}
}

func TestConversationTraceToolResultString(t *testing.T) {
	trace := NewConversationTrace()
	if err := trace.AddToolResult("call_1", "normalize_date", "2025-03-14"); err != nil {
		t.Fatalf("AddToolResult: %v", err)
	}

	last := trace.LastMessage()
	if last == nil || last.Content != "2025-03-14" {
		t.Fatalf("string result should pass through, got %+v", last)
	}
	if last.Metadata["tool_name"] != "normalize_date" {
		t.Errorf("tool name not recorded: %v", last.Metadata)
	}
}

func TestConversationTraceClear(t *testing.T) {
	trace := NewConversationTrace()
	trace.AddUserMessage("hello")
	trace.Clear()

	if len(trace.History()) != 0 || trace.TurnCount() != 0 {
		t.Error("clear should reset history and turn count")
	}
	if trace.LastMessage() != nil {
		t.Error("last message should be nil after clear")
	}
}
