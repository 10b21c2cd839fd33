package agents

import (
	"testing"

	"google.golang.org/genai"

	"agentlab/pkg/errors"
)

func TestToolCallTrackerParallelCalls(t *testing.T) {
	tracker := newToolCallTracker()

	// Two calls to the same tool arrive before either response.
	tokyoID := tracker.TrackCall(&genai.FunctionCall{Name: "get_weather", Args: map[string]any{"city": "Tokyo"}})
	parisID := tracker.TrackCall(&genai.FunctionCall{Name: "get_weather", Args: map[string]any{"city": "Paris"}})

	if tokyoID == parisID {
		t.Fatalf("parallel calls must get distinct ids, both got %q", tokyoID)
	}

	// Responses come back in call order and must pair with their own call.
	if got := tracker.MatchResponse(&genai.FunctionResponse{Name: "get_weather"}); got != tokyoID {
		t.Errorf("first response matched %q, want %q", got, tokyoID)
	}
	if got := tracker.MatchResponse(&genai.FunctionResponse{Name: "get_weather"}); got != parisID {
		t.Errorf("second response matched %q, want %q", got, parisID)
	}
}

func TestToolCallTrackerModelAssignedIDs(t *testing.T) {
	tracker := newToolCallTracker()

	if got := tracker.TrackCall(&genai.FunctionCall{ID: "fc-1", Name: "count_words"}); got != "fc-1" {
		t.Errorf("model-assigned call id should win, got %q", got)
	}
	if got := tracker.MatchResponse(&genai.FunctionResponse{ID: "fc-1", Name: "count_words"}); got != "fc-1" {
		t.Errorf("model-assigned response id should win, got %q", got)
	}

	// A later unlabeled response must not reuse the consumed id.
	if got := tracker.MatchResponse(&genai.FunctionResponse{Name: "count_words"}); got == "fc-1" {
		t.Error("consumed id was handed out again")
	}
}

func TestToolCallTrackerInterleavedTools(t *testing.T) {
	tracker := newToolCallTracker()

	weatherID := tracker.TrackCall(&genai.FunctionCall{Name: "get_weather"})
	flightsID := tracker.TrackCall(&genai.FunctionCall{Name: "get_available_flights"})

	// Responses arrive in the opposite order.
	if got := tracker.MatchResponse(&genai.FunctionResponse{Name: "get_available_flights"}); got != flightsID {
		t.Errorf("flights response matched %q, want %q", got, flightsID)
	}
	if got := tracker.MatchResponse(&genai.FunctionResponse{Name: "get_weather"}); got != weatherID {
		t.Errorf("weather response matched %q, want %q", got, weatherID)
	}
}

func TestExtractStructuredOutput(t *testing.T) {
	response := `Here is the event I found:

{"name":"Team Sync","date":"2025-03-14","participants":["Alice","Bob"]}

Let me know if anything is off.`

	result, err := ExtractStructuredOutput(response)
	if err != nil {
		t.Fatalf("ExtractStructuredOutput: %v", err)
	}

	if result["name"] != "Team Sync" {
		t.Errorf("unexpected name: %v", result["name"])
	}
	if result["date"] != "2025-03-14" {
		t.Errorf("unexpected date: %v", result["date"])
	}

	participants, ok := result["participants"].([]interface{})
	if !ok || len(participants) != 2 {
		t.Errorf("unexpected participants: %v", result["participants"])
	}
}

func TestExtractStructuredOutputNested(t *testing.T) {
	response := `{"outer":{"inner":true},"count":2}`

	result, err := ExtractStructuredOutput(response)
	if err != nil {
		t.Fatalf("ExtractStructuredOutput: %v", err)
	}

	outer, ok := result["outer"].(map[string]interface{})
	if !ok || outer["inner"] != true {
		t.Errorf("nested object lost: %v", result["outer"])
	}
}

func TestExtractStructuredOutputPlainText(t *testing.T) {
	_, err := ExtractStructuredOutput("The weather in Tokyo is sunny.")
	if err == nil {
		t.Fatal("plain text should not yield structured output")
	}
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestExtractStructuredOutputSkipsMalformed(t *testing.T) {
	response := `{not json} but later {"ok":true}`

	result, err := ExtractStructuredOutput(response)
	if err != nil {
		t.Fatalf("ExtractStructuredOutput: %v", err)
	}
	if result["ok"] != true {
		t.Errorf("expected later JSON object to be used: %v", result)
	}
}

func TestBuildMessageWithContext(t *testing.T) {
	msg := buildMessage(ExecutionInput{
		Message: "What did I buy?",
		Context: map[string]interface{}{"user_id": "user123"},
	})

	if msg == "What did I buy?" {
		t.Error("context should be appended to the message")
	}

	plain := buildMessage(ExecutionInput{Message: "hello"})
	if plain != "hello" {
		t.Errorf("message without context should pass through, got %q", plain)
	}
}
