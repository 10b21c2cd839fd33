package callbacks

import (
	"testing"

	"google.golang.org/genai"
)

func TestStripToolParts(t *testing.T) {
	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: "book me a flight"}}},
		{Role: "model", Parts: []*genai.Part{
			{FunctionCall: &genai.FunctionCall{Name: "get_available_flights"}},
		}},
		{Role: "user", Parts: []*genai.Part{
			{FunctionResponse: &genai.FunctionResponse{Name: "get_available_flights"}},
		}},
		{Role: "model", Parts: []*genai.Part{
			{Text: "Here are your options."},
			{FunctionCall: &genai.FunctionCall{Name: "get_weather"}},
		}},
	}

	filtered := stripToolParts(contents)

	if len(filtered) != 2 {
		t.Fatalf("expected 2 contents after filtering, got %d", len(filtered))
	}
	if filtered[0].Parts[0].Text != "book me a flight" {
		t.Errorf("user text should survive, got %q", filtered[0].Parts[0].Text)
	}
	if len(filtered[1].Parts) != 1 || filtered[1].Parts[0].Text != "Here are your options." {
		t.Errorf("mixed content should keep only text parts: %+v", filtered[1].Parts)
	}
}

func TestStripToolPartsEmpty(t *testing.T) {
	if got := stripToolParts(nil); len(got) != 0 {
		t.Errorf("nil input should yield empty output, got %d", len(got))
	}

	withNil := []*genai.Content{nil, {Role: "user", Parts: []*genai.Part{nil}}}
	if got := stripToolParts(withNil); len(got) != 0 {
		t.Errorf("nil entries should be dropped, got %d", len(got))
	}
}
