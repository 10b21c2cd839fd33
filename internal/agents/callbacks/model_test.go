package callbacks

import (
	"strings"
	"testing"

	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

func requestWithText(role, text string) *model.LLMRequest {
	return &model.LLMRequest{
		Contents: []*genai.Content{
			{Role: role, Parts: []*genai.Part{{Text: text}}},
		},
	}
}

func TestCacheKeyDeterministic(t *testing.T) {
	a, err := CacheKey(requestWithText("user", "hello"))
	if err != nil {
		t.Fatalf("CacheKey: %v", err)
	}
	b, err := CacheKey(requestWithText("user", "hello"))
	if err != nil {
		t.Fatalf("CacheKey: %v", err)
	}

	if a != b {
		t.Errorf("identical requests should hash identically: %s vs %s", a, b)
	}
	if !strings.HasPrefix(a, "llm_cache:") {
		t.Errorf("unexpected key prefix: %s", a)
	}
}

func TestCacheKeyVariesByContent(t *testing.T) {
	a, _ := CacheKey(requestWithText("user", "hello"))
	b, _ := CacheKey(requestWithText("user", "goodbye"))
	if a == b {
		t.Error("different messages should produce different keys")
	}

	c, _ := CacheKey(requestWithText("model", "hello"))
	if a == c {
		t.Error("role should contribute to the key")
	}
}

func TestLastUserText(t *testing.T) {
	req := &model.LLMRequest{
		Contents: []*genai.Content{
			{Role: "user", Parts: []*genai.Part{{Text: "first"}}},
			{Role: "model", Parts: []*genai.Part{{Text: "reply"}}},
			{Role: "user", Parts: []*genai.Part{{Text: "second "}, {Text: "message"}}},
		},
	}

	if got := lastUserText(req); got != "second message" {
		t.Errorf("lastUserText = %q", got)
	}

	empty := &model.LLMRequest{}
	if got := lastUserText(empty); got != "" {
		t.Errorf("empty request should yield empty text, got %q", got)
	}
}
