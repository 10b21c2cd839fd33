package templates

import (
	"strings"
	"testing"
)

func TestWithHandoffInstructions(t *testing.T) {
	out := WithHandoffInstructions("You are a triage agent.")
	if !strings.HasPrefix(out, HandoffPromptPrefix) {
		t.Fatal("expected recommended prefix before instructions")
	}
	if !strings.HasSuffix(out, "You are a triage agent.") {
		t.Fatalf("instructions were not preserved: %q", out)
	}
}

func TestWithHandoffInstructionsEmpty(t *testing.T) {
	if got := WithHandoffInstructions("   "); got != HandoffPromptPrefix {
		t.Fatalf("empty instructions should yield only the prefix, got %q", got)
	}
}
