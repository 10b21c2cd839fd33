package callbacks

import (
	"strings"
	"testing"
)

func TestDetectHomeworkRequest(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"Can you do my homework for me? 2x + 5 = 11", true},
		{"Please solve this for me: the battle of Hastings essay", true},
		{"Complete my assignment on the French Revolution", true},
		{"Can you explain how to isolate x in 2x + 5 = 11?", false},
		{"What caused the French Revolution?", false},
		{"", false},
	}

	for _, tc := range cases {
		got, reason := DetectHomeworkRequest(tc.text)
		if got != tc.want {
			t.Errorf("DetectHomeworkRequest(%q) = %v, want %v", tc.text, got, tc.want)
		}
		if got && reason == "" {
			t.Errorf("tripped detection should carry a reason: %q", tc.text)
		}
	}
}

func TestRedactSensitiveEmail(t *testing.T) {
	out, found := RedactSensitive("Contact us at support@example.com for help")
	if !found {
		t.Fatal("email should be detected")
	}
	if strings.Contains(out, "support@example.com") {
		t.Errorf("email not redacted: %q", out)
	}
	if !strings.Contains(out, "[REDACTED]") {
		t.Errorf("expected redaction marker in %q", out)
	}
}

func TestRedactSensitivePhone(t *testing.T) {
	out, found := RedactSensitive("Call +1 (555) 123-4567 any time")
	if !found {
		t.Fatal("phone number should be detected")
	}
	if strings.Contains(out, "555") {
		t.Errorf("phone not redacted: %q", out)
	}
}

func TestRedactSensitiveCard(t *testing.T) {
	out, found := RedactSensitive("Your card 4111 1111 1111 1111 was charged")
	if !found {
		t.Fatal("card number should be detected")
	}
	if strings.Contains(out, "4111") {
		t.Errorf("card not redacted: %q", out)
	}
}

func TestRedactSensitiveCleanText(t *testing.T) {
	in := "Your plan renews on the first of the month."
	out, found := RedactSensitive(in)
	if found {
		t.Error("clean text should not trip detection")
	}
	if out != in {
		t.Errorf("clean text should pass unchanged, got %q", out)
	}
}
