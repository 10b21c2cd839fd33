package callbacks

import (
	"regexp"
	"strings"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"agentlab/pkg/errors"
	"agentlab/pkg/logger"
)

// InputDetector inspects a user message and reports whether the guardrail
// should trip, with a human-readable reason.
type InputDetector func(text string) (tripped bool, reason string)

// InputGuardrail aborts the run before the model is called when the
// detector trips on the latest user message.
func InputGuardrail(name string, detect InputDetector) llmagent.BeforeModelCallback {
	return func(ctx agent.CallbackContext, req *model.LLMRequest) (*model.LLMResponse, error) {
		text := lastUserText(req)
		if text == "" {
			return nil, nil
		}

		tripped, reason := detect(text)
		if !tripped {
			return nil, nil
		}

		logger.Get().With("guardrail", name, "agent", ctx.AgentName()).
			Warnf("Input guardrail tripped: %s", reason)

		return nil, errors.Wrapf(errors.ErrInputGuardrailTripped, "%s: %s", name, reason)
	}
}

var homeworkPhrases = []string{
	"do my homework",
	"solve my homework",
	"answer my homework",
	"complete my assignment",
	"do my assignment",
	"write my essay for",
	"solve this for me",
}

// DetectHomeworkRequest applies a phrase-based check for users asking the
// agent to complete an assignment outright. Questions about concepts pass.
func DetectHomeworkRequest(text string) (bool, string) {
	lowered := strings.ToLower(text)
	for _, phrase := range homeworkPhrases {
		if strings.Contains(lowered, phrase) {
			return true, "request asks for a complete assignment solution"
		}
	}
	return false, ""
}

// HomeworkGuardrail blocks requests that ask for finished homework.
func HomeworkGuardrail() llmagent.BeforeModelCallback {
	return InputGuardrail("homework_check", DetectHomeworkRequest)
}

var (
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`)
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	cardPattern  = regexp.MustCompile(`\b(?:\d[ -]?){13,16}\b`)
)

// RedactSensitive replaces phone numbers, email addresses, and card
// numbers in text. The second return reports whether anything was found.
func RedactSensitive(text string) (string, bool) {
	found := false
	for _, p := range []*regexp.Regexp{cardPattern, phonePattern, emailPattern} {
		if p.MatchString(text) {
			found = true
			text = p.ReplaceAllString(text, "[REDACTED]")
		}
	}
	return text, found
}

// SensitiveOutputMode selects what happens when a model response contains
// sensitive data.
type SensitiveOutputMode int

const (
	// SensitiveRedact rewrites the response with sensitive spans masked.
	SensitiveRedact SensitiveOutputMode = iota
	// SensitiveBlock aborts the run instead of returning the response.
	SensitiveBlock
)

// SensitiveDataGuardrail scans model output for phone numbers, emails,
// and card numbers and either redacts them or aborts the run.
func SensitiveDataGuardrail(mode SensitiveOutputMode) llmagent.AfterModelCallback {
	return func(ctx agent.CallbackContext, resp *model.LLMResponse, respErr error) (*model.LLMResponse, error) {
		if respErr != nil || resp == nil || resp.Content == nil {
			return resp, respErr
		}

		log := logger.Get().With("guardrail", "sensitive_data", "agent", ctx.AgentName())

		dirty := false
		parts := make([]*genai.Part, len(resp.Content.Parts))
		for i, part := range resp.Content.Parts {
			parts[i] = part
			if part.Text == "" {
				continue
			}
			redacted, found := RedactSensitive(part.Text)
			if !found {
				continue
			}
			dirty = true
			clean := *part
			clean.Text = redacted
			parts[i] = &clean
		}

		if !dirty {
			return resp, nil
		}

		if mode == SensitiveBlock {
			log.Warn("Output guardrail tripped, aborting run")
			return nil, errors.Wrap(errors.ErrOutputGuardrailTripped, "sensitive_data")
		}

		log.Warn("Sensitive data redacted from model output")
		cleaned := *resp
		content := *resp.Content
		content.Parts = parts
		cleaned.Content = &content
		return &cleaned, nil
	}
}

func lastUserText(req *model.LLMRequest) string {
	for i := len(req.Contents) - 1; i >= 0; i-- {
		content := req.Contents[i]
		if content == nil || content.Role != "user" {
			continue
		}
		var sb strings.Builder
		for _, part := range content.Parts {
			if part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
		return sb.String()
	}
	return ""
}
