// Package schemas defines the structured output contracts enforced on
// agents that must answer with machine-readable JSON.
package schemas

import (
	"google.golang.org/genai"
)

// CalendarEvent is the parsed form of a calendar extraction response.
type CalendarEvent struct {
	Name         string   `json:"name"`
	Date         string   `json:"date"`
	Participants []string `json:"participants"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// CalendarEventSchema constrains calendar extraction output.
var CalendarEventSchema = &genai.Schema{
	Type: "OBJECT",
	Properties: map[string]*genai.Schema{
		"name": {
			Type:        "STRING",
			Description: "Short name of the event",
		},
		"date": {
			Type:        "STRING",
			Description: "Event date in YYYY-MM-DD format",
		},
		"participants": {
			Type:        "ARRAY",
			Description: "People attending the event",
			Items:       &genai.Schema{Type: "STRING"},
		},
		"location": {
			Type:        "STRING",
			Description: "Where the event takes place, if mentioned",
		},
		"description": {
			Type:        "STRING",
			Description: "One sentence summary of the event, if available",
		},
	},
	Required: []string{"name", "date", "participants"},
}

// HomeworkCheck is the verdict of the homework classification agent.
type HomeworkCheck struct {
	IsHomework bool   `json:"is_homework"`
	Reasoning  string `json:"reasoning"`
}

// HomeworkCheckSchema constrains the homework classifier output.
var HomeworkCheckSchema = &genai.Schema{
	Type: "OBJECT",
	Properties: map[string]*genai.Schema{
		"is_homework": {
			Type:        "BOOLEAN",
			Description: "True when the user wants a complete assignment solution",
		},
		"reasoning": {
			Type:        "STRING",
			Description: "Brief explanation of the classification",
		},
	},
	Required: []string{"is_homework", "reasoning"},
}

// SupportReply is a structured customer support answer.
type SupportReply struct {
	Response         string `json:"response"`
	NeedsEscalation  bool   `json:"needs_escalation"`
	EscalationReason string `json:"escalation_reason,omitempty"`
}

// SupportReplySchema constrains structured support responses.
var SupportReplySchema = &genai.Schema{
	Type: "OBJECT",
	Properties: map[string]*genai.Schema{
		"response": {
			Type:        "STRING",
			Description: "The answer to show the user",
		},
		"needs_escalation": {
			Type:        "BOOLEAN",
			Description: "True when a human agent should take over",
		},
		"escalation_reason": {
			Type:        "STRING",
			Description: "Why escalation is needed, when it is",
		},
	},
	Required: []string{"response", "needs_escalation"},
}
