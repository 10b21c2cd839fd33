package schemas

import (
	"encoding/json"
	"testing"
)

func TestCalendarEventSchemaStructure(t *testing.T) {
	if CalendarEventSchema.Type != "OBJECT" {
		t.Errorf("expected schema type OBJECT, got %s", CalendarEventSchema.Type)
	}

	for _, prop := range []string{"name", "date", "participants", "location", "description"} {
		if _, ok := CalendarEventSchema.Properties[prop]; !ok {
			t.Errorf("missing property %s", prop)
		}
	}

	participants := CalendarEventSchema.Properties["participants"]
	if participants.Type != "ARRAY" || participants.Items == nil {
		t.Error("participants should be an array of strings")
	}

	if len(CalendarEventSchema.Required) != 3 {
		t.Errorf("expected 3 required fields, got %d", len(CalendarEventSchema.Required))
	}
}

func TestCalendarEventRoundTrip(t *testing.T) {
	raw := `{"name":"Team Sync","date":"2025-03-14","participants":["Alice","Bob"],"location":"Room 4"}`

	var event CalendarEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if event.Name != "Team Sync" {
		t.Errorf("unexpected name %q", event.Name)
	}
	if event.Date != "2025-03-14" {
		t.Errorf("unexpected date %q", event.Date)
	}
	if len(event.Participants) != 2 {
		t.Errorf("expected 2 participants, got %d", len(event.Participants))
	}
	if event.Description != "" {
		t.Errorf("description should be empty, got %q", event.Description)
	}
}

func TestHomeworkCheckSchemaRequiredFields(t *testing.T) {
	if HomeworkCheckSchema.Properties["is_homework"].Type != "BOOLEAN" {
		t.Error("is_homework should be BOOLEAN")
	}

	required := map[string]bool{}
	for _, field := range HomeworkCheckSchema.Required {
		required[field] = true
	}

	if !required["is_homework"] || !required["reasoning"] {
		t.Errorf("unexpected required set: %v", HomeworkCheckSchema.Required)
	}
}

func TestSupportReplySchemaStructure(t *testing.T) {
	if SupportReplySchema.Properties["needs_escalation"].Type != "BOOLEAN" {
		t.Error("needs_escalation should be BOOLEAN")
	}

	var reply SupportReply
	raw := `{"response":"Your plan renews on the 1st.","needs_escalation":false}`
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if reply.NeedsEscalation {
		t.Error("expected needs_escalation false")
	}
}
