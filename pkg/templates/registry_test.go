package templates

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"agents/greeter.tmpl": &fstest.MapFile{Data: []byte("Hello, {{.Name}}!\n")},
		"agents/plain.tmpl":   &fstest.MapFile{Data: []byte("No data needed.")},
		"agents/notes.txt":    &fstest.MapFile{Data: []byte("ignored")},
	}

	reg, err := NewRegistryFromFS(fsys)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"agents/greeter", "agents/plain"}, reg.List())

	out, err := reg.Render("agents/greeter", map[string]string{"Name": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "Hello, Ada!", out)

	_, err = reg.GetTemplate("agents/missing")
	assert.Error(t, err)
}

func TestRegistryFromFSParseError(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.tmpl": &fstest.MapFile{Data: []byte("{{.Unclosed")},
	}

	_, err := NewRegistryFromFS(fsys)
	require.Error(t, err)
}

func TestEmbeddedTemplates(t *testing.T) {
	reg := Get()

	for _, id := range []string{
		"agents/assistant",
		"agents/weather_haiku",
		"agents/triage",
		"agents/booking",
		"agents/refund",
		"agents/dynamic_assistant",
		"agents/calendar_extractor",
		"agents/account",
		"agents/translator",
		"agents/tutor",
		"agents/homework_check",
		"agents/support",
		"agents/orchestrator",
		"agents/triage_tutors",
		"agents/translation_picker",
	} {
		_, err := reg.GetTemplate(id)
		assert.NoError(t, err, "template %s should be embedded", id)
	}
}

func TestDynamicAssistantRender(t *testing.T) {
	out, err := Get().Render("agents/dynamic_assistant", map[string]any{
		"Tier":      "Pro",
		"TimeOfDay": "morning",
		"Language":  "French",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Pro tier user")
	assert.Contains(t, out, "morning")
	assert.Contains(t, out, "French")
	assert.Contains(t, out, "priority service")
	assert.NotContains(t, out, "upgrading")
}

func TestTriageRender(t *testing.T) {
	out, err := Get().Render("agents/triage", map[string]any{
		"BookingAgent": "booking_agent",
		"RefundAgent":  "refund_agent",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "booking_agent")
	assert.Contains(t, out, "refund_agent")
}
