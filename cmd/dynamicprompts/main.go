// Builds agent instructions at run time from the current user's tier,
// locale, and the time of day.
package main

import (
	"context"
	"fmt"
	"time"

	"agentlab/internal/agents"
	"agentlab/internal/bootstrap"
)

func timeOfDay(t time.Time) string {
	switch hour := t.Hour(); {
	case hour < 6:
		return "night"
	case hour < 12:
		return "morning"
	case hour < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

func main() {
	ctx := context.Background()

	app, err := bootstrap.New(ctx)
	if err != nil {
		panic("failed to bootstrap: " + err.Error())
	}
	defer app.Close(ctx)

	if err := app.RequireProviderKey(); err != nil {
		app.Log.Fatalf("Missing API key: %v", err)
	}

	users := []struct {
		id       string
		tier     string
		language string
	}{
		{"user123", "Pro", ""},
		{"user456", "Free", "French"},
	}

	for _, user := range users {
		cfg := agents.DefaultAgentConfigs[agents.AgentDynamic].Clone()
		cfg.AIProvider, cfg.Model = app.Provider(), app.Model()
		cfg.Name = fmt.Sprintf("DynamicAssistant_%s", user.id)
		cfg.PromptData = map[string]interface{}{
			"Tier":      user.tier,
			"TimeOfDay": timeOfDay(time.Now()),
			"Language":  user.language,
		}

		// Show what the rendered instruction looks like for this user.
		instruction, err := app.Templates.Render(cfg.SystemPromptTemplate, cfg.PromptData)
		if err != nil {
			app.Log.Fatalf("Render failed: %v", err)
		}
		fmt.Printf("=== instructions for %s ===\n%s\n\n", user.id, instruction)

		assistant, err := app.Factory.CreateAgent(cfg)
		if err != nil {
			app.Log.Fatalf("Failed to create agent: %v", err)
		}

		runner, err := app.NewRunner(assistant)
		if err != nil {
			app.Log.Fatalf("Failed to create runner: %v", err)
		}

		output, err := runner.Execute(ctx, agents.ExecutionInput{
			UserID:  user.id,
			Message: "Any suggestions for staying focused this week?",
		})
		if err != nil {
			app.Log.Fatalf("Run failed: %v", err)
		}

		fmt.Printf("%s\n\n", output.RawResponse)
	}
}
