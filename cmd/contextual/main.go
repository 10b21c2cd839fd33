// Runs the same account assistant for two different users. The active
// user profile drives tool results, so the answers are personalized
// without changing the agent.
package main

import (
	"context"
	"fmt"

	"agentlab/internal/agents"
	"agentlab/internal/bootstrap"
)

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

	cfg := agents.DefaultAgentConfigs[agents.AgentAccount].Clone()
	cfg.AIProvider, cfg.Model = app.Provider(), app.Model()

	assistant, err := app.Factory.CreateAgent(cfg)
	if err != nil {
		app.Log.Fatalf("Failed to create agent: %v", err)
	}

	runner, err := app.NewRunner(assistant)
	if err != nil {
		app.Log.Fatalf("Failed to create runner: %v", err)
	}

	question := "Greet me, then tell me what I've purchased and what my plan includes."

	for _, userID := range []string{"user123", "user456"} {
		if err := app.Users.SetActive(userID); err != nil {
			app.Log.Fatalf("Unknown user %s: %v", userID, err)
		}
		profile := app.Users.Active()

		output, err := runner.Execute(ctx, agents.ExecutionInput{
			UserID:  userID,
			Message: question,
			Context: map[string]interface{}{"user_id": userID, "tier": profile.Tier()},
		})
		if err != nil {
			app.Log.Fatalf("Run failed for %s: %v", userID, err)
		}

		fmt.Printf("=== %s (%s tier) ===\n%s\n", profile.UID, profile.Tier(), output.RawResponse)
		fmt.Printf("(tool calls: %d)\n\n", output.ToolCallCount)
	}
}
