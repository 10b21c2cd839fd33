// Routes travel requests through a triage agent that transfers the
// conversation to a booking or refund specialist.
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

	triage, err := app.Factory.CreateTravelTriage(app.Provider(), app.Model())
	if err != nil {
		app.Log.Fatalf("Failed to create triage tree: %v", err)
	}

	runner, err := app.NewRunner(triage)
	if err != nil {
		app.Log.Fatalf("Failed to create runner: %v", err)
	}

	requests := []string{
		"I need to book a flight from New York to London next Friday.",
		"I want a refund for my booking ABC123, the trip was cancelled.",
		"What's the best season to visit Lisbon?",
	}

	for _, request := range requests {
		fmt.Printf(">>> %s\n", request)

		output, err := runner.Execute(ctx, agents.ExecutionInput{Message: request})
		if err != nil {
			app.Log.Errorf("Run failed: %v", err)
			continue
		}

		fmt.Printf("%s\n", output.RawResponse)

		// Show which agents participated in the turn.
		seen := map[string]bool{}
		for _, msg := range output.Trace {
			if msg.Role != "assistant" {
				continue
			}
			if author, ok := msg.Metadata["author"].(string); ok && !seen[author] {
				seen[author] = true
				fmt.Printf("  [answered by %s]\n", author)
			}
		}
		fmt.Println()
	}
}
