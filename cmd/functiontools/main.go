// Gives one agent several plain function tools and shows which ones the
// model chose to call for each request.
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

	cfg := agents.AgentConfig{
		Type:                 agents.AgentAssistant,
		Name:                 "ToolAssistant",
		Description:          "Assistant with weather and text utilities",
		Tools:                []string{"get_weather", "normalize_date", "count_words", "search_documents"},
		SystemPromptTemplate: "agents/assistant",
		AIProvider:           app.Provider(),
		Model:                app.Model(),
		Temperature:          -1,
	}

	assistant, err := app.Factory.CreateAgent(cfg)
	if err != nil {
		app.Log.Fatalf("Failed to create agent: %v", err)
	}

	runner, err := app.NewRunner(assistant)
	if err != nil {
		app.Log.Fatalf("Failed to create runner: %v", err)
	}

	requests := []string{
		"Is it raining in London right now?",
		"Rewrite 03/14/2025 in ISO format.",
		"How many words are in this sentence: the quick brown fox jumps over the lazy dog?",
		"Search the docs: what's the refund policy?",
	}

	for _, request := range requests {
		fmt.Printf(">>> %s\n", request)

		output, err := runner.Execute(ctx, agents.ExecutionInput{Message: request})
		if err != nil {
			app.Log.Errorf("Run failed: %v", err)
			continue
		}

		for _, msg := range output.Trace {
			for _, call := range msg.ToolCalls {
				fmt.Printf("  tool: %s(%v)\n", call.Name, call.Arguments)
			}
		}
		fmt.Printf("%s\n\n", output.RawResponse)
	}
}
