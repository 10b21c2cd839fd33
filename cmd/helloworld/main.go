// The smallest possible agent: one assistant, one prompt, one answer.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

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

	prompt := "Write a haiku about recursion in programming."
	if len(os.Args) > 1 {
		prompt = strings.Join(os.Args[1:], " ")
	}

	cfg := agents.DefaultAgentConfigs[agents.AgentAssistant].Clone()
	cfg.AIProvider, cfg.Model = app.Provider(), app.Model()

	assistant, err := app.Factory.CreateAgent(cfg)
	if err != nil {
		app.Log.Fatalf("Failed to create agent: %v", err)
	}

	runner, err := app.NewRunner(assistant)
	if err != nil {
		app.Log.Fatalf("Failed to create runner: %v", err)
	}

	output, err := runner.Execute(ctx, agents.ExecutionInput{Message: prompt})
	if err != nil {
		app.Log.Fatalf("Run failed: %v", err)
	}

	fmt.Println(output.RawResponse)
}
