// Groups several agent runs under one session id so their logs and
// traces can be read as a single piece of work.
package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"agentlab/internal/agents"
	"agentlab/internal/bootstrap"
	"agentlab/pkg/logger"
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

	// One session id threads the whole workflow together. Every log line
	// and every trace below carries it.
	sessionID := uuid.New().String()
	log := logger.Get().With("trace", "joke_workflow", "session", sessionID)

	log.Info("Workflow started")

	first, err := runner.Execute(ctx, agents.ExecutionInput{
		SessionID: sessionID,
		Message:   "Tell me a short joke about databases.",
	})
	if err != nil {
		log.Fatalf("First run failed: %v", err)
	}
	log.Infof("First run done: tokens=%d duration=%v", first.TokensUsed, first.Duration)

	second, err := runner.Execute(ctx, agents.ExecutionInput{
		SessionID: sessionID,
		Message:   "Now explain why that joke is funny.",
	})
	if err != nil {
		log.Fatalf("Second run failed: %v", err)
	}
	log.Infof("Second run done: tokens=%d duration=%v", second.TokensUsed, second.Duration)

	fmt.Printf("joke:\n%s\n\nexplanation:\n%s\n\n", first.RawResponse, second.RawResponse)

	fmt.Printf("session %s totals: tokens=%d turns=%d\n",
		sessionID,
		first.TokensUsed+second.TokensUsed,
		first.TurnCount+second.TurnCount,
	)

	fmt.Println("\ntrace of second run:")
	for _, msg := range second.Trace {
		fmt.Printf("  %-9s %s\n", msg.Role, msg.Content)
	}
}
