// Demonstrates both guardrail directions: an input check that refuses
// homework requests before the model runs, and an output scan that
// redacts sensitive data from support answers.
package main

import (
	"context"
	"fmt"

	"agentlab/internal/agents"
	"agentlab/internal/agents/callbacks"
	"agentlab/internal/bootstrap"
	"agentlab/pkg/errors"
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

	runTutorDemo(ctx, app)
	runSupportDemo(ctx, app)
}

func runTutorDemo(ctx context.Context, app *bootstrap.Container) {
	fmt.Println("=== input guardrail: homework check ===")

	tutors, err := app.Factory.CreateTutorTriage(app.Provider(), app.Model())
	if err != nil {
		app.Log.Fatalf("Failed to create tutor triage: %v", err)
	}

	runner, err := app.NewRunner(tutors)
	if err != nil {
		app.Log.Fatalf("Failed to create runner: %v", err)
	}

	questions := []string{
		"Can you explain how to isolate x in 2x + 5 = 11?",
		"Do my homework for me: solve 2x + 5 = 11 and write it up.",
	}

	for _, question := range questions {
		fmt.Printf(">>> %s\n", question)

		output, err := runner.Execute(ctx, agents.ExecutionInput{Message: question})
		switch {
		case errors.Is(err, errors.ErrInputGuardrailTripped):
			fmt.Printf("refused: %v\n\n", err)
		case err != nil:
			app.Log.Errorf("Run failed: %v", err)
		default:
			fmt.Printf("%s\n\n", output.RawResponse)
		}
	}
}

func runSupportDemo(ctx context.Context, app *bootstrap.Container) {
	fmt.Println("=== output guardrail: sensitive data ===")

	support, err := app.Factory.CreateGuardedSupport(app.Provider(), app.Model(), callbacks.SensitiveRedact)
	if err != nil {
		app.Log.Fatalf("Failed to create support agent: %v", err)
	}

	runner, err := app.NewRunner(support)
	if err != nil {
		app.Log.Fatalf("Failed to create runner: %v", err)
	}

	output, err := runner.Execute(ctx, agents.ExecutionInput{
		UserID:  "user123",
		Message: "What's the phone number I should call about my bill?",
	})
	if err != nil {
		app.Log.Fatalf("Run failed: %v", err)
	}

	fmt.Println(output.RawResponse)
}
