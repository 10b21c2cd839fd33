// An orchestrator that calls translator agents as tools instead of
// handing the conversation over to them.
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

	orchestrator, err := app.Factory.CreateTranslationOrchestrator(app.Provider(), app.Model())
	if err != nil {
		app.Log.Fatalf("Failed to create orchestrator: %v", err)
	}

	runner, err := app.NewRunner(orchestrator)
	if err != nil {
		app.Log.Fatalf("Failed to create runner: %v", err)
	}

	request := "Say 'Hello, how are you?' in Spanish and French."
	if len(os.Args) > 1 {
		request = strings.Join(os.Args[1:], " ")
	}

	output, err := runner.Execute(ctx, agents.ExecutionInput{Message: request})
	if err != nil {
		app.Log.Fatalf("Run failed: %v", err)
	}

	for _, msg := range output.Trace {
		for _, call := range msg.ToolCalls {
			fmt.Printf("-- %s(%v)\n", call.Name, call.Arguments)
		}
	}
	fmt.Println(output.RawResponse)

	// The workflow variant translates into all three languages
	// concurrently, then a picker reviews the candidates.
	fmt.Println("\n=== parallel workflow ===")

	workflow, err := app.Factory.CreateTranslationWorkflow(app.Provider(), app.Model())
	if err != nil {
		app.Log.Fatalf("Failed to create workflow: %v", err)
	}

	workflowRunner, err := app.NewRunner(workflow)
	if err != nil {
		app.Log.Fatalf("Failed to create runner: %v", err)
	}

	workflowOutput, err := workflowRunner.Execute(ctx, agents.ExecutionInput{
		Message: "Good morning, friend!",
	})
	if err != nil {
		app.Log.Fatalf("Workflow run failed: %v", err)
	}

	fmt.Println(workflowOutput.RawResponse)
}
