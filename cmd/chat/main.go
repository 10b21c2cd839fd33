// Interactive REPL against the triage tree. The session id is reused
// across turns, so the conversation keeps its history. Type "exit" to
// quit.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"agentlab/internal/agents"
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

	triage, err := app.Factory.CreateTravelTriage(app.Provider(), app.Model())
	if err != nil {
		app.Log.Fatalf("Failed to create triage tree: %v", err)
	}

	runner, err := app.NewRunner(triage)
	if err != nil {
		app.Log.Fatalf("Failed to create runner: %v", err)
	}

	sessionID := uuid.New().String()
	streaming := app.Config.Agents.StreamingEnabled

	fmt.Println("Travel assistant ready. Type 'exit' to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			break
		}

		input := agents.ExecutionInput{
			UserID:    "repl",
			SessionID: sessionID,
			Message:   line,
		}

		var output *agents.ExecutionOutput
		if streaming {
			output, err = runner.ExecuteStream(ctx, input, agents.StreamHandler{
				OnDelta: func(text string) { fmt.Print(text) },
			})
			fmt.Println()
		} else {
			output, err = runner.Execute(ctx, input)
			if err == nil {
				fmt.Println(output.RawResponse)
			}
		}

		if err != nil {
			if errors.Is(err, errors.ErrRunTimeout) {
				fmt.Println("(the agent took too long, try again)")
				continue
			}
			app.Log.Errorf("Run failed: %v", err)
		}
	}

	if err := scanner.Err(); err != nil {
		app.Log.Errorf("Input error: %v", err)
	}

	fmt.Println("Bye.")
}
