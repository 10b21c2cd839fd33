// Extracts a calendar event from free text into a schema-constrained
// JSON response, then parses it into a typed struct.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"agentlab/internal/agents"
	"agentlab/internal/agents/schemas"
	"agentlab/internal/bootstrap"
)

const defaultText = "Hi team, let's have our quarterly planning meeting " +
	"on March 14th, 2025. Alice, Bob, and Carol should attend. " +
	"We'll meet in the main conference room to review the roadmap."

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

	text := defaultText
	if len(os.Args) > 1 {
		text = strings.Join(os.Args[1:], " ")
	}

	cfg := agents.DefaultAgentConfigs[agents.AgentCalendarExtractor].Clone()
	cfg.AIProvider, cfg.Model = app.Provider(), app.Model()

	extractor, err := app.Factory.CreateAgent(cfg)
	if err != nil {
		app.Log.Fatalf("Failed to create agent: %v", err)
	}

	runner, err := app.NewRunner(extractor)
	if err != nil {
		app.Log.Fatalf("Failed to create runner: %v", err)
	}

	output, err := runner.Execute(ctx, agents.ExecutionInput{Message: text})
	if err != nil {
		app.Log.Fatalf("Run failed: %v", err)
	}

	raw, err := json.Marshal(output.Result)
	if err != nil {
		app.Log.Fatalf("Response is not structured: %v", err)
	}

	var event schemas.CalendarEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		app.Log.Fatalf("Failed to parse calendar event: %v", err)
	}

	printEvent(event)

	// Variant without a response schema: the agent calls normalize_date
	// for the date field and replies with plain JSON we extract ourselves.
	fmt.Println("\n=== with date tool ===")

	toolCfg := cfg.Clone()
	toolCfg.Name = "CalendarExtractorWithTools"
	toolCfg.Tools = []string{"normalize_date"}
	toolCfg.OutputSchema = nil
	toolCfg.OutputKey = ""
	toolCfg.PromptData = map[string]interface{}{"UseDateTool": true}

	toolExtractor, err := app.Factory.CreateAgent(toolCfg)
	if err != nil {
		app.Log.Fatalf("Failed to create agent: %v", err)
	}

	toolRunner, err := app.NewRunner(toolExtractor)
	if err != nil {
		app.Log.Fatalf("Failed to create runner: %v", err)
	}

	toolOutput, err := toolRunner.Execute(ctx, agents.ExecutionInput{Message: text})
	if err != nil {
		app.Log.Fatalf("Run failed: %v", err)
	}

	parsed, err := agents.ExtractStructuredOutput(toolOutput.RawResponse)
	if err != nil {
		app.Log.Fatalf("No JSON object in response: %v", err)
	}

	raw, err = json.Marshal(parsed)
	if err != nil {
		app.Log.Fatalf("Failed to re-encode event: %v", err)
	}

	event = schemas.CalendarEvent{}
	if err := json.Unmarshal(raw, &event); err != nil {
		app.Log.Fatalf("Failed to parse calendar event: %v", err)
	}

	printEvent(event)
}

func printEvent(event schemas.CalendarEvent) {
	fmt.Printf("Event:        %s\n", event.Name)
	fmt.Printf("Date:         %s\n", event.Date)
	fmt.Printf("Participants: %s\n", strings.Join(event.Participants, ", "))
	if event.Location != "" {
		fmt.Printf("Location:     %s\n", event.Location)
	}
	if event.Description != "" {
		fmt.Printf("Description:  %s\n", event.Description)
	}
}
