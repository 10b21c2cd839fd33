// Demonstrates provider and model configuration: list every known model,
// then run the same prompt against an explicitly selected provider/model.
package main

import (
	"context"
	"flag"
	"fmt"

	"agentlab/internal/agents"
	"agentlab/internal/bootstrap"
)

func main() {
	provider := flag.String("provider", "", "AI provider to use (defaults to DEFAULT_AI_PROVIDER)")
	model := flag.String("model", "", "model name (defaults to DEFAULT_AI_MODEL)")
	temperature := flag.Float64("temperature", 0.3, "sampling temperature")
	maxTokens := flag.Int("max-tokens", 1024, "max output tokens")
	flag.Parse()

	ctx := context.Background()

	app, err := bootstrap.New(ctx)
	if err != nil {
		panic("failed to bootstrap: " + err.Error())
	}
	defer app.Close(ctx)

	if *provider == "" {
		*provider = app.Provider()
	}
	if *model == "" {
		*model = app.Model()
	}

	catalog, err := app.AIRegistry.ListModels(ctx)
	if err != nil {
		app.Log.Fatalf("Failed to list models: %v", err)
	}

	fmt.Println("Available models:")
	for providerName, models := range catalog {
		for _, m := range models {
			fmt.Printf("  %-8s %-24s context=%-8d tools=%v streaming=%v\n",
				providerName, m.Name, m.MaxTokens, m.SupportsTools, m.SupportsStreaming)
		}
	}
	fmt.Println()

	if _, err := app.Config.AI.RequireKey(*provider); err != nil {
		app.Log.Fatalf("Missing API key: %v", err)
	}

	cfg := agents.DefaultAgentConfigs[agents.AgentWeatherHaiku].Clone()
	cfg.AIProvider = *provider
	cfg.Model = *model
	cfg.Temperature = *temperature
	cfg.MaxTokens = *maxTokens

	haiku, err := app.Factory.CreateAgent(cfg)
	if err != nil {
		app.Log.Fatalf("Failed to create agent: %v", err)
	}

	runner, err := app.NewRunner(haiku)
	if err != nil {
		app.Log.Fatalf("Failed to create runner: %v", err)
	}

	output, err := runner.Execute(ctx, agents.ExecutionInput{
		Message: "How's the weather in Paris?",
	})
	if err != nil {
		app.Log.Fatalf("Run failed: %v", err)
	}

	fmt.Printf("[%s/%s]\n%s\n\n", *provider, *model, output.RawResponse)
	fmt.Printf("tokens: prompt=%d completion=%d duration=%v\n",
		output.InputTokens, output.OutputTokens, output.Duration)
}
