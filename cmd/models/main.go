// Asks both providers the same question through the OpenAI-compatible
// chat client, then runs the same prompt through a native Gemini agent,
// comparing answers and token usage side by side.
package main

import (
	"context"
	"fmt"

	"agentlab/internal/agents"
	"agentlab/internal/ai"
	"agentlab/internal/bootstrap"
)

func main() {
	ctx := context.Background()

	app, err := bootstrap.New(ctx)
	if err != nil {
		panic("failed to bootstrap: " + err.Error())
	}
	defer app.Close(ctx)

	prompt := "In one sentence, why do rivers meander?"
	instructions := "You are a concise science explainer."

	type target struct {
		provider ai.ProviderName
		model    string
		build    func(string) (*ai.ChatClient, error)
		key      string
	}

	targets := []target{
		{ai.ProviderNameGemini, "gemini-2.0-flash", ai.NewGeminiChatClient, app.Config.AI.GeminiKey},
		{ai.ProviderNameOpenAI, "gpt-4o-mini", ai.NewOpenAIChatClient, app.Config.AI.OpenAIKey},
	}

	for _, t := range targets {
		if t.key == "" {
			app.Log.Warnf("Skipping %s: no API key configured", t.provider)
			continue
		}

		client, err := t.build(t.key)
		if err != nil {
			app.Log.Errorf("Failed to create %s client: %v", t.provider, err)
			continue
		}

		result, err := client.Complete(ctx, t.model, instructions, prompt)
		if err != nil {
			app.Log.Errorf("%s request failed: %v", t.provider, err)
			continue
		}

		fmt.Printf("[%s/%s]\n%s\n", t.provider, t.model, result.Text)
		fmt.Printf("tokens: prompt=%d completion=%d\n\n", result.PromptTokens, result.CompletionTokens)
	}

	// The compat client above goes through the OpenAI-style endpoint;
	// an agent on the gemini provider talks to the Gemini API directly.
	if app.Config.AI.GeminiKey != "" {
		cfg := agents.DefaultAgentConfigs[agents.AgentAssistant].Clone()
		cfg.AIProvider = string(ai.ProviderNameGemini)
		cfg.Model = "gemini-2.0-flash"

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
			app.Log.Fatalf("Native run failed: %v", err)
		}

		fmt.Printf("[gemini/gemini-2.0-flash native]\n%s\n", output.RawResponse)
		fmt.Printf("tokens: prompt=%d completion=%d\n\n", output.InputTokens, output.OutputTokens)
	}

	// The same client can stream.
	if app.Config.AI.GeminiKey != "" {
		client, err := ai.NewGeminiChatClient(app.Config.AI.GeminiKey)
		if err != nil {
			app.Log.Fatalf("Failed to create client: %v", err)
		}

		fmt.Println("[streaming]")
		if _, err := client.Stream(ctx, "gemini-2.0-flash", instructions,
			"Now the same, but as a limerick.",
			func(delta string) { fmt.Print(delta) },
		); err != nil {
			app.Log.Fatalf("Stream failed: %v", err)
		}
		fmt.Println()
	}
}
