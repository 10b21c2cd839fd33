// Streams an agent run: text deltas print as they arrive and tool
// activity is announced between them.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

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

	if err := app.RequireProviderKey(); err != nil {
		app.Log.Fatalf("Missing API key: %v", err)
	}

	prompt := "What's the weather like in Tokyo today?"
	if len(os.Args) > 1 {
		prompt = strings.Join(os.Args[1:], " ")
	}

	cfg := agents.DefaultAgentConfigs[agents.AgentWeatherHaiku].Clone()
	cfg.AIProvider, cfg.Model = app.Provider(), app.Model()

	haiku, err := app.Factory.CreateAgent(cfg)
	if err != nil {
		app.Log.Fatalf("Failed to create agent: %v", err)
	}

	runner, err := app.NewRunner(haiku)
	if err != nil {
		app.Log.Fatalf("Failed to create runner: %v", err)
	}

	handler := agents.StreamHandler{
		OnDelta: func(text string) {
			fmt.Print(text)
		},
		OnToolCall: func(name string, args map[string]interface{}) {
			fmt.Printf("\n-- calling %s(%v)\n", name, args)
		},
		OnToolResult: func(name string, result map[string]interface{}) {
			fmt.Printf("-- %s returned %v\n", name, result)
		},
		OnAgent: func(author string) {
			fmt.Printf("-- %s speaking\n", author)
		},
	}

	output, err := runner.ExecuteStream(ctx, agents.ExecutionInput{Message: prompt}, handler)
	if err != nil {
		app.Log.Fatalf("Run failed: %v", err)
	}

	fmt.Printf("\n\ndone: tokens=%d tools=%d duration=%v\n",
		output.TokensUsed, output.ToolCallCount, output.Duration)

	// The same deltas are available from the chat-completions API
	// directly, without the agent layer.
	key, err := app.Config.AI.RequireKey(app.Provider())
	if err != nil {
		return
	}

	var client *ai.ChatClient
	if app.Provider() == ai.ProviderNameOpenAI.String() {
		client, err = ai.NewOpenAIChatClient(key)
	} else {
		client, err = ai.NewGeminiChatClient(key)
	}
	if err != nil {
		app.Log.Fatalf("Failed to create chat client: %v", err)
	}

	fmt.Println("\n[chat-completions stream]")
	if _, err := client.Stream(ctx, app.Model(),
		"You are a concise assistant.", prompt,
		func(delta string) { fmt.Print(delta) },
	); err != nil {
		app.Log.Fatalf("Stream failed: %v", err)
	}
	fmt.Println()
}
