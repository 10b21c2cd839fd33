package tools

import (
	"agentlab/pkg/errors"
)

// Definition describes a tool's metadata for registration and prompt rendering.
type Definition struct {
	Name        string
	Description string
	Category    string
}

// toolDefinitions enumerates every demo tool shipped with the examples.
var toolDefinitions = []Definition{
	{Name: "get_weather", Description: "Get the current weather for a city", Category: "weather"},

	{Name: "get_available_flights", Description: "Get available flights between two cities on a specific date", Category: "travel"},
	{Name: "check_refund_eligibility", Description: "Check if a booking reference is eligible for a refund", Category: "travel"},

	{Name: "get_user_info", Description: "Get basic information about the current user", Category: "account"},
	{Name: "get_purchase_history", Description: "Get the purchase history for the current user", Category: "account"},
	{Name: "get_personalized_greeting", Description: "Get a personalized greeting based on user status", Category: "account"},
	{Name: "get_plan_features", Description: "List the features included in a subscription tier", Category: "account"},

	{Name: "normalize_date", Description: "Validate and format a date string to YYYY-MM-DD", Category: "text"},
	{Name: "count_words", Description: "Count the words and characters in a text", Category: "text"},

	{Name: "search_documents", Description: "Search the configured document store for relevant passages", Category: "knowledge"},
	{Name: "get_tutor_topics", Description: "List the topics a subject tutor can help with", Category: "knowledge"},
}

// Definitions returns the full tool catalog.
func Definitions() []Definition {
	out := make([]Definition, len(toolDefinitions))
	copy(out, toolDefinitions)
	return out
}

// DefinitionsByCategory filters the catalog by category.
func DefinitionsByCategory(category string) []Definition {
	var out []Definition
	for _, def := range toolDefinitions {
		if def.Category == category {
			out = append(out, def)
		}
	}
	return out
}

// ErrUnknownTool wraps the tool-not-found sentinel with the missing name.
func ErrUnknownTool(name string) error {
	return errors.Wrapf(errors.ErrToolNotFound, "%s", name)
}
