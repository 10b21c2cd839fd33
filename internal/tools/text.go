package tools

import (
	"fmt"
	"strings"
	"time"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
)

// dateLayouts are tried in order when normalizing a date string.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"January 2, 2006",
}

// NormalizeDate formats a date string to YYYY-MM-DD. The second return
// value reports whether any known layout matched; on no match the input
// is returned unchanged.
func NormalizeDate(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.Format("2006-01-02"), true
		}
	}
	return raw, false
}

// TextStats summarizes a block of text.
type TextStats struct {
	Words      int
	Characters int
}

// CountWords computes word and character counts for the text.
func CountWords(text string) TextStats {
	return TextStats{
		Words:      len(strings.Fields(text)),
		Characters: len([]rune(text)),
	}
}

// NewNormalizeDateTool returns a tool that reformats dates to YYYY-MM-DD.
func NewNormalizeDateTool(deps Deps) (tool.Tool, error) {
	return functiontool.New(
		functiontool.Config{
			Name:        "normalize_date",
			Description: "Validate and format a date string to YYYY-MM-DD",
		},
		func(ctx tool.Context, args map[string]interface{}) (map[string]interface{}, error) {
			raw, _ := args["date"].(string)
			if raw == "" {
				deps.Log.Warn("Tool: normalize_date called without a date")
				return nil, fmt.Errorf("normalize_date: date is required")
			}

			normalized, matched := NormalizeDate(raw)
			deps.Log.Debugw("Tool: normalize_date called", "input", raw, "output", normalized, "matched", matched)

			return map[string]interface{}{
				"input":      raw,
				"normalized": normalized,
				"matched":    matched,
			}, nil
		})
}

// NewCountWordsTool returns a tool that counts words and characters.
func NewCountWordsTool(deps Deps) (tool.Tool, error) {
	return functiontool.New(
		functiontool.Config{
			Name:        "count_words",
			Description: "Count the words and characters in a text",
		},
		func(ctx tool.Context, args map[string]interface{}) (map[string]interface{}, error) {
			text, _ := args["text"].(string)
			if text == "" {
				return map[string]interface{}{"words": 0, "characters": 0}, nil
			}

			stats := CountWords(text)
			deps.Log.Debugw("Tool: count_words called", "words", stats.Words, "characters", stats.Characters)

			return map[string]interface{}{
				"words":      stats.Words,
				"characters": stats.Characters,
			}, nil
		})
}
