package tools

import (
	"fmt"
	"strings"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
)

// cityConditions holds canned weather for a handful of known cities.
// Unknown cities fall back to sunny.
var cityConditions = map[string]string{
	"tokyo":    "sunny",
	"london":   "rainy",
	"paris":    "partly cloudy",
	"new york": "windy",
	"sydney":   "clear",
}

// WeatherReport returns a one-line weather summary for the city.
func WeatherReport(city string) string {
	condition, ok := cityConditions[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		condition = "sunny"
	}
	return fmt.Sprintf("The weather in %s is %s", city, condition)
}

// NewGetWeatherTool returns a tool that reports the current weather for a city.
func NewGetWeatherTool(deps Deps) (tool.Tool, error) {
	return functiontool.New(
		functiontool.Config{
			Name:        "get_weather",
			Description: "Get the current weather for a city",
		},
		func(ctx tool.Context, args map[string]interface{}) (map[string]interface{}, error) {
			city, _ := args["city"].(string)
			if city == "" {
				deps.Log.Warn("Tool: get_weather called without a city")
				return nil, fmt.Errorf("get_weather: city is required")
			}

			deps.Log.Debugw("Tool: get_weather called", "city", city)

			return map[string]interface{}{
				"city":   city,
				"report": WeatherReport(city),
			}, nil
		})
}
