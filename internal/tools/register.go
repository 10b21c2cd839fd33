package tools

import (
	"google.golang.org/adk/tool"

	"agentlab/pkg/errors"
)

// RegisterAll builds and registers every demo tool in the registry.
func RegisterAll(registry *Registry, deps Deps) error {
	log := deps.Log.With("component", "tool_registration")

	constructors := map[string]func(Deps) (tool.Tool, error){
		"get_weather": NewGetWeatherTool,

		"get_available_flights":    NewGetAvailableFlightsTool,
		"check_refund_eligibility": NewCheckRefundEligibilityTool,

		"get_user_info":             NewGetUserInfoTool,
		"get_purchase_history":      NewGetPurchaseHistoryTool,
		"get_personalized_greeting": NewGetPersonalizedGreetingTool,
		"get_plan_features":         NewGetPlanFeaturesTool,

		"normalize_date": NewNormalizeDateTool,
		"count_words":    NewCountWordsTool,

		"search_documents": NewSearchDocumentsTool,
		"get_tutor_topics": NewGetTutorTopicsTool,
	}

	for name, build := range constructors {
		t, err := build(deps)
		if err != nil {
			return errors.Wrapf(err, "build tool %s", name)
		}
		registry.Register(name, t)
	}

	log.Debugf("Registered %d tools", len(registry.List()))
	return nil
}
