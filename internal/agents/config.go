package agents

import (
	"time"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/genai"

	"agentlab/internal/agents/schemas"
)

// AgentConfig captures runtime settings for an agent instance.
type AgentConfig struct {
	Type        AgentType
	Name        string
	Description string
	Tools       []string

	SystemPromptTemplate string
	PromptData           map[string]interface{}

	// Handoff prefixes the rendered instruction with the multi-agent
	// coordination context. Set it on any agent that participates in
	// transfers, in either direction.
	Handoff bool

	OutputKey    string
	OutputSchema *genai.Schema

	// SubAgents receive transferred conversations. Populated at build
	// time by the factory methods that compose multi-agent trees.
	SubAgents []agent.Agent

	AIProvider string
	Model      string

	// Temperature below zero means "use the model default".
	Temperature  float64
	MaxTokens    int
	TotalTimeout time.Duration

	BeforeAgentCallbacks []agent.BeforeAgentCallback
	AfterAgentCallbacks  []agent.AfterAgentCallback
	BeforeModelCallbacks []llmagent.BeforeModelCallback
	AfterModelCallbacks  []llmagent.AfterModelCallback
}

// Clone returns a deep copy of the config. The copy can be mutated
// (different name, model, prompt data) without touching the original.
func (c AgentConfig) Clone() AgentConfig {
	clone := c

	if c.Tools != nil {
		clone.Tools = make([]string, len(c.Tools))
		copy(clone.Tools, c.Tools)
	}

	if c.PromptData != nil {
		clone.PromptData = make(map[string]interface{}, len(c.PromptData))
		for k, v := range c.PromptData {
			clone.PromptData[k] = v
		}
	}

	clone.BeforeAgentCallbacks = append([]agent.BeforeAgentCallback(nil), c.BeforeAgentCallbacks...)
	clone.AfterAgentCallbacks = append([]agent.AfterAgentCallback(nil), c.AfterAgentCallbacks...)
	clone.BeforeModelCallbacks = append([]llmagent.BeforeModelCallback(nil), c.BeforeModelCallbacks...)
	clone.AfterModelCallbacks = append([]llmagent.AfterModelCallback(nil), c.AfterModelCallbacks...)

	return clone
}

// DefaultAgentConfigs holds the baseline configuration for every agent type.
// Provider and model are filled in at creation time from runtime config.
var DefaultAgentConfigs = map[AgentType]AgentConfig{
	AgentAssistant: {
		Type:                 AgentAssistant,
		Name:                 "Assistant",
		Description:          "General purpose assistant",
		SystemPromptTemplate: "agents/assistant",
		Temperature:          -1,
	},
	AgentWeatherHaiku: {
		Type:                 AgentWeatherHaiku,
		Name:                 "WeatherHaiku",
		Description:          "Writes haikus about the current weather",
		Tools:                []string{"get_weather"},
		SystemPromptTemplate: "agents/weather_haiku",
		Temperature:          0.9,
	},
	AgentTriage: {
		Type:                 AgentTriage,
		Name:                 "TriageAgent",
		Description:          "Routes travel requests to booking or refund specialists",
		SystemPromptTemplate: "agents/triage",
		PromptData: map[string]interface{}{
			"BookingAgent": "BookingAgent",
			"RefundAgent":  "RefundAgent",
		},
		Handoff:     true,
		Temperature: -1,
	},
	AgentBooking: {
		Type:                 AgentBooking,
		Name:                 "BookingAgent",
		Description:          "Handles flight booking requests",
		Tools:                []string{"get_available_flights"},
		SystemPromptTemplate: "agents/booking",
		Handoff:              true,
		Temperature:          -1,
	},
	AgentRefund: {
		Type:                 AgentRefund,
		Name:                 "RefundAgent",
		Description:          "Handles refund and cancellation requests",
		Tools:                []string{"check_refund_eligibility"},
		SystemPromptTemplate: "agents/refund",
		Handoff:              true,
		Temperature:          -1,
	},
	AgentDynamic: {
		Type:                 AgentDynamic,
		Name:                 "DynamicAssistant",
		Description:          "Assistant whose instructions depend on the current user context",
		SystemPromptTemplate: "agents/dynamic_assistant",
		Temperature:          -1,
	},
	AgentCalendarExtractor: {
		Type:                 AgentCalendarExtractor,
		Name:                 "CalendarExtractor",
		Description:          "Extracts structured calendar events from free text",
		SystemPromptTemplate: "agents/calendar_extractor",
		OutputKey:            "calendar_event",
		OutputSchema:         schemas.CalendarEventSchema,
		Temperature:          0,
	},
	AgentAccount: {
		Type:                 AgentAccount,
		Name:                 "AccountAssistant",
		Description:          "Answers questions using the current user's account context",
		Tools:                []string{"get_user_info", "get_purchase_history", "get_personalized_greeting", "get_plan_features"},
		SystemPromptTemplate: "agents/account",
		Temperature:          -1,
	},
	AgentTranslatorSpanish: {
		Type:                 AgentTranslatorSpanish,
		Name:                 "SpanishTranslator",
		Description:          "Translates the user's message to Spanish",
		SystemPromptTemplate: "agents/translator",
		PromptData:           map[string]interface{}{"Language": "Spanish"},
		OutputKey:            "spanish_translation",
		Temperature:          0.3,
	},
	AgentTranslatorFrench: {
		Type:                 AgentTranslatorFrench,
		Name:                 "FrenchTranslator",
		Description:          "Translates the user's message to French",
		SystemPromptTemplate: "agents/translator",
		PromptData:           map[string]interface{}{"Language": "French"},
		OutputKey:            "french_translation",
		Temperature:          0.3,
	},
	AgentTranslatorItalian: {
		Type:                 AgentTranslatorItalian,
		Name:                 "ItalianTranslator",
		Description:          "Translates the user's message to Italian",
		SystemPromptTemplate: "agents/translator",
		PromptData:           map[string]interface{}{"Language": "Italian"},
		OutputKey:            "italian_translation",
		Temperature:          0.3,
	},
	AgentTutorMath: {
		Type:                 AgentTutorMath,
		Name:                 "MathTutor",
		Description:          "Specialist agent for math questions",
		Tools:                []string{"get_tutor_topics"},
		SystemPromptTemplate: "agents/tutor",
		PromptData:           map[string]interface{}{"Subject": "math"},
		Handoff:              true,
		Temperature:          -1,
	},
	AgentTutorHistory: {
		Type:                 AgentTutorHistory,
		Name:                 "HistoryTutor",
		Description:          "Specialist agent for historical questions",
		Tools:                []string{"get_tutor_topics"},
		SystemPromptTemplate: "agents/tutor",
		PromptData:           map[string]interface{}{"Subject": "history"},
		Handoff:              true,
		Temperature:          -1,
	},
	AgentHomeworkChecker: {
		Type:                 AgentHomeworkChecker,
		Name:                 "HomeworkChecker",
		Description:          "Classifies whether a request is asking for homework answers",
		SystemPromptTemplate: "agents/homework_check",
		OutputKey:            "homework_check",
		OutputSchema:         schemas.HomeworkCheckSchema,
		Temperature:          0,
	},
	AgentSupport: {
		Type:                 AgentSupport,
		Name:                 "SupportAgent",
		Description:          "Customer support agent with account tools",
		Tools:                []string{"get_user_info", "get_purchase_history", "search_documents"},
		SystemPromptTemplate: "agents/support",
		Temperature:          -1,
	},
	AgentOrchestrator: {
		Type:                 AgentOrchestrator,
		Name:                 "TranslationOrchestrator",
		Description:          "Coordinates translator agents exposed as tools",
		SystemPromptTemplate: "agents/orchestrator",
		Handoff:              true,
		Temperature:          -1,
	},
}
