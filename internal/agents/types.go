package agents

// AgentType enumerates supported agent specializations.
type AgentType string

const (
	AgentAssistant         AgentType = "assistant"
	AgentWeatherHaiku      AgentType = "weather_haiku"
	AgentTriage            AgentType = "triage"
	AgentBooking           AgentType = "booking"
	AgentRefund            AgentType = "refund"
	AgentDynamic           AgentType = "dynamic_assistant"
	AgentCalendarExtractor AgentType = "calendar_extractor"
	AgentAccount           AgentType = "account"
	AgentTranslatorSpanish AgentType = "translator_spanish"
	AgentTranslatorFrench  AgentType = "translator_french"
	AgentTranslatorItalian AgentType = "translator_italian"
	AgentTutorMath         AgentType = "tutor_math"
	AgentTutorHistory      AgentType = "tutor_history"
	AgentHomeworkChecker   AgentType = "homework_checker"
	AgentSupport           AgentType = "support"
	AgentOrchestrator      AgentType = "orchestrator"
)
