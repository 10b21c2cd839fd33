package callbacks

import (
	"time"

	"google.golang.org/adk/agent"
	"google.golang.org/genai"

	"agentlab/pkg/logger"
)

const tempStartTimeState = "temp:start_time"

// TimingBeforeAgentCallback records the run start time and announces the
// agent in the log, tagged with user and session for trace grouping.
func TimingBeforeAgentCallback() agent.BeforeAgentCallback {
	return func(ctx agent.CallbackContext) (*genai.Content, error) {
		if err := ctx.State().Set(tempStartTimeState, time.Now()); err != nil {
			logger.Get().Warnf("Failed to store start time: %v", err)
		}

		logger.Get().With(
			"agent", ctx.AgentName(),
			"user", ctx.UserID(),
			"session", ctx.SessionID(),
		).Infof("Agent %s started", ctx.AgentName())

		return nil, nil
	}
}

// TimingAfterAgentCallback logs the run duration using the start time
// stored by TimingBeforeAgentCallback.
func TimingAfterAgentCallback() agent.AfterAgentCallback {
	return func(ctx agent.CallbackContext) (*genai.Content, error) {
		log := logger.Get().With("agent", ctx.AgentName(), "session", ctx.SessionID())

		startVal, err := ctx.ReadonlyState().Get(tempStartTimeState)
		if err != nil {
			log.Debug("No start time in state, skipping timing")
			return nil, nil
		}

		start, ok := startVal.(time.Time)
		if !ok {
			return nil, nil
		}

		log.Infof("Agent %s completed in %v", ctx.AgentName(), time.Since(start))
		return nil, nil
	}
}

// MaintenanceBeforeAgentCallback short-circuits the run with a static
// reply while the app-level maintenance flag is set.
func MaintenanceBeforeAgentCallback() agent.BeforeAgentCallback {
	return func(ctx agent.CallbackContext) (*genai.Content, error) {
		val, err := ctx.ReadonlyState().Get("app:maintenance_mode")
		if err != nil {
			return nil, nil
		}
		if enabled, ok := val.(bool); ok && enabled {
			logger.Get().With("agent", ctx.AgentName()).Warn("Maintenance mode active")
			return genai.NewContentFromText(
				"The service is under maintenance. Please try again later.",
				genai.RoleModel,
			), nil
		}
		return nil, nil
	}
}
