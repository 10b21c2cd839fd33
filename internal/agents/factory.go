package agents

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	parallelagent "google.golang.org/adk/agent/workflowagents/parallelagent"
	sequentialagent "google.golang.org/adk/agent/workflowagents/sequentialagent"
	adkmodel "google.golang.org/adk/model"
	adktool "google.golang.org/adk/tool"
	"google.golang.org/genai"

	"agentlab/internal/agents/callbacks"
	"agentlab/internal/ai"
	"agentlab/internal/tools"
	"agentlab/pkg/errors"
	"agentlab/pkg/templates"
)

// FactoryDeps gathers external dependencies needed to instantiate agents.
// RateLimiter and Redis are optional; when present every created agent
// gets the matching model callbacks.
type FactoryDeps struct {
	AIRegistry   *ai.ProviderRegistry
	ToolRegistry *tools.Registry
	Templates    *templates.Registry

	RateLimiter *ai.RateLimiter
	Redis       *redis.Client
	CacheTTL    time.Duration
}

// Factory creates configured agents and agent trees.
type Factory struct {
	aiRegistry   *ai.ProviderRegistry
	toolRegistry *tools.Registry
	templates    *templates.Registry

	rateLimiter *ai.RateLimiter
	redis       *redis.Client
	cacheTTL    time.Duration
}

// NewFactory builds an agent factory with required dependencies.
func NewFactory(deps FactoryDeps) (*Factory, error) {
	if deps.ToolRegistry == nil {
		return nil, errors.New("tool registry is required")
	}

	if deps.AIRegistry == nil {
		return nil, errors.New("AI provider registry is required")
	}

	if deps.Templates == nil {
		deps.Templates = templates.Get()
	}

	if deps.CacheTTL <= 0 {
		deps.CacheTTL = 10 * time.Minute
	}

	return &Factory{
		aiRegistry:   deps.AIRegistry,
		toolRegistry: deps.ToolRegistry,
		templates:    deps.Templates,
		rateLimiter:  deps.RateLimiter,
		redis:        deps.Redis,
		cacheTTL:     deps.CacheTTL,
	}, nil
}

// newLLM validates the configured provider+model pair and builds the ADK
// model the agent will generate content through.
func (f *Factory) newLLM(cfg AgentConfig) (adkmodel.LLM, error) {
	ctx := context.Background()

	if _, err := f.aiRegistry.ResolveModel(ctx, cfg.AIProvider, cfg.Model); err != nil {
		return nil, errors.Wrapf(err, "resolve model %s/%s", cfg.AIProvider, cfg.Model)
	}

	llmModel, err := f.aiRegistry.NewLLM(ctx, cfg.AIProvider, cfg.Model)
	if err != nil {
		return nil, errors.Wrapf(err, "build model %s/%s", cfg.AIProvider, cfg.Model)
	}

	return llmModel, nil
}

// baseModelCallbacks returns the callbacks every agent carries: rate
// limiting and response caching before the configured extras, usage
// logging after them.
func (f *Factory) baseModelCallbacks(cfg AgentConfig) (before []llmagent.BeforeModelCallback, after []llmagent.AfterModelCallback) {
	if f.rateLimiter != nil {
		before = append(before, callbacks.RateLimitBeforeModelCallback(f.rateLimiter))
	}
	if f.redis != nil {
		before = append(before, callbacks.CachingBeforeModelCallback(f.redis))
		after = append(after, callbacks.SaveToCacheAfterModelCallback(f.redis, f.cacheTTL))
	}

	before = append(before, cfg.BeforeModelCallbacks...)
	after = append(after, cfg.AfterModelCallbacks...)
	after = append(after, callbacks.UsageLoggingAfterModelCallback())

	return before, after
}

// CreateAgent constructs a single ADK agent instance from a config.
func (f *Factory) CreateAgent(cfg AgentConfig) (agent.Agent, error) {
	llmModel, err := f.newLLM(cfg)
	if err != nil {
		return nil, err
	}

	agentTools, toolInfo, err := f.resolveTools(cfg.Tools)
	if err != nil {
		return nil, err
	}

	instruction, err := f.renderInstruction(cfg, toolInfo)
	if err != nil {
		return nil, err
	}

	beforeModel, afterModel := f.baseModelCallbacks(cfg)

	return llmagent.New(llmagent.Config{
		Name:                  cfg.Name,
		Description:           cfg.Description,
		Model:                 llmModel,
		Tools:                 agentTools,
		Instruction:           instruction,
		OutputKey:             cfg.OutputKey,
		OutputSchema:          cfg.OutputSchema,
		SubAgents:             cfg.SubAgents,
		GenerateContentConfig: generateConfig(cfg),
		BeforeAgentCallbacks:  cfg.BeforeAgentCallbacks,
		AfterAgentCallbacks:   cfg.AfterAgentCallbacks,
		BeforeModelCallbacks:  beforeModel,
		AfterModelCallbacks:   afterModel,
	})
}

// CreateDefaultRegistry builds and registers standalone agents from
// DefaultAgentConfigs. Composite trees are built by the dedicated methods.
func (f *Factory) CreateDefaultRegistry(provider, model string) (*Registry, error) {
	reg := NewRegistry()

	for _, cfg := range DefaultAgentConfigs {
		if len(cfg.SubAgents) > 0 {
			continue
		}
		cfg.AIProvider = provider
		cfg.Model = model
		ag, err := f.CreateAgent(cfg)
		if err != nil {
			return nil, err
		}
		reg.Register(cfg.Type, ag)
	}

	return reg, nil
}

// CreateTravelTriage builds the triage agent with booking and refund
// specialists attached as transfer targets. Each specialist announces
// the transfer and receives a tool-free view of the history.
func (f *Factory) CreateTravelTriage(provider, model string) (agent.Agent, error) {
	bookingCfg := DefaultAgentConfigs[AgentBooking].Clone()
	bookingCfg.AIProvider, bookingCfg.Model = provider, model
	bookingCfg.BeforeAgentCallbacks = append(bookingCfg.BeforeAgentCallbacks,
		callbacks.TransferAnnouncementBeforeAgentCallback("booking specialist is taking over"))
	bookingCfg.BeforeModelCallbacks = append(bookingCfg.BeforeModelCallbacks,
		callbacks.StripToolHistoryBeforeModelCallback())
	booking, err := f.CreateAgent(bookingCfg)
	if err != nil {
		return nil, err
	}

	refundCfg := DefaultAgentConfigs[AgentRefund].Clone()
	refundCfg.AIProvider, refundCfg.Model = provider, model
	refundCfg.BeforeAgentCallbacks = append(refundCfg.BeforeAgentCallbacks,
		callbacks.TransferAnnouncementBeforeAgentCallback("refund specialist is taking over"))
	refundCfg.BeforeModelCallbacks = append(refundCfg.BeforeModelCallbacks,
		callbacks.StripToolHistoryBeforeModelCallback())
	refund, err := f.CreateAgent(refundCfg)
	if err != nil {
		return nil, err
	}

	triageCfg := DefaultAgentConfigs[AgentTriage].Clone()
	triageCfg.AIProvider, triageCfg.Model = provider, model
	triageCfg.SubAgents = []agent.Agent{booking, refund}
	triageCfg.BeforeAgentCallbacks = append(triageCfg.BeforeAgentCallbacks, callbacks.TimingBeforeAgentCallback())
	triageCfg.AfterAgentCallbacks = append(triageCfg.AfterAgentCallbacks, callbacks.TimingAfterAgentCallback())

	return f.CreateAgent(triageCfg)
}

// CreateTutorTriage builds a triage agent that routes questions to math
// and history tutors. A homework guardrail runs before every model call.
func (f *Factory) CreateTutorTriage(provider, model string) (agent.Agent, error) {
	mathCfg := DefaultAgentConfigs[AgentTutorMath].Clone()
	mathCfg.AIProvider, mathCfg.Model = provider, model
	mathCfg.BeforeModelCallbacks = append(mathCfg.BeforeModelCallbacks, callbacks.HomeworkGuardrail())
	mathTutor, err := f.CreateAgent(mathCfg)
	if err != nil {
		return nil, err
	}

	historyCfg := DefaultAgentConfigs[AgentTutorHistory].Clone()
	historyCfg.AIProvider, historyCfg.Model = provider, model
	historyCfg.BeforeModelCallbacks = append(historyCfg.BeforeModelCallbacks, callbacks.HomeworkGuardrail())
	historyTutor, err := f.CreateAgent(historyCfg)
	if err != nil {
		return nil, err
	}

	triageCfg := AgentConfig{
		Type:                 AgentTriage,
		Name:                 "TutorTriage",
		Description:          "Routes questions to the right subject tutor",
		SystemPromptTemplate: "agents/triage_tutors",
		Handoff:              true,
		AIProvider:           provider,
		Model:                model,
		Temperature:          -1,
		SubAgents:            []agent.Agent{mathTutor, historyTutor},
		BeforeModelCallbacks: []llmagent.BeforeModelCallback{callbacks.HomeworkGuardrail()},
	}

	return f.CreateAgent(triageCfg)
}

// CreateGuardedSupport builds a support agent whose output is scanned
// for sensitive data before it reaches the user.
func (f *Factory) CreateGuardedSupport(provider, model string, mode callbacks.SensitiveOutputMode) (agent.Agent, error) {
	cfg := DefaultAgentConfigs[AgentSupport].Clone()
	cfg.AIProvider, cfg.Model = provider, model
	cfg.AfterModelCallbacks = append(cfg.AfterModelCallbacks, callbacks.SensitiveDataGuardrail(mode))
	cfg.BeforeAgentCallbacks = append(cfg.BeforeAgentCallbacks, callbacks.TimingBeforeAgentCallback())
	cfg.AfterAgentCallbacks = append(cfg.AfterAgentCallbacks, callbacks.TimingAfterAgentCallback())

	return f.CreateAgent(cfg)
}

// CreateTranslationWorkflow runs the three translators concurrently and
// feeds their outputs to a picker that selects the best rendering.
func (f *Factory) CreateTranslationWorkflow(provider, model string) (agent.Agent, error) {
	translators := make([]agent.Agent, 0, 3)
	for _, agentType := range []AgentType{AgentTranslatorSpanish, AgentTranslatorFrench, AgentTranslatorItalian} {
		cfg := DefaultAgentConfigs[agentType].Clone()
		cfg.AIProvider, cfg.Model = provider, model
		translator, err := f.CreateAgent(cfg)
		if err != nil {
			return nil, err
		}
		translators = append(translators, translator)
	}

	parallelTranslation, err := parallelagent.New(parallelagent.Config{AgentConfig: agent.Config{
		Name:        "ParallelTranslation",
		Description: "Concurrent Spanish, French, and Italian translation",
		SubAgents:   translators,
	}})
	if err != nil {
		return nil, err
	}

	pickerCfg := AgentConfig{
		Type:                 AgentOrchestrator,
		Name:                 "TranslationPicker",
		Description:          "Reviews candidate translations and presents them",
		SystemPromptTemplate: "agents/translation_picker",
		AIProvider:           provider,
		Model:                model,
		Temperature:          -1,
	}
	picker, err := f.CreateAgent(pickerCfg)
	if err != nil {
		return nil, err
	}

	return sequentialagent.New(sequentialagent.Config{AgentConfig: agent.Config{
		Name:        "TranslationWorkflow",
		Description: "Translate in parallel, then review the candidates",
		SubAgents:   []agent.Agent{parallelTranslation, picker},
	}})
}

// CreateTranslationOrchestrator exposes the translators as callable tools
// of a single orchestrating agent instead of transfer targets.
func (f *Factory) CreateTranslationOrchestrator(provider, model string) (agent.Agent, error) {
	agentTools := make([]adktool.Tool, 0, 3)
	for _, agentType := range []AgentType{AgentTranslatorSpanish, AgentTranslatorFrench, AgentTranslatorItalian} {
		cfg := DefaultAgentConfigs[agentType].Clone()
		cfg.AIProvider, cfg.Model = provider, model
		translator, err := f.CreateAgent(cfg)
		if err != nil {
			return nil, err
		}

		lang, _ := cfg.PromptData["Language"].(string)
		toolName := "translate_to_" + toolSuffix(lang)
		wrapped, err := NewAgentTool(toolName, cfg.Description, translator)
		if err != nil {
			return nil, err
		}
		agentTools = append(agentTools, wrapped)
	}

	orchCfg := DefaultAgentConfigs[AgentOrchestrator].Clone()
	orchCfg.AIProvider, orchCfg.Model = provider, model
	orchestrator, err := f.createAgentWithTools(orchCfg, agentTools)
	if err != nil {
		return nil, err
	}

	return orchestrator, nil
}

// createAgentWithTools builds an agent whose tools are supplied directly
// rather than resolved from the registry by name.
func (f *Factory) createAgentWithTools(cfg AgentConfig, agentTools []adktool.Tool) (agent.Agent, error) {
	llmModel, err := f.newLLM(cfg)
	if err != nil {
		return nil, err
	}

	toolInfo := make([]tools.Definition, 0, len(agentTools))
	for _, t := range agentTools {
		toolInfo = append(toolInfo, tools.Definition{Name: t.Name(), Description: t.Description()})
	}

	instruction, err := f.renderInstruction(cfg, toolInfo)
	if err != nil {
		return nil, err
	}

	beforeModel, afterModel := f.baseModelCallbacks(cfg)

	return llmagent.New(llmagent.Config{
		Name:                  cfg.Name,
		Description:           cfg.Description,
		Model:                 llmModel,
		Tools:                 agentTools,
		Instruction:           instruction,
		OutputKey:             cfg.OutputKey,
		GenerateContentConfig: generateConfig(cfg),
		BeforeAgentCallbacks:  cfg.BeforeAgentCallbacks,
		AfterAgentCallbacks:   cfg.AfterAgentCallbacks,
		BeforeModelCallbacks:  beforeModel,
		AfterModelCallbacks:   afterModel,
	})
}

func (f *Factory) resolveTools(names []string) ([]adktool.Tool, []tools.Definition, error) {
	agentTools := make([]adktool.Tool, 0, len(names))
	toolInfo := make([]tools.Definition, 0, len(names))

	definitionByName := map[string]tools.Definition{}
	for _, def := range tools.Definitions() {
		definitionByName[def.Name] = def
	}

	for _, toolName := range names {
		t, ok := f.toolRegistry.Get(toolName)
		if !ok {
			return nil, nil, tools.ErrUnknownTool(toolName)
		}
		agentTools = append(agentTools, t)
		if def, ok := definitionByName[toolName]; ok {
			toolInfo = append(toolInfo, def)
		} else {
			toolInfo = append(toolInfo, tools.Definition{Name: toolName})
		}
	}

	return agentTools, toolInfo, nil
}

func (f *Factory) renderInstruction(cfg AgentConfig, toolInfo []tools.Definition) (string, error) {
	if cfg.SystemPromptTemplate == "" {
		return "", nil
	}

	data := map[string]interface{}{
		"Tools":     toolInfo,
		"AgentName": cfg.Name,
		"AgentType": cfg.Type,
	}
	for k, v := range cfg.PromptData {
		data[k] = v
	}

	instruction, err := f.templates.Render(cfg.SystemPromptTemplate, data)
	if err != nil {
		return "", errors.Wrapf(err, "render prompt for %s", cfg.Name)
	}

	if cfg.Handoff {
		instruction = templates.WithHandoffInstructions(instruction)
	}

	return instruction, nil
}

func generateConfig(cfg AgentConfig) *genai.GenerateContentConfig {
	if cfg.Temperature < 0 && cfg.MaxTokens == 0 {
		return nil
	}

	gc := &genai.GenerateContentConfig{}
	if cfg.Temperature >= 0 {
		temp := float32(cfg.Temperature)
		gc.Temperature = &temp
	}
	if cfg.MaxTokens > 0 {
		gc.MaxOutputTokens = int32(cfg.MaxTokens)
	}

	return gc
}

func toolSuffix(language string) string {
	switch language {
	case "Spanish":
		return "spanish"
	case "French":
		return "french"
	case "Italian":
		return "italian"
	default:
		return "language"
	}
}
