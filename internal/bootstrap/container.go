// Package bootstrap wires configuration, logging, error tracking, and the
// agent stack into a single container the command programs share.
package bootstrap

import (
	"context"

	"github.com/redis/go-redis/v9"
	"google.golang.org/adk/agent"
	adksession "google.golang.org/adk/session"

	"agentlab/internal/agents"
	"agentlab/internal/ai"
	"agentlab/internal/config"
	"agentlab/internal/tools"
	"agentlab/internal/trackers/noop"
	"agentlab/internal/trackers/sentry"
	"agentlab/pkg/errors"
	"agentlab/pkg/logger"
	"agentlab/pkg/templates"
)

// Container holds all application dependencies in initialization order.
type Container struct {
	Config       *config.Config
	Log          *logger.Logger
	ErrorTracker errors.Tracker

	Redis *redis.Client

	AIRegistry     *ai.ProviderRegistry
	ToolRegistry   *tools.Registry
	Templates      *templates.Registry
	Users          *tools.UserDirectory
	Factory        *agents.Factory
	SessionService adksession.Service
	RateLimiter    *ai.RateLimiter
}

// New builds the container from environment configuration.
func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		return nil, errors.Wrap(err, "init logger")
	}

	log := logger.Get()

	tracker := initErrorTracker(cfg, log)
	logger.SetErrorTracker(tracker)

	var redisClient *redis.Client
	if cfg.Cache.Enabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.Cache.Addr(),
			DB:   cfg.Cache.RedisDB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warnf("Redis unavailable, model cache disabled: %v", err)
			redisClient = nil
		}
	}

	aiRegistry, err := ai.NewDefaultRegistry(cfg.AI.GeminiKey, cfg.AI.OpenAIKey)
	if err != nil {
		return nil, errors.Wrap(err, "init AI providers")
	}

	users := tools.DefaultUserDirectory()

	toolRegistry := tools.NewRegistry()
	if err := tools.RegisterAll(toolRegistry, tools.NewDeps(log, cfg.AI.VectorStoreID, users)); err != nil {
		return nil, errors.Wrap(err, "register tools")
	}

	tmpl := templates.Get()

	provider := ai.ProviderName(cfg.AI.DefaultProvider)
	rateLimiter := ai.NewRateLimiter(provider, cfg.Agents.ModelRatePerSec, 1)

	factory, err := agents.NewFactory(agents.FactoryDeps{
		AIRegistry:   aiRegistry,
		ToolRegistry: toolRegistry,
		Templates:    tmpl,
		RateLimiter:  rateLimiter,
		Redis:        redisClient,
		CacheTTL:     cfg.Cache.TTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "init agent factory")
	}

	return &Container{
		Config:         cfg,
		Log:            log,
		ErrorTracker:   tracker,
		Redis:          redisClient,
		AIRegistry:     aiRegistry,
		ToolRegistry:   toolRegistry,
		Templates:      tmpl,
		Users:          users,
		Factory:        factory,
		SessionService: adksession.InMemoryService(),
		RateLimiter:    rateLimiter,
	}, nil
}

// RequireProviderKey fails fast when the configured default provider has
// no API key set.
func (c *Container) RequireProviderKey() error {
	_, err := c.Config.AI.RequireKey(c.Config.AI.DefaultProvider)
	return err
}

// Provider returns the configured default provider name.
func (c *Container) Provider() string {
	return c.Config.AI.DefaultProvider
}

// Model returns the configured default model name.
func (c *Container) Model() string {
	return c.Config.AI.DefaultModel
}

// NewRunner builds a runner for an agent using the shared session service.
func (c *Container) NewRunner(ag agent.Agent) (*agents.Runner, error) {
	return agents.NewRunner(ag, c.Config.Agents, c.SessionService)
}

// Close flushes the tracker and releases connections.
func (c *Container) Close(ctx context.Context) {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Warnf("Redis close: %v", err)
		}
	}
	if c.ErrorTracker != nil {
		if err := c.ErrorTracker.Flush(ctx); err != nil {
			c.Log.Warnf("Tracker flush: %v", err)
		}
	}
	logger.Sync()
}

func initErrorTracker(cfg *config.Config, log *logger.Logger) errors.Tracker {
	if !cfg.ErrorTracking.Enabled || cfg.ErrorTracking.SentryDSN == "" {
		log.Debug("Error tracking disabled")
		return noop.New()
	}

	tracker, err := sentry.New(cfg.ErrorTracking.SentryDSN, cfg.ErrorTracking.Environment)
	if err != nil {
		log.Warnf("Failed to initialize Sentry: %v", err)
		return noop.New()
	}

	log.Info("Error tracking initialized (Sentry)")
	return tracker
}
