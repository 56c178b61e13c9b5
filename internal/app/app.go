package app

import (
	"context"

	"github.com/mcpscout/mcpscout/internal/cache"
	"github.com/mcpscout/mcpscout/internal/catalog"
	"github.com/mcpscout/mcpscout/internal/common"
	"github.com/mcpscout/mcpscout/internal/config"
	"github.com/mcpscout/mcpscout/internal/handlers"
	"github.com/mcpscout/mcpscout/internal/llm"
	"github.com/mcpscout/mcpscout/internal/models"
	"github.com/mcpscout/mcpscout/internal/proxy"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	Static      []models.Tool
	Proxy       *proxy.Client
	Aggregator  *catalog.Aggregator
	Recommender *llm.Recommender // nil when no API key is configured

	// HTTP handlers
	PageHandler        *handlers.PageHandler
	HealthHandler      *handlers.HealthHandler
	VersionHandler     *handlers.VersionHandler
	RecommendHandler   *handlers.RecommendHandler
	AIRecommendHandler *handlers.AIRecommendHandler
	ListToolsHandler   *handlers.ListToolsHandler
}

// New initializes the application with all dependencies. The static
// catalog is loaded here, once; a missing or malformed data file is fatal.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	static, err := catalog.LoadStatic(cfg.Catalog.DataFile, logger)
	if err != nil {
		return nil, err
	}
	a.Static = static
	logger.Info().Int("tools", len(static)).Str("file", cfg.Catalog.DataFile).Msg("static catalog loaded")

	a.Proxy = proxy.New(cfg.Proxy.URL, cfg.Proxy.Timeout(), logger)
	if ttl := cfg.Proxy.CacheTTL(); ttl > 0 {
		a.Proxy.SetCache(cache.New(ttl, cfg.Proxy.CacheMaxEntries))
		logger.Info().Str("ttl", ttl.String()).Msg("proxy response cache enabled")
	}

	a.Aggregator = catalog.NewAggregator(static, a.Proxy, logger)

	if cfg.LLM.APIKey != "" {
		rec, err := llm.New(context.Background(), llm.Config{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			Timeout: cfg.LLM.Timeout(),
		}, logger)
		if err != nil {
			return nil, err
		}
		a.Recommender = rec
	} else {
		logger.Warn().Msg("GROQ_API_KEY not set, /recommend-ai will report an error")
	}

	a.initHandlers()

	logger.Info().Msg("application initialization complete")

	return a, nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	recommendFn := func(query string, topK int) []models.Tool {
		return catalog.Recommend(a.Aggregator.Static(), query, topK)
	}

	var aiFn handlers.AIRecommendFunc
	if a.Recommender != nil {
		aiFn = func(ctx context.Context, task string, topK int) (string, error) {
			candidates := a.Aggregator.Prefilter(ctx, task)
			return a.Recommender.Recommend(ctx, task, topK, candidates)
		}
	}

	a.HealthHandler = handlers.NewHealthHandler(a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.RecommendHandler = handlers.NewRecommendHandler(a.Logger, recommendFn)
	a.AIRecommendHandler = handlers.NewAIRecommendHandler(a.Logger, aiFn)
	a.ListToolsHandler = handlers.NewListToolsHandler(a.Logger, a.Proxy.ListToolsRaw)
	a.PageHandler = handlers.NewPageHandler(a.Logger, recommendFn, a.Proxy.ListTools, aiFn)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close closes all application resources.
func (a *App) Close() error {
	return nil
}
