// Package app wires configuration into a ready minutes service. The HTTP
// server and the command line tool share it.
package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cnmi-csc/busybee/internal/adapter/repository"
	"github.com/cnmi-csc/busybee/internal/domain/repositories"
	"github.com/cnmi-csc/busybee/internal/infrastructure/cache"
	"github.com/cnmi-csc/busybee/internal/infrastructure/metrics"
	"github.com/cnmi-csc/busybee/internal/infrastructure/roster"
	"github.com/cnmi-csc/busybee/internal/infrastructure/storage"
	"github.com/cnmi-csc/busybee/internal/infrastructure/template"
	"github.com/cnmi-csc/busybee/internal/usecase/analysis"
	"github.com/cnmi-csc/busybee/internal/usecase/extract"
	"github.com/cnmi-csc/busybee/internal/usecase/minutes"
	"github.com/cnmi-csc/busybee/internal/usecase/names"
	"github.com/cnmi-csc/busybee/internal/usecase/synth"
	"github.com/cnmi-csc/busybee/pkg/config"
	"github.com/cnmi-csc/busybee/pkg/llm"
	"github.com/cnmi-csc/busybee/pkg/transcription"
)

// App holds the wired service and the resources behind it
type App struct {
	Service  minutes.Service
	Storage  repositories.DocumentRepository
	Registry *prometheus.Registry

	redis *redis.Client
}

// Build connects every configured backend and constructs the minutes service.
// Optional backends that are not configured fall back to in-process versions.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{Registry: prometheus.NewRegistry()}
	a.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(a.Registry)

	people, err := roster.Load(cfg.Roster.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	matcher := names.NewMatcher(people)
	if logger != nil {
		logger.Info("👥 Roster loaded", zap.Strings("people", people.Names()))
	}

	templates := templateSources(cfg.Templates, logger)

	deps := minutes.Dependencies{
		Matcher:     matcher,
		Aggregator:  analysis.NewAggregator(extract.New(matcher), logger),
		Synthesizer: synth.NewSynthesizer(templates, logger),
		Templates:   templates,
		Metrics:     m,
		Logger:      logger,
	}

	client, err := llm.New(cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	if client != nil {
		deps.Analyzer = client
		if logger != nil {
			logger.Info("🤖 LLM analysis enabled",
				zap.String("provider", client.Provider()),
				zap.String("model", client.Model()),
			)
		}
	} else if logger != nil {
		logger.Warn("⚠️ No LLM configured; minutes will use pattern analysis")
	}

	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		a.redis = rdb
		deps.Cache = cache.NewRedisStore(rdb, cfg.Redis.KeyPrefix)
		deps.History = repository.NewRedisHistoryRepository(rdb, cfg.Redis.KeyPrefix, cfg.Redis.HistoryLimit)
	} else {
		deps.Cache = cache.NewMemoryStore()
		deps.History = repository.NewMemoryHistoryRepository(cfg.Redis.HistoryLimit)
	}

	switch cfg.Storage.Backend {
	case "minio":
		store, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.Storage = store
	default:
		store, err := storage.NewLocalStore(cfg.Storage.BaseDir)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.Storage = store
	}
	deps.Documents = a.Storage

	if t := transcription.NewAssemblyAIClient(cfg.Assembly, logger); t != nil {
		deps.Transcriber = t
	}

	a.Service = minutes.NewService(deps, minutes.Settings{
		NormalizeNames: cfg.Processing.NormalizeNames,
		DefaultMode:    minutes.Mode(cfg.Processing.DefaultMode),
		CacheTTL:       cfg.LLM.CacheTTL,
		Fallback:       cfg.LLM.Fallback,
		PreviewChars:   cfg.Processing.PreviewChars,
	})
	return a, nil
}

// templateSources returns the configured template sources, or nil when none
// are configured so documents are assembled directly without a fallback.
func templateSources(cfg config.TemplateConfig, logger *zap.Logger) repositories.TemplateRepository {
	var sources template.Chain
	if cfg.BaseURL != "" {
		sources = append(sources, template.NewHTTPSource(cfg.BaseURL, cfg.Timeout, cfg.MaxRetries, logger))
	}
	if cfg.Dir != "" {
		sources = append(sources, template.NewDirSource(cfg.Dir))
	}
	if len(sources) == 0 {
		return nil
	}
	return sources
}

// Close releases network connections
func (a *App) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}
