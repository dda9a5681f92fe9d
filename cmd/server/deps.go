package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-technique-api/internal/catalog"
	"github.com/KirkDiggler/rpg-technique-api/internal/config"
	"github.com/KirkDiggler/rpg-technique-api/internal/engine"
	"github.com/KirkDiggler/rpg-technique-api/internal/metrics"
	"github.com/KirkDiggler/rpg-technique-api/internal/orchestrators/technique"
	"github.com/KirkDiggler/rpg-technique-api/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-technique-api/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-technique-api/internal/redis"
	techniquedraft "github.com/KirkDiggler/rpg-technique-api/internal/repositories/technique_draft"
)

const redisPingTimeout = 5 * time.Second

type dependencies struct {
	techniqueService technique.Service
	metrics          *metrics.Recorder
}

// buildDependencies wires the service graph. The cleanup function releases
// connections and must be called once the server stopped.
func buildDependencies(ctx context.Context, cfg *config.Config) (*dependencies, func(), error) {
	cleanup := func() {}

	effects, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, cleanup, err
	}

	clk := clock.New()

	repo, repoCleanup, err := buildRepository(ctx, cfg, clk)
	if err != nil {
		return nil, cleanup, err
	}
	cleanup = repoCleanup

	eng, err := engine.New(&engine.Config{
		IDGenerator: idgen.NewShort(),
		Effects:     effects,
	})
	if err != nil {
		return nil, cleanup, fmt.Errorf("failed to create engine: %w", err)
	}

	recorder := metrics.New()

	service, err := technique.NewOrchestrator(&technique.Config{
		Repository:  repo,
		Catalog:     effects,
		Engine:      eng,
		IDGenerator: idgen.NewUUID("tech"),
		Clock:       clk,
		EventBus:    newEventBus(),
		Metrics:     recorder,
		DraftTTL:    cfg.DraftTTL,
	})
	if err != nil {
		return nil, cleanup, fmt.Errorf("failed to create technique orchestrator: %w", err)
	}

	return &dependencies{
		techniqueService: service,
		metrics:          recorder,
	}, cleanup, nil
}

func loadCatalog(path string) (*catalog.Static, error) {
	if path == "" {
		c, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded catalog: %w", err)
		}
		return c, nil
	}

	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Printf("Loaded %d effects from %s", len(c.Effects()), path)
	return c, nil
}

func buildRepository(
	ctx context.Context,
	cfg *config.Config,
	clk clock.Clock,
) (techniquedraft.Repository, func(), error) {
	noop := func() {}

	if cfg.Store != config.StoreRedis {
		return techniquedraft.NewInMemory(clk), noop, nil
	}

	client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		DB:          cfg.RedisDB,
		DialTimeout: redisPingTimeout,
	})
	if err != nil {
		return nil, noop, fmt.Errorf("failed to create redis client: %w", err)
	}
	closeClient := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	if err := redis.Ping(ctx, client, redisPingTimeout); err != nil {
		closeClient()
		return nil, noop, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}

	repo, err := techniquedraft.NewRedisRepository(&techniquedraft.RedisConfig{
		Client: client,
		Clock:  clk,
	})
	if err != nil {
		closeClient()
		return nil, noop, fmt.Errorf("failed to create redis repository: %w", err)
	}

	return repo, closeClient, nil
}

// newEventBus returns a bus that logs every technique event at debug level
func newEventBus() events.EventBus {
	bus := events.NewBus()
	for _, eventType := range technique.EventTypes() {
		bus.SubscribeFunc(eventType, 0, func(ctx context.Context, e events.Event) error {
			slog.DebugContext(ctx, "Technique event",
				"event", e.Type(),
				"technique_id", e.Source().GetID(),
			)
			return nil
		})
	}
	return bus
}
