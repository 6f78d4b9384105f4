package initializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/onboarding/infra"
	infra_cache "github.com/amirasaad/onboarding/infra/cache"
	infra_eventbus "github.com/amirasaad/onboarding/infra/eventbus"
	infra_storage "github.com/amirasaad/onboarding/infra/storage"
	"github.com/amirasaad/onboarding/pkg/app"
	"github.com/amirasaad/onboarding/pkg/cache"
	"github.com/amirasaad/onboarding/pkg/config"
	"github.com/amirasaad/onboarding/pkg/eventbus"
	"github.com/amirasaad/onboarding/pkg/metrics"
	"github.com/amirasaad/onboarding/pkg/requestid"
	"github.com/redis/go-redis/v9"
)

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := SetupLogger(cfg.Log)
	deps.Logger = logger
	deps.Metrics = metrics.New()
	deps.IDGenerator = requestid.NewDefault()

	// Initialize database
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env, logger)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}

	// Initialize unit of work
	deps.Uow = infra.NewUoW(db)

	// Initialize document storage
	store, err := infra_storage.NewLocalStore(cfg.Storage.UploadDir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize document storage: %w", err)
	}
	deps.FileStore = store

	deps.Cache, err = initCache(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	deps.EventBus, err = initEventBus(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}

	return
}

func initEventBus(cfg *config.App, logger *slog.Logger) (eventbus.Bus, error) {
	ebCfg := cfg.EventBus
	if ebCfg == nil {
		ebCfg = &config.EventBus{}
	}

	switch strings.ToLower(strings.TrimSpace(ebCfg.Driver)) {
	case "", "memory", "memory-async":
		return infra_eventbus.NewWithMemoryAsync(logger), nil
	case "memory-sync":
		return infra_eventbus.NewWithMemory(logger), nil
	case "redis":
		url := ebCfg.RedisURL
		if url == "" && cfg.Redis != nil {
			url = cfg.Redis.URL
		}
		if url == "" {
			return nil, fmt.Errorf("event bus driver redis requires EVENT_BUS_REDIS_URL or REDIS_URL")
		}
		bus, err := infra_eventbus.NewWithRedis(url, withDefault(ebCfg.Stream, "onboarding:events"), withDefault(ebCfg.Group, "onboarding"), logger)
		if err != nil {
			logger.Warn("Redis event bus unavailable, falling back to in-memory", "error", err)
			return infra_eventbus.NewWithMemoryAsync(logger), nil
		}
		return bus, nil
	case "kafka":
		if strings.TrimSpace(ebCfg.KafkaBrokers) == "" {
			return nil, fmt.Errorf("event bus driver kafka requires EVENT_BUS_KAFKA_BROKERS")
		}
		bus, err := infra_eventbus.NewWithKafka(ebCfg.KafkaBrokers, ebCfg.KafkaTopic, ebCfg.KafkaGroupID, logger)
		if err != nil {
			logger.Warn("Kafka event bus unavailable, falling back to in-memory", "error", err)
			return infra_eventbus.NewWithMemoryAsync(logger), nil
		}
		return bus, nil
	default:
		return nil, fmt.Errorf("unsupported event bus driver %q", ebCfg.Driver)
	}
}

func initCache(cfg *config.App, logger *slog.Logger) (cache.RequestCache, error) {
	cCfg := cfg.Cache
	if cCfg == nil {
		cCfg = &config.Cache{}
	}

	switch strings.ToLower(strings.TrimSpace(cCfg.Driver)) {
	case "none", "off":
		return nil, nil
	case "", "memory":
		return infra_cache.NewMemoryCache(time.Minute), nil
	case "redis":
		if cfg.Redis == nil || cfg.Redis.URL == "" {
			return nil, fmt.Errorf("cache driver redis requires REDIS_URL")
		}
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		opt.PoolSize = cfg.Redis.PoolSize
		opt.DialTimeout = cfg.Redis.DialTimeout
		opt.ReadTimeout = cfg.Redis.ReadTimeout
		opt.WriteTimeout = cfg.Redis.WriteTimeout

		c := infra_cache.NewRedisCache(opt, cfg.Redis.KeyPrefix, logger)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Ping(ctx); err != nil {
			logger.Warn("Redis cache unavailable, falling back to in-memory", "error", err)
			_ = c.Close()
			return infra_cache.NewMemoryCache(time.Minute), nil
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported cache driver %q", cCfg.Driver)
	}
}

func withDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
