package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the first env file found among envFilePath (searching parent
// directories), then builds the configuration from the environment.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Info("Loading environment variables")

	for _, path := range envFilePath {
		logger.Debug("Looking for environment file", "path", path)
		foundPath, err := FindEnvTest(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Info("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found in current directory")
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.EventBus.Driver == "" {
		cfg.EventBus.Driver = "memory"
	}
	if cfg.EventBus.RedisURL == "" {
		cfg.EventBus.RedisURL = cfg.Redis.URL
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"db_driver", cfg.DB.Driver,
		"db", maskValue(cfg.DB.Url),
		"upload_dir", cfg.Storage.UploadDir,
		"max_upload_bytes", cfg.Storage.MaxUploadBytes,
		"redis", maskValue(cfg.Redis.URL),
		"cache_driver", cfg.Cache.Driver,
		"cache_ttl", cfg.Cache.TTL,
		"event_bus_driver", cfg.EventBus.Driver,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}

func maskValue(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
