package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirasaad/onboarding/infra/initializer"
	"github.com/amirasaad/onboarding/pkg/app"
	"github.com/amirasaad/onboarding/pkg/config"
	"github.com/amirasaad/onboarding/webapi"
	log "github.com/charmbracelet/log"
)

// @title Onboarding API
// @version 1.0.0
// @description Bank account registration API: drafts, submission and ID document storage
// @contact.name API Support
// @license.name MIT
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger
	defer closeDeps(deps, logger)

	// Create the application and wire the routes
	fiberApp := webapi.SetupApp(app.New(deps, cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)

	errCh := make(chan error, 1)
	go func() { errCh <- fiberApp.Listen(addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return fiberApp.ShutdownWithContext(shutdownCtx)
}

type closer interface{ Close() error }

type stopper interface{ Close() }

// closeDeps releases whatever the initializer opened.
func closeDeps(deps *app.Deps, logger *slog.Logger) {
	if w, ok := deps.EventBus.(interface{ Wait() }); ok {
		w.Wait()
	}
	for name, dep := range map[string]any{
		"event bus":  deps.EventBus,
		"cache":      deps.Cache,
		"file store": deps.FileStore,
	} {
		switch c := dep.(type) {
		case closer:
			if err := c.Close(); err != nil {
				logger.Warn("Failed to close dependency", "dependency", name, "error", err)
			}
		case stopper:
			c.Close()
		}
	}
}
