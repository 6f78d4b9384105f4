package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	infra_eventbus "github.com/amirasaad/onboarding/infra/eventbus"
	"github.com/amirasaad/onboarding/pkg/domain/events"
	"github.com/amirasaad/onboarding/pkg/domain/registration"
)

// RunSmokeTest emits one of each registration event through the Kafka bus
// and waits until every one is consumed back.
func RunSmokeTest() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	brokers := strings.TrimSpace(os.Getenv("BROKERS"))
	if brokers == "" {
		brokers = "localhost:9093,localhost:9092"
	}
	groupID := strings.TrimSpace(os.Getenv("GROUP_ID"))
	if groupID == "" {
		groupID = "onboarding-smoketest"
	}

	bus, err := infra_eventbus.NewWithKafka(brokers, "onboarding.smoketest", groupID, logger)
	if err != nil {
		logger.Error("kafka bus unavailable", "error", err)
		return err
	}
	defer func() { _ = bus.Close() }()

	received := make(chan string, len(events.EventTypes))
	for et := range events.EventTypes {
		bus.Register(et, func(_ context.Context, e events.Event) error {
			received <- e.Type()
			return nil
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now().UTC()
	req := &registration.AccountRequest{
		RequestID: "SMKE-0101",
		Status:    registration.StatusDraft,
		Name:      "Smoke Test",
	}
	for _, e := range []events.Event{
		events.NewDraftSaved(req, now),
		events.NewDraftUpdated(req, now),
		events.NewSubmitted(req, true, now),
	} {
		if err := bus.Emit(ctx, e); err != nil {
			logger.Error("emit failed", "type", e.Type(), "error", err)
			return err
		}
		logger.Info("produced", "type", e.Type())
	}

	for seen := 0; seen < len(events.EventTypes); seen++ {
		select {
		case t := <-received:
			logger.Info("consumed", "type", t)
		case <-ctx.Done():
			return fmt.Errorf("timed out after %d of %d events", seen, len(events.EventTypes))
		}
	}

	logger.Info("kafka smoke test passed")
	return nil
}

// main runs the smoke test and exits non-zero on failure.
func main() {
	if err := RunSmokeTest(); err != nil {
		os.Exit(1)
	}
}
