package app

import (
	"context"
	"log/slog"

	"github.com/amirasaad/onboarding/pkg/domain/events"
	"github.com/amirasaad/onboarding/pkg/eventbus"
)

// auditHandler writes one structured line per lifecycle event.
func auditHandler(logger *slog.Logger) eventbus.HandlerFunc {
	log := logger.With("component", "audit")
	return func(_ context.Context, e events.Event) error {
		attrs := []any{"type", e.Type()}
		switch ev := e.(type) {
		case *events.DraftSaved:
			attrs = append(attrs, "request_id", ev.RequestID, "has_document", ev.HasDocument)
		case *events.DraftUpdated:
			attrs = append(attrs, "request_id", ev.RequestID, "has_document", ev.HasDocument)
		case *events.Submitted:
			attrs = append(attrs, "request_id", ev.RequestID, "account_type", ev.AccountType, "from_draft", ev.FromDraft)
		}
		log.Info("account request event", attrs...)
		return nil
	}
}
