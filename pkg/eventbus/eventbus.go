// Package eventbus defines the publish/subscribe contract for domain events.
package eventbus

import (
	"context"

	"github.com/amirasaad/onboarding/pkg/domain/events"
)

// HandlerFunc processes a single event.
type HandlerFunc func(ctx context.Context, e events.Event) error

// Bus publishes events and dispatches them to registered handlers.
type Bus interface {
	Emit(ctx context.Context, event events.Event) error
	Register(eventType events.EventType, handler HandlerFunc)
}
