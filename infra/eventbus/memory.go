package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amirasaad/onboarding/pkg/domain/events"
	"github.com/amirasaad/onboarding/pkg/eventbus"
)

// historyLimit bounds the events a MemoryEventBus keeps for Published.
const historyLimit = 256

// MemoryEventBus dispatches synchronously in the emitting goroutine and
// records the most recent emitted events.
type MemoryEventBus struct {
	handlers  map[events.EventType][]eventbus.HandlerFunc
	mu        sync.RWMutex
	logger    *slog.Logger
	published []events.Event
}

// NewWithMemory creates a synchronous in-memory bus.
func NewWithMemory(logger *slog.Logger) *MemoryEventBus {
	return &MemoryEventBus{
		handlers: make(map[events.EventType][]eventbus.HandlerFunc),
		logger:   logger.With("bus", "memory"),
	}
}

func (b *MemoryEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit runs every handler for event and returns the first handler error.
func (b *MemoryEventBus) Emit(ctx context.Context, event events.Event) error {
	b.mu.Lock()
	if len(b.published) == historyLimit {
		copy(b.published, b.published[1:])
		b.published = b.published[:historyLimit-1]
	}
	b.published = append(b.published, event)
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[events.EventType(event.Type())]...)
	b.mu.Unlock()

	var first error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			b.logger.Error("failed to process event", "type", event.Type(), "error", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// Published returns a copy of the last emitted events, oldest first.
func (b *MemoryEventBus) Published() []events.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]events.Event(nil), b.published...)
}

var _ eventbus.Bus = (*MemoryEventBus)(nil)

type queued struct {
	ctx   context.Context
	event events.Event
}

// MemoryAsyncEventBus queues events and dispatches them on background
// goroutines. Handler errors and panics are logged.
type MemoryAsyncEventBus struct {
	handlers map[events.EventType][]eventbus.HandlerFunc
	mu       sync.RWMutex
	eventCh  chan queued
	wg       sync.WaitGroup
	log      *slog.Logger
}

// NewWithMemoryAsync creates an asynchronous in-memory bus.
func NewWithMemoryAsync(logger *slog.Logger) *MemoryAsyncEventBus {
	b := &MemoryAsyncEventBus{
		handlers: make(map[events.EventType][]eventbus.HandlerFunc),
		eventCh:  make(chan queued, 100),
		log:      logger.With("bus", "memory-async"),
	}
	go b.process()
	return b
}

func (b *MemoryAsyncEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.mu.Unlock()
}

// Emit enqueues event. The handler context is detached from ctx
// cancellation so a finished HTTP request does not abort its handlers.
func (b *MemoryAsyncEventBus) Emit(ctx context.Context, event events.Event) error {
	b.wg.Add(1)
	select {
	case b.eventCh <- queued{ctx: context.WithoutCancel(ctx), event: event}:
		return nil
	case <-ctx.Done():
		b.wg.Done()
		return ctx.Err()
	}
}

// Wait blocks until every queued event has been handled.
func (b *MemoryAsyncEventBus) Wait() { b.wg.Wait() }

func (b *MemoryAsyncEventBus) process() {
	for w := range b.eventCh {
		go b.dispatch(w)
	}
}

func (b *MemoryAsyncEventBus) dispatch(w queued) {
	defer b.wg.Done()
	b.mu.RLock()
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[events.EventType(w.event.Type())]...)
	b.mu.RUnlock()
	for _, handler := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					b.log.Error("panic recovered in event handler", "type", w.event.Type(), "panic", r)
				}
			}()
			if err := handler(w.ctx, w.event); err != nil {
				b.log.Error("failed to process event", "type", w.event.Type(), "error", err)
			}
		}()
	}
}

var _ eventbus.Bus = (*MemoryAsyncEventBus)(nil)
