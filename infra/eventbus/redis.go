package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/onboarding/pkg/domain/events"
	"github.com/amirasaad/onboarding/pkg/eventbus"
	"github.com/redis/go-redis/v9"
)

// RedisEventBus publishes events to a Redis stream and consumes them through
// a consumer group. Messages whose handler fails are copied to <stream>-DLQ.
type RedisEventBus struct {
	client   *redis.Client
	stream   string
	group    string
	consumer string
	types    map[events.EventType]func() events.Event
	logger   *slog.Logger

	mu       sync.RWMutex
	handlers map[events.EventType][]eventbus.HandlerFunc
	start    sync.Once
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewWithRedis connects to url and ensures the consumer group exists.
func NewWithRedis(url, stream, group string, logger *slog.Logger) (*RedisEventBus, error) {
	if url == "" || stream == "" || group == "" {
		return nil, fmt.Errorf("redis event bus: url, stream, and group are required")
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis event bus: invalid URL: %w", err)
	}
	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis event bus: connection failed: %w", err)
	}
	if err := client.XGroupCreateMkStream(ctx, stream, group, "0").Err(); err != nil &&
		!strings.HasPrefix(err.Error(), "BUSYGROUP") {
		_ = client.Close()
		return nil, fmt.Errorf("redis event bus: create group: %w", err)
	}
	host, _ := os.Hostname()
	return &RedisEventBus{
		client:   client,
		stream:   stream,
		group:    group,
		consumer: fmt.Sprintf("%s-%d", host, time.Now().UnixNano()),
		types:    events.EventTypes,
		logger:   logger.With("component", "redis-event-bus"),
		handlers: make(map[events.EventType][]eventbus.HandlerFunc),
		done:     make(chan struct{}),
	}, nil
}

// Emit appends event to the stream.
func (b *RedisEventBus) Emit(ctx context.Context, event events.Event) error {
	data, err := encode(event)
	if err != nil {
		return fmt.Errorf("redis event bus: %w", err)
	}
	if err := b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: b.stream,
		Values: map[string]any{"event": string(data)},
	}).Err(); err != nil {
		b.logger.Error("failed to emit event", "error", err, "type", event.Type())
		return fmt.Errorf("redis event bus: emit failed: %w", err)
	}
	b.logger.Debug("event emitted", "type", event.Type())
	return nil
}

// Register adds handler for eventType. The first registration starts the
// consumer loop.
func (b *RedisEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.mu.Unlock()
	b.logger.Info("handler registered", "event_type", eventType, "consumer", b.consumer)

	b.start.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		b.cancel = cancel
		go b.consume(ctx)
	})
}

// Close stops the consumer loop and closes the client.
func (b *RedisEventBus) Close() error {
	if b.cancel != nil {
		b.cancel()
		<-b.done
	}
	return b.client.Close()
}

func (b *RedisEventBus) consume(ctx context.Context) {
	defer close(b.done)
	for {
		res, err := b.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    b.group,
			Consumer: b.consumer,
			Streams:  []string{b.stream, ">"},
			Count:    10,
			Block:    5 * time.Second,
		}).Result()
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			if !errors.Is(err, redis.Nil) {
				b.logger.Error("error reading from stream", "error", err)
				time.Sleep(time.Second)
			}
			continue
		}
		for _, stream := range res {
			for _, msg := range stream.Messages {
				b.handle(ctx, msg)
			}
		}
	}
}

func (b *RedisEventBus) handle(ctx context.Context, msg redis.XMessage) {
	defer func() {
		if err := b.client.XAck(ctx, b.stream, b.group, msg.ID).Err(); err != nil {
			b.logger.Error("failed to acknowledge message", "error", err, "msg_id", msg.ID)
		}
	}()

	raw, ok := msg.Values["event"].(string)
	if !ok {
		b.pushToDLQ(ctx, msg.Values)
		return
	}
	evt, err := decode([]byte(raw), b.types)
	if err != nil {
		b.logger.Error("failed to decode event", "error", err, "msg_id", msg.ID)
		b.pushToDLQ(ctx, msg.Values)
		return
	}

	b.mu.RLock()
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[events.EventType(evt.Type())]...)
	b.mu.RUnlock()
	for _, handler := range handlers {
		if err := safeCall(ctx, handler, evt); err != nil {
			b.logger.Error("handler error", "error", err, "event_type", evt.Type())
			b.pushToDLQ(ctx, msg.Values)
		}
	}
}

func (b *RedisEventBus) pushToDLQ(ctx context.Context, values map[string]any) {
	dlq := b.stream + "-DLQ"
	if err := b.client.XAdd(ctx, &redis.XAddArgs{Stream: dlq, Values: values}).Err(); err != nil {
		b.logger.Error("failed to push to DLQ", "error", err, "stream", dlq)
		return
	}
	b.logger.Warn("event pushed to DLQ", "stream", dlq)
}

// safeCall runs handler, converting a panic into an error.
func safeCall(ctx context.Context, handler eventbus.HandlerFunc, evt events.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return handler(ctx, evt)
}

var _ eventbus.Bus = (*RedisEventBus)(nil)
