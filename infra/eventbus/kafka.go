package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/onboarding/pkg/domain/events"
	"github.com/amirasaad/onboarding/pkg/eventbus"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const defaultTopicPrefix = "onboarding.events"

// KafkaEventBus publishes each event type to its own topic,
// <prefix>.<event type>, and consumes through one reader per registered
// type. Messages whose handlers fail go to <prefix>.dlq.<event type>.
type KafkaEventBus struct {
	brokers []string
	prefix  string
	groupID string
	writer  messageWriter
	dialer  *kafka.Dialer
	logger  *slog.Logger

	handlersMtx sync.RWMutex
	handlers    map[events.EventType][]eventbus.HandlerFunc

	readersMtx sync.Mutex
	readers    map[events.EventType]*kafka.Reader

	topicsMtx sync.Mutex
	topics    map[string]struct{}

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewWithKafka dials the first broker and returns a ready bus.
// brokers is a comma-separated list.
func NewWithKafka(brokers, topicPrefix, groupID string, logger *slog.Logger) (*KafkaEventBus, error) {
	parsed := parseBrokers(brokers)
	if len(parsed) == 0 {
		return nil, fmt.Errorf("kafka event bus: brokers are required")
	}
	if strings.TrimSpace(topicPrefix) == "" {
		topicPrefix = defaultTopicPrefix
	}
	if groupID == "" {
		groupID = "onboarding"
	}
	dialer := &kafka.Dialer{Timeout: 5 * time.Second}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(parsed...),
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		Balancer:               &kafka.Hash{},
	}
	bus := newKafkaBus(parsed, topicPrefix, groupID, writer, logger)
	bus.dialer = dialer

	conn, err := dialer.DialContext(bus.ctx, "tcp", parsed[0])
	if err != nil {
		_ = bus.Close()
		return nil, fmt.Errorf("kafka event bus: connection failed: %w", err)
	}
	_ = conn.Close()

	bus.logger.Info("kafka event bus initialized", "brokers", parsed, "group_id", groupID, "topic_prefix", topicPrefix)
	return bus, nil
}

func newKafkaBus(brokers []string, prefix, groupID string, w messageWriter, logger *slog.Logger) *KafkaEventBus {
	ctx, cancel := context.WithCancel(context.Background())
	return &KafkaEventBus{
		brokers:  brokers,
		prefix:   prefix,
		groupID:  groupID,
		writer:   w,
		logger:   logger.With("bus", "kafka"),
		handlers: make(map[events.EventType][]eventbus.HandlerFunc),
		readers:  make(map[events.EventType]*kafka.Reader),
		topics:   make(map[string]struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Close stops the consumers and flushes the writer.
func (b *KafkaEventBus) Close() error {
	b.cancel()
	b.readersMtx.Lock()
	for _, r := range b.readers {
		_ = r.Close()
	}
	b.readersMtx.Unlock()
	b.wg.Wait()
	return b.writer.Close()
}

func (b *KafkaEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.handlersMtx.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.handlersMtx.Unlock()
	b.ensureConsumer(eventType)
}

// Emit writes event to its topic. Messages are keyed by a fresh UUID so
// they spread across partitions.
func (b *KafkaEventBus) Emit(ctx context.Context, event events.Event) error {
	value, err := encode(event)
	if err != nil {
		return fmt.Errorf("kafka event bus: %w", err)
	}
	topic := topicNameFor(b.prefix, events.EventType(event.Type()))
	if err := b.ensureTopic(ctx, topic); err != nil {
		return err
	}
	if err := b.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(uuid.NewString()),
		Value: value,
		Time:  time.Now(),
	}); err != nil {
		return fmt.Errorf("kafka event bus: publish failed: %w", err)
	}
	return nil
}

func (b *KafkaEventBus) ensureConsumer(eventType events.EventType) {
	b.readersMtx.Lock()
	defer b.readersMtx.Unlock()
	if _, ok := b.readers[eventType]; ok {
		return
	}
	topic := topicNameFor(b.prefix, eventType)
	if err := b.ensureTopic(b.ctx, topic); err != nil {
		b.logger.Error("kafka ensure topic error", "error", err, "event_type", eventType)
		return
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     b.brokers,
		GroupID:     b.groupID,
		Topic:       topic,
		StartOffset: kafka.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
		MaxWait:     time.Second,
		Dialer:      b.dialer,
	})
	b.readers[eventType] = reader

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.consumeLoop(reader)
	}()
}

func (b *KafkaEventBus) consumeLoop(reader *kafka.Reader) {
	for {
		msg, err := reader.FetchMessage(b.ctx)
		if err != nil {
			if b.ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			b.logger.Error("kafka consume error", "error", err, "topic", reader.Config().Topic)
			time.Sleep(500 * time.Millisecond)
			continue
		}
		commit, err := b.process(b.ctx, msg)
		if err != nil {
			b.logger.Error("kafka message processing failed; will retry", "error", err, "topic", msg.Topic, "offset", msg.Offset)
		}
		if !commit {
			time.Sleep(500 * time.Millisecond)
			continue
		}
		if err := reader.CommitMessages(b.ctx, msg); err != nil {
			b.logger.Error("kafka commit error", "error", err, "topic", msg.Topic, "offset", msg.Offset)
		}
	}
}

// process dispatches msg and reports whether its offset may be committed.
// Undecodable messages are committed and dropped.
func (b *KafkaEventBus) process(ctx context.Context, msg kafka.Message) (bool, error) {
	evt, err := decode(msg.Value, events.EventTypes)
	if err != nil {
		b.logger.Error("failed to decode event", "error", err, "topic", msg.Topic, "offset", msg.Offset)
		return true, nil
	}
	eventType := events.EventType(evt.Type())

	b.handlersMtx.RLock()
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[eventType]...)
	b.handlersMtx.RUnlock()

	failed := false
	for _, handler := range handlers {
		if err := safeCall(ctx, handler, evt); err != nil {
			failed = true
			b.logger.Error("handler error", "error", err, "event_type", eventType, "offset", msg.Offset)
		}
	}
	if !failed {
		return true, nil
	}
	if err := b.publishToDLQ(ctx, eventType, msg.Value); err != nil {
		return false, err
	}
	return true, nil
}

func (b *KafkaEventBus) publishToDLQ(ctx context.Context, eventType events.EventType, raw []byte) error {
	topic := dlqTopicNameFor(b.prefix, eventType)
	if err := b.ensureTopic(ctx, topic); err != nil {
		return err
	}
	if err := b.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(eventType.String()),
		Value: raw,
		Time:  time.Now(),
	}); err != nil {
		return fmt.Errorf("kafka event bus: dlq publish failed: %w", err)
	}
	b.logger.Warn("message sent to DLQ", "event_type", eventType, "dlq_topic", topic)
	return nil
}

func (b *KafkaEventBus) ensureTopic(ctx context.Context, topic string) error {
	b.topicsMtx.Lock()
	_, known := b.topics[topic]
	b.topicsMtx.Unlock()
	if known || b.dialer == nil {
		return nil
	}

	conn, err := b.dialer.DialContext(ctx, "tcp", b.brokers[0])
	if err != nil {
		return fmt.Errorf("kafka event bus: dial failed: %w", err)
	}
	defer func() { _ = conn.Close() }()

	err = conn.CreateTopics(kafka.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1})
	if err != nil && !errors.Is(err, kafka.TopicAlreadyExists) {
		return fmt.Errorf("kafka event bus: create topic failed: %w", err)
	}

	b.topicsMtx.Lock()
	b.topics[topic] = struct{}{}
	b.topicsMtx.Unlock()
	return nil
}

func parseBrokers(brokers string) []string {
	var out []string
	for _, p := range strings.Split(brokers, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func topicNameFor(prefix string, eventType events.EventType) string {
	return fmt.Sprintf("%s.%s", prefix, strings.ToLower(eventType.String()))
}

func dlqTopicNameFor(prefix string, eventType events.EventType) string {
	return fmt.Sprintf("%s.dlq.%s", prefix, strings.ToLower(eventType.String()))
}

var _ eventbus.Bus = (*KafkaEventBus)(nil)
