package eventbus

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/amirasaad/onboarding/pkg/domain/events"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	mu   sync.Mutex
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func newTestKafkaBus(w messageWriter) *KafkaEventBus {
	return newKafkaBus([]string{"localhost:9092"}, "test.events", "test", w, discardLogger())
}

func TestKafkaEventBus_EmitWritesToTypedTopic(t *testing.T) {
	w := &recordingWriter{}
	bus := newTestKafkaBus(w)

	require.NoError(t, bus.Emit(context.Background(), submitted("ABCDE0124")))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "test.events.registration.submitted", w.msgs[0].Topic)
	assert.NotEmpty(t, w.msgs[0].Key)

	evt, err := decode(w.msgs[0].Value, events.EventTypes)
	require.NoError(t, err)
	assert.Equal(t, "ABCDE0124", evt.(*events.Submitted).RequestID)
}

func TestKafkaEventBus_EmitWriterError(t *testing.T) {
	bus := newTestKafkaBus(&recordingWriter{err: errors.New("broker down")})
	assert.ErrorContains(t, bus.Emit(context.Background(), submitted("X")), "publish failed")
}

func TestKafkaEventBus_Process(t *testing.T) {
	raw, err := encode(submitted("ABCDE0124"))
	require.NoError(t, err)

	t.Run("handler success commits", func(t *testing.T) {
		w := &recordingWriter{}
		bus := newTestKafkaBus(w)
		var seen string
		bus.handlers[events.EventTypeSubmitted] = append(bus.handlers[events.EventTypeSubmitted],
			func(_ context.Context, e events.Event) error {
				seen = e.(*events.Submitted).RequestID
				return nil
			})
		commit, err := bus.process(context.Background(), kafka.Message{Value: raw})
		require.NoError(t, err)
		assert.True(t, commit)
		assert.Equal(t, "ABCDE0124", seen)
		assert.Empty(t, w.msgs)
	})

	t.Run("handler failure goes to dlq", func(t *testing.T) {
		w := &recordingWriter{}
		bus := newTestKafkaBus(w)
		bus.handlers[events.EventTypeSubmitted] = append(bus.handlers[events.EventTypeSubmitted],
			func(context.Context, events.Event) error { panic("bad") })
		commit, err := bus.process(context.Background(), kafka.Message{Value: raw})
		require.NoError(t, err)
		assert.True(t, commit)
		require.Len(t, w.msgs, 1)
		assert.Equal(t, "test.events.dlq.registration.submitted", w.msgs[0].Topic)
	})

	t.Run("dlq failure retries", func(t *testing.T) {
		bus := newTestKafkaBus(&recordingWriter{err: errors.New("down")})
		bus.handlers[events.EventTypeSubmitted] = append(bus.handlers[events.EventTypeSubmitted],
			func(context.Context, events.Event) error { return errors.New("nope") })
		commit, err := bus.process(context.Background(), kafka.Message{Value: raw})
		assert.Error(t, err)
		assert.False(t, commit)
	})

	t.Run("garbage is dropped", func(t *testing.T) {
		bus := newTestKafkaBus(&recordingWriter{})
		commit, err := bus.process(context.Background(), kafka.Message{Value: []byte("{")})
		require.NoError(t, err)
		assert.True(t, commit)
	})
}

func TestParseBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:1", "b:2"}, parseBrokers(" a:1, ,b:2 "))
	assert.Empty(t, parseBrokers(""))
}

func TestNewWithKafka_RequiresBrokers(t *testing.T) {
	_, err := NewWithKafka(" , ", "", "", discardLogger())
	assert.ErrorContains(t, err, "brokers are required")
}
