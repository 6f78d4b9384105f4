//go:build integration

package eventbus

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/onboarding/pkg/domain/events"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(tb testing.TB) string {
	tb.Helper()
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7.0.5",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(tb, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(tb, err)
	return "redis://" + host + ":" + port.Port()
}

func TestRedisEventBus_HandlerReceivesEvent(t *testing.T) {
	url := setupRedis(t)
	bus, err := NewWithRedis(url, "test:events", "test", discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = bus.Close() })

	received := make(chan string, 1)
	bus.Register(events.EventTypeSubmitted, func(_ context.Context, e events.Event) error {
		received <- e.(*events.Submitted).RequestID
		return nil
	})
	require.NoError(t, bus.Emit(context.Background(), submitted("ABCDE0124")))

	select {
	case id := <-received:
		require.Equal(t, "ABCDE0124", id)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestRedisEventBus_FailedHandlerGoesToDLQ(t *testing.T) {
	url := setupRedis(t)
	bus, err := NewWithRedis(url, "test:events", "test", discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = bus.Close() })

	bus.Register(events.EventTypeSubmitted, func(context.Context, events.Event) error {
		panic("boom")
	})
	require.NoError(t, bus.Emit(context.Background(), submitted("X")))

	opt, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opt)
	defer client.Close()
	require.Eventually(t, func() bool {
		n, err := client.XLen(context.Background(), "test:events-DLQ").Result()
		return err == nil && n == 1
	}, 10*time.Second, 100*time.Millisecond)
}

func TestNewWithRedis_Validation(t *testing.T) {
	_, err := NewWithRedis("", "s", "g", discardLogger())
	require.Error(t, err)
	_, err = NewWithRedis("not-a-url", "s", "g", discardLogger())
	require.ErrorContains(t, err, "invalid URL")
}
