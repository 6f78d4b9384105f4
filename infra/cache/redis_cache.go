package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/onboarding/pkg/cache"
	"github.com/amirasaad/onboarding/pkg/domain/registration"
	"github.com/redis/go-redis/v9"
)

// RedisCache implements cache.RequestCache as JSON values under prefix+id.
type RedisCache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisCache creates a RedisCache from redis.Options.
func NewRedisCache(opt *redis.Options, prefix string, logger *slog.Logger) *RedisCache {
	return &RedisCache{client: redis.NewClient(opt), prefix: prefix, logger: logger}
}

// Ping checks connectivity.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (r *RedisCache) Close() error {
	return r.client.Close()
}

func (r *RedisCache) key(requestID string) string {
	return r.prefix + "request:" + requestID
}

func (r *RedisCache) Get(ctx context.Context, requestID string) (*registration.AccountRequest, bool, error) {
	val, err := r.client.Get(ctx, r.key(requestID)).Bytes()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis cache miss", "request_id", requestID)
		return nil, false, nil
	}
	if err != nil {
		r.logger.Error("Redis cache get error", "request_id", requestID, "error", err)
		return nil, false, err
	}
	var req registration.AccountRequest
	if err := json.Unmarshal(val, &req); err != nil {
		r.logger.Error("Redis cache unmarshal error", "request_id", requestID, "error", err)
		return nil, false, err
	}
	r.logger.Debug("Redis cache hit", "request_id", requestID)
	return &req, true, nil
}

func (r *RedisCache) Set(ctx context.Context, req *registration.AccountRequest, ttl time.Duration) error {
	data, err := json.Marshal(req)
	if err != nil {
		r.logger.Error("Redis cache marshal error", "request_id", req.RequestID, "error", err)
		return err
	}
	if err := r.client.Set(ctx, r.key(req.RequestID), data, ttl).Err(); err != nil {
		r.logger.Error("Redis cache set error", "request_id", req.RequestID, "error", err)
		return err
	}
	r.logger.Debug("Redis cache set", "request_id", req.RequestID, "ttl", ttl)
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, requestID string) error {
	if err := r.client.Del(ctx, r.key(requestID)).Err(); err != nil {
		r.logger.Error("Redis cache delete error", "request_id", requestID, "error", err)
		return err
	}
	return nil
}

var _ cache.RequestCache = (*RedisCache)(nil)
