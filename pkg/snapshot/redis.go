package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "fsm:snapshot:"

var _ Store[string] = (*RedisStore[string])(nil)

// RedisStore persists snapshots as JSON values in Redis, one key per
// instance id.
type RedisStore[S comparable] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// RedisOption configures a RedisStore.
type RedisOption func(*redisConfig)

type redisConfig struct {
	prefix string
	ttl    time.Duration
}

// WithKeyPrefix replaces the default "fsm:snapshot:" key prefix.
func WithKeyPrefix(prefix string) RedisOption {
	return func(cfg *redisConfig) {
		cfg.prefix = prefix
	}
}

// WithTTL sets an expiration on saved snapshots. Zero means no expiration.
func WithTTL(ttl time.Duration) RedisOption {
	return func(cfg *redisConfig) {
		cfg.ttl = ttl
	}
}

// NewRedisStore wraps an already-connected client. Closing the store closes
// the client.
func NewRedisStore[S comparable](client *redis.Client, opts ...RedisOption) *RedisStore[S] {
	cfg := redisConfig{prefix: defaultKeyPrefix}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &RedisStore[S]{client: client, prefix: cfg.prefix, ttl: cfg.ttl}
}

func (s *RedisStore[S]) key(id string) string {
	return s.prefix + id
}

func (s *RedisStore[S]) Save(ctx context.Context, id string, snap Snapshot[S]) error {
	if id == "" {
		return ErrEmptyID
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot %q: %w", id, err)
	}
	if err := s.client.Set(ctx, s.key(id), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save snapshot %q: %w", id, err)
	}
	return nil
}

func (s *RedisStore[S]) Load(ctx context.Context, id string) (Snapshot[S], error) {
	if id == "" {
		return Snapshot[S]{}, ErrEmptyID
	}
	payload, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Snapshot[S]{}, ErrNotFound
	}
	if err != nil {
		return Snapshot[S]{}, fmt.Errorf("load snapshot %q: %w", id, err)
	}
	var snap Snapshot[S]
	if err := json.Unmarshal(payload, &snap); err != nil {
		return Snapshot[S]{}, fmt.Errorf("decode snapshot %q: %w", id, err)
	}
	return snap, nil
}

func (s *RedisStore[S]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete snapshot %q: %w", id, err)
	}
	return nil
}

func (s *RedisStore[S]) Close() error {
	return s.client.Close()
}

// RedisConfig carries connection settings for OpenRedis.
type RedisConfig struct {
	ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

// OpenRedis connects to Redis with retries and wraps the client in a store.
func OpenRedis[S comparable](ctx context.Context, cfg RedisConfig, opts ...RedisOption) (*RedisStore[S], error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	connOpt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisURL, err)
	}

	for range cfg.RetryAttempts {
		client := redis.NewClient(connOpt)
		if err := client.Ping(ctx).Err(); err == nil {
			return NewRedisStore[S](client, opts...), nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		default:
			time.Sleep(cfg.RetryInterval)
		}
	}

	return nil, ErrRedisNotReady
}
