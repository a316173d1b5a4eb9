// Package cache implements the identity cache in front of the user directory.
package cache

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"

	"contacthub/config"
	"contacthub/internal/domain/lifecycle"
	"contacthub/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Store is the byte-oriented key-value collaborator backing the identity
// cache. Any transport works; the cache layer treats failures as misses.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// ErrKeyNotFound is returned by a Store when a key is absent.
var ErrKeyNotFound = errors.New("cache: key not found")

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// redisStore implements Store on top of a Redis client.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates the Redis-backed Store and manages the client's
// lifecycle through Fx hooks.
func NewRedisStore(params Params) (Store, error) {
	if params.Config.Redis == nil {
		return nil, errors.New("redis configuration must be provided")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.Redis.Host, strconv.Itoa(params.Config.Redis.Port)),
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &redisStore{client: client}, nil
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cache key")
	}

	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set cache key")
	}

	return nil
}
