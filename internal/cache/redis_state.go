package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"smarthub/internal/config"
)

// RedisState keeps per-browser client state in Redis. Every write refreshes
// the key TTL, so idle namespaces expire on their own.
type RedisState struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisState(cfg config.RedisConfig, ttl time.Duration) *RedisState {
	return NewRedisStateWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl,
	)
}

func NewRedisStateWithClient(client *redis.Client, ttl time.Duration) *RedisState {
	return &RedisState{client: client, ttl: ttl}
}

func (s *RedisState) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisState) Get(ctx context.Context, clientID, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, stateKey(clientID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisState) Set(ctx context.Context, clientID, key, value string) error {
	return s.client.Set(ctx, stateKey(clientID, key), value, s.ttl).Err()
}

func (s *RedisState) Delete(ctx context.Context, clientID, key string) error {
	return s.client.Del(ctx, stateKey(clientID, key)).Err()
}

func (s *RedisState) Close() error {
	return s.client.Close()
}

func stateKey(clientID, key string) string {
	return fmt.Sprintf("client:%s:%s", clientID, key)
}
