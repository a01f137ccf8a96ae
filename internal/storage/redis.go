package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore implements Store on Redis with namespaced keys. Values are
// stored without TTL: the containers own the lifecycle of their state.
type RedisStore struct {
	client    *redis.Client
	namespace string
}

func NewRedisStore(redisURL, namespace string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if namespace == "" {
		namespace = "storefront"
	}
	return &RedisStore{client: client, namespace: namespace}, nil
}

func (r *RedisStore) buildKey(key string) string {
	return r.namespace + ":" + key
}

func (r *RedisStore) Get(key string) ([]byte, error) {
	data, err := r.client.Get(context.Background(), r.buildKey(key)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

func (r *RedisStore) Set(key string, value []byte) error {
	if err := r.client.Set(context.Background(), r.buildKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Delete(key string) error {
	if err := r.client.Del(context.Background(), r.buildKey(key)).Err(); err != nil {
		return fmt.Errorf("redis delete %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Keys(prefix string) ([]string, error) {
	full, err := r.client.Keys(context.Background(), r.buildKey(prefix)+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("redis keys %s: %w", prefix, err)
	}
	keys := make([]string, 0, len(full))
	for _, k := range full {
		keys = append(keys, strings.TrimPrefix(k, r.namespace+":"))
	}
	return keys, nil
}

func (r *RedisStore) Close() error { return r.client.Close() }
