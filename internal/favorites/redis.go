package favorites

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
)

const (
	keyPrefix       = "favorites:"
	connectTimeout  = 5 * time.Second
	maxConnectTries = 4
)

// RedisStore persists favorites in Redis, one set per user. It is the shared
// backend when users sign in from multiple devices.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection, retrying with
// exponential backoff before giving up.
func NewRedisStore(addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ping := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		return client.Ping(ctx).Err()
	}
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxConnectTries)
	if err := backoff.Retry(ping, policy); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}

	return &RedisStore{client: client}, nil
}

func key(user string) string {
	return keyPrefix + user
}

// Add marks a match as favorite for the user.
func (s *RedisStore) Add(ctx context.Context, user, matchID string) error {
	return s.client.SAdd(ctx, key(user), matchID).Err()
}

// Remove unmarks a match for the user.
func (s *RedisStore) Remove(ctx context.Context, user, matchID string) error {
	return s.client.SRem(ctx, key(user), matchID).Err()
}

// List returns the user's favorite match ids in lexical order.
func (s *RedisStore) List(ctx context.Context, user string) ([]string, error) {
	ids, err := s.client.SMembers(ctx, key(user)).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}

// Clear removes every favorite for the user.
func (s *RedisStore) Clear(ctx context.Context, user string) error {
	return s.client.Del(ctx, key(user)).Err()
}

// IsFavorite reports whether the match is starred by the user.
func (s *RedisStore) IsFavorite(ctx context.Context, user, matchID string) (bool, error) {
	return s.client.SIsMember(ctx, key(user), matchID).Result()
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
