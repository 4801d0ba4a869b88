package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs
const (
	TTLFeed    = 30 * time.Second // public feed (refreshed often)
	TTLUser    = 5 * time.Minute  // user profiles
	TTLSession = 30 * time.Minute // sessions
	TTLDefault = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixFeed    = "feed:"
	PrefixUser    = "user:"
	PrefixSession = "session:"
)

// ErrCacheMiss is returned when a key is not present
var ErrCacheMiss = errors.New("cache miss")

// Service is the Redis cache service interface
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Feed cache
	GetFeed(ctx context.Context, sort string, page, limit int, dest interface{}) error
	SetFeed(ctx context.Context, sort string, page, limit int, data interface{}) error
	InvalidateFeed(ctx context.Context) error

	// User cache
	GetUser(ctx context.Context, username string, dest interface{}) error
	SetUser(ctx context.Context, username string, data interface{}) error
	InvalidateUser(ctx context.Context, username string) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache is the Redis-backed implementation
type redisCache struct {
	client *redis.Client
}

// NewService creates a cache service backed by the given Redis client
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = TTLDefault
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func feedKey(sort string, page, limit int) string {
	return fmt.Sprintf("%s%s:%d:%d", PrefixFeed, sort, page, limit)
}

func (c *redisCache) GetFeed(ctx context.Context, sort string, page, limit int, dest interface{}) error {
	return c.Get(ctx, feedKey(sort, page, limit), dest)
}

func (c *redisCache) SetFeed(ctx context.Context, sort string, page, limit int, data interface{}) error {
	return c.Set(ctx, feedKey(sort, page, limit), data, TTLFeed)
}

// InvalidateFeed drops all cached feed pages
func (c *redisCache) InvalidateFeed(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, PrefixFeed+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return c.Delete(ctx, keys...)
}

func (c *redisCache) GetUser(ctx context.Context, username string, dest interface{}) error {
	return c.Get(ctx, PrefixUser+username, dest)
}

func (c *redisCache) SetUser(ctx context.Context, username string, data interface{}) error {
	return c.Set(ctx, PrefixUser+username, data, TTLUser)
}

func (c *redisCache) InvalidateUser(ctx context.Context, username string) error {
	return c.Delete(ctx, PrefixUser+username)
}

func (c *redisCache) IsAvailable() bool {
	if c.client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return c.client.Ping(ctx).Err() == nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
