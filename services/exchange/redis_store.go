package exchange

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	redisKeyPrefix = "rate:"
	// Daily rates are only interesting for about a day; the TTL keeps the
	// shared store from accumulating stale currency×date keys forever.
	redisRateTTL = 24 * time.Hour
)

// RedisStore shares successful rate lookups between instances.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %v", err)
	}

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisStore{client: client}, nil
}

// Get is best-effort: any Redis error reads as a miss.
func (s *RedisStore) Get(ctx context.Context, key string) (float64, bool) {
	rate, err := s.client.Get(ctx, redisKeyPrefix+key).Float64()
	if err == redis.Nil {
		return 0, false
	}
	if err != nil {
		log.Printf("Warning: Redis rate lookup for %s failed: %v", key, err)
		return 0, false
	}
	return rate, true
}

func (s *RedisStore) Set(ctx context.Context, key string, rate float64) {
	if err := s.client.Set(ctx, redisKeyPrefix+key, rate, redisRateTTL).Err(); err != nil {
		log.Printf("Warning: failed to store rate %s in Redis: %v", key, err)
	}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
