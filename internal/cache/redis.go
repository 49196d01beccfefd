package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stayview/revgrid/backend-go/internal/config"
	"github.com/stayview/revgrid/backend-go/internal/domain"
)

const (
	statusKeyPrefix  = "grid_status:"
	statusScanBatch  = 100
	defaultStatusTTL = 5 * time.Minute
	redisPingTimeout = 5 * time.Second
)

type redisStatusCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStatusCache returns a StatusCache backed by Redis, for deployments
// where several processes precompute and serve the same grid.
func NewRedisStatusCache(cfg config.CacheConfig) (StatusCache, error) {
	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisStatusCache{client: client, ttl: ttl}, nil
}

func newRedisClient(cfg config.CacheConfig) (*redis.Client, time.Duration, error) {
	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, 0, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, 0, fmt.Errorf("redis ping failed: %w", err)
	}

	ttl := time.Duration(cfg.StatusTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultStatusTTL
	}

	return client, ttl, nil
}

func buildRedisOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opt, nil
	}

	host := cfg.RedisHost
	if host == "" {
		host = "127.0.0.1"
	}

	port := cfg.RedisPort
	if port == "" {
		port = "6379"
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}

func (c *redisStatusCache) Get(ctx context.Context, key string) (domain.SmartInventoryStatus, bool, error) {
	payload, err := c.client.Get(ctx, statusKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return domain.SmartInventoryStatus{}, false, nil
	}
	if err != nil {
		return domain.SmartInventoryStatus{}, false, fmt.Errorf("redis get failed: %w", err)
	}

	var status domain.SmartInventoryStatus
	if err := json.Unmarshal(payload, &status); err != nil {
		return domain.SmartInventoryStatus{}, false, fmt.Errorf("decode status cache: %w", err)
	}

	return status, true, nil
}

func (c *redisStatusCache) Set(ctx context.Context, key string, status domain.SmartInventoryStatus) error {
	payload, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("encode status cache: %w", err)
	}

	if err := c.client.Set(ctx, statusKeyPrefix+key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisStatusCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, statusKeyPrefix+key).Err()
}

func (c *redisStatusCache) Flush(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, statusKeyPrefix, statusScanBatch)
}

func deleteKeysWithPrefix(ctx context.Context, client *redis.Client, prefix string, batchSize int64) error {
	var cursor uint64
	pattern := prefix + "*"
	for {
		keys, nextCursor, err := client.Scan(ctx, cursor, pattern, batchSize).Result()
		if err != nil {
			return fmt.Errorf("redis scan failed: %w", err)
		}

		if len(keys) > 0 {
			if err := client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis delete failed: %w", err)
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	return nil
}
