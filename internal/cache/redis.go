package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/flighttracker/config"
	"github.com/Domenick1991/flighttracker/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps raw route records, never display models.
type RedisCache struct {
	client   *redis.Client
	routeTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, routeTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		routeTTL,
	)
}

func NewRedisCacheWithClient(client *redis.Client, routeTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, routeTTL: routeTTL}
}

// GetRoute returns nil, nil on a miss.
func (c *RedisCache) GetRoute(ctx context.Context, callsign string) (*domain.RouteRecord, error) {
	data, err := c.client.Get(ctx, routeKey(callsign)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var record domain.RouteRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *RedisCache) SetRoute(ctx context.Context, callsign string, record *domain.RouteRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, routeKey(callsign), payload, c.routeTTL).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func routeKey(callsign string) string {
	return "cache:route:" + callsign
}
