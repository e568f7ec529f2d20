package cache

import (
	"context"
	"delivery-route-engine/internal/domain"
	"delivery-route-engine/internal/platform/obs"
	"delivery-route-engine/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis-backed cache for provider route and traffic payloads.
//
// Routes are near-static and use RouteTTL; incidents are live data and use
// the shorter IncidentTTL. Keys are expected to be consistent (already
// normalized) by the caller.
type RedisRouteCache struct {
	Client      *redis.Client
	RouteTTL    time.Duration
	IncidentTTL time.Duration
}

func NewRedisRouteCache(client *redis.Client, routeTTL, incidentTTL time.Duration) *RedisRouteCache {
	return &RedisRouteCache{
		Client:      client,
		RouteTTL:    routeTTL,
		IncidentTTL: incidentTTL,
	}
}

// Fetch a cached route payload. The second return is false on a miss.
func (c *RedisRouteCache) GetRoute(ctx context.Context, key string) (_ *ports.RouteData, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.GetRoute")(&err)

	if c.Client == nil {
		return nil, false, errors.New("route cache: client is nil")
	}
	if key == "" {
		return nil, false, errors.New("get route cache: key must not be empty")
	}

	b, err := c.Client.Get(ctx, "route:"+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: %w", err)
	}

	var data ports.RouteData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, false, fmt.Errorf("get route cache: decode payload: %w", err)
	}

	return &data, true, nil
}

// Store a route payload under the given key.
func (c *RedisRouteCache) PutRoute(ctx context.Context, key string, data *ports.RouteData) error {
	if c.Client == nil {
		return errors.New("route cache: client is nil")
	}
	if key == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("insert route cache: encode payload: %w", err)
	}

	if err := c.Client.Set(ctx, "route:"+key, b, c.RouteTTL).Err(); err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	return nil
}

// Fetch cached incidents for a bounding-box key.
func (c *RedisRouteCache) GetIncidents(ctx context.Context, key string) (_ []domain.TrafficIncident, _ bool, err error) {
	defer obs.Time(ctx, "traffic.cache.GetIncidents")(&err)

	if c.Client == nil {
		return nil, false, errors.New("traffic cache: client is nil")
	}
	if key == "" {
		return nil, false, errors.New("get traffic cache: key must not be empty")
	}

	b, err := c.Client.Get(ctx, "traffic:"+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get traffic cache: %w", err)
	}

	var incidents []domain.TrafficIncident
	if err := json.Unmarshal(b, &incidents); err != nil {
		return nil, false, fmt.Errorf("get traffic cache: decode payload: %w", err)
	}

	return incidents, true, nil
}

// Store incidents for a bounding-box key.
func (c *RedisRouteCache) PutIncidents(ctx context.Context, key string, incidents []domain.TrafficIncident) error {
	if c.Client == nil {
		return errors.New("traffic cache: client is nil")
	}
	if key == "" {
		return errors.New("insert traffic cache: key must not be empty")
	}

	b, err := json.Marshal(incidents)
	if err != nil {
		return fmt.Errorf("insert traffic cache: encode payload: %w", err)
	}

	if err := c.Client.Set(ctx, "traffic:"+key, b, c.IncidentTTL).Err(); err != nil {
		return fmt.Errorf("insert traffic cache: %w", err)
	}

	return nil
}
