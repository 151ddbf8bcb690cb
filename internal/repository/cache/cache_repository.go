package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/inkatravel-api/internal/domain"
	"github.com/inkatravel-api/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

func cartSummaryKey(userID string) string {
	return "cart:summary:" + userID
}

func (r *cacheRepository) GetCartSummary(ctx context.Context, userID string) (*domain.CartSummary, error) {
	data, err := r.Get(ctx, cartSummaryKey(userID))
	if err != nil || data == nil {
		return nil, err
	}

	var summary domain.CartSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		r.logger.Error("Failed to decode cart summary",
			zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("cart summary decode error: %w", err)
	}
	return &summary, nil
}

func (r *cacheRepository) SetCartSummary(ctx context.Context, summary *domain.CartSummary, ttl time.Duration) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("cart summary encode error: %w", err)
	}
	return r.Set(ctx, cartSummaryKey(summary.UserID), data, ttl)
}

func (r *cacheRepository) DeleteCartSummary(ctx context.Context, userID string) error {
	return r.Delete(ctx, cartSummaryKey(userID))
}

func transportRouteKey(routeCode string) string {
	return "route:driving:" + routeCode
}

func (r *cacheRepository) GetTransportRoute(ctx context.Context, routeCode string) (*domain.TransportRoute, error) {
	data, err := r.Get(ctx, transportRouteKey(routeCode))
	if err != nil || data == nil {
		return nil, err
	}

	var route domain.TransportRoute
	if err := json.Unmarshal(data, &route); err != nil {
		r.logger.Error("Failed to decode transport route",
			zap.String("route_code", routeCode), zap.Error(err))
		return nil, fmt.Errorf("transport route decode error: %w", err)
	}
	return &route, nil
}

func (r *cacheRepository) SetTransportRoute(ctx context.Context, route *domain.TransportRoute, ttl time.Duration) error {
	data, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("transport route encode error: %w", err)
	}
	return r.Set(ctx, transportRouteKey(route.RouteCode), data, ttl)
}
