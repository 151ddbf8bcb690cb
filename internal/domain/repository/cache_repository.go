package repository

import (
	"context"
	"time"

	"github.com/inkatravel-api/internal/domain"
)

type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	GetCartSummary(ctx context.Context, userID string) (*domain.CartSummary, error)
	SetCartSummary(ctx context.Context, summary *domain.CartSummary, ttl time.Duration) error
	DeleteCartSummary(ctx context.Context, userID string) error

	GetTransportRoute(ctx context.Context, routeCode string) (*domain.TransportRoute, error)
	SetTransportRoute(ctx context.Context, route *domain.TransportRoute, ttl time.Duration) error
}
