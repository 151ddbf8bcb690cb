package repository

import (
	"context"

	"github.com/inkatravel-api/internal/domain"
)

type CartRepository interface {
	// GetByUserID returns the user's cart or nil when none exists yet.
	GetByUserID(ctx context.Context, userID string) (*domain.Cart, error)
	// Save upserts the whole cart, items included.
	Save(ctx context.Context, cart *domain.Cart) error
	DeleteByUserID(ctx context.Context, userID string) error
	CreateOrder(ctx context.Context, order *domain.Order) error
}
