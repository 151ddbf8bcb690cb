package repository

import (
	"context"

	"github.com/inkatravel-api/internal/domain"
)

type TourRepository interface {
	Create(ctx context.Context, tour *domain.Tour) error
	Update(ctx context.Context, tour *domain.Tour) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tour, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Tour, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	SetTransportOptions(ctx context.Context, tourID string, transportIDs []string) error
}
