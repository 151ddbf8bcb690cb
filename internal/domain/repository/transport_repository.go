package repository

import (
	"context"

	"github.com/inkatravel-api/internal/domain"
)

type TransportRepository interface {
	Create(ctx context.Context, transport *domain.TourTransport) error
	Update(ctx context.Context, transport *domain.TourTransport) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.TourTransport, error)
	GetBySlug(ctx context.Context, slug string) (*domain.TourTransport, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.TourTransport, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.TourTransport, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	RouteCodeExists(ctx context.Context, routeCode string) (bool, error)
}
