package repository

import (
	"context"

	"github.com/inkatravel-api/internal/domain"
)

// DirectionsRepository fetches a driving route through ordered waypoints
// from the external maps provider.
type DirectionsRepository interface {
	GetDrivingRoute(ctx context.Context, coordinates []domain.Coordinate) (*domain.DrivingRoute, error)
}
