package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/inkatravel-api/internal/domain"
	"github.com/inkatravel-api/internal/domain/repository"
	"github.com/inkatravel-api/internal/pkg/utils"
)

type DirectionsUseCase struct {
	transportRepo  repository.TransportRepository
	directionsRepo repository.DirectionsRepository
	cacheRepo      repository.CacheRepository
	cacheTTL       time.Duration
	logger         *zap.Logger
}

// NewDirectionsUseCase wires the route builder. directionsRepo may be nil
// when no provider token is configured; every route then degrades to the
// no-map payload instead of failing.
func NewDirectionsUseCase(
	transportRepo repository.TransportRepository,
	directionsRepo repository.DirectionsRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DirectionsUseCase {
	return &DirectionsUseCase{
		transportRepo:  transportRepo,
		directionsRepo: directionsRepo,
		cacheRepo:      cacheRepo,
		cacheTTL:       cacheTTL,
		logger:         logger,
	}
}

// GetTransportRoute builds the map payload for one transport service.
// Driving geometry is cached per route code; provider failures degrade to
// MapAvailable=false with a warning rather than erroring the page.
func (uc *DirectionsUseCase) GetTransportRoute(ctx context.Context, slug string) (*domain.TransportRoute, error) {
	transport, err := uc.transportRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	coords := make([]domain.Coordinate, 0, len(transport.IntermediateStops)+2)
	coords = append(coords, domain.Coordinate{Lat: transport.Origin.Lat, Lng: transport.Origin.Lng})
	for _, s := range transport.IntermediateStops {
		coords = append(coords, domain.Coordinate{Lat: s.Lat, Lng: s.Lng})
	}
	coords = append(coords, domain.Coordinate{Lat: transport.Destination.Lat, Lng: transport.Destination.Lng})

	route := &domain.TransportRoute{
		RouteCode:        transport.RouteCode,
		Origin:           transport.Origin,
		Destination:      transport.Destination,
		Waypoints:        transport.IntermediateStops,
		ApproxDistanceKm: pathDistanceKm(coords),
	}

	if uc.directionsRepo == nil {
		route.Warning = "directions provider not configured"
		return route, nil
	}

	if cached, err := uc.cacheRepo.GetTransportRoute(ctx, transport.RouteCode); err == nil && cached != nil {
		return cached, nil
	}

	driving, err := uc.directionsRepo.GetDrivingRoute(ctx, coords)
	if err != nil {
		uc.logger.Warn("Directions provider failed, serving degraded route",
			zap.String("route_code", transport.RouteCode),
			zap.Error(err))
		route.Warning = "route geometry unavailable"
		return route, nil
	}

	route.Route = driving
	route.MapAvailable = true

	if err := uc.cacheRepo.SetTransportRoute(ctx, route, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache transport route",
			zap.String("route_code", transport.RouteCode), zap.Error(err))
	}
	return route, nil
}

// pathDistanceKm sums great-circle legs between consecutive waypoints. It is
// a lower bound for the driving distance; degraded payloads show it when no
// geometry is available.
func pathDistanceKm(coords []domain.Coordinate) float64 {
	var km float64
	for i := 1; i < len(coords); i++ {
		km += utils.HaversineDistance(coords[i-1].Lat, coords[i-1].Lng, coords[i].Lat, coords[i].Lng)
	}
	return km
}
