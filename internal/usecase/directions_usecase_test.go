package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/inkatravel-api/internal/domain"
	"github.com/inkatravel-api/internal/pkg/errors"
	"github.com/inkatravel-api/internal/usecase"
)

func TestDirectionsUseCase_GetTransportRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("degrades when no provider is configured", func(t *testing.T) {
		mockTransportRepo := new(MockTransportRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := usecase.NewDirectionsUseCase(mockTransportRepo, nil, mockCacheRepo, time.Hour, zap.NewNop())

		mockTransportRepo.On("GetBySlug", ctx, "cusco-lima").Return(cuscoLima(), nil)

		route, err := uc.GetTransportRoute(ctx, "cusco-lima")

		assert.NoError(t, err)
		assert.False(t, route.MapAvailable)
		assert.Nil(t, route.Route)
		assert.NotEmpty(t, route.Warning)
		assert.Equal(t, "Cusco", route.Origin.Name)
		// Great-circle Cusco-Lima, so the page still shows a distance.
		assert.InDelta(t, 586, route.ApproxDistanceKm, 15)
		mockCacheRepo.AssertNotCalled(t, "GetTransportRoute", mock.Anything, mock.Anything)
	})

	t.Run("serves the cached geometry", func(t *testing.T) {
		mockTransportRepo := new(MockTransportRepository)
		mockDirectionsRepo := new(MockDirectionsRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := usecase.NewDirectionsUseCase(mockTransportRepo, mockDirectionsRepo, mockCacheRepo, time.Hour, zap.NewNop())

		transport := cuscoLima()
		transport.RouteCode = "CUS-LIM"
		cached := &domain.TransportRoute{
			RouteCode:    "CUS-LIM",
			MapAvailable: true,
			Route:        &domain.DrivingRoute{DistanceMeters: 1105000},
		}
		mockTransportRepo.On("GetBySlug", ctx, "cusco-lima").Return(transport, nil)
		mockCacheRepo.On("GetTransportRoute", ctx, "CUS-LIM").Return(cached, nil)

		route, err := uc.GetTransportRoute(ctx, "cusco-lima")

		assert.NoError(t, err)
		assert.Equal(t, cached, route)
		mockDirectionsRepo.AssertNotCalled(t, "GetDrivingRoute", mock.Anything, mock.Anything)
	})

	t.Run("fetches and caches geometry on a miss", func(t *testing.T) {
		mockTransportRepo := new(MockTransportRepository)
		mockDirectionsRepo := new(MockDirectionsRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := usecase.NewDirectionsUseCase(mockTransportRepo, mockDirectionsRepo, mockCacheRepo, time.Hour, zap.NewNop())

		transport := cuscoLima()
		transport.RouteCode = "CUS-LIM"
		transport.IntermediateStops = []domain.IntermediateStop{
			{Name: "Abancay", Lat: -13.633, Lng: -72.881},
		}
		driving := &domain.DrivingRoute{
			DistanceMeters:  1105000,
			DurationSeconds: 72000,
			Geometry:        "abc123",
		}
		wantCoords := []domain.Coordinate{
			{Lat: -13.532, Lng: -71.967},
			{Lat: -13.633, Lng: -72.881},
			{Lat: -12.046, Lng: -77.043},
		}
		mockTransportRepo.On("GetBySlug", ctx, "cusco-lima").Return(transport, nil)
		mockCacheRepo.On("GetTransportRoute", ctx, "CUS-LIM").Return(nil, nil)
		mockDirectionsRepo.On("GetDrivingRoute", ctx, wantCoords).Return(driving, nil)
		mockCacheRepo.On("SetTransportRoute", ctx, mock.AnythingOfType("*domain.TransportRoute"), time.Hour).Return(nil)

		route, err := uc.GetTransportRoute(ctx, "cusco-lima")

		assert.NoError(t, err)
		assert.True(t, route.MapAvailable)
		assert.Equal(t, driving, route.Route)
		assert.Len(t, route.Waypoints, 1)
		mockDirectionsRepo.AssertExpectations(t)
		mockCacheRepo.AssertExpectations(t)
	})

	t.Run("degrades when the provider fails", func(t *testing.T) {
		mockTransportRepo := new(MockTransportRepository)
		mockDirectionsRepo := new(MockDirectionsRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := usecase.NewDirectionsUseCase(mockTransportRepo, mockDirectionsRepo, mockCacheRepo, time.Hour, zap.NewNop())

		transport := cuscoLima()
		transport.RouteCode = "CUS-LIM"
		mockTransportRepo.On("GetBySlug", ctx, "cusco-lima").Return(transport, nil)
		mockCacheRepo.On("GetTransportRoute", ctx, "CUS-LIM").Return(nil, nil)
		mockDirectionsRepo.On("GetDrivingRoute", ctx, mock.Anything).Return(nil, errors.ErrRouteUnavailable)

		route, err := uc.GetTransportRoute(ctx, "cusco-lima")

		assert.NoError(t, err)
		assert.False(t, route.MapAvailable)
		assert.Nil(t, route.Route)
		assert.NotEmpty(t, route.Warning)
		assert.Greater(t, route.ApproxDistanceKm, 0.0)
		mockCacheRepo.AssertNotCalled(t, "SetTransportRoute", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("propagates unknown slugs", func(t *testing.T) {
		mockTransportRepo := new(MockTransportRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := usecase.NewDirectionsUseCase(mockTransportRepo, nil, mockCacheRepo, time.Hour, zap.NewNop())

		mockTransportRepo.On("GetBySlug", ctx, "missing").Return(nil, errors.ErrTransportNotFound)

		route, err := uc.GetTransportRoute(ctx, "missing")

		assert.Nil(t, route)
		assert.Equal(t, errors.ErrTransportNotFound, err)
	})
}
