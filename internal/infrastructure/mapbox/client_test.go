package mapbox_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/inkatravel-api/internal/config"
	"github.com/inkatravel-api/internal/domain"
	"github.com/inkatravel-api/internal/infrastructure/mapbox"
)

func newTestClient(baseURL string) *config.MapboxConfig {
	return &config.MapboxConfig{
		AccessToken:    "test-token",
		BaseURL:        baseURL,
		DrivingProfile: "mapbox/driving",
		RequestTimeout: 5,
		MaxWaypoints:   25,
	}
}

func TestGetDrivingRoute(t *testing.T) {
	ctx := context.Background()

	coords := []domain.Coordinate{
		{Lat: -13.532, Lng: -71.967},
		{Lat: -12.046, Lng: -77.043},
	}

	t.Run("parses a successful response", func(t *testing.T) {
		var requestedPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestedPath = r.URL.Path
			assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
			assert.Equal(t, "polyline", r.URL.Query().Get("geometries"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"code":"Ok","routes":[{"distance":1105000,"duration":72000,"geometry":"abc123"}]}`))
		}))
		defer server.Close()

		client := mapbox.NewDirectionsClient(newTestClient(server.URL), zap.NewNop())

		route, err := client.GetDrivingRoute(ctx, coords)

		assert.NoError(t, err)
		assert.Equal(t, 1105000.0, route.DistanceMeters)
		assert.Equal(t, 72000.0, route.DurationSeconds)
		assert.Equal(t, "abc123", route.Geometry)
		assert.True(t, strings.HasPrefix(requestedPath, "/directions/v5/mapbox/driving/"))
		// Coordinates go out longitude first.
		assert.Contains(t, requestedPath, "-71.967000,-13.532000")
	})

	t.Run("fails on a non-Ok provider code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
		}))
		defer server.Close()

		client := mapbox.NewDirectionsClient(newTestClient(server.URL), zap.NewNop())

		route, err := client.GetDrivingRoute(ctx, coords)

		assert.Nil(t, route)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "NoRoute")
	})

	t.Run("fails on an HTTP error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"Not Authorized"}`, http.StatusUnauthorized)
		}))
		defer server.Close()

		client := mapbox.NewDirectionsClient(newTestClient(server.URL), zap.NewNop())

		route, err := client.GetDrivingRoute(ctx, coords)

		assert.Nil(t, route)
		assert.Error(t, err)
	})

	t.Run("requires at least two coordinates", func(t *testing.T) {
		client := mapbox.NewDirectionsClient(newTestClient("http://unused"), zap.NewNop())

		route, err := client.GetDrivingRoute(ctx, coords[:1])

		assert.Nil(t, route)
		assert.Error(t, err)
	})

	t.Run("enforces the waypoint limit", func(t *testing.T) {
		cfg := newTestClient("http://unused")
		cfg.MaxWaypoints = 2
		client := mapbox.NewDirectionsClient(cfg, zap.NewNop())

		many := []domain.Coordinate{{Lat: 1}, {Lat: 2}, {Lat: 3}}
		route, err := client.GetDrivingRoute(ctx, many)

		assert.Nil(t, route)
		assert.Error(t, err)
	})
}
