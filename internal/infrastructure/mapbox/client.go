package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/inkatravel-api/internal/config"
	"github.com/inkatravel-api/internal/domain"
	"github.com/inkatravel-api/internal/domain/repository"
)

type client struct {
	httpClient   *http.Client
	baseURL      string
	accessToken  string
	profile      string
	maxWaypoints int
	logger       *zap.Logger
}

// NewDirectionsClient builds the Mapbox Directions API client. Callers must
// not construct it without a token; use a nil DirectionsRepository for the
// unconfigured case instead.
func NewDirectionsClient(cfg *config.MapboxConfig, logger *zap.Logger) repository.DirectionsRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:      cfg.BaseURL,
		accessToken:  cfg.AccessToken,
		profile:      cfg.DrivingProfile,
		maxWaypoints: cfg.MaxWaypoints,
		logger:       logger,
	}
}

// directionsResponse mirrors the slice of the Directions API payload we use.
type directionsResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry string  `json:"geometry"`
	} `json:"routes"`
}

// GetDrivingRoute fetches one driving route through the ordered coordinates.
func (c *client) GetDrivingRoute(ctx context.Context, coordinates []domain.Coordinate) (*domain.DrivingRoute, error) {
	if len(coordinates) < 2 {
		return nil, fmt.Errorf("at least origin and destination required")
	}
	if c.maxWaypoints > 0 && len(coordinates) > c.maxWaypoints {
		return nil, fmt.Errorf("coordinates exceed provider limit of %d points", c.maxWaypoints)
	}

	parts := make([]string, len(coordinates))
	for i, coord := range coordinates {
		parts[i] = fmt.Sprintf("%f,%f", coord.Lng, coord.Lat)
	}

	url := fmt.Sprintf("%s/directions/v5/%s/%s?geometries=polyline&overview=full&access_token=%s",
		c.baseURL,
		c.profile,
		strings.Join(parts, ";"),
		c.accessToken,
	)

	c.logger.Debug("Calling Mapbox Directions API",
		zap.Int("coordinates_count", len(coordinates)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Mapbox API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("mapbox API error: status %d", resp.StatusCode)
	}

	var dirResp directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dirResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if dirResp.Code != "Ok" || len(dirResp.Routes) == 0 {
		c.logger.Error("Mapbox API returned no route",
			zap.String("code", dirResp.Code))
		return nil, fmt.Errorf("mapbox API returned code: %s", dirResp.Code)
	}

	best := dirResp.Routes[0]
	c.logger.Debug("Mapbox Directions API call successful",
		zap.Float64("distance_m", best.Distance),
		zap.Float64("duration_s", best.Duration))

	return &domain.DrivingRoute{
		DistanceMeters:  best.Distance,
		DurationSeconds: best.Duration,
		Geometry:        best.Geometry,
	}, nil
}
