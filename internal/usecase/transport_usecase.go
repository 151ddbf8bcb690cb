package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inkatravel-api/internal/domain"
	"github.com/inkatravel-api/internal/domain/repository"
	"github.com/inkatravel-api/internal/pkg/errors"
	"github.com/inkatravel-api/internal/pkg/utils"
	"github.com/inkatravel-api/internal/usecase/dto"
)

const transportCacheKeyPrefix = "cache:transport:slug:"

type TransportUseCase struct {
	transportRepo repository.TransportRepository
	cacheRepo     repository.CacheRepository
	cacheTTL      time.Duration
	logger        *zap.Logger
}

func NewTransportUseCase(
	transportRepo repository.TransportRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *TransportUseCase {
	return &TransportUseCase{
		transportRepo: transportRepo,
		cacheRepo:     cacheRepo,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

// Create stores a new transport service. Slug and route code are derived
// from origin and destination and suffixed until unique.
func (uc *TransportUseCase) Create(ctx context.Context, req dto.CreateTransportRequest) (*domain.TourTransport, error) {
	title := req.Title.ToDomain()
	if !title.HasDefault() {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"title": "missing default language value",
		})
	}
	if !utils.ValidateCoordinates(req.Origin.Lat, req.Origin.Lng) ||
		!utils.ValidateCoordinates(req.Destination.Lat, req.Destination.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}
	for _, s := range req.IntermediateStops {
		if !utils.ValidateCoordinates(s.Lat, s.Lng) {
			return nil, errors.ErrInvalidCoordinates
		}
	}

	now := time.Now().UTC()
	transport := &domain.TourTransport{
		ID:                 uuid.New().String(),
		Title:              title,
		Description:        req.Description.ToDomain(),
		TermsAndConditions: req.TermsAndConditions.ToDomain(),
		ImageURL:           req.ImageURL,
		GalleryURLs:        req.GalleryURLs,
		Origin:             req.Origin.ToDomain(),
		Destination:        req.Destination.ToDomain(),
		AvailableDays:      req.AvailableDays,
		DepartureTime:      req.DepartureTime,
		ArrivalTime:        req.ArrivalTime,
		DurationInHours:    req.DurationInHours,
		Duration:           req.Duration,
		Price:              req.Price,
		ServicePrice:       req.ServicePrice,
		ServiceType:        req.ServiceType,
		Rating:             req.Rating,
		VehicleID:          req.VehicleID,
		IsActive:           true,
		IsFeatured:         req.IsFeatured,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if req.IsActive != nil {
		transport.IsActive = *req.IsActive
	}
	for _, s := range req.IntermediateStops {
		transport.IntermediateStops = append(transport.IntermediateStops, s.ToDomain())
	}
	for i, d := range req.Itinerary {
		day := d.ToDomain()
		day.Day = i + 1
		transport.Itinerary = append(transport.Itinerary, day)
	}
	if transport.Duration == "" {
		transport.Duration = formatDuration(transport.DurationInHours)
	}

	slug, err := uc.uniqueSlug(ctx, transport.Origin.Name, transport.Destination.Name)
	if err != nil {
		return nil, err
	}
	transport.Slug = slug

	routeCode, err := uc.uniqueRouteCode(ctx, transport.Origin.Name, transport.Destination.Name)
	if err != nil {
		return nil, err
	}
	transport.RouteCode = routeCode

	if err := uc.transportRepo.Create(ctx, transport); err != nil {
		uc.logger.Error("Failed to create transport", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Transport created",
		zap.String("transport_id", transport.ID),
		zap.String("route_code", transport.RouteCode))
	return transport, nil
}

// List returns transport services matching the query filters.
func (uc *TransportUseCase) List(ctx context.Context, q dto.TransportListQuery, includeInactive bool) ([]*domain.TourTransport, error) {
	transports, err := uc.transportRepo.List(ctx, !includeInactive)
	if err != nil {
		uc.logger.Error("Failed to list transports", zap.Error(err))
		return nil, err
	}
	return FilterTransports(transports, q), nil
}

// GetBySlug serves one transport service, read through the cache.
func (uc *TransportUseCase) GetBySlug(ctx context.Context, slug string, includeInactive bool) (*domain.TourTransport, error) {
	cacheKey := transportCacheKeyPrefix + slug

	if data, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && data != nil {
		var transport domain.TourTransport
		if err := unmarshalCached(data, &transport); err == nil {
			if transport.IsActive || includeInactive {
				return &transport, nil
			}
			return nil, errors.ErrTransportNotFound
		}
	}

	transport, err := uc.transportRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !transport.IsActive && !includeInactive {
		return nil, errors.ErrTransportNotFound
	}

	if data, err := marshalCached(transport); err == nil {
		if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache transport", zap.String("slug", slug), zap.Error(err))
		}
	}
	return transport, nil
}

// Update applies a partial update with whole-value replacement for arrays
// and subdocuments.
func (uc *TransportUseCase) Update(ctx context.Context, id string, req dto.UpdateTransportRequest) (*domain.TourTransport, error) {
	transport, err := uc.transportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := req.Title.ToDomain()
		if !title.HasDefault() {
			return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"title": "missing default language value",
			})
		}
		transport.Title = title
	}
	if req.Description != nil {
		transport.Description = req.Description.ToDomain()
	}
	if req.TermsAndConditions != nil {
		transport.TermsAndConditions = req.TermsAndConditions.ToDomain()
	}
	if req.Origin != nil {
		if !utils.ValidateCoordinates(req.Origin.Lat, req.Origin.Lng) {
			return nil, errors.ErrInvalidCoordinates
		}
		transport.Origin = req.Origin.ToDomain()
	}
	if req.Destination != nil {
		if !utils.ValidateCoordinates(req.Destination.Lat, req.Destination.Lng) {
			return nil, errors.ErrInvalidCoordinates
		}
		transport.Destination = req.Destination.ToDomain()
	}
	if req.IntermediateStops != nil {
		stops := make([]domain.IntermediateStop, 0, len(*req.IntermediateStops))
		for _, s := range *req.IntermediateStops {
			if !utils.ValidateCoordinates(s.Lat, s.Lng) {
				return nil, errors.ErrInvalidCoordinates
			}
			stops = append(stops, s.ToDomain())
		}
		transport.IntermediateStops = stops
	}
	if req.AvailableDays != nil {
		transport.AvailableDays = *req.AvailableDays
	}
	if req.DepartureTime != nil {
		transport.DepartureTime = *req.DepartureTime
	}
	if req.ArrivalTime != nil {
		transport.ArrivalTime = *req.ArrivalTime
	}
	if req.DurationInHours != nil {
		transport.DurationInHours = *req.DurationInHours
		if req.Duration == nil {
			transport.Duration = formatDuration(*req.DurationInHours)
		}
	}
	if req.Duration != nil {
		transport.Duration = *req.Duration
	}
	if req.Price != nil {
		transport.Price = *req.Price
	}
	if req.ServicePrice != nil {
		transport.ServicePrice = *req.ServicePrice
	}
	if req.ServiceType != nil {
		transport.ServiceType = *req.ServiceType
	}
	if req.Rating != nil {
		transport.Rating = *req.Rating
	}
	if req.VehicleID != nil {
		transport.VehicleID = *req.VehicleID
	}
	if req.ImageURL != nil {
		transport.ImageURL = *req.ImageURL
	}
	if req.GalleryURLs != nil {
		transport.GalleryURLs = *req.GalleryURLs
	}
	if req.Itinerary != nil {
		days := make([]domain.TransportItineraryDay, 0, len(*req.Itinerary))
		for i, d := range *req.Itinerary {
			day := d.ToDomain()
			day.Day = i + 1
			days = append(days, day)
		}
		transport.Itinerary = days
	}
	if req.IsActive != nil {
		transport.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		transport.IsFeatured = *req.IsFeatured
	}

	transport.UpdatedAt = time.Now().UTC()

	if err := uc.transportRepo.Update(ctx, transport); err != nil {
		uc.logger.Error("Failed to update transport", zap.String("transport_id", id), zap.Error(err))
		return nil, err
	}
	uc.invalidate(ctx, transport.Slug)

	uc.logger.Info("Transport updated", zap.String("transport_id", id))
	return transport, nil
}

// Delete removes a transport service permanently.
func (uc *TransportUseCase) Delete(ctx context.Context, id string) error {
	transport, err := uc.transportRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.transportRepo.Delete(ctx, id); err != nil {
		uc.logger.Error("Failed to delete transport", zap.String("transport_id", id), zap.Error(err))
		return err
	}
	uc.invalidate(ctx, transport.Slug)

	uc.logger.Info("Transport deleted", zap.String("transport_id", id))
	return nil
}

func (uc *TransportUseCase) invalidate(ctx context.Context, slug string) {
	if err := uc.cacheRepo.Delete(ctx, transportCacheKeyPrefix+slug); err != nil {
		uc.logger.Warn("Failed to invalidate transport cache", zap.String("slug", slug), zap.Error(err))
	}
}

func (uc *TransportUseCase) uniqueSlug(ctx context.Context, origin, destination string) (string, error) {
	base := utils.Slugify(origin + " " + destination)
	if base == "" {
		return "", errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"origin": "cannot derive slug",
		})
	}
	candidate := base
	for i := 2; ; i++ {
		exists, err := uc.transportRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// uniqueRouteCode builds codes like CUS-LIM from the first three letters of
// each endpoint, numbering collisions CUS-LIM-2, CUS-LIM-3, ...
func (uc *TransportUseCase) uniqueRouteCode(ctx context.Context, origin, destination string) (string, error) {
	base := routeCodePrefix(origin) + "-" + routeCodePrefix(destination)
	candidate := base
	for i := 2; ; i++ {
		exists, err := uc.transportRepo.RouteCodeExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// formatDuration renders a duration in hours as a display label like "8h"
// or "8h 30min". Zero hours stays empty so unset stays unset.
func formatDuration(hours float64) string {
	if hours <= 0 {
		return ""
	}
	whole := int(hours)
	minutes := int(math.Round((hours - float64(whole)) * 60))
	if minutes >= 60 {
		whole++
		minutes -= 60
	}
	if minutes == 0 {
		return fmt.Sprintf("%dh", whole)
	}
	if whole == 0 {
		return fmt.Sprintf("%dmin", minutes)
	}
	return fmt.Sprintf("%dh %dmin", whole, minutes)
}

func routeCodePrefix(name string) string {
	s := strings.ToUpper(utils.Slugify(name))
	s = strings.ReplaceAll(s, "-", "")
	if s == "" {
		return "XXX"
	}
	if len(s) > 3 {
		s = s[:3]
	}
	return s
}

// FilterTransports applies the listing filters in memory. All present
// filters combine with AND; the free-text query matches the title and
// description in every stored language plus the endpoint names.
func FilterTransports(transports []*domain.TourTransport, q dto.TransportListQuery) []*domain.TourTransport {
	out := make([]*domain.TourTransport, 0, len(transports))
	query := strings.ToLower(strings.TrimSpace(q.Query))
	for _, t := range transports {
		if q.Featured && !t.IsFeatured {
			continue
		}
		if q.Origin != "" && !strings.EqualFold(t.Origin.Name, q.Origin) {
			continue
		}
		if q.Destination != "" && !strings.EqualFold(t.Destination.Name, q.Destination) {
			continue
		}
		if q.Day != "" && !t.RunsOn(q.Day) {
			continue
		}
		if query != "" && !matchesQuery(t, query) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matchesQuery(t *domain.TourTransport, query string) bool {
	if t.Title.Contains(query) || t.Description.Contains(query) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Origin.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Destination.Name), query) {
		return true
	}
	for _, s := range t.IntermediateStops {
		if strings.Contains(strings.ToLower(s.Name), query) {
			return true
		}
	}
	return false
}
