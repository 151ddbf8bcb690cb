package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inkatravel-api/internal/domain"
	"github.com/inkatravel-api/internal/domain/repository"
	"github.com/inkatravel-api/internal/pkg/errors"
	"github.com/inkatravel-api/internal/pkg/utils"
	"github.com/inkatravel-api/internal/usecase/dto"
)

const tourCacheKeyPrefix = "cache:tour:slug:"

type TourUseCase struct {
	tourRepo      repository.TourRepository
	transportRepo repository.TransportRepository
	cacheRepo     repository.CacheRepository
	cacheTTL      time.Duration
	logger        *zap.Logger
}

func NewTourUseCase(
	tourRepo repository.TourRepository,
	transportRepo repository.TransportRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *TourUseCase {
	return &TourUseCase{
		tourRepo:      tourRepo,
		transportRepo: transportRepo,
		cacheRepo:     cacheRepo,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

// Create stores a new tour. The slug is derived from the Spanish title and
// suffixed until unique; itinerary days are renumbered from 1.
func (uc *TourUseCase) Create(ctx context.Context, req dto.CreateTourRequest) (*domain.Tour, error) {
	title := req.Title.ToDomain()
	if !title.HasDefault() {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"title": "missing default language value",
		})
	}

	now := time.Now().UTC()
	tour := &domain.Tour{
		ID:            uuid.New().String(),
		Title:         title,
		Subtitle:      req.Subtitle.ToDomain(),
		Description:   req.Description.ToDomain(),
		Category:      req.Category,
		Difficulty:    req.Difficulty,
		PackageType:   req.PackageType,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Rating:        req.Rating,
		Reviews:       req.Reviews,
		Duration:      req.Duration.ToDomain(),
		Location:      req.Location.ToDomain(),
		Region:        req.Region,
		ImageURL:      req.ImageURL,
		GalleryURLs:   req.GalleryURLs,
		Highlights:    toDomainList(req.Highlights),
		Includes:      toDomainList(req.Includes),
		NotIncludes:   toDomainList(req.NotIncludes),
		ToBring:       toDomainList(req.ToBring),
		Conditions:    toDomainList(req.Conditions),
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.IsActive != nil {
		tour.IsActive = *req.IsActive
	}

	for _, d := range req.Itinerary {
		tour.Itinerary = append(tour.Itinerary, d.ToDomain())
	}
	tour.Itinerary = domain.NormalizeItinerary(tour.Itinerary)

	if len(req.TransportOptionIDs) > 0 {
		if err := uc.verifyTransportIDs(ctx, req.TransportOptionIDs); err != nil {
			return nil, err
		}
		tour.TransportOptionIDs = req.TransportOptionIDs
	}

	slug, err := uc.uniqueSlug(ctx, title.Resolve(domain.DefaultLanguage))
	if err != nil {
		return nil, err
	}
	tour.Slug = slug

	if err := uc.tourRepo.Create(ctx, tour); err != nil {
		uc.logger.Error("Failed to create tour", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Tour created",
		zap.String("tour_id", tour.ID),
		zap.String("slug", tour.Slug))
	return tour, nil
}

// List returns tours visible to the caller. Inactive tours are included only
// when includeInactive is set (admin listings).
func (uc *TourUseCase) List(ctx context.Context, q dto.TourListQuery, includeInactive bool) ([]*domain.Tour, error) {
	tours, err := uc.tourRepo.List(ctx, !includeInactive)
	if err != nil {
		uc.logger.Error("Failed to list tours", zap.Error(err))
		return nil, err
	}

	if q.Category == "" && q.Region == "" {
		return tours, nil
	}

	filtered := make([]*domain.Tour, 0, len(tours))
	for _, t := range tours {
		if q.Category != "" && t.Category != q.Category {
			continue
		}
		if q.Region != "" && t.Region != q.Region {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered, nil
}

// GetBySlug serves a single tour, read through the cache. Inactive tours are
// hidden from public callers.
func (uc *TourUseCase) GetBySlug(ctx context.Context, slug string, includeInactive bool) (*domain.Tour, error) {
	cacheKey := tourCacheKeyPrefix + slug

	if data, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && data != nil {
		var tour domain.Tour
		if err := unmarshalCached(data, &tour); err == nil {
			if tour.IsActive || includeInactive {
				return &tour, nil
			}
			return nil, errors.ErrTourNotFound
		}
	}

	tour, err := uc.tourRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !tour.IsActive && !includeInactive {
		return nil, errors.ErrTourNotFound
	}

	if data, err := marshalCached(tour); err == nil {
		if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache tour", zap.String("slug", slug), zap.Error(err))
		}
	}
	return tour, nil
}

// GetDetail loads a tour with its linked transport options resolved.
func (uc *TourUseCase) GetDetail(ctx context.Context, slug string, lang domain.Language, includeInactive bool) (*dto.TourDetailResponse, error) {
	tour, err := uc.GetBySlug(ctx, slug, includeInactive)
	if err != nil {
		return nil, err
	}

	var transports []*domain.TourTransport
	if len(tour.TransportOptionIDs) > 0 {
		transports, err = uc.transportRepo.GetByIDs(ctx, tour.TransportOptionIDs)
		if err != nil {
			// The tour page still renders without its transport block.
			uc.logger.Warn("Failed to resolve transport options",
				zap.String("tour_id", tour.ID), zap.Error(err))
			transports = nil
		}
	}

	resp := dto.NewTourDetail(tour, transports, lang)
	return &resp, nil
}

// Update applies a partial update. Present arrays and subdocuments replace
// the stored value wholesale; absent fields are left untouched.
func (uc *TourUseCase) Update(ctx context.Context, id string, req dto.UpdateTourRequest) (*domain.Tour, error) {
	tour, err := uc.tourRepo.GetByID(ctx, id)
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
		tour.Title = title
	}
	if req.Subtitle != nil {
		tour.Subtitle = req.Subtitle.ToDomain()
	}
	if req.Description != nil {
		tour.Description = req.Description.ToDomain()
	}
	if req.Category != nil {
		tour.Category = *req.Category
	}
	if req.Difficulty != nil {
		tour.Difficulty = *req.Difficulty
	}
	if req.PackageType != nil {
		tour.PackageType = *req.PackageType
	}
	if req.Price != nil {
		tour.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		tour.OriginalPrice = *req.OriginalPrice
	}
	if req.Rating != nil {
		tour.Rating = *req.Rating
	}
	if req.Reviews != nil {
		tour.Reviews = *req.Reviews
	}
	if req.Duration != nil {
		tour.Duration = req.Duration.ToDomain()
	}
	if req.Location != nil {
		tour.Location = req.Location.ToDomain()
	}
	if req.Region != nil {
		tour.Region = *req.Region
	}
	if req.ImageURL != nil {
		tour.ImageURL = *req.ImageURL
	}
	if req.GalleryURLs != nil {
		tour.GalleryURLs = *req.GalleryURLs
	}
	if req.Highlights != nil {
		tour.Highlights = toDomainList(*req.Highlights)
	}
	if req.Includes != nil {
		tour.Includes = toDomainList(*req.Includes)
	}
	if req.NotIncludes != nil {
		tour.NotIncludes = toDomainList(*req.NotIncludes)
	}
	if req.ToBring != nil {
		tour.ToBring = toDomainList(*req.ToBring)
	}
	if req.Conditions != nil {
		tour.Conditions = toDomainList(*req.Conditions)
	}
	if req.Itinerary != nil {
		days := make([]domain.ItineraryDay, 0, len(*req.Itinerary))
		for _, d := range *req.Itinerary {
			days = append(days, d.ToDomain())
		}
		tour.Itinerary = domain.NormalizeItinerary(days)
	}
	if req.TransportOptionIDs != nil {
		if err := uc.verifyTransportIDs(ctx, *req.TransportOptionIDs); err != nil {
			return nil, err
		}
		tour.TransportOptionIDs = *req.TransportOptionIDs
	}
	if req.IsActive != nil {
		tour.IsActive = *req.IsActive
	}

	tour.UpdatedAt = time.Now().UTC()

	if err := uc.tourRepo.Update(ctx, tour); err != nil {
		uc.logger.Error("Failed to update tour", zap.String("tour_id", id), zap.Error(err))
		return nil, err
	}
	uc.invalidate(ctx, tour.Slug)

	uc.logger.Info("Tour updated", zap.String("tour_id", id))
	return tour, nil
}

// SetTransportOptions replaces a tour's transport links. References may
// arrive as IDs or embedded objects; both collapse to the ID.
func (uc *TourUseCase) SetTransportOptions(ctx context.Context, tourID string, refs []dto.TransportOptionRef) (*domain.Tour, error) {
	tour, err := uc.tourRepo.GetByID(ctx, tourID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(refs))
	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		if ref.ID == "" || seen[ref.ID] {
			continue
		}
		seen[ref.ID] = true
		ids = append(ids, ref.ID)
	}

	if err := uc.verifyTransportIDs(ctx, ids); err != nil {
		return nil, err
	}

	if err := uc.tourRepo.SetTransportOptions(ctx, tourID, ids); err != nil {
		uc.logger.Error("Failed to set transport options",
			zap.String("tour_id", tourID), zap.Error(err))
		return nil, err
	}
	uc.invalidate(ctx, tour.Slug)

	tour.TransportOptionIDs = ids
	tour.UpdatedAt = time.Now().UTC()
	uc.logger.Info("Tour transport options replaced",
		zap.String("tour_id", tourID),
		zap.Int("count", len(ids)))
	return tour, nil
}

// Delete removes a tour permanently.
func (uc *TourUseCase) Delete(ctx context.Context, id string) error {
	tour, err := uc.tourRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.tourRepo.Delete(ctx, id); err != nil {
		uc.logger.Error("Failed to delete tour", zap.String("tour_id", id), zap.Error(err))
		return err
	}
	uc.invalidate(ctx, tour.Slug)

	uc.logger.Info("Tour deleted", zap.String("tour_id", id))
	return nil
}

// verifyTransportIDs ensures every referenced transport exists.
func (uc *TourUseCase) verifyTransportIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	transports, err := uc.transportRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(transports) != len(ids) {
		return errors.ErrTransportNotFound
	}
	return nil
}

// uniqueSlug slugifies the base and appends -2, -3, ... until free.
func (uc *TourUseCase) uniqueSlug(ctx context.Context, base string) (string, error) {
	slug := utils.Slugify(base)
	if slug == "" {
		return "", errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"title": "cannot derive slug",
		})
	}
	candidate := slug
	for i := 2; ; i++ {
		exists, err := uc.tourRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", slug, i)
	}
}

func (uc *TourUseCase) invalidate(ctx context.Context, slug string) {
	if err := uc.cacheRepo.Delete(ctx, tourCacheKeyPrefix+slug); err != nil {
		uc.logger.Warn("Failed to invalidate tour cache", zap.String("slug", slug), zap.Error(err))
	}
}

func toDomainList(items []dto.TranslatedTextInput) []domain.TranslatedText {
	if len(items) == 0 {
		return nil
	}
	out := make([]domain.TranslatedText, 0, len(items))
	for _, item := range items {
		out = append(out, item.ToDomain())
	}
	return out
}
