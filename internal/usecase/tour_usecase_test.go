package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/inkatravel-api/internal/domain"
	"github.com/inkatravel-api/internal/pkg/errors"
	"github.com/inkatravel-api/internal/usecase"
	"github.com/inkatravel-api/internal/usecase/dto"
)

func newTourUseCase(
	tourRepo *MockTourRepository,
	transportRepo *MockTransportRepository,
	cacheRepo *MockCacheRepository,
) *usecase.TourUseCase {
	return usecase.NewTourUseCase(tourRepo, transportRepo, cacheRepo, 10*time.Minute, zap.NewNop())
}

func TestTourUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("derives the slug from the Spanish title", func(t *testing.T) {
		mockTourRepo := new(MockTourRepository)
		mockTransportRepo := new(MockTransportRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := newTourUseCase(mockTourRepo, mockTransportRepo, mockCacheRepo)

		mockTourRepo.On("SlugExists", ctx, "camino-inca-clasico").Return(false, nil)
		mockTourRepo.On("Create", ctx, mock.AnythingOfType("*domain.Tour")).Return(nil)

		tour, err := uc.Create(ctx, dto.CreateTourRequest{
			Title:       dto.TranslatedTextInput{"es": "Camino Inca Clásico", "en": "Classic Inca Trail"},
			Category:    "adventure",
			Difficulty:  "challenging",
			PackageType: "premium",
			Price:       650,
		})

		assert.NoError(t, err)
		assert.Equal(t, "camino-inca-clasico", tour.Slug)
		assert.NotEmpty(t, tour.ID)
		assert.True(t, tour.IsActive)
		mockTourRepo.AssertExpectations(t)
	})

	t.Run("stores ratings and review counts", func(t *testing.T) {
		mockTourRepo := new(MockTourRepository)
		mockTransportRepo := new(MockTransportRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := newTourUseCase(mockTourRepo, mockTransportRepo, mockCacheRepo)

		mockTourRepo.On("SlugExists", ctx, mock.Anything).Return(false, nil)
		mockTourRepo.On("Create", ctx, mock.AnythingOfType("*domain.Tour")).Return(nil)

		tour, err := uc.Create(ctx, dto.CreateTourRequest{
			Title:       dto.TranslatedTextInput{"es": "Camino Inca Clásico"},
			Category:    "adventure",
			Difficulty:  "challenging",
			PackageType: "premium",
			Price:       650,
			Rating:      4.8,
			Reviews:     235,
		})

		assert.NoError(t, err)
		assert.Equal(t, 4.8, tour.Rating)
		assert.Equal(t, 235, tour.Reviews)
	})

	t.Run("suffixes the slug until unique", func(t *testing.T) {
		mockTourRepo := new(MockTourRepository)
		mockTransportRepo := new(MockTransportRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := newTourUseCase(mockTourRepo, mockTransportRepo, mockCacheRepo)

		mockTourRepo.On("SlugExists", ctx, "camino-inca-clasico").Return(true, nil)
		mockTourRepo.On("SlugExists", ctx, "camino-inca-clasico-2").Return(true, nil)
		mockTourRepo.On("SlugExists", ctx, "camino-inca-clasico-3").Return(false, nil)
		mockTourRepo.On("Create", ctx, mock.AnythingOfType("*domain.Tour")).Return(nil)

		tour, err := uc.Create(ctx, dto.CreateTourRequest{
			Title:       dto.TranslatedTextInput{"es": "Camino Inca Clásico"},
			Category:    "adventure",
			Difficulty:  "challenging",
			PackageType: "premium",
			Price:       650,
		})

		assert.NoError(t, err)
		assert.Equal(t, "camino-inca-clasico-3", tour.Slug)
		mockTourRepo.AssertExpectations(t)
	})

	t.Run("renumbers itinerary days from one", func(t *testing.T) {
		mockTourRepo := new(MockTourRepository)
		mockTransportRepo := new(MockTransportRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := newTourUseCase(mockTourRepo, mockTransportRepo, mockCacheRepo)

		mockTourRepo.On("SlugExists", ctx, mock.Anything).Return(false, nil)
		mockTourRepo.On("Create", ctx, mock.AnythingOfType("*domain.Tour")).Return(nil)

		tour, err := uc.Create(ctx, dto.CreateTourRequest{
			Title:       dto.TranslatedTextInput{"es": "Valle Sagrado"},
			Category:    "cultural",
			Difficulty:  "easy",
			PackageType: "basic",
			Price:       120,
			Itinerary: []dto.ItineraryDayInput{
				{Day: 7, Title: dto.TranslatedTextInput{"es": "Pisac"}},
				{Day: 3, Title: dto.TranslatedTextInput{"es": "Ollantaytambo"}},
			},
		})

		assert.NoError(t, err)
		assert.Len(t, tour.Itinerary, 2)
		assert.Equal(t, 1, tour.Itinerary[0].Day)
		assert.Equal(t, 2, tour.Itinerary[1].Day)
	})

	t.Run("requires a title in the default language", func(t *testing.T) {
		mockTourRepo := new(MockTourRepository)
		mockTransportRepo := new(MockTransportRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := newTourUseCase(mockTourRepo, mockTransportRepo, mockCacheRepo)

		tour, err := uc.Create(ctx, dto.CreateTourRequest{
			Title:       dto.TranslatedTextInput{"en": "Classic Inca Trail"},
			Category:    "adventure",
			Difficulty:  "challenging",
			PackageType: "premium",
			Price:       650,
		})

		assert.Nil(t, tour)
		appErr, ok := err.(*errors.AppError)
		assert.True(t, ok)
		assert.Equal(t, errors.ErrInvalidRequest.Code, appErr.Code)
		mockTourRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown transport references", func(t *testing.T) {
		mockTourRepo := new(MockTourRepository)
		mockTransportRepo := new(MockTransportRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := newTourUseCase(mockTourRepo, mockTransportRepo, mockCacheRepo)

		ids := []string{"t-1", "t-2"}
		mockTransportRepo.On("GetByIDs", ctx, ids).
			Return([]*domain.TourTransport{{ID: "t-1"}}, nil)

		tour, err := uc.Create(ctx, dto.CreateTourRequest{
			Title:              dto.TranslatedTextInput{"es": "Valle Sagrado"},
			Category:           "cultural",
			Difficulty:         "easy",
			PackageType:        "basic",
			Price:              120,
			TransportOptionIDs: ids,
		})

		assert.Nil(t, tour)
		assert.Equal(t, errors.ErrTransportNotFound, err)
	})
}

func TestTourUseCase_GetBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("serves the cached copy without hitting storage", func(t *testing.T) {
		mockTourRepo := new(MockTourRepository)
		mockTransportRepo := new(MockTransportRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := newTourUseCase(mockTourRepo, mockTransportRepo, mockCacheRepo)

		cached, _ := json.Marshal(&domain.Tour{
			ID:       "tour-1",
			Slug:     "camino-inca-clasico",
			IsActive: true,
		})
		mockCacheRepo.On("Get", ctx, "cache:tour:slug:camino-inca-clasico").Return(cached, nil)

		tour, err := uc.GetBySlug(ctx, "camino-inca-clasico", false)

		assert.NoError(t, err)
		assert.Equal(t, "tour-1", tour.ID)
		mockTourRepo.AssertNotCalled(t, "GetBySlug", mock.Anything, mock.Anything)
	})

	t.Run("hides inactive tours from public callers", func(t *testing.T) {
		mockTourRepo := new(MockTourRepository)
		mockTransportRepo := new(MockTransportRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := newTourUseCase(mockTourRepo, mockTransportRepo, mockCacheRepo)

		mockCacheRepo.On("Get", ctx, mock.Anything).Return(nil, nil)
		mockTourRepo.On("GetBySlug", ctx, "camino-inca-clasico").
			Return(&domain.Tour{ID: "tour-1", Slug: "camino-inca-clasico", IsActive: false}, nil)

		tour, err := uc.GetBySlug(ctx, "camino-inca-clasico", false)

		assert.Nil(t, tour)
		assert.Equal(t, errors.ErrTourNotFound, err)
	})

	t.Run("serves inactive tours to admin callers and caches them", func(t *testing.T) {
		mockTourRepo := new(MockTourRepository)
		mockTransportRepo := new(MockTransportRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := newTourUseCase(mockTourRepo, mockTransportRepo, mockCacheRepo)

		mockCacheRepo.On("Get", ctx, mock.Anything).Return(nil, nil)
		mockTourRepo.On("GetBySlug", ctx, "camino-inca-clasico").
			Return(&domain.Tour{ID: "tour-1", Slug: "camino-inca-clasico", IsActive: false}, nil)
		mockCacheRepo.On("Set", ctx, "cache:tour:slug:camino-inca-clasico", mock.Anything, 10*time.Minute).Return(nil)

		tour, err := uc.GetBySlug(ctx, "camino-inca-clasico", true)

		assert.NoError(t, err)
		assert.Equal(t, "tour-1", tour.ID)
		mockCacheRepo.AssertExpectations(t)
	})
}

func TestTourUseCase_List(t *testing.T) {
	ctx := context.Background()

	tours := []*domain.Tour{
		{ID: "t-1", Category: "adventure", Region: "Cusco"},
		{ID: "t-2", Category: "cultural", Region: "Cusco"},
		{ID: "t-3", Category: "adventure", Region: "Puno"},
	}

	t.Run("filters by category and region", func(t *testing.T) {
		mockTourRepo := new(MockTourRepository)
		mockTransportRepo := new(MockTransportRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := newTourUseCase(mockTourRepo, mockTransportRepo, mockCacheRepo)

		mockTourRepo.On("List", ctx, true).Return(tours, nil)

		out, err := uc.List(ctx, dto.TourListQuery{Category: "adventure", Region: "Cusco"}, false)

		assert.NoError(t, err)
		assert.Len(t, out, 1)
		assert.Equal(t, "t-1", out[0].ID)
	})

	t.Run("includes inactive tours only for admin listings", func(t *testing.T) {
		mockTourRepo := new(MockTourRepository)
		mockTransportRepo := new(MockTransportRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := newTourUseCase(mockTourRepo, mockTransportRepo, mockCacheRepo)

		mockTourRepo.On("List", ctx, false).Return(tours, nil)

		out, err := uc.List(ctx, dto.TourListQuery{}, true)

		assert.NoError(t, err)
		assert.Len(t, out, 3)
		mockTourRepo.AssertExpectations(t)
	})
}

func TestTourUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only the present fields", func(t *testing.T) {
		mockTourRepo := new(MockTourRepository)
		mockTransportRepo := new(MockTransportRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := newTourUseCase(mockTourRepo, mockTransportRepo, mockCacheRepo)

		stored := &domain.Tour{
			ID:       "tour-1",
			Slug:     "camino-inca-clasico",
			Title:    domain.TranslatedText{domain.LanguageES: "Camino Inca Clásico"},
			Price:    650,
			Region:   "Cusco",
			IsActive: true,
		}
		mockTourRepo.On("GetByID", ctx, "tour-1").Return(stored, nil)
		mockTourRepo.On("Update", ctx, mock.AnythingOfType("*domain.Tour")).Return(nil)
		mockCacheRepo.On("Delete", ctx, "cache:tour:slug:camino-inca-clasico").Return(nil)

		newPrice := 700.0
		reviews := 88
		tour, err := uc.Update(ctx, "tour-1", dto.UpdateTourRequest{Price: &newPrice, Reviews: &reviews})

		assert.NoError(t, err)
		assert.Equal(t, 700.0, tour.Price)
		assert.Equal(t, 88, tour.Reviews)
		assert.Equal(t, "Cusco", tour.Region)
		assert.Equal(t, "Camino Inca Clásico", tour.Title.Resolve(domain.LanguageES))
		mockCacheRepo.AssertExpectations(t)
	})

	t.Run("renumbers a replaced itinerary", func(t *testing.T) {
		mockTourRepo := new(MockTourRepository)
		mockTransportRepo := new(MockTransportRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := newTourUseCase(mockTourRepo, mockTransportRepo, mockCacheRepo)

		stored := &domain.Tour{
			ID:    "tour-1",
			Slug:  "valle-sagrado",
			Title: domain.TranslatedText{domain.LanguageES: "Valle Sagrado"},
		}
		mockTourRepo.On("GetByID", ctx, "tour-1").Return(stored, nil)
		mockTourRepo.On("Update", ctx, mock.AnythingOfType("*domain.Tour")).Return(nil)
		mockCacheRepo.On("Delete", ctx, mock.Anything).Return(nil)

		itinerary := []dto.ItineraryDayInput{
			{Day: 5, Title: dto.TranslatedTextInput{"es": "Pisac"}},
			{Day: 1, Title: dto.TranslatedTextInput{"es": "Chinchero"}},
		}
		tour, err := uc.Update(ctx, "tour-1", dto.UpdateTourRequest{Itinerary: &itinerary})

		assert.NoError(t, err)
		assert.Equal(t, 1, tour.Itinerary[0].Day)
		assert.Equal(t, 2, tour.Itinerary[1].Day)
	})
}

func TestTourUseCase_SetTransportOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("deduplicates references and replaces the links", func(t *testing.T) {
		mockTourRepo := new(MockTourRepository)
		mockTransportRepo := new(MockTransportRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := newTourUseCase(mockTourRepo, mockTransportRepo, mockCacheRepo)

		stored := &domain.Tour{ID: "tour-1", Slug: "camino-inca-clasico"}
		mockTourRepo.On("GetByID", ctx, "tour-1").Return(stored, nil)
		mockTransportRepo.On("GetByIDs", ctx, []string{"t-1", "t-2"}).
			Return([]*domain.TourTransport{{ID: "t-1"}, {ID: "t-2"}}, nil)
		mockTourRepo.On("SetTransportOptions", ctx, "tour-1", []string{"t-1", "t-2"}).Return(nil)
		mockCacheRepo.On("Delete", ctx, mock.Anything).Return(nil)

		refs := []dto.TransportOptionRef{{ID: "t-1"}, {ID: "t-2"}, {ID: "t-1"}, {ID: ""}}
		tour, err := uc.SetTransportOptions(ctx, "tour-1", refs)

		assert.NoError(t, err)
		assert.Equal(t, []string{"t-1", "t-2"}, tour.TransportOptionIDs)
		mockTourRepo.AssertExpectations(t)
		mockTransportRepo.AssertExpectations(t)
	})

	t.Run("fails when a referenced transport does not exist", func(t *testing.T) {
		mockTourRepo := new(MockTourRepository)
		mockTransportRepo := new(MockTransportRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := newTourUseCase(mockTourRepo, mockTransportRepo, mockCacheRepo)

		mockTourRepo.On("GetByID", ctx, "tour-1").Return(&domain.Tour{ID: "tour-1"}, nil)
		mockTransportRepo.On("GetByIDs", ctx, []string{"t-1"}).
			Return([]*domain.TourTransport{}, nil)

		tour, err := uc.SetTransportOptions(ctx, "tour-1", []dto.TransportOptionRef{{ID: "t-1"}})

		assert.Nil(t, tour)
		assert.Equal(t, errors.ErrTransportNotFound, err)
		mockTourRepo.AssertNotCalled(t, "SetTransportOptions", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTourUseCase_GetDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves linked transports into the detail payload", func(t *testing.T) {
		mockTourRepo := new(MockTourRepository)
		mockTransportRepo := new(MockTransportRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := newTourUseCase(mockTourRepo, mockTransportRepo, mockCacheRepo)

		stored := &domain.Tour{
			ID:                 "tour-1",
			Slug:               "camino-inca-clasico",
			Title:              domain.TranslatedText{domain.LanguageES: "Camino Inca Clásico", domain.LanguageEN: "Classic Inca Trail"},
			TransportOptionIDs: []string{"t-1"},
			IsActive:           true,
		}
		mockCacheRepo.On("Get", ctx, mock.Anything).Return(nil, nil)
		mockCacheRepo.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		mockTourRepo.On("GetBySlug", ctx, "camino-inca-clasico").Return(stored, nil)
		mockTransportRepo.On("GetByIDs", ctx, []string{"t-1"}).
			Return([]*domain.TourTransport{{
				ID:    "t-1",
				Title: domain.TranslatedText{domain.LanguageES: "Cusco a Aguas Calientes"},
			}}, nil)

		detail, err := uc.GetDetail(ctx, "camino-inca-clasico", domain.LanguageEN, false)

		assert.NoError(t, err)
		assert.Equal(t, "Classic Inca Trail", detail.Title)
		assert.Len(t, detail.TransportOptions, 1)
		assert.Equal(t, "Cusco a Aguas Calientes", detail.TransportOptions[0].Title)
	})

	t.Run("still renders when transport resolution fails", func(t *testing.T) {
		mockTourRepo := new(MockTourRepository)
		mockTransportRepo := new(MockTransportRepository)
		mockCacheRepo := new(MockCacheRepository)
		uc := newTourUseCase(mockTourRepo, mockTransportRepo, mockCacheRepo)

		stored := &domain.Tour{
			ID:                 "tour-1",
			Slug:               "camino-inca-clasico",
			Title:              domain.TranslatedText{domain.LanguageES: "Camino Inca Clásico"},
			TransportOptionIDs: []string{"t-1"},
			IsActive:           true,
		}
		mockCacheRepo.On("Get", ctx, mock.Anything).Return(nil, nil)
		mockCacheRepo.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		mockTourRepo.On("GetBySlug", ctx, "camino-inca-clasico").Return(stored, nil)
		mockTransportRepo.On("GetByIDs", ctx, []string{"t-1"}).Return(nil, errors.ErrDatabaseError)

		detail, err := uc.GetDetail(ctx, "camino-inca-clasico", domain.LanguageES, false)

		assert.NoError(t, err)
		assert.Empty(t, detail.TransportOptions)
	})
}

func TestTourUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	mockTourRepo := new(MockTourRepository)
	mockTransportRepo := new(MockTransportRepository)
	mockCacheRepo := new(MockCacheRepository)
	uc := newTourUseCase(mockTourRepo, mockTransportRepo, mockCacheRepo)

	mockTourRepo.On("GetByID", ctx, "tour-1").
		Return(&domain.Tour{ID: "tour-1", Slug: "camino-inca-clasico"}, nil)
	mockTourRepo.On("Delete", ctx, "tour-1").Return(nil)
	mockCacheRepo.On("Delete", ctx, "cache:tour:slug:camino-inca-clasico").Return(nil)

	err := uc.Delete(ctx, "tour-1")

	assert.NoError(t, err)
	mockTourRepo.AssertExpectations(t)
	mockCacheRepo.AssertExpectations(t)
}
