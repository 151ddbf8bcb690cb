package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/inkatravel-api/internal/domain"
	"github.com/inkatravel-api/internal/domain/repository"
	"github.com/inkatravel-api/internal/pkg/errors"
	"github.com/inkatravel-api/internal/usecase/dto"
)

// Localizer is the slice of the i18n dictionary store this usecase needs.
type Localizer interface {
	Dictionary(lang domain.Language) map[string]string
	Languages() []string
}

type I18nUseCase struct {
	localizer      Localizer
	preferenceRepo repository.PreferenceRepository
	logger         *zap.Logger
}

func NewI18nUseCase(
	localizer Localizer,
	preferenceRepo repository.PreferenceRepository,
	logger *zap.Logger,
) *I18nUseCase {
	return &I18nUseCase{
		localizer:      localizer,
		preferenceRepo: preferenceRepo,
		logger:         logger,
	}
}

// GetDictionary serves the UI strings for the resolved language.
func (uc *I18nUseCase) GetDictionary(lang domain.Language) *dto.LanguageResponse {
	return &dto.LanguageResponse{
		Language:     string(lang),
		Supported:    uc.localizer.Languages(),
		Translations: uc.localizer.Dictionary(lang),
	}
}

// SetPreference persists the caller's UI language. Anonymous callers keep
// their choice in the cookie only, so an empty userID is not an error.
func (uc *I18nUseCase) SetPreference(ctx context.Context, userID string, req dto.SetLanguageRequest) (*dto.LanguagePreferenceResponse, error) {
	if !domain.IsValidUILanguage(req.Language) {
		return nil, errors.ErrInvalidLanguage
	}
	lang := domain.Language(req.Language)

	if userID != "" {
		if err := uc.preferenceRepo.SetLanguage(ctx, userID, lang); err != nil {
			uc.logger.Error("Failed to save language preference",
				zap.String("user_id", userID), zap.Error(err))
			return nil, err
		}
	}

	uc.logger.Info("Language preference set",
		zap.String("user_id", userID),
		zap.String("language", req.Language))
	return &dto.LanguagePreferenceResponse{Language: req.Language}, nil
}

// GetPreference returns the stored preference, or empty when none exists.
func (uc *I18nUseCase) GetPreference(ctx context.Context, userID string) (domain.Language, error) {
	if userID == "" {
		return "", nil
	}
	return uc.preferenceRepo.GetLanguage(ctx, userID)
}
