package repository

import (
	"context"

	"github.com/inkatravel-api/internal/domain"
)

// PreferenceRepository persists per-user UI language choices. A missing
// preference is reported as empty, never as an error.
type PreferenceRepository interface {
	GetLanguage(ctx context.Context, userID string) (domain.Language, error)
	SetLanguage(ctx context.Context, userID string, lang domain.Language) error
}
