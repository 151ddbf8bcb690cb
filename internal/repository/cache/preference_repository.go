package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/inkatravel-api/internal/domain"
	"github.com/inkatravel-api/internal/domain/repository"
)

type preferenceRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewPreferenceRepository stores per-user language choices in Redis with a
// sliding TTL. Losing one is harmless: resolution falls back to the
// Accept-Language header.
func NewPreferenceRepository(redis *Redis, ttl time.Duration) repository.PreferenceRepository {
	return &preferenceRepository{
		client: redis.Client(),
		ttl:    ttl,
		logger: redis.logger,
	}
}

func languagePreferenceKey(userID string) string {
	return "pref:lang:" + userID
}

func (r *preferenceRepository) GetLanguage(ctx context.Context, userID string) (domain.Language, error) {
	val, err := r.client.Get(ctx, languagePreferenceKey(userID)).Result()
	if err == redis.Nil {
		return "", nil // No preference stored
	}
	if err != nil {
		r.logger.Error("Failed to get language preference",
			zap.String("user_id", userID), zap.Error(err))
		return "", fmt.Errorf("preference get error: %w", err)
	}
	if !domain.IsValidUILanguage(val) {
		return "", nil
	}
	return domain.Language(val), nil
}

func (r *preferenceRepository) SetLanguage(ctx context.Context, userID string, lang domain.Language) error {
	err := r.client.Set(ctx, languagePreferenceKey(userID), string(lang), r.ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set language preference",
			zap.String("user_id", userID), zap.Error(err))
		return fmt.Errorf("preference set error: %w", err)
	}
	return nil
}
