package repository

import (
	"context"

	"github.com/inkatravel-api/internal/domain"
)

type StreamRepository interface {
	CreateConsumerGroup(ctx context.Context, stream, group string) error
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)
	AckMessage(ctx context.Context, stream, group, messageID string) error
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
