package cartsync

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/inkatravel-api/internal/domain"
	"github.com/inkatravel-api/internal/domain/repository"
	"github.com/inkatravel-api/internal/worker"
)

const (
	maxBatchSize    = 20
	emptyQueueSleep = 100 * time.Millisecond
)

// SummaryWorker consumes cart-updated events and rebuilds the cached cart
// summary so badge reads stay cheap. Each event is processed independently;
// a failed rebuild leaves the old summary in place and the event pending.
type SummaryWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	cartRepo     repository.CartRepository
	cacheRepo    repository.CacheRepository
	summaryTTL   time.Duration
	consumerName string
	maxRetries   int
}

func NewSummaryWorker(
	streamRepo repository.StreamRepository,
	cartRepo repository.CartRepository,
	cacheRepo repository.CacheRepository,
	summaryTTL time.Duration,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *SummaryWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &SummaryWorker{
		BaseWorker:   worker.NewBaseWorker("cart-summary", consumerGroup, logger),
		streamRepo:   streamRepo,
		cartRepo:     cartRepo,
		cacheRepo:    cacheRepo,
		summaryTTL:   summaryTTL,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

func (w *SummaryWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting SummaryWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamCartUpdated, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}
			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

func (w *SummaryWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(ctx,
		domain.StreamCartUpdated, w.ConsumerGroup(), w.consumerName, maxBatchSize)
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	processed := 0
	for _, msg := range messages {
		var event domain.CartUpdatedEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			logger.Warn("Skipping malformed cart event",
				zap.String("message_id", msg.ID), zap.Error(err))
			w.ack(ctx, msg.ID)
			continue
		}

		if err := w.rebuildSummary(ctx, event.UserID); err != nil {
			logger.Error("Failed to rebuild cart summary",
				zap.String("user_id", event.UserID),
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// Left unacked: the pending entry is retried on the next claim.
			continue
		}

		w.ack(ctx, msg.ID)
		processed++
	}

	logger.Debug("Cart summary batch processed",
		zap.Int("received", len(messages)),
		zap.Int("processed", processed))
	return processed, nil
}

// rebuildSummary recomputes the cached projection from the stored cart. A
// deleted cart settles to the empty summary so stale badges clear too.
func (w *SummaryWorker) rebuildSummary(ctx context.Context, userID string) error {
	cart, err := w.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	summary := domain.EmptyCartSummary(userID)
	if cart != nil {
		summary = cart.Summarize(time.Now().UTC())
	} else {
		summary.RefreshedAt = time.Now().UTC()
	}

	return w.cacheRepo.SetCartSummary(ctx, summary, w.summaryTTL)
}

func (w *SummaryWorker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamCartUpdated, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Warn("Failed to ack message", zap.String("message_id", messageID), zap.Error(err))
	}
}
