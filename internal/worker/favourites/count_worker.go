package favourites

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spotshot-api/internal/domain"
	"github.com/spotshot-api/internal/domain/repository"
	"github.com/spotshot-api/internal/worker"
	"go.uber.org/zap"
)

const (
	emptyQueueSleep = 100 * time.Millisecond // пауза если стрим пуст
)

// CountWorker обрабатывает события избранного: инвалидирует кеш
// и прогревает счётчик сохранений спота. Несколько инстансов API
// делят один кеш, поэтому инвалидация идёт через стрим, а не локально.
type CountWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	favRepo      repository.FavouriteRepository
	cacheRepo    repository.CacheRepository
	consumerName string
	batchSize    int
	maxRetries   int
	countTTL     time.Duration
}

// NewCountWorker создает новый CountWorker
func NewCountWorker(
	streamRepo repository.StreamRepository,
	favRepo repository.FavouriteRepository,
	cacheRepo repository.CacheRepository,
	consumerGroup string,
	batchSize int,
	maxRetries int,
	countTTL time.Duration,
	logger *zap.Logger,
) *CountWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &CountWorker{
		BaseWorker:   worker.NewBaseWorker("favourite-count", consumerGroup, logger),
		streamRepo:   streamRepo,
		favRepo:      favRepo,
		cacheRepo:    cacheRepo,
		consumerName: consumerName,
		batchSize:    batchSize,
		maxRetries:   maxRetries,
		countTTL:     countTTL,
	}
}

// Start запускает воркер
func (w *CountWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting CountWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamFavouriteEvents, w.ConsumerGroup()); err != nil {
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
				time.Sleep(time.Second) // пауза при ошибке
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает batch событий.
// Возвращает количество прочитанных сообщений.
func (w *CountWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamFavouriteEvents,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			_ = w.streamRepo.AckMessage(ctx, domain.StreamFavouriteEvents, w.ConsumerGroup(), msg.ID)
			continue
		}

		if err := w.handleEvent(ctx, event); err != nil {
			logger.Error("Failed to handle favourite event",
				zap.String("message_id", msg.ID),
				zap.String("spot_id", event.SpotID),
				zap.Error(err))
			// без ACK: сообщение останется в pending и будет повторено
			continue
		}

		if err := w.streamRepo.AckMessage(ctx, domain.StreamFavouriteEvents, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Error("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	return len(messages), nil
}

// handleEvent инвалидирует кеш и прогревает счётчик из БД
func (w *CountWorker) handleEvent(ctx context.Context, event *domain.FavouriteEvent) error {
	var lastErr error
	for attempt := 0; attempt < w.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
		}

		if err := w.cacheRepo.InvalidateFavourites(ctx, event.UserID, event.SpotID); err != nil {
			lastErr = err
			continue
		}

		count, err := w.favRepo.CountBySpot(ctx, event.SpotID)
		if err != nil {
			lastErr = err
			continue
		}

		if err := w.cacheRepo.SetFavouriteCount(ctx, event.SpotID, count, w.countTTL); err != nil {
			// кеш прогреется при следующем чтении
			w.Logger().Warn("Failed to warm favourite count",
				zap.String("spot_id", event.SpotID),
				zap.Error(err))
		}

		return nil
	}

	return fmt.Errorf("handle event after %d attempts: %w", w.maxRetries, lastErr)
}

// parseMessage десериализует событие из поля data
func parseMessage(msg domain.StreamMessage) (*domain.FavouriteEvent, error) {
	var event domain.FavouriteEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}

	if event.SpotID == "" {
		return nil, fmt.Errorf("event without spot_id")
	}

	return &event, nil
}
