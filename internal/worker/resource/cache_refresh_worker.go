package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/recreation-microservice/internal/domain"
	"github.com/recreation-microservice/internal/domain/repository"
	"github.com/recreation-microservice/internal/usecase/dto"
	"github.com/recreation-microservice/internal/worker"
)

const (
	defaultBatchSize    = 20
	defaultClaimMinIdle = 30 * time.Second
	emptyQueueSleep     = 200 * time.Millisecond
	errorSleep          = time.Second
)

// DetailCache - операции use case, нужные воркеру
type DetailCache interface {
	InvalidateDetail(ctx context.Context, id string) (int, error)
	GetDetail(ctx context.Context, id string, imageSizeCodes []string) (*dto.RecreationResourceDetail, error)
}

// Options - настройки CacheRefreshWorker
type Options struct {
	ConsumerGroup string
	BatchSize     int
	// ClaimMinIdle - через сколько неподтверждённое сообщение забирается на повторную обработку
	ClaimMinIdle time.Duration
	// WarmSizeCodes - наборы size-кодов, карточки для которых прогреваются после инвалидации.
	// Пусто - только инвалидация.
	WarmSizeCodes [][]string
}

// CacheRefreshWorker читает события изменения ресурсов и сбрасывает (и при необходимости прогревает) кеш карточек
type CacheRefreshWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	cache      DetailCache
	batchSize  int
	minIdle    time.Duration
	warmSizes  [][]string
}

// NewCacheRefreshWorker создает новый CacheRefreshWorker
func NewCacheRefreshWorker(
	streamRepo repository.StreamRepository,
	cache DetailCache,
	opts Options,
	logger *zap.Logger,
) *CacheRefreshWorker {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	minIdle := opts.ClaimMinIdle
	if minIdle <= 0 {
		minIdle = defaultClaimMinIdle
	}

	return &CacheRefreshWorker{
		BaseWorker: worker.NewBaseWorker("rec-resource-cache-refresh", opts.ConsumerGroup, logger),
		streamRepo: streamRepo,
		cache:      cache,
		batchSize:  batchSize,
		minIdle:    minIdle,
		warmSizes:  opts.WarmSizeCodes,
	}
}

// Start запускает цикл обработки; возвращается после Stop или отмены ctx
func (w *CacheRefreshWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting CacheRefreshWorker",
		zap.String("stream", domain.StreamRecResourceUpdated),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamRecResourceUpdated, w.ConsumerGroup()); err != nil {
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
		}

		processed, err := w.ProcessBatch(ctx)
		if err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			w.Pause(ctx, errorSleep)
			continue
		}

		if processed == 0 {
			w.Pause(ctx, emptyQueueSleep)
		}
	}
}

// ProcessBatch обрабатывает одну пачку сообщений и возвращает их количество.
// Сначала забираются зависшие без ack сообщения, затем читаются новые.
// Битые сообщения подтверждаются и пропускаются; при неудачном обновлении сообщение
// остаётся в pending и возвращается ошибка.
func (w *CacheRefreshWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ClaimPending(
		ctx,
		domain.StreamRecResourceUpdated,
		w.ConsumerGroup(),
		w.ConsumerName(),
		w.minIdle,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to claim pending: %w", err)
	}

	if len(messages) == 0 {
		messages, err = w.streamRepo.ConsumeBatch(
			ctx,
			domain.StreamRecResourceUpdated,
			w.ConsumerGroup(),
			w.ConsumerName(),
			w.batchSize,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to consume batch: %w", err)
		}
	}
	if len(messages) == 0 {
		return 0, nil
	}

	ack := make([]string, 0, len(messages))
	// одно событие на ресурс за пачку
	refreshed := make(map[string]struct{}, len(messages))
	failed := 0

	for _, msg := range messages {
		event, err := parseEvent(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			ack = append(ack, msg.ID)
			continue
		}

		if _, done := refreshed[event.RecResourceID]; !done {
			if err := w.refresh(ctx, event.RecResourceID); err != nil {
				// не подтверждаем: сообщение останется в pending
				logger.Error("Failed to refresh resource cache",
					zap.String("rec_resource_id", event.RecResourceID),
					zap.String("message_id", msg.ID),
					zap.Error(err))
				failed++
				continue
			}
			refreshed[event.RecResourceID] = struct{}{}
		}
		ack = append(ack, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamRecResourceUpdated, w.ConsumerGroup(), ack); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Info("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("resources", len(refreshed)),
		zap.Int("acked", len(ack)))

	if failed > 0 {
		return len(messages), fmt.Errorf("%d messages left pending", failed)
	}
	return len(messages), nil
}

func (w *CacheRefreshWorker) refresh(ctx context.Context, id string) error {
	deleted, err := w.cache.InvalidateDetail(ctx, id)
	if err != nil {
		return fmt.Errorf("invalidate: %w", err)
	}

	for _, sizes := range w.warmSizes {
		if _, err := w.cache.GetDetail(ctx, id, sizes); err != nil {
			// прогрев best-effort: ресурс мог стать скрытым
			w.Logger().Warn("Failed to warm resource detail",
				zap.String("rec_resource_id", id),
				zap.Strings("image_size_codes", sizes),
				zap.Error(err))
		}
	}

	w.Logger().Debug("Resource cache refreshed",
		zap.String("rec_resource_id", id),
		zap.Int("invalidated_keys", deleted),
		zap.Int("warmed", len(w.warmSizes)))
	return nil
}

func parseEvent(msg domain.StreamMessage) (*domain.ResourceUpdatedEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("empty data")
	}

	var event domain.ResourceUpdatedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}
	if err := event.Validate(); err != nil {
		return nil, fmt.Errorf("invalid event: %w", err)
	}

	return &event, nil
}
