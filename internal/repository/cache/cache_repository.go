package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/recreation-microservice/internal/domain/repository"
	"github.com/recreation-microservice/internal/usecase/dto"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	detailKeyPrefix = "rec_resource:detail:"
	noSizesMarker   = "-"
	scanBatch       = 100
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

// DetailKey - ключ карточки ресурса; набор size-кодов нормализуется (сортировка, без дублей)
func DetailKey(id string, sizeCodes []string) string {
	seen := make(map[string]struct{}, len(sizeCodes))
	sizes := make([]string, 0, len(sizeCodes))
	for _, code := range sizeCodes {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		sizes = append(sizes, code)
	}
	sort.Strings(sizes)

	suffix := strings.Join(sizes, ",")
	if suffix == "" {
		suffix = noSizesMarker
	}
	return detailKeyPrefix + id + ":" + suffix
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetResourceDetail получает карточку из кеша; запись, которую не удалось разобрать, удаляется
func (r *cacheRepository) GetResourceDetail(
	ctx context.Context,
	id string,
	sizeCodes []string,
) (*dto.RecreationResourceDetail, error) {
	data, err := r.Get(ctx, DetailKey(id, sizeCodes))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var detail dto.RecreationResourceDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		r.logger.Error("Failed to unmarshal resource detail from cache",
			zap.String("rec_resource_id", id), zap.Error(err))
		// битая запись иначе отдавала бы ошибку до истечения TTL
		if delErr := r.Delete(ctx, DetailKey(id, sizeCodes)); delErr != nil {
			return nil, fmt.Errorf("unmarshal resource detail: %w", errors.Join(err, delErr))
		}
		return nil, fmt.Errorf("unmarshal resource detail: %w", err)
	}

	return &detail, nil
}

// SetResourceDetail сохраняет карточку в кеше
func (r *cacheRepository) SetResourceDetail(
	ctx context.Context,
	id string,
	sizeCodes []string,
	detail *dto.RecreationResourceDetail,
	ttl time.Duration,
) error {
	data, err := json.Marshal(detail)
	if err != nil {
		r.logger.Error("Failed to marshal resource detail", zap.Error(err))
		return fmt.Errorf("marshal resource detail: %w", err)
	}

	return r.Set(ctx, DetailKey(id, sizeCodes), data, ttl)
}

// InvalidateResource удаляет карточки ресурса для всех наборов size-кодов
func (r *cacheRepository) InvalidateResource(ctx context.Context, id string) (int, error) {
	pattern := detailKeyPrefix + id + ":*"
	deleted := 0

	iter := r.client.Scan(ctx, 0, pattern, scanBatch).Iterator()
	keys := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) == scanBatch {
			n, err := r.client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, fmt.Errorf("cache invalidate %s: %w", id, err)
			}
			deleted += int(n)
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		r.logger.Error("Failed to scan cache keys", zap.String("pattern", pattern), zap.Error(err))
		return deleted, fmt.Errorf("cache scan %s: %w", id, err)
	}

	if len(keys) > 0 {
		n, err := r.client.Del(ctx, keys...).Result()
		if err != nil {
			return deleted, fmt.Errorf("cache invalidate %s: %w", id, err)
		}
		deleted += int(n)
	}

	r.logger.Debug("Resource cache invalidated",
		zap.String("rec_resource_id", id),
		zap.Int("keys", deleted))
	return deleted, nil
}
