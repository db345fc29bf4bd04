package repository

import (
	"context"
	"time"

	"github.com/recreation-microservice/internal/usecase/dto"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetResourceDetail получает карточку ресурса из кеша; (nil, nil) при промахе
	GetResourceDetail(ctx context.Context, id string, sizeCodes []string) (*dto.RecreationResourceDetail, error)

	// SetResourceDetail сохраняет карточку ресурса в кеше
	SetResourceDetail(ctx context.Context, id string, sizeCodes []string, detail *dto.RecreationResourceDetail, ttl time.Duration) error

	// InvalidateResource удаляет все закешированные карточки ресурса
	InvalidateResource(ctx context.Context, id string) (int, error)
}
