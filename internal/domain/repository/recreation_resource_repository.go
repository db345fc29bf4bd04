package repository

import (
	"context"

	"github.com/recreation-microservice/internal/domain"
)

// RecreationResourceRepository определяет методы чтения и изменения ресурсов
type RecreationResourceRepository interface {
	// FindByID загружает граф ресурса по SelectShape. (nil, nil) если ресурс не найден.
	FindByID(ctx context.Context, id string, shape domain.SelectShape) (*domain.RecreationResource, error)

	// FindSpatialFeatureGeometry возвращает строки геометрии ресурса (0 или 1)
	FindSpatialFeatureGeometry(ctx context.Context, id string) ([]domain.SpatialFeatureGeometry, error)

	// Exists проверяет существование ресурса (без учёта публичности)
	Exists(ctx context.Context, id string) (bool, error)

	// UpdateActivities заменяет набор активностей ресурса в одной транзакции
	UpdateActivities(ctx context.Context, id string, codes []int) error
}
