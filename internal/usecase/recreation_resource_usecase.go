package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/recreation-microservice/internal/domain"
	"github.com/recreation-microservice/internal/domain/repository"
	apperrors "github.com/recreation-microservice/internal/pkg/errors"
	"github.com/recreation-microservice/internal/pkg/geo"
	"github.com/recreation-microservice/internal/pkg/validator"
	"github.com/recreation-microservice/internal/projection"
	"github.com/recreation-microservice/internal/usecase/dto"
)

// RecreationResourceUseCase - чтение карточки ресурса и изменения из админки
type RecreationResourceUseCase struct {
	resourceRepo repository.RecreationResourceRepository
	cacheRepo    repository.CacheRepository
	streamRepo   repository.StreamRepository
	cacheTTL     time.Duration
	logger       *zap.Logger
}

// NewRecreationResourceUseCase создает use case.
// cacheRepo и streamRepo могут быть nil: кеш и публикация событий тогда отключены.
func NewRecreationResourceUseCase(
	resourceRepo repository.RecreationResourceRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *RecreationResourceUseCase {
	return &RecreationResourceUseCase{
		resourceRepo: resourceRepo,
		cacheRepo:    cacheRepo,
		streamRepo:   streamRepo,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// GetDetail возвращает детальную карточку ресурса.
// Варианты изображений ограничены imageSizeCodes; пустой список означает без вариантов.
func (uc *RecreationResourceUseCase) GetDetail(
	ctx context.Context,
	id string,
	imageSizeCodes []string,
) (*dto.RecreationResourceDetail, error) {
	if !validator.IsRecResourceID(id) {
		return nil, apperrors.ErrInvalidRecResourceID
	}
	if imageSizeCodes == nil {
		imageSizeCodes = []string{}
	}
	if err := validator.Validate(dto.DetailRequest{RecResourceID: id, ImageSizeCodes: imageSizeCodes}); err != nil {
		return nil, err
	}

	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetResourceDetail(ctx, id, imageSizeCodes)
		if err != nil {
			uc.logger.Warn("Failed to get resource detail from cache",
				zap.String("rec_resource_id", id), zap.Error(err))
		} else if cached != nil {
			uc.logger.Debug("Resource detail fetched from cache", zap.String("rec_resource_id", id))
			return cached, nil
		}
	}

	shape := projection.BuildSelectShape(imageSizeCodes)

	resource, err := uc.resourceRepo.FindByID(ctx, id, shape)
	if err != nil {
		uc.logger.Error("Failed to load recreation resource",
			zap.String("rec_resource_id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	if resource == nil {
		return nil, apperrors.ErrRecResourceNotFound
	}

	spatial, err := uc.resourceRepo.FindSpatialFeatureGeometry(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to load spatial feature geometry",
			zap.String("rec_resource_id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	detail, err := projection.FormatDetail(resource, spatial)
	if err != nil {
		if errors.Is(err, projection.ErrMalformedResourceGraph) {
			uc.logger.Error("Recreation resource graph is malformed",
				zap.String("rec_resource_id", id), zap.Error(err))
			return nil, apperrors.ErrMalformedResource.WithDetails(map[string]interface{}{
				"rec_resource_id": id,
			})
		}
		uc.logger.Error("Failed to format resource detail",
			zap.String("rec_resource_id", id), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetResourceDetail(ctx, id, imageSizeCodes, detail, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache resource detail",
				zap.String("rec_resource_id", id), zap.Error(err))
		}
	}

	return detail, nil
}

// GetGeoJSON возвращает геометрию ресурса как FeatureCollection
func (uc *RecreationResourceUseCase) GetGeoJSON(ctx context.Context, id string) (*geojson.FeatureCollection, error) {
	if !validator.IsRecResourceID(id) {
		return nil, apperrors.ErrInvalidRecResourceID
	}

	rows, err := uc.resourceRepo.FindSpatialFeatureGeometry(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to load spatial feature geometry",
			zap.String("rec_resource_id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrRecResourceNotFound
	}

	fc, err := geo.ResourceFeatureCollection(id, rows)
	if err != nil {
		uc.logger.Error("Failed to build feature collection",
			zap.String("rec_resource_id", id), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}
	if len(fc.Features) == 0 {
		return nil, apperrors.ErrGeometryUnavailable
	}

	return fc, nil
}

// UpdateActivities заменяет набор активностей ресурса.
// Исключённые коды запрещены в запросе и не затрагиваются в БД.
func (uc *RecreationResourceUseCase) UpdateActivities(
	ctx context.Context,
	id string,
	req dto.UpdateActivitiesRequest,
) (*dto.UpdateActivitiesResponse, error) {
	if !validator.IsRecResourceID(id) {
		return nil, apperrors.ErrInvalidRecResourceID
	}
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	codes := make([]int, 0, len(req.ActivityCodes))
	seen := make(map[int]struct{}, len(req.ActivityCodes))
	for _, code := range req.ActivityCodes {
		if domain.IsExcludedActivity(code) {
			return nil, apperrors.ErrExcludedActivityCode.WithDetails(map[string]interface{}{
				"activity_code": code,
			})
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}

	exists, err := uc.resourceRepo.Exists(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to check recreation resource",
			zap.String("rec_resource_id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	if !exists {
		return nil, apperrors.ErrRecResourceNotFound
	}

	if err := uc.resourceRepo.UpdateActivities(ctx, id, codes); err != nil {
		var unknown *domain.UnknownActivityCodesError
		if errors.As(err, &unknown) {
			return nil, apperrors.ErrUnknownActivityCode.WithDetails(map[string]interface{}{
				"activity_codes": unknown.Codes,
			})
		}
		uc.logger.Error("Failed to update activities",
			zap.String("rec_resource_id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	if _, err := uc.InvalidateDetail(ctx, id); err != nil {
		uc.logger.Warn("Failed to invalidate resource detail cache",
			zap.String("rec_resource_id", id), zap.Error(err))
	}

	if uc.streamRepo != nil {
		event := domain.NewResourceUpdatedEvent(id, domain.RelationActivity)
		if err := uc.streamRepo.PublishToStream(ctx, domain.StreamRecResourceUpdated, event); err != nil {
			uc.logger.Warn("Failed to publish resource updated event",
				zap.String("rec_resource_id", id), zap.Error(err))
		}
	}

	return &dto.UpdateActivitiesResponse{
		RecResourceID: id,
		ActivityCodes: codes,
	}, nil
}

// InvalidateDetail удаляет закешированные карточки ресурса; возвращает число удалённых ключей
func (uc *RecreationResourceUseCase) InvalidateDetail(ctx context.Context, id string) (int, error) {
	if uc.cacheRepo == nil {
		return 0, nil
	}

	deleted, err := uc.cacheRepo.InvalidateResource(ctx, id)
	if err != nil {
		return deleted, apperrors.ErrCacheError
	}

	uc.logger.Debug("Resource detail cache invalidated",
		zap.String("rec_resource_id", id),
		zap.Int("keys", deleted))
	return deleted, nil
}
