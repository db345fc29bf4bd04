package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/recreation-microservice/internal/config"
	apperrors "github.com/recreation-microservice/internal/pkg/errors"
	"github.com/recreation-microservice/internal/pkg/utils"
	"github.com/recreation-microservice/internal/usecase/dto"
)

// RecreationResourceService - операции use case, нужные хендлеру
type RecreationResourceService interface {
	GetDetail(ctx context.Context, id string, imageSizeCodes []string) (*dto.RecreationResourceDetail, error)
	GetGeoJSON(ctx context.Context, id string) (*geojson.FeatureCollection, error)
	UpdateActivities(ctx context.Context, id string, req dto.UpdateActivitiesRequest) (*dto.UpdateActivitiesResponse, error)
}

// RecreationResourceHandler - обработчик запросов карточки ресурса
type RecreationResourceHandler struct {
	resourceUC RecreationResourceService
	logger     *zap.Logger
}

// NewRecreationResourceHandler - создание нового RecreationResourceHandler
func NewRecreationResourceHandler(resourceUC RecreationResourceService, logger *zap.Logger) *RecreationResourceHandler {
	return &RecreationResourceHandler{
		resourceUC: resourceUC,
		logger:     logger,
	}
}

// GetDetail godoc
// @Summary Get recreation resource detail
// @Description Детальная карточка ресурса: доступ, активности, статус, платы, сооружения, изображения, документы и геометрия.
// @Description Варианты изображений ограничены imageSizeCodes; без параметра варианты не возвращаются.
// @Tags RecreationResource
// @Produce json
// @Param id path string true "Recreation resource ID" example(REC203239)
// @Param imageSizeCodes query string false "Comma separated image size codes" example(original,pre)
// @Success 200 {object} utils.SuccessResponse{data=dto.RecreationResourceDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/recreation-resource/{id} [get]
func (h *RecreationResourceHandler) GetDetail(c *fiber.Ctx) error {
	start := time.Now()
	id := c.Params("id")
	sizes := config.ParseList(c.Query("imageSizeCodes"))

	detail, err := h.resourceUC.GetDetail(c.Context(), id, sizes)
	if err != nil {
		h.logger.Debug("Get resource detail failed",
			zap.String("rec_resource_id", id),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, detail, &utils.Meta{
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// GetGeoJSON godoc
// @Summary Get recreation resource geometry
// @Description Site point и геометрии map feature ресурса в виде GeoJSON FeatureCollection (EPSG:4326)
// @Tags RecreationResource
// @Produce json
// @Param id path string true "Recreation resource ID" example(REC203239)
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/recreation-resource/{id}/geojson [get]
func (h *RecreationResourceHandler) GetGeoJSON(c *fiber.Ctx) error {
	id := c.Params("id")

	fc, err := h.resourceUC.GetGeoJSON(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		h.logger.Error("Failed to marshal feature collection",
			zap.String("rec_resource_id", id),
			zap.Error(err))
		return utils.SendError(c, apperrors.ErrInternalServer)
	}

	c.Set(fiber.HeaderContentType, "application/geo+json")
	return c.Send(data)
}

// UpdateActivities godoc
// @Summary Replace recreation resource activities
// @Description Синхронизирует набор активностей ресурса: лишние удаляются, недостающие добавляются.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Recreation resource ID" example(REC203239)
// @Param request body dto.UpdateActivitiesRequest true "Activity codes"
// @Success 200 {object} utils.SuccessResponse{data=dto.UpdateActivitiesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/admin/recreation-resource/{id}/activities [put]
func (h *RecreationResourceHandler) UpdateActivities(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateActivitiesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "invalid JSON",
		}))
	}

	resp, err := h.resourceUC.UpdateActivities(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	h.logger.Info("Recreation resource activities updated",
		zap.String("rec_resource_id", id),
		zap.Ints("activity_codes", resp.ActivityCodes))

	return utils.SendSuccess(c, resp, &utils.Meta{
		Total: len(resp.ActivityCodes),
	})
}
