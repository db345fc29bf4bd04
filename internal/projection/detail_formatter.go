package projection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/recreation-microservice/internal/domain"
	"github.com/recreation-microservice/internal/usecase/dto"
)

// ErrMalformedResourceGraph - в графе нет обязательной связи (map feature, docs)
var ErrMalformedResourceGraph = errors.New("malformed recreation resource graph")

// FormatDetail собирает DTO детальной карточки из загруженного графа и строк геометрии.
// Обязательные связи проверяются до сборки: при ошибке DTO не возвращается.
func FormatDetail(
	resource *domain.RecreationResource,
	spatialRows []domain.SpatialFeatureGeometry,
) (*dto.RecreationResourceDetail, error) {
	if err := checkRequiredRelations(resource); err != nil {
		return nil, err
	}

	camping, additional := splitFees(resource.RecreationFee)

	detail := &dto.RecreationResourceDetail{
		RecResourceID:            resource.RecResourceID,
		Name:                     resource.Name,
		ClosestCommunity:         resource.ClosestCommunity,
		Description:              resource.Description,
		DrivingDirections:        resource.DrivingDirections,
		MaintenanceStandardCode:  resource.MaintenanceStandardCode,
		RecResourceType:          resource.RecreationMapFeature[0].TypeDescription,
		RecreationAccess:         formatAccess(resource.RecreationAccess),
		RecreationActivity:       formatActivities(resource.RecreationActivity),
		RecreationStatus:         formatStatus(resource.RecreationStatus),
		RecreationResourceImages: formatImages(resource.RecreationResourceImages),
		RecreationFee:            camping,
		AdditionalFees:           additional,
		RecreationStructure:      formatStructures(resource.RecreationStructure),
		RecreationResourceDocs:   formatDocs(resource.RecreationResourceDocs),
	}

	if resource.RecreationCampsite != nil {
		count := resource.RecreationCampsite.CampsiteCount
		detail.CampsiteCount = &count
	}

	if len(spatialRows) > 0 {
		detail.SpatialFeatureGeometry = append([]string(nil), spatialRows[0].SpatialFeatureGeometry...)
		detail.SitePointGeometry = spatialRows[0].SitePointGeometry
	}

	return detail, nil
}

func checkRequiredRelations(resource *domain.RecreationResource) error {
	if resource == nil {
		return fmt.Errorf("%w: resource is nil", ErrMalformedResourceGraph)
	}
	if len(resource.RecreationMapFeature) == 0 {
		return fmt.Errorf("%w: %s is missing for %q",
			ErrMalformedResourceGraph, domain.RelationMapFeature, resource.RecResourceID)
	}
	if resource.RecreationResourceDocs == nil {
		return fmt.Errorf("%w: %s is missing for %q",
			ErrMalformedResourceGraph, domain.RelationDocs, resource.RecResourceID)
	}
	return nil
}

func formatAccess(rows []domain.RecreationAccess) []string {
	out := make([]string, 0, len(rows))
	for _, a := range rows {
		out = append(out, a.Description)
	}
	return out
}

func formatActivities(rows []domain.RecreationActivity) []dto.RecreationActivityDTO {
	out := make([]dto.RecreationActivityDTO, 0, len(rows))
	for _, a := range rows {
		out = append(out, dto.RecreationActivityDTO{
			Description:            a.Description,
			RecreationActivityCode: a.RecreationActivityCode,
		})
	}
	return out
}

func formatStatus(status *domain.RecreationStatus) dto.RecreationStatusDTO {
	if status == nil {
		return dto.RecreationStatusDTO{}
	}
	return dto.RecreationStatusDTO{
		StatusCode:  status.StatusCode,
		Comment:     status.Comment,
		Description: status.Description,
	}
}

// splitFees делит платы на кемпинг ("C") и дополнительные. Каждая строка попадает ровно в один список.
func splitFees(rows []domain.RecreationFee) (camping, additional []dto.RecreationFeeDTO) {
	camping = make([]dto.RecreationFeeDTO, 0)
	additional = make([]dto.RecreationFeeDTO, 0, len(rows))

	for _, f := range rows {
		fee := dto.RecreationFeeDTO{
			FeeAmount:         f.FeeAmount,
			FeeStartDate:      f.FeeStartDate,
			FeeEndDate:        f.FeeEndDate,
			MondayInd:         f.MondayInd,
			TuesdayInd:        f.TuesdayInd,
			WednesdayInd:      f.WednesdayInd,
			ThursdayInd:       f.ThursdayInd,
			FridayInd:         f.FridayInd,
			SaturdayInd:       f.SaturdayInd,
			SundayInd:         f.SundayInd,
			RecreationFeeCode: f.RecreationFeeCode,
		}

		if f.IsCamping() {
			fee.FeeDescription = f.FeeDescription
			camping = append(camping, fee)
			continue
		}
		additional = append(additional, fee)
	}

	return camping, additional
}

func formatStructures(rows []domain.RecreationStructure) dto.RecreationStructureDTO {
	var out dto.RecreationStructureDTO
	for _, s := range rows {
		if s.Description == nil {
			continue
		}
		desc := strings.ToLower(*s.Description)
		if strings.Contains(desc, "toilet") {
			out.HasToilet = true
		}
		if strings.Contains(desc, "table") {
			out.HasTable = true
		}
	}
	return out
}

func formatImages(rows []domain.RecreationResourceImage) []dto.RecreationResourceImageDTO {
	out := make([]dto.RecreationResourceImageDTO, 0, len(rows))
	for _, img := range rows {
		variants := make([]dto.RecreationImageVariant, 0, len(img.Variants))
		for _, v := range img.Variants {
			variants = append(variants, dto.RecreationImageVariant{
				SizeCode:  v.SizeCode,
				URL:       v.URL,
				Width:     v.Width,
				Height:    v.Height,
				Extension: v.Extension,
			})
		}
		out = append(out, dto.RecreationResourceImageDTO{
			RefID:    img.RefID,
			Caption:  img.Caption,
			Variants: variants,
		})
	}
	return out
}

func formatDocs(rows []domain.RecreationResourceDoc) []dto.RecreationResourceDocDTO {
	out := make([]dto.RecreationResourceDocDTO, 0, len(rows))
	for _, d := range rows {
		out = append(out, dto.RecreationResourceDocDTO{
			RefID:              d.RefID,
			Title:              d.Title,
			URL:                d.URL,
			DocCode:            d.DocCode,
			DocCodeDescription: d.DocCodeDescription,
			Extension:          d.Extension,
		})
	}
	return out
}
