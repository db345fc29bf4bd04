// Package projection строит SelectShape для загрузки ресурса и превращает
// загруженный граф в плоский DTO детальной карточки.
package projection

import (
	"github.com/recreation-microservice/internal/domain"
)

var (
	resourceFields = []string{
		"rec_resource_id",
		"name",
		"closest_community",
		"description",
		"driving_directions",
		"maintenance_standard_code",
		"display_on_public_site",
	}

	accessFields     = []string{"access_code", "description"}
	activityFields   = []string{"recreation_activity_code", "description"}
	statusFields     = []string{"status_code", "comment", "description"}
	structureFields  = []string{"description"}
	imageFields      = []string{"ref_id", "caption"}
	variantFields    = []string{"ref_id", "size_code", "url", "width", "height", "extension"}
	docFields        = []string{"ref_id", "title", "url", "doc_code", "doc_code_description", "extension"}
	mapFeatureFields = []string{"recreation_resource_type_code", "type_description"}
	campsiteFields   = []string{"campsite_count"}

	feeFields = []string{
		"fee_amount",
		"fee_start_date",
		"fee_end_date",
		"monday_ind",
		"tuesday_ind",
		"wednesday_ind",
		"thursday_ind",
		"friday_ind",
		"saturday_ind",
		"sunday_ind",
		"recreation_fee_code",
		"fee_description",
	}
)

// BuildSelectShape возвращает описание полей и связей ресурса.
// Пустой imageSizeCodes означает ноль вариантов изображений, а не все варианты.
func BuildSelectShape(imageSizeCodes []string) domain.SelectShape {
	sizes := make([]interface{}, 0, len(imageSizeCodes))
	for _, code := range imageSizeCodes {
		sizes = append(sizes, code)
	}

	excluded := make([]interface{}, 0, len(domain.ExcludedActivityCodes))
	for _, code := range domain.ExcludedActivityCodes {
		excluded = append(excluded, code)
	}

	return domain.SelectShape{
		Fields: clone(resourceFields),
		Relations: []domain.RelationShape{
			{Name: domain.RelationAccess, Fields: clone(accessFields)},
			{
				Name:   domain.RelationActivity,
				Fields: clone(activityFields),
				Filter: &domain.Filter{
					Field:  "recreation_activity_code",
					Op:     domain.FilterNotIn,
					Values: excluded,
				},
			},
			{Name: domain.RelationStatus, Fields: clone(statusFields)},
			{Name: domain.RelationFee, Fields: clone(feeFields)},
			{Name: domain.RelationStructure, Fields: clone(structureFields)},
			{
				Name:   domain.RelationImages,
				Fields: clone(imageFields),
				Relations: []domain.RelationShape{
					{
						Name:   domain.RelationImageVariants,
						Fields: clone(variantFields),
						Filter: &domain.Filter{
							Field:  "size_code",
							Op:     domain.FilterIn,
							Values: sizes,
						},
					},
				},
			},
			{Name: domain.RelationDocs, Fields: clone(docFields)},
			{Name: domain.RelationMapFeature, Fields: clone(mapFeatureFields)},
			{Name: domain.RelationCampsite, Fields: clone(campsiteFields)},
		},
	}
}

func clone(fields []string) []string {
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}
