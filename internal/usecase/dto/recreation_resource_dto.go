package dto

import "time"

// RecreationResourceDetail - плоское представление ресурса для API клиентов.
// Имена полей являются частью публичного контракта HTTP ответа.
type RecreationResourceDetail struct {
	RecResourceID            string                      `json:"rec_resource_id"`
	Name                     *string                     `json:"name"`
	ClosestCommunity         *string                     `json:"closest_community"`
	Description              *string                     `json:"description"`
	DrivingDirections        *string                     `json:"driving_directions"`
	MaintenanceStandardCode  *string                     `json:"maintenance_standard_code"`
	RecResourceType          string                      `json:"rec_resource_type"`
	RecreationAccess         []string                    `json:"recreation_access"`
	RecreationActivity       []RecreationActivityDTO     `json:"recreation_activity"`
	RecreationStatus         RecreationStatusDTO         `json:"recreation_status"`
	CampsiteCount            *int                        `json:"campsite_count,omitempty"`
	RecreationResourceImages []RecreationResourceImageDTO `json:"recreation_resource_images"`
	RecreationFee            []RecreationFeeDTO          `json:"recreation_fee"`
	AdditionalFees           []RecreationFeeDTO          `json:"additional_fees"`
	RecreationStructure      RecreationStructureDTO      `json:"recreation_structure"`
	RecreationResourceDocs   []RecreationResourceDocDTO  `json:"recreation_resource_docs"`
	SpatialFeatureGeometry   []string                    `json:"spatial_feature_geometry,omitempty"`
	SitePointGeometry        *string                     `json:"site_point_geometry,omitempty"`
}

type RecreationActivityDTO struct {
	Description            string `json:"description"`
	RecreationActivityCode int    `json:"recreation_activity_code"`
}

// RecreationStatusDTO всегда присутствует в ответе; поля пустые, если статуса нет
type RecreationStatusDTO struct {
	StatusCode  *int    `json:"status_code"`
	Comment     *string `json:"comment"`
	Description *string `json:"description"`
}

// RecreationFeeDTO - плата; FeeDescription заполняется только для платы за кемпинг
type RecreationFeeDTO struct {
	FeeAmount         *float64   `json:"fee_amount"`
	FeeStartDate      *time.Time `json:"fee_start_date"`
	FeeEndDate        *time.Time `json:"fee_end_date"`
	MondayInd         *string    `json:"monday_ind"`
	TuesdayInd        *string    `json:"tuesday_ind"`
	WednesdayInd      *string    `json:"wednesday_ind"`
	ThursdayInd       *string    `json:"thursday_ind"`
	FridayInd         *string    `json:"friday_ind"`
	SaturdayInd       *string    `json:"saturday_ind"`
	SundayInd         *string    `json:"sunday_ind"`
	RecreationFeeCode string     `json:"recreation_fee_code"`
	FeeDescription    *string    `json:"fee_description,omitempty"`
}

type RecreationStructureDTO struct {
	HasToilet bool `json:"has_toilet"`
	HasTable  bool `json:"has_table"`
}

type RecreationResourceImageDTO struct {
	RefID    string                   `json:"ref_id"`
	Caption  *string                  `json:"caption"`
	Variants []RecreationImageVariant `json:"recreation_resource_image_variants"`
}

type RecreationImageVariant struct {
	SizeCode  string  `json:"size_code"`
	URL       string  `json:"url"`
	Width     *int    `json:"width"`
	Height    *int    `json:"height"`
	Extension *string `json:"extension"`
}

type RecreationResourceDocDTO struct {
	RefID              string  `json:"ref_id"`
	Title              *string `json:"title"`
	URL                *string `json:"url"`
	DocCode            *string `json:"doc_code"`
	DocCodeDescription *string `json:"doc_code_description"`
	Extension          *string `json:"extension"`
}

// UpdateActivitiesRequest - запрос админки на замену набора активностей ресурса
type UpdateActivitiesRequest struct {
	ActivityCodes []int `json:"activity_codes" validate:"dive,gt=0"`
}

// UpdateActivitiesResponse - итог синхронизации активностей
type UpdateActivitiesResponse struct {
	RecResourceID string `json:"rec_resource_id"`
	ActivityCodes []int  `json:"activity_codes"`
}

// DetailRequest - параметры запроса детальной карточки
type DetailRequest struct {
	RecResourceID  string   `validate:"required,rec_resource_id"`
	ImageSizeCodes []string `validate:"dive,required,max=32"`
}
