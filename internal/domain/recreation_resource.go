package domain

import (
	"fmt"
	"time"
)

const (
	// FeeCodeCamping - fee-type код платы за кемпинг; остальные коды считаются дополнительными
	FeeCodeCamping = "C"
)

// ExcludedActivityCodes - коды активностей, которые никогда не отдаются наружу
var ExcludedActivityCodes = []int{26}

// IsExcludedActivity проверяет, входит ли код в список исключённых
func IsExcludedActivity(code int) bool {
	for _, c := range ExcludedActivityCodes {
		if c == code {
			return true
		}
	}
	return false
}

// UnknownActivityCodesError - в запросе есть коды, которых нет в справочнике recreation_activity_code
type UnknownActivityCodesError struct {
	Codes []int
}

func (e *UnknownActivityCodesError) Error() string {
	return fmt.Sprintf("unknown activity codes %v", e.Codes)
}

// RecreationResource - корневая сущность графа, загруженного по SelectShape.
// nil-слайс означает, что связь не загружена; пустой слайс - загружена, но строк нет.
type RecreationResource struct {
	RecResourceID           string  `db:"rec_resource_id" json:"rec_resource_id"`
	Name                    *string `db:"name" json:"name"`
	ClosestCommunity        *string `db:"closest_community" json:"closest_community"`
	Description             *string `db:"description" json:"description"`
	DrivingDirections       *string `db:"driving_directions" json:"driving_directions"`
	MaintenanceStandardCode *string `db:"maintenance_standard_code" json:"maintenance_standard_code"`
	DisplayOnPublicSite     bool    `db:"display_on_public_site" json:"display_on_public_site"`

	RecreationAccess         []RecreationAccess         `db:"-" json:"recreation_access"`
	RecreationActivity       []RecreationActivity       `db:"-" json:"recreation_activity"`
	RecreationStatus         *RecreationStatus          `db:"-" json:"recreation_status"`
	RecreationFee            []RecreationFee            `db:"-" json:"recreation_fee"`
	RecreationStructure      []RecreationStructure      `db:"-" json:"recreation_structure"`
	RecreationResourceImages []RecreationResourceImage  `db:"-" json:"recreation_resource_images"`
	RecreationResourceDocs   []RecreationResourceDoc    `db:"-" json:"recreation_resource_docs"`
	RecreationMapFeature     []RecreationMapFeature     `db:"-" json:"recreation_map_feature"`
	RecreationCampsite       *RecreationCampsiteSummary `db:"-" json:"recreation_defined_campsite"`
}

type RecreationAccess struct {
	AccessCode  string `db:"access_code" json:"access_code"`
	Description string `db:"description" json:"description"`
}

type RecreationActivity struct {
	RecreationActivityCode int    `db:"recreation_activity_code" json:"recreation_activity_code"`
	Description            string `db:"description" json:"description"`
}

type RecreationStatus struct {
	StatusCode  *int    `db:"status_code" json:"status_code"`
	Comment     *string `db:"comment" json:"comment"`
	Description *string `db:"description" json:"description"`
}

// RecreationFee - строка платы; дни недели хранятся как "Y"/"N"
type RecreationFee struct {
	FeeAmount         *float64   `db:"fee_amount" json:"fee_amount"`
	FeeStartDate      *time.Time `db:"fee_start_date" json:"fee_start_date"`
	FeeEndDate        *time.Time `db:"fee_end_date" json:"fee_end_date"`
	MondayInd         *string    `db:"monday_ind" json:"monday_ind"`
	TuesdayInd        *string    `db:"tuesday_ind" json:"tuesday_ind"`
	WednesdayInd      *string    `db:"wednesday_ind" json:"wednesday_ind"`
	ThursdayInd       *string    `db:"thursday_ind" json:"thursday_ind"`
	FridayInd         *string    `db:"friday_ind" json:"friday_ind"`
	SaturdayInd       *string    `db:"saturday_ind" json:"saturday_ind"`
	SundayInd         *string    `db:"sunday_ind" json:"sunday_ind"`
	RecreationFeeCode string     `db:"recreation_fee_code" json:"recreation_fee_code"`
	FeeDescription    *string    `db:"fee_description" json:"fee_description"`
}

// IsCamping - плата за кемпинг (fee-type "C")
func (f RecreationFee) IsCamping() bool {
	return f.RecreationFeeCode == FeeCodeCamping
}

type RecreationStructure struct {
	Description *string `db:"description" json:"description"`
}

type RecreationResourceImage struct {
	RefID    string                           `db:"ref_id" json:"ref_id"`
	Caption  *string                          `db:"caption" json:"caption"`
	Variants []RecreationResourceImageVariant `db:"-" json:"recreation_resource_image_variants"`
}

type RecreationResourceImageVariant struct {
	RefID     string  `db:"ref_id" json:"-"`
	SizeCode  string  `db:"size_code" json:"size_code"`
	URL       string  `db:"url" json:"url"`
	Width     *int    `db:"width" json:"width"`
	Height    *int    `db:"height" json:"height"`
	Extension *string `db:"extension" json:"extension"`
}

type RecreationResourceDoc struct {
	RefID              string  `db:"ref_id" json:"ref_id"`
	Title              *string `db:"title" json:"title"`
	URL                *string `db:"url" json:"url"`
	DocCode            *string `db:"doc_code" json:"doc_code"`
	DocCodeDescription *string `db:"doc_code_description" json:"doc_code_description"`
	Extension          *string `db:"extension" json:"extension"`
}

// RecreationMapFeature - map feature ресурса с описанием типа из справочника
type RecreationMapFeature struct {
	RecreationResourceTypeCode string `db:"recreation_resource_type_code" json:"recreation_resource_type_code"`
	TypeDescription            string `db:"type_description" json:"type_description"`
}

// RecreationCampsiteSummary - агрегат defined campsite, наружу отдаётся только количество
type RecreationCampsiteSummary struct {
	CampsiteCount int `db:"campsite_count" json:"campsite_count"`
}

// SpatialFeatureGeometry - геометрия ресурса, загружаемая отдельным запросом (GeoJSON строки)
type SpatialFeatureGeometry struct {
	SpatialFeatureGeometry []string `json:"spatial_feature_geometry"`
	SitePointGeometry      *string  `json:"site_point_geometry"`
}
