package projection_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recreation-microservice/internal/domain"
	"github.com/recreation-microservice/internal/projection"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func snowmobileLot() *domain.RecreationResource {
	return &domain.RecreationResource{
		RecResourceID:     "REC203239",
		Name:              strPtr("10 K SNOWMOBILE PARKING LOT"),
		ClosestCommunity:  strPtr("MERRITT"),
		Description:       strPtr("Parking lot for snowmobile access"),
		DrivingDirections: strPtr("Follow the highway 10 km"),
		RecreationAccess: []domain.RecreationAccess{
			{AccessCode: "R", Description: "Road"},
			{AccessCode: "T", Description: "Trail"},
		},
		RecreationActivity: []domain.RecreationActivity{
			{RecreationActivityCode: 22, Description: "Snowmobiling"},
		},
		RecreationStatus: &domain.RecreationStatus{
			StatusCode:  intPtr(1),
			Comment:     strPtr("Open all season"),
			Description: strPtr("Open"),
		},
		RecreationFee: []domain.RecreationFee{
			{
				FeeAmount:         floatPtr(8),
				MondayInd:         strPtr("Y"),
				SundayInd:         strPtr("N"),
				RecreationFeeCode: "P",
				FeeDescription:    strPtr("Parking"),
			},
		},
		RecreationStructure: []domain.RecreationStructure{},
		RecreationResourceImages: []domain.RecreationResourceImage{
			{
				RefID:   "1000",
				Caption: strPtr("Entrance"),
				Variants: []domain.RecreationResourceImageVariant{
					{RefID: "1000", SizeCode: "pre", URL: "https://example.com/1000_pre.webp", Width: intPtr(900)},
				},
			},
		},
		RecreationResourceDocs: []domain.RecreationResourceDoc{
			{
				RefID:              "d-1",
				Title:              strPtr("Site map"),
				URL:                strPtr("https://example.com/map.pdf"),
				DocCode:            strPtr("RM"),
				DocCodeDescription: strPtr("Recreation Map"),
				Extension:          strPtr("pdf"),
			},
		},
		RecreationMapFeature: []domain.RecreationMapFeature{
			{RecreationResourceTypeCode: "SIT", TypeDescription: "Recreation Site"},
		},
	}
}

func spatialRow() []domain.SpatialFeatureGeometry {
	return []domain.SpatialFeatureGeometry{
		{
			SpatialFeatureGeometry: []string{`{"type":"Polygon","coordinates":[[[-120.1,50.1],[-120.2,50.1],[-120.2,50.2],[-120.1,50.1]]]}`},
			SitePointGeometry:      strPtr(`{"type":"Point","coordinates":[-120.15,50.15]}`),
		},
	}
}

func TestFormatDetail_EndToEnd(t *testing.T) {
	detail, err := projection.FormatDetail(snowmobileLot(), spatialRow())
	require.NoError(t, err)

	assert.Equal(t, "REC203239", detail.RecResourceID)
	assert.Equal(t, "10 K SNOWMOBILE PARKING LOT", *detail.Name)
	assert.Equal(t, "Recreation Site", detail.RecResourceType)
	assert.Equal(t, []string{"Road", "Trail"}, detail.RecreationAccess)

	require.Len(t, detail.RecreationActivity, 1)
	assert.Equal(t, 22, detail.RecreationActivity[0].RecreationActivityCode)
	assert.Equal(t, "Snowmobiling", detail.RecreationActivity[0].Description)

	assert.Equal(t, 1, *detail.RecreationStatus.StatusCode)
	assert.Equal(t, "Open", *detail.RecreationStatus.Description)
	assert.Equal(t, "Open all season", *detail.RecreationStatus.Comment)

	assert.Empty(t, detail.RecreationFee)
	assert.NotNil(t, detail.RecreationFee)
	require.Len(t, detail.AdditionalFees, 1)
	assert.Equal(t, 8.0, *detail.AdditionalFees[0].FeeAmount)
	assert.Equal(t, "P", detail.AdditionalFees[0].RecreationFeeCode)
	assert.Nil(t, detail.AdditionalFees[0].FeeDescription, "additional fees carry no joined description")

	assert.False(t, detail.RecreationStructure.HasToilet)
	assert.False(t, detail.RecreationStructure.HasTable)

	require.Len(t, detail.RecreationResourceDocs, 1)
	assert.Equal(t, "Recreation Map", *detail.RecreationResourceDocs[0].DocCodeDescription)

	require.Len(t, detail.RecreationResourceImages, 1)
	require.Len(t, detail.RecreationResourceImages[0].Variants, 1)
	assert.Equal(t, "pre", detail.RecreationResourceImages[0].Variants[0].SizeCode)

	assert.Nil(t, detail.CampsiteCount)
	require.Len(t, detail.SpatialFeatureGeometry, 1)
	assert.Contains(t, *detail.SitePointGeometry, "Point")
}

func TestFormatDetail_FeePartition(t *testing.T) {
	resource := snowmobileLot()
	resource.RecreationFee = []domain.RecreationFee{
		{RecreationFeeCode: "C", FeeAmount: floatPtr(20), FeeDescription: strPtr("Camping")},
		{RecreationFeeCode: "P", FeeAmount: floatPtr(8), FeeDescription: strPtr("Parking")},
		{RecreationFeeCode: "C", FeeAmount: floatPtr(25), FeeDescription: strPtr("Camping")},
		{RecreationFeeCode: "T", FeeAmount: floatPtr(5), FeeDescription: strPtr("Trail use")},
		{RecreationFeeCode: "c", FeeAmount: floatPtr(1)},
	}

	detail, err := projection.FormatDetail(resource, nil)
	require.NoError(t, err)

	assert.Len(t, detail.RecreationFee, 2)
	assert.Len(t, detail.AdditionalFees, 3)
	assert.Equal(t, len(resource.RecreationFee), len(detail.RecreationFee)+len(detail.AdditionalFees))

	for _, fee := range detail.RecreationFee {
		assert.Equal(t, "C", fee.RecreationFeeCode)
		require.NotNil(t, fee.FeeDescription)
		assert.Equal(t, "Camping", *fee.FeeDescription)
	}
	for _, fee := range detail.AdditionalFees {
		assert.NotEqual(t, "C", fee.RecreationFeeCode)
		assert.Nil(t, fee.FeeDescription)
	}
	assert.Equal(t, 20.0, *detail.RecreationFee[0].FeeAmount)
	assert.Equal(t, 25.0, *detail.RecreationFee[1].FeeAmount)
}

func TestFormatDetail_AbsentFeesAreEmpty(t *testing.T) {
	resource := snowmobileLot()
	resource.RecreationFee = nil

	detail, err := projection.FormatDetail(resource, nil)
	require.NoError(t, err)
	assert.NotNil(t, detail.RecreationFee)
	assert.NotNil(t, detail.AdditionalFees)
	assert.Empty(t, detail.RecreationFee)
	assert.Empty(t, detail.AdditionalFees)
}

func TestFormatDetail_StructureFlags(t *testing.T) {
	tests := []struct {
		name       string
		structures []domain.RecreationStructure
		toilet     bool
		table      bool
	}{
		{name: "absent", structures: nil},
		{name: "empty", structures: []domain.RecreationStructure{}},
		{
			name:       "toilet only, mixed case",
			structures: []domain.RecreationStructure{{Description: strPtr("Pit TOILET")}},
			toilet:     true,
		},
		{
			name:       "table only",
			structures: []domain.RecreationStructure{{Description: strPtr("Picnic Table")}},
			table:      true,
		},
		{
			name: "both across rows",
			structures: []domain.RecreationStructure{
				{Description: strPtr("Toilet - double vault")},
				{Description: nil},
				{Description: strPtr("table (wheelchair accessible)")},
			},
			toilet: true,
			table:  true,
		},
		{
			name:       "unrelated",
			structures: []domain.RecreationStructure{{Description: strPtr("Boat launch")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resource := snowmobileLot()
			resource.RecreationStructure = tt.structures

			detail, err := projection.FormatDetail(resource, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.toilet, detail.RecreationStructure.HasToilet)
			assert.Equal(t, tt.table, detail.RecreationStructure.HasTable)
		})
	}
}

func TestFormatDetail_OptionalRelations(t *testing.T) {
	resource := snowmobileLot()
	resource.RecreationAccess = nil
	resource.RecreationActivity = nil
	resource.RecreationStatus = nil
	resource.RecreationResourceImages = nil
	resource.RecreationCampsite = &domain.RecreationCampsiteSummary{CampsiteCount: 12}

	detail, err := projection.FormatDetail(resource, []domain.SpatialFeatureGeometry{})
	require.NoError(t, err)

	assert.NotNil(t, detail.RecreationAccess)
	assert.Empty(t, detail.RecreationAccess)
	assert.NotNil(t, detail.RecreationActivity)
	assert.Empty(t, detail.RecreationActivity)
	assert.NotNil(t, detail.RecreationResourceImages)

	assert.Nil(t, detail.RecreationStatus.StatusCode)
	assert.Nil(t, detail.RecreationStatus.Comment)
	assert.Nil(t, detail.RecreationStatus.Description)

	require.NotNil(t, detail.CampsiteCount)
	assert.Equal(t, 12, *detail.CampsiteCount)

	assert.Nil(t, detail.SpatialFeatureGeometry)
	assert.Nil(t, detail.SitePointGeometry)
}

func TestFormatDetail_UsesFirstMapFeatureAndSpatialRow(t *testing.T) {
	resource := snowmobileLot()
	resource.RecreationMapFeature = append(resource.RecreationMapFeature,
		domain.RecreationMapFeature{RecreationResourceTypeCode: "RTR", TypeDescription: "Recreation Trail"})

	rows := append(spatialRow(), domain.SpatialFeatureGeometry{SitePointGeometry: strPtr("second")})

	detail, err := projection.FormatDetail(resource, rows)
	require.NoError(t, err)
	assert.Equal(t, "Recreation Site", detail.RecResourceType)
	assert.NotEqual(t, "second", *detail.SitePointGeometry)
}

func TestFormatDetail_MalformedGraph(t *testing.T) {
	tests := []struct {
		name     string
		resource *domain.RecreationResource
		contains string
	}{
		{name: "nil resource", resource: nil, contains: "nil"},
		{name: "garbage resource", resource: &domain.RecreationResource{}, contains: domain.RelationMapFeature},
		{
			name: "empty map features",
			resource: func() *domain.RecreationResource {
				r := snowmobileLot()
				r.RecreationMapFeature = []domain.RecreationMapFeature{}
				return r
			}(),
			contains: domain.RelationMapFeature,
		},
		{
			name: "docs absent",
			resource: func() *domain.RecreationResource {
				r := snowmobileLot()
				r.RecreationResourceDocs = nil
				return r
			}(),
			contains: domain.RelationDocs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail, err := projection.FormatDetail(tt.resource, spatialRow())
			require.Error(t, err)
			assert.Nil(t, detail)
			assert.True(t, errors.Is(err, projection.ErrMalformedResourceGraph))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestFormatDetail_EmptyDocsAreAllowed(t *testing.T) {
	resource := snowmobileLot()
	resource.RecreationResourceDocs = []domain.RecreationResourceDoc{}

	detail, err := projection.FormatDetail(resource, nil)
	require.NoError(t, err)
	assert.NotNil(t, detail.RecreationResourceDocs)
	assert.Empty(t, detail.RecreationResourceDocs)
}

func TestFormatDetail_Idempotent(t *testing.T) {
	resource := snowmobileLot()
	rows := spatialRow()

	first, err := projection.FormatDetail(resource, rows)
	require.NoError(t, err)
	second, err := projection.FormatDetail(resource, rows)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, snowmobileLot(), resource, "input graph must not be mutated")
}
