package geo_test

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recreation-microservice/internal/domain"
	"github.com/recreation-microservice/internal/pkg/geo"
)

func strPtr(s string) *string { return &s }

func TestResourceFeatureCollection(t *testing.T) {
	rows := []domain.SpatialFeatureGeometry{{
		SpatialFeatureGeometry: []string{
			`{"type":"Polygon","coordinates":[[[-121,50],[-120,50],[-120,51],[-121,51],[-121,50]]]}`,
		},
		SitePointGeometry: strPtr(`{"type":"Point","coordinates":[-120.5,50.5]}`),
	}}

	fc, err := geo.ResourceFeatureCollection("REC203239", rows)
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	point := fc.Features[0]
	assert.Equal(t, orb.Point{-120.5, 50.5}, point.Geometry)
	assert.Equal(t, geo.KindSitePoint, point.Properties["kind"])
	assert.Equal(t, "REC203239", point.Properties["rec_resource_id"])

	polygon := fc.Features[1]
	assert.Equal(t, "Polygon", polygon.Geometry.GeoJSONType())
	assert.Equal(t, geo.KindMapFeature, polygon.Properties["kind"])

	require.NotNil(t, fc.BBox)
	assert.Equal(t, orb.Bound{Min: orb.Point{-121, 50}, Max: orb.Point{-120, 51}}, fc.BBox.Bound())

	data, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"FeatureCollection"`)
}

func TestResourceFeatureCollection_Empty(t *testing.T) {
	tests := []struct {
		name string
		rows []domain.SpatialFeatureGeometry
	}{
		{name: "no rows"},
		{name: "row without geometry", rows: []domain.SpatialFeatureGeometry{{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc, err := geo.ResourceFeatureCollection("REC1", tt.rows)
			require.NoError(t, err)
			assert.Empty(t, fc.Features)
			assert.Nil(t, fc.BBox)
		})
	}
}

func TestResourceFeatureCollection_InvalidGeometry(t *testing.T) {
	rows := []domain.SpatialFeatureGeometry{{
		SpatialFeatureGeometry: []string{`{"type":"Polygon"`},
	}}

	_, err := geo.ResourceFeatureCollection("REC1", rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "map feature 0")
}
