package geo

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/recreation-microservice/internal/domain"
)

const (
	KindSitePoint   = "site_point"
	KindMapFeature  = "map_feature"
	propertyKind    = "kind"
	propertyRecID   = "rec_resource_id"
	propertyFeature = "feature_index"
)

// ResourceFeatureCollection собирает FeatureCollection из геометрий ресурса.
// Site point идёт первым, затем map features в порядке загрузки. BBox покрывает все геометрии.
func ResourceFeatureCollection(recResourceID string, rows []domain.SpatialFeatureGeometry) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	if len(rows) == 0 {
		return fc, nil
	}
	row := rows[0]

	if row.SitePointGeometry != nil {
		g, err := parseGeometry(*row.SitePointGeometry)
		if err != nil {
			return nil, fmt.Errorf("site point of %s: %w", recResourceID, err)
		}
		feat := geojson.NewFeature(g)
		feat.Properties[propertyKind] = KindSitePoint
		feat.Properties[propertyRecID] = recResourceID
		fc.Append(feat)
	}

	for i, raw := range row.SpatialFeatureGeometry {
		g, err := parseGeometry(raw)
		if err != nil {
			return nil, fmt.Errorf("map feature %d of %s: %w", i, recResourceID, err)
		}
		feat := geojson.NewFeature(g)
		feat.Properties[propertyKind] = KindMapFeature
		feat.Properties[propertyRecID] = recResourceID
		feat.Properties[propertyFeature] = i
		fc.Append(feat)
	}

	if len(fc.Features) > 0 {
		bound := fc.Features[0].Geometry.Bound()
		for _, f := range fc.Features[1:] {
			bound = bound.Union(f.Geometry.Bound())
		}
		fc.BBox = geojson.NewBBox(bound)
	}

	return fc, nil
}

func parseGeometry(raw string) (orb.Geometry, error) {
	g, err := geojson.UnmarshalGeometry([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("parse geojson: %w", err)
	}
	if g.Geometry() == nil {
		return nil, fmt.Errorf("empty geometry")
	}
	return g.Geometry(), nil
}
