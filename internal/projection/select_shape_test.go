package projection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recreation-microservice/internal/domain"
	"github.com/recreation-microservice/internal/projection"
)

func variantFilter(t *testing.T, shape domain.SelectShape) *domain.Filter {
	t.Helper()
	images, ok := shape.Relation(domain.RelationImages)
	require.True(t, ok)
	variants, ok := images.Relation(domain.RelationImageVariants)
	require.True(t, ok)
	require.NotNil(t, variants.Filter)
	return variants.Filter
}

func TestBuildSelectShape_RootFields(t *testing.T) {
	shape := projection.BuildSelectShape(nil)

	assert.Equal(t, []string{
		"rec_resource_id",
		"name",
		"closest_community",
		"description",
		"driving_directions",
		"maintenance_standard_code",
		"display_on_public_site",
	}, shape.Fields)

	for _, name := range []string{
		domain.RelationAccess,
		domain.RelationActivity,
		domain.RelationStatus,
		domain.RelationFee,
		domain.RelationStructure,
		domain.RelationImages,
		domain.RelationDocs,
		domain.RelationMapFeature,
		domain.RelationCampsite,
	} {
		_, ok := shape.Relation(name)
		assert.True(t, ok, "relation %s", name)
	}
}

func TestBuildSelectShape_ImageVariantFilter(t *testing.T) {
	t.Run("empty codes match nothing", func(t *testing.T) {
		for _, codes := range [][]string{nil, {}} {
			filter := variantFilter(t, projection.BuildSelectShape(codes))
			assert.Equal(t, domain.FilterIn, filter.Op)
			assert.Equal(t, "size_code", filter.Field)
			assert.Empty(t, filter.Values)
			assert.True(t, filter.MatchesNothing())
		}
	})

	t.Run("non-empty codes are used verbatim", func(t *testing.T) {
		filter := variantFilter(t, projection.BuildSelectShape([]string{"original", "pre"}))
		assert.Equal(t, domain.FilterIn, filter.Op)
		assert.Equal(t, []interface{}{"original", "pre"}, filter.Values)
		assert.False(t, filter.MatchesNothing())
	})

	t.Run("unknown codes do not fail", func(t *testing.T) {
		filter := variantFilter(t, projection.BuildSelectShape([]string{"huge"}))
		assert.Equal(t, []interface{}{"huge"}, filter.Values)
	})
}

func TestBuildSelectShape_ActivityExclusionIsConstant(t *testing.T) {
	expected := make([]interface{}, 0, len(domain.ExcludedActivityCodes))
	for _, c := range domain.ExcludedActivityCodes {
		expected = append(expected, c)
	}

	for _, codes := range [][]string{nil, {"original"}, {"pre", "thm", "scr"}} {
		activity, ok := projection.BuildSelectShape(codes).Relation(domain.RelationActivity)
		require.True(t, ok)
		require.NotNil(t, activity.Filter)
		assert.Equal(t, domain.FilterNotIn, activity.Filter.Op)
		assert.Equal(t, "recreation_activity_code", activity.Filter.Field)
		assert.Equal(t, expected, activity.Filter.Values)
	}
}

func TestBuildSelectShape_Deterministic(t *testing.T) {
	codes := []string{"original", "pre"}
	first := projection.BuildSelectShape(codes)
	second := projection.BuildSelectShape(codes)
	assert.Equal(t, first, second)

	codes[0] = "mutated"
	assert.Equal(t, []interface{}{"original", "pre"}, variantFilter(t, first).Values)

	first.Fields[0] = "mutated"
	assert.Equal(t, "rec_resource_id", projection.BuildSelectShape(nil).Fields[0])
}
