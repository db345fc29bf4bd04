package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/recreation-microservice/internal/domain"
	"github.com/recreation-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

type recreationResourceRepository struct {
	db         *DB
	logger     *zap.Logger
	publicOnly bool
}

// NewRecreationResourceRepository создает репозиторий ресурсов.
// publicOnly скрывает ресурсы с display_on_public_site = false.
func NewRecreationResourceRepository(db *DB, logger *zap.Logger, publicOnly bool) repository.RecreationResourceRepository {
	return &recreationResourceRepository{
		db:         db,
		logger:     logger,
		publicOnly: publicOnly,
	}
}

// FindByID загружает ресурс и все связи, перечисленные в shape
func (r *recreationResourceRepository) FindByID(
	ctx context.Context,
	id string,
	shape domain.SelectShape,
) (*domain.RecreationResource, error) {
	query, args, err := buildResourceQuery(shape.Fields, id, r.publicOnly)
	if err != nil {
		return nil, err
	}

	var resource domain.RecreationResource
	if err := r.db.GetContext(ctx, &resource, r.db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recreation resource %s: %w", id, err)
	}

	for _, rel := range shape.Relations {
		if err := r.loadRelation(ctx, &resource, rel); err != nil {
			r.logger.Error("Failed to load relation",
				zap.String("rec_resource_id", id),
				zap.String("relation", rel.Name),
				zap.Error(err))
			return nil, fmt.Errorf("load %s for %s: %w", rel.Name, id, err)
		}
	}

	return &resource, nil
}

func (r *recreationResourceRepository) loadRelation(
	ctx context.Context,
	resource *domain.RecreationResource,
	rel domain.RelationShape,
) error {
	keys := []interface{}{resource.RecResourceID}

	switch rel.Name {
	case domain.RelationAccess:
		rows := []domain.RecreationAccess{}
		if err := r.selectRelation(ctx, &rows, rel, keys); err != nil {
			return err
		}
		resource.RecreationAccess = rows

	case domain.RelationActivity:
		rows := []domain.RecreationActivity{}
		if err := r.selectRelation(ctx, &rows, rel, keys); err != nil {
			return err
		}
		resource.RecreationActivity = rows

	case domain.RelationStatus:
		rows := []domain.RecreationStatus{}
		if err := r.selectRelation(ctx, &rows, rel, keys); err != nil {
			return err
		}
		if len(rows) > 0 {
			resource.RecreationStatus = &rows[0]
		}

	case domain.RelationFee:
		rows := []domain.RecreationFee{}
		if err := r.selectRelation(ctx, &rows, rel, keys); err != nil {
			return err
		}
		resource.RecreationFee = rows

	case domain.RelationStructure:
		rows := []domain.RecreationStructure{}
		if err := r.selectRelation(ctx, &rows, rel, keys); err != nil {
			return err
		}
		resource.RecreationStructure = rows

	case domain.RelationImages:
		images, err := r.loadImages(ctx, rel, keys)
		if err != nil {
			return err
		}
		resource.RecreationResourceImages = images

	case domain.RelationDocs:
		rows := []domain.RecreationResourceDoc{}
		if err := r.selectRelation(ctx, &rows, rel, keys); err != nil {
			return err
		}
		resource.RecreationResourceDocs = rows

	case domain.RelationMapFeature:
		rows := []domain.RecreationMapFeature{}
		if err := r.selectRelation(ctx, &rows, rel, keys); err != nil {
			return err
		}
		resource.RecreationMapFeature = rows

	case domain.RelationCampsite:
		rows := []domain.RecreationCampsiteSummary{}
		if err := r.selectRelation(ctx, &rows, rel, keys); err != nil {
			return err
		}
		if len(rows) > 0 {
			resource.RecreationCampsite = &rows[0]
		}

	default:
		return fmt.Errorf("unknown relation %q", rel.Name)
	}

	return nil
}

// loadImages загружает изображения и их варианты, отфильтрованные по size_code
func (r *recreationResourceRepository) loadImages(
	ctx context.Context,
	rel domain.RelationShape,
	keys []interface{},
) ([]domain.RecreationResourceImage, error) {
	images := []domain.RecreationResourceImage{}
	if err := r.selectRelation(ctx, &images, rel, keys); err != nil {
		return nil, err
	}

	variantShape, ok := rel.Relation(domain.RelationImageVariants)
	if !ok || len(images) == 0 {
		return images, nil
	}

	refIDs := make([]interface{}, 0, len(images))
	for _, img := range images {
		refIDs = append(refIDs, img.RefID)
	}

	variants := []domain.RecreationResourceImageVariant{}
	if err := r.selectRelation(ctx, &variants, variantShape, refIDs); err != nil {
		return nil, err
	}

	byRef := make(map[string][]domain.RecreationResourceImageVariant, len(images))
	for _, v := range variants {
		byRef[v.RefID] = append(byRef[v.RefID], v)
	}
	for i := range images {
		images[i].Variants = byRef[images[i].RefID]
		if images[i].Variants == nil {
			images[i].Variants = []domain.RecreationResourceImageVariant{}
		}
	}

	return images, nil
}

// selectRelation выполняет запрос связи; фильтр, не пропускающий ничего, даёт пустой результат без запроса
func (r *recreationResourceRepository) selectRelation(
	ctx context.Context,
	dest interface{},
	rel domain.RelationShape,
	keys []interface{},
) error {
	query, args, err := buildRelationQuery(rel, keys)
	if errors.Is(err, errMatchesNothing) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := r.db.SelectContext(ctx, dest, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("select %s: %w", rel.Name, err)
	}
	return nil
}

type spatialRow struct {
	SpatialFeatureGeometry pq.StringArray `db:"spatial_feature_geometry"`
	SitePointGeometry      sql.NullString `db:"site_point_geometry"`
}

// FindSpatialFeatureGeometry возвращает геометрию ресурса в GeoJSON (EPSG:4326)
func (r *recreationResourceRepository) FindSpatialFeatureGeometry(
	ctx context.Context,
	id string,
) ([]domain.SpatialFeatureGeometry, error) {
	query := `
		SELECT
			ARRAY(
				SELECT ST_AsGeoJSON(ST_Transform(g.geometry, 4326))
				FROM recreation_map_feature_geom g
				WHERE g.rec_resource_id = rr.rec_resource_id
				ORDER BY g.map_feature_id
			) AS spatial_feature_geometry,
			(
				SELECT ST_AsGeoJSON(ST_Transform(sp.geometry, 4326))
				FROM recreation_site_point sp
				WHERE sp.rec_resource_id = rr.rec_resource_id
				LIMIT 1
			) AS site_point_geometry
		FROM recreation_resource rr
		WHERE rr.rec_resource_id = $1
	`

	var rows []spatialRow
	if err := r.db.SelectContext(ctx, &rows, query, id); err != nil {
		return nil, fmt.Errorf("select spatial feature geometry for %s: %w", id, err)
	}

	result := make([]domain.SpatialFeatureGeometry, 0, len(rows))
	for _, row := range rows {
		item := domain.SpatialFeatureGeometry{
			SpatialFeatureGeometry: []string(row.SpatialFeatureGeometry),
		}
		if row.SitePointGeometry.Valid {
			point := row.SitePointGeometry.String
			item.SitePointGeometry = &point
		}
		result = append(result, item)
	}

	return result, nil
}

// Exists проверяет наличие ресурса
func (r *recreationResourceRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM recreation_resource WHERE rec_resource_id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check recreation resource %s: %w", id, err)
	}
	return exists, nil
}

// UpdateActivities синхронизирует recreation_activity с codes.
// Исключённые коды в синхронизации не участвуют и сохраняются как есть.
func (r *recreationResourceRepository) UpdateActivities(ctx context.Context, id string, codes []int) error {
	excluded := make(NotIn, 0, len(domain.ExcludedActivityCodes))
	for _, code := range domain.ExcludedActivityCodes {
		excluded = append(excluded, code)
	}

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := checkActivityCodes(ctx, tx, codes); err != nil {
			return err
		}
		return SyncManyToMany(ctx, tx,
			"recreation_activity",
			map[string]interface{}{
				"rec_resource_id":          id,
				"recreation_activity_code": excluded,
			},
			"recreation_activity_code",
			codes,
			func(code int) map[string]interface{} {
				return map[string]interface{}{
					"rec_resource_id":          id,
					"recreation_activity_code": code,
				}
			},
		)
	})
	if err != nil {
		return fmt.Errorf("update activities for %s: %w", id, err)
	}

	r.logger.Info("Recreation activities synced",
		zap.String("rec_resource_id", id),
		zap.Ints("activity_codes", codes))
	return nil
}

// checkActivityCodes возвращает *domain.UnknownActivityCodesError, если часть кодов отсутствует в справочнике
func checkActivityCodes(ctx context.Context, tx Tx, codes []int) error {
	if len(codes) == 0 {
		return nil
	}

	query, args, err := sqlx.In(
		"SELECT recreation_activity_code FROM recreation_activity_code WHERE recreation_activity_code IN (?)",
		codes,
	)
	if err != nil {
		return fmt.Errorf("expand activity code query: %w", err)
	}

	var known []int
	if err := tx.SelectContext(ctx, &known, tx.Rebind(query), args...); err != nil {
		return fmt.Errorf("select activity codes: %w", err)
	}

	found := make(map[int]struct{}, len(known))
	for _, code := range known {
		found[code] = struct{}{}
	}

	var missing []int
	for _, code := range codes {
		if _, ok := found[code]; !ok {
			missing = append(missing, code)
		}
	}
	if len(missing) > 0 {
		return &domain.UnknownActivityCodesError{Codes: missing}
	}
	return nil
}
