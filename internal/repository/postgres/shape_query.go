package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/recreation-microservice/internal/domain"
)

// errMatchesNothing - фильтр IN с пустым списком; запрос не выполняется
var errMatchesNothing = errors.New("filter matches nothing")

// relationSource - как логическая связь SelectShape читается из таблиц.
// columns сопоставляет поля shape с SQL выражениями.
type relationSource struct {
	from    string
	key     string
	columns map[string]string
	orderBy string
}

var resourceSource = relationSource{
	from: "recreation_resource rr",
	key:  "rr.rec_resource_id",
	columns: map[string]string{
		"rec_resource_id":           "rr.rec_resource_id",
		"name":                      "rr.name",
		"closest_community":         "rr.closest_community",
		"description":               "rr.description",
		"driving_directions":        "rr.driving_directions",
		"maintenance_standard_code": "rr.maintenance_standard_code",
		"display_on_public_site":    "rr.display_on_public_site",
	},
}

// Описания из справочников nullable, в обязательные string-поля они идут через COALESCE
var relationSources = map[string]relationSource{
	domain.RelationAccess: {
		from: "recreation_access ra JOIN recreation_access_code ac ON ac.access_code = ra.access_code",
		key:  "ra.rec_resource_id",
		columns: map[string]string{
			"access_code": "ra.access_code",
			"description": "COALESCE(ac.description, '')",
		},
		orderBy: "ra.access_code",
	},
	domain.RelationActivity: {
		from: "recreation_activity a JOIN recreation_activity_code ak ON ak.recreation_activity_code = a.recreation_activity_code",
		key:  "a.rec_resource_id",
		columns: map[string]string{
			"recreation_activity_code": "a.recreation_activity_code",
			"description":              "COALESCE(ak.description, '')",
		},
		orderBy: "a.recreation_activity_code",
	},
	domain.RelationStatus: {
		from: "recreation_status s LEFT JOIN recreation_status_code sc ON sc.status_code = s.status_code",
		key:  "s.rec_resource_id",
		columns: map[string]string{
			"status_code": "s.status_code",
			"comment":     "s.comment",
			"description": "sc.description",
		},
	},
	domain.RelationFee: {
		from: "recreation_fee f LEFT JOIN recreation_fee_code fc ON fc.recreation_fee_code = f.recreation_fee_code",
		key:  "f.rec_resource_id",
		columns: map[string]string{
			"fee_amount":          "f.fee_amount",
			"fee_start_date":      "f.fee_start_date",
			"fee_end_date":        "f.fee_end_date",
			"monday_ind":          "f.monday_ind",
			"tuesday_ind":         "f.tuesday_ind",
			"wednesday_ind":       "f.wednesday_ind",
			"thursday_ind":        "f.thursday_ind",
			"friday_ind":          "f.friday_ind",
			"saturday_ind":        "f.saturday_ind",
			"sunday_ind":          "f.sunday_ind",
			"recreation_fee_code": "f.recreation_fee_code",
			"fee_description":     "fc.description",
		},
		orderBy: "f.fee_start_date NULLS LAST, f.recreation_fee_code",
	},
	domain.RelationStructure: {
		from: "recreation_structure st LEFT JOIN recreation_structure_code stc ON stc.structure_code = st.structure_code",
		key:  "st.rec_resource_id",
		columns: map[string]string{
			"description": "COALESCE(stc.description, st.description)",
		},
		orderBy: "st.structure_code",
	},
	domain.RelationImages: {
		from: "recreation_resource_images i",
		key:  "i.rec_resource_id",
		columns: map[string]string{
			"ref_id":  "i.ref_id",
			"caption": "i.caption",
		},
		orderBy: "i.ref_id",
	},
	domain.RelationImageVariants: {
		from: "recreation_resource_image_variants v",
		key:  "v.ref_id",
		columns: map[string]string{
			"ref_id":    "v.ref_id",
			"size_code": "v.size_code",
			"url":       "v.url",
			"width":     "v.width",
			"height":    "v.height",
			"extension": "v.extension",
		},
		orderBy: "v.ref_id, v.size_code",
	},
	domain.RelationDocs: {
		from: "recreation_resource_docs d LEFT JOIN recreation_resource_doc_code dc ON dc.doc_code = d.doc_code",
		key:  "d.rec_resource_id",
		columns: map[string]string{
			"ref_id":               "d.ref_id",
			"title":                "d.title",
			"url":                  "d.url",
			"doc_code":             "d.doc_code",
			"doc_code_description": "dc.description",
			"extension":            "d.extension",
		},
		orderBy: "d.ref_id",
	},
	domain.RelationMapFeature: {
		from: "recreation_map_feature mf JOIN recreation_resource_type_code rt ON rt.rec_resource_type_code = mf.recreation_resource_type_code",
		key:  "mf.rec_resource_id",
		columns: map[string]string{
			"recreation_resource_type_code": "mf.recreation_resource_type_code",
			"type_description":              "COALESCE(rt.description, '')",
		},
		orderBy: "mf.recreation_map_feature_code",
	},
	domain.RelationCampsite: {
		from: "recreation_defined_campsite dcs",
		key:  "dcs.rec_resource_id",
		columns: map[string]string{
			"campsite_count": "COUNT(*)",
		},
	},
}

// buildSelectQuery строит SELECT по полям shape для строк с ключом из keys.
// Результат использует bindvar "?" и должен пройти через Rebind.
func buildSelectQuery(
	src relationSource,
	name string,
	fields []string,
	filter *domain.Filter,
	keys []interface{},
	extra ...string,
) (string, []interface{}, error) {
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("relation %q: no fields selected", name)
	}
	if len(keys) == 0 {
		return "", nil, fmt.Errorf("relation %q: no parent keys", name)
	}

	selects := make([]string, 0, len(fields))
	for _, field := range fields {
		expr, ok := src.columns[field]
		if !ok {
			return "", nil, fmt.Errorf("relation %q: unknown field %q", name, field)
		}
		selects = append(selects, expr+" AS "+field)
	}

	where := []string{src.key + " IN (?)"}
	args := []interface{}{keys}

	if filter.MatchesNothing() {
		return "", nil, errMatchesNothing
	}
	if filter != nil && len(filter.Values) > 0 {
		expr, ok := src.columns[filter.Field]
		if !ok {
			return "", nil, fmt.Errorf("relation %q: unknown filter field %q", name, filter.Field)
		}
		switch filter.Op {
		case domain.FilterIn, domain.FilterNotIn:
			where = append(where, fmt.Sprintf("%s %s (?)", expr, filter.Op))
			args = append(args, filter.Values)
		default:
			return "", nil, fmt.Errorf("relation %q: unsupported filter op %q", name, filter.Op)
		}
	}
	where = append(where, extra...)

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s",
		strings.Join(selects, ", "), src.from, strings.Join(where, " AND "))
	if src.orderBy != "" {
		query += " ORDER BY " + src.orderBy
	}

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return "", nil, fmt.Errorf("relation %q: expand query: %w", name, err)
	}
	return query, args, nil
}

func buildRelationQuery(rel domain.RelationShape, keys []interface{}) (string, []interface{}, error) {
	src, ok := relationSources[rel.Name]
	if !ok {
		return "", nil, fmt.Errorf("unknown relation %q", rel.Name)
	}
	return buildSelectQuery(src, rel.Name, rel.Fields, rel.Filter, keys)
}

func buildResourceQuery(fields []string, id string, publicOnly bool) (string, []interface{}, error) {
	var extra []string
	if publicOnly {
		extra = append(extra, "rr.display_on_public_site = TRUE")
	}
	return buildSelectQuery(resourceSource, "recreation_resource", fields, nil, []interface{}{id}, extra...)
}
