package domain

// Relation names, общие для SelectShape и репозитория
const (
	RelationAccess        = "recreation_access"
	RelationActivity      = "recreation_activity"
	RelationStatus        = "recreation_status"
	RelationFee           = "recreation_fee"
	RelationStructure     = "recreation_structure"
	RelationImages        = "recreation_resource_images"
	RelationImageVariants = "recreation_resource_image_variants"
	RelationDocs          = "recreation_resource_docs"
	RelationMapFeature    = "recreation_map_feature"
	RelationCampsite      = "recreation_defined_campsite"
)

// FilterOp - оператор фильтра по полю связи
type FilterOp string

const (
	FilterIn    FilterOp = "IN"
	FilterNotIn FilterOp = "NOT IN"
)

// Filter ограничивает строки связи по значению поля.
// In с пустым Values не совпадает ни с чем.
type Filter struct {
	Field  string
	Op     FilterOp
	Values []interface{}
}

// MatchesNothing - фильтр заведомо не пропустит ни одной строки
func (f *Filter) MatchesNothing() bool {
	return f != nil && f.Op == FilterIn && len(f.Values) == 0
}

// RelationShape описывает, какие поля связи и какие вложенные связи загружать
type RelationShape struct {
	Name      string
	Fields    []string
	Filter    *Filter
	Relations []RelationShape
}

// Relation возвращает вложенную связь по имени
func (r RelationShape) Relation(name string) (RelationShape, bool) {
	return findRelation(r.Relations, name)
}

// SelectShape - декларативное описание загружаемого графа ресурса.
// Интерпретируется слоем доступа к данным и не зависит от конкретного хранилища.
type SelectShape struct {
	Fields    []string
	Relations []RelationShape
}

// Relation возвращает связь верхнего уровня по имени
func (s SelectShape) Relation(name string) (RelationShape, bool) {
	return findRelation(s.Relations, name)
}

func findRelation(relations []RelationShape, name string) (RelationShape, bool) {
	for _, r := range relations {
		if r.Name == name {
			return r, true
		}
	}
	return RelationShape{}, false
}
