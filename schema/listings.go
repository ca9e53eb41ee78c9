package schema

// Type tags carried by listed schema objects when merged for display.
const (
	TypeTagSecondaryIndex   = "SECONDARY_INDEX"
	TypeTagMaterializedView = "MATERIALIZED_VIEW"
)

// IndexDescriptor describes one secondary index.
type IndexDescriptor struct {
	Name      string `json:"name"`
	Table     string `json:"table"`
	Target    string `json:"target,omitempty"`
	ClassName string `json:"className,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Type      string `json:"type"`
}

// ViewDescriptor describes one materialized view.
type ViewDescriptor struct {
	Name            string   `json:"name"`
	BaseTable       string   `json:"baseTable"`
	IncludedColumns []string `json:"includedColumns,omitempty"`
	WhereClause     string   `json:"whereClause,omitempty"`
	Type            string   `json:"type"`
}

// ListIndexes maps index rows to descriptors. When tableFilter is non-empty,
// only indexes on that table are returned.
func ListIndexes(indexRows []IndexRow, tableFilter string) []IndexDescriptor {
	indexes := make([]IndexDescriptor, 0, len(indexRows))
	for _, row := range indexRows {
		if tableFilter != "" && row.Table != tableFilter {
			continue
		}
		indexes = append(indexes, IndexDescriptor{
			Name:      row.Name,
			Table:     row.Table,
			Target:    row.Target,
			ClassName: row.ClassName,
			Kind:      row.Kind,
			Type:      TypeTagSecondaryIndex,
		})
	}
	return indexes
}

// ListViews maps view rows to descriptors. When tableFilter is non-empty,
// only views based on that table are returned.
func ListViews(viewRows []ViewRow, tableFilter string) []ViewDescriptor {
	views := make([]ViewDescriptor, 0, len(viewRows))
	for _, row := range viewRows {
		if tableFilter != "" && row.BaseTable != tableFilter {
			continue
		}
		views = append(views, ViewDescriptor{
			Name:            row.Name,
			BaseTable:       row.BaseTable,
			IncludedColumns: row.IncludedColumns,
			WhereClause:     row.WhereClause,
			Type:            TypeTagMaterializedView,
		})
	}
	return views
}

// SchemaObjects is the merged index and view listing returned by the
// list_schema_objects tool.
type SchemaObjects struct {
	Indexes []IndexDescriptor `json:"indexes"`
	Views   []ViewDescriptor  `json:"views"`
}

// ListSchemaObjects builds the merged listing from index and view rows.
func ListSchemaObjects(indexRows []IndexRow, viewRows []ViewRow, tableFilter string) SchemaObjects {
	return SchemaObjects{
		Indexes: ListIndexes(indexRows, tableFilter),
		Views:   ListViews(viewRows, tableFilter),
	}
}
