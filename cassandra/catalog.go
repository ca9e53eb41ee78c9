package cassandra

import (
	"context"
	"fmt"

	"github.com/cqlmcp/mcp-cassandra/schema"
)

// Catalog readers over system_schema. Each maps driver rows to the plain row
// structs the schema package consumes; the schema engine itself never touches
// the session.

// systemKeyspaces is the fixed set of keyspaces Cassandra itself owns. A
// prefix match would also hide user keyspaces whose names merely start with
// "system".
var systemKeyspaces = map[string]struct{}{
	"system":                {},
	"system_auth":           {},
	"system_distributed":    {},
	"system_schema":         {},
	"system_traces":         {},
	"system_views":          {},
	"system_virtual_schema": {},
}

func isSystemKeyspace(name string) bool {
	_, ok := systemKeyspaces[name]
	return ok
}

// Keyspaces lists keyspace names. System keyspaces are skipped unless
// includeSystem is set.
func (s *Session) Keyspaces(ctx context.Context, includeSystem bool) ([]string, error) {
	iter := s.Query(`SELECT keyspace_name FROM system_schema.keyspaces`).WithContext(ctx).Iter()

	var keyspaces []string
	var name string
	for iter.Scan(&name) {
		if !includeSystem && isSystemKeyspace(name) {
			continue
		}
		keyspaces = append(keyspaces, name)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("failed to list keyspaces: %w", err)
	}
	return keyspaces, nil
}

// Tables lists table names in a keyspace.
func (s *Session) Tables(ctx context.Context, keyspace string) ([]string, error) {
	iter := s.Query(`SELECT table_name FROM system_schema.tables WHERE keyspace_name = ?`,
		keyspace).WithContext(ctx).Iter()

	var tables []string
	var name string
	for iter.Scan(&name) {
		tables = append(tables, name)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("failed to list tables in %s: %w", keyspace, err)
	}
	return tables, nil
}

// TableRow fetches the system_schema.tables row for one table, with all its
// storage-option fields. A nil row without error means the table does not
// exist.
func (s *Session) TableRow(ctx context.Context, keyspace, table string) (*schema.TableRow, error) {
	iter := s.Query(`SELECT * FROM system_schema.tables WHERE keyspace_name = ? AND table_name = ?`,
		keyspace, table).WithContext(ctx).Iter()

	props := make(map[string]any)
	if !iter.MapScan(props) {
		if err := iter.Close(); err != nil {
			return nil, fmt.Errorf("failed to read table row for %s.%s: %w", keyspace, table, err)
		}
		return nil, nil
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("failed to read table row for %s.%s: %w", keyspace, table, err)
	}

	return &schema.TableRow{Keyspace: keyspace, Name: table, Props: props}, nil
}

// Columns fetches the column rows of a table.
func (s *Session) Columns(ctx context.Context, keyspace, table string) ([]schema.ColumnRow, error) {
	iter := s.Query(`SELECT column_name, type, position FROM system_schema.columns
		WHERE keyspace_name = ? AND table_name = ?`,
		keyspace, table).WithContext(ctx).Iter()

	var columns []schema.ColumnRow
	var name, rawType string
	var position int
	for iter.Scan(&name, &rawType, &position) {
		columns = append(columns, schema.ColumnRow{
			Keyspace: keyspace,
			Table:    table,
			Name:     name,
			RawType:  rawType,
			Position: position,
		})
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("failed to read columns for %s.%s: %w", keyspace, table, err)
	}
	return columns, nil
}

// KeyColumns fetches the primary-key column rows of a table. Rows of kind
// "regular" or "static" are filtered out here; the classifier ignores them
// anyway.
func (s *Session) KeyColumns(ctx context.Context, keyspace, table string) ([]schema.KeyColumnRow, error) {
	iter := s.Query(`SELECT column_name, kind, position, clustering_order FROM system_schema.columns
		WHERE keyspace_name = ? AND table_name = ?`,
		keyspace, table).WithContext(ctx).Iter()

	var keyRows []schema.KeyColumnRow
	var name, kind, order string
	var position int
	for iter.Scan(&name, &kind, &position, &order) {
		if kind != "partition_key" && kind != "clustering" {
			continue
		}
		keyRows = append(keyRows, schema.KeyColumnRow{
			Keyspace:        keyspace,
			Table:           table,
			Name:            name,
			Kind:            kind,
			Position:        position,
			ClusteringOrder: order,
		})
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("failed to read key columns for %s.%s: %w", keyspace, table, err)
	}
	return keyRows, nil
}

// Indexes fetches the secondary-index rows of a keyspace, lifting the target
// expression and implementation class out of the catalog options map.
func (s *Session) Indexes(ctx context.Context, keyspace string) ([]schema.IndexRow, error) {
	iter := s.Query(`SELECT table_name, index_name, kind, options FROM system_schema.indexes
		WHERE keyspace_name = ?`,
		keyspace).WithContext(ctx).Iter()

	var indexes []schema.IndexRow
	var table, name, kind string
	var options map[string]string
	for iter.Scan(&table, &name, &kind, &options) {
		indexes = append(indexes, schema.IndexRow{
			Keyspace:  keyspace,
			Table:     table,
			Name:      name,
			Target:    options["target"],
			ClassName: options["class_name"],
			Kind:      kind,
		})
		options = nil
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("failed to read indexes for %s: %w", keyspace, err)
	}
	return indexes, nil
}

// Views fetches the materialized-view rows of a keyspace. A view's columns
// live in system_schema.columns under the view's name, so each view costs one
// extra read.
func (s *Session) Views(ctx context.Context, keyspace string) ([]schema.ViewRow, error) {
	iter := s.Query(`SELECT view_name, base_table_name, where_clause FROM system_schema.views
		WHERE keyspace_name = ?`,
		keyspace).WithContext(ctx).Iter()

	var views []schema.ViewRow
	var name, baseTable, whereClause string
	for iter.Scan(&name, &baseTable, &whereClause) {
		views = append(views, schema.ViewRow{
			Keyspace:    keyspace,
			BaseTable:   baseTable,
			Name:        name,
			WhereClause: whereClause,
		})
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("failed to read views for %s: %w", keyspace, err)
	}

	for i := range views {
		columns, err := s.Columns(ctx, keyspace, views[i].Name)
		if err != nil {
			return nil, err
		}
		included := make([]string, len(columns))
		for j, col := range columns {
			included[j] = col.Name
		}
		views[i].IncludedColumns = included
	}

	return views, nil
}
