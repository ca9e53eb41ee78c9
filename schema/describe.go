package schema

import "sort"

// Column roles in a table schema.
const (
	RolePartitionKey  = "partition_key"
	RoleClusteringKey = "clustering_key"
	RoleRegular       = "regular"
)

// ColumnDescriptor is one column of a described table.
type ColumnDescriptor struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Position int    `json:"position"`
	Role     string `json:"role"`
}

// TableSchema is the structured description of a table: a transient view over
// the catalog, constructed fresh per request and never mutated afterwards.
type TableSchema struct {
	Keyspace       string             `json:"keyspace"`
	Table          string             `json:"table"`
	Columns        []ColumnDescriptor `json:"columns"`
	PartitionKeys  []string           `json:"partitionKeys"`
	ClusteringKeys []ClusteringKey    `json:"clusteringKeys"`
	Options        TableOptions       `json:"options,omitempty"`
}

// Describe assembles a TableSchema from catalog rows. It never fails: absent
// or partial inputs yield empty collections, and a malformed column type
// resolves to "unknown" without affecting sibling columns. Existence checks
// belong to the caller.
//
// Columns are ordered partition keys first, then clustering keys, then
// regular columns, each group by position with a name tie-break. The catalog
// stores -1 for every regular column and restarts positions within each key
// kind, so position alone does not define a total order.
func Describe(tableRow TableRow, columnRows []ColumnRow, keyRows []KeyColumnRow) TableSchema {
	partitionKeys, clusteringKeys := ClassifyKeys(keyRows)

	roles := make(map[string]string, len(partitionKeys)+len(clusteringKeys))
	for _, name := range partitionKeys {
		roles[name] = RolePartitionKey
	}
	for _, ck := range clusteringKeys {
		roles[ck.Name] = RoleClusteringKey
	}

	sorted := make([]ColumnRow, len(columnRows))
	copy(sorted, columnRows)
	sort.Slice(sorted, func(i, j int) bool {
		pi, pj := rolePriority(roles[sorted[i].Name]), rolePriority(roles[sorted[j].Name])
		if pi != pj {
			return pi < pj
		}
		if sorted[i].Position != sorted[j].Position {
			return sorted[i].Position < sorted[j].Position
		}
		return sorted[i].Name < sorted[j].Name
	})

	columns := make([]ColumnDescriptor, 0, len(sorted))
	for _, row := range sorted {
		role, ok := roles[row.Name]
		if !ok {
			role = RoleRegular
		}
		columns = append(columns, ColumnDescriptor{
			Name:     row.Name,
			Type:     Resolve(row.RawType).Render(),
			Position: row.Position,
			Role:     role,
		})
	}

	return TableSchema{
		Keyspace:       tableRow.Keyspace,
		Table:          tableRow.Name,
		Columns:        columns,
		PartitionKeys:  partitionKeys,
		ClusteringKeys: clusteringKeys,
		Options:        FormatOptions(tableRow),
	}
}

func rolePriority(role string) int {
	switch role {
	case RolePartitionKey:
		return 0
	case RoleClusteringKey:
		return 1
	default:
		return 2
	}
}

// DDL emits the CREATE TABLE statement for a described table. The statement
// and the structured description are derived from the same rows and agree on
// column roles and ordering.
func DDL(tableRow TableRow, columnRows []ColumnRow, keyRows []KeyColumnRow) (string, error) {
	desc := Describe(tableRow, columnRows, keyRows)
	return SynthesizeDDL(desc.Keyspace, desc.Table, desc.Columns,
		desc.PartitionKeys, desc.ClusteringKeys, OptionClauses(tableRow))
}
