package schema

import (
	"sort"
	"strings"
)

// Catalog kind strings as stored in system_schema.columns.
const (
	kindPartitionKey = "partition_key"
	kindClustering   = "clustering"
)

// ClusteringKey is a clustering column with its sort direction.
type ClusteringKey struct {
	Name  string `json:"name"`
	Order string `json:"order"` // "ASC" or "DESC"
}

// ClassifyKeys separates key-column rows into partition keys and clustering
// keys, each ordered by catalog position. Rows of any other kind are ignored.
// Duplicate positions within a kind (a malformed catalog) are broken
// lexicographically by name so the result is stable across runs.
func ClassifyKeys(keyRows []KeyColumnRow) ([]string, []ClusteringKey) {
	var partition, clustering []KeyColumnRow
	for _, row := range keyRows {
		switch row.Kind {
		case kindPartitionKey:
			partition = append(partition, row)
		case kindClustering:
			clustering = append(clustering, row)
		}
	}

	sortKeyRows(partition)
	sortKeyRows(clustering)

	partitionKeys := make([]string, len(partition))
	for i, row := range partition {
		partitionKeys[i] = row.Name
	}

	clusteringKeys := make([]ClusteringKey, len(clustering))
	for i, row := range clustering {
		clusteringKeys[i] = ClusteringKey{
			Name:  row.Name,
			Order: normalizeOrder(row.ClusteringOrder),
		}
	}

	return partitionKeys, clusteringKeys
}

func sortKeyRows(rows []KeyColumnRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Position != rows[j].Position {
			return rows[i].Position < rows[j].Position
		}
		return rows[i].Name < rows[j].Name
	})
}

// normalizeOrder maps the catalog clustering_order field to ASC/DESC,
// defaulting to ASC when the field is absent or unrecognized.
func normalizeOrder(order string) string {
	if strings.EqualFold(order, "desc") {
		return "DESC"
	}
	return "ASC"
}
