package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoColumns is returned by SynthesizeDDL when the column set is empty: no
// valid CREATE TABLE statement can be produced. Callers treat it as a table
// not found / no columns condition rather than a generic failure.
var ErrNoColumns = errors.New("no columns to describe")

// SynthesizeDDL emits a complete CREATE TABLE statement. Columns appear in
// their catalog position order regardless of key status; the PRIMARY KEY
// clause, clustering order and storage options follow in that fixed order.
// A table with zero key columns gets no PRIMARY KEY clause.
//
// The statement is assembled as an ordered list of column entries plus an
// ordered list of WITH clauses, joined at the end, so clause ordering cannot
// drift with append order.
func SynthesizeDDL(keyspace, table string, columns []ColumnDescriptor, partitionKeys []string, clusteringKeys []ClusteringKey, options []OptionClause) (string, error) {
	if len(columns) == 0 {
		return "", ErrNoColumns
	}

	entries := make([]string, 0, len(columns)+1)
	for _, col := range columns {
		entries = append(entries, fmt.Sprintf("  %s %s", col.Name, col.Type))
	}
	if pk := primaryKeyClause(partitionKeys, clusteringKeys); pk != "" {
		entries = append(entries, "  "+pk)
	}

	var with []string
	if len(clusteringKeys) > 0 {
		orders := make([]string, len(clusteringKeys))
		for i, ck := range clusteringKeys {
			orders[i] = ck.Name + " " + ck.Order
		}
		with = append(with, "CLUSTERING ORDER BY ("+strings.Join(orders, ", ")+")")
	}
	for _, opt := range options {
		with = append(with, opt.StorageName+" = "+opt.Value)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s.%s (\n", keyspace, table)
	b.WriteString(strings.Join(entries, ",\n"))
	b.WriteString("\n)")
	if len(with) > 0 {
		b.WriteString(" WITH ")
		b.WriteString(strings.Join(with, " AND "))
	}
	b.WriteString(";")
	return b.String(), nil
}

// primaryKeyClause renders the PRIMARY KEY entry: a single partition key as a
// bare name, multiple partition keys parenthesized as a group, clustering key
// names (without direction) appended after the group.
func primaryKeyClause(partitionKeys []string, clusteringKeys []ClusteringKey) string {
	if len(partitionKeys) == 0 && len(clusteringKeys) == 0 {
		return ""
	}

	var parts []string
	switch {
	case len(partitionKeys) > 1:
		parts = append(parts, "("+strings.Join(partitionKeys, ", ")+")")
	case len(partitionKeys) == 1:
		parts = append(parts, partitionKeys[0])
	}
	for _, ck := range clusteringKeys {
		parts = append(parts, ck.Name)
	}
	return "PRIMARY KEY (" + strings.Join(parts, ", ") + ")"
}
