package cassandra

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNotReadOnly is returned when the query tool receives anything other than
// a SELECT statement.
var ErrNotReadOnly = errors.New("only SELECT statements are allowed")

var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// validIdentifier reports whether s is a plain unquoted CQL identifier.
// Keyspace and table names are interpolated into sample queries, so anything
// else is rejected.
func validIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// isReadOnly reports whether the statement's first keyword is SELECT.
func isReadOnly(cql string) bool {
	fields := strings.Fields(cql)
	return len(fields) > 0 && strings.EqualFold(fields[0], "SELECT")
}

// ReadQuery executes a read-only CQL statement and returns its rows as maps.
func (s *Session) ReadQuery(ctx context.Context, cql string) ([]map[string]any, error) {
	if !isReadOnly(cql) {
		return nil, ErrNotReadOnly
	}

	iter := s.Query(cql).WithContext(ctx).Iter()

	var results []map[string]any
	for {
		row := make(map[string]any)
		if !iter.MapScan(row) {
			break
		}
		results = append(results, row)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return results, nil
}

// Sample returns the first limit rows of a table.
func (s *Session) Sample(ctx context.Context, keyspace, table string, limit int) ([]map[string]any, error) {
	if !validIdentifier(keyspace) || !validIdentifier(table) {
		return nil, fmt.Errorf("invalid table reference %q.%q", keyspace, table)
	}
	if limit <= 0 {
		limit = 10
	}

	cql := fmt.Sprintf("SELECT * FROM %s.%s LIMIT %d", keyspace, table, limit)
	return s.ReadQuery(ctx, cql)
}
