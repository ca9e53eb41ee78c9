package schema

import (
	"fmt"
	"sort"
	"strings"
)

// tableOptionFields is the allow-list of storage option fields that are ever
// surfaced, in the order they appear in emitted DDL. Anything else on the
// table row (ids, flags, deprecated fields) is never rendered.
var tableOptionFields = []string{
	"bloom_filter_fp_chance",
	"caching",
	"comment",
	"compaction",
	"compression",
	"crc_check_chance",
	"dclocal_read_repair_chance",
	"default_time_to_live",
	"gc_grace_seconds",
	"max_index_interval",
	"memtable_flush_period_in_ms",
	"min_index_interval",
	"read_repair_chance",
	"speculative_retry",
}

// OptionClause is one formatted storage option. StorageName is the snake_case
// catalog field name used in DDL; DisplayName is the camelCase key used in
// structured output. Both name the same clause.
type OptionClause struct {
	StorageName string
	DisplayName string
	Value       string
}

// TableOptions maps camelCase display names to formatted option literals.
type TableOptions map[string]string

// FormatOptions renders the allow-listed storage options of a table row for
// structured output. Options absent from the row or null are omitted.
func FormatOptions(tableRow TableRow) TableOptions {
	clauses := OptionClauses(tableRow)
	if len(clauses) == 0 {
		return nil
	}
	opts := make(TableOptions, len(clauses))
	for _, c := range clauses {
		opts[c.DisplayName] = c.Value
	}
	return opts
}

// OptionClauses renders the allow-listed storage options of a table row in
// allow-list order, for DDL emission.
func OptionClauses(tableRow TableRow) []OptionClause {
	var clauses []OptionClause
	for _, name := range tableOptionFields {
		value, ok := tableRow.Props[name]
		if !ok || value == nil {
			continue
		}
		clauses = append(clauses, OptionClause{
			StorageName: name,
			DisplayName: snakeToCamel(name),
			Value:       formatOptionValue(value),
		})
	}
	return clauses
}

// formatOptionValue renders a single option value as a DDL literal: maps as a
// brace-delimited literal with single-quoted keys and values, strings
// single-quoted, numbers and booleans as-is.
func formatOptionValue(value any) string {
	switch v := value.(type) {
	case string:
		return quoteLiteral(v)
	case map[string]string:
		return formatMapLiteral(v)
	case map[string]any:
		strMap := make(map[string]string, len(v))
		for k, val := range v {
			strMap[k] = fmt.Sprintf("%v", val)
		}
		return formatMapLiteral(strMap)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatMapLiteral(m map[string]string) string {
	if len(m) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(m))
	for k, v := range m {
		parts = append(parts, quoteLiteral(k)+": "+quoteLiteral(v))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}

// quoteLiteral single-quotes a string for CQL, doubling embedded quotes.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// snakeToCamel converts a snake_case storage name to its camelCase display
// name, e.g. "gc_grace_seconds" -> "gcGraceSeconds".
func snakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
