package schema

import "testing"

func TestFormatOptions(t *testing.T) {
	row := TableRow{
		Keyspace: "ks",
		Name:     "t",
		Props: map[string]any{
			"comment":                "hello",
			"gc_grace_seconds":       864000,
			"bloom_filter_fp_chance": 0.01,
			"compaction": map[string]string{
				"class":         "SizeTieredCompactionStrategy",
				"max_threshold": "32",
			},
			"keyspace_name": "ks", // not allow-listed, never surfaced
			"flags":         []string{"compound"},
		},
	}

	opts := FormatOptions(row)

	tests := []struct {
		key  string
		want string
	}{
		{"comment", "'hello'"},
		{"gcGraceSeconds", "864000"},
		{"bloomFilterFpChance", "0.01"},
		{"compaction", "{'class': 'SizeTieredCompactionStrategy', 'max_threshold': '32'}"},
	}
	for _, tt := range tests {
		if got := opts[tt.key]; got != tt.want {
			t.Errorf("opts[%q] = %q, want %q", tt.key, got, tt.want)
		}
	}

	if _, ok := opts["keyspaceName"]; ok {
		t.Error("non-allow-listed field surfaced")
	}
	if _, ok := opts["flags"]; ok {
		t.Error("non-allow-listed field surfaced")
	}
}

func TestFormatOptionsOmitsNull(t *testing.T) {
	row := TableRow{Props: map[string]any{
		"comment":          nil,
		"gc_grace_seconds": 0,
	}}

	opts := FormatOptions(row)
	if _, ok := opts["comment"]; ok {
		t.Error("null option rendered")
	}
	if got := opts["gcGraceSeconds"]; got != "0" {
		t.Errorf("zero value omitted: %v", opts)
	}
}

func TestFormatOptionsEmpty(t *testing.T) {
	if opts := FormatOptions(TableRow{}); len(opts) != 0 {
		t.Errorf("expected no options, got %v", opts)
	}
}

func TestQuoteLiteralEscapes(t *testing.T) {
	if got := quoteLiteral("it's"); got != "'it''s'" {
		t.Errorf("quoteLiteral = %q", got)
	}
}

func TestSnakeToCamel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"comment", "comment"},
		{"gc_grace_seconds", "gcGraceSeconds"},
		{"bloom_filter_fp_chance", "bloomFilterFpChance"},
		{"memtable_flush_period_in_ms", "memtableFlushPeriodInMs"},
	}
	for _, tt := range tests {
		if got := snakeToCamel(tt.in); got != tt.want {
			t.Errorf("snakeToCamel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOptionClausesKeepStorageNames(t *testing.T) {
	row := TableRow{Props: map[string]any{
		"default_time_to_live": 3600,
		"speculative_retry":    "99p",
	}}

	clauses := OptionClauses(row)
	if len(clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(clauses))
	}
	// Allow-list order: default_time_to_live precedes speculative_retry.
	if clauses[0].StorageName != "default_time_to_live" || clauses[0].Value != "3600" {
		t.Errorf("clause 0 = %+v", clauses[0])
	}
	if clauses[1].StorageName != "speculative_retry" || clauses[1].Value != "'99p'" {
		t.Errorf("clause 1 = %+v", clauses[1])
	}
}
