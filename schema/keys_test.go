package schema

import (
	"reflect"
	"testing"
)

func TestClassifyKeys(t *testing.T) {
	rows := []KeyColumnRow{
		{Name: "ts", Kind: "clustering", Position: 0, ClusteringOrder: "desc"},
		{Name: "bucket", Kind: "partition_key", Position: 1},
		{Name: "id", Kind: "partition_key", Position: 0},
		{Name: "seq", Kind: "clustering", Position: 1},
		{Name: "value", Kind: "regular", Position: -1},
	}

	partition, clustering := ClassifyKeys(rows)

	wantPartition := []string{"id", "bucket"}
	if !reflect.DeepEqual(partition, wantPartition) {
		t.Errorf("partition keys = %v, want %v", partition, wantPartition)
	}

	wantClustering := []ClusteringKey{
		{Name: "ts", Order: "DESC"},
		{Name: "seq", Order: "ASC"},
	}
	if !reflect.DeepEqual(clustering, wantClustering) {
		t.Errorf("clustering keys = %v, want %v", clustering, wantClustering)
	}
}

func TestClassifyKeysDefaultsToAsc(t *testing.T) {
	tests := []struct {
		order string
		want  string
	}{
		{"asc", "ASC"},
		{"ASC", "ASC"},
		{"desc", "DESC"},
		{"DESC", "DESC"},
		{"", "ASC"},
		{"sideways", "ASC"},
	}

	for _, tt := range tests {
		_, clustering := ClassifyKeys([]KeyColumnRow{
			{Name: "ck", Kind: "clustering", Position: 0, ClusteringOrder: tt.order},
		})
		if clustering[0].Order != tt.want {
			t.Errorf("order %q normalized to %q, want %q", tt.order, clustering[0].Order, tt.want)
		}
	}
}

// Duplicate positions within a kind come from a malformed catalog; ordering
// between them must still be the same on every call.
func TestClassifyKeysDuplicatePositionsStable(t *testing.T) {
	rows := []KeyColumnRow{
		{Name: "zeta", Kind: "partition_key", Position: 0},
		{Name: "alpha", Kind: "partition_key", Position: 0},
		{Name: "mid", Kind: "partition_key", Position: 0},
	}

	first, _ := ClassifyKeys(rows)
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(first, want) {
		t.Fatalf("partition keys = %v, want %v", first, want)
	}

	for i := 0; i < 10; i++ {
		again, _ := ClassifyKeys(rows)
		if !reflect.DeepEqual(again, first) {
			t.Fatalf("ordering changed across calls: %v vs %v", again, first)
		}
	}
}

func TestClassifyKeysEmpty(t *testing.T) {
	partition, clustering := ClassifyKeys(nil)
	if len(partition) != 0 || len(clustering) != 0 {
		t.Errorf("expected empty results, got %v / %v", partition, clustering)
	}
}
