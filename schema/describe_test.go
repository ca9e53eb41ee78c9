package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sensorRows() (TableRow, []ColumnRow, []KeyColumnRow) {
	tableRow := TableRow{
		Keyspace: "metrics",
		Name:     "sensor_readings",
		Props: map[string]any{
			"comment": "per-sensor time series",
		},
	}
	columnRows := []ColumnRow{
		{Name: "reading", RawType: "double", Position: 2},
		{Name: "sensor_id", RawType: "uuid", Position: 0},
		{Name: "recorded_at", RawType: "timestamp", Position: 1},
		{Name: "tags", RawType: map[string]any{"key": "text", "value": "text"}, Position: 3},
	}
	keyRows := []KeyColumnRow{
		{Name: "sensor_id", Kind: "partition_key", Position: 0},
		{Name: "recorded_at", Kind: "clustering", Position: 0, ClusteringOrder: "desc"},
	}
	return tableRow, columnRows, keyRows
}

func TestDescribe(t *testing.T) {
	tableRow, columnRows, keyRows := sensorRows()

	desc := Describe(tableRow, columnRows, keyRows)

	assert.Equal(t, "metrics", desc.Keyspace)
	assert.Equal(t, "sensor_readings", desc.Table)
	assert.Equal(t, []string{"sensor_id"}, desc.PartitionKeys)
	assert.Equal(t, []ClusteringKey{{Name: "recorded_at", Order: "DESC"}}, desc.ClusteringKeys)

	require.Len(t, desc.Columns, 4)
	want := []ColumnDescriptor{
		{Name: "sensor_id", Type: "uuid", Position: 0, Role: RolePartitionKey},
		{Name: "recorded_at", Type: "timestamp", Position: 1, Role: RoleClusteringKey},
		{Name: "reading", Type: "double", Position: 2, Role: RoleRegular},
		{Name: "tags", Type: "map<text, text>", Position: 3, Role: RoleRegular},
	}
	assert.Equal(t, want, desc.Columns)

	assert.Equal(t, TableOptions{"comment": "'per-sensor time series'"}, desc.Options)
}

// A live catalog read stores -1 for every regular column and restarts
// positions within each key kind; ordering must still be partition keys,
// clustering keys, then regular columns.
func TestDescribeLiveCatalogPositions(t *testing.T) {
	tableRow := TableRow{Keyspace: "metrics", Name: "sensor_readings"}
	columnRows := []ColumnRow{
		{Name: "reading", RawType: "double", Position: -1},
		{Name: "recorded_at", RawType: "timestamp", Position: 0},
		{Name: "sensor_id", RawType: "uuid", Position: 0},
		{Name: "tags", RawType: map[string]any{"key": "text", "value": "text"}, Position: -1},
	}
	keyRows := []KeyColumnRow{
		{Name: "sensor_id", Kind: "partition_key", Position: 0},
		{Name: "recorded_at", Kind: "clustering", Position: 0, ClusteringOrder: "desc"},
	}

	desc := Describe(tableRow, columnRows, keyRows)

	require.Len(t, desc.Columns, 4)
	names := make([]string, len(desc.Columns))
	for i, col := range desc.Columns {
		names[i] = col.Name
	}
	assert.Equal(t, []string{"sensor_id", "recorded_at", "reading", "tags"}, names)

	ddl, err := DDL(tableRow, columnRows, keyRows)
	require.NoError(t, err)
	want := "CREATE TABLE metrics.sensor_readings (\n" +
		"  sensor_id uuid,\n" +
		"  recorded_at timestamp,\n" +
		"  reading double,\n" +
		"  tags map<text, text>,\n" +
		"  PRIMARY KEY (sensor_id, recorded_at)\n" +
		") WITH CLUSTERING ORDER BY (recorded_at DESC);"
	assert.Equal(t, want, ddl)
}

// Composite keys keep their declaration order even though both kinds restart
// their positions at zero.
func TestDescribeLiveCatalogCompositeKeys(t *testing.T) {
	columnRows := []ColumnRow{
		{Name: "value", RawType: "blob", Position: -1},
		{Name: "bucket", RawType: "int", Position: 1},
		{Name: "id", RawType: "uuid", Position: 0},
		{Name: "seq", RawType: "bigint", Position: 1},
		{Name: "ts", RawType: "timestamp", Position: 0},
	}
	keyRows := []KeyColumnRow{
		{Name: "id", Kind: "partition_key", Position: 0},
		{Name: "bucket", Kind: "partition_key", Position: 1},
		{Name: "ts", Kind: "clustering", Position: 0},
		{Name: "seq", Kind: "clustering", Position: 1},
	}

	desc := Describe(TableRow{Keyspace: "ks", Name: "t"}, columnRows, keyRows)

	names := make([]string, len(desc.Columns))
	for i, col := range desc.Columns {
		names[i] = col.Name
	}
	assert.Equal(t, []string{"id", "bucket", "ts", "seq", "value"}, names)
}

// Absent or partial inputs yield empty collections, not an error; not-found
// semantics belong to the caller.
func TestDescribeEmptyInputs(t *testing.T) {
	desc := Describe(TableRow{Keyspace: "ks", Name: "gone"}, nil, nil)

	assert.Equal(t, "ks", desc.Keyspace)
	assert.Empty(t, desc.Columns)
	assert.Empty(t, desc.PartitionKeys)
	assert.Empty(t, desc.ClusteringKeys)
	assert.Empty(t, desc.Options)
}

// One malformed column never prevents description of its siblings.
func TestDescribeMalformedColumnAbsorbed(t *testing.T) {
	columnRows := []ColumnRow{
		{Name: "good", RawType: "int", Position: 0},
		{Name: "bad", RawType: struct{}{}, Position: 1},
	}

	desc := Describe(TableRow{Keyspace: "ks", Name: "t"}, columnRows, nil)

	require.Len(t, desc.Columns, 2)
	assert.Equal(t, "int", desc.Columns[0].Type)
	assert.Equal(t, "unknown", desc.Columns[1].Type)
}

// The DDL path and the structured path are derived from the same rows and
// must agree on column ordering and roles.
func TestDDLFromRows(t *testing.T) {
	tableRow, columnRows, keyRows := sensorRows()

	ddl, err := DDL(tableRow, columnRows, keyRows)
	require.NoError(t, err)

	want := "CREATE TABLE metrics.sensor_readings (\n" +
		"  sensor_id uuid,\n" +
		"  recorded_at timestamp,\n" +
		"  reading double,\n" +
		"  tags map<text, text>,\n" +
		"  PRIMARY KEY (sensor_id, recorded_at)\n" +
		") WITH CLUSTERING ORDER BY (recorded_at DESC)" +
		" AND comment = 'per-sensor time series';"
	assert.Equal(t, want, ddl)
}

func TestDDLFromRowsNoColumns(t *testing.T) {
	_, err := DDL(TableRow{Keyspace: "ks", Name: "t"}, nil, nil)
	assert.ErrorIs(t, err, ErrNoColumns)
}
