package schema

// Raw catalog rows as fetched from system_schema by the cassandra package.
// Everything in this package operates on these already-materialized rows;
// no function here performs I/O or touches a live session.

// TableRow is one row of system_schema.tables. Props holds the storage-option
// fields keyed by their snake_case storage names; values keep whatever Go type
// the driver produced (strings, numbers, maps).
type TableRow struct {
	Keyspace string
	Name     string
	Props    map[string]any
}

// ColumnRow is one row of system_schema.columns. RawType is the unparsed type
// descriptor: a plain name string from the catalog, or a nested map shape when
// the row came from driver metadata.
type ColumnRow struct {
	Keyspace string
	Table    string
	Name     string
	RawType  any
	Position int
}

// KeyColumnRow is a primary-key column row. Kind is the catalog kind string,
// "partition_key" or "clustering".
type KeyColumnRow struct {
	Keyspace        string
	Table           string
	Name            string
	Kind            string
	Position        int
	ClusteringOrder string
}

// IndexRow is one row of system_schema.indexes, with target and class name
// already lifted out of the catalog options map.
type IndexRow struct {
	Keyspace  string
	Table     string
	Name      string
	Target    string
	ClassName string
	Kind      string
}

// ViewRow is one row of system_schema.views.
type ViewRow struct {
	Keyspace        string
	BaseTable       string
	Name            string
	IncludedColumns []string
	WhereClause     string
}
