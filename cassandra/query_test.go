package cassandra

import "testing"

func TestIsReadOnly(t *testing.T) {
	tests := []struct {
		cql  string
		want bool
	}{
		{"SELECT * FROM ks.t", true},
		{"select * from ks.t", true},
		{"  SELECT count(*) FROM ks.t", true},
		{"INSERT INTO ks.t (id) VALUES (1)", false},
		{"UPDATE ks.t SET v = 1 WHERE id = 1", false},
		{"DROP TABLE ks.t", false},
		{"TRUNCATE ks.t", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isReadOnly(tt.cql); got != tt.want {
			t.Errorf("isReadOnly(%q) = %v, want %v", tt.cql, got, tt.want)
		}
	}
}

func TestValidIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"users", true},
		{"sensor_readings", true},
		{"_internal", true},
		{"Users2", true},
		{"", false},
		{"2fast", false},
		{"ks.t", false},
		{"t; DROP TABLE x", false},
		{`"quoted"`, false},
	}

	for _, tt := range tests {
		if got := validIdentifier(tt.name); got != tt.want {
			t.Errorf("validIdentifier(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
