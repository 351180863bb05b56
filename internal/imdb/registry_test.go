package imdb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableName(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"title.basics.tsv.gz", "title_basics"},
		{"name.basics.tsv.gz", "name_basics"},
		{"title.ratings.tsv.gz", "title_ratings"},
		{"raw-datasets/title.crew.tsv.gz", "title_crew"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, TableName(tt.fileName))
	}
}

func TestTableNameIdempotent(t *testing.T) {
	for _, file := range Files {
		once := TableName(file.Name)
		require.Equal(t, once, TableName(file.Name))
		// Applying the derivation to its own output must not change it.
		require.Equal(t, once, TableName(once))
	}
}

func TestTableNamesDistinct(t *testing.T) {
	seen := make(map[string]string)
	for _, file := range Files {
		table := TableName(file.Name)
		require.NotContains(t, seen, table, "files %s and %s map to the same table", seen[table], file.Name)
		seen[table] = file.Name
	}
}

func TestStagedPath(t *testing.T) {
	require.Equal(t, "raw-datasets/title.basics.tsv.gz", StagedPath("title.basics.tsv.gz"))
}

func TestRegistryShape(t *testing.T) {
	require.Len(t, Files, 7)
	for _, file := range Files {
		require.NotEmpty(t, file.Schema, "file %s has no schema", file.Name)
		for _, col := range file.Schema {
			require.NotEmpty(t, col.Name)
			require.Contains(t, []ColumnType{TypeString, TypeInteger, TypeFloat, TypeBoolean}, col.Type)
		}
	}
}
