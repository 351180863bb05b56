package pipeline

import (
	"context"

	"github.com/Alberto-Codes/box-office-prediction/internal/imdb"
)

// nullMarker is the literal IMDb dumps use for absent values.
const nullMarker = `\N`

// BulkLoader submits warehouse load jobs for staged dataset files.
type BulkLoader struct {
	warehouse Warehouse
}

func NewBulkLoader(warehouse Warehouse) *BulkLoader {
	return &BulkLoader{warehouse: warehouse}
}

// loadConfig builds the fixed parse configuration for one dataset
// file: tab-delimited, header row skipped, UTF-8, \N for null, no
// quote character.
func loadConfig(schema []imdb.Column) LoadConfig {
	fields := make([]SchemaField, 0, len(schema))
	for _, col := range schema {
		fields = append(fields, SchemaField{
			Name:     col.Name,
			Type:     string(col.Type),
			Repeated: col.Repeated,
		})
	}

	return LoadConfig{
		FieldDelimiter:  "\t",
		SkipLeadingRows: 1,
		NullMarker:      nullMarker,
		Schema:          fields,
	}
}

// Load ingests one staged object into its target table and blocks
// until the load job reaches a terminal state, so a successful return
// means the table is queryable, not merely that the job was submitted.
// A failed job is an all-or-nothing table-load failure; remediation is
// resubmitting the load, which the warehouse's truncate-then-load
// write semantics make safe.
func (l *BulkLoader) Load(ctx context.Context, table TableRef, source StagedObject, schema []imdb.Column) error {
	job, err := l.warehouse.SubmitLoad(ctx, table, source.URI(), loadConfig(schema))
	if err != nil {
		return &LoadError{Table: table.Table, Err: err}
	}

	if err := job.Wait(ctx); err != nil {
		return &LoadError{Table: table.Table, Err: err}
	}

	return nil
}
