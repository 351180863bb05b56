package pipeline

import "context"

// ObjectStore is the object-storage capability the pipeline depends on.
// The production implementation wraps the GCS client; tests use an
// in-memory store.
type ObjectStore interface {
	PutObject(ctx context.Context, bucket, path string, data []byte, contentType string) error
	BucketExists(ctx context.Context, bucket string) (bool, error)
	CreateBucket(ctx context.Context, bucket string) error
}

// TableRef identifies one warehouse table.
type TableRef struct {
	Dataset string
	Table   string
}

// LoadConfig is the fixed parse configuration for IMDb dataset dumps:
// gzipped TSV with a header row, backslash-N for nulls, no quoting.
type LoadConfig struct {
	FieldDelimiter  string
	SkipLeadingRows int64
	NullMarker      string
	Schema          []SchemaField
}

// SchemaField is one column of a load job's target schema.
type SchemaField struct {
	Name     string
	Type     string
	Repeated bool
}

// LoadJob is a submitted warehouse load operation. Wait blocks until
// the job reaches a terminal state and returns its terminal error, if
// any.
type LoadJob interface {
	Wait(ctx context.Context) error
}

// Warehouse is the bulk-load capability the pipeline depends on. The
// production implementation wraps the BigQuery client.
type Warehouse interface {
	SubmitLoad(ctx context.Context, table TableRef, sourceURI string, cfg LoadConfig) (LoadJob, error)
}
