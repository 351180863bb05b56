package gcp

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/Alberto-Codes/box-office-prediction/internal/pipeline"
)

// Warehouse implements the pipeline's bulk-load capability on top of
// the BigQuery client. Loads write with truncate semantics, so each
// table holds exactly the rows of its latest successful load.
type Warehouse struct {
	client *bigquery.Client
}

func NewWarehouse(client *bigquery.Client) *Warehouse {
	return &Warehouse{client: client}
}

var _ pipeline.Warehouse = (*Warehouse)(nil)

func (w *Warehouse) SubmitLoad(ctx context.Context, table pipeline.TableRef, sourceURI string, cfg pipeline.LoadConfig) (pipeline.LoadJob, error) {
	gcsRef := bigquery.NewGCSReference(sourceURI)
	gcsRef.SourceFormat = bigquery.CSV
	gcsRef.FieldDelimiter = cfg.FieldDelimiter
	gcsRef.SkipLeadingRows = cfg.SkipLeadingRows
	gcsRef.NullMarker = cfg.NullMarker
	gcsRef.Encoding = bigquery.UTF_8
	// IMDb dumps are unquoted TSV; a bare quote character in a field
	// must not start a quoted section.
	gcsRef.ForceZeroQuote = true
	gcsRef.Schema = Schema(cfg.Schema)

	loader := w.client.Dataset(table.Dataset).Table(table.Table).LoaderFrom(gcsRef)
	loader.WriteDisposition = bigquery.WriteTruncate

	job, err := loader.Run(ctx)
	if err != nil {
		return nil, err
	}
	return &loadJob{job: job}, nil
}

type loadJob struct {
	job *bigquery.Job
}

// Wait blocks until the load job reaches a terminal state and surfaces
// the job-level error for jobs that complete in a failed state.
func (j *loadJob) Wait(ctx context.Context) error {
	status, err := j.job.Wait(ctx)
	if err != nil {
		return err
	}
	return status.Err()
}

// Schema converts the pipeline's schema fields to a BigQuery schema.
func Schema(fields []pipeline.SchemaField) bigquery.Schema {
	schema := make(bigquery.Schema, 0, len(fields))
	for _, f := range fields {
		schema = append(schema, &bigquery.FieldSchema{
			Name:     f.Name,
			Type:     bigquery.FieldType(f.Type),
			Repeated: f.Repeated,
		})
	}
	return schema
}
