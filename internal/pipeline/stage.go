package pipeline

import (
	"context"

	"github.com/Alberto-Codes/box-office-prediction/internal/imdb"
)

const gzipContentType = "application/gzip"

// StagedObject locates one dataset file staged in the tenant bucket.
type StagedObject struct {
	Bucket string
	Path   string
}

// URI returns the object's gs:// location, the source form BigQuery
// load jobs accept.
func (o StagedObject) URI() string {
	return "gs://" + o.Bucket + "/" + o.Path
}

// StageWriter persists fetched dataset files into the staging bucket.
type StageWriter struct {
	store ObjectStore
}

func NewStageWriter(store ObjectStore) *StageWriter {
	return &StageWriter{store: store}
}

// Stage writes content under the raw-datasets prefix, overwriting any
// object already staged for the same file. Reruns with unchanged remote
// content therefore produce byte-identical staged state.
func (w *StageWriter) Stage(ctx context.Context, bucket, fileName string, content []byte) (StagedObject, error) {
	path := imdb.StagedPath(fileName)

	if err := w.store.PutObject(ctx, bucket, path, content, gzipContentType); err != nil {
		return StagedObject{}, &StageWriteError{File: fileName, Err: err}
	}

	return StagedObject{Bucket: bucket, Path: path}, nil
}
