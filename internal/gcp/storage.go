package gcp

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/storage"

	"github.com/Alberto-Codes/box-office-prediction/internal/pipeline"
)

// ObjectStore implements the pipeline's object-storage capability on
// top of the GCS client.
type ObjectStore struct {
	client    *storage.Client
	projectID string
}

func NewObjectStore(client *storage.Client, projectID string) *ObjectStore {
	return &ObjectStore{client: client, projectID: projectID}
}

var _ pipeline.ObjectStore = (*ObjectStore)(nil)

func (s *ObjectStore) PutObject(ctx context.Context, bucket, path string, data []byte, contentType string) error {
	w := s.client.Bucket(bucket).Object(path).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("failed to write object %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close writer for object %s: %w", path, err)
	}

	return nil
}

func (s *ObjectStore) BucketExists(ctx context.Context, bucket string) (bool, error) {
	_, err := s.client.Bucket(bucket).Attrs(ctx)
	if errors.Is(err, storage.ErrBucketNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up bucket %s: %w", bucket, err)
	}
	return true, nil
}

func (s *ObjectStore) CreateBucket(ctx context.Context, bucket string) error {
	if err := s.client.Bucket(bucket).Create(ctx, s.projectID, nil); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}
