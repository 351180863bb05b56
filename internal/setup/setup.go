// Package setup provisions the GCP resources the ingestion pipeline
// writes to: the tenant staging bucket with its conventional prefixes,
// the BigQuery dataset, and one table per registry file. Provisioning
// is a one-time operation run before the service; every step tolerates
// resources that already exist.
package setup

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cloud.google.com/go/bigquery"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"

	"github.com/Alberto-Codes/box-office-prediction/internal/imdb"
	"github.com/Alberto-Codes/box-office-prediction/internal/pipeline"
)

// EnsureBucket creates the tenant staging bucket if it does not exist
// and lays out its raw-datasets, processed-datasets and logs prefixes.
// Returns the bucket name.
func EnsureBucket(ctx context.Context, store pipeline.ObjectStore, logger *zap.Logger, tenantID, suffix string) (string, error) {
	bucket, err := pipeline.DeriveBucketName(tenantID, suffix)
	if err != nil {
		return "", err
	}

	exists, err := store.BucketExists(ctx, bucket)
	if err != nil {
		return "", err
	}
	if exists {
		logger.Info("Bucket already exists", zap.String("bucket", bucket))
	} else {
		if err := store.CreateBucket(ctx, bucket); err != nil {
			return "", err
		}
		logger.Info("Created bucket", zap.String("bucket", bucket))
	}

	for _, prefix := range []string{imdb.RawPrefix, imdb.ProcessedPrefix, imdb.LogsPrefix} {
		if err := store.PutObject(ctx, bucket, prefix, nil, ""); err != nil {
			return "", fmt.Errorf("failed to create prefix %s in bucket %s: %w", prefix, bucket, err)
		}
		logger.Info("Created prefix", zap.String("bucket", bucket), zap.String("prefix", prefix))
	}

	return bucket, nil
}

// EnsureDataset creates the BigQuery dataset if it does not exist.
func EnsureDataset(ctx context.Context, client *bigquery.Client, logger *zap.Logger, datasetID string) error {
	ds := client.Dataset(datasetID)

	if _, err := ds.Metadata(ctx); err == nil {
		logger.Info("Dataset already exists", zap.String("dataset", datasetID))
		return nil
	} else if !isNotFound(err) {
		return fmt.Errorf("failed to look up dataset %s: %w", datasetID, err)
	}

	if err := ds.Create(ctx, &bigquery.DatasetMetadata{}); err != nil {
		return fmt.Errorf("failed to create dataset %s: %w", datasetID, err)
	}
	logger.Info("Created dataset", zap.String("dataset", datasetID))
	return nil
}

// EnsureTables creates one table per registry file, with the schema
// the load phase expects. Tables that already exist are left as is.
func EnsureTables(ctx context.Context, client *bigquery.Client, logger *zap.Logger, datasetID string) error {
	for _, file := range imdb.Files {
		tableID := imdb.TableName(file.Name)

		schema := make(bigquery.Schema, 0, len(file.Schema))
		for _, col := range file.Schema {
			schema = append(schema, &bigquery.FieldSchema{
				Name:     col.Name,
				Type:     bigquery.FieldType(col.Type),
				Repeated: col.Repeated,
			})
		}

		err := client.Dataset(datasetID).Table(tableID).Create(ctx, &bigquery.TableMetadata{Schema: schema})
		if isAlreadyExists(err) {
			logger.Info("Table already exists", zap.String("table", tableID))
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create table %s: %w", tableID, err)
		}
		logger.Info("Created table", zap.String("dataset", datasetID), zap.String("table", tableID))
	}
	return nil
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}

func isAlreadyExists(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusConflict
}
