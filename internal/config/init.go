package config

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/storage"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Alberto-Codes/box-office-prediction/internal/appcontext"
	"github.com/Alberto-Codes/box-office-prediction/internal/gcp"
	"github.com/Alberto-Codes/box-office-prediction/internal/pipeline"
)

const (
	// BucketSuffix joins the hashed project ID to form the staging
	// bucket name.
	BucketSuffix = "imdb-datasets"
	// DatasetID is the BigQuery dataset the dumps load into.
	DatasetID = "imdb_dataset"

	defaultBaseURL = "https://datasets.imdbws.com"
)

func InitContext() (*appcontext.Context, error) {
	if err := godotenv.Load(); err != nil {
		zap.L().Warn("No .env file found, using environment variables")
	}

	logger, err := InitLogger()
	if err != nil {
		return nil, err
	}

	cfg := LoadPipelineConfig()

	gcsClient, err := InitGCSClient()
	if err != nil {
		return nil, err
	}

	bqClient, err := InitBigQueryClient(cfg.ProjectID)
	if err != nil {
		return nil, err
	}

	store := gcp.NewObjectStore(gcsClient, cfg.ProjectID)
	warehouse := gcp.NewWarehouse(bqClient)

	ctx := &appcontext.Context{
		Logger: logger,

		Pipeline:       pipeline.New(store, warehouse, logger),
		PipelineConfig: cfg,
	}

	return ctx, nil
}

// LoadPipelineConfig resolves the pipeline configuration from the
// environment into an explicit struct. An unset project ID is not an
// error here; the pipeline rejects it before doing any I/O.
func LoadPipelineConfig() pipeline.Config {
	baseURL := os.Getenv("IMDB_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return pipeline.Config{
		ProjectID:    os.Getenv("GCP_PROJECT_ID"),
		BucketSuffix: BucketSuffix,
		DatasetID:    DatasetID,
		BaseURL:      baseURL,
	}
}

func InitLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func InitGCSClient() (*storage.Client, error) {
	client, err := storage.NewClient(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GCS client: %w", err)
	}
	return client, nil
}

func InitBigQueryClient(projectID string) (*bigquery.Client, error) {
	if projectID == "" {
		projectID = bigquery.DetectProjectID
	}

	client, err := bigquery.NewClient(context.Background(), projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize BigQuery client: %w", err)
	}
	return client, nil
}
