// Command setup provisions the GCP resources the ingestion service
// writes to: the hashed staging bucket with its conventional prefixes,
// the imdb_dataset BigQuery dataset, and one table per IMDb dump. Run
// it once per project before starting the API.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Alberto-Codes/box-office-prediction/internal/config"
	"github.com/Alberto-Codes/box-office-prediction/internal/gcp"
	"github.com/Alberto-Codes/box-office-prediction/internal/setup"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	logger, err := config.InitLogger()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	cfg := config.LoadPipelineConfig()

	defer func() {
		if err := logger.Sync(); err != nil {
			fmt.Printf("Failed to sync logger: %v\n", err)
		}
	}()

	ctx := context.Background()

	gcsClient, err := config.InitGCSClient()
	if err != nil {
		logger.Fatal("Failed to initialize GCS client", zap.Error(err))
	}
	defer gcsClient.Close()

	bqClient, err := config.InitBigQueryClient(cfg.ProjectID)
	if err != nil {
		logger.Fatal("Failed to initialize BigQuery client", zap.Error(err))
	}
	defer bqClient.Close()

	store := gcp.NewObjectStore(gcsClient, cfg.ProjectID)

	bucket, err := setup.EnsureBucket(ctx, store, logger, cfg.ProjectID, cfg.BucketSuffix)
	if err != nil {
		logger.Fatal("Failed to provision bucket", zap.Error(err))
	}

	if err := setup.EnsureDataset(ctx, bqClient, logger, cfg.DatasetID); err != nil {
		logger.Fatal("Failed to provision dataset", zap.Error(err))
	}

	if err := setup.EnsureTables(ctx, bqClient, logger, cfg.DatasetID); err != nil {
		logger.Fatal("Failed to provision tables", zap.Error(err))
	}

	logger.Info("Setup complete",
		zap.String("bucket", bucket),
		zap.String("dataset", cfg.DatasetID),
	)
}
