package pipeline

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Alberto-Codes/box-office-prediction/internal/imdb"
)

// Config carries everything one pipeline invocation needs. It is
// passed explicitly into each phase; the pipeline keeps no mutable
// process-wide state.
type Config struct {
	// ProjectID is the tenant's GCP project. It is hashed into the
	// staging bucket name and never appears verbatim in one.
	ProjectID string
	// BucketSuffix joins the hashed project ID to form the bucket name.
	BucketSuffix string
	// DatasetID is the target BigQuery dataset.
	DatasetID string
	// BaseURL is the remote origin serving the dataset dumps.
	BaseURL string
}

// DownloadResult reports a completed download phase.
type DownloadResult struct {
	Bucket string   `json:"bucket"`
	Staged []string `json:"staged"`
}

// LoadResult reports a completed load phase.
type LoadResult struct {
	Dataset string   `json:"dataset"`
	Loaded  []string `json:"loaded"`
}

// Pipeline ingests the fixed IMDb dataset registry: the download phase
// fetches each dump and stages it in the tenant bucket, the load phase
// bulk-loads each staged dump into its warehouse table. The phases are
// independently invokable and each is safe to rerun as a whole.
type Pipeline struct {
	store     ObjectStore
	warehouse Warehouse
	logger    *zap.Logger
}

func New(store ObjectStore, warehouse Warehouse, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		store:     store,
		warehouse: warehouse,
		logger:    logger,
	}
}

// RunDownloadPhase fetches every registry file from the remote origin
// and stages it in the tenant bucket, in registry order. The first
// fetch or stage failure aborts the phase; files staged before the
// failure stay staged. Rerunning overwrites staged objects in place.
func (p *Pipeline) RunDownloadPhase(ctx context.Context, cfg Config) (*DownloadResult, error) {
	bucket, err := DeriveBucketName(cfg.ProjectID, cfg.BucketSuffix)
	if err != nil {
		return nil, err
	}

	log := p.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("bucket", bucket),
	)
	log.Info("Starting download phase", zap.Int("files", len(imdb.Files)))

	fetcher := NewFetcher(cfg.BaseURL)
	defer fetcher.Close()

	writer := NewStageWriter(p.store)

	result := &DownloadResult{Bucket: bucket}
	for _, file := range imdb.Files {
		content, err := fetcher.Fetch(ctx, file.Name)
		if err != nil {
			log.Error("Failed to fetch dataset file", zap.String("file", file.Name), zap.Error(err))
			return nil, err
		}

		obj, err := writer.Stage(ctx, bucket, file.Name, content)
		if err != nil {
			log.Error("Failed to stage dataset file", zap.String("file", file.Name), zap.Error(err))
			return nil, err
		}

		log.Info("Staged dataset file",
			zap.String("file", file.Name),
			zap.String("path", obj.Path),
			zap.Int("bytes", len(content)),
		)
		result.Staged = append(result.Staged, file.Name)
	}

	log.Info("Download phase complete", zap.Int("staged", len(result.Staged)))
	return result, nil
}

// RunLoadPhase bulk-loads every staged registry file into its target
// table, in registry order, waiting for each load job to finish before
// starting the next. The first failure aborts the phase; tables loaded
// before it stay loaded. Rerunning resubmits the loads, which the
// warehouse's truncate-then-load write semantics make idempotent.
func (p *Pipeline) RunLoadPhase(ctx context.Context, cfg Config) (*LoadResult, error) {
	bucket, err := DeriveBucketName(cfg.ProjectID, cfg.BucketSuffix)
	if err != nil {
		return nil, err
	}

	log := p.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("bucket", bucket),
		zap.String("dataset", cfg.DatasetID),
	)
	log.Info("Starting load phase", zap.Int("files", len(imdb.Files)))

	loader := NewBulkLoader(p.warehouse)

	result := &LoadResult{Dataset: cfg.DatasetID}
	for _, file := range imdb.Files {
		table := TableRef{Dataset: cfg.DatasetID, Table: imdb.TableName(file.Name)}
		source := StagedObject{Bucket: bucket, Path: imdb.StagedPath(file.Name)}

		if err := loader.Load(ctx, table, source, file.Schema); err != nil {
			log.Error("Failed to load dataset file",
				zap.String("file", file.Name),
				zap.String("table", table.Table),
				zap.Error(err),
			)
			return nil, err
		}

		log.Info("Loaded table", zap.String("table", table.Table), zap.String("source", source.URI()))
		result.Loaded = append(result.Loaded, table.Table)
	}

	log.Info("Load phase complete", zap.Int("loaded", len(result.Loaded)))
	return result, nil
}
