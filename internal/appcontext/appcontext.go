package appcontext

import (
	"go.uber.org/zap"

	"github.com/Alberto-Codes/box-office-prediction/internal/pipeline"
)

// Context carries the shared dependencies of the HTTP layer: the
// logger, the ingestion pipeline with its GCP-backed capabilities, and
// the pipeline configuration resolved at startup.
type Context struct {
	Logger *zap.Logger

	Pipeline       *pipeline.Pipeline
	PipelineConfig pipeline.Config
}
