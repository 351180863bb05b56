package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Alberto-Codes/box-office-prediction/internal/appcontext"
)

// DownloadDatasets runs the download phase: every IMDb dump is fetched
// from the remote origin and staged in the tenant bucket. The phase is
// fail-fast; the response names the first failing file.
func DownloadDatasets(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := ctx.Pipeline.RunDownloadPhase(c.Request.Context(), ctx.PipelineConfig)
		if err != nil {
			ctx.Logger.Error("Download phase failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Data downloaded and uploaded successfully to GCS",
			"bucket":  result.Bucket,
			"staged":  result.Staged,
		})
	}
}

// LoadDatasets runs the load phase: every staged dump is bulk-loaded
// into its BigQuery table, waiting for each load job to finish.
func LoadDatasets(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := ctx.Pipeline.RunLoadPhase(c.Request.Context(), ctx.PipelineConfig)
		if err != nil {
			ctx.Logger.Error("Load phase failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Staged datasets loaded successfully into BigQuery",
			"dataset": result.Dataset,
			"loaded":  result.Loaded,
		})
	}
}

func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
