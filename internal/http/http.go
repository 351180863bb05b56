package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Alberto-Codes/box-office-prediction/internal/appcontext"
	"github.com/Alberto-Codes/box-office-prediction/internal/http/middleware"
)

type APIService struct {
	engine  *gin.Engine
	context *appcontext.Context
}

func NewHTTPService(ctx *appcontext.Context) *APIService {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORSMiddleware())

	service := &APIService{
		engine:  engine,
		context: ctx,
	}
	service.setupRoutes()
	return service
}

func (h *APIService) Engine() *gin.Engine {
	return h.engine
}

func (h *APIService) setupRoutes() {
	v1 := h.engine.Group("/api/v1")
	h.setupDatasetRoutes(v1)

	h.engine.GET("/health", Health())
}

func (h *APIService) setupDatasetRoutes(group *gin.RouterGroup) {
	datasets := group.Group("/datasets")

	datasets.POST("/download", DownloadDatasets(h.context))
	datasets.POST("/load", LoadDatasets(h.context))
}
