package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "estudaia/docs" // registers the OpenAPI spec with swag
	"estudaia/internal/handler"
	"estudaia/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Analyze  *handler.AnalyzeHandler
	Analysis *handler.AnalysisHandler
	Export   *handler.ExportHandler
	Study    *handler.StudyHandler
	Blob     *handler.BlobHandler
	Provider *handler.ProviderHandler
	Quiz     *handler.QuizSessionHandler
	Health   *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(h Handlers, allowedOrigins []string, maxUploadBytes int64, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = maxUploadBytes

	// Global middleware
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	v1.POST("/analyze", h.Analyze.Analyze)
	v1.POST("/explain", h.Study.Explain)
	v1.POST("/concepts/normalize", h.Study.NormalizeConcept)
	v1.POST("/blobs", h.Blob.Upload)

	analyses := v1.Group("/analyses")
	analyses.GET("", h.Analysis.List)
	analyses.POST("", h.Analysis.Create)
	analyses.DELETE("", h.Analysis.Clear)
	analyses.GET("/:id", h.Analysis.GetByID)
	analyses.DELETE("/:id", h.Analysis.Delete)
	analyses.GET("/:id/export", h.Export.Export)

	providers := v1.Group("/providers")
	providers.GET("", h.Provider.List)
	providers.POST("/test", h.Provider.Test)

	quiz := v1.Group("/quiz-sessions")
	quiz.GET("", h.Quiz.List)
	quiz.POST("", h.Quiz.Create)
	quiz.DELETE("", h.Quiz.Clear)

	return r
}
