package routes

import (
	"clinical-dss-server/internal/config"
	"clinical-dss-server/internal/engine"
	"clinical-dss-server/internal/handlers"
	"clinical-dss-server/internal/middleware"
	"clinical-dss-server/internal/riskscores"
	"clinical-dss-server/internal/vitals"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, eng *engine.Engine, analyzer *vitals.Analyzer, calc *riskscores.Calculator, cfg *config.Config, log *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))

	// Initialize handlers
	diagnosisHandler := handlers.NewDiagnosisHandler(eng, analyzer, cfg, log)
	vitalsHandler := handlers.NewVitalsHandler(analyzer)
	riskScoreHandler := handlers.NewRiskScoreHandler(calc)
	statusHandler := handlers.NewStatusHandler(eng, analyzer)

	api := router.Group("/api/v1")
	{
		api.POST("/diagnosis", diagnosisHandler.Diagnose)
		api.POST("/model/reload", diagnosisHandler.ReloadModel)
		api.GET("/status", statusHandler.Status)

		vitalsRoutes := api.Group("/vitals")
		{
			vitalsRoutes.POST("/analyze", vitalsHandler.Analyze)
		}

		riskRoutes := api.Group("/risk-scores")
		{
			riskRoutes.POST("/qsofa", riskScoreHandler.QSOFA)
			riskRoutes.POST("/nihss", riskScoreHandler.NIHSS)
			riskRoutes.POST("/cha2ds2vasc", riskScoreHandler.CHA2DS2VASc)
			riskRoutes.POST("/curb65", riskScoreHandler.CURB65)
			riskRoutes.POST("/meld", riskScoreHandler.MELD)
			riskRoutes.POST("/gcs", riskScoreHandler.GCS)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
