package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"clinical-dss-server/internal/config"
	"clinical-dss-server/internal/engine"
	"clinical-dss-server/internal/riskscores"
	"clinical-dss-server/internal/routes"
	"clinical-dss-server/internal/vitals"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer logger.Sync()

	// Load the trained diagnostic model
	model, err := engine.LoadModel(cfg.ModelPath)
	if err != nil {
		logger.Fatal("failed to load model", zap.String("path", cfg.ModelPath), zap.Error(err))
	}
	logger.Info("model loaded", zap.String("path", cfg.ModelPath), zap.Int("diseases", len(model.Diseases())))

	engineCfg := engine.DefaultConfig()
	engineCfg.UnknownSymptomPenalty = cfg.Engine.UnknownSymptomPenalty
	engineCfg.MinProbabilityThreshold = cfg.Engine.MinProbability
	engineCfg.NegationWindowChars = cfg.Engine.NegationWindow
	engineCfg.LocationBoost = cfg.Engine.LocationBoost
	engineCfg.EnablePatternMatching = cfg.Engine.EnablePatterns
	engineCfg.EnableLocationDetection = cfg.Engine.EnableLocations

	eng := engine.NewEngine(engineCfg, model, logger)
	analyzer := vitals.NewAnalyzer(logger)
	calc := riskscores.NewCalculator(logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Set up routes
	routes.SetupRoutes(router, eng, analyzer, calc, cfg, logger)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(serverAddr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	zapCfg.Level = level
	return zapCfg.Build()
}
