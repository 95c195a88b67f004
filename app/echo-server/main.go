package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscw "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"quantumPredict/app/echo-server/router"
	"quantumPredict/business/prediction"
	"quantumPredict/internal/middleware"
	"quantumPredict/internal/model"
	cwrepo "quantumPredict/internal/repository/cloudwatch"
	s3repo "quantumPredict/internal/repository/s3"
	"quantumPredict/internal/rest"
	"quantumPredict/pkg/config"
	"quantumPredict/pkg/logger"
	"quantumPredict/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	metrics.Init()

	// Model and metadata are loaded once and treated as immutable for the
	// process lifetime.
	artifact, meta, err := model.Load(cfg.Model.ArtifactPath, cfg.Model.MetadataPath)
	if err != nil {
		logger.Fatal("Failed to load model", "error", err)
	}
	logger.Info("Model loaded", "name", meta.ModelName, "version", meta.Version, "run_id", meta.RunID)

	schema, err := prediction.ByName(cfg.Model.Variant)
	if err != nil {
		logger.Fatal("Failed to resolve model variant", "error", err)
	}
	if artifact.Dim() != schema.VectorLen() {
		logger.Fatal("Model does not match schema",
			"model_dim", artifact.Dim(), "schema_dim", schema.VectorLen(), "variant", schema.Name)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		logger.Fatal("Failed to load AWS config", "error", err)
	}

	// Init repositories
	requestLog := s3repo.NewRequestLogRepository(awss3.NewFromConfig(awsCfg), cfg.Storage.Bucket, cfg.Storage.Prefix)
	emitter := cwrepo.NewEmitter(awscw.NewFromConfig(awsCfg))

	// Init service
	predictionService, err := prediction.NewService(schema, artifact, meta.Version, emitter, requestLog)
	if err != nil {
		logger.Fatal("Failed to build prediction service", "error", err)
	}

	// Init handler
	predictionHandler := rest.NewPredictionHandler(predictionService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())

	// Setup routes
	router.SetupOpsRoutes(e)
	api := e.Group("/api/v1")
	router.SetupPredictionRoutes(api, predictionHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr, "variant", schema.Name)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
