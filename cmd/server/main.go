// @title EstudaIA API
// @version 1.0
// @description Turns study documents into summaries, flashcards, quizzes and study plans.
// @BasePath /api/v1
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"estudaia/internal/config"
	"estudaia/internal/domain"
	"estudaia/internal/extract"
	"estudaia/internal/generator"
	"estudaia/internal/generator/anthropic"
	"estudaia/internal/generator/gemini"
	"estudaia/internal/generator/openai"
	"estudaia/internal/generator/sample"
	"estudaia/internal/handler"
	"estudaia/internal/logging"
	"estudaia/internal/port"
	"estudaia/internal/repository/memory"
	"estudaia/internal/repository/postgres"
	"estudaia/internal/router"
	"estudaia/internal/service"
	s3storage "estudaia/internal/storage/s3"
)

func main() {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize record stores
	var (
		analysisRepo port.AnalysisRepository
		quizRepo     port.QuizSessionRepository
		healthH      *handler.HealthHandler
	)
	if cfg.Store.UsesPostgres() {
		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer func() { _ = db.Close() }()
		analysisRepo = postgres.NewAnalysisRepo(db)
		quizRepo = postgres.NewQuizSessionRepo(db)
		healthH = handler.NewHealthHandler(db)
	} else {
		analysisRepo = memory.NewAnalysisRepo()
		quizRepo = memory.NewQuizSessionRepo()
		healthH = handler.NewHealthHandler(nil)
	}
	log.Info("record store ready", zap.String("driver", cfg.Store.Driver))

	// Initialize blob storage
	var storage port.ObjectStorage
	if cfg.S3.Enabled {
		store, err := s3storage.NewBlobStore(context.Background(), &cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		storage = store
		log.Info("blob storage enabled", zap.String("bucket", cfg.S3.Bucket))
	}

	// Initialize AI providers
	registry := generator.NewRegistry()
	registry.Register(domain.ProviderOpenAI, openai.New)
	registry.Register(domain.ProviderGrok, openai.New)
	registry.Register(domain.ProviderAnthropic, anthropic.New)
	registry.Register(domain.ProviderGoogle, gemini.New)
	registry.Register(domain.ProviderDemo, sample.New)
	dispatcher := generator.NewDispatcher(registry, &cfg.AI, log)
	for _, p := range dispatcher.ConfiguredProviders() {
		log.Info("AI provider configured", zap.String("provider", string(p.Name)), zap.String("model", p.Model), zap.Bool("active", p.Active))
	}

	// Initialize services
	analysisSvc := service.NewAnalysisService(dispatcher, extract.New(), analysisRepo, storage, nil, cfg, log)
	recordSvc := service.NewRecordService(analysisRepo, &cfg.Records)
	quizSvc := service.NewQuizSessionService(quizRepo, &cfg.Records)
	blobSvc := service.NewBlobService(storage, &cfg.S3, &cfg.Upload, log)
	exportSvc := service.NewExportService(analysisRepo)

	// Initialize handlers
	handlers := router.Handlers{
		Analyze:  handler.NewAnalyzeHandler(analysisSvc, &cfg.Upload, log),
		Analysis: handler.NewAnalysisHandler(recordSvc, log),
		Export:   handler.NewExportHandler(exportSvc, log),
		Study:    handler.NewStudyHandler(dispatcher, log),
		Blob:     handler.NewBlobHandler(blobSvc, log),
		Provider: handler.NewProviderHandler(dispatcher, log),
		Quiz:     handler.NewQuizSessionHandler(quizSvc, log),
		Health:   healthH,
	}
	r := router.Setup(handlers, cfg.CORS.AllowedOrigins, cfg.Upload.MaxBytes(), log)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}

	log.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	log.Info("server exited")
	return nil
}
