package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	_ "cv-intake/docs" // Swagger docs
	"cv-intake/internal/api"
	"cv-intake/internal/blob"
	"cv-intake/internal/config"
	"cv-intake/internal/cv"
	"cv-intake/internal/llm"
	"cv-intake/internal/match"
	"cv-intake/internal/profile"
	"cv-intake/internal/queue"
	"cv-intake/internal/storage"
	"cv-intake/pkg/logger"
)

// @title CV Intake API
// @version 1.0
// @description Resume ingestion, profile extraction and skill matching for candidate accounts

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("connecting to database")
	db, err := storage.NewDB(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}
	slog.Info("database ready", "dialect", db.Dialect())

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		return err
	}

	parser, closeLLM, err := newParser(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLLM()

	profiles := profile.NewService(db, parser, profile.NewArchive(db, blobs))
	apiSrv := api.NewAPI(db, profiles, match.NewService(db, db))
	apiSrv.StartBackgroundWorkers(ctx)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewRouter(apiSrv),
		ReadTimeout:  30 * time.Second, // uploads
		WriteTimeout: 5 * time.Minute,  // OCR of scanned PDFs plus an LLM call
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("API server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		slog.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.RabbitMQURL != "" {
		consumer := queue.NewConsumer(cfg.RabbitMQURL, cfg.ParseQueue, func(ctx context.Context, req queue.Request) error {
			_, err := apiSrv.Reparse(ctx, req.CandidateID)
			return err
		})
		g.Go(func() error {
			if err := consumer.Run(gctx); err != nil && gctx.Err() == nil {
				return err
			}
			return nil
		})
	}

	return g.Wait()
}

func newBlobStore(ctx context.Context, cfg *config.Config) (blob.Store, error) {
	if cfg.BlobBackend == "s3" {
		slog.Info("storing resumes in S3", "bucket", cfg.S3Bucket)
		return blob.NewS3Store(ctx, blob.S3Config{
			Bucket:    cfg.S3Bucket,
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	}
	slog.Info("storing resumes on disk", "dir", cfg.UploadsDir)
	return blob.NewLocalStore(cfg.UploadsDir)
}

// newParser wires text extraction, optional OCR and the optional LLM name
// recognizer. The returned func releases the LLM client.
func newParser(ctx context.Context, cfg *config.Config) (*cv.Parser, func(), error) {
	var ocr cv.ImageOCR
	if cfg.OCREnabled {
		ocr = cv.NewPopplerOCR(cfg.OCRDPI, cfg.OCRTimeout)
	}

	phone, err := cv.NewPhoneRule(cfg.PhonePattern)
	if err != nil {
		return nil, nil, err
	}

	opts := llm.Options{
		Provider:          cfg.LLMProvider,
		APIKey:            cfg.LLMAPIKey,
		Model:             cfg.LLMModel,
		RequestsPerMinute: cfg.LLMRPM,
	}
	if cfg.LLMProvider == string(llm.ProviderOllama) {
		opts.Endpoint = cfg.OllamaURL
	}
	llmSvc, err := llm.NewService(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	closeLLM := func() {
		if err := llmSvc.Close(); err != nil {
			slog.Warn("closing LLM client", "error", err)
		}
	}

	var recognizer cv.EntityRecognizer
	if llmSvc.Enabled() {
		recognizer = llmSvc
		slog.Info("LLM name recognition enabled", "provider", cfg.LLMProvider)
	}
	return cv.NewParser(cv.NewExtractor(ocr), recognizer, phone), closeLLM, nil
}
