// Package main is the entry point for the youtube analyst API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/analysis"
	"github.com/kenobicjj/youtubeanalystAPI/internal/app/service"
	"github.com/kenobicjj/youtubeanalystAPI/internal/config"
	"github.com/kenobicjj/youtubeanalystAPI/internal/infra/credentials"
	"github.com/kenobicjj/youtubeanalystAPI/internal/infra/provider/registry"
	"github.com/kenobicjj/youtubeanalystAPI/internal/job"
	"github.com/kenobicjj/youtubeanalystAPI/internal/logger"
	"github.com/kenobicjj/youtubeanalystAPI/internal/transport/httpserver"
	"github.com/kenobicjj/youtubeanalystAPI/internal/validator"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("APP_CONFIG_FILE"))
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.App.Name, cfg.Logger, cfg.Sentry)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting youtube analyst api",
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
		zap.String("llm_backend", cfg.LLM.Backend),
		zap.String("llm_model", cfg.LLM.Model),
	)

	if cfg.YouTube.APIKey == "" {
		log.Warn("youtube api key is not set; save one from the web page and restart")
	}

	// Create outbound clients
	clients, err := registry.NewClients(context.Background(), cfg, log.Logger)
	if err != nil {
		log.Fatal("failed to create clients", zap.Error(err))
	}

	// Create services
	analyzeSvc := service.NewAnalyzeService(
		clients.Metadata,
		clients.Transcript,
		clients.Summarizer,
		analysis.New(log.Named("analysis")),
		clients.Keywords,
		log.Named("analyze"),
	)
	modelSvc := service.NewModelService(clients.Backend, cfg.LLM.Model, log.Named("models"))
	store := credentials.NewEnvFileStore(cfg.Credentials.EnvFile, log.Named("credentials"))

	// Readiness follows the model probe when it runs
	ready := func() bool { return true }
	var probe *job.ModelProbe
	if cfg.Probe.Enabled {
		probe = job.NewModelProbe(modelSvc, job.ProbeConfig{
			Interval: cfg.Probe.Interval,
			Timeout:  cfg.Probe.Timeout,
		}, log.Named("probe"))
		probe.Start(cfg.Probe.OnStartup)
		ready = probe.Ready
	}

	// Create HTTP server
	server := httpserver.NewServer(
		httpserver.ServerConfig{
			Name:         cfg.App.Name,
			BodyLimit:    1024 * 1024, // 1MB
			Debug:        cfg.App.Debug,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			IdleTimeout:  cfg.HTTP.IdleTimeout,
			TemplatesDir: cfg.HTTP.TemplatesDir,
			StaticDir:    cfg.HTTP.StaticDir,
			CORSOrigins:  cfg.HTTP.CORSOrigins,
			DefaultModel: cfg.LLM.Model,
		},
		httpserver.Dependencies{
			Analyzer:    analyzeSvc,
			Models:      modelSvc,
			Credentials: store,
			Ready:       ready,
		},
		validator.New(),
		log.Logger,
	)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutdown signal received")

		probe.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error("server shutdown error", zap.Error(err))
		}
	}()

	// Start server
	if err := server.Start(cfg.App.Port); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
