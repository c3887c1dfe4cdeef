package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/retailpulse/inventory-insight/internal/api"
	"github.com/retailpulse/inventory-insight/internal/cache"
	"github.com/retailpulse/inventory-insight/internal/config"
	"github.com/retailpulse/inventory-insight/internal/repository/postgres"
	"github.com/retailpulse/inventory-insight/internal/service"
	"github.com/retailpulse/inventory-insight/internal/storage"
	"github.com/retailpulse/inventory-insight/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Initialize report cache
	reportCache, err := cache.NewReportCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Report cache unavailable, continuing without it")
		reportCache = cache.NewNoopReportCache()
	}

	// Initialize report archive
	var archive storage.ReportArchive = storage.NewNoopArchive()
	if cfg.Archive.Enabled {
		minioArchive, err := storage.NewMinioArchive(context.Background(), cfg.Archive)
		if err != nil {
			logger.Log.Warn().Err(err).Msg("Report archive unavailable, continuing without it")
		} else {
			archive = minioArchive
		}
	}

	// Initialize services
	insightService := service.NewInsightService(
		postgres.NewItemRepository(db),
		postgres.NewForecastRepository(db),
		reportCache,
		archive,
		cfg.Engine,
	)

	router := api.NewRouter(&api.Services{InsightService: insightService}, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
