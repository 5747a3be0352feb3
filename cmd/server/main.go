package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/noto-space/noto-web/config"
	"github.com/noto-space/noto-web/internal/app/controller"
	"github.com/noto-space/noto-web/internal/app/repository"
	"github.com/noto-space/noto-web/internal/app/service"
	"github.com/noto-space/noto-web/internal/db"
	"github.com/noto-space/noto-web/internal/ogimage"
	"github.com/noto-space/noto-web/internal/router"
	"github.com/noto-space/noto-web/internal/scheduler"
	"github.com/noto-space/noto-web/pkg/logger"
	"github.com/noto-space/noto-web/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Noto web server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Optional image cache. The server works without it; every request
	// just composes from scratch.
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Continuing without image cache", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer func() {
				if err := redis.Close(); err != nil {
					logger.Error("Failed to close Redis connection", err)
				}
			}()
		}
	}

	// Initialize repositories
	previewRepo := repository.NewPreviewRepository(db.GetDB())

	// Initialize services
	previewService := service.NewPreviewService(previewRepo)
	metadataService := service.NewMetadataService(cfg.App)
	sitemapService := service.NewSitemapService(previewRepo, cfg.App)

	composer := ogimage.NewComposer(ogimage.NewHTTPImageFetcher(), cfg.App.BrandName)

	// Initialize controllers
	previewImageController := controller.NewPreviewImageController(previewService, composer)
	pageController := controller.NewPageController(previewService, metadataService, cfg.App)
	staticController := controller.NewStaticController(sitemapService, cfg.App)

	// Start the sitemap scheduler
	sitemapScheduler := scheduler.NewSitemapScheduler(sitemapService)
	if err := sitemapScheduler.Start(); err != nil {
		logger.Fatal("Failed to start sitemap scheduler", err)
	}
	defer sitemapScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		previewImageController,
		pageController,
		staticController,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
