package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"eyewear-ai-proxy/internal/config"
	"eyewear-ai-proxy/internal/handlers"
	"eyewear-ai-proxy/pkg/server"
)

// @title Eyewear AI Proxy
// @version 1.0
// @description Local development server for the eyewear AI proxy handlers

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	config.SetupLogging(cfg.Logging)

	// Initialize dependencies
	container, err := server.NewContainer(cfg, nil)
	if err != nil {
		logrus.Fatalf("Failed to initialize container: %v", err)
	}

	if missing := cfg.Gemini.MissingSetting(); missing != "" {
		logrus.Warnf("%s is not set: style advice and image edit requests will fail with 500", missing)
	}
	if missing := cfg.Imagen.MissingSetting(); missing != "" {
		logrus.Warnf("%s is not set: Imagen edit requests will fail with 500", missing)
	}

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, cfg)
	handlers.SetupRoutes(router, &handlers.RouterConfig{
		Config: cfg,
		Router: container.Router,
	})

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	logrus.WithFields(logrus.Fields{
		"port":   cfg.Port,
		"routes": container.Router.Paths(),
		"mode":   config.GetDeploymentMode(),
	}).Info("Server started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
