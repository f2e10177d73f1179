package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tanmandal/Short-URL/internal/config"
	"github.com/Tanmandal/Short-URL/internal/database"
	"github.com/Tanmandal/Short-URL/internal/middleware"
	"github.com/Tanmandal/Short-URL/internal/models"
	"github.com/Tanmandal/Short-URL/internal/routes"
	"github.com/Tanmandal/Short-URL/internal/services"
	"github.com/Tanmandal/Short-URL/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()

	// Environment-based logger initialization (production = JSON, development = pretty)
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting URL Shortener...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database.Connect()
	database.InitRedis()

	if err := database.DB.AutoMigrate(&models.Link{}, &models.LinkStats{}); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Background hit counter: bounded queue, drops under redirect storms
	services.InitHitCounter(4, 1024)

	r := gin.New()
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	routes.RegisterAuthRoutes(r)
	routes.RegisterShortenerRoutes(r)

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	// Drain pending hit increments after the last request finished
	services.StopHitCounter()

	logger.Info().Msg("Server exited gracefully")
}
