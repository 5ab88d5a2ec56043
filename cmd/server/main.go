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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"songrate/internal/config"
	"songrate/internal/handlers"
	"songrate/internal/models"
	"songrate/internal/repositories"
	"songrate/internal/services"
)

func main() {
	// Load .env file for local development
	_ = godotenv.Load()

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize database
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := models.NewDatabase(ctx, cfg.MongoURI, cfg.DatabaseName)
	cancel()
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close(context.Background())

	if err := db.CreateIndexes(context.Background()); err != nil {
		// Index creation failing should not keep the API from serving
		slog.Warn("Failed to create indexes", "error", err)
	}

	// Wire repositories, services, and handlers explicitly
	songRepo := repositories.NewMongoSongRepository(db, cfg.PageSizeDefault, cfg.PageSizeMax)
	ratingRepo := repositories.NewMongoRatingRepository(db)

	songService := services.NewSongService(songRepo)
	ratingService := services.NewRatingService(ratingRepo)

	songHandler := handlers.NewSongHandler(songService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	healthHandler := handlers.NewHealthHandler(db)

	gin.SetMode(cfg.GinMode)
	router := handlers.SetupRouter(songHandler, ratingHandler, healthHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		slog.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
}
