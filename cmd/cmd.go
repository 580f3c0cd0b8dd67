package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"getapet-backend/internal/config"
	"getapet-backend/internal/handlers"
	"getapet-backend/internal/repository"
	"getapet-backend/internal/services"
	"getapet-backend/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	// Apply database migrations
	if err := repository.Migrate("file://migrations", cfg.Database.URL()); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	// Connect to database
	db, err := pgxpool.New(context.Background(), cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Database connection established")

	// Initialize image storage
	images, err := newImageStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create image store")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	petRepo := repository.NewPetRepository(db)

	// Initialize services
	tokenService := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.ExpiryDays)
	userService := services.NewUserService(userRepo, tokenService)
	petService := services.NewPetService(petRepo, userRepo)
	adoptionService := services.NewAdoptionService(petRepo, userRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, images)
	petHandler := handlers.NewPetHandler(petService, adoptionService, images)

	// Setup router
	r := handlers.NewRouter(handlers.RouterOptions{
		Users:          userHandler,
		Pets:           petHandler,
		Tokens:         tokenService,
		PublicDir:      cfg.Storage.PublicDir,
		FrontendOrigin: cfg.Server.FrontendOrigin,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// newImageStore picks the configured image storage backend
func newImageStore(cfg *config.Config) (storage.ImageStore, error) {
	switch cfg.Storage.Backend {
	case "s3":
		return storage.NewS3Store(
			context.Background(),
			cfg.Storage.AWS.Region,
			cfg.Storage.AWS.S3Bucket,
			cfg.Storage.AWS.AccessKey,
			cfg.Storage.AWS.SecretKey,
			cfg.Storage.AWS.Endpoint,
		)
	case "local":
		return storage.NewLocalStore(cfg.Storage.PublicDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
