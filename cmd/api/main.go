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

	"tainan-restaurant/internal/config"
	"tainan-restaurant/internal/database"
	"tainan-restaurant/internal/dataset"
	"tainan-restaurant/internal/router"
	"tainan-restaurant/internal/service"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting tainan-restaurant API server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table, err := loadDataset(ctx, cfg, logger)
	if err != nil {
		return err
	}

	restaurantService := service.NewRestaurantService(table, logger)

	mux := router.New(restaurantService, table.Len, router.Config{
		BaseURL:        cfg.Server.BaseURL(),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateLimit:      cfg.Server.RateLimit,
		RateLimitBurst: cfg.Server.RateLimitBurst,
	}, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("public_base_url", cfg.Server.BaseURL()).
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info().Msg("server shutdown completed")
	return nil
}

// loadDataset reads the restaurant table from the configured source.
func loadDataset(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*dataset.Table, error) {
	fileLoader := dataset.NewFileLoader(logger)

	switch cfg.Dataset.Source {
	case config.SourceS3:
		s3Loader, err := dataset.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		}
		loader := dataset.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, logger)
		return dataset.Load(ctx, loader, cfg.Dataset.Path, logger)

	case config.SourcePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		// The table is read once; the pool is not needed afterwards.
		defer pool.Close()

		return dataset.Load(ctx, dataset.NewPostgresLoader(pool, logger), cfg.Dataset.Table, logger)

	default:
		logger.Info().Msg("using local file system for the dataset")
		return dataset.Load(ctx, fileLoader, cfg.Dataset.Path, logger)
	}
}
