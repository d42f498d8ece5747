package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"restaurant/internal/config"
	"restaurant/internal/database"
	"restaurant/internal/menu"
	"restaurant/internal/order"
	"restaurant/internal/repository"
	"restaurant/internal/service"
	"restaurant/internal/shell"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

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

	// Initialize logger away from the prompt stream
	var logOut io.Writer = os.Stderr
	if cfg.Logger.File != "" {
		logFile, err := os.OpenFile(cfg.Logger.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close()
		logOut = logFile
	}
	logger := config.NewLogger(cfg.Logger, logOut)
	logger.Info().Msg("starting restaurant ordering terminal")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize menu store with S3 and local fallback
	store := newMenuStore(ctx, cfg, logger)

	menus, err := service.NewMenuService(ctx, store, cfg.Menu.File, logger)
	if err != nil {
		return err
	}
	fmt.Printf("Menu loaded from %s.\n", menus.Location())

	// Initialize the optional order archive
	var archive repository.OrderRepository
	if cfg.Archive.Enabled {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize order archive: %w", err)
		}
		defer pool.Close()

		archive = repository.NewOrderRepository(pool, logger)
		if err := archive.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to initialize order archive: %w", err)
		}
	} else {
		logger.Info().Msg("order archive disabled")
	}

	orders := service.NewOrderService(order.NewQueue(), archive, logger)

	pricing := order.Pricing{
		Threshold: cfg.Pricing.DiscountThreshold,
		Rate:      decimal.NewFromFloat(cfg.Pricing.DiscountRate),
		Currency:  cfg.Pricing.Currency,
	}

	sh := shell.New(os.Stdin, os.Stdout, menus, orders, pricing, logger)
	if err := sh.Run(ctx); err != nil {
		return fmt.Errorf("shell error: %w", err)
	}

	logger.Info().Msg("restaurant ordering terminal stopped")
	return nil
}

// newMenuStore builds the file store, wrapped with S3 when enabled.
func newMenuStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) menu.Store {
	fileStore := menu.NewFileStore(logger)

	if !cfg.S3.Enabled {
		logger.Info().Msg("using local file system for the menu (S3 disabled)")
		return fileStore
	}

	s3Store, err := menu.NewS3Store(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 store, falling back to local file system only")
		return fileStore
	}

	return menu.NewFallbackStore(s3Store, fileStore, cfg.S3.Prefix, true, logger)
}
