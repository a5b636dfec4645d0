package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/onlinebazaar/cart/internal/cli"
	"github.com/onlinebazaar/cart/internal/config"
	"github.com/onlinebazaar/cart/internal/metrics"
	"github.com/onlinebazaar/cart/internal/repository/csvlog"
	"github.com/onlinebazaar/cart/internal/repository/jsonfile"
	"github.com/onlinebazaar/cart/internal/service"
)

// App wires together all dependencies and runs the cart shell.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	svc    *service.CartService
	menu   *cli.Menu
}

// NewApp creates a new application instance, loading persisted state and
// seeding the sample catalog on first run when configured to.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	catalogRepo := jsonfile.NewCatalogRepository(cfg.CatalogFile, logger)
	cartRepo := jsonfile.NewCartRepository(cfg.CartStateFile, logger)
	txlog := csvlog.NewTransactionLog(cfg.TransactionLogFile)

	svc := service.NewCartService(catalogRepo, cartRepo, txlog, metrics.New(), logger)
	if err := svc.Load(ctx); err != nil {
		return nil, fmt.Errorf("load persisted state: %w", err)
	}
	if cfg.SeedSampleCatalog {
		if err := svc.SeedSampleCatalog(ctx); err != nil {
			return nil, fmt.Errorf("seed sample catalog: %w", err)
		}
	}

	return &App{
		cfg:    cfg,
		logger: logger,
		svc:    svc,
		menu:   cli.New(svc, os.Stdin, os.Stdout),
	}, nil
}

// Run drives the interactive shell until exit or context cancellation.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("cart shell started",
		slog.String("catalog_file", a.cfg.CatalogFile),
		slog.String("cart_state_file", a.cfg.CartStateFile),
		slog.String("transaction_log_file", a.cfg.TransactionLogFile),
	)
	return a.menu.Run(ctx)
}
