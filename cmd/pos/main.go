package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/pos-cart/internal/catalog"
	"github.com/nikolayk812/pos-cart/internal/config"
	"github.com/nikolayk812/pos-cart/internal/logger"
	"github.com/nikolayk812/pos-cart/internal/port"
	"github.com/nikolayk812/pos-cart/internal/pos"
	"github.com/nikolayk812/pos-cart/internal/repository"
	"github.com/nikolayk812/pos-cart/internal/sink"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log, err := logger.New(logger.Options{Service: "pos", Env: cfg.AppEnv, Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("logger.New: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var (
		source       port.Catalog
		checkoutSink port.CheckoutSink
	)

	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("pgxpool.New: %w", err)
		}
		defer pool.Close()

		products := repository.NewProduct(pool)
		if err := seedProducts(ctx, products); err != nil {
			return fmt.Errorf("seedProducts: %w", err)
		}

		source = products
		checkoutSink = repository.NewOrder(pool)
	} else {
		source, err = catalog.NewMemory(catalog.Menu())
		if err != nil {
			return fmt.Errorf("catalog.NewMemory: %w", err)
		}
		checkoutSink = sink.NewLog(log)
	}

	products, err := source.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("source.ListProducts: %w", err)
	}

	menu, err := catalog.NewMemory(products)
	if err != nil {
		return fmt.Errorf("catalog.NewMemory: %w", err)
	}

	session, err := pos.NewSession(cfg.POS, checkoutSink, pos.WithLogger(log))
	if err != nil {
		return fmt.Errorf("pos.NewSession: %w", err)
	}

	log.Info("till started",
		zap.Int("products", len(products)),
		zap.Stringer("tax_rate", cfg.POS.TaxRate),
		zap.String("clear_policy", string(cfg.POS.ClearPolicy)))

	return newTill(session, menu, os.Stdout).run(ctx, os.Stdin)
}

// seedProducts stores the default menu when the products table is empty.
func seedProducts(ctx context.Context, repo port.ProductRepository) error {
	existing, err := repo.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("repo.ListProducts: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, p := range catalog.Menu() {
		if err := repo.SaveProduct(ctx, p); err != nil {
			return fmt.Errorf("repo.SaveProduct: %w", err)
		}
	}
	return nil
}
