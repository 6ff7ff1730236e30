package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	catalogapp "github.com/dwikikusuma/shoping-mobile/internal/catalog/app"
	"github.com/dwikikusuma/shoping-mobile/internal/catalog/infra/static"
	"github.com/dwikikusuma/shoping-mobile/internal/httpapi"
	searchapp "github.com/dwikikusuma/shoping-mobile/internal/search/app"
	"github.com/dwikikusuma/shoping-mobile/internal/session"
	"github.com/dwikikusuma/shoping-mobile/pkg/config"
	"github.com/dwikikusuma/shoping-mobile/pkg/logger"
	"github.com/dwikikusuma/shoping-mobile/pkg/shutdown"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("storefront stopped", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	repo, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	products, _ := repo.List(ctx)
	log.Info("catalog loaded", slog.Int("products", len(products)), slog.String("file", cfg.CatalogFile))

	catalogSvc := catalogapp.NewService(repo)
	searchSvc := searchapp.NewService(repo)

	sessions := session.NewRegistry(log, session.RegistryConfig{
		IdleTTL:       cfg.SessionIdleTTL,
		SweepInterval: cfg.SessionSweepInterval,
		Session: session.Options{
			RecentLimit:        cfg.RecentSearchLimit,
			ClearCartOnPayment: cfg.ClearCartOnPayment,
		},
	})

	handler := httpapi.NewHandler(catalogSvc, searchSvc, sessions, log)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler.Routes(cfg.RequestTimeout),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return shutdown.ServeHTTP(gctx, server, cfg.ShutdownTimeout, log)
	})
	g.Go(func() error {
		return sessions.Run(gctx)
	})

	return g.Wait()
}

func loadCatalog(path string) (*static.ProductRepo, error) {
	if path == "" {
		return static.LoadEmbedded()
	}
	return static.LoadFile(path)
}
