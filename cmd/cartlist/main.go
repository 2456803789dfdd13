package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/tangelo-apps/cartlist/internal/app"
	"github.com/tangelo-apps/cartlist/internal/cart"
	"github.com/tangelo-apps/cartlist/internal/classify"
	"github.com/tangelo-apps/cartlist/internal/config"
	"github.com/tangelo-apps/cartlist/internal/metrics"
	"github.com/tangelo-apps/cartlist/internal/service"
	"github.com/tangelo-apps/cartlist/internal/store"
	"github.com/tangelo-apps/cartlist/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	addr := flag.String("addr", cfg.Server.Addr, "listen address")
	dbPath := flag.String("db", cfg.Storage.Path, "sqlite db path")
	flag.Parse()

	logConfig := zap.NewProductionConfig()
	logger, err := logConfig.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	blobs, err := store.Open(*dbPath)
	if err != nil {
		logger.Fatal("opening store", zap.Error(err))
	}
	defer blobs.Close()
	if err := blobs.Migrate(ctx); err != nil {
		logger.Fatal("migrating store", zap.Error(err))
	}

	tmpl, err := web.LoadTemplates()
	if err != nil {
		logger.Fatal("loading templates", zap.Error(err))
	}

	met := metrics.New(blobs)
	met.Register(prometheus.DefaultRegisterer)

	svc := &service.Carts{
		Blobs:      blobs,
		Fetcher:    cart.NewClient(cfg.Source.APIBase, cfg.Source.Strict, nil),
		Classifier: classify.NewDefault(),
		StateTTL:   cfg.Storage.StateTTL,
		CacheTTL:   cfg.Storage.CacheTTL,
		Met:        met,
		Log:        logger,
	}

	logger.Info("cartlist listening", zap.String("addr", *addr))
	if err := app.Run(ctx, svc, tmpl, met, logger, app.Config{Addr: *addr}); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
