package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"shopsync/internal/config"
	"shopsync/internal/notifier"
	"shopsync/internal/scheduler"
	"shopsync/internal/scraper"
	"shopsync/internal/server"
	"shopsync/internal/service"
	"shopsync/internal/source/shopify"
	"shopsync/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Outbound alert channel
	rabbitMQ, err := notifier.NewRabbitMQ(notifier.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Stores
	productStore := postgres.NewProductStore(db)
	progressStore := postgres.NewProgressStore(db)
	historyStore := postgres.NewPriceHistoryStore(db)
	notificationStore := postgres.NewNotificationStore(db)
	statsStore := postgres.NewStatsStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Remote catalog client
	catalog := shopify.New(shopify.Config{
		ShopDomain:     cfg.Shopify.ShopDomain,
		AccessToken:    cfg.Shopify.AccessToken,
		APIVersion:     cfg.Shopify.APIVersion,
		PageSize:       cfg.Shopify.PageSize,
		Timeout:        cfg.Shopify.Timeout,
		RatePerSec:     cfg.Shopify.RatePerSec,
		MaxAttempts:    cfg.Shopify.Retry.MaxAttempts,
		InitialBackoff: cfg.Shopify.Retry.InitialBackoff,
		MaxBackoff:     cfg.Shopify.Retry.MaxBackoff,
	}, logger)

	supplierScraper := scraper.New(scraper.Config{
		Timeout:   cfg.Scraper.Timeout,
		UserAgent: cfg.Scraper.UserAgent,
	}, logger)

	engine := service.NewSyncEngine(catalog, productStore, progressStore, logger, cfg.Sync)

	watcher := service.NewPriceWatcher(
		productStore,
		historyStore,
		notificationStore,
		statsStore,
		supplierScraper,
		rabbitMQ,
		txManager,
		logger,
		cfg.PriceWatch,
	)

	sched := scheduler.New(logger)
	defer sched.Shutdown()

	syncZone := time.FixedZone("sync", cfg.Schedule.UTCOffsetHours*3600)
	sched.Start("catalog-sync",
		scheduler.DailyAt(*cfg.Schedule.SyncHour, cfg.Schedule.SyncMinute, syncZone),
		engine.Sync,
	)
	sched.Start("price-watch",
		scheduler.Every(cfg.PriceWatch.Interval),
		func(ctx context.Context) error {
			_, err := watcher.Run(ctx)
			return err
		},
	)

	srv := server.New(engine, progressStore, sched, logger)
	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Routes(),
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	logger.Info("starting catalog syncer",
		"shop", cfg.Shopify.ShopDomain,
		"sync_hour", *cfg.Schedule.SyncHour,
		"price_watch_interval", cfg.PriceWatch.Interval,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
