package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"github.com/feral-file/ff-trigger-ledger/internal/adapter"
	"github.com/feral-file/ff-trigger-ledger/internal/config"
	"github.com/feral-file/ff-trigger-ledger/internal/domain"
	"github.com/feral-file/ff-trigger-ledger/internal/feed"
	"github.com/feral-file/ff-trigger-ledger/internal/logger"
	"github.com/feral-file/ff-trigger-ledger/internal/metrics"
	"github.com/feral-file/ff-trigger-ledger/internal/store"
	"github.com/feral-file/ff-trigger-ledger/internal/trigger"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadTriggerParserConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		Environment:     cfg.Environment,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "trigger-parser",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Trigger Parser")

	// Connect to database, retrying while it comes up
	var db *gorm.DB
	err = retry(ctx, "database", func() error {
		db, err = store.Open(cfg.Database.DSN(), cfg.Debug)
		return err
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	processor := trigger.NewProcessor(
		trigger.Config{
			BaseAsset:             cfg.Ledger.BaseAsset,
			Unit:                  cfg.Ledger.Unit,
			ShortTxTypeEncoding:   cfg.Ledger.ShortTxTypeEncoding,
			PersistOverflowStatus: cfg.Ledger.PersistOverflowStatus,
		},
		dataStore,
		trigger.DefaultRegistry(),
		adapter.NewClock(),
	)
	if err := processor.Initialise(ctx); err != nil {
		logger.FatalCtx(ctx, "Failed to initialise trigger tables", zap.Error(err))
	}

	// Expose metrics
	metrics.Register()
	metricsServer := &http.Server{
		Addr:              cfg.Metrics.Address,
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorCtx(ctx, err, zap.String("component", "metrics"))
		}
	}()
	logger.InfoCtx(ctx, "Serving metrics", zap.String("address", cfg.Metrics.Address))

	// Connect to NATS, retrying while it comes up
	var transactionFeed feed.Feed
	err = retry(ctx, "nats", func() error {
		transactionFeed, err = feed.NewFeed(
			feed.Config{
				URL:                 cfg.NATS.URL,
				StreamName:          cfg.NATS.StreamName,
				ConsumerName:        cfg.NATS.ConsumerName,
				Subject:             cfg.NATS.Subject,
				MaxReconnects:       cfg.NATS.MaxReconnects,
				ReconnectWait:       cfg.NATS.ReconnectWait,
				ConnectionName:      cfg.NATS.ConnectionName,
				AckWaitTimeout:      cfg.NATS.AckWait,
				MaxDeliver:          cfg.NATS.MaxDeliver,
				ShortTxTypeEncoding: cfg.Ledger.ShortTxTypeEncoding,
			},
			adapter.NewNatsJetStream(),
			dataStore,
			processor,
			adapter.NewJSON(),
		)
		return err
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create transaction feed", zap.Error(err))
	}
	defer transactionFeed.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := transactionFeed.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		if errors.Is(err, domain.ErrRegistryConflict) {
			logger.FatalCtx(ctx, "Receiver registry is misconfigured", zap.Error(err))
		}
		logger.ErrorCtx(ctx, err, zap.String("component", "feed"))
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("component", "metrics"))
	}

	logger.Info("Trigger Parser stopped")
}

// retry runs op with exponential backoff until it succeeds, ctx is done or the retry window ends
func retry(ctx context.Context, name string, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = 2 * time.Minute

	return backoff.RetryNotify(op, backoff.WithContext(b, ctx), func(err error, wait time.Duration) {
		logger.WarnCtx(ctx, "Connection failed, retrying",
			zap.String("target", name),
			zap.Error(err),
			zap.Duration("wait", wait))
	})
}
