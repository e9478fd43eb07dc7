package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-disctracker/internal/adapter"
	"github.com/feral-file/ff-disctracker/internal/config"
	"github.com/feral-file/ff-disctracker/internal/ledger"
	"github.com/feral-file/ff-disctracker/internal/logger"
	"github.com/feral-file/ff-disctracker/internal/messaging"
	"github.com/feral-file/ff-disctracker/internal/providers/cex"
	"github.com/feral-file/ff-disctracker/internal/providers/jetstream"
	"github.com/feral-file/ff-disctracker/internal/ratelimit"
	"github.com/feral-file/ff-disctracker/internal/store"
	"github.com/feral-file/ff-disctracker/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadPriceSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "price-sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Price Sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	httpClient := adapter.NewHTTPClient(cfg.Cex.HTTPTimeout, adapter.DefaultRetryPolicy)
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	// Connect to Redis for the pricing source rate limit shared by every process
	var redisLimiter adapter.RedisRateLimiter
	if cfg.Redis.Addr != "" {
		redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer func() { _ = redisClient.Close() }()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.WarnCtx(ctx, "Redis unavailable, rate limiting locally until it recovers", zap.Error(err))
		}
		redisLimiter = redisClient.NewRateLimiter()
	} else {
		logger.WarnCtx(ctx, "Redis address not configured, rate limiting per process")
	}
	cexLimiter, err := ratelimit.NewLimiter(ratelimit.Config{
		Provider:                cex.PROVIDER_NAME,
		RequestsPerSecond:       cfg.Cex.RateLimit.RequestsPerSecond,
		Burst:                   cfg.Cex.RateLimit.Burst,
		KeyPrefix:               cfg.Cex.RateLimit.KeyPrefix,
		LocalFallbackMultiplier: cfg.Cex.RateLimit.LocalFallbackMultiplier,
	}, redisLimiter, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
	}
	cexClient := cex.NewRateLimitedClient(cex.NewClient(httpClient, cfg.Cex.BaseURL, jsonAdapter), cexLimiter)

	// Connect to NATS for price change events
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err))
		}
		defer publisher.Close()
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, price change events are disabled")
	}

	// Initialize price updater
	priceUpdater := sweeper.NewPriceUpdater(sweeper.PriceUpdaterConfig{
		WorkerPoolSize:  cfg.PriceSweeper.Worker.WorkerPoolSize,
		WorkerQueueSize: cfg.PriceSweeper.Worker.WorkerQueueSize,
		FetchTimeout:    cfg.Cex.FetchTimeout,
	}, dataStore, cexClient, ledger.NewLedger(clock), publisher, clock)

	// Initialize price sweeper
	priceSweeper := sweeper.NewPriceSweeper(sweeper.PriceSweeperConfig{
		Interval:     cfg.PriceSweeper.Interval,
		CycleTimeout: cfg.PriceSweeper.CycleTimeout,
	}, priceUpdater, store.NewSweepCursor(dataStore), clock)

	logger.InfoCtx(ctx, "Initialized price sweeper",
		zap.Duration("interval", cfg.PriceSweeper.Interval),
		zap.Duration("cycle_timeout", cfg.PriceSweeper.CycleTimeout),
		zap.Int("worker_pool_size", cfg.PriceSweeper.Worker.WorkerPoolSize),
	)

	// Start the sweeper in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := priceSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweeper
	cancel()

	// Give the sweeper time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := priceSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Price sweeper stopped")
}
