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
	"github.com/feral-file/ff-disctracker/internal/domain"
	"github.com/feral-file/ff-disctracker/internal/ledger"
	"github.com/feral-file/ff-disctracker/internal/logger"
	"github.com/feral-file/ff-disctracker/internal/providers/cex"
	"github.com/feral-file/ff-disctracker/internal/ratelimit"
	"github.com/feral-file/ff-disctracker/internal/reconciler"
	"github.com/feral-file/ff-disctracker/internal/registry"
	"github.com/feral-file/ff-disctracker/internal/seeder"
	"github.com/feral-file/ff-disctracker/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	csvFile    = flag.String("file", "", "Path to the CSV file of external ids (first column)")
	userID     = flag.String("user", "", "User whose collection receives the items")
)

func main() {
	flag.Parse()

	if *csvFile == "" || *userID == "" {
		fmt.Fprintln(os.Stderr, "usage: seeder -file <ids.csv> -user <user id>")
		os.Exit(2)
	}

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSeederConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "seeder",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	dataStore := store.NewPGStore(db)
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.Cex.HTTPTimeout, adapter.DefaultRetryPolicy)

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

	catalogReconciler := reconciler.NewReconciler(
		dataStore,
		cexClient,
		ledger.NewLedger(clock),
		registry.NewOwnershipRegistry(),
		clock,
		cfg.Cex.FetchTimeout,
	)

	report, err := seeder.NewSeeder(catalogReconciler, adapter.NewFileSystem()).
		SeedFile(ctx, domain.UserID(*userID), *csvFile)
	if err != nil {
		logger.FatalCtx(ctx, "Seeding failed", zap.Error(err), zap.String("file", *csvFile))
	}

	for _, failure := range report.Failures {
		fmt.Fprintf(os.Stderr, "line %d: %s: %v\n", failure.Line, failure.ExternalID, failure.Err)
	}
	fmt.Printf("processed=%d added=%d already_owned=%d snapshots=%d failed=%d\n",
		report.Processed, report.Added, report.AlreadyOwned, report.Snapshots, len(report.Failures))
}
