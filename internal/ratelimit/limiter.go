package ratelimit

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-disctracker/internal/adapter"
	"github.com/feral-file/ff-disctracker/internal/logger"
)

const (
	DEFAULT_KEY_PREFIX                = "ff:disctracker:limiter:"
	DEFAULT_LOCAL_FALLBACK_MULTIPLIER = 0.5
	// REDIS_RECHECK_INTERVAL is how long the limiter stays local after a Redis failure
	REDIS_RECHECK_INTERVAL = 30 * time.Second
)

// Config holds the rate limit of one upstream provider
type Config struct {
	// Provider names the limit; the Redis key is KeyPrefix + Provider
	Provider          string
	RequestsPerSecond int
	Burst             int
	KeyPrefix         string
	// LocalFallbackMultiplier scales the rate used while Redis is unavailable,
	// since every process then limits on its own
	LocalFallbackMultiplier float64
}

// Limiter blocks until a request to the provider may proceed
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockLimiter
type Limiter interface {
	// Wait returns nil once a token is acquired, or the context error
	Wait(ctx context.Context) error
}

type limiter struct {
	config      Config
	redis       adapter.RedisRateLimiter
	clock       adapter.Clock
	local       *rate.Limiter
	preFilter   *rate.Limiter
	mu          sync.Mutex
	redisDownAt time.Time
	redisDown   bool
}

// NewLimiter creates a limiter shared across processes through Redis. With a nil redis limiter,
// or while Redis fails, it limits locally at a reduced rate.
func NewLimiter(cfg Config, redis adapter.RedisRateLimiter, clock adapter.Clock) (Limiter, error) {
	if cfg.Provider == "" {
		return nil, fmt.Errorf("provider is required")
	}
	if cfg.RequestsPerSecond <= 0 {
		return nil, fmt.Errorf("provider %s: requests_per_second must be positive", cfg.Provider)
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerSecond
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DEFAULT_KEY_PREFIX
	}
	if cfg.LocalFallbackMultiplier <= 0 {
		cfg.LocalFallbackMultiplier = DEFAULT_LOCAL_FALLBACK_MULTIPLIER
	}

	localRate := rate.Limit(cfg.RequestsPerSecond)
	if redis != nil {
		// Minimum rate of 1.0
		localRate = rate.Limit(max(float64(cfg.RequestsPerSecond)*cfg.LocalFallbackMultiplier, 1.0))
	}

	return &limiter{
		config:    cfg,
		redis:     redis,
		clock:     clock,
		local:     rate.NewLimiter(localRate, cfg.Burst),
		preFilter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
	}, nil
}

func (l *limiter) Wait(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !l.useRedis() {
			return l.local.Wait(ctx)
		}

		allowed, retryAfter, err := l.tryDistributed(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.markRedisDown(err)
			continue
		}
		if allowed {
			return nil
		}

		// Spread retries over 50-150% of retryAfter
		jitter := time.Duration(float64(retryAfter) * (0.5 + rand.Float64())) //nolint:gosec,G404
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.clock.After(jitter):
		}
	}
}

// tryDistributed returns whether a token was acquired and how long to wait otherwise
func (l *limiter) tryDistributed(ctx context.Context) (bool, time.Duration, error) {
	// Pre-filter requests to reduce Redis pressure
	if err := l.preFilter.Wait(ctx); err != nil {
		return false, 0, err
	}

	res, err := l.redis.Allow(ctx, l.config.KeyPrefix+l.config.Provider, redis_rate.PerSecond(l.config.RequestsPerSecond))
	if err != nil {
		return false, 0, err
	}

	if res.Allowed == 0 {
		logger.DebugCtx(ctx, "Rate limit token unavailable, waiting",
			zap.String("provider", l.config.Provider),
			zap.Duration("retry_after", res.RetryAfter),
		)
		return false, res.RetryAfter, nil
	}

	return true, 0, nil
}

func (l *limiter) useRedis() bool {
	if l.redis == nil {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.redisDown && l.clock.Since(l.redisDownAt) >= REDIS_RECHECK_INTERVAL {
		l.redisDown = false
		logger.Info("Retrying Redis rate limiter", zap.String("provider", l.config.Provider))
	}
	return !l.redisDown
}

func (l *limiter) markRedisDown(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.redisDown {
		logger.Warn("Redis rate limiter error, falling back to local",
			zap.String("provider", l.config.Provider),
			zap.Error(err),
		)
	}
	l.redisDown = true
	l.redisDownAt = l.clock.Now()
}
