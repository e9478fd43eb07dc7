package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-disctracker/internal/adapter"
	"github.com/feral-file/ff-disctracker/internal/logger"
	"github.com/feral-file/ff-disctracker/internal/store"
)

const (
	PRICE_SWEEPER_NAME = "price-sweeper"

	DEFAULT_SWEEP_INTERVAL = 12 * time.Hour
	DEFAULT_CYCLE_TIMEOUT  = time.Hour
)

// PriceSweeperConfig holds configuration for the periodic price sweeper
type PriceSweeperConfig struct {
	Interval     time.Duration // Time between the start of two cycles
	CycleTimeout time.Duration // Budget for one cycle
}

// priceSweeper runs the batch price updater on an interval
type priceSweeper struct {
	config    PriceSweeperConfig
	updater   PriceUpdater
	cursor    store.SweepCursor
	clock     adapter.Clock
	running   atomic.Bool
	started   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewPriceSweeper creates a new price sweeper
func NewPriceSweeper(config PriceSweeperConfig, updater PriceUpdater, cursor store.SweepCursor, clock adapter.Clock) Sweeper {
	if config.Interval <= 0 {
		config.Interval = DEFAULT_SWEEP_INTERVAL
	}
	if config.CycleTimeout <= 0 {
		config.CycleTimeout = DEFAULT_CYCLE_TIMEOUT
	}

	return &priceSweeper{
		config:    config,
		updater:   updater,
		cursor:    cursor,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *priceSweeper) Name() string {
	return PRICE_SWEEPER_NAME
}

// Start runs cycles until the context is canceled or Stop is called.
// A sweeper runs at most once; create a new one to start again.
func (s *priceSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	if !s.started.CompareAndSwap(false, true) {
		s.running.Store(false)
		return fmt.Errorf("sweeper already stopped, it cannot be restarted")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting price sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Duration("cycle_timeout", s.config.CycleTimeout),
	)

	wait := s.initialWait(ctx)
	for {
		if wait > 0 {
			logger.InfoCtx(ctx, "Waiting for next price update cycle", zap.Duration("wait", wait))
			if !s.sleep(ctx, wait) {
				logger.InfoCtx(ctx, "Price sweeper stopping")
				return nil
			}
		}

		if err := s.runCycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Price sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Price sweeper stop requested")
			return nil
		default:
		}

		wait = s.config.Interval
	}
}

// Stop signals the loop and waits for the cycle in progress
func (s *priceSweeper) Stop(ctx context.Context) error {
	if !s.running.Load() {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping price sweeper")

	select {
	case <-s.stopChan:
	default:
		close(s.stopChan)
	}

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Price sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Price sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// initialWait resumes the schedule of a previous process from the sweep cursor
func (s *priceSweeper) initialWait(ctx context.Context) time.Duration {
	last, ok, err := s.cursor.LastCompletedAt(ctx, s.Name())
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read sweep cursor, sweeping now", zap.Error(err))
		return 0
	}
	if !ok {
		return 0
	}

	elapsed := s.clock.Since(last)
	if elapsed >= s.config.Interval {
		return 0
	}

	return s.config.Interval - elapsed
}

func (s *priceSweeper) runCycle(ctx context.Context) error {
	cycleCtx, cancel := context.WithTimeout(ctx, s.config.CycleTimeout)
	defer cancel()

	changed, err := s.updater.RunCycle(cycleCtx)
	if err != nil {
		return fmt.Errorf("price update cycle failed: %w", err)
	}

	logger.InfoCtx(ctx, "Price update cycle finished", zap.Int("changed", len(changed)))

	if err := s.cursor.SetCompletedAt(ctx, s.Name(), s.clock.Now()); err != nil {
		logger.WarnCtx(ctx, "Failed to store sweep cursor", zap.Error(err))
	}

	return nil
}

// sleep returns false if interrupted by the context or a stop request
func (s *priceSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
