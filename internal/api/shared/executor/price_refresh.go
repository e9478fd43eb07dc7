package executor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-disctracker/internal/api/shared/dto"
	"github.com/feral-file/ff-disctracker/internal/logger"
)

const (
	// MAX_TRACKED_PRICE_REFRESH_RUNS bounds how many finished runs stay queryable
	MAX_TRACKED_PRICE_REFRESH_RUNS = 20

	PRICE_REFRESH_STATUS_RUNNING   = "running"
	PRICE_REFRESH_STATUS_SUCCEEDED = "succeeded"
	PRICE_REFRESH_STATUS_FAILED    = "failed"
)

// priceRefreshRuns keeps the on-demand batch runs of this process, oldest first
type priceRefreshRuns struct {
	mu      sync.Mutex
	runs    map[string]*dto.PriceRefreshRunResponse
	order   []string
	current string
}

func newPriceRefreshRuns() *priceRefreshRuns {
	return &priceRefreshRuns{runs: make(map[string]*dto.PriceRefreshRunResponse)}
}

// begin registers a new run unless one is still running. started is false when the running one is returned.
func (r *priceRefreshRuns) begin(now time.Time) (run dto.PriceRefreshRunResponse, started bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != "" {
		return *r.runs[r.current], false
	}

	entry := &dto.PriceRefreshRunResponse{
		RunID:     ulid.Make().String(),
		Status:    PRICE_REFRESH_STATUS_RUNNING,
		StartedAt: now,
		Changed:   []dto.CatalogItemResponse{},
	}
	r.runs[entry.RunID] = entry
	r.order = append(r.order, entry.RunID)
	r.current = entry.RunID

	for len(r.order) > MAX_TRACKED_PRICE_REFRESH_RUNS {
		delete(r.runs, r.order[0])
		r.order = r.order[1:]
	}

	return *entry, true
}

func (r *priceRefreshRuns) finish(runID string, now time.Time, changed []dto.CatalogItemResponse, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == runID {
		r.current = ""
	}
	entry, ok := r.runs[runID]
	if !ok {
		return
	}

	entry.FinishedAt = &now
	if err != nil {
		entry.Status = PRICE_REFRESH_STATUS_FAILED
		entry.Error = err.Error()
		return
	}
	entry.Status = PRICE_REFRESH_STATUS_SUCCEEDED
	entry.ChangedCount = len(changed)
	entry.Changed = changed
}

func (r *priceRefreshRuns) get(runID string) (dto.PriceRefreshRunResponse, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.runs[runID]
	if !ok {
		return dto.PriceRefreshRunResponse{}, false
	}
	return *entry, true
}

func (e *executor) TriggerPriceRefresh(ctx context.Context) (*dto.PriceRefreshRunResponse, error) {
	run, started := e.refreshRuns.begin(e.clock.Now())
	if !started {
		logger.InfoCtx(ctx, "Price refresh already running", zap.String("run_id", run.RunID))
		return &run, nil
	}

	// The cycle outlives the request; it keeps the request's values but not its cancellation
	cycleCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.refreshTimeout)
	go func() {
		defer cancel()
		e.runPriceRefresh(cycleCtx, run.RunID)
	}()

	logger.InfoCtx(ctx, "Started price refresh", zap.String("run_id", run.RunID), zap.Duration("timeout", e.refreshTimeout))

	return &run, nil
}

func (e *executor) runPriceRefresh(ctx context.Context, runID string) {
	changed, err := e.updater.RunCycle(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("price refresh %s failed: %w", runID, err))
		e.refreshRuns.finish(runID, e.clock.Now(), nil, err)
		return
	}

	logger.InfoCtx(ctx, "Price refresh completed", zap.String("run_id", runID), zap.Int("changed", len(changed)))
	e.refreshRuns.finish(runID, e.clock.Now(), dto.MapCatalogItemsToDTO(changed), nil)
}

func (e *executor) GetPriceRefresh(ctx context.Context, runID string) (*dto.PriceRefreshRunResponse, error) {
	run, ok := e.refreshRuns.get(runID)
	if !ok {
		return nil, nil
	}
	return &run, nil
}
