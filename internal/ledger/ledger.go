package ledger

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-disctracker/internal/adapter"
	"github.com/feral-file/ff-disctracker/internal/domain"
	"github.com/feral-file/ff-disctracker/internal/logger"
	"github.com/feral-file/ff-disctracker/internal/store"
	"github.com/feral-file/ff-disctracker/internal/store/schema"
)

// Ledger maintains the append-only price history of catalog items.
// Writes go through the store it is given so callers can scope them to a transaction.
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// HasChanged compares candidate prices against the item's current prices at storage precision
	HasChanged(item *schema.CatalogItem, candidate domain.Prices) bool
	// RecordSnapshot appends a snapshot of the item's current prices dated today
	RecordSnapshot(ctx context.Context, st store.Store, item *schema.CatalogItem) (*schema.PriceSnapshot, error)
	// RecordIfChanged appends a snapshot of candidate only if it differs from the latest stored snapshot.
	// Returns nil when unchanged and domain.ErrNoPriorSnapshot when the item has no history yet.
	RecordIfChanged(ctx context.Context, st store.Store, item *schema.CatalogItem, candidate domain.Prices) (*schema.PriceSnapshot, error)
}

type ledger struct {
	clock adapter.Clock
}

// NewLedger creates a new price history ledger
func NewLedger(clock adapter.Clock) Ledger {
	return &ledger{clock: clock}
}

func (l *ledger) HasChanged(item *schema.CatalogItem, candidate domain.Prices) bool {
	return !item.Prices().Equal(candidate)
}

func (l *ledger) RecordSnapshot(ctx context.Context, st store.Store, item *schema.CatalogItem) (*schema.PriceSnapshot, error) {
	if item == nil {
		return nil, domain.NewValidationError("cannot record a snapshot of a nil item")
	}
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to record snapshot: %w", err)
	}

	snapshot, err := st.CreatePriceSnapshot(ctx, store.CreatePriceSnapshotInput{
		CatalogItemID: item.ID,
		Prices:        item.Prices(),
		DateChecked:   l.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	logger.DebugCtx(ctx, "Recorded price snapshot",
		zap.String("external_id", item.ExternalID),
		zap.Int64("snapshot_id", snapshot.ID),
	)

	return snapshot, nil
}

func (l *ledger) RecordIfChanged(ctx context.Context, st store.Store, item *schema.CatalogItem, candidate domain.Prices) (*schema.PriceSnapshot, error) {
	if item == nil {
		return nil, domain.NewValidationError("cannot record a snapshot of a nil item")
	}
	if err := candidate.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to record snapshot for %s: %w", item.ExternalID, err)
	}

	latest, err := st.GetLatestPriceSnapshot(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, fmt.Errorf("%s: %w", item.ExternalID, domain.ErrNoPriorSnapshot)
	}

	if latest.Prices().Equal(candidate) {
		return nil, nil
	}

	return st.CreatePriceSnapshot(ctx, store.CreatePriceSnapshotInput{
		CatalogItemID: item.ID,
		Prices:        candidate,
		DateChecked:   l.clock.Now(),
	})
}
