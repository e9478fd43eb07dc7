package sweeper

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-disctracker/internal/adapter"
	"github.com/feral-file/ff-disctracker/internal/domain"
	"github.com/feral-file/ff-disctracker/internal/ledger"
	"github.com/feral-file/ff-disctracker/internal/logger"
	"github.com/feral-file/ff-disctracker/internal/messaging"
	"github.com/feral-file/ff-disctracker/internal/providers/cex"
	"github.com/feral-file/ff-disctracker/internal/store"
	"github.com/feral-file/ff-disctracker/internal/store/schema"
)

const (
	DEFAULT_PAGE_SIZE         = 100
	DEFAULT_WORKER_POOL_SIZE  = 8
	DEFAULT_WORKER_QUEUE_SIZE = 256
	DEFAULT_FETCH_TIMEOUT     = 60 * time.Second
)

// PriceUpdaterConfig holds configuration for the batch price updater
type PriceUpdaterConfig struct {
	PageSize        int           // Catalog items listed per page
	WorkerPoolSize  int           // Concurrent pricing source calls
	WorkerQueueSize int           // Items queued ahead of the workers
	FetchTimeout    time.Duration // Upper bound for one item's fetch including retries
}

// PriceUpdater checks every catalog item against the pricing source once per cycle
//
//go:generate mockgen -source=price_updater.go -destination=../mocks/price_updater.go -package=mocks -mock_names=PriceUpdater=MockPriceUpdater
type PriceUpdater interface {
	// RunCycle returns the items whose prices changed. Per-item failures are logged and skipped;
	// only a failure to list the catalog fails the cycle.
	RunCycle(ctx context.Context) ([]schema.CatalogItem, error)
}

type priceUpdater struct {
	config    PriceUpdaterConfig
	store     store.Store
	client    cex.Client
	ledger    ledger.Ledger
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewPriceUpdater creates a new batch price updater. publisher may be nil.
func NewPriceUpdater(
	config PriceUpdaterConfig,
	st store.Store,
	client cex.Client,
	ldg ledger.Ledger,
	publisher messaging.Publisher,
	clock adapter.Clock,
) PriceUpdater {
	if config.PageSize <= 0 {
		config.PageSize = DEFAULT_PAGE_SIZE
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = DEFAULT_WORKER_POOL_SIZE
	}
	if config.WorkerQueueSize <= 0 {
		config.WorkerQueueSize = DEFAULT_WORKER_QUEUE_SIZE
	}
	if config.FetchTimeout <= 0 {
		config.FetchTimeout = DEFAULT_FETCH_TIMEOUT
	}

	return &priceUpdater{
		config:    config,
		store:     st,
		client:    client,
		ledger:    ldg,
		publisher: publisher,
		clock:     clock,
	}
}

func (u *priceUpdater) RunCycle(ctx context.Context) ([]schema.CatalogItem, error) {
	startTime := u.clock.Now()
	logger.InfoCtx(ctx, "Starting price update cycle")

	pool := pond.NewPool(
		u.config.WorkerPoolSize,
		pond.WithQueueSize(u.config.WorkerQueueSize),
		pond.WithContext(ctx),
	)

	var (
		mu      sync.Mutex
		changed []schema.CatalogItem
		checked atomic.Int32
		skipped atomic.Int32
	)

	var afterID int64
	for {
		items, err := u.store.ListCatalogItems(ctx, afterID, u.config.PageSize)
		if err != nil {
			pool.StopAndWait()
			return nil, fmt.Errorf("failed to list catalog items: %w", err)
		}
		if len(items) == 0 {
			break
		}

		for _, item := range items {
			pool.Submit(func() {
				checked.Add(1)
				updated := u.updateItem(ctx, item)
				if updated == nil {
					skipped.Add(1)
					return
				}

				mu.Lock()
				changed = append(changed, *updated)
				mu.Unlock()
			})
		}

		afterID = items[len(items)-1].ID
		if len(items) < u.config.PageSize {
			break
		}
	}

	pool.StopAndWait()

	logger.InfoCtx(ctx, "Price update cycle completed",
		zap.Duration("duration", u.clock.Since(startTime)),
		zap.Int32("total_checked", checked.Load()),
		zap.Int("changed", len(changed)),
		zap.Int32("unchanged_or_skipped", skipped.Load()),
	)

	if changed == nil {
		changed = []schema.CatalogItem{}
	}

	return changed, nil
}

// updateItem reconciles one catalog item and returns it when its prices changed
func (u *priceUpdater) updateItem(ctx context.Context, item schema.CatalogItem) *schema.CatalogItem {
	if item.ExternalID == "" {
		logger.WarnCtx(ctx, "Skipping catalog item without external id", zap.Int64("id", item.ID))
		return nil
	}

	data, err := u.fetch(ctx, item.ExternalID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to fetch prices, skipping item",
			zap.String("external_id", item.ExternalID),
			zap.Error(err),
		)
		return nil
	}

	if err := data.ValidatePrices(); err != nil {
		logger.WarnCtx(ctx, "Pricing source returned out of range prices, skipping item",
			zap.String("external_id", item.ExternalID),
			zap.Error(err),
		)
		return nil
	}

	if !u.ledger.HasChanged(&item, data.Prices) {
		logger.DebugCtx(ctx, "Prices unchanged", zap.String("external_id", item.ExternalID))
		return nil
	}

	var (
		previous domain.Prices
		updated  *schema.CatalogItem
	)
	err = u.store.WithTx(ctx, func(tx store.Store) error {
		locked, err := tx.GetCatalogItemByIDForUpdate(ctx, item.ID)
		if err != nil {
			return err
		}
		if locked == nil {
			return fmt.Errorf("%s: %w", item.ExternalID, domain.ErrCatalogItemNotFound)
		}

		// A concurrent add may have committed the same prices since the item was listed
		if !u.ledger.HasChanged(locked, data.Prices) {
			return nil
		}
		previous = locked.Prices()

		updated, err = tx.UpdateCatalogItem(ctx, locked.ID, store.UpdateCatalogItemInput{
			Prices:      data.Prices,
			LastChecked: u.clock.Now(),
			Raw:         data.Raw,
		})
		if err != nil {
			return err
		}

		_, err = u.ledger.RecordSnapshot(ctx, tx, updated)
		return err
	})
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to update prices: %w", err), zap.String("external_id", item.ExternalID))
		return nil
	}
	if updated == nil {
		return nil
	}

	logger.InfoCtx(ctx, "Updated item prices",
		zap.String("external_id", updated.ExternalID),
		zap.String("sell_price", updated.SellPrice.StringFixed(domain.PRICE_DECIMAL_PLACES)),
		zap.String("exchange_price", updated.ExchangePrice.StringFixed(domain.PRICE_DECIMAL_PLACES)),
		zap.String("cash_price", updated.CashPrice.StringFixed(domain.PRICE_DECIMAL_PLACES)),
	)

	u.publishChange(ctx, updated, previous)

	return updated
}

func (u *priceUpdater) fetch(ctx context.Context, externalID string) (*domain.FetchedPriceData, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, u.config.FetchTimeout)
	defer cancel()

	return u.client.Fetch(fetchCtx, externalID)
}

// publishChange emits a price change event. Delivery is best effort.
func (u *priceUpdater) publishChange(ctx context.Context, item *schema.CatalogItem, previous domain.Prices) {
	if u.publisher == nil {
		return
	}

	event := &domain.PriceChangeEvent{
		EventID:    ulid.Make().String(),
		ExternalID: domain.ExternalID(item.ExternalID),
		Title:      item.Title,
		Previous:   previous,
		Current:    item.Prices(),
		CheckedAt:  u.clock.Now().UTC(),
	}

	if err := u.publisher.PublishPriceChange(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish price change event",
			zap.String("external_id", item.ExternalID),
			zap.Error(err),
		)
	}
}
