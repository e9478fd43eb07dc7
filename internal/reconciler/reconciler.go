package reconciler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-disctracker/internal/adapter"
	"github.com/feral-file/ff-disctracker/internal/domain"
	"github.com/feral-file/ff-disctracker/internal/ledger"
	"github.com/feral-file/ff-disctracker/internal/logger"
	"github.com/feral-file/ff-disctracker/internal/providers/cex"
	"github.com/feral-file/ff-disctracker/internal/registry"
	"github.com/feral-file/ff-disctracker/internal/store"
	"github.com/feral-file/ff-disctracker/internal/store/schema"
)

const (
	// DEFAULT_FETCH_TIMEOUT bounds one pricing source call including its retries
	DEFAULT_FETCH_TIMEOUT = 60 * time.Second
)

// UpsertResult is the outcome of merging fetched data into the catalog
type UpsertResult struct {
	Item    *schema.CatalogItem
	Created bool
}

// AddResult is the outcome of adding an item to a user's collection
type AddResult struct {
	Item *schema.CatalogItem
	// Snapshot is the price snapshot recorded by this call, nil when prices did not change
	Snapshot *schema.PriceSnapshot
	// Created reports whether the catalog item was first seen in this call
	Created bool
	// AlreadyOwned reports that the user already had the item; the catalog refresh still committed
	AlreadyOwned bool
}

// RefreshResult is the outcome of re-checking one owned item against the pricing source
type RefreshResult struct {
	Item *schema.CatalogItem
	// Snapshot is nil when the price history already ends with the fetched prices
	Snapshot *schema.PriceSnapshot
}

// Reconciler merges pricing source data into the catalog, the price history and user collections.
// Every operation runs in one transaction.
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/reconciler.go -package=mocks -mock_names=Reconciler=MockReconciler
type Reconciler interface {
	// Upsert creates the catalog item for the fetched data, or overwrites title and prices of the existing one
	Upsert(ctx context.Context, data *domain.FetchedPriceData) (*UpsertResult, error)
	// AddToCollection upserts the item, links it to the user and records a snapshot when the item is new
	// or its prices changed
	AddToCollection(ctx context.Context, user domain.UserID, data *domain.FetchedPriceData) (*AddResult, error)
	// Add fetches the item from the pricing source and adds it to the user's collection
	Add(ctx context.Context, user domain.UserID, externalID string) (*AddResult, error)
	// Delete removes the item from the user's collection. The catalog item and its history are kept.
	Delete(ctx context.Context, user domain.UserID, externalID string) (bool, error)
	// Refresh re-fetches one item the user owns and records a snapshot if it differs from the latest one
	Refresh(ctx context.Context, user domain.UserID, externalID string) (*RefreshResult, error)
}

type reconciler struct {
	store        store.Store
	client       cex.Client
	ledger       ledger.Ledger
	registry     registry.OwnershipRegistry
	clock        adapter.Clock
	fetchTimeout time.Duration
}

// NewReconciler creates a new catalog reconciler
func NewReconciler(
	st store.Store,
	client cex.Client,
	ldg ledger.Ledger,
	reg registry.OwnershipRegistry,
	clock adapter.Clock,
	fetchTimeout time.Duration,
) Reconciler {
	if fetchTimeout <= 0 {
		fetchTimeout = DEFAULT_FETCH_TIMEOUT
	}
	return &reconciler{
		store:        st,
		client:       client,
		ledger:       ldg,
		registry:     reg,
		clock:        clock,
		fetchTimeout: fetchTimeout,
	}
}

func (r *reconciler) Upsert(ctx context.Context, data *domain.FetchedPriceData) (*UpsertResult, error) {
	var result *UpsertResult
	err := r.store.WithTx(ctx, func(tx store.Store) error {
		item, created, _, err := r.upsert(ctx, tx, data)
		if err != nil {
			return err
		}
		result = &UpsertResult{Item: item, Created: created}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *reconciler) AddToCollection(ctx context.Context, user domain.UserID, data *domain.FetchedPriceData) (*AddResult, error) {
	if !user.Valid() {
		return nil, domain.NewValidationError("user identity is required")
	}

	var result *AddResult
	err := r.store.WithTx(ctx, func(tx store.Store) error {
		item, created, changed, err := r.upsert(ctx, tx, data)
		if err != nil {
			return err
		}

		link, err := r.registry.AddLink(ctx, tx, user, item)
		if err != nil {
			return fmt.Errorf("failed to link item to collection: %w", err)
		}

		result = &AddResult{
			Item:         item,
			Created:      created,
			AlreadyOwned: link == nil,
		}

		if created || changed {
			snapshot, err := r.ledger.RecordSnapshot(ctx, tx, item)
			if err != nil {
				return fmt.Errorf("failed to record price snapshot: %w", err)
			}
			result.Snapshot = snapshot
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Added item to collection",
		zap.String("user_id", string(user)),
		zap.String("external_id", result.Item.ExternalID),
		zap.Bool("created", result.Created),
		zap.Bool("already_owned", result.AlreadyOwned),
		zap.Bool("snapshot_recorded", result.Snapshot != nil),
	)

	return result, nil
}

func (r *reconciler) Add(ctx context.Context, user domain.UserID, externalID string) (*AddResult, error) {
	if !user.Valid() {
		return nil, domain.NewValidationError("user identity is required")
	}

	data, err := r.fetch(ctx, externalID)
	if err != nil {
		return nil, err
	}

	return r.AddToCollection(ctx, user, data)
}

func (r *reconciler) Delete(ctx context.Context, user domain.UserID, externalID string) (bool, error) {
	if !user.Valid() {
		return false, domain.NewValidationError("user identity is required")
	}
	id, err := domain.ParseExternalID(externalID)
	if err != nil {
		return false, err
	}

	var removed bool
	err = r.store.WithTx(ctx, func(tx store.Store) error {
		item, err := tx.GetCatalogItemByExternalID(ctx, id.String())
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("%s: %w", id, domain.ErrCatalogItemNotFound)
		}

		removed, err = r.registry.RemoveLink(ctx, tx, user, item)
		return err
	})
	if err != nil {
		return false, err
	}

	logger.InfoCtx(ctx, "Removed item from collection",
		zap.String("user_id", string(user)),
		zap.String("external_id", id.String()),
		zap.Bool("removed", removed),
	)

	return removed, nil
}

func (r *reconciler) Refresh(ctx context.Context, user domain.UserID, externalID string) (*RefreshResult, error) {
	if !user.Valid() {
		return nil, domain.NewValidationError("user identity is required")
	}
	id, err := domain.ParseExternalID(externalID)
	if err != nil {
		return nil, err
	}

	// Ownership authorizes the refresh; check it before calling the pricing source
	item, err := r.store.GetCatalogItemByExternalID(ctx, id.String())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%s: %w", id, domain.ErrCatalogItemNotFound)
	}
	owns, err := r.registry.Owns(ctx, r.store, user, item)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, fmt.Errorf("%s: %w", id, domain.ErrCatalogItemNotFound)
	}

	data, err := r.fetch(ctx, id.String())
	if err != nil {
		return nil, err
	}

	var result *RefreshResult
	err = r.store.WithTx(ctx, func(tx store.Store) error {
		updated, _, _, err := r.upsert(ctx, tx, data)
		if err != nil {
			return err
		}

		snapshot, err := r.ledger.RecordIfChanged(ctx, tx, updated, data.Prices)
		if errors.Is(err, domain.ErrNoPriorSnapshot) {
			snapshot, err = r.ledger.RecordSnapshot(ctx, tx, updated)
		}
		if err != nil {
			return fmt.Errorf("failed to record price snapshot: %w", err)
		}

		result = &RefreshResult{Item: updated, Snapshot: snapshot}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// upsert is the get-or-create step shared by every operation. It must run inside a transaction:
// the returned item stays locked until the transaction ends. changed compares the fetched prices
// with the stored prices before they were overwritten.
func (r *reconciler) upsert(ctx context.Context, tx store.Store, data *domain.FetchedPriceData) (*schema.CatalogItem, bool, bool, error) {
	if err := data.Validate(); err != nil {
		return nil, false, false, err
	}

	now := r.clock.Now()
	item, created, err := tx.GetOrCreateCatalogItem(ctx, store.CreateCatalogItemInput{
		ExternalID:  data.ExternalID.String(),
		Title:       data.Title,
		Prices:      data.Prices,
		LastChecked: now,
		Raw:         data.Raw,
	})
	if err != nil {
		return nil, false, false, err
	}
	if created {
		logger.InfoCtx(ctx, "Created catalog item", zap.String("external_id", item.ExternalID))
		return item, true, false, nil
	}

	changed := r.ledger.HasChanged(item, data.Prices)

	title := data.Title
	item, err = tx.UpdateCatalogItem(ctx, item.ID, store.UpdateCatalogItemInput{
		Title:       &title,
		Prices:      data.Prices,
		LastChecked: now,
		Raw:         data.Raw,
	})
	if err != nil {
		return nil, false, false, err
	}

	return item, false, changed, nil
}

// fetch calls the pricing source with a bounded timeout
func (r *reconciler) fetch(ctx context.Context, externalID string) (*domain.FetchedPriceData, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	data, err := r.client.Fetch(fetchCtx, externalID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to fetch item from pricing source",
			zap.String("external_id", externalID),
			zap.Error(err),
		)
		return nil, err
	}

	return data, nil
}
