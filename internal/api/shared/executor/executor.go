package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/feral-file/ff-disctracker/internal/adapter"
	"github.com/feral-file/ff-disctracker/internal/api/shared/constants"
	"github.com/feral-file/ff-disctracker/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-disctracker/internal/api/shared/errors"
	"github.com/feral-file/ff-disctracker/internal/domain"
	"github.com/feral-file/ff-disctracker/internal/reconciler"
	"github.com/feral-file/ff-disctracker/internal/registry"
	"github.com/feral-file/ff-disctracker/internal/store"
	"github.com/feral-file/ff-disctracker/internal/sweeper"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// AddCollectionItem fetches an item from the pricing source and adds it to the user's collection
	AddCollectionItem(ctx context.Context, user domain.UserID, externalID string) (*dto.AddCollectionItemResponse, error)

	// RemoveCollectionItem removes an item from the user's collection
	RemoveCollectionItem(ctx context.Context, user domain.UserID, externalID string) (*dto.RemoveCollectionItemResponse, error)

	// ListCollectionItems lists the items the user owns; filter.UserID is set from user
	ListCollectionItems(ctx context.Context, user domain.UserID, filter store.UserItemsFilter) (*dto.CatalogItemListResponse, error)

	// GetCollectionItem returns one owned item with its price history, nil if the user does not own it
	GetCollectionItem(ctx context.Context, user domain.UserID, externalID string, historyLimit int) (*dto.CatalogItemDetailResponse, error)

	// RefreshCollectionItem re-checks one owned item against the pricing source
	RefreshCollectionItem(ctx context.Context, user domain.UserID, externalID string) (*dto.RefreshCollectionItemResponse, error)

	// TriggerPriceRefresh starts one batch price cycle over the whole catalog in the background.
	// While a cycle is running it returns that run instead of starting another.
	TriggerPriceRefresh(ctx context.Context) (*dto.PriceRefreshRunResponse, error)

	// GetPriceRefresh returns a run started by TriggerPriceRefresh, nil if it is unknown
	GetPriceRefresh(ctx context.Context, runID string) (*dto.PriceRefreshRunResponse, error)
}

type executor struct {
	store          store.Store
	reconciler     reconciler.Reconciler
	registry       registry.OwnershipRegistry
	updater        sweeper.PriceUpdater
	clock          adapter.Clock
	refreshTimeout time.Duration
	refreshRuns    *priceRefreshRuns
}

// NewExecutor creates the API executor. refreshTimeout bounds one on-demand batch cycle.
func NewExecutor(
	st store.Store,
	rec reconciler.Reconciler,
	reg registry.OwnershipRegistry,
	updater sweeper.PriceUpdater,
	clock adapter.Clock,
	refreshTimeout time.Duration,
) Executor {
	if refreshTimeout <= 0 {
		refreshTimeout = sweeper.DEFAULT_CYCLE_TIMEOUT
	}
	return &executor{
		store:          st,
		reconciler:     rec,
		registry:       reg,
		updater:        updater,
		clock:          clock,
		refreshTimeout: refreshTimeout,
		refreshRuns:    newPriceRefreshRuns(),
	}
}

func (e *executor) AddCollectionItem(ctx context.Context, user domain.UserID, externalID string) (*dto.AddCollectionItemResponse, error) {
	result, err := e.reconciler.Add(ctx, user, externalID)
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to add item")
	}

	return &dto.AddCollectionItemResponse{
		Item:             *dto.MapCatalogItemToDTO(result.Item),
		Created:          result.Created,
		AlreadyOwned:     result.AlreadyOwned,
		SnapshotRecorded: result.Snapshot != nil,
	}, nil
}

func (e *executor) RemoveCollectionItem(ctx context.Context, user domain.UserID, externalID string) (*dto.RemoveCollectionItemResponse, error) {
	removed, err := e.reconciler.Delete(ctx, user, externalID)
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to remove item")
	}

	return &dto.RemoveCollectionItemResponse{Removed: removed}, nil
}

func (e *executor) ListCollectionItems(ctx context.Context, user domain.UserID, filter store.UserItemsFilter) (*dto.CatalogItemListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = constants.DEFAULT_ITEMS_LIMIT
	}
	if filter.Limit > constants.MAX_ITEMS_LIMIT {
		filter.Limit = constants.MAX_ITEMS_LIMIT
	}
	if filter.OrderBy == "" {
		filter.OrderBy = constants.DEFAULT_ITEMS_ORDER
	}
	filter.UserID = string(user)

	items, total, err := e.store.GetUserCatalogItems(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list collection items: %v", err))
	}

	var nextOffset *uint64
	if filter.Offset+uint64(len(items)) < total { //nolint:gosec,G115
		next := filter.Offset + uint64(len(items)) //nolint:gosec,G115
		nextOffset = &next
	}

	return &dto.CatalogItemListResponse{
		Items:      dto.MapCatalogItemsToDTO(items),
		Total:      total,
		NextOffset: nextOffset,
	}, nil
}

func (e *executor) GetCollectionItem(ctx context.Context, user domain.UserID, externalID string, historyLimit int) (*dto.CatalogItemDetailResponse, error) {
	item, err := e.store.GetCatalogItemByExternalID(ctx, externalID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get item: %v", err))
	}
	if item == nil {
		return nil, nil
	}

	// Ownership authorizes visibility
	owns, err := e.registry.Owns(ctx, e.store, user, item)
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to get item")
	}
	if !owns {
		return nil, nil
	}

	if historyLimit <= 0 {
		historyLimit = constants.DEFAULT_HISTORY_LIMIT
	}
	if historyLimit > constants.MAX_HISTORY_LIMIT {
		historyLimit = constants.MAX_HISTORY_LIMIT
	}

	snapshots, err := e.store.GetPriceSnapshots(ctx, item.ID, historyLimit)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get price history: %v", err))
	}

	history := make([]dto.PriceSnapshotResponse, len(snapshots))
	for i := range snapshots {
		history[i] = dto.MapPriceSnapshotToDTO(&snapshots[i])
	}

	return &dto.CatalogItemDetailResponse{
		CatalogItemResponse: *dto.MapCatalogItemToDTO(item),
		History:             history,
	}, nil
}

func (e *executor) RefreshCollectionItem(ctx context.Context, user domain.UserID, externalID string) (*dto.RefreshCollectionItemResponse, error) {
	result, err := e.reconciler.Refresh(ctx, user, externalID)
	if err != nil {
		return nil, apierrors.FromDomainError(err, "Failed to refresh item")
	}

	return &dto.RefreshCollectionItemResponse{
		Item:             *dto.MapCatalogItemToDTO(result.Item),
		SnapshotRecorded: result.Snapshot != nil,
	}, nil
}
