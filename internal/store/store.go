package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-disctracker/internal/domain"
	"github.com/feral-file/ff-disctracker/internal/store/schema"
)

// ItemOrderField is a column the collection view can be ordered by
type ItemOrderField string

const (
	ItemOrderTitle         ItemOrderField = "title"
	ItemOrderSellPrice     ItemOrderField = "sell_price"
	ItemOrderExchangePrice ItemOrderField = "exchange_price"
	ItemOrderCashPrice     ItemOrderField = "cash_price"
)

// Valid reports whether the field is one of the supported order columns
func (f ItemOrderField) Valid() bool {
	switch f {
	case ItemOrderTitle, ItemOrderSellPrice, ItemOrderExchangePrice, ItemOrderCashPrice:
		return true
	}
	return false
}

// PriceRange bounds one price column; nil ends are open
type PriceRange struct {
	LessThan    *decimal.Decimal
	GreaterThan *decimal.Decimal
}

// UserItemsFilter selects the catalog items owned by one user
type UserItemsFilter struct {
	UserID string
	// Title matches case-insensitively anywhere in the title
	Title         *string
	SellPrice     PriceRange
	ExchangePrice PriceRange
	CashPrice     PriceRange
	OrderBy       ItemOrderField
	OrderDesc     bool
	Limit         int
	Offset        uint64
}

// CreateCatalogItemInput is the data used when a catalog item is first created
type CreateCatalogItemInput struct {
	ExternalID  string
	Title       string
	Prices      domain.Prices
	LastChecked time.Time
	Raw         []byte
}

// UpdateCatalogItemInput overwrites the mutable fields of a catalog item.
// A nil Title or Raw leaves that column unchanged.
type UpdateCatalogItemInput struct {
	Title       *string
	Prices      domain.Prices
	LastChecked time.Time
	Raw         []byte
}

// CreatePriceSnapshotInput is the data of a new snapshot row
type CreatePriceSnapshotInput struct {
	CatalogItemID int64
	Prices        domain.Prices
	DateChecked   time.Time
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// WithTx runs fn inside one transaction. Every write made through the Store passed to fn
	// commits together or not at all. Nested calls use savepoints.
	WithTx(ctx context.Context, fn func(Store) error) error

	// GetCatalogItemByExternalID retrieves a catalog item by external id, nil if absent
	GetCatalogItemByExternalID(ctx context.Context, externalID string) (*schema.CatalogItem, error)
	// GetCatalogItemByID retrieves a catalog item by primary key, nil if absent
	GetCatalogItemByID(ctx context.Context, id int64) (*schema.CatalogItem, error)
	// GetCatalogItemByIDForUpdate is GetCatalogItemByID holding a row lock until the transaction ends
	GetCatalogItemByIDForUpdate(ctx context.Context, id int64) (*schema.CatalogItem, error)
	// ListCatalogItems returns up to limit catalog items with id greater than afterID, ordered by id
	ListCatalogItems(ctx context.Context, afterID int64, limit int) ([]schema.CatalogItem, error)
	// GetOrCreateCatalogItem inserts the item unless its external id exists, and returns the row locked
	// for update. created reports whether this call inserted it. Safe under concurrent callers.
	GetOrCreateCatalogItem(ctx context.Context, input CreateCatalogItemInput) (item *schema.CatalogItem, created bool, err error)
	// UpdateCatalogItem overwrites the mutable fields and returns the refreshed row
	UpdateCatalogItem(ctx context.Context, id int64, input UpdateCatalogItemInput) (*schema.CatalogItem, error)

	// CreatePriceSnapshot appends a snapshot row
	CreatePriceSnapshot(ctx context.Context, input CreatePriceSnapshotInput) (*schema.PriceSnapshot, error)
	// GetLatestPriceSnapshot returns the most recent snapshot (date desc, id desc), nil if none
	GetLatestPriceSnapshot(ctx context.Context, catalogItemID int64) (*schema.PriceSnapshot, error)
	// GetPriceSnapshots returns up to limit snapshots newest first
	GetPriceSnapshots(ctx context.Context, catalogItemID int64, limit int) ([]schema.PriceSnapshot, error)

	// OwnershipLinkExists checks whether the user owns the catalog item
	OwnershipLinkExists(ctx context.Context, userID string, catalogItemID int64) (bool, error)
	// CreateOwnershipLink creates the link, returning nil when it already exists
	CreateOwnershipLink(ctx context.Context, userID string, catalogItemID int64) (*schema.OwnershipLink, error)
	// DeleteOwnershipLink removes the link and returns the number of rows deleted
	DeleteOwnershipLink(ctx context.Context, userID string, catalogItemID int64) (int64, error)
	// GetUserCatalogItems returns the filtered, ordered page of items a user owns and the total match count
	GetUserCatalogItems(ctx context.Context, filter UserItemsFilter) ([]schema.CatalogItem, uint64, error)

	// GetKeyValue retrieves a value by key, empty if absent
	GetKeyValue(ctx context.Context, key string) (string, error)
	// SetKeyValue sets a key-value pair
	SetKeyValue(ctx context.Context, key string, value string) error
}
