package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-disctracker/internal/domain"
)

// CatalogItem represents the catalog_items table - the canonical record of a product tracked against the pricing source.
// Shared across all users.
type CatalogItem struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ExternalID is the identifier assigned by the pricing source (e.g. a CeX box id)
	ExternalID string `gorm:"column:external_id;not null;uniqueIndex;type:text"`
	// Title is the product title as last reported by the pricing source
	Title string `gorm:"column:title;not null;type:text"`
	// SellPrice is the price the source sells the item for
	SellPrice decimal.Decimal `gorm:"column:sell_price;not null;type:numeric(10,2)"`
	// ExchangePrice is the store credit the source offers for the item
	ExchangePrice decimal.Decimal `gorm:"column:exchange_price;not null;type:numeric(10,2)"`
	// CashPrice is the cash the source offers for the item
	CashPrice decimal.Decimal `gorm:"column:cash_price;not null;type:numeric(10,2)"`
	// LastChecked is the calendar date of the last successful reconcile
	LastChecked time.Time `gorm:"column:last_checked;not null;type:date"`
	// Raw is the last box detail payload returned by the pricing source
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	PriceSnapshots []PriceSnapshot `gorm:"foreignKey:CatalogItemID;constraint:OnDelete:CASCADE"`
	OwnershipLinks []OwnershipLink `gorm:"foreignKey:CatalogItemID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the CatalogItem model
func (CatalogItem) TableName() string {
	return "catalog_items"
}

// Prices returns the current price triple of the item
func (c *CatalogItem) Prices() domain.Prices {
	return domain.NewPrices(c.SellPrice, c.ExchangePrice, c.CashPrice)
}

// Validate re-checks the field constraints of the item
func (c *CatalogItem) Validate() error {
	if !domain.ExternalID(c.ExternalID).Valid() {
		return domain.NewValidationError("catalog item %d has an invalid external id %q", c.ID, c.ExternalID)
	}
	if c.Title == "" {
		return domain.NewValidationError("catalog item %s has no title", c.ExternalID)
	}
	return c.Prices().Validate()
}
