package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-disctracker/internal/domain"
)

// PriceSnapshot represents the price_snapshots table - an immutable record of a catalog item's prices on a date.
// Rows are only ever inserted; "latest" is date_checked DESC then id DESC.
type PriceSnapshot struct {
	// ID is the internal database primary key, also the insertion order tie-breaker
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CatalogItemID references the catalog item
	CatalogItemID int64 `gorm:"column:catalog_item_id;not null;index:idx_price_snapshots_item_date,priority:1"`
	// SellPrice at the time of observation
	SellPrice decimal.Decimal `gorm:"column:sell_price;not null;type:numeric(10,2)"`
	// ExchangePrice at the time of observation
	ExchangePrice decimal.Decimal `gorm:"column:exchange_price;not null;type:numeric(10,2)"`
	// CashPrice at the time of observation
	CashPrice decimal.Decimal `gorm:"column:cash_price;not null;type:numeric(10,2)"`
	// DateChecked is the calendar date of the observation
	DateChecked time.Time `gorm:"column:date_checked;not null;type:date;index:idx_price_snapshots_item_date,priority:2"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PriceSnapshot model
func (PriceSnapshot) TableName() string {
	return "price_snapshots"
}

// Prices returns the recorded price triple
func (p *PriceSnapshot) Prices() domain.Prices {
	return domain.NewPrices(p.SellPrice, p.ExchangePrice, p.CashPrice)
}
