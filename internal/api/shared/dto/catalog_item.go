package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-disctracker/internal/domain"
	"github.com/feral-file/ff-disctracker/internal/store/schema"
)

// CatalogItemResponse represents a catalog item in a user's collection
type CatalogItemResponse struct {
	ExternalID    string    `json:"external_id"`
	Title         string    `json:"title"`
	SellPrice     string    `json:"sell_price"`
	ExchangePrice string    `json:"exchange_price"`
	CashPrice     string    `json:"cash_price"`
	LastChecked   string    `json:"last_checked"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PriceSnapshotResponse represents one recorded price observation
type PriceSnapshotResponse struct {
	SellPrice     string `json:"sell_price"`
	ExchangePrice string `json:"exchange_price"`
	CashPrice     string `json:"cash_price"`
	DateChecked   string `json:"date_checked"`
}

// CatalogItemDetailResponse is a catalog item with its price history, newest first
type CatalogItemDetailResponse struct {
	CatalogItemResponse
	History []PriceSnapshotResponse `json:"history"`
}

// CatalogItemListResponse is a page of collection items
type CatalogItemListResponse struct {
	Items      []CatalogItemResponse `json:"items"`
	Total      uint64                `json:"total"`
	NextOffset *uint64               `json:"next_offset,omitempty"`
}

func formatPrice(d decimal.Decimal) string {
	return d.StringFixed(domain.PRICE_DECIMAL_PLACES)
}

// MapCatalogItemToDTO maps a catalog item row to its response
func MapCatalogItemToDTO(item *schema.CatalogItem) *CatalogItemResponse {
	if item == nil {
		return nil
	}

	return &CatalogItemResponse{
		ExternalID:    item.ExternalID,
		Title:         item.Title,
		SellPrice:     formatPrice(item.SellPrice),
		ExchangePrice: formatPrice(item.ExchangePrice),
		CashPrice:     formatPrice(item.CashPrice),
		LastChecked:   item.LastChecked.Format(domain.DATE_LAYOUT),
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

// MapPriceSnapshotToDTO maps a snapshot row to its response
func MapPriceSnapshotToDTO(snapshot *schema.PriceSnapshot) PriceSnapshotResponse {
	return PriceSnapshotResponse{
		SellPrice:     formatPrice(snapshot.SellPrice),
		ExchangePrice: formatPrice(snapshot.ExchangePrice),
		CashPrice:     formatPrice(snapshot.CashPrice),
		DateChecked:   snapshot.DateChecked.Format(domain.DATE_LAYOUT),
	}
}

// MapCatalogItemsToDTO maps a list of catalog item rows
func MapCatalogItemsToDTO(items []schema.CatalogItem) []CatalogItemResponse {
	result := make([]CatalogItemResponse, len(items))
	for i := range items {
		result[i] = *MapCatalogItemToDTO(&items[i])
	}
	return result
}
