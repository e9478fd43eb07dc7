package rest

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-disctracker/internal/api/shared/constants"
	"github.com/feral-file/ff-disctracker/internal/api/shared/types"
	"github.com/feral-file/ff-disctracker/internal/store"
)

// ListCollectionItemsQueryParams holds query parameters for GET /collection/items
type ListCollectionItemsQueryParams struct {
	// Filters
	Title           string `form:"title"`
	SellPriceLT     string `form:"sell_price_lt"`
	SellPriceGT     string `form:"sell_price_gt"`
	ExchangePriceLT string `form:"exchange_price_lt"`
	ExchangePriceGT string `form:"exchange_price_gt"`
	CashPriceLT     string `form:"cash_price_lt"`
	CashPriceGT     string `form:"cash_price_gt"`

	// Ordering: title, sell_price, exchange_price or cash_price; '-' prefix for descending
	Order types.ItemOrder `form:"order,default=title"`

	// Pagination
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// GetCollectionItemQueryParams holds query parameters for GET /collection/items/:external_id
type GetCollectionItemQueryParams struct {
	HistoryLimit int `form:"history_limit,default=30"`
}

// ParseListCollectionItemsQuery parses query parameters for GET /collection/items
func ParseListCollectionItemsQuery(c *gin.Context) (*ListCollectionItemsQueryParams, error) {
	var params ListCollectionItemsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limit
	if params.Limit > constants.MAX_ITEMS_LIMIT {
		params.Limit = constants.MAX_ITEMS_LIMIT
	}

	return &params, nil
}

// ParseGetCollectionItemQuery parses query parameters for GET /collection/items/:external_id
func ParseGetCollectionItemQuery(c *gin.Context) (*GetCollectionItemQueryParams, error) {
	var params GetCollectionItemQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.HistoryLimit > constants.MAX_HISTORY_LIMIT {
		params.HistoryLimit = constants.MAX_HISTORY_LIMIT
	}

	return &params, nil
}

// Filter validates the parameters and converts them to a store filter
func (p *ListCollectionItemsQueryParams) Filter() (store.UserItemsFilter, error) {
	var filter store.UserItemsFilter

	if p.Limit < 1 {
		return filter, fmt.Errorf("limit must be at least 1")
	}

	orderBy, desc, err := p.Order.Parse()
	if err != nil {
		return filter, err
	}

	if title := strings.TrimSpace(p.Title); title != "" {
		filter.Title = &title
	}

	for _, bound := range []struct {
		name  string
		raw   string
		value **decimal.Decimal
	}{
		{"sell_price_lt", p.SellPriceLT, &filter.SellPrice.LessThan},
		{"sell_price_gt", p.SellPriceGT, &filter.SellPrice.GreaterThan},
		{"exchange_price_lt", p.ExchangePriceLT, &filter.ExchangePrice.LessThan},
		{"exchange_price_gt", p.ExchangePriceGT, &filter.ExchangePrice.GreaterThan},
		{"cash_price_lt", p.CashPriceLT, &filter.CashPrice.LessThan},
		{"cash_price_gt", p.CashPriceGT, &filter.CashPrice.GreaterThan},
	} {
		if bound.raw == "" {
			continue
		}
		d, err := decimal.NewFromString(bound.raw)
		if err != nil {
			return filter, fmt.Errorf("invalid %s: %q is not a number", bound.name, bound.raw)
		}
		*bound.value = &d
	}

	filter.OrderBy = orderBy
	filter.OrderDesc = desc
	filter.Limit = p.Limit
	filter.Offset = p.Offset

	return filter, nil
}
