package domain

import "github.com/shopspring/decimal"

const (
	// PRICE_DECIMAL_PLACES is the storage precision of every monetary column
	PRICE_DECIMAL_PLACES = 2

	// DATE_LAYOUT is the wire and log format for calendar dates
	DATE_LAYOUT = "2006-01-02"
)

var (
	// MIN_PRICE is the inclusive lower bound for any stored price
	MIN_PRICE = decimal.Zero
	// MAX_PRICE is the inclusive upper bound for any stored price
	MAX_PRICE = decimal.NewFromInt(3000)
)
