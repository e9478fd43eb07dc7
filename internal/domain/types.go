package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var externalIDPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ExternalID is the immutable identifier the pricing source assigns to one catalog item
type ExternalID string

// Valid reports whether the id is non-empty and strictly alphanumeric
func (id ExternalID) Valid() bool {
	return externalIDPattern.MatchString(string(id))
}

func (id ExternalID) String() string {
	return string(id)
}

// ParseExternalID validates a raw identifier
func ParseExternalID(raw string) (ExternalID, error) {
	id := ExternalID(raw)
	if !id.Valid() {
		return "", NewValidationError("external id %q must be non-empty and alphanumeric", raw)
	}
	return id, nil
}

// Prices holds the three resale prices tracked for an item
type Prices struct {
	Sell     decimal.Decimal `json:"sell_price"`
	Exchange decimal.Decimal `json:"exchange_price"`
	Cash     decimal.Decimal `json:"cash_price"`
}

// NewPrices builds a price triple rounded to storage precision. No range check is applied here.
func NewPrices(sell, exchange, cash decimal.Decimal) Prices {
	return Prices{
		Sell:     sell.Round(PRICE_DECIMAL_PLACES),
		Exchange: exchange.Round(PRICE_DECIMAL_PLACES),
		Cash:     cash.Round(PRICE_DECIMAL_PLACES),
	}
}

// Equal compares field by field at storage precision
func (p Prices) Equal(other Prices) bool {
	return p.Sell.Round(PRICE_DECIMAL_PLACES).Equal(other.Sell.Round(PRICE_DECIMAL_PLACES)) &&
		p.Exchange.Round(PRICE_DECIMAL_PLACES).Equal(other.Exchange.Round(PRICE_DECIMAL_PLACES)) &&
		p.Cash.Round(PRICE_DECIMAL_PLACES).Equal(other.Cash.Round(PRICE_DECIMAL_PLACES))
}

// Validate checks every price lies in [MIN_PRICE, MAX_PRICE]
func (p Prices) Validate() error {
	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"sell price", p.Sell},
		{"exchange price", p.Exchange},
		{"cash price", p.Cash},
	} {
		if f.value.LessThan(MIN_PRICE) || f.value.GreaterThan(MAX_PRICE) {
			return NewValidationError("%s %s must be between %s and %s", f.name, f.value.String(), MIN_PRICE.String(), MAX_PRICE.String())
		}
	}
	return nil
}

// FetchedPriceData is the validated result of querying the pricing source for one item.
// It is transient and never persisted as-is.
type FetchedPriceData struct {
	ExternalID ExternalID
	Title      string
	Prices     Prices
	// Quoted holds the prices exactly as the source returned them, before rounding.
	// The range check runs on these so rounding cannot pull a bad value into range.
	Quoted Prices
	// Raw is the source payload for the item, kept for auditing
	Raw []byte
}

// NewFetchedPriceData constructs fetched data from decoded source fields.
// Missing fields and malformed ids are rejected; prices are not range-checked so callers
// can apply their own policy for out-of-range values.
func NewFetchedPriceData(externalID string, title *string, sell, exchange, cash *decimal.Decimal, raw []byte) (*FetchedPriceData, error) {
	id, err := ParseExternalID(externalID)
	if err != nil {
		return nil, err
	}
	if title == nil || strings.TrimSpace(*title) == "" {
		return nil, NewValidationError("title is required for %s", externalID)
	}
	if sell == nil || exchange == nil || cash == nil {
		return nil, NewValidationError("sell, exchange and cash prices are required for %s", externalID)
	}

	return &FetchedPriceData{
		ExternalID: id,
		Title:      strings.TrimSpace(*title),
		Prices:     NewPrices(*sell, *exchange, *cash),
		Quoted:     Prices{Sell: *sell, Exchange: *exchange, Cash: *cash},
		Raw:        raw,
	}, nil
}

// Validate performs the full well-formedness check required before anything is written
func (d *FetchedPriceData) Validate() error {
	if d == nil {
		return NewValidationError("fetched price data is nil")
	}
	if !d.ExternalID.Valid() {
		return NewValidationError("external id %q must be non-empty and alphanumeric", d.ExternalID)
	}
	if strings.TrimSpace(d.Title) == "" {
		return NewValidationError("title is required for %s", d.ExternalID)
	}
	return d.ValidatePrices()
}

// ValidatePrices range-checks the quoted prices and the rounded ones
func (d *FetchedPriceData) ValidatePrices() error {
	if d == nil {
		return NewValidationError("fetched price data is nil")
	}
	if err := d.Quoted.Validate(); err != nil {
		return err
	}
	return d.Prices.Validate()
}

// UserID is the opaque identity supplied by the authentication collaborator
type UserID string

func (u UserID) Valid() bool {
	return strings.TrimSpace(string(u)) != ""
}

// DateOf truncates a timestamp to its UTC calendar date
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
