package types

import (
	"fmt"
	"strings"

	"github.com/feral-file/ff-disctracker/internal/store"
)

// ItemOrder is an ordering expression for collection items: a field name, optionally prefixed
// with "-" for descending order
type ItemOrder string

// Parse returns the store field and direction of the ordering
func (o ItemOrder) Parse() (store.ItemOrderField, bool, error) {
	raw := strings.TrimSpace(string(o))
	desc := strings.HasPrefix(raw, "-")
	field := store.ItemOrderField(strings.TrimPrefix(raw, "-"))
	if !field.Valid() {
		return "", false, fmt.Errorf("invalid order %q: must be one of title, sell_price, exchange_price, cash_price with optional '-' prefix", raw)
	}
	return field, desc, nil
}
