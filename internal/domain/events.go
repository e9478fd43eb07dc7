package domain

import "time"

// PriceChangeEvent is published after a batch cycle commits a new price for an item
type PriceChangeEvent struct {
	EventID    string     `json:"event_id"`
	ExternalID ExternalID `json:"external_id"`
	Title      string     `json:"title"`
	Previous   Prices     `json:"previous"`
	Current    Prices     `json:"current"`
	CheckedAt  time.Time  `json:"checked_at"`
}
