package messaging

import (
	"context"

	"github.com/feral-file/ff-disctracker/internal/domain"
)

// Publisher defines the interface for publishing price events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishPriceChange publishes a committed price change
	PublishPriceChange(ctx context.Context, event *domain.PriceChangeEvent) error
	// Close closes the connection
	Close()
}
