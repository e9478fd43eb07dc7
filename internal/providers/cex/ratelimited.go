package cex

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-disctracker/internal/domain"
	"github.com/feral-file/ff-disctracker/internal/ratelimit"
)

// PROVIDER_NAME is the rate limit key of the CeX API
const PROVIDER_NAME = "cex"

type rateLimitedClient struct {
	client  Client
	limiter ratelimit.Limiter
}

// NewRateLimitedClient wraps client so every Fetch first waits for a limiter token.
// A nil limiter returns client unchanged.
func NewRateLimitedClient(client Client, limiter ratelimit.Limiter) Client {
	if limiter == nil {
		return client
	}
	return &rateLimitedClient{client: client, limiter: limiter}
}

func (c *rateLimitedClient) Fetch(ctx context.Context, externalID string) (*domain.FetchedPriceData, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, domain.NewTransientError(fmt.Sprintf("rate limit wait for %s", externalID), err)
	}
	return c.client.Fetch(ctx, externalID)
}
