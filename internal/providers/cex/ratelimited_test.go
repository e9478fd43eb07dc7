package cex_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-disctracker/internal/domain"
	"github.com/feral-file/ff-disctracker/internal/mocks"
	"github.com/feral-file/ff-disctracker/internal/providers/cex"
)

func TestRateLimitedClient(t *testing.T) {
	ctx := context.Background()

	t.Run("waits for a token before fetching", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mocks.NewMockCexClient(ctrl)
		limiter := mocks.NewMockLimiter(ctrl)

		data := &domain.FetchedPriceData{ExternalID: "711719417576", Title: "Spider-Man"}
		gomock.InOrder(
			limiter.EXPECT().Wait(ctx).Return(nil),
			inner.EXPECT().Fetch(ctx, "711719417576").Return(data, nil),
		)

		got, err := cex.NewRateLimitedClient(inner, limiter).Fetch(ctx, "711719417576")
		require.NoError(t, err)
		assert.Same(t, data, got)
	})

	t.Run("wait failure is transient and skips the fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mocks.NewMockCexClient(ctrl)
		limiter := mocks.NewMockLimiter(ctrl)

		limiter.EXPECT().Wait(ctx).Return(context.DeadlineExceeded)

		_, err := cex.NewRateLimitedClient(inner, limiter).Fetch(ctx, "711719417576")
		require.Error(t, err)
		assert.True(t, domain.IsTransient(err))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("nil limiter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inner := mocks.NewMockCexClient(ctrl)

		assert.Equal(t, cex.Client(inner), cex.NewRateLimitedClient(inner, nil))
	})
}
