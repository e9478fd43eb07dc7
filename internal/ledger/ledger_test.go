package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-disctracker/internal/domain"
	"github.com/feral-file/ff-disctracker/internal/ledger"
	"github.com/feral-file/ff-disctracker/internal/mocks"
	"github.com/feral-file/ff-disctracker/internal/store"
	"github.com/feral-file/ff-disctracker/internal/store/schema"
)

var now = time.Date(2026, 10, 18, 14, 0, 0, 0, time.UTC)

type testLedger struct {
	store  *mocks.MockStore
	clock  *mocks.MockClock
	ledger ledger.Ledger
}

func setupTestLedger(t *testing.T) *testLedger {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	return &testLedger{
		store:  st,
		clock:  clock,
		ledger: ledger.NewLedger(clock),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func prices(sell, exchange, cash string) domain.Prices {
	return domain.NewPrices(dec(sell), dec(exchange), dec(cash))
}

func testItem(sell, exchange, cash string) *schema.CatalogItem {
	return &schema.CatalogItem{
		ID:            42,
		ExternalID:    "711719417576",
		Title:         "Spider-Man (2018) No DLC",
		SellPrice:     dec(sell),
		ExchangePrice: dec(exchange),
		CashPrice:     dec(cash),
	}
}

func TestLedger_HasChanged(t *testing.T) {
	tl := setupTestLedger(t)
	item := testItem("15", "10", "7")

	tests := []struct {
		name      string
		candidate domain.Prices
		expected  bool
	}{
		{name: "identical", candidate: prices("15.00", "10.00", "7.00"), expected: false},
		{name: "drift below storage precision", candidate: domain.Prices{Sell: dec("15.004"), Exchange: dec("10"), Cash: dec("7")}, expected: false},
		{name: "sell changed", candidate: prices("16", "10", "7"), expected: true},
		{name: "exchange changed", candidate: prices("15", "10.01", "7"), expected: true},
		{name: "cash changed", candidate: prices("15", "10", "8"), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tl.ledger.HasChanged(item, tt.candidate))
		})
	}
}

func TestLedger_RecordSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("copies current prices with today's date", func(t *testing.T) {
		tl := setupTestLedger(t)
		item := testItem("15", "10", "7")

		tl.store.EXPECT().
			CreatePriceSnapshot(ctx, store.CreatePriceSnapshotInput{
				CatalogItemID: 42,
				Prices:        item.Prices(),
				DateChecked:   now,
			}).
			Return(&schema.PriceSnapshot{ID: 1, CatalogItemID: 42}, nil)

		snapshot, err := tl.ledger.RecordSnapshot(ctx, tl.store, item)
		require.NoError(t, err)
		assert.Equal(t, int64(1), snapshot.ID)
	})

	t.Run("invalid item is refused without writing", func(t *testing.T) {
		tl := setupTestLedger(t)
		item := testItem("3001", "10", "7")

		snapshot, err := tl.ledger.RecordSnapshot(ctx, tl.store, item)
		assert.Nil(t, snapshot)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("nil item", func(t *testing.T) {
		tl := setupTestLedger(t)
		_, err := tl.ledger.RecordSnapshot(ctx, tl.store, nil)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("store failure is returned", func(t *testing.T) {
		tl := setupTestLedger(t)
		tl.store.EXPECT().CreatePriceSnapshot(ctx, gomock.Any()).Return(nil, errors.New("db down"))

		_, err := tl.ledger.RecordSnapshot(ctx, tl.store, testItem("15", "10", "7"))
		assert.EqualError(t, err, "db down")
	})
}

func TestLedger_RecordIfChanged(t *testing.T) {
	ctx := context.Background()
	latest := &schema.PriceSnapshot{ID: 7, CatalogItemID: 42, SellPrice: dec("15"), ExchangePrice: dec("10"), CashPrice: dec("7"), DateChecked: now}

	t.Run("unchanged returns nil", func(t *testing.T) {
		tl := setupTestLedger(t)
		tl.store.EXPECT().GetLatestPriceSnapshot(ctx, int64(42)).Return(latest, nil)

		snapshot, err := tl.ledger.RecordIfChanged(ctx, tl.store, testItem("1", "1", "1"), prices("15", "10", "7"))
		require.NoError(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("compares against the latest snapshot not the live item", func(t *testing.T) {
		tl := setupTestLedger(t)
		// The live item already carries the candidate prices, the history does not
		item := testItem("15", "10", "8")
		candidate := prices("15", "10", "8")

		gomock.InOrder(
			tl.store.EXPECT().GetLatestPriceSnapshot(ctx, int64(42)).Return(latest, nil),
			tl.store.EXPECT().
				CreatePriceSnapshot(ctx, store.CreatePriceSnapshotInput{CatalogItemID: 42, Prices: candidate, DateChecked: now}).
				Return(&schema.PriceSnapshot{ID: 8}, nil),
		)

		snapshot, err := tl.ledger.RecordIfChanged(ctx, tl.store, item, candidate)
		require.NoError(t, err)
		require.NotNil(t, snapshot)
		assert.Equal(t, int64(8), snapshot.ID)
	})

	t.Run("no prior snapshot", func(t *testing.T) {
		tl := setupTestLedger(t)
		tl.store.EXPECT().GetLatestPriceSnapshot(ctx, int64(42)).Return(nil, nil)

		_, err := tl.ledger.RecordIfChanged(ctx, tl.store, testItem("15", "10", "7"), prices("16", "10", "7"))
		assert.ErrorIs(t, err, domain.ErrNoPriorSnapshot)
	})

	t.Run("out of range candidate is refused", func(t *testing.T) {
		tl := setupTestLedger(t)

		_, err := tl.ledger.RecordIfChanged(ctx, tl.store, testItem("15", "10", "7"), prices("-1", "10", "7"))
		assert.True(t, domain.IsValidation(err))
	})
}
