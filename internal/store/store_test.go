package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-disctracker/internal/domain"
	"github.com/feral-file/ff-disctracker/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

var testDay = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func buildTestPrices(sell, exchange, cash string) domain.Prices {
	return domain.NewPrices(dec(sell), dec(exchange), dec(cash))
}

// buildTestCatalogItem creates a catalog item input
func buildTestCatalogItem(externalID, title, sell, exchange, cash string) CreateCatalogItemInput {
	return CreateCatalogItemInput{
		ExternalID:  externalID,
		Title:       title,
		Prices:      buildTestPrices(sell, exchange, cash),
		LastChecked: testDay,
		Raw:         []byte(fmt.Sprintf(`{"boxId":%q,"boxName":%q}`, externalID, title)),
	}
}

func mustCreateItem(t *testing.T, store Store, input CreateCatalogItemInput) *schema.CatalogItem {
	t.Helper()
	item, created, err := store.GetOrCreateCatalogItem(context.Background(), input)
	require.NoError(t, err)
	require.True(t, created)
	return item
}

// =============================================================================
// Test: Catalog items
// =============================================================================

func testGetOrCreateCatalogItem(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("creates a new item", func(t *testing.T) {
		item, created, err := store.GetOrCreateCatalogItem(ctx, buildTestCatalogItem("711719417576", "Spider-Man", "15", "10", "7"))
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotZero(t, item.ID)
		assert.Equal(t, "Spider-Man", item.Title)
		assert.True(t, item.SellPrice.Equal(dec("15")))
		assert.Equal(t, domain.DateOf(testDay), item.LastChecked)
	})

	t.Run("returns the existing item without modifying it", func(t *testing.T) {
		item, created, err := store.GetOrCreateCatalogItem(ctx, buildTestCatalogItem("711719417576", "Other title", "99", "99", "99"))
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "Spider-Man", item.Title)
		assert.True(t, item.SellPrice.Equal(dec("15")))
	})

	t.Run("lookup by external id and by id", func(t *testing.T) {
		byExternal, err := store.GetCatalogItemByExternalID(ctx, "711719417576")
		require.NoError(t, err)
		require.NotNil(t, byExternal)

		byID, err := store.GetCatalogItemByID(ctx, byExternal.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, byExternal.ExternalID, byID.ExternalID)

		locked, err := store.GetCatalogItemByIDForUpdate(ctx, byExternal.ID)
		require.NoError(t, err)
		require.NotNil(t, locked)
		assert.JSONEq(t, `{"boxId":"711719417576","boxName":"Spider-Man"}`, string(locked.Raw))
	})

	t.Run("missing item returns nil", func(t *testing.T) {
		item, err := store.GetCatalogItemByExternalID(ctx, "doesnotexist")
		require.NoError(t, err)
		assert.Nil(t, item)

		item, err = store.GetCatalogItemByID(ctx, -1)
		require.NoError(t, err)
		assert.Nil(t, item)
	})
}

func testUpdateCatalogItem(t *testing.T, store Store) {
	ctx := context.Background()
	item := mustCreateItem(t, store, buildTestCatalogItem("5030917", "Halo 3", "5", "3", "2"))

	t.Run("overwrites prices and title", func(t *testing.T) {
		title := "Halo 3 Legendary"
		updated, err := store.UpdateCatalogItem(ctx, item.ID, UpdateCatalogItemInput{
			Title:       &title,
			Prices:      buildTestPrices("6.5", "4", "0"),
			LastChecked: testDay.AddDate(0, 0, 1),
		})
		require.NoError(t, err)
		assert.Equal(t, "Halo 3 Legendary", updated.Title)
		assert.True(t, updated.SellPrice.Equal(dec("6.5")))
		assert.True(t, updated.CashPrice.IsZero())
		assert.Equal(t, domain.DateOf(testDay.AddDate(0, 0, 1)), updated.LastChecked)
		// Raw is untouched when not provided
		assert.JSONEq(t, `{"boxId":"5030917","boxName":"Halo 3"}`, string(updated.Raw))
	})

	t.Run("nil title keeps the title", func(t *testing.T) {
		updated, err := store.UpdateCatalogItem(ctx, item.ID, UpdateCatalogItemInput{
			Prices:      buildTestPrices("7", "4", "1"),
			LastChecked: testDay,
		})
		require.NoError(t, err)
		assert.Equal(t, "Halo 3 Legendary", updated.Title)
		assert.True(t, updated.SellPrice.Equal(dec("7")))
	})

	t.Run("unknown id is a consistency failure", func(t *testing.T) {
		_, err := store.UpdateCatalogItem(ctx, -1, UpdateCatalogItemInput{Prices: buildTestPrices("1", "1", "1"), LastChecked: testDay})
		assert.True(t, domain.IsConsistency(err))
	})
}

func testListCatalogItems(t *testing.T, store Store) {
	ctx := context.Background()
	var ids []int64
	for i := range 5 {
		item := mustCreateItem(t, store, buildTestCatalogItem(fmt.Sprintf("LIST%d", i), fmt.Sprintf("List %d", i), "1", "1", "1"))
		ids = append(ids, item.ID)
	}

	page1, err := store.ListCatalogItems(ctx, ids[0]-1, 3)
	require.NoError(t, err)
	require.Len(t, page1, 3)
	assert.Equal(t, ids[0], page1[0].ID)

	page2, err := store.ListCatalogItems(ctx, page1[2].ID, 3)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Equal(t, ids[4], page2[1].ID)

	page3, err := store.ListCatalogItems(ctx, ids[4], 3)
	require.NoError(t, err)
	assert.Empty(t, page3)
}

// =============================================================================
// Test: Price snapshots
// =============================================================================

func testPriceSnapshots(t *testing.T, store Store) {
	ctx := context.Background()
	item := mustCreateItem(t, store, buildTestCatalogItem("SNAP1", "Snapshot item", "10", "8", "6"))

	t.Run("no snapshot yet", func(t *testing.T) {
		latest, err := store.GetLatestPriceSnapshot(ctx, item.ID)
		require.NoError(t, err)
		assert.Nil(t, latest)
	})

	first, err := store.CreatePriceSnapshot(ctx, CreatePriceSnapshotInput{CatalogItemID: item.ID, Prices: buildTestPrices("10", "8", "6"), DateChecked: testDay})
	require.NoError(t, err)
	sameDay, err := store.CreatePriceSnapshot(ctx, CreatePriceSnapshotInput{CatalogItemID: item.ID, Prices: buildTestPrices("11", "8", "6"), DateChecked: testDay})
	require.NoError(t, err)
	older, err := store.CreatePriceSnapshot(ctx, CreatePriceSnapshotInput{CatalogItemID: item.ID, Prices: buildTestPrices("9", "8", "6"), DateChecked: testDay.AddDate(0, 0, -3)})
	require.NoError(t, err)

	t.Run("latest is date desc then insertion order", func(t *testing.T) {
		latest, err := store.GetLatestPriceSnapshot(ctx, item.ID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, sameDay.ID, latest.ID)
		assert.True(t, latest.Prices().Equal(buildTestPrices("11", "8", "6")))
	})

	t.Run("history newest first", func(t *testing.T) {
		history, err := store.GetPriceSnapshots(ctx, item.ID, 0)
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, []int64{sameDay.ID, first.ID, older.ID}, []int64{history[0].ID, history[1].ID, history[2].ID})

		limited, err := store.GetPriceSnapshots(ctx, item.ID, 1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})
}

// =============================================================================
// Test: Ownership links
// =============================================================================

func testOwnershipLinks(t *testing.T, store Store) {
	ctx := context.Background()
	item := mustCreateItem(t, store, buildTestCatalogItem("OWN1", "Owned", "10", "8", "6"))

	owns, err := store.OwnershipLinkExists(ctx, "alice", item.ID)
	require.NoError(t, err)
	assert.False(t, owns)

	link, err := store.CreateOwnershipLink(ctx, "alice", item.ID)
	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Equal(t, "alice", link.UserID)

	t.Run("duplicate link returns nil", func(t *testing.T) {
		dup, err := store.CreateOwnershipLink(ctx, "alice", item.ID)
		require.NoError(t, err)
		assert.Nil(t, dup)
	})

	owns, err = store.OwnershipLinkExists(ctx, "alice", item.ID)
	require.NoError(t, err)
	assert.True(t, owns)

	owns, err = store.OwnershipLinkExists(ctx, "bob", item.ID)
	require.NoError(t, err)
	assert.False(t, owns)

	t.Run("delete reports affected rows", func(t *testing.T) {
		n, err := store.DeleteOwnershipLink(ctx, "alice", item.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = store.DeleteOwnershipLink(ctx, "alice", item.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("catalog item survives losing its last owner", func(t *testing.T) {
		orphan, err := store.GetCatalogItemByID(ctx, item.ID)
		require.NoError(t, err)
		assert.NotNil(t, orphan)
	})
}

// =============================================================================
// Test: GetUserCatalogItems
// =============================================================================

func testGetUserCatalogItems(t *testing.T, store Store) {
	ctx := context.Background()

	fixtures := []CreateCatalogItemInput{
		buildTestCatalogItem("UC1", "Zelda Breath of the Wild", "30", "20", "15"),
		buildTestCatalogItem("UC2", "Mario Kart 8", "25", "18", "12"),
		buildTestCatalogItem("UC3", "Metroid Dread", "25", "16", "11"),
		buildTestCatalogItem("UC4", "100%_Orange Juice", "5", "2", "1"),
	}
	for _, f := range fixtures {
		item := mustCreateItem(t, store, f)
		_, err := store.CreateOwnershipLink(ctx, "carol", item.ID)
		require.NoError(t, err)
	}
	other := mustCreateItem(t, store, buildTestCatalogItem("UC5", "Mario Party", "20", "10", "5"))
	_, err := store.CreateOwnershipLink(ctx, "dave", other.ID)
	require.NoError(t, err)

	titles := func(items []schema.CatalogItem) []string {
		out := make([]string, len(items))
		for i := range items {
			out[i] = items[i].Title
		}
		return out
	}
	ptr := func(s string) *decimal.Decimal { d := dec(s); return &d }
	str := func(s string) *string { return &s }

	tests := []struct {
		name     string
		filter   UserItemsFilter
		expected []string
		total    uint64
	}{
		{
			name:     "default order is title ascending",
			filter:   UserItemsFilter{UserID: "carol"},
			expected: []string{"100%_Orange Juice", "Mario Kart 8", "Metroid Dread", "Zelda Breath of the Wild"},
			total:    4,
		},
		{
			name:     "only the user's own items",
			filter:   UserItemsFilter{UserID: "dave"},
			expected: []string{"Mario Party"},
			total:    1,
		},
		{
			name:     "title contains, case-insensitive",
			filter:   UserItemsFilter{UserID: "carol", Title: str("MARIO")},
			expected: []string{"Mario Kart 8"},
			total:    1,
		},
		{
			name:     "title wildcards match literally",
			filter:   UserItemsFilter{UserID: "carol", Title: str("%_")},
			expected: []string{"100%_Orange Juice"},
			total:    1,
		},
		{
			name:     "sell price range is exclusive",
			filter:   UserItemsFilter{UserID: "carol", SellPrice: PriceRange{GreaterThan: ptr("5"), LessThan: ptr("30")}},
			expected: []string{"Mario Kart 8", "Metroid Dread"},
			total:    2,
		},
		{
			name:     "cash price less than",
			filter:   UserItemsFilter{UserID: "carol", CashPrice: PriceRange{LessThan: ptr("12")}},
			expected: []string{"100%_Orange Juice", "Metroid Dread"},
			total:    2,
		},
		{
			name:     "order by sell price descending with id tie-break",
			filter:   UserItemsFilter{UserID: "carol", OrderBy: ItemOrderSellPrice, OrderDesc: true},
			expected: []string{"Zelda Breath of the Wild", "Metroid Dread", "Mario Kart 8", "100%_Orange Juice"},
			total:    4,
		},
		{
			name:     "order by exchange price ascending",
			filter:   UserItemsFilter{UserID: "carol", OrderBy: ItemOrderExchangePrice, ExchangePrice: PriceRange{GreaterThan: ptr("2")}},
			expected: []string{"Metroid Dread", "Mario Kart 8", "Zelda Breath of the Wild"},
			total:    3,
		},
		{
			name:     "pagination keeps the total",
			filter:   UserItemsFilter{UserID: "carol", Limit: 2, Offset: 1},
			expected: []string{"Mario Kart 8", "Metroid Dread"},
			total:    4,
		},
		{
			name:     "unknown user",
			filter:   UserItemsFilter{UserID: "nobody"},
			expected: []string{},
			total:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, total, err := store.GetUserCatalogItems(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.total, total)
			assert.Equal(t, tt.expected, titles(items))
		})
	}
}

// =============================================================================
// Test: Transactions
// =============================================================================

func testWithTx(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("error rolls back every write", func(t *testing.T) {
		sentinel := fmt.Errorf("boom")
		err := store.WithTx(ctx, func(tx Store) error {
			item, _, err := tx.GetOrCreateCatalogItem(ctx, buildTestCatalogItem("TX1", "Rolled back", "1", "1", "1"))
			require.NoError(t, err)
			_, err = tx.CreateOwnershipLink(ctx, "erin", item.ID)
			require.NoError(t, err)
			return sentinel
		})
		assert.ErrorIs(t, err, sentinel)

		item, err := store.GetCatalogItemByExternalID(ctx, "TX1")
		require.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("success commits", func(t *testing.T) {
		err := store.WithTx(ctx, func(tx Store) error {
			_, _, err := tx.GetOrCreateCatalogItem(ctx, buildTestCatalogItem("TX2", "Committed", "1", "1", "1"))
			return err
		})
		require.NoError(t, err)

		item, err := store.GetCatalogItemByExternalID(ctx, "TX2")
		require.NoError(t, err)
		assert.NotNil(t, item)
	})
}

// =============================================================================
// Test: Key-value store and sweep cursor
// =============================================================================

func testSweepCursor(t *testing.T, store Store) {
	ctx := context.Background()
	cursor := NewSweepCursor(store)

	_, ok, err := cursor.LastCompletedAt(ctx, "price")
	require.NoError(t, err)
	assert.False(t, ok)

	completed := time.Date(2026, 10, 18, 12, 0, 0, 123, time.UTC)
	require.NoError(t, cursor.SetCompletedAt(ctx, "price", completed))

	got, ok, err := cursor.LastCompletedAt(ctx, "price")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, completed.Equal(got))

	require.NoError(t, cursor.SetCompletedAt(ctx, "price", completed.Add(time.Hour)))
	got, _, err = cursor.LastCompletedAt(ctx, "price")
	require.NoError(t, err)
	assert.True(t, completed.Add(time.Hour).Equal(got))
}

// RunStoreTests runs all store tests against the given store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"GetOrCreateCatalogItem", testGetOrCreateCatalogItem},
		{"UpdateCatalogItem", testUpdateCatalogItem},
		{"ListCatalogItems", testListCatalogItems},
		{"PriceSnapshots", testPriceSnapshots},
		{"OwnershipLinks", testOwnershipLinks},
		{"GetUserCatalogItems", testGetUserCatalogItems},
		{"WithTx", testWithTx},
		{"SweepCursor", testSweepCursor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
