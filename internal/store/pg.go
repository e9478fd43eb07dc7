package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-disctracker/internal/domain"
	"github.com/feral-file/ff-disctracker/internal/store/schema"
)

const (
	// DEFAULT_PAGE_LIMIT is used when a listing is requested without a limit
	DEFAULT_PAGE_LIMIT = 20
	// MAX_PAGE_LIMIT caps the page size of listings
	MAX_PAGE_LIMIT = 100
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool applies pool settings to the sql.DB behind a gorm connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings fills zero settings with defaults
// (20 open, 5 idle, 5m lifetime, 10m idle time) and keeps idle <= open.
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// WithTx runs fn inside a transaction scoped to a transactional store
func (s *pgStore) WithTx(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

// GetCatalogItemByExternalID retrieves a catalog item by external id
func (s *pgStore) GetCatalogItemByExternalID(ctx context.Context, externalID string) (*schema.CatalogItem, error) {
	var item schema.CatalogItem
	err := s.db.WithContext(ctx).Where("external_id = ?", externalID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get catalog item: %w", err)
	}
	return &item, nil
}

// GetCatalogItemByID retrieves a catalog item by primary key
func (s *pgStore) GetCatalogItemByID(ctx context.Context, id int64) (*schema.CatalogItem, error) {
	return getCatalogItemByID(s.db.WithContext(ctx), id)
}

// GetCatalogItemByIDForUpdate retrieves a catalog item with SELECT ... FOR UPDATE
func (s *pgStore) GetCatalogItemByIDForUpdate(ctx context.Context, id int64) (*schema.CatalogItem, error) {
	return getCatalogItemByID(s.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func getCatalogItemByID(query *gorm.DB, id int64) (*schema.CatalogItem, error) {
	var item schema.CatalogItem
	err := query.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get catalog item: %w", err)
	}
	return &item, nil
}

// ListCatalogItems pages through the whole catalog by id
func (s *pgStore) ListCatalogItems(ctx context.Context, afterID int64, limit int) ([]schema.CatalogItem, error) {
	if limit <= 0 {
		limit = DEFAULT_PAGE_LIMIT
	}

	var items []schema.CatalogItem
	err := s.db.WithContext(ctx).
		Where("id > ?", afterID).
		Order("id ASC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog items: %w", err)
	}

	return items, nil
}

// GetOrCreateCatalogItem implements get-or-create with INSERT ... ON CONFLICT DO NOTHING.
// A concurrent inserter of the same external id blocks on the unique index until the first
// transaction commits, after which the row is visible to the locking select below.
func (s *pgStore) GetOrCreateCatalogItem(ctx context.Context, input CreateCatalogItemInput) (*schema.CatalogItem, bool, error) {
	var result *schema.CatalogItem
	var created bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item := schema.CatalogItem{
			ExternalID:    input.ExternalID,
			Title:         input.Title,
			SellPrice:     input.Prices.Sell,
			ExchangePrice: input.Prices.Exchange,
			CashPrice:     input.Prices.Cash,
			LastChecked:   domain.DateOf(input.LastChecked),
			Raw:           datatypes.JSON(input.Raw),
		}

		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_id"}},
			DoNothing: true,
		}).Create(&item)
		if res.Error != nil {
			return fmt.Errorf("failed to create catalog item: %w", res.Error)
		}

		if res.RowsAffected == 1 {
			created = true
			result = &item
			return nil
		}

		var existing schema.CatalogItem
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("external_id = ?", input.ExternalID).
			First(&existing).Error; err != nil {
			return fmt.Errorf("failed to lock existing catalog item: %w", err)
		}
		result = &existing
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return result, created, nil
}

// UpdateCatalogItem overwrites the mutable fields of a catalog item
func (s *pgStore) UpdateCatalogItem(ctx context.Context, id int64, input UpdateCatalogItemInput) (*schema.CatalogItem, error) {
	// A map is used so zero prices are written rather than skipped
	updates := map[string]any{
		"sell_price":     input.Prices.Sell,
		"exchange_price": input.Prices.Exchange,
		"cash_price":     input.Prices.Cash,
		"last_checked":   domain.DateOf(input.LastChecked),
		"updated_at":     time.Now(),
	}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Raw != nil {
		updates["raw"] = datatypes.JSON(input.Raw)
	}

	res := s.db.WithContext(ctx).Model(&schema.CatalogItem{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update catalog item: %w", res.Error)
	}
	if res.RowsAffected != 1 {
		return nil, domain.NewConsistencyError("update of catalog item %d affected %d rows", id, res.RowsAffected)
	}

	return s.GetCatalogItemByID(ctx, id)
}

// CreatePriceSnapshot appends a snapshot row
func (s *pgStore) CreatePriceSnapshot(ctx context.Context, input CreatePriceSnapshotInput) (*schema.PriceSnapshot, error) {
	snapshot := schema.PriceSnapshot{
		CatalogItemID: input.CatalogItemID,
		SellPrice:     input.Prices.Sell,
		ExchangePrice: input.Prices.Exchange,
		CashPrice:     input.Prices.Cash,
		DateChecked:   domain.DateOf(input.DateChecked),
	}

	if err := s.db.WithContext(ctx).Create(&snapshot).Error; err != nil {
		return nil, fmt.Errorf("failed to create price snapshot: %w", err)
	}

	return &snapshot, nil
}

// GetLatestPriceSnapshot returns the newest snapshot of a catalog item
func (s *pgStore) GetLatestPriceSnapshot(ctx context.Context, catalogItemID int64) (*schema.PriceSnapshot, error) {
	var snapshot schema.PriceSnapshot
	err := s.db.WithContext(ctx).
		Where("catalog_item_id = ?", catalogItemID).
		Order("date_checked DESC").
		Order("id DESC").
		Take(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest price snapshot: %w", err)
	}
	return &snapshot, nil
}

// GetPriceSnapshots returns the history of a catalog item newest first
func (s *pgStore) GetPriceSnapshots(ctx context.Context, catalogItemID int64, limit int) ([]schema.PriceSnapshot, error) {
	query := s.db.WithContext(ctx).
		Where("catalog_item_id = ?", catalogItemID).
		Order("date_checked DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var snapshots []schema.PriceSnapshot
	if err := query.Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("failed to get price snapshots: %w", err)
	}
	return snapshots, nil
}

// OwnershipLinkExists checks whether the user owns the catalog item
func (s *pgStore) OwnershipLinkExists(ctx context.Context, userID string, catalogItemID int64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.OwnershipLink{}).
		Where("user_id = ? AND catalog_item_id = ?", userID, catalogItemID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check ownership link: %w", err)
	}
	return count > 0, nil
}

// CreateOwnershipLink creates the link unless the pair already exists
func (s *pgStore) CreateOwnershipLink(ctx context.Context, userID string, catalogItemID int64) (*schema.OwnershipLink, error) {
	link := schema.OwnershipLink{
		UserID:        userID,
		CatalogItemID: catalogItemID,
	}

	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "catalog_item_id"}},
		DoNothing: true,
	}).Create(&link)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to create ownership link: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return &link, nil
}

// DeleteOwnershipLink removes the link and reports how many rows were deleted
func (s *pgStore) DeleteOwnershipLink(ctx context.Context, userID string, catalogItemID int64) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND catalog_item_id = ?", userID, catalogItemID).
		Delete(&schema.OwnershipLink{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete ownership link: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// GetUserCatalogItems returns a page of the items a user owns
func (s *pgStore) GetUserCatalogItems(ctx context.Context, filter UserItemsFilter) ([]schema.CatalogItem, uint64, error) {
	base := func() *gorm.DB {
		query := s.db.WithContext(ctx).Model(&schema.CatalogItem{}).
			Joins("JOIN ownership_links ON ownership_links.catalog_item_id = catalog_items.id").
			Where("ownership_links.user_id = ?", filter.UserID)

		if filter.Title != nil && *filter.Title != "" {
			query = query.Where("catalog_items.title ILIKE ? ESCAPE '\\'", "%"+escapeLike(*filter.Title)+"%")
		}

		for column, r := range map[string]PriceRange{
			"sell_price":     filter.SellPrice,
			"exchange_price": filter.ExchangePrice,
			"cash_price":     filter.CashPrice,
		} {
			if r.LessThan != nil {
				query = query.Where(fmt.Sprintf("catalog_items.%s < ?", column), *r.LessThan)
			}
			if r.GreaterThan != nil {
				query = query.Where(fmt.Sprintf("catalog_items.%s > ?", column), *r.GreaterThan)
			}
		}
		return query
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count user catalog items: %w", err)
	}

	orderBy := filter.OrderBy
	if !orderBy.Valid() {
		orderBy = ItemOrderTitle
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = DEFAULT_PAGE_LIMIT
	}
	if limit > MAX_PAGE_LIMIT {
		limit = MAX_PAGE_LIMIT
	}

	var items []schema.CatalogItem
	err := base().
		Select("catalog_items.*").
		Order(clause.OrderByColumn{Column: clause.Column{Table: "catalog_items", Name: string(orderBy)}, Desc: filter.OrderDesc}).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "catalog_items", Name: "id"}, Desc: filter.OrderDesc}).
		Limit(limit).
		Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get user catalog items: %w", err)
	}

	return items, uint64(total), nil //nolint:gosec,G115
}

// escapeLike escapes LIKE wildcards so user input matches literally
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// SetKeyValue sets a key-value pair in the key-value store
func (s *pgStore) SetKeyValue(ctx context.Context, key string, value string) error {
	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set key-value: %w", err)
	}

	return nil
}

// GetKeyValue retrieves a value by key from the key-value store
func (s *pgStore) GetKeyValue(ctx context.Context, key string) (string, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get key-value: %w", err)
	}

	return kv.Value, nil
}
