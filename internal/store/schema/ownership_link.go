package schema

import "time"

// OwnershipLink represents the ownership_links table - at most one row per (user, catalog item) pair
type OwnershipLink struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID is the opaque identity supplied by the authentication layer
	UserID string `gorm:"column:user_id;not null;type:text;uniqueIndex:idx_ownership_links_user_item,priority:1"`
	// CatalogItemID references the owned catalog item
	CatalogItemID int64 `gorm:"column:catalog_item_id;not null;uniqueIndex:idx_ownership_links_user_item,priority:2"`
	// CreatedAt is the timestamp when the item was added to the collection
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the OwnershipLink model
func (OwnershipLink) TableName() string {
	return "ownership_links"
}
