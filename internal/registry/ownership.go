package registry

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/ff-disctracker/internal/domain"
	"github.com/feral-file/ff-disctracker/internal/logger"
	"github.com/feral-file/ff-disctracker/internal/store"
	"github.com/feral-file/ff-disctracker/internal/store/schema"
)

// OwnershipRegistry tracks which users have which catalog items in their collection.
// The unique (user, item) pair is enforced by the storage layer.
//
//go:generate mockgen -source=ownership.go -destination=../mocks/ownership_registry.go -package=mocks -mock_names=OwnershipRegistry=MockOwnershipRegistry
type OwnershipRegistry interface {
	// Owns checks whether the user has the item in their collection
	Owns(ctx context.Context, st store.Store, user domain.UserID, item *schema.CatalogItem) (bool, error)
	// AddLink links the item to the user, returning nil when the user already owns it
	AddLink(ctx context.Context, st store.Store, user domain.UserID, item *schema.CatalogItem) (*schema.OwnershipLink, error)
	// RemoveLink unlinks the item from the user. It returns false when there was nothing to remove,
	// and a consistency error when the storage layer deleted anything other than exactly one row.
	RemoveLink(ctx context.Context, st store.Store, user domain.UserID, item *schema.CatalogItem) (bool, error)
}

type ownershipRegistry struct{}

// NewOwnershipRegistry creates a new ownership registry
func NewOwnershipRegistry() OwnershipRegistry {
	return &ownershipRegistry{}
}

func (r *ownershipRegistry) Owns(ctx context.Context, st store.Store, user domain.UserID, item *schema.CatalogItem) (bool, error) {
	if err := validateLinkArgs(user, item); err != nil {
		return false, err
	}
	return st.OwnershipLinkExists(ctx, string(user), item.ID)
}

func (r *ownershipRegistry) AddLink(ctx context.Context, st store.Store, user domain.UserID, item *schema.CatalogItem) (*schema.OwnershipLink, error) {
	if err := validateLinkArgs(user, item); err != nil {
		return nil, err
	}

	link, err := st.CreateOwnershipLink(ctx, string(user), item.ID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		logger.DebugCtx(ctx, "Item already in collection",
			zap.String("user_id", string(user)),
			zap.String("external_id", item.ExternalID),
		)
	}

	return link, nil
}

func (r *ownershipRegistry) RemoveLink(ctx context.Context, st store.Store, user domain.UserID, item *schema.CatalogItem) (bool, error) {
	if err := validateLinkArgs(user, item); err != nil {
		return false, err
	}

	deleted, err := st.DeleteOwnershipLink(ctx, string(user), item.ID)
	if err != nil {
		return false, err
	}

	switch deleted {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		err := domain.NewConsistencyError("removing ownership of %s for %s deleted %d rows", item.ExternalID, user, deleted)
		logger.ErrorCtx(ctx, err, zap.String("user_id", string(user)), zap.String("external_id", item.ExternalID))
		return false, err
	}
}

func validateLinkArgs(user domain.UserID, item *schema.CatalogItem) error {
	if !user.Valid() {
		return domain.NewValidationError("user identity is required")
	}
	if item == nil || item.ID == 0 {
		return domain.NewValidationError("a persisted catalog item is required")
	}
	return nil
}
