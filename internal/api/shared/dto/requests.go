package dto

import (
	apierrors "github.com/feral-file/ff-disctracker/internal/api/shared/errors"
	"github.com/feral-file/ff-disctracker/internal/domain"
)

// AddCollectionItemRequest represents the request body for adding an item to the caller's collection
type AddCollectionItemRequest struct {
	ExternalID string `json:"external_id"`
}

// Validate validates the request body
func (r *AddCollectionItemRequest) Validate() error {
	if r.ExternalID == "" {
		return apierrors.NewValidationError("external_id is required")
	}
	if !domain.ExternalID(r.ExternalID).Valid() {
		return apierrors.NewValidationError("external_id must be alphanumeric")
	}
	return nil
}
