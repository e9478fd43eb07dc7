package dto

import "time"

// AddCollectionItemResponse represents the outcome of adding an item to a collection
type AddCollectionItemResponse struct {
	Item             CatalogItemResponse `json:"item"`
	Created          bool                `json:"created"`
	AlreadyOwned     bool                `json:"already_owned"`
	SnapshotRecorded bool                `json:"snapshot_recorded"`
}

// RemoveCollectionItemResponse represents the outcome of removing an item from a collection
type RemoveCollectionItemResponse struct {
	Removed bool `json:"removed"`
}

// RefreshCollectionItemResponse represents the outcome of refreshing one owned item
type RefreshCollectionItemResponse struct {
	Item             CatalogItemResponse `json:"item"`
	SnapshotRecorded bool                `json:"snapshot_recorded"`
}

// PriceRefreshRunResponse represents an on-demand batch cycle.
// ChangedCount and Changed are set once Status is succeeded; Error once it is failed.
type PriceRefreshRunResponse struct {
	RunID        string                `json:"run_id"`
	Status       string                `json:"status"`
	StartedAt    time.Time             `json:"started_at"`
	FinishedAt   *time.Time            `json:"finished_at,omitempty"`
	ChangedCount int                   `json:"changed_count"`
	Changed      []CatalogItemResponse `json:"changed"`
	Error        string                `json:"error,omitempty"`
}
