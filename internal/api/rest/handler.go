package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-disctracker/internal/api/middleware"
	"github.com/feral-file/ff-disctracker/internal/api/shared/dto"
	"github.com/feral-file/ff-disctracker/internal/api/shared/executor"
	"github.com/feral-file/ff-disctracker/internal/domain"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// AddCollectionItem fetches an item from the pricing source and adds it to the caller's collection
	// POST /api/v1/collection/items
	AddCollectionItem(c *gin.Context)

	// ListCollectionItems lists the caller's items
	// GET /api/v1/collection/items?title=<text>&sell_price_lt=<n>&sell_price_gt=<n>&exchange_price_lt=<n>&exchange_price_gt=<n>&cash_price_lt=<n>&cash_price_gt=<n>&order=<field|-field>&limit=<limit>&offset=<offset>
	ListCollectionItems(c *gin.Context)

	// GetCollectionItem returns one of the caller's items with its price history
	// GET /api/v1/collection/items/:external_id?history_limit=<limit>
	GetCollectionItem(c *gin.Context)

	// RemoveCollectionItem removes an item from the caller's collection
	// DELETE /api/v1/collection/items/:external_id
	RemoveCollectionItem(c *gin.Context)

	// RefreshCollectionItem re-checks one of the caller's items against the pricing source
	// POST /api/v1/collection/items/:external_id/refresh
	RefreshCollectionItem(c *gin.Context)

	// TriggerPriceRefresh starts a batch price cycle over the whole catalog (requires API key)
	// POST /api/v1/admin/prices/refresh
	TriggerPriceRefresh(c *gin.Context)

	// GetPriceRefresh reports the status and outcome of a batch price cycle (requires API key)
	// GET /api/v1/admin/prices/refresh/:run_id
	GetPriceRefresh(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// AddCollectionItem adds an item to the caller's collection
func (h *handler) AddCollectionItem(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		respondUnauthorized(c, "User identity is required")
		return
	}

	var req dto.AddCollectionItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return
	}

	response, err := h.executor.AddCollectionItem(c.Request.Context(), user, req.ExternalID)
	if err != nil {
		respondError(c, err, "Failed to add item")
		return
	}

	status := http.StatusCreated
	if response.AlreadyOwned {
		status = http.StatusOK
	}

	c.JSON(status, response)
}

// ListCollectionItems lists the caller's items with filtering, ordering and pagination
func (h *handler) ListCollectionItems(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		respondUnauthorized(c, "User identity is required")
		return
	}

	queryParams, err := ParseListCollectionItemsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	filter, err := queryParams.Filter()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListCollectionItems(c.Request.Context(), user, filter)
	if err != nil {
		respondError(c, err, "Failed to list items")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetCollectionItem returns one of the caller's items with its price history
func (h *handler) GetCollectionItem(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		respondUnauthorized(c, "User identity is required")
		return
	}

	externalID := c.Param("external_id")
	if !domain.ExternalID(externalID).Valid() {
		respondBadRequest(c, "Invalid external id")
		return
	}

	queryParams, err := ParseGetCollectionItemQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetCollectionItem(c.Request.Context(), user, externalID, queryParams.HistoryLimit)
	if err != nil {
		respondError(c, err, "Failed to get item")
		return
	}

	if response == nil {
		respondNotFound(c, "Item not found in collection")
		return
	}

	c.JSON(http.StatusOK, response)
}

// RemoveCollectionItem removes an item from the caller's collection
func (h *handler) RemoveCollectionItem(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		respondUnauthorized(c, "User identity is required")
		return
	}

	externalID := c.Param("external_id")
	if !domain.ExternalID(externalID).Valid() {
		respondBadRequest(c, "Invalid external id")
		return
	}

	response, err := h.executor.RemoveCollectionItem(c.Request.Context(), user, externalID)
	if err != nil {
		respondError(c, err, "Failed to remove item")
		return
	}

	c.JSON(http.StatusOK, response)
}

// RefreshCollectionItem re-checks one of the caller's items
func (h *handler) RefreshCollectionItem(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		respondUnauthorized(c, "User identity is required")
		return
	}

	externalID := c.Param("external_id")
	if !domain.ExternalID(externalID).Valid() {
		respondBadRequest(c, "Invalid external id")
		return
	}

	response, err := h.executor.RefreshCollectionItem(c.Request.Context(), user, externalID)
	if err != nil {
		respondError(c, err, "Failed to refresh item")
		return
	}

	c.JSON(http.StatusOK, response)
}

// TriggerPriceRefresh starts a batch price cycle and returns the run to poll
func (h *handler) TriggerPriceRefresh(c *gin.Context) {
	response, err := h.executor.TriggerPriceRefresh(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to start price refresh")
		return
	}

	c.JSON(http.StatusAccepted, response)
}

// GetPriceRefresh reports one batch price cycle
func (h *handler) GetPriceRefresh(c *gin.Context) {
	response, err := h.executor.GetPriceRefresh(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		respondError(c, err, "Failed to get price refresh")
		return
	}
	if response == nil {
		respondNotFound(c, "Price refresh run not found")
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-disctracker-api",
	})
}
