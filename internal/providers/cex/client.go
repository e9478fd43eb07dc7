package cex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-disctracker/internal/adapter"
	"github.com/feral-file/ff-disctracker/internal/domain"
	"github.com/feral-file/ff-disctracker/internal/logger"
)

const (
	// DEFAULT_BASE_URL is the CeX box endpoint, item details live under /{id}/detail
	DEFAULT_BASE_URL = "https://wss2.cex.uk.webuy.io/v3/boxes"
)

// BoxDetail is one item-detail record as returned by CeX. Unknown fields are ignored.
type BoxDetail struct {
	BoxID         *string          `json:"boxId"`
	BoxName       *string          `json:"boxName"`
	SellPrice     *decimal.Decimal `json:"sellPrice"`
	ExchangePrice *decimal.Decimal `json:"exchangePrice"`
	CashPrice     *decimal.Decimal `json:"cashPrice"`
}

// BoxDetailResponse is the envelope of the box detail endpoint
type BoxDetailResponse struct {
	Response struct {
		Ack  string `json:"ack"`
		Data *struct {
			BoxDetails []json.RawMessage `json:"boxDetails"`
		} `json:"data"`
		Error *struct {
			Code            string   `json:"code"`
			InternalMessage string   `json:"internal_message"`
			MoreInfo        []string `json:"moreInfo"`
		} `json:"error"`
	} `json:"response"`
}

// Client defines the interface for the pricing source client to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/cex_client.go -package=mocks -mock_names=Client=MockCexClient
type Client interface {
	// Fetch returns the current title and prices of one item.
	// Errors are classified with the domain error taxonomy: not found, validation or transient.
	Fetch(ctx context.Context, externalID string) (*domain.FetchedPriceData, error)
}

// CexClient implements Client against the CeX box detail API
type CexClient struct {
	httpClient adapter.HTTPClient
	baseURL    string
	json       adapter.JSON
}

// NewClient creates a new CeX client
func NewClient(httpClient adapter.HTTPClient, baseURL string, json adapter.JSON) Client {
	if baseURL == "" {
		baseURL = DEFAULT_BASE_URL
	}
	return &CexClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		json:       json,
	}
}

// Fetch queries the box detail endpoint for a single external id
func (c *CexClient) Fetch(ctx context.Context, externalID string) (*domain.FetchedPriceData, error) {
	id, err := domain.ParseExternalID(externalID)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/detail", c.baseURL, id)
	headers := map[string]string{
		"Accept": "application/json",
	}

	respBody, err := c.httpClient.GetBytes(ctx, url, headers)
	if err != nil {
		return nil, classifyRequestError(id, err)
	}

	var response BoxDetailResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, domain.NewTransientError(fmt.Sprintf("failed to decode response for %s", id), err)
	}

	if response.Response.Data == nil {
		msg := "missing data"
		if response.Response.Error != nil && response.Response.Error.Code != "" {
			msg = fmt.Sprintf("source error %s: %s", response.Response.Error.Code, response.Response.Error.InternalMessage)
		}
		return nil, domain.NewValidationError("invalid response for %s: %s", id, msg)
	}

	details := response.Response.Data.BoxDetails
	if len(details) != 1 {
		return nil, domain.NewValidationError("expected exactly one box detail for %s, got %d", id, len(details))
	}

	var detail BoxDetail
	if err := c.json.Unmarshal(details[0], &detail); err != nil {
		return nil, domain.NewValidationError("malformed box detail for %s: %s", id, err.Error())
	}

	if detail.BoxID == nil {
		return nil, domain.NewValidationError("box detail for %s has no id", id)
	}
	if *detail.BoxID != id.String() {
		return nil, domain.NewValidationError("box detail id %s does not match requested id %s", *detail.BoxID, id)
	}

	data, err := domain.NewFetchedPriceData(*detail.BoxID, detail.BoxName, detail.SellPrice, detail.ExchangePrice, detail.CashPrice, details[0])
	if err != nil {
		return nil, err
	}

	logger.DebugCtx(ctx, "Fetched item from CeX",
		zap.String("external_id", id.String()),
		zap.String("title", data.Title),
	)

	return data, nil
}

// classifyRequestError maps transport failures onto the domain error taxonomy
func classifyRequestError(id domain.ExternalID, err error) error {
	var statusErr *adapter.HTTPStatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode == http.StatusNotFound:
			return fmt.Errorf("cex item %s: %w", id, domain.ErrNotFound)
		case statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 && statusErr.StatusCode != http.StatusTooManyRequests:
			return domain.NewValidationError("cex rejected request for %s with status %d", id, statusErr.StatusCode)
		}
	}
	return domain.NewTransientError(fmt.Sprintf("failed to call CeX API for %s", id), err)
}
