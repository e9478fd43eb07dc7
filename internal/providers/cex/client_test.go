package cex_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-disctracker/internal/adapter"
	"github.com/feral-file/ff-disctracker/internal/domain"
	"github.com/feral-file/ff-disctracker/internal/logger"
	"github.com/feral-file/ff-disctracker/internal/mocks"
	"github.com/feral-file/ff-disctracker/internal/providers/cex"
)

const (
	TEST_BASE_URL  = "https://cex.test/v3/boxes"
	TEST_BOX_ID    = "711719417576"
	TEST_BOX_URL   = TEST_BASE_URL + "/" + TEST_BOX_ID + "/detail"
	SINGLE_BOX_RAW = `{
  "response": {
    "ack": "Success",
    "data": {
      "boxDetails": [
        {
          "boxId": "711719417576",
          "boxName": "Spider-Man (2018) No DLC",
          "categoryName": "Playstation4 Software",
          "sellPrice": 15,
          "exchangePrice": 10.5,
          "cashPrice": 7
        }
      ]
    },
    "error": {"code": "", "internal_message": "", "moreInfo": []}
  }
}`
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func setup(t *testing.T) (*mocks.MockHTTPClient, cex.Client) {
	ctrl := gomock.NewController(t)
	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	return mockHTTPClient, cex.NewClient(mockHTTPClient, TEST_BASE_URL, adapter.NewJSON())
}

func TestClient_Fetch_Success(t *testing.T) {
	mockHTTPClient, client := setup(t)
	ctx := context.Background()

	mockHTTPClient.EXPECT().
		GetBytes(ctx, TEST_BOX_URL, gomock.Any()).
		Return([]byte(SINGLE_BOX_RAW), nil).
		Times(1)

	data, err := client.Fetch(ctx, TEST_BOX_ID)

	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, domain.ExternalID(TEST_BOX_ID), data.ExternalID)
	assert.Equal(t, "Spider-Man (2018) No DLC", data.Title)
	assert.True(t, data.Prices.Sell.Equal(decimal.NewFromInt(15)))
	assert.True(t, data.Prices.Exchange.Equal(decimal.RequireFromString("10.5")))
	assert.True(t, data.Prices.Cash.Equal(decimal.NewFromInt(7)))
	assert.Contains(t, string(data.Raw), "categoryName")
	assert.NoError(t, data.Validate())
}

func TestClient_Fetch_QuotedPrices(t *testing.T) {
	mockHTTPClient, client := setup(t)
	ctx := context.Background()

	body := `{"response":{"ack":"Success","data":{"boxDetails":[{"boxId":"711719417576","boxName":"Title","sellPrice":"15.00","exchangePrice":"10.00","cashPrice":"7.00"}]}}}`
	mockHTTPClient.EXPECT().GetBytes(ctx, TEST_BOX_URL, gomock.Any()).Return([]byte(body), nil)

	data, err := client.Fetch(ctx, TEST_BOX_ID)

	require.NoError(t, err)
	assert.True(t, data.Prices.Sell.Equal(decimal.NewFromInt(15)))
}

func TestClient_Fetch_InvalidID(t *testing.T) {
	// No HTTP expectation: an invalid id must not reach the network
	_, client := setup(t)

	for _, id := range []string{"", "abc-123", "71171 9", "../x"} {
		data, err := client.Fetch(context.Background(), id)
		assert.Nil(t, data)
		assert.True(t, domain.IsValidation(err), "id %q", id)
	}
}

func TestClient_Fetch_NotFound(t *testing.T) {
	mockHTTPClient, client := setup(t)
	ctx := context.Background()

	mockHTTPClient.EXPECT().
		GetBytes(ctx, TEST_BOX_URL, gomock.Any()).
		Return(nil, &adapter.HTTPStatusError{StatusCode: 404, Body: "not found"})

	data, err := client.Fetch(ctx, TEST_BOX_ID)

	assert.Nil(t, data)
	assert.True(t, domain.IsNotFound(err))
	assert.False(t, domain.IsTransient(err))
}

func TestClient_Fetch_ErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		checkFn func(error) bool
	}{
		{name: "network error", err: errors.New("connection reset by peer"), checkFn: domain.IsTransient},
		{name: "server error", err: &adapter.HTTPStatusError{StatusCode: 503}, checkFn: domain.IsTransient},
		{name: "rate limited", err: &adapter.HTTPStatusError{StatusCode: 429}, checkFn: domain.IsTransient},
		{name: "bad request", err: &adapter.HTTPStatusError{StatusCode: 400}, checkFn: domain.IsValidation},
		{name: "context deadline", err: context.DeadlineExceeded, checkFn: domain.IsTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockHTTPClient, client := setup(t)
			mockHTTPClient.EXPECT().GetBytes(gomock.Any(), TEST_BOX_URL, gomock.Any()).Return(nil, tt.err)

			data, err := client.Fetch(context.Background(), TEST_BOX_ID)

			assert.Nil(t, data)
			require.Error(t, err)
			assert.True(t, tt.checkFn(err), err.Error())
		})
	}
}

func TestClient_Fetch_MalformedPayloads(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		checkFn func(error) bool
	}{
		{name: "not json", body: "<html>bad gateway</html>", checkFn: domain.IsTransient},
		{name: "no data", body: `{"response":{"ack":"Failure","data":null,"error":{"code":"404","internal_message":"missing"}}}`, checkFn: domain.IsValidation},
		{name: "zero records", body: `{"response":{"ack":"Success","data":{"boxDetails":[]}}}`, checkFn: domain.IsValidation},
		{name: "two records", body: `{"response":{"data":{"boxDetails":[{"boxId":"711719417576","boxName":"A","sellPrice":1,"exchangePrice":1,"cashPrice":1},{"boxId":"711719417576","boxName":"B","sellPrice":1,"exchangePrice":1,"cashPrice":1}]}}}`, checkFn: domain.IsValidation},
		{name: "missing title", body: `{"response":{"data":{"boxDetails":[{"boxId":"711719417576","sellPrice":1,"exchangePrice":1,"cashPrice":1}]}}}`, checkFn: domain.IsValidation},
		{name: "missing cash price", body: `{"response":{"data":{"boxDetails":[{"boxId":"711719417576","boxName":"A","sellPrice":1,"exchangePrice":1}]}}}`, checkFn: domain.IsValidation},
		{name: "missing id", body: `{"response":{"data":{"boxDetails":[{"boxName":"A","sellPrice":1,"exchangePrice":1,"cashPrice":1}]}}}`, checkFn: domain.IsValidation},
		{name: "mismatched id", body: `{"response":{"data":{"boxDetails":[{"boxId":"999","boxName":"A","sellPrice":1,"exchangePrice":1,"cashPrice":1}]}}}`, checkFn: domain.IsValidation},
		{name: "price not a number", body: `{"response":{"data":{"boxDetails":[{"boxId":"711719417576","boxName":"A","sellPrice":"abc","exchangePrice":1,"cashPrice":1}]}}}`, checkFn: domain.IsValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockHTTPClient, client := setup(t)
			mockHTTPClient.EXPECT().GetBytes(gomock.Any(), TEST_BOX_URL, gomock.Any()).Return([]byte(tt.body), nil)

			data, err := client.Fetch(context.Background(), TEST_BOX_ID)

			assert.Nil(t, data)
			require.Error(t, err)
			assert.True(t, tt.checkFn(err), err.Error())
		})
	}
}

func TestClient_Fetch_OutOfRangePricesAreReturned(t *testing.T) {
	mockHTTPClient, client := setup(t)

	body := `{"response":{"data":{"boxDetails":[{"boxId":"711719417576","boxName":"A","sellPrice":4000,"exchangePrice":1,"cashPrice":1}]}}}`
	mockHTTPClient.EXPECT().GetBytes(gomock.Any(), TEST_BOX_URL, gomock.Any()).Return([]byte(body), nil)

	data, err := client.Fetch(context.Background(), TEST_BOX_ID)

	require.NoError(t, err)
	assert.True(t, domain.IsValidation(data.Validate()))
}
