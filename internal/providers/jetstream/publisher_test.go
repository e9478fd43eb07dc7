package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-disctracker/internal/adapter"
	"github.com/feral-file/ff-disctracker/internal/domain"
	"github.com/feral-file/ff-disctracker/internal/logger"
	"github.com/feral-file/ff-disctracker/internal/mocks"
	"github.com/feral-file/ff-disctracker/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

var testConfig = jetstream.Config{
	URL:            "nats://localhost:4222",
	StreamName:     "PRICE_EVENTS",
	MaxReconnects:  3,
	ReconnectWait:  time.Second,
	ConnectionName: "ff-disctracker-test",
}

type testPublisher struct {
	natsJS *mocks.MockNatsJetStream
	conn   *mocks.MockNatsConn
	js     *mocks.MockJetStream
}

func setupTestPublisher(t *testing.T) *testPublisher {
	ctrl := gomock.NewController(t)

	return &testPublisher{
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		conn:   mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
	}
}

func (tp *testPublisher) expectConnect() {
	tp.natsJS.EXPECT().
		Connect(testConfig.URL, gomock.Any()).
		DoAndReturn(func(url string, opts ...nats.Option) (adapter.NatsConn, adapter.JetStream, error) {
			return tp.conn, tp.js, nil
		})
	tp.js.EXPECT().
		CreateOrUpdateStream(gomock.Any(), natsjs.StreamConfig{
			Name:     "PRICE_EVENTS",
			Subjects: []string{"prices.changed.>"},
		}).
		Return(nil, nil)
	tp.conn.EXPECT().ConnectedUrl().Return(testConfig.URL).AnyTimes()
}

func testEvent() *domain.PriceChangeEvent {
	return &domain.PriceChangeEvent{
		EventID:    "01JAB3Y0PZ8K9Q7M3V6T2W4X5Y",
		ExternalID: "711719417576",
		Title:      "Spider-Man (2018) No DLC",
		Previous:   domain.NewPrices(decimal.NewFromInt(15), decimal.NewFromInt(10), decimal.NewFromInt(3)),
		Current:    domain.NewPrices(decimal.NewFromInt(15), decimal.NewFromInt(10), decimal.NewFromInt(8)),
		CheckedAt:  time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("connects and ensures the stream", func(t *testing.T) {
		tp := setupTestPublisher(t)
		tp.expectConnect()

		pub, err := jetstream.NewPublisher(ctx, testConfig, tp.natsJS, adapter.NewJSON())
		require.NoError(t, err)
		assert.NotNil(t, pub)
	})

	t.Run("connect failure", func(t *testing.T) {
		tp := setupTestPublisher(t)
		tp.natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).Return(nil, nil, errors.New("no servers available"))

		pub, err := jetstream.NewPublisher(ctx, testConfig, tp.natsJS, adapter.NewJSON())
		require.Error(t, err)
		assert.Nil(t, pub)
	})

	t.Run("stream failure closes the connection", func(t *testing.T) {
		tp := setupTestPublisher(t)
		tp.natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).Return(tp.conn, tp.js, nil)
		tp.js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(nil, errors.New("insufficient resources"))
		tp.conn.EXPECT().Close()

		pub, err := jetstream.NewPublisher(ctx, testConfig, tp.natsJS, adapter.NewJSON())
		require.Error(t, err)
		assert.Nil(t, pub)
	})
}

func TestPublisher_PublishPriceChange(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes to the item subject", func(t *testing.T) {
		tp := setupTestPublisher(t)
		tp.expectConnect()

		pub, err := jetstream.NewPublisher(ctx, testConfig, tp.natsJS, adapter.NewJSON())
		require.NoError(t, err)

		tp.js.EXPECT().
			Publish(ctx, "prices.changed.711719417576", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
				var decoded map[string]any
				require.NoError(t, json.Unmarshal(data, &decoded))
				assert.Equal(t, "01JAB3Y0PZ8K9Q7M3V6T2W4X5Y", decoded["event_id"])
				assert.Equal(t, "711719417576", decoded["external_id"])
				current := decoded["current"].(map[string]any)
				assert.Equal(t, "8", current["cash_price"])
				return &natsjs.PubAck{Stream: "PRICE_EVENTS", Sequence: 1}, nil
			})

		require.NoError(t, pub.PublishPriceChange(ctx, testEvent()))
	})

	t.Run("publish failure is returned", func(t *testing.T) {
		tp := setupTestPublisher(t)
		tp.expectConnect()

		pub, err := jetstream.NewPublisher(ctx, testConfig, tp.natsJS, adapter.NewJSON())
		require.NoError(t, err)

		tp.js.EXPECT().Publish(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("no responders"))

		assert.Error(t, pub.PublishPriceChange(ctx, testEvent()))
	})

	t.Run("marshal failure is returned", func(t *testing.T) {
		tp := setupTestPublisher(t)
		tp.expectConnect()
		codec := mocks.NewMockJSON(gomock.NewController(t))

		pub, err := jetstream.NewPublisher(ctx, testConfig, tp.natsJS, codec)
		require.NoError(t, err)

		codec.EXPECT().Marshal(gomock.Any()).Return(nil, errors.New("unsupported value"))

		assert.Error(t, pub.PublishPriceChange(ctx, testEvent()))
	})

	t.Run("nil event", func(t *testing.T) {
		tp := setupTestPublisher(t)
		tp.expectConnect()

		pub, err := jetstream.NewPublisher(ctx, testConfig, tp.natsJS, adapter.NewJSON())
		require.NoError(t, err)

		assert.True(t, domain.IsValidation(pub.PublishPriceChange(ctx, nil)))
	})
}

func TestPublisher_Close(t *testing.T) {
	tp := setupTestPublisher(t)
	tp.expectConnect()

	pub, err := jetstream.NewPublisher(context.Background(), testConfig, tp.natsJS, adapter.NewJSON())
	require.NoError(t, err)

	tp.conn.EXPECT().Close()
	pub.Close()
}
