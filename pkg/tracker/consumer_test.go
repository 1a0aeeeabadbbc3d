package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/JaiBansal007/Marg-Gps/pkg/margdf"
	"github.com/JaiBansal007/Marg-Gps/pkg/store"
	"github.com/adjust/rmq/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumeMalformedPayloadSkippedAndAcked(t *testing.T) {
	pipeline, repository, _ := newTestPipeline()
	seedTrackedAsset(repository)

	consumer := NewBatchConsumer(0, pipeline)

	malformed := rmq.NewTestDeliveryString(`{"assetIdentifier":`)
	valid := rmq.NewTestDeliveryString(`[{"assetIdentifier": "TR-0001", "vendorIdentifier": "intellitrac", "longitude": 77.0, "latitude": 28.003}]`)

	consumer.Consume(rmq.Deliveries{malformed, valid})

	assert.Equal(t, rmq.Acked, malformed.State)
	assert.Equal(t, rmq.Acked, valid.State)

	pings, _ := repository.PingsByAsset(context.Background(), "TR-0001")
	assert.Len(t, pings, 1)
}

type failingInsertRepository struct {
	*store.Memory
}

func (r *failingInsertRepository) InsertPings(ctx context.Context, pings []*margdf.Ping) error {
	return errors.New("insert failed")
}

func TestConsumeIngestFailureStillAcked(t *testing.T) {
	memory := store.NewMemory()
	seedTrackedAsset(memory)

	pipeline := NewPipeline(&failingInsertRepository{memory}, &capturePublisher{})
	consumer := NewBatchConsumer(0, pipeline)

	delivery := rmq.NewTestDeliveryString(`{"assetIdentifier": "TR-0001", "vendorIdentifier": "intellitrac", "longitude": 77.0, "latitude": 28.003}`)

	consumer.Consume(rmq.Deliveries{delivery})

	assert.Equal(t, rmq.Acked, delivery.State)

	pings, err := memory.PingsByAsset(context.Background(), "TR-0001")
	require.NoError(t, err)
	assert.Empty(t, pings)
}
