package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/JaiBansal007/Marg-Gps/pkg/margdf"
	"github.com/JaiBansal007/Marg-Gps/pkg/redis_client"
	"github.com/adjust/rmq/v5"
	"github.com/rs/zerolog/log"
)

// A single consumer keeps pings for one asset from racing across
// deliveries - crossing detection reads the last persisted position, so two
// batches for the same asset must not interleave
const numConsumers = 1
const batchSize = 25

const PingsQueueName = "gps-pings"
const CrossingEventsQueueName = "crossing-events"

func StartConsumers(pipeline *Pipeline) {
	log.Info().Msg("Starting tracker consumers")

	queue, err := redis_client.QueueConnection.OpenQueue(PingsQueueName)
	if err != nil {
		panic(err)
	}
	if err := queue.StartConsuming(numConsumers*batchSize, 1*time.Second); err != nil {
		panic(err)
	}

	for i := 0; i < numConsumers; i++ {
		go startTrackerConsumer(queue, i, pipeline)
	}
}

func startTrackerConsumer(queue rmq.Queue, id int, pipeline *Pipeline) {
	log.Info().Msgf("Starting tracker consumer %d", id)

	if _, err := queue.AddBatchConsumer(fmt.Sprintf("gps-pings-%d", id), batchSize, 2*time.Second, NewBatchConsumer(id, pipeline)); err != nil {
		panic(err)
	}
}

type BatchConsumer struct {
	id       int
	pipeline *Pipeline
}

func NewBatchConsumer(id int, pipeline *Pipeline) *BatchConsumer {
	return &BatchConsumer{id: id, pipeline: pipeline}
}

func (consumer *BatchConsumer) Consume(batch rmq.Deliveries) {
	for _, payload := range batch.Payloads() {
		pings, err := margdf.ParsePingPayload([]byte(payload))
		if err != nil {
			log.Error().Err(err).Msg("Failed to decode ping payload")
			continue
		}

		if err := consumer.pipeline.Ingest(context.Background(), pings); err != nil {
			log.Error().Err(err).Msg("Failed to ingest ping batch")
		}
	}

	if ackErrors := batch.Ack(); len(ackErrors) > 0 {
		for _, err := range ackErrors {
			log.Error().Err(err).Msg("Failed to ack ping delivery")
		}
	}
}
