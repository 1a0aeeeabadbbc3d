package tracker

import (
	"bytes"
	"encoding/json"

	"github.com/JaiBansal007/Marg-Gps/pkg/elastic_client"
	"github.com/JaiBansal007/Marg-Gps/pkg/margdf"
	"github.com/adjust/rmq/v5"
	"github.com/rs/zerolog/log"
)

// CrossingPublisher receives stop crossing events as the detector records
// them. Publish failures never affect ping persistence.
type CrossingPublisher interface {
	PublishCrossing(event *margdf.StopCrossingEvent) error
}

func (p *Pipeline) publishCrossing(event *margdf.StopCrossingEvent) {
	if p.Publisher == nil {
		return
	}

	if err := p.Publisher.PublishCrossing(event); err != nil {
		log.Error().Err(err).Str("stop", event.StopIdentifier).Msg("Failed to publish crossing event")
	}
}

// QueuePublisher fans crossing events out to the crossing-events queue for
// downstream consumers and to the Elasticsearch bulk indexer for reporting
type QueuePublisher struct {
	Queue rmq.Queue
}

func (p *QueuePublisher) PublishCrossing(event *margdf.StopCrossingEvent) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return err
	}

	elastic_client.IndexRequest("stop-crossing-events-1", bytes.NewReader(eventJSON))

	return p.Queue.PublishBytes(eventJSON)
}
