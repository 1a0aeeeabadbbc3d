package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/JaiBansal007/Marg-Gps/pkg/margdf"
	"github.com/JaiBansal007/Marg-Gps/pkg/store"
	"github.com/rs/zerolog/log"
)

// Pipeline processes one batch of vendor pings at a time: reference data
// resolution, validity filtering, timestamp reconciliation, geofence
// crossing detection and a single bulk insert of everything that survived.
type Pipeline struct {
	Repository store.Repository
	Publisher  CrossingPublisher

	// Now is swappable for tests
	Now func() time.Time
}

func NewPipeline(repository store.Repository, publisher CrossingPublisher) *Pipeline {
	return &Pipeline{
		Repository: repository,
		Publisher:  publisher,

		Now: time.Now,
	}
}

// Ingest runs one batch to completion. Pings within the batch are processed
// strictly in their given order - crossing detection is stateful per asset.
// A store failure aborts the remainder of the batch; stop mutations already
// applied stay applied.
func (p *Pipeline) Ingest(ctx context.Context, rawPings []margdf.RawPing) error {
	if len(rawPings) == 0 {
		log.Warn().Msg("No pings to ingest")
		return nil
	}

	references, err := p.resolveReferenceData(ctx, rawPings)
	if err != nil {
		return fmt.Errorf("failed to resolve reference data: %w", err)
	}

	positions := newPositionCache(p.Repository)

	var persistable []*margdf.Ping

	for i := range rawPings {
		rawPing := &rawPings[i]

		asset := references.Assets[rawPing.AssetIdentifier]
		if asset == nil {
			log.Debug().Str("asset", rawPing.AssetIdentifier).Msg("Dropping ping for unknown asset")
			continue
		}

		// An unknown vendor does not invalidate the ping, only an
		// explicitly disabled one does
		vendor := references.Vendors[rawPing.VendorIdentifier]
		if vendor != nil && !vendor.Active {
			log.Debug().Str("vendor", rawPing.VendorIdentifier).Msg("Dropping ping from disabled vendor")
			continue
		}

		ping := rawPing.ToPing(p.Now())
		persistable = append(persistable, ping)

		equipment := references.Equipment[rawPing.AssetIdentifier]
		if equipment != nil && equipment.ShipmentIdentifier != "" {
			shipment, err := p.Repository.ActiveShipment(ctx, equipment.ShipmentIdentifier)
			if err != nil {
				return fmt.Errorf("failed to locate active shipment %s: %w", equipment.ShipmentIdentifier, err)
			}

			if shipment != nil {
				if err := p.detectCrossings(ctx, ping, shipment, positions); err != nil {
					return err
				}
			}
		}

		positions.update(rawPing.AssetIdentifier, ping.Location)
	}

	if len(persistable) == 0 {
		log.Info().Int("received", len(rawPings)).Msg("No valid pings to persist")
		return nil
	}

	if err := p.Repository.InsertPings(ctx, persistable); err != nil {
		return fmt.Errorf("failed to bulk insert pings: %w", err)
	}

	log.Info().
		Int("received", len(rawPings)).
		Int("persisted", len(persistable)).
		Msg("Ingested ping batch")

	return nil
}
