package tracker

import (
	"context"

	"github.com/JaiBansal007/Marg-Gps/pkg/margdf"
	"github.com/JaiBansal007/Marg-Gps/pkg/store"
)

// positionCache holds each asset's last known position for the duration of
// one batch. Seeded from the store on first use, then updated in place as
// the batch assigns new effective positions, so later pings in the batch
// observe earlier ones without a store query per (ping, stop) pair.
type positionCache struct {
	repository store.Repository

	positions map[string]*margdf.Location
	seeded    map[string]bool
}

func newPositionCache(repository store.Repository) *positionCache {
	return &positionCache{
		repository: repository,

		positions: map[string]*margdf.Location{},
		seeded:    map[string]bool{},
	}
}

// previous returns the asset's last known position, nil when the asset has
// never reported (first-ever pings start outside every fence)
func (c *positionCache) previous(ctx context.Context, assetIdentifier string) (*margdf.Location, error) {
	if location, found := c.positions[assetIdentifier]; found {
		return location, nil
	}

	if c.seeded[assetIdentifier] {
		return nil, nil
	}
	c.seeded[assetIdentifier] = true

	ping, err := c.repository.LastPing(ctx, assetIdentifier)
	if err != nil {
		return nil, err
	}

	if ping == nil {
		return nil, nil
	}

	c.positions[assetIdentifier] = ping.Location

	return ping.Location, nil
}

func (c *positionCache) update(assetIdentifier string, location *margdf.Location) {
	c.seeded[assetIdentifier] = true
	c.positions[assetIdentifier] = location
}
