// Package store exposes the persistence operations the ingestion core needs
// as an explicit repository, so a MongoDB store and an in-memory store are
// interchangeable.
package store

import (
	"context"
	"time"

	"github.com/JaiBansal007/Marg-Gps/pkg/margdf"
)

type Repository interface {
	// Bulk reference lookups - a single round trip per entity kind
	// regardless of batch size. Missing keys are simply absent from the
	// returned maps.
	AssetsByIdentifiers(ctx context.Context, identifiers []string) (map[string]*margdf.Asset, error)
	VendorsByNames(ctx context.Context, names []string) (map[string]*margdf.Vendor, error)
	EquipmentByAssets(ctx context.Context, identifiers []string) (map[string]*margdf.Equipment, error)

	// ActiveShipment returns the shipment with the given identifier and
	// status Active, or nil when none exists
	ActiveShipment(ctx context.Context, shipmentIdentifier string) (*margdf.Shipment, error)
	ShipmentStops(ctx context.Context, shipmentIdentifier string) ([]*margdf.Stop, error)
	GpsDetail(ctx context.Context, shipmentIdentifier string) (*margdf.GpsDetail, error)

	// LastPing returns the asset's most recently persisted ping by
	// effective timestamp, or nil when the asset has never reported
	LastPing(ctx context.Context, assetIdentifier string) (*margdf.Ping, error)
	PingsByAsset(ctx context.Context, assetIdentifier string) ([]*margdf.Ping, error)
	InsertPings(ctx context.Context, pings []*margdf.Ping) error

	// SetStopEntry stamps the stop's entry time and, when visitSequence is
	// non-nil, assigns its visit sequence in the same update
	SetStopEntry(ctx context.Context, stopIdentifier string, entryTime time.Time, visitSequence *int) error
	SetStopExit(ctx context.Context, stopIdentifier string, exitTime time.Time) error
}
