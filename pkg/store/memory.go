package store

import (
	"context"
	"sync"
	"time"

	"github.com/JaiBansal007/Marg-Gps/pkg/margdf"
)

// Memory is an in-memory Repository used in tests and local development. It
// counts bulk lookups so tests can assert the one-round-trip-per-kind
// contract.
type Memory struct {
	mutex sync.Mutex

	assets    map[string]*margdf.Asset
	vendors   map[string]*margdf.Vendor
	equipment map[string]*margdf.Equipment
	shipments map[string]*margdf.Shipment
	stops     map[string]*margdf.Stop
	details   map[string]*margdf.GpsDetail
	pings     []*margdf.Ping

	stopUpdateErrors map[string]error

	AssetLookups     int
	VendorLookups    int
	EquipmentLookups int
	LastPingLookups  int
}

func NewMemory() *Memory {
	return &Memory{
		assets:    map[string]*margdf.Asset{},
		vendors:   map[string]*margdf.Vendor{},
		equipment: map[string]*margdf.Equipment{},
		shipments: map[string]*margdf.Shipment{},
		stops:     map[string]*margdf.Stop{},
		details:   map[string]*margdf.GpsDetail{},

		stopUpdateErrors: map[string]error{},
	}
}

// FailStopUpdates makes every subsequent entry/exit update for the given
// stop return err, leaving the stop record untouched
func (m *Memory) FailStopUpdates(stopIdentifier string, err error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.stopUpdateErrors[stopIdentifier] = err
}

func (m *Memory) AddAsset(asset *margdf.Asset) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.assets[asset.PrimaryIdentifier] = asset
}

func (m *Memory) AddVendor(vendor *margdf.Vendor) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.vendors[vendor.Name] = vendor
}

func (m *Memory) AddEquipment(equipment *margdf.Equipment) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.equipment[equipment.AssetIdentifier] = equipment
}

func (m *Memory) AddShipment(shipment *margdf.Shipment) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.shipments[shipment.PrimaryIdentifier] = shipment
}

func (m *Memory) AddStop(stop *margdf.Stop) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.stops[stop.PrimaryIdentifier] = stop
}

func (m *Memory) AddGpsDetail(detail *margdf.GpsDetail) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.details[detail.ShipmentIdentifier] = detail
}

// Stop returns the live stop record so tests can inspect mutations
func (m *Memory) Stop(stopIdentifier string) *margdf.Stop {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.stops[stopIdentifier]
}

func (m *Memory) AssetsByIdentifiers(ctx context.Context, identifiers []string) (map[string]*margdf.Asset, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.AssetLookups += 1

	assets := map[string]*margdf.Asset{}
	for _, identifier := range identifiers {
		if asset, found := m.assets[identifier]; found {
			assets[identifier] = asset
		}
	}

	return assets, nil
}

func (m *Memory) VendorsByNames(ctx context.Context, names []string) (map[string]*margdf.Vendor, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.VendorLookups += 1

	vendors := map[string]*margdf.Vendor{}
	for _, name := range names {
		if vendor, found := m.vendors[name]; found {
			vendors[name] = vendor
		}
	}

	return vendors, nil
}

func (m *Memory) EquipmentByAssets(ctx context.Context, identifiers []string) (map[string]*margdf.Equipment, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.EquipmentLookups += 1

	equipment := map[string]*margdf.Equipment{}
	for _, identifier := range identifiers {
		if record, found := m.equipment[identifier]; found {
			equipment[identifier] = record
		}
	}

	return equipment, nil
}

func (m *Memory) ActiveShipment(ctx context.Context, shipmentIdentifier string) (*margdf.Shipment, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	shipment, found := m.shipments[shipmentIdentifier]
	if !found || shipment.Status != margdf.ShipmentStatusActive {
		return nil, nil
	}

	return shipment, nil
}

func (m *Memory) ShipmentStops(ctx context.Context, shipmentIdentifier string) ([]*margdf.Stop, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	var stops []*margdf.Stop
	for _, stop := range m.stops {
		if stop.ShipmentIdentifier == shipmentIdentifier {
			stops = append(stops, stop)
		}
	}

	return stops, nil
}

func (m *Memory) GpsDetail(ctx context.Context, shipmentIdentifier string) (*margdf.GpsDetail, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.details[shipmentIdentifier], nil
}

func (m *Memory) LastPing(ctx context.Context, assetIdentifier string) (*margdf.Ping, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.LastPingLookups += 1

	var last *margdf.Ping
	for _, ping := range m.pings {
		if ping.AssetIdentifier != assetIdentifier {
			continue
		}

		if last == nil || ping.EffectiveTimestamp >= last.EffectiveTimestamp {
			last = ping
		}
	}

	return last, nil
}

func (m *Memory) PingsByAsset(ctx context.Context, assetIdentifier string) ([]*margdf.Ping, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	pings := []*margdf.Ping{}
	for _, ping := range m.pings {
		if ping.AssetIdentifier == assetIdentifier {
			pings = append(pings, ping)
		}
	}

	return pings, nil
}

func (m *Memory) InsertPings(ctx context.Context, pings []*margdf.Ping) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.pings = append(m.pings, pings...)

	return nil
}

func (m *Memory) SetStopEntry(ctx context.Context, stopIdentifier string, entryTime time.Time, visitSequence *int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if err := m.stopUpdateErrors[stopIdentifier]; err != nil {
		return err
	}

	stop, found := m.stops[stopIdentifier]
	if !found {
		return nil
	}

	entry := entryTime
	stop.EntryTime = &entry

	if visitSequence != nil {
		sequence := *visitSequence
		stop.VisitSequence = &sequence
	}

	return nil
}

func (m *Memory) SetStopExit(ctx context.Context, stopIdentifier string, exitTime time.Time) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if err := m.stopUpdateErrors[stopIdentifier]; err != nil {
		return err
	}

	stop, found := m.stops[stopIdentifier]
	if !found {
		return nil
	}

	exit := exitTime
	stop.ExitTime = &exit

	return nil
}
