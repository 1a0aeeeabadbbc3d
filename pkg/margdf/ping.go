package margdf

import (
	"encoding/json"
	"math"
	"time"
)

// RawPing is one telemetry observation exactly as a vendor feed supplies it.
// It only lives for the duration of a single ingestion call.
type RawPing struct {
	AssetIdentifier  string `json:"assetIdentifier"`
	VendorIdentifier string `json:"vendorIdentifier"`

	PrimaryTimestamp   Timestamp `json:"primaryTimestamp"`
	SecondaryTimestamp Timestamp `json:"secondaryTimestamp"`

	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`

	Heading        float64 `json:"heading"`
	Speed          float64 `json:"speed"`
	SatelliteCount int     `json:"satelliteCount"`
	DigitalInput1  bool    `json:"digitalInput1"`
	BatteryLevel   float64 `json:"batteryLevel"`
}

// UnmarshalJSON defaults both vendor clocks to NaN so a feed that omits a
// timestamp field is treated the same as one sending an unparseable value
func (p *RawPing) UnmarshalJSON(data []byte) error {
	type rawPingAlias RawPing

	alias := rawPingAlias{
		PrimaryTimestamp:   Timestamp(math.NaN()),
		SecondaryTimestamp: Timestamp(math.NaN()),
	}

	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	*p = RawPing(alias)
	return nil
}

func (p *RawPing) Location() *Location {
	return NewPointLocation(p.Longitude, p.Latitude)
}

// Ping is the validated, reconciled observation as persisted
type Ping struct {
	AssetIdentifier  string `groups:"basic"`
	VendorIdentifier string `groups:"basic"`

	// EffectiveTimestamp is the reconciled observation time in epoch
	// seconds, 0 meaning unknown
	EffectiveTimestamp float64 `groups:"basic"`

	PrimaryTimestamp   Timestamp `groups:"detailed"`
	SecondaryTimestamp Timestamp `groups:"detailed"`

	Location *Location `groups:"basic"`

	Heading        float64 `groups:"basic"`
	Speed          float64 `groups:"basic"`
	SatelliteCount int     `groups:"detailed"`
	DigitalInput1  bool    `groups:"detailed"`
	BatteryLevel   float64 `groups:"detailed"`

	RecordedAt time.Time `groups:"basic"`
}

func (p *RawPing) ToPing(recordedAt time.Time) *Ping {
	return &Ping{
		AssetIdentifier:  p.AssetIdentifier,
		VendorIdentifier: p.VendorIdentifier,

		EffectiveTimestamp: ReconcileTimestamps(p.PrimaryTimestamp, p.SecondaryTimestamp),
		PrimaryTimestamp:   p.PrimaryTimestamp,
		SecondaryTimestamp: p.SecondaryTimestamp,

		Location: p.Location(),

		Heading:        p.Heading,
		Speed:          p.Speed,
		SatelliteCount: p.SatelliteCount,
		DigitalInput1:  p.DigitalInput1,
		BatteryLevel:   p.BatteryLevel,

		RecordedAt: recordedAt,
	}
}
