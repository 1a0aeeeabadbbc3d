package margdf

import "time"

type CrossingEventType string

const (
	CrossingEventEntry CrossingEventType = "entry"
	CrossingEventExit  CrossingEventType = "exit"
)

// StopCrossingEvent records an asset transitioning across a stop's geofence
// boundary. Published for downstream consumers (live tracking, reporting).
type StopCrossingEvent struct {
	Type CrossingEventType `groups:"basic"`

	AssetIdentifier    string `groups:"basic"`
	ShipmentIdentifier string `groups:"basic"`
	StopIdentifier     string `groups:"basic"`

	Location *Location `groups:"basic"`

	// VisitSequence is only set on entry events
	VisitSequence *int `groups:"basic"`

	ReportingFrequency int `groups:"basic"`

	OccurredAt time.Time `groups:"basic"`
}
