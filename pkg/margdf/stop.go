package margdf

import "time"

// Stop belongs to exactly one shipment. EntryTime, ExitTime and
// VisitSequence are the only fields the ingestion core ever mutates.
type Stop struct {
	PrimaryIdentifier  string `groups:"basic"`
	ShipmentIdentifier string `groups:"basic"`

	Name string `groups:"basic"`

	Location       *Location `groups:"basic"`
	GeofenceRadius float64   `groups:"basic"` // metres

	EntryTime     *time.Time `groups:"basic"`
	ExitTime      *time.Time `groups:"basic"`
	VisitSequence *int       `groups:"basic"`
}

// HasGeofence reports whether the stop carries enough geofence configuration
// for crossing detection. Stops without it are skipped by the detector.
func (s *Stop) HasGeofence() bool {
	return s.Location != nil && len(s.Location.Coordinates) == 2 && s.GeofenceRadius > 0
}
