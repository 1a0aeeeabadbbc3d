package margdf

const DefaultReportingFrequency = 3600

// GpsDetail is per-shipment GPS configuration. The reporting frequency is
// only used as a default fallback on crossing events, never enforced.
type GpsDetail struct {
	ShipmentIdentifier string `groups:"basic"`
	ReportingFrequency int    `groups:"basic"` // seconds
}
