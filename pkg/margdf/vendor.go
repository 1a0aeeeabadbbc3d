package margdf

// Vendor is a telemetry provider. Pings carry the vendor name, and a vendor
// that has been explicitly disabled invalidates every ping it sends.
type Vendor struct {
	PrimaryIdentifier string `groups:"basic"`
	Name              string `groups:"basic"`
	Active            bool   `groups:"basic"`
}
