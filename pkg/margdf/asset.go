package margdf

// Asset is a fleet vehicle or trailer tracked by a unique identifier. Assets
// are registered by the fleet management backend and only read here.
type Asset struct {
	PrimaryIdentifier string `groups:"basic"`
	Type              string `groups:"basic"`
	Active            bool   `groups:"basic"`
}
