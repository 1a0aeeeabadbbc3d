package margdf

// Equipment links an asset to at most one shipment at a time
type Equipment struct {
	AssetIdentifier    string `groups:"basic"`
	ShipmentIdentifier string `groups:"basic"`
}
