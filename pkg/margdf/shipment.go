package margdf

const ShipmentStatusActive = "Active"

type Shipment struct {
	PrimaryIdentifier string `groups:"basic"`
	Status            string `groups:"basic"`
}
