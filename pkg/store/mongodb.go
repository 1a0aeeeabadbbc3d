package store

import (
	"context"
	"time"

	"github.com/JaiBansal007/Marg-Gps/pkg/database"
	"github.com/JaiBansal007/Marg-Gps/pkg/margdf"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB is the production Repository backed by the global Mongo instance
type MongoDB struct{}

func NewMongoDB() *MongoDB {
	return &MongoDB{}
}

func (m *MongoDB) AssetsByIdentifiers(ctx context.Context, identifiers []string) (map[string]*margdf.Asset, error) {
	assets := map[string]*margdf.Asset{}

	if len(identifiers) == 0 {
		return assets, nil
	}

	assetsCollection := database.GetCollection("assets")
	cursor, err := assetsCollection.Find(ctx, bson.M{"primaryidentifier": bson.M{"$in": identifiers}})
	if err != nil {
		return nil, err
	}

	for cursor.Next(ctx) {
		var asset *margdf.Asset
		if err := cursor.Decode(&asset); err != nil {
			return nil, err
		}

		assets[asset.PrimaryIdentifier] = asset
	}

	return assets, cursor.Err()
}

func (m *MongoDB) VendorsByNames(ctx context.Context, names []string) (map[string]*margdf.Vendor, error) {
	vendors := map[string]*margdf.Vendor{}

	if len(names) == 0 {
		return vendors, nil
	}

	vendorsCollection := database.GetCollection("vendors")
	cursor, err := vendorsCollection.Find(ctx, bson.M{"name": bson.M{"$in": names}})
	if err != nil {
		return nil, err
	}

	for cursor.Next(ctx) {
		var vendor *margdf.Vendor
		if err := cursor.Decode(&vendor); err != nil {
			return nil, err
		}

		vendors[vendor.Name] = vendor
	}

	return vendors, cursor.Err()
}

func (m *MongoDB) EquipmentByAssets(ctx context.Context, identifiers []string) (map[string]*margdf.Equipment, error) {
	equipment := map[string]*margdf.Equipment{}

	if len(identifiers) == 0 {
		return equipment, nil
	}

	equipmentCollection := database.GetCollection("equipment")
	cursor, err := equipmentCollection.Find(ctx, bson.M{"assetidentifier": bson.M{"$in": identifiers}})
	if err != nil {
		return nil, err
	}

	for cursor.Next(ctx) {
		var record *margdf.Equipment
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}

		equipment[record.AssetIdentifier] = record
	}

	return equipment, cursor.Err()
}

func (m *MongoDB) ActiveShipment(ctx context.Context, shipmentIdentifier string) (*margdf.Shipment, error) {
	shipmentsCollection := database.GetCollection("shipments")

	var shipment *margdf.Shipment
	err := shipmentsCollection.FindOne(ctx, bson.M{
		"primaryidentifier": shipmentIdentifier,
		"status":            margdf.ShipmentStatusActive,
	}).Decode(&shipment)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}

	return shipment, err
}

func (m *MongoDB) ShipmentStops(ctx context.Context, shipmentIdentifier string) ([]*margdf.Stop, error) {
	stopsCollection := database.GetCollection("stops")

	cursor, err := stopsCollection.Find(ctx, bson.M{"shipmentidentifier": shipmentIdentifier})
	if err != nil {
		return nil, err
	}

	var stops []*margdf.Stop
	for cursor.Next(ctx) {
		var stop *margdf.Stop
		if err := cursor.Decode(&stop); err != nil {
			return nil, err
		}

		stops = append(stops, stop)
	}

	return stops, cursor.Err()
}

func (m *MongoDB) GpsDetail(ctx context.Context, shipmentIdentifier string) (*margdf.GpsDetail, error) {
	gpsDetailsCollection := database.GetCollection("gps_details")

	var detail *margdf.GpsDetail
	err := gpsDetailsCollection.FindOne(ctx, bson.M{"shipmentidentifier": shipmentIdentifier}).Decode(&detail)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}

	return detail, err
}

func (m *MongoDB) LastPing(ctx context.Context, assetIdentifier string) (*margdf.Ping, error) {
	pingsCollection := database.GetCollection("pings")

	opts := options.FindOne().SetSort(bson.D{{Key: "effectivetimestamp", Value: -1}})

	var ping *margdf.Ping
	err := pingsCollection.FindOne(ctx, bson.M{"assetidentifier": assetIdentifier}, opts).Decode(&ping)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}

	return ping, err
}

func (m *MongoDB) PingsByAsset(ctx context.Context, assetIdentifier string) ([]*margdf.Ping, error) {
	pingsCollection := database.GetCollection("pings")

	cursor, err := pingsCollection.Find(ctx, bson.M{"assetidentifier": assetIdentifier})
	if err != nil {
		return nil, err
	}

	pings := []*margdf.Ping{}
	for cursor.Next(ctx) {
		var ping *margdf.Ping
		if err := cursor.Decode(&ping); err != nil {
			return nil, err
		}

		pings = append(pings, ping)
	}

	return pings, cursor.Err()
}

func (m *MongoDB) InsertPings(ctx context.Context, pings []*margdf.Ping) error {
	if len(pings) == 0 {
		return nil
	}

	documents := make([]interface{}, len(pings))
	for i, ping := range pings {
		documents[i] = ping
	}

	pingsCollection := database.GetCollection("pings")
	_, err := pingsCollection.InsertMany(ctx, documents, options.InsertMany().SetOrdered(true))

	return err
}

func (m *MongoDB) SetStopEntry(ctx context.Context, stopIdentifier string, entryTime time.Time, visitSequence *int) error {
	set := bson.M{"entrytime": entryTime}
	if visitSequence != nil {
		set["visitsequence"] = *visitSequence
	}

	stopsCollection := database.GetCollection("stops")
	_, err := stopsCollection.UpdateOne(ctx, bson.M{"primaryidentifier": stopIdentifier}, bson.M{"$set": set})

	return err
}

func (m *MongoDB) SetStopExit(ctx context.Context, stopIdentifier string, exitTime time.Time) error {
	stopsCollection := database.GetCollection("stops")
	_, err := stopsCollection.UpdateOne(ctx, bson.M{"primaryidentifier": stopIdentifier}, bson.M{"$set": bson.M{"exittime": exitTime}})

	return err
}
