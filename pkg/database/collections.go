package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createReferenceIndexes()
	createShipmentIndexes()
	createPingIndexes()
}

func createReferenceIndexes() {
	assetsCollection := GetCollection("assets")
	assetsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := assetsCollection.Indexes().CreateMany(context.Background(), assetsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}

	vendorsCollection := GetCollection("vendors")
	vendorsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "name", Value: 1}},
		},
	}

	opts = options.CreateIndexes()
	_, err = vendorsCollection.Indexes().CreateMany(context.Background(), vendorsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}

	equipmentCollection := GetCollection("equipment")
	equipmentIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "assetidentifier", Value: 1}},
		},
	}

	opts = options.CreateIndexes()
	_, err = equipmentCollection.Indexes().CreateMany(context.Background(), equipmentIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createShipmentIndexes() {
	shipmentsCollection := GetCollection("shipments")
	shipmentsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}, {Key: "status", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := shipmentsCollection.Indexes().CreateMany(context.Background(), shipmentsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}

	stopsCollection := GetCollection("stops")
	stopsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "primaryidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "shipmentidentifier", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "location.coordinates", Value: "2d"}},
		},
	}

	opts = options.CreateIndexes()
	_, err = stopsCollection.Indexes().CreateMany(context.Background(), stopsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}

	gpsDetailsCollection := GetCollection("gps_details")
	gpsDetailsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "shipmentidentifier", Value: 1}},
		},
	}

	opts = options.CreateIndexes()
	_, err = gpsDetailsCollection.Indexes().CreateMany(context.Background(), gpsDetailsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createPingIndexes() {
	// The last-known-position query is (assetidentifier, effectivetimestamp desc)
	pingsCollection := GetCollection("pings")
	pingsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "assetidentifier", Value: 1}, {Key: "effectivetimestamp", Value: -1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := pingsCollection.Indexes().CreateMany(context.Background(), pingsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
