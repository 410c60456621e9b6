package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Nombres de colecciones compartidos con los datos existentes.
const (
	usersCollection       = "users"
	missingPetsCollection = "missing-pets"
	foundPetsCollection   = "found-pets"
	sheltersCollection    = "shelters"
	eventsCollection      = "pet-events"
)

// DB es el handle de larga vida; se crea al arrancar y se cierra al apagar.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

func Open(ctx context.Context, uri, database string) (*DB, error) {
	client, err := mongo.Connect(options.Client().
		ApplyURI(uri).
		SetBSONOptions(bsonOptions).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &DB{client: client, db: client.Database(database)}, nil
}

func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

func (d *DB) Database() *mongo.Database {
	return d.db
}

// EnsureIndexes crea los índices que sostienen las invariantes (email único, etc).
func (d *DB) EnsureIndexes(ctx context.Context) error {
	specs := []struct {
		coll  string
		model mongo.IndexModel
	}{
		{usersCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{missingPetsCollection, mongo.IndexModel{
			Keys: bson.D{{Key: "userId", Value: 1}},
		}},
		{foundPetsCollection, mongo.IndexModel{
			Keys: bson.D{{Key: "status", Value: 1}},
		}},
		{sheltersCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{eventsCollection, mongo.IndexModel{
			Keys: bson.D{{Key: "petId", Value: 1}, {Key: "occurredAt", Value: 1}},
		}},
	}

	for _, s := range specs {
		if _, err := d.db.Collection(s.coll).Indexes().CreateOne(ctx, s.model); err != nil {
			return fmt.Errorf("create index on %s: %w", s.coll, err)
		}
	}
	return nil
}
