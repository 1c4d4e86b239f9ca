package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by the gateway.
const (
	Users    = "users"
	Resorts  = "allResorts"
	Bookings = "allBookings"

	// Payments is reserved for a future payment endpoint; nothing reads or
	// writes it yet.
	Payments = "paymentInfo"
)

// DB holds the process-wide Mongo client and the target database.
// It is established once at startup and closed on shutdown.
type DB struct {
	client *mongo.Client
	*mongo.Database
}

func Open(ctx context.Context, uri, name string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &DB{client: client, Database: client.Database(name)}, nil
}

func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique email index on users, backing the
// one-user-per-email invariant even when two creates race the handler's
// existence check.
func EnsureIndexes(ctx context.Context, d *DB) error {
	_, err := d.Collection(Users).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
