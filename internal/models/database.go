package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Database represents the database connection
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// NewDatabase creates a new database connection
func NewDatabase(ctx context.Context, mongoURI, dbName string) (*Database, error) {
	// Set client options
	clientOptions := options.Client().
		ApplyURI(mongoURI).
		SetMaxPoolSize(20).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(30 * time.Second).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	// Connect to MongoDB
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping the database to verify connection
	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		return nil, err
	}

	db := client.Database(dbName)

	return &Database{
		Client: client,
		DB:     db,
	}, nil
}

// Ping verifies the database connection is still alive
func (d *Database) Ping(ctx context.Context) error {
	return d.Client.Ping(ctx, readpref.Primary())
}

// Close closes the database connection
func (d *Database) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}

// CreateIndexes creates necessary indexes for optimal performance
func (d *Database) CreateIndexes(ctx context.Context) error {
	songs := d.DB.Collection("songs")

	songIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "artist", Value: "text"},
				{Key: "title", Value: "text"},
			},
			Options: options.Index().SetDefaultLanguage("english"),
		},
		{
			Keys: bson.D{{Key: "level", Value: 1}},
		},
	}

	if _, err := songs.Indexes().CreateMany(ctx, songIndexes); err != nil {
		return err
	}

	ratings := d.DB.Collection("ratings")

	ratingIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "song_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "song_id", Value: 1}, {Key: "rating", Value: 1}},
		},
	}

	_, err := ratings.Indexes().CreateMany(ctx, ratingIndexes)
	return err
}
