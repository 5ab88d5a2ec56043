package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"songrate/internal/models"
)

// mongoRatingRepository implements RatingRepository interface using MongoDB
type mongoRatingRepository struct {
	collection *mongo.Collection
}

// NewMongoRatingRepository creates a new MongoDB-backed rating repository
func NewMongoRatingRepository(db *models.Database) RatingRepository {
	return &mongoRatingRepository{
		collection: db.DB.Collection("ratings"),
	}
}

// Add persists a new rating and returns the created record
func (r *mongoRatingRepository) Add(ctx context.Context, songID string, value int) (*models.Rating, error) {
	objectID, err := primitive.ObjectIDFromHex(songID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSongID, songID)
	}

	rating := models.Rating{
		SongID: objectID,
		Rating: value,
	}

	result, err := r.collection.InsertOne(ctx, rating)
	if err != nil {
		return nil, fmt.Errorf("failed to insert rating: %w", err)
	}
	rating.ID = result.InsertedID.(primitive.ObjectID)

	return &rating, nil
}

// Stats runs the avg/min/max aggregation over all ratings for one song
func (r *mongoRatingRepository) Stats(ctx context.Context, songID string) (models.RatingStats, error) {
	var stats models.RatingStats

	objectID, err := primitive.ObjectIDFromHex(songID)
	if err != nil {
		return stats, fmt.Errorf("%w: %s", ErrInvalidSongID, songID)
	}

	pipeline := []bson.M{
		{"$match": bson.M{"song_id": objectID}},
		{
			"$group": bson.M{
				"_id": nil,
				"avg": bson.M{"$avg": "$rating"},
				"min": bson.M{"$min": "$rating"},
				"max": bson.M{"$max": "$rating"},
			},
		},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return stats, fmt.Errorf("failed to aggregate ratings: %w", err)
	}
	defer cursor.Close(ctx)

	if cursor.Next(ctx) {
		if err := cursor.Decode(&stats); err != nil {
			return models.RatingStats{}, fmt.Errorf("failed to decode rating stats: %w", err)
		}
	}

	// A song with no ratings keeps the zero-value stats
	return stats, cursor.Err()
}
