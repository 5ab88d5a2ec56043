package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"songrate/internal/models"
	"songrate/internal/pagination"
)

// mongoSongRepository implements SongRepository interface using MongoDB
type mongoSongRepository struct {
	collection      *mongo.Collection
	defaultPageSize int
	maxPageSize     int
}

// NewMongoSongRepository creates a new MongoDB-backed song repository
func NewMongoSongRepository(db *models.Database, defaultPageSize, maxPageSize int) SongRepository {
	return &mongoSongRepository{
		collection:      db.DB.Collection("songs"),
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// List returns one page of songs plus the total count
func (r *mongoSongRepository) List(ctx context.Context, page, size int) ([]models.Song, int64, error) {
	size = pagination.ClampSize(size, r.defaultPageSize, r.maxPageSize)
	skip := pagination.Offset(page, size)

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count songs: %w", err)
	}

	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(size))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list songs: %w", err)
	}
	defer cursor.Close(ctx)

	songs := []models.Song{}
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode songs: %w", err)
	}

	return songs, total, nil
}

// AverageDifficulty computes the mean difficulty, optionally filtered by level
func (r *mongoSongRepository) AverageDifficulty(ctx context.Context, level *int) (float64, error) {
	pipeline := []bson.M{}
	if level != nil {
		pipeline = append(pipeline, bson.M{"$match": bson.M{"level": *level}})
	}
	pipeline = append(pipeline, bson.M{
		"$group": bson.M{
			"_id": nil,
			"avg": bson.M{"$avg": "$difficulty"},
		},
	})

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate difficulty: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Avg float64 `bson:"avg"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, fmt.Errorf("failed to decode difficulty aggregate: %w", err)
		}
	}

	// No matching songs leaves the zero value
	return result.Avg, cursor.Err()
}

// SearchByText performs full-text search on artist and title
func (r *mongoSongRepository) SearchByText(ctx context.Context, message string) ([]models.Song, error) {
	filter := bson.M{
		"$text": bson.M{
			"$search": message,
		},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search songs: %w", err)
	}
	defer cursor.Close(ctx)

	songs := []models.Song{}
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}

	return songs, nil
}

// FindByID finds a song by its ObjectID. A malformed id and a missing song
// are the same failure from the caller's point of view.
func (r *mongoSongRepository) FindByID(ctx context.Context, id string) (*models.Song, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSongNotFound, id)
	}

	var song models.Song
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&song)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: %s", ErrSongNotFound, id)
		}
		return nil, fmt.Errorf("failed to find song by ID: %w", err)
	}

	return &song, nil
}

// SaveMany inserts songs in bulk
func (r *mongoSongRepository) SaveMany(ctx context.Context, songs []models.Song) error {
	if len(songs) == 0 {
		return nil
	}

	docs := make([]interface{}, len(songs))
	for i := range songs {
		docs[i] = songs[i]
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to save songs in bulk: %w", err)
	}

	return nil
}
