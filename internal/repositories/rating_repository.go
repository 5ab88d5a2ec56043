package repositories

import (
	"context"

	"songrate/internal/models"
)

// RatingRepository defines the interface for rating data operations
type RatingRepository interface {
	// Add persists a new rating for a song. The song id must be a
	// well-formed ObjectID but is not checked against the songs collection.
	Add(ctx context.Context, songID string, value int) (*models.Rating, error)

	// Stats computes average, lowest and highest rating for a song. Zero
	// matching ratings yield zero-value stats, not an error.
	Stats(ctx context.Context, songID string) (models.RatingStats, error)
}
