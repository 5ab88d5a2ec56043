package services

import (
	"context"
	"errors"
	"fmt"

	"songrate/internal/repositories"
)

// RatingService orchestrates rating operations and maps results to entities
type RatingService interface {
	AddRating(ctx context.Context, songID string, value int) (RatingEntity, error)
	GetStats(ctx context.Context, songID string) (RatingStatsEntity, error)
}

type ratingService struct {
	repo repositories.RatingRepository
}

// NewRatingService creates a new rating service backed by the given repository
func NewRatingService(repo repositories.RatingRepository) RatingService {
	return &ratingService{repo: repo}
}

// AddRating persists a new rating, translating an invalid song id into the
// domain not-found error
func (s *ratingService) AddRating(ctx context.Context, songID string, value int) (RatingEntity, error) {
	rating, err := s.repo.Add(ctx, songID, value)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidSongID) {
			return RatingEntity{}, fmt.Errorf("%w: song %s", ErrNotFound, songID)
		}
		return RatingEntity{}, err
	}

	return RatingEntity{
		ID:     rating.ID.Hex(),
		SongID: rating.SongID.Hex(),
		Rating: rating.Rating,
	}, nil
}

// GetStats fetches aggregate rating statistics for a song. A song with no
// ratings yields zero-value stats rather than an error.
func (s *ratingService) GetStats(ctx context.Context, songID string) (RatingStatsEntity, error) {
	stats, err := s.repo.Stats(ctx, songID)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidSongID) {
			return RatingStatsEntity{}, fmt.Errorf("%w: song %s", ErrNotFound, songID)
		}
		return RatingStatsEntity{}, err
	}

	return RatingStatsEntity{
		Average: stats.Average,
		Lowest:  stats.Lowest,
		Highest: stats.Highest,
	}, nil
}
