package repositories

import (
	"context"
	"errors"

	"songrate/internal/models"
)

// ErrSongNotFound is returned when a song id is malformed or no song with
// that id exists. The two cases are deliberately collapsed into one error:
// callers never learn whether a missing song was a bad id or a real miss.
var ErrSongNotFound = errors.New("song not found")

// ErrInvalidSongID is returned when a supplied song id is not a well-formed
// ObjectID hex string.
var ErrInvalidSongID = errors.New("invalid song id")

// SongRepository defines the interface for song data operations
type SongRepository interface {
	// List returns one page of songs in natural order along with the total
	// unfiltered count. Pages past the end of the data yield an empty slice.
	List(ctx context.Context, page, size int) ([]models.Song, int64, error)

	// AverageDifficulty computes the mean difficulty over all songs,
	// optionally restricted to a single level. An empty set yields 0.0.
	AverageDifficulty(ctx context.Context, level *int) (float64, error)

	// SearchByText runs a case-insensitive text-index search over artist
	// and title.
	SearchByText(ctx context.Context, message string) ([]models.Song, error)

	// FindByID fetches a single song, failing with ErrSongNotFound for both
	// malformed and unknown ids.
	FindByID(ctx context.Context, id string) (*models.Song, error)

	// SaveMany inserts songs in bulk
	SaveMany(ctx context.Context, songs []models.Song) error
}
