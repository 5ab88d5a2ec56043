package services

import (
	"errors"
	"time"

	"songrate/internal/models"
)

// ErrNotFound is the domain-level error for a malformed or unknown song id.
// Handlers map it to HTTP 404.
var ErrNotFound = errors.New("not found")

// releasedFormat is the wire format for release dates
const releasedFormat = "2006-01-02"

// SongEntity is the API-facing representation of a song document: the
// ObjectID is stringified and the release date is formatted as YYYY-MM-DD.
type SongEntity struct {
	ID         string  `json:"id"`
	Artist     string  `json:"artist"`
	Title      string  `json:"title"`
	Difficulty float64 `json:"difficulty"`
	Level      int     `json:"level"`
	Released   string  `json:"released"`
}

// RatingEntity is the API-facing representation of a stored rating
type RatingEntity struct {
	ID     string `json:"id"`
	SongID string `json:"song_id"`
	Rating int    `json:"rating"`
}

// RatingStatsEntity holds aggregate rating statistics for one song
type RatingStatsEntity struct {
	Average float64 `json:"average"`
	Lowest  int     `json:"lowest"`
	Highest int     `json:"highest"`
}

// newSongEntity maps a song document to its API-facing shape
func newSongEntity(song models.Song) SongEntity {
	return SongEntity{
		ID:         song.ID.Hex(),
		Artist:     song.Artist,
		Title:      song.Title,
		Difficulty: song.Difficulty,
		Level:      song.Level,
		Released:   song.Released.Format(releasedFormat),
	}
}

// ParseReleased parses a YYYY-MM-DD release date into its stored form
func ParseReleased(s string) (time.Time, error) {
	return time.Parse(releasedFormat, s)
}
