package testutil

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"songrate/internal/models"
)

// SongBuilder provides a fluent interface for creating test songs
type SongBuilder struct {
	song *models.Song
}

// NewSongBuilder creates a new song builder with default values
func NewSongBuilder() *SongBuilder {
	released := time.Date(2016, 10, 26, 0, 0, 0, 0, time.UTC)
	return &SongBuilder{
		song: models.NewSong("Test Artist", "Test Song", 9.5, 9, released),
	}
}

// WithID sets the song ID
func (b *SongBuilder) WithID(id string) *SongBuilder {
	objID, _ := primitive.ObjectIDFromHex(id)
	b.song.ID = objID
	return b
}

// WithArtist sets the song artist
func (b *SongBuilder) WithArtist(artist string) *SongBuilder {
	b.song.Artist = artist
	return b
}

// WithTitle sets the song title
func (b *SongBuilder) WithTitle(title string) *SongBuilder {
	b.song.Title = title
	return b
}

// WithDifficulty sets the song difficulty
func (b *SongBuilder) WithDifficulty(difficulty float64) *SongBuilder {
	b.song.Difficulty = difficulty
	return b
}

// WithLevel sets the song level
func (b *SongBuilder) WithLevel(level int) *SongBuilder {
	b.song.Level = level
	return b
}

// WithReleased sets the release date
func (b *SongBuilder) WithReleased(released time.Time) *SongBuilder {
	b.song.Released = released
	return b
}

// Build returns the constructed song
func (b *SongBuilder) Build() *models.Song {
	return b.song
}
