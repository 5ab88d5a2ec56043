package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Song represents a song document in the songs collection
type Song struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Artist     string             `bson:"artist" json:"artist"`
	Title      string             `bson:"title" json:"title"`
	Difficulty float64            `bson:"difficulty" json:"difficulty"`
	Level      int                `bson:"level" json:"level"`
	Released   time.Time          `bson:"released" json:"released"`
}

// NewSong creates a new Song with the given metadata
func NewSong(artist, title string, difficulty float64, level int, released time.Time) *Song {
	return &Song{
		Artist:     artist,
		Title:      title,
		Difficulty: difficulty,
		Level:      level,
		Released:   released,
	}
}
