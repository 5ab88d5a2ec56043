package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating represents a single rating submission in the ratings collection.
// SongID references a song by its ObjectID but is not enforced as a foreign
// key; ratings for well-formed but unknown song ids are accepted.
type Rating struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SongID primitive.ObjectID `bson:"song_id" json:"song_id"`
	Rating int                `bson:"rating" json:"rating"`
}

// RatingStats holds the aggregate statistics computed over the ratings of one
// song. It doubles as the decode target for the $group stage of the stats
// aggregation pipeline.
type RatingStats struct {
	Average float64 `bson:"avg" json:"average"`
	Lowest  int     `bson:"min" json:"lowest"`
	Highest int     `bson:"max" json:"highest"`
}
