package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Moods a book can carry. Ingestion only produces these, but the field
// accepts free text on direct inserts.
const (
	MoodHappy      = "happy"
	MoodAnxious    = "anxious"
	MoodReflective = "reflective"
	MoodExcited    = "excited"
	MoodNeutral    = "neutral"
)

type Book struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Author      string             `json:"author" bson:"author"`
	Genre       string             `json:"genre" bson:"genre"`
	ReleaseDate time.Time          `json:"release_date" bson:"release_date"`
	Popularity  float64            `json:"popularity" bson:"popularity"` // 1-10 scale
	Mood        string             `json:"mood" bson:"mood"`
	Cover       string             `json:"cover" bson:"cover"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
}

// BookCreateRequest is the POST /api/books payload.
type BookCreateRequest struct {
	Title       string    `json:"title" validate:"required"`
	Author      string    `json:"author" validate:"required"`
	Genre       string    `json:"genre" validate:"required"`
	ReleaseDate time.Time `json:"release_date" validate:"required"`
	Popularity  float64   `json:"popularity" validate:"required,gte=1,lte=10"`
	Mood        string    `json:"mood" validate:"required"`
	Cover       string    `json:"cover" validate:"required,url"`
	Description string    `json:"description"`
}

// BookFilter narrows a listing query. Zero values mean "no constraint";
// Genre additionally treats the sentinel "all" as no constraint.
type BookFilter struct {
	Mood          string
	Genre         string
	PopularityMin float64
	Limit         int
	Offset        int
}
