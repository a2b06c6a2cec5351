package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Rating is one entry of a user's embedded rating list. BookID is a weak
// reference into the books collection; resolution happens at read time and
// tolerates ids that no longer exist.
type Rating struct {
	BookID primitive.ObjectID `json:"bookId" bson:"bookId"`
	Rating int                `json:"rating" bson:"rating"` // 1..5
}

type User struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username       string             `json:"username" bson:"username"`
	PasswordHash   string             `json:"-" bson:"password"`
	FavoriteGenres []string           `json:"favoriteGenres" bson:"favoriteGenres"`
	Ratings        []Rating           `json:"ratings" bson:"ratings"`
}
