package service

import (
	"context"

	"github.com/aditiputrevu/book-recommendation/internal/apperr"
	"github.com/aditiputrevu/book-recommendation/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RatingService struct {
	users UserStore
	books BookStore
}

func NewRatingService(users UserStore, books BookStore) *RatingService {
	return &RatingService{users: users, books: books}
}

// RateBook appends a rating to the user's list. The store-side $push keeps
// concurrent ratings for the same user from losing each other.
func (s *RatingService) RateBook(ctx context.Context, userID, bookID primitive.ObjectID, rating int) error {
	if rating < 1 || rating > 5 {
		return apperr.Validation("rating must be between 1 and 5")
	}

	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return err
	}
	if book == nil {
		return apperr.Validation("book does not exist")
	}

	return s.users.PushRating(ctx, userID, models.Rating{BookID: bookID, Rating: rating})
}

func (s *RatingService) GetRatings(ctx context.Context, userID primitive.ObjectID) ([]models.Rating, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	if u.Ratings == nil {
		return []models.Rating{}, nil
	}
	return u.Ratings, nil
}
