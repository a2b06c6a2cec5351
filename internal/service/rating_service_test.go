package service

import (
	"context"
	"testing"

	"github.com/aditiputrevu/book-recommendation/internal/apperr"
	"github.com/aditiputrevu/book-recommendation/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRateBook(t *testing.T) {
	ctx := context.Background()
	books := &fakeBookStore{}
	users := &fakeUserStore{}

	b := addBook(t, books, "The Hobbit", "Fantasy", "happy")
	u := addUser(t, users, "reader", nil, nil)

	svc := NewRatingService(users, books)
	require.NoError(t, svc.RateBook(ctx, u.ID, b.ID, 4))

	ratings, err := svc.GetRatings(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, b.ID, ratings[0].BookID)
	assert.Equal(t, 4, ratings[0].Rating)
}

func TestRateBookOutOfRange(t *testing.T) {
	ctx := context.Background()
	books := &fakeBookStore{}
	users := &fakeUserStore{}

	b := addBook(t, books, "The Hobbit", "Fantasy", "happy")
	u := addUser(t, users, "reader", nil, nil)

	svc := NewRatingService(users, books)
	for _, rating := range []int{0, -1, 6, 100} {
		err := svc.RateBook(ctx, u.ID, b.ID, rating)
		assert.Equalf(t, apperr.CodeValidation, apperr.CodeOf(err), "rating %d must be rejected", rating)
	}

	// nothing was appended
	ratings, err := svc.GetRatings(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, ratings)
}

func TestRateUnknownBook(t *testing.T) {
	ctx := context.Background()
	users := &fakeUserStore{}
	u := addUser(t, users, "reader", nil, nil)

	svc := NewRatingService(users, &fakeBookStore{})
	err := svc.RateBook(ctx, u.ID, primitive.NewObjectID(), 3)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
}

func TestRateBookAppendsInOrder(t *testing.T) {
	ctx := context.Background()
	books := &fakeBookStore{}
	users := &fakeUserStore{}

	b1 := addBook(t, books, "The Hobbit", "Fantasy", "happy")
	b2 := addBook(t, books, "Rebecca", "Mystery", "anxious")
	u := addUser(t, users, "reader", nil, nil)

	svc := NewRatingService(users, books)
	require.NoError(t, svc.RateBook(ctx, u.ID, b1.ID, 5))
	require.NoError(t, svc.RateBook(ctx, u.ID, b2.ID, 2))

	ratings, err := svc.GetRatings(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, ratings, 2)
	assert.Equal(t, []models.Rating{
		{BookID: b1.ID, Rating: 5},
		{BookID: b2.ID, Rating: 2},
	}, ratings)
}

func TestGetRatingsUnknownUser(t *testing.T) {
	svc := NewRatingService(&fakeUserStore{}, &fakeBookStore{})
	_, err := svc.GetRatings(context.Background(), primitive.NewObjectID())
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}
