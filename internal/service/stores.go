package service

import (
	"context"

	"github.com/aditiputrevu/book-recommendation/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store interfaces satisfied by internal/repository. Services depend on
// these so tests can swap in in-memory fakes.

type BookStore interface {
	Insert(ctx context.Context, b *models.Book) (*models.Book, error)
	InsertMany(ctx context.Context, books []models.Book) (int, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error)
	Search(ctx context.Context, f models.BookFilter) ([]models.Book, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Book, error)
	FindByGenresAndMoods(ctx context.Context, genres, moods []string, limit int) ([]models.Book, error)
}

type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Insert(ctx context.Context, u *models.User) error
	PushRating(ctx context.Context, userID primitive.ObjectID, rating models.Rating) error
}
