package service

import (
	"context"

	"github.com/aditiputrevu/book-recommendation/internal/models"
	"github.com/aditiputrevu/book-recommendation/internal/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookService struct {
	books    BookStore
	validate *validation.Validator
}

func NewBookService(books BookStore) *BookService {
	return &BookService{
		books:    books,
		validate: validation.New(),
	}
}

func (s *BookService) AddBook(ctx context.Context, req models.BookCreateRequest) (*models.Book, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, err
	}

	b := &models.Book{
		Title:       req.Title,
		Author:      req.Author,
		Genre:       req.Genre,
		ReleaseDate: req.ReleaseDate,
		Popularity:  req.Popularity,
		Mood:        req.Mood,
		Cover:       req.Cover,
		Description: req.Description,
	}
	return s.books.Insert(ctx, b)
}

// ListBooks never returns nil on success so the API serializes an empty
// match as [] rather than null.
func (s *BookService) ListBooks(ctx context.Context, f models.BookFilter) ([]models.Book, error) {
	books, err := s.books.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []models.Book{}
	}
	return books, nil
}

func (s *BookService) GetBook(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	return s.books.GetByID(ctx, id)
}
