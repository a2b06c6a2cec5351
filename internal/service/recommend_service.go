package service

import (
	"context"
	"sort"

	"github.com/aditiputrevu/book-recommendation/internal/apperr"
	"github.com/aditiputrevu/book-recommendation/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxRecommendations caps every recommendation response.
const MaxRecommendations = 10

type RecommendService struct {
	users UserStore
	books BookStore
}

func NewRecommendService(users UserStore, books BookStore) *RecommendService {
	return &RecommendService{users: users, books: books}
}

// Recommend returns up to MaxRecommendations books whose genre is one of the
// user's favorites and whose mood matches a mood the user has already rated
// into. A user with no ratings gets an empty list, not an error.
func (s *RecommendService) Recommend(ctx context.Context, userID primitive.ObjectID) ([]models.Book, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}

	moods, err := s.ratedMoods(ctx, u.Ratings)
	if err != nil {
		return nil, err
	}
	if len(moods) == 0 || len(u.FavoriteGenres) == 0 {
		return []models.Book{}, nil
	}

	books, err := s.books.FindByGenresAndMoods(ctx, u.FavoriteGenres, moods, MaxRecommendations)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []models.Book{}
	}
	return books, nil
}

// ratedMoods resolves the user's rated book ids and collects the distinct
// moods. Ids that no longer resolve to a book are ignored.
func (s *RecommendService) ratedMoods(ctx context.Context, ratings []models.Rating) ([]string, error) {
	if len(ratings) == 0 {
		return nil, nil
	}

	seen := make(map[primitive.ObjectID]bool, len(ratings))
	ids := make([]primitive.ObjectID, 0, len(ratings))
	for _, r := range ratings {
		if !seen[r.BookID] {
			seen[r.BookID] = true
			ids = append(ids, r.BookID)
		}
	}

	books, err := s.books.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	moodSet := make(map[string]bool, len(books))
	for _, b := range books {
		if b.Mood != "" {
			moodSet[b.Mood] = true
		}
	}

	moods := make([]string, 0, len(moodSet))
	for m := range moodSet {
		moods = append(moods, m)
	}
	sort.Strings(moods)
	return moods, nil
}
