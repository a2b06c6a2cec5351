package service

import (
	"context"

	"github.com/aditiputrevu/book-recommendation/internal/apperr"
	"github.com/aditiputrevu/book-recommendation/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stores standing in for the mongo repositories.

type fakeBookStore struct {
	books []models.Book
	err   error
}

func (f *fakeBookStore) Insert(_ context.Context, b *models.Book) (*models.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	b.ID = primitive.NewObjectID()
	f.books = append(f.books, *b)
	return b, nil
}

func (f *fakeBookStore) InsertMany(_ context.Context, books []models.Book) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	for i := range books {
		books[i].ID = primitive.NewObjectID()
		f.books = append(f.books, books[i])
	}
	return len(books), nil
}

func (f *fakeBookStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.books {
		if f.books[i].ID == id {
			b := f.books[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookStore) Search(_ context.Context, filter models.BookFilter) ([]models.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Book
	for _, b := range f.books {
		if filter.Mood != "" && b.Mood != filter.Mood {
			continue
		}
		if filter.Genre != "" && filter.Genre != "all" && b.Genre != filter.Genre {
			continue
		}
		if filter.PopularityMin > 0 && b.Popularity < filter.PopularityMin {
			continue
		}
		out = append(out, b)
	}
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeBookStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []models.Book
	for _, b := range f.books {
		if want[b.ID] {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookStore) FindByGenresAndMoods(_ context.Context, genres, moods []string, limit int) ([]models.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	genreSet := make(map[string]bool, len(genres))
	for _, g := range genres {
		genreSet[g] = true
	}
	moodSet := make(map[string]bool, len(moods))
	for _, m := range moods {
		moodSet[m] = true
	}
	var out []models.Book
	for _, b := range f.books {
		if genreSet[b.Genre] && moodSet[b.Mood] {
			out = append(out, b)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

type fakeUserStore struct {
	users []models.User
	err   error
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Username == username {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Insert(_ context.Context, u *models.User) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.users {
		if f.users[i].Username == u.Username {
			return apperr.Conflict("username already taken")
		}
	}
	u.ID = primitive.NewObjectID()
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserStore) PushRating(_ context.Context, userID primitive.ObjectID, rating models.Rating) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.users {
		if f.users[i].ID == userID {
			f.users[i].Ratings = append(f.users[i].Ratings, rating)
			return nil
		}
	}
	return apperr.NotFound("user not found")
}
