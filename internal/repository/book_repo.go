package repository

import (
	"context"

	"github.com/aditiputrevu/book-recommendation/internal/db"
	"github.com/aditiputrevu/book-recommendation/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookRepository struct {
	col *mongo.Collection
}

func NewBookRepository() *BookRepository {
	return &BookRepository{col: db.DB().Collection("books")}
}

func (r *BookRepository) Insert(ctx context.Context, b *models.Book) (*models.Book, error) {
	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid
	}
	return b, nil
}

// InsertMany bulk-inserts a batch. Unordered, so one bad document does not
// roll back the ones already written; the count reflects what actually landed.
func (r *BookRepository) InsertMany(ctx context.Context, books []models.Book) (int, error) {
	docs := make([]any, len(books))
	for i := range books {
		docs[i] = books[i]
	}

	res, err := r.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if res != nil && err != nil {
		return len(res.InsertedIDs), err
	}
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

func (r *BookRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	var b models.Book
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &b, err
}

func (r *BookRepository) Search(ctx context.Context, f models.BookFilter) ([]models.Book, error) {
	filter := bson.M{}

	if f.Mood != "" {
		filter["mood"] = f.Mood
	}
	// "all" is the front-ends' way of saying "no genre filter"
	if f.Genre != "" && f.Genre != "all" {
		filter["genre"] = f.Genre
	}
	if f.PopularityMin > 0 {
		filter["popularity"] = bson.M{"$gte": f.PopularityMin}
	}

	opts := options.Find()
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}
	if f.Offset > 0 {
		opts.SetSkip(int64(f.Offset))
	}

	return r.findAll(ctx, filter, opts)
}

// FindByIDs resolves a set of book ids. Ids with no backing document are
// silently skipped, which is what makes dangling rating references harmless.
func (r *BookRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Book, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.findAll(ctx, bson.M{"_id": bson.M{"$in": ids}}, options.Find())
}

// FindByGenresAndMoods is the recommendation query: genre in the user's
// favorites AND mood among the moods of books they rated.
func (r *BookRepository) FindByGenresAndMoods(ctx context.Context, genres, moods []string, limit int) ([]models.Book, error) {
	if len(genres) == 0 || len(moods) == 0 {
		return nil, nil
	}

	filter := bson.M{
		"genre": bson.M{"$in": genres},
		"mood":  bson.M{"$in": moods},
	}
	return r.findAll(ctx, filter, options.Find().SetLimit(int64(limit)))
}

func (r *BookRepository) findAll(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Book, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Book
	for cur.Next(ctx) {
		var b models.Book
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, cur.Err()
}
