package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aditiputrevu/book-recommendation/internal/apperr"
	"github.com/aditiputrevu/book-recommendation/internal/models"
)

// genreMoods maps a genre to the mood label shown by the front-ends.
// Matching is case-sensitive and exact; anything else is "neutral".
var genreMoods = map[string]string{
	"Fantasy":            models.MoodHappy,
	"Mystery":            models.MoodAnxious,
	"Romance":            models.MoodHappy,
	"Historical fiction": models.MoodReflective,
	"Dystopian":          models.MoodAnxious,
	"Children's fiction": models.MoodHappy,
	"Self-help":          models.MoodNeutral,
	"Science fiction":    models.MoodExcited,
	"Thriller":           models.MoodAnxious,
	"Biography":          models.MoodReflective,
}

// MoodForGenre returns the mood label for a genre, defaulting to "neutral".
func MoodForGenre(genre string) string {
	if m, ok := genreMoods[genre]; ok {
		return m
	}
	return models.MoodNeutral
}

// The dataset stores approximate sales in millions; the book schema wants a
// 1-10 popularity. salesCeiling is the top of the best-seller list (Don
// Quixote, ~500M), so sales map linearly onto [1,10] and clamp above it.
const salesCeiling = 500.0

func normalizePopularity(salesMillions float64) float64 {
	if salesMillions < 0 {
		salesMillions = 0
	}
	if salesMillions > salesCeiling {
		salesMillions = salesCeiling
	}
	p := 1 + 9*salesMillions/salesCeiling
	return math.Round(p*10) / 10
}

type IngestService struct {
	books   BookStore
	csvPath string
}

func NewIngestService(books BookStore, csvPath string) *IngestService {
	return &IngestService{books: books, csvPath: csvPath}
}

// LoadBooks reads the configured CSV and bulk-inserts every row as a book.
// The whole file is parsed before anything is written; a malformed row or an
// unreadable file fails the job.
func (s *IngestService) LoadBooks(ctx context.Context) (int, error) {
	f, err := os.Open(s.csvPath)
	if err != nil {
		return 0, apperr.Wrap(apperr.CodeIngest, "could not open books file", err)
	}
	defer f.Close()

	books, err := ParseBooks(f)
	if err != nil {
		return 0, err
	}
	if len(books) == 0 {
		return 0, nil
	}

	count, err := s.books.InsertMany(ctx, books)
	if err != nil {
		// unordered insert: some documents may have landed before the failure
		log.Printf("[ingest] bulk insert failed after %d documents: %v", count, err)
		return count, err
	}

	log.Printf("[ingest] loaded %d books from %s", count, s.csvPath)
	return count, nil
}

// ParseBooks converts the best-selling-books CSV into book documents.
// Expected columns: Book, Author(s), Genre, First published, Approximate
// sales in millions. Extra columns are ignored.
func ParseBooks(r io.Reader) ([]models.Book, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeIngest, "could not read CSV header", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Book", "Author(s)", "Genre", "First published", "Approximate sales in millions"} {
		if _, ok := idx[required]; !ok {
			return nil, apperr.New(apperr.CodeIngest, fmt.Sprintf("CSV is missing column %q", required))
		}
	}

	var books []models.Book
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperr.Wrap(apperr.CodeIngest, fmt.Sprintf("malformed CSV row at line %d", line), err)
		}

		b, err := bookFromRow(row, idx)
		if err != nil {
			return nil, apperr.Wrap(apperr.CodeIngest, fmt.Sprintf("invalid CSV row at line %d", line), err)
		}
		books = append(books, b)
	}
	return books, nil
}

func bookFromRow(row []string, idx map[string]int) (models.Book, error) {
	title := strings.TrimSpace(row[idx["Book"]])
	author := strings.TrimSpace(row[idx["Author(s)"]])
	genre := strings.TrimSpace(row[idx["Genre"]])
	if title == "" || author == "" {
		return models.Book{}, fmt.Errorf("title and author are required")
	}

	published, err := parsePublished(strings.TrimSpace(row[idx["First published"]]))
	if err != nil {
		return models.Book{}, err
	}

	sales, err := strconv.ParseFloat(strings.TrimSpace(row[idx["Approximate sales in millions"]]), 64)
	if err != nil {
		return models.Book{}, fmt.Errorf("bad sales figure: %w", err)
	}

	return models.Book{
		Title:       title,
		Author:      author,
		Genre:       genre,
		ReleaseDate: published,
		Popularity:  normalizePopularity(sales),
		Mood:        MoodForGenre(genre),
		Cover:       coverURL(title),
		Description: fmt.Sprintf("A bestselling book in the genre of %s.", genre),
	}, nil
}

// parsePublished accepts either a bare year ("1605") or a full date.
func parsePublished(s string) (time.Time, error) {
	if year, err := strconv.Atoi(s); err == nil {
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), nil
	}
	for _, layout := range []string{"2006-01-02", "January 2, 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("bad publication date %q", s)
}

func coverURL(title string) string {
	slug := strings.ToLower(title)
	slug = strings.ReplaceAll(slug, " ", "-")
	return "https://example.com/" + slug + ".jpg"
}
