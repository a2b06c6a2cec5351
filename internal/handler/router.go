package handler

import (
	"net/http"
	"strings"

	"github.com/aditiputrevu/book-recommendation/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Deps holds everything the router needs. main builds it from real
// mongo-backed services; tests build it from fakes.
type Deps struct {
	Auth      *service.AuthService
	Books     *service.BookService
	Ratings   *service.RatingService
	Recommend *service.RecommendService
	Ingest    *service.IngestService

	// CORSOrigins is a comma-separated origin list; "*" allows all.
	CORSOrigins string
}

// NewRouter wires all routes. Protected routes sit behind the JWT
// middleware; everything else is public so the two front-ends can browse
// without an account.
func NewRouter(d Deps) http.Handler {
	authH := NewAuthHandler(d.Auth)
	bookH := NewBookHandler(d.Books)
	ratingH := NewRatingHandler(d.Ratings)
	recH := NewRecommendHandler(d.Recommend)
	ingestH := NewIngestHandler(d.Ingest)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	origins := []string{"*"}
	if d.CORSOrigins != "" {
		origins = strings.Split(d.CORSOrigins, ",")
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", Health)

	// public
	r.Get("/api/books", bookH.ListBooks)
	r.Get("/api/books/{id}", bookH.GetBook)
	r.Post("/api/register", authH.Register)
	r.Post("/api/login", authH.Login)
	r.Post("/api/load-books", ingestH.LoadBooks)

	// protected
	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(d.Auth))

		r.Post("/api/books", bookH.CreateBook)
		r.Post("/api/rate", ratingH.RateBook)
		r.Get("/api/me/ratings", ratingH.GetMyRatings)
		r.Get("/api/recommendations", recH.GetRecommendations)
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
