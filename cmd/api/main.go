package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/aditiputrevu/book-recommendation/docs" // swagger docs

	"github.com/aditiputrevu/book-recommendation/internal/config"
	"github.com/aditiputrevu/book-recommendation/internal/db"
	"github.com/aditiputrevu/book-recommendation/internal/handler"
	"github.com/aditiputrevu/book-recommendation/internal/repository"
	"github.com/aditiputrevu/book-recommendation/internal/service"
)

// @title Book Recommendation API
// @version 1.0
// @description Mood- and genre-based book recommendations backed by MongoDB
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	db.InitMongo(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatalf("[mongo] index bootstrap failed: %v", err)
	}

	// repos
	bookRepo := repository.NewBookRepository()
	userRepo := repository.NewUserRepository()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	bookSvc := service.NewBookService(bookRepo)
	ratingSvc := service.NewRatingService(userRepo, bookRepo)
	recSvc := service.NewRecommendService(userRepo, bookRepo)
	ingestSvc := service.NewIngestService(bookRepo, cfg.BooksCSV)

	router := handler.NewRouter(handler.Deps{
		Auth:        authSvc,
		Books:       bookSvc,
		Ratings:     ratingSvc,
		Recommend:   recSvc,
		Ingest:      ingestSvc,
		CORSOrigins: cfg.CORSOrigins,
	})

	log.Printf("HTTP listening on :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, router))
}
