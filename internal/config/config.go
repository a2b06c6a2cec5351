package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	HTTPPort    string
	BooksCSV    string
	CORSOrigins string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "book_recommendation"),
		JWTSecret:   getEnv("JWT_SECRET", "super-secret"),
		HTTPPort:    getEnv("HTTP_PORT", "5002"),
		BooksCSV:    getEnv("BOOKS_CSV", "best-selling-books.csv"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s not set, using default\n", key)
		return def
	}
	return v
}
