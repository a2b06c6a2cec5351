package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aditiputrevu/book-recommendation/internal/models"
	"github.com/aditiputrevu/book-recommendation/internal/service"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookHandler struct {
	svc *service.BookService
}

func NewBookHandler(s *service.BookService) *BookHandler {
	return &BookHandler{svc: s}
}

// @Summary List books
// @Description Lists books filtered by mood, genre and minimum popularity
// @Tags books
// @Produce json
// @Param mood query string false "exact mood match"
// @Param genre query string false "exact genre match; 'all' disables the filter"
// @Param popularity query number false "inclusive lower bound on popularity (1-10)"
// @Success 200 {array} models.Book
// @Failure 500 {object} errorBody
// @Router /api/books [get]
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var popularityMin float64
	if raw := q.Get("popularity"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			badRequest(w, "popularity must be a number")
			return
		}
		popularityMin = v
	}

	books, err := h.svc.ListBooks(r.Context(), models.BookFilter{
		Mood:          q.Get("mood"),
		Genre:         q.Get("genre"),
		PopularityMin: popularityMin,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, books)
}

// @Summary Add a book
// @Tags books
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.BookCreateRequest true "book data"
// @Success 201 {object} models.Book
// @Failure 400 {object} errorBody
// @Router /api/books [post]
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req models.BookCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	b, err := h.svc.AddBook(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, b)
}

// @Summary Get one book
// @Tags books
// @Produce json
// @Param id path string true "book id"
// @Success 200 {object} models.Book
// @Failure 404 {object} errorBody
// @Router /api/books/{id} [get]
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, "invalid book id")
		return
	}

	b, err := h.svc.GetBook(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if b == nil {
		writeJSON(w, http.StatusNotFound, errorBody{Message: "book not found"})
		return
	}

	writeJSON(w, http.StatusOK, b)
}
