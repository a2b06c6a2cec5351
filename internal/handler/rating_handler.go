package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aditiputrevu/book-recommendation/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RatingHandler struct {
	svc *service.RatingService
}

func NewRatingHandler(s *service.RatingService) *RatingHandler {
	return &RatingHandler{svc: s}
}

type rateRequest struct {
	BookID string `json:"bookId"`
	Rating int    `json:"rating"`
}

// @Summary Rate a book
// @Tags ratings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body rateRequest true "rating"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errorBody
// @Router /api/rate [post]
func (h *RatingHandler) RateBook(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		badRequest(w, "Invalid token.")
		return
	}

	var req rateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	bookID, err := primitive.ObjectIDFromHex(req.BookID)
	if err != nil {
		badRequest(w, "invalid book id")
		return
	}

	if err := h.svc.RateBook(r.Context(), userID, bookID, req.Rating); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Rating saved."})
}

// @Summary List my ratings
// @Tags ratings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Rating
// @Router /api/me/ratings [get]
func (h *RatingHandler) GetMyRatings(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		badRequest(w, "Invalid token.")
		return
	}

	ratings, err := h.svc.GetRatings(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ratings)
}
