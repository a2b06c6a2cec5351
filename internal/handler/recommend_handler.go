package handler

import (
	"net/http"

	"github.com/aditiputrevu/book-recommendation/internal/service"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Recommendations for the authenticated user
// @Description Up to 10 books matching the user's favorite genres and the moods of books they rated
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Book
// @Failure 401 {object} errorBody
// @Router /api/recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		badRequest(w, "Invalid token.")
		return
	}

	books, err := h.svc.Recommend(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, books)
}
