package handler

import (
	"net/http"

	"github.com/aditiputrevu/book-recommendation/internal/service"
)

type IngestHandler struct {
	svc *service.IngestService
}

func NewIngestHandler(s *service.IngestService) *IngestHandler {
	return &IngestHandler{svc: s}
}

type loadBooksResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// @Summary Load books from CSV
// @Description Reads the configured best-selling-books CSV and bulk-inserts every row
// @Tags books
// @Produce json
// @Success 200 {object} loadBooksResponse
// @Failure 500 {object} errorBody
// @Router /api/load-books [post]
func (h *IngestHandler) LoadBooks(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.LoadBooks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loadBooksResponse{
		Message: "Books loaded successfully.",
		Count:   count,
	})
}
