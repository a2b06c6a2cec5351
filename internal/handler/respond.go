package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/aditiputrevu/book-recommendation/internal/apperr"
)

type errorBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps a domain error onto its status and a safe message body.
// Unclassified errors are logged server-side and reported generically.
func writeError(w http.ResponseWriter, err error) {
	code := apperr.CodeOf(err)
	if code == apperr.CodeStore || code == apperr.CodeIngest {
		log.Printf("[api] %s: %v", code, err)
	}
	writeJSON(w, code.HTTPStatus(), errorBody{Message: apperr.PublicMessage(err)})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Message: msg})
}
