package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aditiputrevu/book-recommendation/internal/models"
	"github.com/aditiputrevu/book-recommendation/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type registerRequest struct {
	Username       string   `json:"username"`
	Password       string   `json:"password"`
	FavoriteGenres []string `json:"favoriteGenres"`
}

type userResponse struct {
	ID             string   `json:"id"`
	Username       string   `json:"username"`
	FavoriteGenres []string `json:"favoriteGenres"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:             u.ID.Hex(),
		Username:       u.Username,
		FavoriteGenres: u.FavoriteGenres,
	}
}

// @Summary Register
// @Description Creates a user account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "account data"
// @Success 201 {object} userResponse
// @Failure 400 {object} errorBody
// @Router /api/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	u, err := h.svc.Register(r.Context(), req.Username, req.Password, req.FavoriteGenres)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "credentials"
// @Success 200 {object} loginResponse
// @Failure 400 {object} errorBody
// @Router /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	token, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}
