package service

import (
	"context"
	"time"

	"github.com/aditiputrevu/book-recommendation/internal/apperr"
	"github.com/aditiputrevu/book-recommendation/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = time.Hour

type AuthService struct {
	users     UserStore
	jwtSecret []byte
	now       func() time.Time
}

func NewAuthService(users UserStore, secret string) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: []byte(secret),
		now:       time.Now,
	}
}

// WithClock overrides the time source. Tests use this to move tokens past
// their expiry without sleeping.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

func (s *AuthService) Register(ctx context.Context, username, password string, favoriteGenres []string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, apperr.Validation("username and password are required")
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if favoriteGenres == nil {
		favoriteGenres = []string{}
	}

	u := &models.User{
		Username:       username,
		PasswordHash:   string(hash),
		FavoriteGenres: favoriteGenres,
		Ratings:        []models.Rating{},
	}
	if err := s.users.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", apperr.New(apperr.CodeInvalidCredentials, "invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", apperr.New(apperr.CodeInvalidCredentials, "invalid username or password")
	}

	return s.IssueToken(u.ID)
}

func (s *AuthService) IssueToken(userID primitive.ObjectID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.Hex(),
		"exp": s.now().Add(tokenTTL).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}

// VerifyToken checks signature and expiry and returns the user id baked into
// the token. An empty token is TOKEN_MISSING; anything else that fails is
// TOKEN_INVALID.
func (s *AuthService) VerifyToken(tokenStr string) (primitive.ObjectID, error) {
	if tokenStr == "" {
		return primitive.NilObjectID, apperr.New(apperr.CodeTokenMissing, "Access denied. No token provided.")
	}

	token, err := jwt.Parse(tokenStr,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.jwtSecret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return primitive.NilObjectID, apperr.New(apperr.CodeTokenInvalid, "Invalid token.")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return primitive.NilObjectID, apperr.New(apperr.CodeTokenInvalid, "Invalid token.")
	}
	sub, _ := claims["sub"].(string)
	id, err := primitive.ObjectIDFromHex(sub)
	if err != nil {
		return primitive.NilObjectID, apperr.New(apperr.CodeTokenInvalid, "Invalid token.")
	}
	return id, nil
}
