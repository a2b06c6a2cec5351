package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/aditiputrevu/book-recommendation/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ctxKey string

const ctxUserID ctxKey = "userId"

// RequireAuth verifies the bearer token and puts the authenticated user id
// into the request context. A missing token is 401; a token that fails
// signature or expiry checks is 400.
func RequireAuth(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			var tokenStr string
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
			}

			userID, err := auth.VerifyToken(tokenStr)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user id set by RequireAuth.
func UserIDFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	id, ok := ctx.Value(ctxUserID).(primitive.ObjectID)
	return id, ok
}
