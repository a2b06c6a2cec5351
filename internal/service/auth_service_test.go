package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aditiputrevu/book-recommendation/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(&fakeUserStore{}, "test-secret")

	u, err := svc.Register(ctx, "alice", "hunter2", []string{"Fantasy"})
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, []string{"Fantasy"}, u.FavoriteGenres)
	assert.Empty(t, u.Ratings)
	assert.NotEqual(t, "hunter2", u.PasswordHash, "password must be stored hashed")

	token, err := svc.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)

	id, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(&fakeUserStore{}, "test-secret")

	_, err := svc.Register(ctx, "bob", "pw", nil)
	require.NoError(t, err)

	// second attempt is always rejected, whatever the payload
	_, err = svc.Register(ctx, "bob", "other-pw", []string{"Mystery"})
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
}

func TestRegisterRequiresCredentials(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(&fakeUserStore{}, "test-secret")

	_, err := svc.Register(ctx, "", "pw", nil)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))

	_, err = svc.Register(ctx, "carol", "", nil)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(&fakeUserStore{}, "test-secret")

	_, err := svc.Register(ctx, "dave", "right", nil)
	require.NoError(t, err)

	_, err = svc.Login(ctx, "dave", "wrong")
	assert.Equal(t, apperr.CodeInvalidCredentials, apperr.CodeOf(err))

	_, err = svc.Login(ctx, "nobody", "whatever")
	assert.Equal(t, apperr.CodeInvalidCredentials, apperr.CodeOf(err))
}

func TestVerifyTokenMissing(t *testing.T) {
	svc := NewAuthService(&fakeUserStore{}, "test-secret")

	_, err := svc.VerifyToken("")
	assert.Equal(t, apperr.CodeTokenMissing, apperr.CodeOf(err))
}

func TestVerifyTokenGarbage(t *testing.T) {
	svc := NewAuthService(&fakeUserStore{}, "test-secret")

	_, err := svc.VerifyToken("not.a.token")
	assert.Equal(t, apperr.CodeTokenInvalid, apperr.CodeOf(err))
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	issuer := NewAuthService(&fakeUserStore{}, "secret-a")
	verifier := NewAuthService(&fakeUserStore{}, "secret-b")

	token, err := issuer.IssueToken(primitive.NewObjectID())
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Equal(t, apperr.CodeTokenInvalid, apperr.CodeOf(err))
}

func TestTokenExpiry(t *testing.T) {
	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now := issuedAt
	svc := NewAuthService(&fakeUserStore{}, "test-secret").
		WithClock(func() time.Time { return now })

	token, err := svc.IssueToken(primitive.NewObjectID())
	require.NoError(t, err)

	// still valid one minute before the 1h expiry
	now = issuedAt.Add(59 * time.Minute)
	_, err = svc.VerifyToken(token)
	assert.NoError(t, err)

	// rejected one minute after
	now = issuedAt.Add(61 * time.Minute)
	_, err = svc.VerifyToken(token)
	assert.Equal(t, apperr.CodeTokenInvalid, apperr.CodeOf(err))
}

func TestLoginStoreErrorPassesThrough(t *testing.T) {
	storeErr := errors.New("connection reset")
	svc := NewAuthService(&fakeUserStore{err: storeErr}, "test-secret")

	_, err := svc.Login(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, apperr.CodeStore, apperr.CodeOf(err))
}
