package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/healthcare-blog/internal/auth"
	"github.com/spec-kit/healthcare-blog/internal/config"
	"github.com/spec-kit/healthcare-blog/internal/domain"
)

type fakeUserRepo struct {
	user *domain.User
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if f.user == nil || f.user.Username != username {
		return nil, pgx.ErrNoRows
	}
	return f.user, nil
}

func newAuthService(t *testing.T, username, password string) *AuthService {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 60,
	}}
	return NewAuthService(cfg, &fakeUserRepo{user: &domain.User{
		ID:           "user-1",
		Username:     username,
		PasswordHash: hash,
	}})
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t, "alice", "wonder")

	token, expiresAt, err := svc.Login(context.Background(), "alice", "wonder")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.False(t, expiresAt.IsZero())

	userID, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
}

func TestLogin_UserNotFound(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t, "alice", "wonder")

	_, _, err := svc.Login(context.Background(), "mallory", "wonder")
	requireDomainError(t, err, "NOT_FOUND", 404)
	require.Contains(t, err.Error(), "User not found")
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t, "alice", "wonder")

	_, _, err := svc.Login(context.Background(), "alice", "blunder")
	requireDomainError(t, err, "INVALID_CREDENTIALS", 400)
	require.Contains(t, err.Error(), "Invalid credentials")
}
