package service

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/healthcare-blog/internal/auth"
	"github.com/spec-kit/healthcare-blog/internal/config"
	"github.com/spec-kit/healthcare-blog/internal/repository"
	apperrors "github.com/spec-kit/healthcare-blog/pkg/util"
)

// AuthService coordinates the login flow. Registration is handled out of
// band; this service only verifies stored credentials and issues tokens.
type AuthService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:    users,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
	}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login verifies the username/password pair and returns a signed access
// token. An unknown username and a wrong password fail differently so the
// HTTP layer can map them to 404 and 400 respectively.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", time.Time{}, apperrors.NewDomainError("NOT_FOUND", "User not found", http.StatusNotFound)
		}
		return "", time.Time{}, apperrors.NewInternalError(err)
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	return s.tokenMgr.GenerateToken(user.ID)
}
