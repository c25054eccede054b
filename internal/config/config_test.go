package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/healthcare_blog")

	_, err := Load()
	require.ErrorContains(t, err, "AUTH_JWT_SECRET")
}

func TestLoad_RequiresPostgresDSN(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("POSTGRES_DSN", "")

	_, err := Load()
	require.ErrorContains(t, err, "POSTGRES_DSN")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/healthcare_blog")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "secret", cfg.Auth.JWTSecret)
	require.Equal(t, 60, cfg.Auth.AccessTokenTTLMinutes)
	require.Equal(t, 10, cfg.Posts.DefaultPageSize)
	require.Equal(t, 100, cfg.Posts.MaxPageSize)
	require.Equal(t, "0.0.0.0:5000", cfg.App.Addr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/healthcare_blog")
	t.Setenv("POSTS_MAX_PAGE_SIZE", "25")
	t.Setenv("APP_PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 25, cfg.Posts.MaxPageSize)
	require.Equal(t, "8080", cfg.App.Port)
}
