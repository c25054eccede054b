package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	t.Parallel()

	hashed, err := HashPassword("wonder", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "wonder", hashed)

	require.NoError(t, ComparePassword(hashed, "wonder"))
	require.Error(t, ComparePassword(hashed, "blunder"))
}
