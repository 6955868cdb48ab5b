package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hashed, err := HashPassword("p1")
	require.NoError(t, err)
	require.NotEqual(t, "p1", hashed)

	require.True(t, CheckPassword("p1", hashed))
	require.False(t, CheckPassword("wrong", hashed))
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, CheckPassword("same-password", first))
	require.True(t, CheckPassword("same-password", second))
}
