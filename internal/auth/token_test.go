package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenIssueAndVerify(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("super-secret")
	userID := "507f1f77bcf86cd799439011"

	token, err := m.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotUserID, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, userID, gotUserID)
}

func TestTokenVerify_Expired(t *testing.T) {
	t.Parallel()

	m := &TokenManager{secret: []byte("secret"), ttl: -time.Second}
	token, err := m.Issue("u1")
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewTokenManager("secret-a").Issue("u1")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b").Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenVerify_Malformed(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("secret")
	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := m.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}
