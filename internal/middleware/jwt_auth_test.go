package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/authstack/auth-service/internal/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newProtectedHandler(t *testing.T, tokens *auth.TokenManager, called *bool, gotUserID *string) http.Handler {
	t.Helper()
	return JWTAuth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if userID, ok := UserIDFromContext(r.Context()); ok {
			*gotUserID = userID
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestJWTAuth_ValidToken(t *testing.T) {
	t.Parallel()

	tokens := auth.NewTokenManager("test-secret")
	token, err := tokens.Issue("user-1")
	require.NoError(t, err)

	var called bool
	var gotUserID string
	h := newProtectedHandler(t, tokens, &called, &gotUserID)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, called)
	require.Equal(t, "user-1", gotUserID)
}

func TestJWTAuth_NoCookie(t *testing.T) {
	t.Parallel()

	tokens := auth.NewTokenManager("test-secret")
	var called bool
	var gotUserID string
	h := newProtectedHandler(t, tokens, &called, &gotUserID)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, called, "wrapped handler must not run")
	require.JSONEq(t, `{"success":false,"message":"Unauthorized! Login again to continue"}`, w.Body.String())
}

func TestJWTAuth_BadSignature(t *testing.T) {
	t.Parallel()

	token, err := auth.NewTokenManager("other-secret").Issue("user-1")
	require.NoError(t, err)

	tokens := auth.NewTokenManager("test-secret")
	var called bool
	var gotUserID string
	h := newProtectedHandler(t, tokens, &called, &gotUserID)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, called)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	t.Parallel()

	// Sign an already expired token with the shared secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		UserID: "user-1",
	})
	token, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tokens := auth.NewTokenManager("test-secret")
	var called bool
	var gotUserID string
	h := newProtectedHandler(t, tokens, &called, &gotUserID)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, called)
}
