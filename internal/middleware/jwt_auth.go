package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/authstack/auth-service/internal/auth"
)

// SessionCookieName is the cookie the session token travels in.
const SessionCookieName = "token"

type unauthorizedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// JWTAuth verifies the session cookie and injects the user id into the
// request context. Requests without a valid cookie are rejected before the
// wrapped handler runs.
func JWTAuth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				rejectUnauthorized(w)
				return
			}

			userID, err := tokens.Verify(cookie.Value)
			if err != nil {
				rejectUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDCtxKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user id set by JWTAuth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

func rejectUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(unauthorizedResponse{
		Success: false,
		Message: "Unauthorized! Login again to continue",
	})
}
