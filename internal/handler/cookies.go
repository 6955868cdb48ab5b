package handler

import (
	"net/http"
	"time"

	"github.com/authstack/auth-service/internal/auth"
	"github.com/authstack/auth-service/internal/middleware"
)

// sessionCookie builds the session cookie with the environment-dependent
// policy: production serves cross-site over TLS, development stays strict.
func (h *AuthHandler) sessionCookie(token string, maxAge time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(maxAge.Seconds()),
	}
	if h.cfg.IsProduction() {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.SameSite = http.SameSiteStrictMode
	}
	return cookie
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, h.sessionCookie(token, auth.SessionTokenTTL))
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, h.sessionCookie("", -time.Second))
}
