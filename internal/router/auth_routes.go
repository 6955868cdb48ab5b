package router

import (
	"github.com/authstack/auth-service/internal/auth"
	"github.com/authstack/auth-service/internal/handler"
	"github.com/authstack/auth-service/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// SetupAuthRoutes configures all authentication related routes.
func SetupAuthRoutes(r *chi.Mux, authHandler *handler.AuthHandler, tokens *auth.TokenManager) {
	// Public auth routes
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/logout", authHandler.Logout)
	r.Post("/api/auth/send-reset-otp", authHandler.SendResetOtp)
	r.Post("/api/auth/reset-password", authHandler.ResetPassword)

	// Protected routes (require a valid session cookie)
	r.Group(func(authRouter chi.Router) {
		authRouter.Use(middleware.JWTAuth(tokens))

		authRouter.Post("/api/auth/send-verify-otp", authHandler.SendVerifyOtp)
		authRouter.Post("/api/auth/verify-account", authHandler.VerifyEmail)
		authRouter.Get("/api/auth/is-auth", authHandler.IsAuthenticated)
		authRouter.Get("/api/user/data", authHandler.GetUserData)
	})
}
