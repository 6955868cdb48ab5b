package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/authstack/auth-service/internal/auth"
	"github.com/authstack/auth-service/internal/config"
	"github.com/authstack/auth-service/internal/middleware"
	"github.com/authstack/auth-service/internal/repository"
	"github.com/authstack/auth-service/internal/usecase"
	"go.uber.org/zap"
)

type AuthHandler struct {
	usecase *usecase.AuthUsecase
	tokens  *auth.TokenManager
	cfg     *config.Config
	logger  *zap.Logger
}

func NewAuthHandler(ucase *usecase.AuthUsecase, tokens *auth.TokenManager, cfg *config.Config, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		usecase: ucase,
		tokens:  tokens,
		cfg:     cfg,
		logger:  logger.Named("AuthHandler"),
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates the account, opens a session and sends the welcome mail.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, false, "All fields are required")
		return
	}

	userID, err := h.usecase.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			writeMessage(w, http.StatusBadRequest, false, "User with this email already exists")
			return
		}
		h.logger.Error("Failed to register user", zap.String("email", req.Email), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, false, "Internal Server Error")
		return
	}

	token, err := h.tokens.Issue(userID)
	if err != nil {
		h.logger.Error("Failed to issue session token", zap.String("userID", userID), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, false, "Internal Server Error")
		return
	}
	h.setSessionCookie(w, token)

	writeMessage(w, http.StatusOK, true, "User registered successfully")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and opens a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, false, "All fields are required")
		return
	}

	userID, err := h.usecase.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			writeMessage(w, http.StatusBadRequest, false, "Invalid email Credentials")
		case errors.Is(err, usecase.ErrInvalidPassword):
			writeMessage(w, http.StatusBadRequest, false, "Invalid Password")
		default:
			h.logger.Error("Failed to login user", zap.String("email", req.Email), zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, false, "Internal Server Error")
		}
		return
	}

	token, err := h.tokens.Issue(userID)
	if err != nil {
		h.logger.Error("Failed to issue session token", zap.String("userID", userID), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, false, "Internal Server Error")
		return
	}
	h.setSessionCookie(w, token)

	writeMessage(w, http.StatusOK, true, "Login Success")
}

// Logout clears the client-held session cookie. The token itself stays valid
// until its natural expiry; there is no server-side revocation.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	writeMessage(w, http.StatusOK, true, "Logout Success")
}

// SendVerifyOtp mails a fresh account verification code to the session's user.
func (h *AuthHandler) SendVerifyOtp(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Unauthorized! Login again to continue")
		return
	}

	if err := h.usecase.SendVerifyOtp(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrAlreadyVerified):
			writeMessage(w, http.StatusBadRequest, false, "User is already verified")
		case errors.Is(err, repository.ErrUserNotFound):
			writeMessage(w, http.StatusBadRequest, false, "User Not Found")
		default:
			h.logger.Error("Failed to send verification OTP", zap.String("userID", userID), zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, false, "Internal Server Error")
		}
		return
	}

	writeMessage(w, http.StatusOK, true, "OTP sent successfully")
}

type verifyEmailRequest struct {
	Otp string `json:"otp"`
}

// VerifyEmail consumes a verification code and marks the account verified.
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Unauthorized! Login again to continue")
		return
	}

	var req verifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if req.Otp == "" {
		writeMessage(w, http.StatusBadRequest, false, "All fields are required")
		return
	}

	if err := h.usecase.VerifyEmail(r.Context(), userID, req.Otp); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			writeMessage(w, http.StatusBadRequest, false, "Invalid User")
		case errors.Is(err, usecase.ErrInvalidOtp):
			writeMessage(w, http.StatusBadRequest, false, "Invalid OTP")
		case errors.Is(err, usecase.ErrOtpExpired):
			writeMessage(w, http.StatusBadRequest, false, "OTP Expired")
		default:
			h.logger.Error("Failed to verify email", zap.String("userID", userID), zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, false, "Internal Server Error")
		}
		return
	}

	writeMessage(w, http.StatusOK, true, "Account verified successfully")
}

// IsAuthenticated acknowledges a valid session; JWTAuth did the actual work.
func (h *AuthHandler) IsAuthenticated(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, true, "User is authenticated")
}

type sendResetOtpRequest struct {
	Email string `json:"email"`
}

// SendResetOtp mails a fresh password-reset code.
func (h *AuthHandler) SendResetOtp(w http.ResponseWriter, r *http.Request) {
	var req sendResetOtpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if req.Email == "" {
		writeMessage(w, http.StatusBadRequest, false, "Email is required")
		return
	}

	if err := h.usecase.SendResetOtp(r.Context(), req.Email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			writeMessage(w, http.StatusBadRequest, false, "User Not Found")
			return
		}
		h.logger.Error("Failed to send reset OTP", zap.String("email", req.Email), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, false, "Internal Server Error")
		return
	}

	writeMessage(w, http.StatusOK, true, "OTP sent successfully")
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	Otp         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// ResetPassword consumes a reset code and replaces the account password.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if req.Email == "" || req.Otp == "" || req.NewPassword == "" {
		writeMessage(w, http.StatusBadRequest, false, "All fields are required")
		return
	}

	if err := h.usecase.ResetPassword(r.Context(), req.Email, req.Otp, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			writeMessage(w, http.StatusBadRequest, false, "User Not Found")
		case errors.Is(err, usecase.ErrInvalidOtp):
			writeMessage(w, http.StatusBadRequest, false, "Invalid OTP")
		case errors.Is(err, usecase.ErrOtpExpired):
			writeMessage(w, http.StatusBadRequest, false, "OTP Expired")
		default:
			h.logger.Error("Failed to reset password", zap.String("email", req.Email), zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, false, "Internal Server Error")
		}
		return
	}

	writeMessage(w, http.StatusOK, true, "Password reset successfully")
}

// GetUserData returns the profile fields for the session's user.
func (h *AuthHandler) GetUserData(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, false, "Unauthorized! Login again to continue")
		return
	}

	user, err := h.usecase.GetUserData(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			writeMessage(w, http.StatusBadRequest, false, "User Not Found")
			return
		}
		h.logger.Error("Failed to get user data", zap.String("userID", userID), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, false, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, UserDataResponse{
		Success: true,
		UserData: UserData{
			Name:              user.Name,
			IsAccountVerified: user.IsAccountVerified,
		},
	})
}
