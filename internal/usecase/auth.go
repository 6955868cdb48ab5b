package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/authstack/auth-service/internal/auth"
	"github.com/authstack/auth-service/internal/entity"
	"github.com/authstack/auth-service/internal/mailer"
	"github.com/authstack/auth-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrAlreadyVerified    = errors.New("account already verified")
	ErrInvalidOtp         = errors.New("invalid otp")
	ErrOtpExpired         = errors.New("otp expired")
)

const (
	// VerifyOtpTTL gates a low-risk action, so the window is generous.
	VerifyOtpTTL = 24 * time.Hour
	// ResetOtpTTL gates credential takeover and stays short.
	ResetOtpTTL = 15 * time.Minute
)

// UserRepository is the slice of the store the auth flows need.
type UserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) (primitive.ObjectID, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, userID primitive.ObjectID) (*entity.User, error)
	SaveVerifyOtp(ctx context.Context, userID primitive.ObjectID, otp string, expireAt int64) error
	MarkAccountVerified(ctx context.Context, userID primitive.ObjectID) error
	SaveResetOtp(ctx context.Context, userID primitive.ObjectID, otp string, expireAt int64) error
	UpdatePassword(ctx context.Context, userID primitive.ObjectID, hashedPassword string) error
}

type AuthUsecase struct {
	repo   UserRepository
	mailer mailer.Mailer
}

func NewAuthUsecase(repo UserRepository, m mailer.Mailer) *AuthUsecase {
	return &AuthUsecase{
		repo:   repo,
		mailer: m,
	}
}

// Register creates the account and sends the welcome mail. The returned id is
// the hex form used in session tokens.
func (u *AuthUsecase) Register(ctx context.Context, name, email, password string) (string, error) {
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := &entity.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}

	userID, err := u.repo.CreateUser(ctx, user)
	if err != nil {
		return "", err
	}

	if err := u.mailer.Send(mailer.WelcomeMessage(email, name)); err != nil {
		return "", err
	}

	return userID.Hex(), nil
}

// Login verifies the credentials and returns the user id on success.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.CheckPassword(password, user.Password) {
		return "", ErrInvalidPassword
	}

	return user.ID.Hex(), nil
}

// SendVerifyOtp issues a fresh verification code, replacing any outstanding
// one, and mails it to the account's address.
func (u *AuthUsecase) SendVerifyOtp(ctx context.Context, userID string) error {
	user, err := u.getUserByHexID(ctx, userID)
	if err != nil {
		return err
	}

	if user.IsAccountVerified {
		return ErrAlreadyVerified
	}

	otp := auth.GenerateOtp()
	expireAt := time.Now().Add(VerifyOtpTTL).UnixMilli()
	if err := u.repo.SaveVerifyOtp(ctx, user.ID, otp, expireAt); err != nil {
		return err
	}

	return u.mailer.Send(mailer.VerifyOtpMessage(user.Email, user.Name, otp))
}

// VerifyEmail consumes a verification code and flags the account as verified.
func (u *AuthUsecase) VerifyEmail(ctx context.Context, userID, otp string) error {
	user, err := u.getUserByHexID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.OtpMatches(otp, user.VerifyOtp) {
		return ErrInvalidOtp
	}
	if time.Now().UnixMilli() >= user.VerifyOtpExpireAt {
		return ErrOtpExpired
	}

	return u.repo.MarkAccountVerified(ctx, user.ID)
}

// SendResetOtp issues a fresh password-reset code and mails it.
func (u *AuthUsecase) SendResetOtp(ctx context.Context, email string) error {
	user, err := u.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	otp := auth.GenerateOtp()
	expireAt := time.Now().Add(ResetOtpTTL).UnixMilli()
	if err := u.repo.SaveResetOtp(ctx, user.ID, otp, expireAt); err != nil {
		return err
	}

	return u.mailer.Send(mailer.ResetOtpMessage(user.Email, user.Name, otp))
}

// ResetPassword consumes a reset code and replaces the stored password hash.
func (u *AuthUsecase) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	user, err := u.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	if !auth.OtpMatches(otp, user.ResetOtp) {
		return ErrInvalidOtp
	}
	if time.Now().UnixMilli() >= user.ResetOtpExpireAt {
		return ErrOtpExpired
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return u.repo.UpdatePassword(ctx, user.ID, hashedPassword)
}

// GetUserData returns the profile fields exposed to the client.
func (u *AuthUsecase) GetUserData(ctx context.Context, userID string) (*entity.User, error) {
	return u.getUserByHexID(ctx, userID)
}

func (u *AuthUsecase) getUserByHexID(ctx context.Context, userID string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		// A verified token carrying a malformed id points at no record.
		return nil, repository.ErrUserNotFound
	}
	return u.repo.GetUserByID(ctx, oid)
}
