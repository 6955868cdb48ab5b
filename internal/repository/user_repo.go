package repository

import (
	"context"
	"errors"
	"time"

	"github.com/authstack/auth-service/internal/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var (
	ErrDuplicateEmail = errors.New("email already exists")
	ErrUserNotFound   = errors.New("user not found")
)

type mongoUser struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Name              string             `bson:"name"`
	Email             string             `bson:"email"`
	Password          string             `bson:"password"`
	IsAccountVerified bool               `bson:"is_account_verified"`
	VerifyOtp         string             `bson:"verify_otp"`
	VerifyOtpExpireAt int64              `bson:"verify_otp_expire_at"`
	ResetOtp          string             `bson:"reset_otp"`
	ResetOtpExpireAt  int64              `bson:"reset_otp_expire_at"`
	CreatedAt         time.Time          `bson:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}

func (m *mongoUser) toEntity() *entity.User {
	return &entity.User{
		ID:                m.ID,
		Name:              m.Name,
		Email:             m.Email,
		Password:          m.Password,
		IsAccountVerified: m.IsAccountVerified,
		VerifyOtp:         m.VerifyOtp,
		VerifyOtpExpireAt: m.VerifyOtpExpireAt,
		ResetOtp:          m.ResetOtp,
		ResetOtpExpireAt:  m.ResetOtpExpireAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func fromEntity(e *entity.User) *mongoUser {
	return &mongoUser{
		ID:                e.ID,
		Name:              e.Name,
		Email:             e.Email,
		Password:          e.Password,
		IsAccountVerified: e.IsAccountVerified,
		VerifyOtp:         e.VerifyOtp,
		VerifyOtpExpireAt: e.VerifyOtpExpireAt,
		ResetOtp:          e.ResetOtp,
		ResetOtpExpireAt:  e.ResetOtpExpireAt,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

type UserRepository struct {
	db     *mongo.Database
	logger *zap.Logger
}

func NewUserRepository(db *mongo.Database, logger *zap.Logger) *UserRepository {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Ensure indexes (idempotent operation)
	userCollection := db.Collection("users")
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	_, err := userCollection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Warn("Failed to create indexes for users collection (may already exist)", zap.Error(err))
	} else {
		logger.Info("Successfully ensured indexes for users collection")
	}

	return &UserRepository{
		db:     db,
		logger: logger.Named("UserRepository"),
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) (primitive.ObjectID, error) {
	r.logger.Info("Attempting to create user in repository", zap.String("email", user.Email))

	dbUser := fromEntity(user)
	if dbUser.ID.IsZero() {
		dbUser.ID = primitive.NewObjectID()
	}
	now := time.Now()
	dbUser.CreatedAt = now
	dbUser.UpdatedAt = now
	dbUser.IsAccountVerified = false
	dbUser.VerifyOtp = ""
	dbUser.VerifyOtpExpireAt = 0
	dbUser.ResetOtp = ""
	dbUser.ResetOtpExpireAt = 0

	_, err := r.db.Collection("users").InsertOne(ctx, dbUser)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate email during user creation", zap.String("email", user.Email), zap.Error(err))
			return primitive.NilObjectID, ErrDuplicateEmail
		}
		r.logger.Error("Database error during user creation", zap.String("email", user.Email), zap.Error(err))
		return primitive.NilObjectID, err
	}
	r.logger.Info("User created successfully in repository", zap.String("userID", dbUser.ID.Hex()))
	return dbUser.ID, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.logger.Debug("Attempting to get user by email from repository", zap.String("email", email))
	var dbUser mongoUser
	err := r.db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&dbUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug("User not found by email in repository", zap.String("email", email))
			return nil, ErrUserNotFound
		}
		r.logger.Error("Database error fetching user by email", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return dbUser.toEntity(), nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID primitive.ObjectID) (*entity.User, error) {
	r.logger.Debug("Attempting to get user by ID from repository", zap.String("userID", userID.Hex()))
	var dbUser mongoUser
	err := r.db.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&dbUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug("User not found by ID in repository", zap.String("userID", userID.Hex()))
			return nil, ErrUserNotFound
		}
		r.logger.Error("Database error fetching user by ID", zap.String("userID", userID.Hex()), zap.Error(err))
		return nil, err
	}
	return dbUser.toEntity(), nil
}

// SaveVerifyOtp stores a new verification code, replacing any outstanding one.
func (r *UserRepository) SaveVerifyOtp(ctx context.Context, userID primitive.ObjectID, otp string, expireAt int64) error {
	r.logger.Info("Saving verification OTP", zap.String("userID", userID.Hex()))
	update := bson.M{
		"$set": bson.M{
			"verify_otp":           otp,
			"verify_otp_expire_at": expireAt,
			"updated_at":           time.Now(),
		},
	}
	return r.updateByID(ctx, userID, update, "saving verification OTP")
}

// MarkAccountVerified flags the account as verified and consumes the
// verification code in the same update.
func (r *UserRepository) MarkAccountVerified(ctx context.Context, userID primitive.ObjectID) error {
	r.logger.Info("Marking account as verified", zap.String("userID", userID.Hex()))
	update := bson.M{
		"$set": bson.M{
			"is_account_verified":  true,
			"verify_otp":           "",
			"verify_otp_expire_at": int64(0),
			"updated_at":           time.Now(),
		},
	}
	return r.updateByID(ctx, userID, update, "marking account as verified")
}

// SaveResetOtp stores a new password-reset code, replacing any outstanding one.
func (r *UserRepository) SaveResetOtp(ctx context.Context, userID primitive.ObjectID, otp string, expireAt int64) error {
	r.logger.Info("Saving reset OTP", zap.String("userID", userID.Hex()))
	update := bson.M{
		"$set": bson.M{
			"reset_otp":           otp,
			"reset_otp_expire_at": expireAt,
			"updated_at":          time.Now(),
		},
	}
	return r.updateByID(ctx, userID, update, "saving reset OTP")
}

// UpdatePassword replaces the stored hash and consumes the reset code in the
// same update.
func (r *UserRepository) UpdatePassword(ctx context.Context, userID primitive.ObjectID, hashedPassword string) error {
	r.logger.Info("Updating password", zap.String("userID", userID.Hex()))
	update := bson.M{
		"$set": bson.M{
			"password":            hashedPassword,
			"reset_otp":           "",
			"reset_otp_expire_at": int64(0),
			"updated_at":          time.Now(),
		},
	}
	return r.updateByID(ctx, userID, update, "updating password")
}

func (r *UserRepository) updateByID(ctx context.Context, userID primitive.ObjectID, update bson.M, action string) error {
	result, err := r.db.Collection("users").UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		r.logger.Error("Database error while "+action, zap.String("userID", userID.Hex()), zap.Error(err))
		return err
	}
	if result.MatchedCount == 0 {
		r.logger.Warn("User not found while "+action, zap.String("userID", userID.Hex()))
		return ErrUserNotFound
	}
	return nil
}
