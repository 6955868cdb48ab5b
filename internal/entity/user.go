package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the account document. OTP expiries are epoch milliseconds; an empty
// code with a zero expiry means no OTP is outstanding.
type User struct {
	ID                primitive.ObjectID
	Name              string
	Email             string
	Password          string // bcrypt hash, never plaintext
	IsAccountVerified bool
	VerifyOtp         string
	VerifyOtpExpireAt int64
	ResetOtp          string
	ResetOtpExpireAt  int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
