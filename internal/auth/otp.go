package auth

import (
	"crypto/subtle"
	"math/rand/v2"
	"strconv"
)

// GenerateOtp returns a 6-digit numeric one-time code in [100000, 999999].
// Not cryptographically hardened; the code is single-use, short-lived and
// only deliverable to the registered inbox.
func GenerateOtp() string {
	return strconv.Itoa(100000 + rand.IntN(900000))
}

// OtpMatches compares a submitted code against the stored one in constant time.
func OtpMatches(submitted, stored string) bool {
	if stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(stored)) == 1
}
