package auth

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateOtp_SixDigits(t *testing.T) {
	t.Parallel()

	for i := 0; i < 200; i++ {
		otp := GenerateOtp()
		require.Len(t, otp, 6)

		n, err := strconv.Atoi(otp)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 100000)
		require.LessOrEqual(t, n, 999999)
	}
}

func TestOtpMatches(t *testing.T) {
	t.Parallel()

	require.True(t, OtpMatches("123456", "123456"))
	require.False(t, OtpMatches("123456", "654321"))
	// A cleared code never matches, even an empty submission.
	require.False(t, OtpMatches("", ""))
	require.False(t, OtpMatches("123456", ""))
}
