package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWelcomeMessage(t *testing.T) {
	t.Parallel()

	msg := WelcomeMessage("a@x.com", "A")
	require.Equal(t, "a@x.com", msg.ToEmail)
	require.Equal(t, "Welcome to our Stack", msg.Subject)
	require.Contains(t, msg.Text, "Hello A")
	require.Empty(t, msg.HTML)
}

func TestVerifyOtpMessage(t *testing.T) {
	t.Parallel()

	msg := VerifyOtpMessage("a@x.com", "A", "123456")
	require.Equal(t, "Account Verification OTP", msg.Subject)
	require.Contains(t, msg.Text, "123456")
	require.Contains(t, msg.HTML, "123456")
	require.Contains(t, msg.HTML, "a@x.com")
	require.NotContains(t, msg.HTML, "{{otp}}")
	require.NotContains(t, msg.HTML, "{{email}}")
}

func TestResetOtpMessage(t *testing.T) {
	t.Parallel()

	msg := ResetOtpMessage("a@x.com", "A", "654321")
	require.Equal(t, "Password Reset OTP", msg.Subject)
	require.Contains(t, msg.Text, "654321")
	require.Contains(t, msg.HTML, "654321")
	require.Contains(t, msg.HTML, "a@x.com")
}
