package mailer

import (
	"fmt"
	"strings"
)

const emailVerifyTemplate = `<div style="font-family: Arial, sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>Verify your email</h2>
  <p>You are just one step away! Use the OTP below to verify your account <b>{{email}}</b>.</p>
  <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{{otp}}</p>
  <p>This code is valid for 24 hours.</p>
  <p>If you did not request this, please ignore this email.</p>
</div>`

const passwordResetTemplate = `<div style="font-family: Arial, sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>Forgot your password?</h2>
  <p>We received a password reset request for your account <b>{{email}}</b>. Use the OTP below to reset the password.</p>
  <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{{otp}}</p>
  <p>This code is valid for 15 minutes.</p>
  <p>If you did not request this, please ignore this email.</p>
</div>`

func renderTemplate(tmpl, otp, email string) string {
	return strings.NewReplacer("{{otp}}", otp, "{{email}}", email).Replace(tmpl)
}

// WelcomeMessage greets a freshly registered user.
func WelcomeMessage(toEmail, toName string) Message {
	return Message{
		ToEmail: toEmail,
		ToName:  toName,
		Subject: "Welcome to our Stack",
		Text:    fmt.Sprintf("Hello %s, Welcome to our website. We are happy to have you here!", toName),
	}
}

// VerifyOtpMessage carries an account verification code.
func VerifyOtpMessage(toEmail, toName, otp string) Message {
	return Message{
		ToEmail: toEmail,
		ToName:  toName,
		Subject: "Account Verification OTP",
		Text:    fmt.Sprintf("Hello %s, Your OTP for account verification is %s", toName, otp),
		HTML:    renderTemplate(emailVerifyTemplate, otp, toEmail),
	}
}

// ResetOtpMessage carries a password reset code.
func ResetOtpMessage(toEmail, toName, otp string) Message {
	return Message{
		ToEmail: toEmail,
		ToName:  toName,
		Subject: "Password Reset OTP",
		Text:    fmt.Sprintf("Hello %s, Your OTP for password reset is %s", toName, otp),
		HTML:    renderTemplate(passwordResetTemplate, otp, toEmail),
	}
}
