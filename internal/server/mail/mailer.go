// Package mail implements outbound mail delivery for the auth backend.
// The only producer today is the password-reset flow.
package mail

import (
	"context"
	"fmt"
)

// Message is a single outbound HTML email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers messages. Failures are surfaced to the caller; the core
// never retries.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// ResetPasswordMessage builds the password-reset email for the given
// recipient. resetURL points at the frontend reset page carrying the
// plaintext token.
func ResetPasswordMessage(to, resetURL string) Message {
	html := fmt.Sprintf(`<h1>Password Reset</h1>
<p>You requested a password reset. Click the link below to set a new password:</p>
<a href="%s" style="background: #007bff; color: white; padding: 10px 20px; text-decoration: none;">Reset Password</a>
<p>This link expires in 15 minutes.</p>`, resetURL)

	return Message{
		To:      to,
		Subject: "Password Reset Request",
		HTML:    html,
	}
}
