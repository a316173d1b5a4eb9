package service

import "context"

// MailDispatcher delivers account mails. Implementations own transport and
// templating; callers treat delivery as fire-and-forget.
type MailDispatcher interface {
	// SendConfirmation mails the email-confirmation link carrying the token.
	SendConfirmation(ctx context.Context, email, username, token string) error
}
