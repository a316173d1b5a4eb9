package mail

import (
	"context"
	"io"
	"log/slog"
	"net/smtp"
	"testing"

	"contacthub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(send func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error) *smtpDispatcher {
	return &smtpDispatcher{
		addr:     "smtp.example.com:587",
		from:     "noreply@example.com",
		baseURL:  "https://contacts.example.com",
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		sendMail: send,
	}
}

func TestSMTPDispatcher_SendConfirmation(t *testing.T) {
	var gotTo []string
	var gotMsg []byte
	dispatcher := newTestDispatcher(func(_ string, _ smtp.Auth, from string, to []string, msg []byte) error {
		assert.Equal(t, "noreply@example.com", from)
		gotTo = to
		gotMsg = msg

		return nil
	})

	err := dispatcher.SendConfirmation(context.Background(), "taylor@example.com", "taylor", "tok123")
	require.NoError(t, err)

	assert.Equal(t, []string{"taylor@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Confirm your email")
	assert.Contains(t, string(gotMsg), "https://contacts.example.com/api/auth/confirmed_email/tok123")
	assert.Contains(t, string(gotMsg), "Hi taylor,")
}

func TestSMTPDispatcher_TransportError(t *testing.T) {
	dispatcher := newTestDispatcher(func(_ string, _ smtp.Auth, _ string, _ []string, _ []byte) error {
		return errors.New("connection refused")
	})

	err := dispatcher.SendConfirmation(context.Background(), "taylor@example.com", "taylor", "tok123")
	assert.ErrorContains(t, err, "failed to send confirmation mail")
}

func TestSMTPDispatcher_ContextCancelled(t *testing.T) {
	blocked := make(chan struct{})
	dispatcher := newTestDispatcher(func(_ string, _ smtp.Auth, _ string, _ []string, _ []byte) error {
		<-blocked

		return nil
	})
	defer close(blocked)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := dispatcher.SendConfirmation(ctx, "taylor@example.com", "taylor", "tok123")
	assert.ErrorIs(t, err, context.Canceled)
}
