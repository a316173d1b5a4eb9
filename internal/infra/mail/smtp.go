// Package mail delivers account mails over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"contacthub/config"
	"contacthub/internal/domain/service"
	"contacthub/internal/errors"

	"go.uber.org/fx"
)

const confirmationSubject = "Confirm your email"

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type smtpDispatcher struct {
	addr     string
	auth     smtp.Auth
	from     string
	baseURL  string
	logger   *slog.Logger
	sendMail func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPDispatcher creates the SMTP-backed MailDispatcher.
func NewSMTPDispatcher(params Params) (service.MailDispatcher, error) {
	cfg := params.Config.Mail
	if cfg == nil {
		return nil, errors.New("mail configuration must be provided")
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &smtpDispatcher{
		addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		auth:     auth,
		from:     cfg.From,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		logger:   params.Logger,
		sendMail: smtp.SendMail,
	}, nil
}

// SendConfirmation mails the confirmation link. The token rides as a path
// segment so the link works from any mail client without query escaping.
func (d *smtpDispatcher) SendConfirmation(ctx context.Context, email, username, token string) error {
	link := fmt.Sprintf("%s/api/auth/confirmed_email/%s", d.baseURL, token)
	body := d.buildMessage(email, confirmationSubject, confirmationBody(username, link))

	done := make(chan error, 1)
	go func() {
		done <- d.sendMail(d.addr, d.auth, d.from, []string{email}, body)
	}()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "confirmation mail aborted")
	case err := <-done:
		if err != nil {
			return errors.Wrap(err, "failed to send confirmation mail")
		}
	}

	d.logger.Info("Confirmation mail sent", slog.String("email", email))

	return nil
}

func (d *smtpDispatcher) buildMessage(to, subject, body string) []byte {
	var msg strings.Builder
	msg.WriteString("From: " + d.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	return []byte(msg.String())
}

func confirmationBody(username, link string) string {
	return fmt.Sprintf("Hi %s,\r\n\r\n"+
		"Please confirm your email address by opening the link below:\r\n\r\n"+
		"%s\r\n\r\n"+
		"If you did not create this account, ignore this mail.\r\n", username, link)
}
