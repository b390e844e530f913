// Package notify delivers one-time codes to customers. Delivery is best
// effort; the code row is already persisted before any send attempt.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
)

type CodeSender interface {
	Send(ctx context.Context, contact, code string) error
}

// SMTPSender sends the code via unauthenticated SMTP (Mailpit-compatible).
type SMTPSender struct {
	addr string
	from string
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	from := strings.TrimSpace(cfg.From)
	if from == "" {
		from = "no-reply@salon-booking.local"
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%s", strings.TrimSpace(cfg.Host), strings.TrimSpace(cfg.Port)),
		from: from,
	}
}

func (s *SMTPSender) Send(_ context.Context, contact, code string) error {
	subject := "Your booking verification code"
	body := fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code)
	msg := buildMessage(s.from, contact, subject, body)
	if err := smtp.SendMail(s.addr, nil, s.from, []string{contact}, []byte(msg)); err != nil {
		return errs.Wrap(err, "failed to send verification email")
	}
	return nil
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message; enough for Mailpit and most SMTP relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from, to, subject, body,
	)
}

// LogSender is the development fallback when SMTP is disabled. The code lands
// in the server log instead of an inbox.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, contact, code string) error {
	s.logger.Info("verification code issued", "contact", contact, "code", code)
	return nil
}

func NewCodeSender(cfg config.SMTPConfig, logger *slog.Logger) CodeSender {
	if cfg.Enabled {
		return NewSMTPSender(cfg)
	}
	return NewLogSender(logger)
}
