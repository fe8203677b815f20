package mailer

import (
	"context"
	"log/slog"
)

// Mailer sends plain-text notification emails
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Disabled is a Mailer that drops every message. Used when no sender
// address is configured so the rest of the system doesn't need to care.
type Disabled struct {
	logger *slog.Logger
}

// NewDisabled creates a Disabled mailer
func NewDisabled(logger *slog.Logger) *Disabled {
	return &Disabled{logger: logger}
}

var _ Mailer = (*Disabled)(nil)

// Send logs and discards the message
func (m *Disabled) Send(ctx context.Context, to, subject, body string) error {
	m.logger.Info("email sending disabled, dropping message",
		slog.String("to", to),
		slog.String("subject", subject),
	)
	return nil
}
