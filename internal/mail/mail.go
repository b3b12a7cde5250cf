// Package mail provides the outbound email capability. Transports are
// interchangeable behind Sender; callers decide what a delivery failure
// means (the notifier logs and swallows it).
package mail

import (
	"context"
	"fmt"

	"volunteer-portal/internal/config"
)

type Message struct {
	Subject  string
	To       string
	TextBody string
	HTMLBody string // optional
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New selects a transport from the email configuration.
func New(cfg config.EmailConfig) (Sender, error) {
	switch cfg.Mode {
	case "", "console":
		return NewConsoleSender(cfg.From), nil
	case "smtp":
		return NewSMTPSender(cfg), nil
	case "sendgrid":
		return NewSendGridSender(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported email mode: %s", cfg.Mode)
	}
}
