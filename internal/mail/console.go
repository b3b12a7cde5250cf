package mail

import (
	"context"

	"volunteer-portal/internal/logger"
)

// consoleSender writes messages to the log instead of delivering them.
// Default transport for local development.
type consoleSender struct {
	from string
}

func NewConsoleSender(from string) Sender {
	return &consoleSender{from: from}
}

func (s *consoleSender) Send(ctx context.Context, msg Message) error {
	logger.Info("console email", "from", s.from, "to", msg.To, "subject", msg.Subject)
	logger.Debug("console email body", "to", msg.To, "text_body", msg.TextBody)
	return nil
}
