package mail

import (
	"context"

	"go.uber.org/zap"
)

// Message is a plain-text email. Templates are rendered by the caller;
// this layer only delivers.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers notification emails. Every send in this system is
// best-effort: callers dispatch after commit and only log failures.
type Mailer interface {
	Send(ctx context.Context, m Message) error
}

// LogMailer is used when mail delivery is disabled (development, tests).
// It records the message and succeeds.
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer { return &LogMailer{log: log} }

func (l *LogMailer) Send(_ context.Context, m Message) error {
	l.log.Info("mail (delivery disabled)",
		zap.String("to", m.To),
		zap.String("subject", m.Subject))
	return nil
}
