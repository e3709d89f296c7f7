package mailmock

import (
	"context"
	"sync"

	"investlink-backend/internal/infrastructure/mail"
)

var _ mail.Mailer = (*Mailer)(nil)

// Mailer records every Send for later assertion. Safe for concurrent
// use because usecases deliver mail from goroutines.
type Mailer struct {
	mu   sync.Mutex
	sent []mail.Message

	// Err, when set, is returned from every Send.
	Err error
}

func (m *Mailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.sent = append(m.sent, msg)
	return nil
}

// Sent returns a copy of everything delivered so far.
func (m *Mailer) Sent() []mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]mail.Message, len(m.sent))
	copy(out, m.sent)
	return out
}
