// Package notify delivers plain-text messages to single recipients.
//
// The send outcome is three-way: simulated success (synthetic), real success,
// and declined. Declined means the live transport exists in configuration but
// was not attempted; it is reported as false with a nil error and is distinct
// from a hard transport failure.
package notify

import (
	"context"
	"log/slog"

	config "github.com/meetflow/followup/config/agent"
)

type Notifier interface {
	Send(ctx context.Context, to, subject, body string) (bool, error)
}

// New selects the live Gmail notifier when its bearer credential is present,
// otherwise the synthetic notifier.
func New(cfg *config.Config, log *slog.Logger) Notifier {
	if cfg.GmailLive() {
		return NewGmail(cfg.Gmail.OAuthBearer, log)
	}
	return NewSynthetic(log)
}

// Synthetic logs the message and reports a simulated successful send.
type Synthetic struct {
	log *slog.Logger
}

func NewSynthetic(log *slog.Logger) *Synthetic {
	return &Synthetic{log: log}
}

func (s *Synthetic) Send(_ context.Context, to, subject, body string) (bool, error) {
	s.log.Info("[mock] sending notification",
		slog.String("to", to),
		slog.String("subject", subject))
	s.log.Debug("notification body", slog.String("body", body))
	return true, nil
}
