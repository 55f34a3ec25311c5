// Package transcript yields normalized meeting transcripts, either from the
// Fireflies GraphQL API or from a deterministic synthetic fixture.
package transcript

import (
	"context"
	"log/slog"

	config "github.com/meetflow/followup/config/agent"
	"github.com/meetflow/followup/services/followup/entity"
)

// Provider fetches the transcript for a meeting id. One attempt per call, no
// retries.
type Provider interface {
	Fetch(ctx context.Context, meetingID string) (*entity.Transcript, error)
}

// New selects the live Fireflies provider when its credential is usable,
// otherwise the synthetic fixture. The choice is made once here so callers
// never inspect mode flags.
func New(cfg *config.Config, log *slog.Logger) Provider {
	if cfg.FirefliesLive() {
		return NewFireflies(cfg.Fireflies.APIKey, log)
	}
	return NewSynthetic(cfg.Operator.Name, cfg.Operator.Email, log)
}
