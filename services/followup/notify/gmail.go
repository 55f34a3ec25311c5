package notify

import (
	"context"
	"log/slog"
)

// Gmail holds a bearer credential, but the live transport is not wired up:
// sending over the Gmail REST API needs a full OAuth flow plus base64 raw
// message encoding. Send reports declined rather than success or error.
//
// TODO: implement the real send once the Google OAuth flow lands.
type Gmail struct {
	bearer string
	log    *slog.Logger
}

func NewGmail(bearer string, log *slog.Logger) *Gmail {
	return &Gmail{
		bearer: bearer,
		log:    log,
	}
}

func (g *Gmail) Send(_ context.Context, to, subject, _ string) (bool, error) {
	g.log.Warn("live Gmail sending is not implemented, declining send",
		slog.String("to", to),
		slog.String("subject", subject))
	return false, nil
}
