// Package scheduler creates follow-up calendar events with attendees and an
// auto-generated video-conference link.
package scheduler

import (
	"context"
	"log/slog"

	config "github.com/meetflow/followup/config/agent"
	"github.com/meetflow/followup/services/followup/entity"
)

// Scheduler creates one calendar event per call. Start and end are ISO-8601
// datetime strings. No retries.
type Scheduler interface {
	CreateEvent(ctx context.Context, summary, start, end string, attendees []string) (*entity.EventRecord, error)
}

// New selects the live Google Calendar scheduler when its credentials are
// complete, otherwise the synthetic one.
func New(cfg *config.Config, log *slog.Logger) Scheduler {
	if cfg.CalendarLive() {
		return NewGoogleCalendar(cfg.Calendar, log)
	}
	return NewSynthetic(log)
}

// Synthetic returns a fixed event handle without any network effect.
type Synthetic struct {
	log *slog.Logger
}

func NewSynthetic(log *slog.Logger) *Synthetic {
	return &Synthetic{log: log}
}

func (s *Synthetic) CreateEvent(_ context.Context, summary, start, end string, attendees []string) (*entity.EventRecord, error) {
	s.log.Info("[mock] creating calendar event",
		slog.String("summary", summary),
		slog.String("start", start),
		slog.String("end", end),
		slog.Int("attendees", len(attendees)))

	return &entity.EventRecord{
		ID:       "mock_event_1",
		HTMLLink: "https://calendar.example.com/event/mock_event_1",
		MeetLink: "https://meet.example.com/mock-link",
	}, nil
}
