package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/meetflow/followup/services/followup/entity"
)

// Synthetic returns a fixed analysis. It does not derive anything from the
// transcript content; only the relative due dates move with the clock.
type Synthetic struct {
	log *slog.Logger
	now func() time.Time
}

func NewSynthetic(log *slog.Logger) *Synthetic {
	return &Synthetic{
		log: log,
		now: time.Now,
	}
}

func (s *Synthetic) Analyze(_ context.Context, t *entity.Transcript) (*entity.Analysis, error) {
	s.log.Info("[mock] analyzing transcript", slog.String("meeting_id", t.ID))

	now := s.now()
	day := func(d int) string {
		return now.AddDate(0, 0, d).Format("2006-01-02")
	}

	return &entity.Analysis{
		TasksForMe: []entity.Task{
			{
				Name:        "Prepare summary and slides",
				Description: "Draft meeting summary + slides for prototype demo",
				DueDate:     day(5),
				Priority:    "High",
				ProjectName: "Phoenix",
			},
		},
		ParticipantTasks: []entity.ParticipantTaskGroup{
			{
				ParticipantEmail: "bob@example.com",
				Tasks: []entity.Task{
					{
						Name:        "Build data pipeline",
						Description: "Create dataset ingestion for prototype",
						DueDate:     day(7),
						Priority:    "Urgent",
						ProjectName: "Phoenix",
					},
				},
			},
		},
		NotifyItems: []entity.NotifyItem{
			{
				ParticipantEmail: "bob@example.com",
				Message:          "You have been assigned: Build data pipeline. Due in 7 days.",
			},
		},
		FollowUp: &entity.FollowUp{
			Required:       true,
			SuggestedStart: day(7) + "T10:00:00",
			SuggestedEnd:   day(7) + "T10:30:00",
			AttendeeEmail:  "alice@example.com",
			MeetingName:    "Follow-up: Project Phoenix",
		},
	}, nil
}
