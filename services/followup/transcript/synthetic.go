package transcript

import (
	"context"
	"log/slog"

	"github.com/meetflow/followup/services/followup/entity"
)

// Synthetic returns a fixed transcript built from the meeting id and the
// operator identity. Two calls with the same id yield structurally identical
// transcripts.
type Synthetic struct {
	operatorName  string
	operatorEmail string
	log           *slog.Logger
}

func NewSynthetic(operatorName, operatorEmail string, log *slog.Logger) *Synthetic {
	if operatorName == "" {
		operatorName = "Me"
	}
	if operatorEmail == "" {
		operatorEmail = "me@example.com"
	}
	return &Synthetic{
		operatorName:  operatorName,
		operatorEmail: operatorEmail,
		log:           log,
	}
}

func (s *Synthetic) Fetch(_ context.Context, meetingID string) (*entity.Transcript, error) {
	s.log.Info("[mock] fetching transcript", slog.String("meeting_id", meetingID))

	return &entity.Transcript{
		ID:           meetingID,
		Title:        "Project Phoenix kickoff",
		Participants: []string{"alice@example.com", "bob@example.com", s.operatorEmail},
		Sentences: []entity.Sentence{
			{Speaker: "Alice", Text: "We need to deliver the prototype by next Friday."},
			{Speaker: "Bob", Text: "I'll take the data pipeline action."},
			{Speaker: s.operatorName, Text: "I'll prepare the summary and arrange follow-up call."},
		},
		Summary: entity.Summary{
			Gist: "Prototype due next Friday. Bob owns data pipeline. Follow-up call needed.",
		},
	}, nil
}
