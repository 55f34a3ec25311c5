package taskstore

import (
	"context"
	"log/slog"

	"github.com/meetflow/followup/services/followup/entity"
)

// Synthetic issues no network calls. Each handle id is derived from the task
// name and the handle echoes the task fields.
type Synthetic struct {
	log *slog.Logger
}

func NewSynthetic(log *slog.Logger) *Synthetic {
	return &Synthetic{log: log}
}

func (s *Synthetic) CreateTasks(_ context.Context, items []entity.Task) ([]entity.TaskRecord, error) {
	if len(items) == 0 {
		return nil, nil
	}
	if err := validate(items); err != nil {
		return nil, err
	}

	s.log.Info("[mock] creating tasks", slog.Int("count", len(items)))

	created := make([]entity.TaskRecord, 0, len(items))
	for _, it := range items {
		created = append(created, entity.TaskRecord{
			ID:     "mock_" + it.Name,
			Fields: it,
		})
	}
	return created, nil
}
