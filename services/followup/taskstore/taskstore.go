// Package taskstore persists extracted tasks into Airtable or synthesizes
// handles offline.
package taskstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	config "github.com/meetflow/followup/config/agent"
	"github.com/meetflow/followup/services/followup/entity"
)

// ErrEmptyTaskName is returned before any call is made when a task in the
// batch has no name.
var ErrEmptyTaskName = errors.New("task name must not be empty")

// Store creates task records in input order. Empty input yields empty output
// with no call made. A failure mid-batch aborts the remaining items but keeps
// the records already created: the returned slice holds prior successes and
// the error describes the failed item. There is no rollback.
type Store interface {
	CreateTasks(ctx context.Context, items []entity.Task) ([]entity.TaskRecord, error)
}

// New selects the live Airtable store when its credentials are complete,
// otherwise the synthetic store.
func New(cfg *config.Config, log *slog.Logger) Store {
	if cfg.AirtableLive() {
		return NewAirtable(cfg.Airtable, log)
	}
	return NewSynthetic(log)
}

func validate(items []entity.Task) error {
	for i, it := range items {
		if it.Name == "" {
			return fmt.Errorf("task %d: %w", i, ErrEmptyTaskName)
		}
	}
	return nil
}
