// Package analysis turns a meeting transcript into structured follow-up
// actions, either through one OpenAI chat completion or through a fixed
// synthetic fixture.
package analysis

import (
	"context"
	"log/slog"

	config "github.com/meetflow/followup/config/agent"
	"github.com/meetflow/followup/services/followup/entity"
)

// Engine produces exactly one analysis per transcript. No chunking, no
// multi-turn refinement.
type Engine interface {
	Analyze(ctx context.Context, t *entity.Transcript) (*entity.Analysis, error)
}

// New selects the live OpenAI engine when the model credential is present,
// otherwise the synthetic fixture. The model credential is also the global
// offline gate, so this is the collaborator that defines the mode split.
func New(cfg *config.Config, log *slog.Logger) Engine {
	if cfg.OpenAILive() {
		return NewOpenAI(cfg.OpenAI, cfg.Operator, log)
	}
	return NewSynthetic(log)
}
