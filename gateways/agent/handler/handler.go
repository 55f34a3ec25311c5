package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meetflow/followup/pkg/json"
	"github.com/meetflow/followup/services/followup/entity"
)

// MeetingProcessor runs the follow-up pipeline for one meeting.
type MeetingProcessor interface {
	ProcessMeeting(ctx context.Context, meetingID string) (*entity.RunResult, error)
}

type Handler struct {
	processor MeetingProcessor
	log       *slog.Logger
}

func New(processor MeetingProcessor, log *slog.Logger) *Handler {
	return &Handler{
		processor: processor,
		log:       log,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/health", h.HealthCheck)
		api.Post("/runs", h.Run)
		// Fireflies webhook deliveries land on the same pipeline.
		api.Post("/webhooks/meeting", h.Run)
	})
	h.log.Info("routes registered")
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	json.WriteJSON(w, http.StatusOK, map[string]bool{"status": true})
}
