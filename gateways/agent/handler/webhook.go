package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/meetflow/followup/pkg/json"
)

// defaultMeetingID is used when the trigger payload names no meeting at all.
const defaultMeetingID = "demo_meeting_1"

// RunRequest is the trigger payload. The meeting identifier is read from
// meetingId, then transcriptId, then id, whichever comes first.
type RunRequest struct {
	MeetingID    string `json:"meetingId"`
	TranscriptID string `json:"transcriptId"`
	ID           string `json:"id"`
}

func (r RunRequest) ResolveMeetingID() string {
	switch {
	case r.MeetingID != "":
		return r.MeetingID
	case r.TranscriptID != "":
		return r.TranscriptID
	case r.ID != "":
		return r.ID
	}
	return defaultMeetingID
}

// Run triggers one pipeline invocation. The response body is the RunResult;
// a fatal stage failure (fetch or analyze) maps to 502 with the stage named
// in the error.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := json.ParseJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.log.Warn("invalid trigger payload", slog.String("error", err.Error()))
		json.WriteError(w, http.StatusBadRequest, err)
		return
	}

	meetingID := req.ResolveMeetingID()
	h.log.Info("run triggered", slog.String("meeting_id", meetingID))

	result, err := h.processor.ProcessMeeting(r.Context(), meetingID)
	if err != nil {
		h.log.Error("run failed",
			slog.String("meeting_id", meetingID),
			slog.String("error", err.Error()))
		json.WriteError(w, http.StatusBadGateway, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, result)
}
