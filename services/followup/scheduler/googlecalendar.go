package scheduler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	config "github.com/meetflow/followup/config/agent"
	"github.com/meetflow/followup/services/followup/entity"
)

const calendarURL = "https://www.googleapis.com/calendar/v3"

// GoogleCalendar creates events through the Calendar REST API, requesting a
// Meet link for every event.
type GoogleCalendar struct {
	token      string
	calendarID string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
	now        func() time.Time
}

func NewGoogleCalendar(cfg config.CalendarConfig, log *slog.Logger) *GoogleCalendar {
	return &GoogleCalendar{
		token:      cfg.APIToken,
		calendarID: cfg.CalendarID,
		baseURL:    calendarURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
		now:        time.Now,
	}
}

type (
	eventTime struct {
		DateTime string `json:"dateTime"`
	}

	eventAttendee struct {
		Email string `json:"email"`
	}

	conferenceRequest struct {
		RequestID string `json:"requestId"`
	}

	conferenceData struct {
		CreateRequest conferenceRequest `json:"createRequest"`
	}

	eventRequest struct {
		Summary        string          `json:"summary"`
		Start          eventTime       `json:"start"`
		End            eventTime       `json:"end"`
		Attendees      []eventAttendee `json:"attendees"`
		ConferenceData conferenceData  `json:"conferenceData"`
	}
)

func (g *GoogleCalendar) CreateEvent(ctx context.Context, summary, start, end string, attendees []string) (*entity.EventRecord, error) {
	g.log.Info("creating calendar event",
		slog.String("summary", summary),
		slog.String("start", start),
		slog.String("end", end),
		slog.Int("attendees", len(attendees)))

	att := make([]eventAttendee, len(attendees))
	for i, email := range attendees {
		att[i] = eventAttendee{Email: email}
	}

	body, err := json.Marshal(eventRequest{
		Summary:   summary,
		Start:     eventTime{DateTime: start},
		End:       eventTime{DateTime: end},
		Attendees: att,
		ConferenceData: conferenceData{
			// Idempotency token for the Meet link request, derived from the clock.
			CreateRequest: conferenceRequest{RequestID: fmt.Sprintf("followup-%d", g.now().UnixNano())},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal calendar event: %w", err)
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events?conferenceDataVersion=1", g.baseURL, url.PathEscape(g.calendarID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create calendar request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calendar request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		g.log.Error("calendar returned non-success status",
			slog.Int("status_code", resp.StatusCode),
			slog.String("body", string(respBody)))
		return nil, &entity.UpstreamRequestError{
			Service:    "google-calendar",
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var out struct {
		ID          string `json:"id"`
		HTMLLink    string `json:"htmlLink"`
		HangoutLink string `json:"hangoutLink"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode calendar response: %w", err)
	}

	g.log.Info("calendar event created", slog.String("event_id", out.ID))
	return &entity.EventRecord{
		ID:       out.ID,
		HTMLLink: out.HTMLLink,
		MeetLink: out.HangoutLink,
	}, nil
}
