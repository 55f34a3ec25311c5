package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/meetflow/followup/services/followup/entity"
)

const firefliesURL = "https://api.fireflies.ai/graphql"

const transcriptQuery = `
query Transcript($transcriptId: String!) {
  transcript(id: $transcriptId) {
    title
    participants
    sentences { speaker_name text }
    summary { bullet_gist }
  }
}`

// Fireflies fetches transcripts from the Fireflies GraphQL API.
type Fireflies struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

func NewFireflies(apiKey string, log *slog.Logger) *Fireflies {
	return &Fireflies{
		apiKey:     apiKey,
		baseURL:    firefliesURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}
}

// firefliesTranscript mirrors the wire shape of the Fireflies transcript query.
type firefliesTranscript struct {
	Title        string   `json:"title"`
	Participants []string `json:"participants"`
	Sentences    []struct {
		SpeakerName string `json:"speaker_name"`
		Text        string `json:"text"`
	} `json:"sentences"`
	Summary struct {
		BulletGist string `json:"bullet_gist"`
	} `json:"summary"`
}

func (f *Fireflies) Fetch(ctx context.Context, meetingID string) (*entity.Transcript, error) {
	f.log.Info("fetching transcript from fireflies", slog.String("meeting_id", meetingID))

	body, err := json.Marshal(map[string]any{
		"query":     transcriptQuery,
		"variables": map[string]string{"transcriptId": meetingID},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal transcript query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create transcript request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+f.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.log.Error("fireflies request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("fireflies request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		f.log.Error("fireflies returned non-success status",
			slog.Int("status_code", resp.StatusCode),
			slog.String("body", string(respBody)))
		return nil, &entity.UpstreamRequestError{
			Service:    "fireflies",
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var result struct {
		Data struct {
			Transcript *firefliesTranscript `json:"transcript"`
		} `json:"data"`
	}
	// Anything that does not decode into the expected shape is treated the
	// same as an absent transcript.
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		f.log.Error("failed to decode fireflies response", slog.String("error", err.Error()))
		return nil, &entity.UpstreamEmptyResult{Service: "fireflies", ID: meetingID}
	}

	t := result.Data.Transcript
	if t == nil || (t.Title == "" && len(t.Participants) == 0 && len(t.Sentences) == 0) {
		f.log.Warn("fireflies returned empty transcript", slog.String("meeting_id", meetingID))
		return nil, &entity.UpstreamEmptyResult{Service: "fireflies", ID: meetingID}
	}

	sentences := make([]entity.Sentence, len(t.Sentences))
	for i, s := range t.Sentences {
		sentences[i] = entity.Sentence{Speaker: s.SpeakerName, Text: s.Text}
	}

	f.log.Info("transcript fetched",
		slog.String("meeting_id", meetingID),
		slog.String("title", t.Title),
		slog.Int("sentences_count", len(sentences)))

	return &entity.Transcript{
		ID:           meetingID,
		Title:        t.Title,
		Participants: t.Participants,
		Sentences:    sentences,
		Summary:      entity.Summary{Gist: t.Summary.BulletGist},
	}, nil
}
