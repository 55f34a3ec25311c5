package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	config "github.com/meetflow/followup/config/agent"
	"github.com/meetflow/followup/services/followup/entity"
)

const openaiURL = "https://api.openai.com/v1/chat/completions"

const systemPrompt = "You extract structured follow-up actions from meeting transcripts."

const userPromptFormat = `You are an assistant that converts a meeting transcript into structured follow-up items.

Return valid JSON with keys: tasks_for_me (array), participant_tasks (array of {participant_email, tasks}), notify_items (array of {participant_email, message}), follow_up (object or null).

MY_EMAIL: %s
MY_NAME: %s

Transcript JSON:
%s

Only include tasks assigned to me in tasks_for_me. Participant tasks should only include tasks for other participants.`

// OpenAI runs the analysis with a single chat completion call.
type OpenAI struct {
	apiKey        string
	model         string
	operatorName  string
	operatorEmail string
	baseURL       string
	httpClient    *http.Client
	log           *slog.Logger
}

func NewOpenAI(cfg config.OpenAIConfig, operator config.OperatorConfig, log *slog.Logger) *OpenAI {
	return &OpenAI{
		apiKey:        cfg.APIKey,
		model:         cfg.Model,
		operatorName:  operator.Name,
		operatorEmail: operator.Email,
		baseURL:       openaiURL,
		httpClient:    &http.Client{Timeout: 120 * time.Second},
		log:           log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (o *OpenAI) Analyze(ctx context.Context, t *entity.Transcript) (*entity.Analysis, error) {
	o.log.Info("analyzing transcript with openai",
		slog.String("meeting_id", t.ID),
		slog.String("model", o.model))

	rawTranscript, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshal transcript for prompt: %w", err)
	}

	body, err := json.Marshal(chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(userPromptFormat, o.operatorEmail, o.operatorName, rawTranscript)},
		},
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		o.log.Error("openai request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		o.log.Error("openai returned non-success status",
			slog.Int("status_code", resp.StatusCode),
			slog.String("body", string(respBody)))
		return nil, &entity.UpstreamRequestError{
			Service:    "openai",
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, fmt.Errorf("decode openai response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, &entity.MalformedAnalysis{Err: errors.New("response contains no choices")}
	}

	a, err := ParseAnalysis(chat.Choices[0].Message.Content)
	if err != nil {
		o.log.Error("failed to parse analysis from model output", slog.String("error", err.Error()))
		return nil, err
	}

	o.log.Info("transcript analyzed",
		slog.Int("tasks_for_me", len(a.TasksForMe)),
		slog.Int("participant_groups", len(a.ParticipantTasks)),
		slog.Int("notify_items", len(a.NotifyItems)),
		slog.Bool("follow_up", a.FollowUp != nil && a.FollowUp.Required))
	return a, nil
}
