package taskstore

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

const airtableURL = "https://api.airtable.com/v0"

// Airtable creates one record per task, in input order, one request per
// record. Requests are not batched.
type Airtable struct {
	apiKey     string
	baseID     string
	table      string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

func NewAirtable(cfg config.AirtableConfig, log *slog.Logger) *Airtable {
	return &Airtable{
		apiKey:     cfg.APIKey,
		baseID:     cfg.BaseID,
		table:      cfg.Table,
		baseURL:    airtableURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}
}

// airtableFields matches the column names of the tracker table.
type airtableFields struct {
	Name        string   `json:"Name"`
	Description string   `json:"Description"`
	DueDate     string   `json:"Due Date"`
	Priority    string   `json:"Priority"`
	Project     []string `json:"Project"`
}

func (a *Airtable) CreateTasks(ctx context.Context, items []entity.Task) ([]entity.TaskRecord, error) {
	if len(items) == 0 {
		return nil, nil
	}
	if err := validate(items); err != nil {
		return nil, err
	}

	a.log.Info("creating tasks in airtable",
		slog.Int("count", len(items)),
		slog.String("table", a.table))

	created := make([]entity.TaskRecord, 0, len(items))
	for i, it := range items {
		rec, err := a.createOne(ctx, it)
		if err != nil {
			a.log.Error("task creation aborted mid-batch",
				slog.Int("failed_index", i),
				slog.Int("created", len(created)),
				slog.String("error", err.Error()))
			return created, err
		}
		created = append(created, *rec)
	}

	a.log.Info("tasks created", slog.Int("count", len(created)))
	return created, nil
}

func (a *Airtable) createOne(ctx context.Context, it entity.Task) (*entity.TaskRecord, error) {
	project := []string{}
	if it.ProjectName != "" {
		project = []string{it.ProjectName}
	}

	body, err := json.Marshal(map[string]airtableFields{
		"fields": {
			Name:        it.Name,
			Description: it.Description,
			DueDate:     it.DueDate,
			Priority:    it.Priority,
			Project:     project,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal airtable record: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/%s", a.baseURL, a.baseID, url.PathEscape(a.table))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create airtable request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("airtable request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, &entity.UpstreamRequestError{
			Service:    "airtable",
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode airtable response: %w", err)
	}

	return &entity.TaskRecord{ID: out.ID, Fields: it}, nil
}
