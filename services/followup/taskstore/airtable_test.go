package taskstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/meetflow/followup/config/agent"
	"github.com/meetflow/followup/services/followup/entity"
)

func newTestAirtable(t *testing.T, handler http.HandlerFunc) *Airtable {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a := NewAirtable(config.AirtableConfig{APIKey: "at-key", BaseID: "appBase", Table: "Tasks"}, testLogger())
	a.baseURL = srv.URL
	return a
}

func TestAirtableCreateTasksOneRequestPerTaskInOrder(t *testing.T) {
	var bodies []map[string]airtableFields

	a := newTestAirtable(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer at-key", r.Header.Get("Authorization"))
		require.Equal(t, "/appBase/Tasks", r.URL.Path)

		var body map[string]airtableFields
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		bodies = append(bodies, body)

		fmt.Fprintf(w, `{"id": "rec%d"}`, len(bodies))
	})

	items := []entity.Task{
		{Name: "first", Description: "a", DueDate: "2026-09-01", Priority: "Low", ProjectName: "Phoenix"},
		{Name: "second", Description: "b", DueDate: "2026-09-02", Priority: "High"},
	}

	records, err := a.CreateTasks(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "rec1", records[0].ID)
	assert.Equal(t, items[0], records[0].Fields)
	assert.Equal(t, "rec2", records[1].ID)

	require.Len(t, bodies, 2)
	assert.Equal(t, "first", bodies[0]["fields"].Name)
	assert.Equal(t, "2026-09-01", bodies[0]["fields"].DueDate)
	assert.Equal(t, []string{"Phoenix"}, bodies[0]["fields"].Project)
	assert.Empty(t, bodies[1]["fields"].Project)
}

func TestAirtableCreateTasksAbortsMidBatch(t *testing.T) {
	calls := 0
	a := newTestAirtable(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 2 {
			http.Error(w, `{"error": "INVALID_VALUE_FOR_COLUMN"}`, http.StatusUnprocessableEntity)
			return
		}
		fmt.Fprintf(w, `{"id": "rec%d"}`, calls)
	})

	items := []entity.Task{
		{Name: "first", DueDate: "2026-09-01"},
		{Name: "second", DueDate: "not-a-date"},
		{Name: "third", DueDate: "2026-09-03"},
	}

	records, err := a.CreateTasks(context.Background(), items)

	var reqErr *entity.UpstreamRequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "airtable", reqErr.Service)
	assert.Equal(t, http.StatusUnprocessableEntity, reqErr.StatusCode)

	// The first success is kept, the third task is never attempted.
	require.Len(t, records, 1)
	assert.Equal(t, "rec1", records[0].ID)
	assert.Equal(t, 2, calls)
}

func TestAirtableCreateTasksEmptyInputMakesNoCall(t *testing.T) {
	calls := 0
	a := newTestAirtable(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	records, err := a.CreateTasks(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Zero(t, calls)
}

func TestAirtableCreateTasksRejectsEmptyNameBeforeAnyCall(t *testing.T) {
	calls := 0
	a := newTestAirtable(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	_, err := a.CreateTasks(context.Background(), []entity.Task{{Name: ""}})
	require.ErrorIs(t, err, ErrEmptyTaskName)
	assert.Zero(t, calls)
}
