package store

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetdesk/config"
	domainerrors "fleetdesk/internal/domain/errors"
	"fleetdesk/internal/domain/entity"
	"fleetdesk/internal/domain/repository"
	"fleetdesk/internal/errors"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Store.BaseURL = srv.URL
	cfg.Store.Token = "test-token"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewClient(cfg, logger)
}

func writeData(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"data": data}))
}

func TestFindByInternalID_ParsesParentFromTagBlob(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/items/reminders/42", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		writeData(t, w, map[string]any{
			"id":            42,
			"external_id":   "abc123",
			"title":         "Tire rotation",
			"schedule_kind": "unique",
			"scheduled_at":  "2025-01-10T09:00:00Z",
			"tags": map[string]any{
				"parentReminderId": "7",
				"color":            "red",
			},
		})
	}))

	got, err := NewReminderRepository(client).FindByInternalID(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, got.ParentReminderID)
	assert.Equal(t, int64(7), *got.ParentReminderID)
	assert.Equal(t, map[string]any{"color": "red"}, got.Tags)
	assert.True(t, got.IsOccurrence())
}

func TestFindByInternalID_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := NewReminderRepository(client).FindByInternalID(context.Background(), 99)
	assert.True(t, errors.Is(err, repository.ErrRecordNotFound))
}

func TestFindByExternalID_UnsupportedRoute(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))

	_, err := NewReminderRepository(client).FindByExternalID(context.Background(), "abc")
	assert.True(t, errors.Is(err, repository.ErrQueryNotSupported))
}

func TestQueryByExternalID_RejectedFilter(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))

	_, err := NewReminderRepository(client).QueryByExternalID(context.Background(), "abc")
	assert.True(t, errors.Is(err, repository.ErrQueryNotSupported))
}

func TestQueryByExternalID_EmptyResultIsNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc", r.URL.Query().Get("external_id"))
		writeData(t, w, []any{})
	}))

	_, err := NewReminderRepository(client).QueryByExternalID(context.Background(), "abc")
	assert.True(t, errors.Is(err, repository.ErrRecordNotFound))
}

func TestDo_BackendErrorCarriesPayloadMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"errors":[{"message":"duplicate reminder"}]}`))
	}))

	_, err := NewReminderRepository(client).FindByInternalID(context.Background(), 1)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "duplicate reminder", appErr.Message())
}

func TestDo_TransportFailureIsNotNotFound(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.BaseURL = "http://127.0.0.1:1" // nothing listens here
	client := NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := NewReminderRepository(client).FindByInternalID(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrRecordNotFound))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "BACKEND_UNREACHABLE", appErr.ErrorCode())
}

func TestUpdate_RoundTripsTagBlob(t *testing.T) {
	var received reminderModel
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		writeData(t, w, received)
	}))

	parent := int64(7)
	reminder := &entity.Reminder{
		InternalID:       42,
		Title:            "Occurrence",
		ScheduleKind:     entity.ScheduleUnique,
		ScheduledAt:      time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC),
		ParentReminderID: &parent,
		Tags:             map[string]any{"color": "red"},
	}

	got, err := NewReminderRepository(client).Update(context.Background(), 42, reminder)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"color": "red", "parentReminderId": float64(7)}, received.Tags)
	require.NotNil(t, got.ParentReminderID)
	assert.Equal(t, int64(7), *got.ParentReminderID)
}

func TestListPage_PassesPaging(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "250", r.URL.Query().Get("limit"))
		writeData(t, w, []map[string]any{{"id": 1, "title": "a", "schedule_kind": "unique", "scheduled_at": "2025-01-10T09:00:00Z"}})
	}))

	got, err := NewReminderRepository(client).ListPage(context.Background(), 3, 250)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].InternalID)
}
