package server

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elite747/ValhallaLootList-sub000/internal/allocation"
	"github.com/Elite747/ValhallaLootList-sub000/internal/domain"
	"github.com/Elite747/ValhallaLootList-sub000/internal/lootlist"
	"github.com/Elite747/ValhallaLootList-sub000/internal/metrics"
	"github.com/Elite747/ValhallaLootList-sub000/internal/priority"
)

const testAPIKey = "test-api-key"

type stubPool struct{ err error }

func (p stubPool) Ping(context.Context) error { return p.err }
func (p stubPool) Close()                     {}

type stubLootLists struct{ lootlist.Service }

func (stubLootLists) GetLootList(_ context.Context, listID string) (*lootlist.ListView, error) {
	if listID != "list-1" {
		return nil, domain.ErrLootListNotFound
	}
	return &lootlist.ListView{List: domain.CharacterLootList{ID: listID, Timestamp: "ts-1"}}, nil
}

type stubPriority struct{ priority.Service }

func (stubPriority) RecordDonation(context.Context, domain.MonthDonation) error { return nil }

type stubDrops struct{ allocation.Service }

func (stubDrops) Standings(context.Context, string) ([]allocation.Standing, error) {
	return []allocation.Standing{{Candidate: allocation.Candidate{CharacterID: "alice"}, Name: "Alice"}}, nil
}

func newTestRouter(maxBytes int64) http.Handler {
	return NewRouter(
		Options{APIKey: testAPIKey, MaxRequestBytes: maxBytes, Version: "test"},
		stubPool{},
		Services{LootList: stubLootLists{}, Priority: stubPriority{}, Drop: stubDrops{}},
	)
}

func do(h http.Handler, method, target, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if authed {
		req.Header.Set(HeaderAPIKey, testAPIKey)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(1 << 20)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		authed     bool
		wantStatus int
		wantBody   string
	}{
		{"healthz is public", "GET", "/healthz", "", false, http.StatusOK, `"version":"test"`},
		{"readyz is public", "GET", "/readyz", "", false, http.StatusOK, `"status":"ok"`},
		{"api requires key", "GET", "/api/v1/lists/list-1", "", false, http.StatusUnauthorized, ErrMsgUnauthorized},
		{"get list", "GET", "/api/v1/lists/list-1", "", true, http.StatusOK, `"timestamp":"ts-1"`},
		{"missing list", "GET", "/api/v1/lists/list-2", "", true, http.StatusNotFound, "Loot list not found"},
		{"standings", "GET", "/api/v1/drops/drop-1/standings", "", true, http.StatusOK, `"character_id":"alice"`},
		{"donation", "POST", "/api/v1/donations", `{"character_id":"alice","year":2021,"month":7,"amount":10}`, true, http.StatusCreated, "Donation recorded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(router, tt.method, tt.target, tt.body, tt.authed)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestRouter_RequestSizeLimit(t *testing.T) {
	router := newTestRouter(32)

	body := `{"character_id":"` + strings.Repeat("a", 64) + `","year":2021,"month":7,"amount":10}`
	rec := do(router, "POST", "/api/v1/donations", body, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_RecordsRequestMetrics(t *testing.T) {
	router := newTestRouter(1 << 20)
	counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/healthz", "200")
	before := testutil.ToFloat64(counter)

	do(router, "GET", "/healthz", "", false)
	do(router, "GET", "/healthz", "", false)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.HTTPRequestsInFlight))

	rec := do(router, "GET", "/metrics", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), metrics.MetricNameHTTPRequestsTotal)
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	handler := loggingMiddleware(okHandler())

	req := httptest.NewRequest("GET", "/api/v1/lists/list-1", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
	assert.Contains(t, out, "request_id=")
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}

func TestLoggingMiddleware_KeepsCallerRequestID(t *testing.T) {
	handler := loggingMiddleware(okHandler())

	req := httptest.NewRequest("GET", "/api/v1/lists/list-1", nil)
	req.Header.Set(HeaderRequestID, "upstream-42")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "upstream-42", rec.Header().Get(HeaderRequestID))
}

func TestLoggingMiddleware_SkipsQuietPaths(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	rec := httptest.NewRecorder()
	loggingMiddleware(okHandler()).ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	assert.Empty(t, buf.String())
	assert.Empty(t, rec.Header().Get(HeaderRequestID))
}
