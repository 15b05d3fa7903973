package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/list-creation-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/list-creation-service/internal/platform/logging"
)

func TestLogging_SummaryRecord(t *testing.T) {
	t.Parallel()

	sink := &logSink{}
	h := middleware.Logging(sink.logger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/board/session", http.NoBody))

	got := sink.find(t, "request handled")
	assert.Equal(t, "INFO", got["level"])
	assert.Equal(t, "POST", got["method"])
	assert.Equal(t, "/api/v1/board/session", got["path"])
	assert.InDelta(t, 201, got["status"], 0)
	assert.InDelta(t, 11, got["bytes"], 0)
	assert.Contains(t, got, "duration")
}

func TestLogging_LevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "INFO"},
		{http.StatusConflict, "WARN"},
		{http.StatusUnprocessableEntity, "WARN"},
		{http.StatusBadGateway, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			sink := &logSink{}
			h := middleware.Logging(sink.logger())(statusHandler(tt.status))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

			assert.Equal(t, tt.level, sink.find(t, "request handled")["level"])
		})
	}
}

func TestLogging_ImplicitOK(t *testing.T) {
	t.Parallel()

	sink := &logSink{}
	h := middleware.Logging(sink.logger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.InDelta(t, 200, sink.find(t, "request handled")["status"], 0)
}

func TestLogging_ContextLoggerCarriesIDs(t *testing.T) {
	t.Parallel()

	sink := &logSink{}
	h := middleware.Chain(
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(sink.logger()),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).InfoContext(r.Context(), "inside handler")
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/board", http.NoBody)
	req.Header.Set(middleware.HeaderRequestID, "req-7")
	req.Header.Set(middleware.HeaderCorrelationID, "corr-7")
	h.ServeHTTP(httptest.NewRecorder(), req)

	inner := sink.find(t, "inside handler")
	assert.Equal(t, "req-7", inner["request_id"])
	assert.Equal(t, "corr-7", inner["correlation_id"])

	summary := sink.find(t, "request handled")
	assert.Equal(t, "req-7", summary["request_id"])
}

func TestLogging_DebugHeadersRedacted(t *testing.T) {
	t.Parallel()

	sink := &logSink{}
	h := middleware.Logging(sink.logger())(statusHandler(http.StatusOK))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("Authorization", "Bearer secret-token")
	req.Header.Set("Accept", "application/json")
	h.ServeHTTP(httptest.NewRecorder(), req)

	headers := sink.find(t, "request headers")
	assert.Equal(t, "[REDACTED]", headers["Authorization"])
	assert.Equal(t, "application/json", headers["Accept"])
}

func TestLogging_RecordsRoutePattern(t *testing.T) {
	t.Parallel()

	sink := &logSink{}
	r := chi.NewRouter()
	r.Use(middleware.Logging(sink.logger()))
	r.Post("/api/v1/board/selection/{listNumber}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/board/selection/3", http.NoBody))

	got := sink.find(t, "request handled")
	assert.Equal(t, "/api/v1/board/selection/{listNumber}", got["route"])
	assert.Equal(t, "/api/v1/board/selection/3", got["path"])
}
