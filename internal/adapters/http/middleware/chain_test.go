package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/list-creation-service/internal/adapters/http/middleware"
)

func TestChain_OutermostFirst(t *testing.T) {
	t.Parallel()

	var trace []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				trace = append(trace, "+"+name)
				next.ServeHTTP(w, r)
				trace = append(trace, "-"+name)
			})
		}
	}

	h := middleware.Chain(tag("a"), tag("b"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		trace = append(trace, "h")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, []string{"+a", "+b", "h", "-b", "-a"}, trace)
}

func TestChain_EmptyIsIdentity(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	middleware.Chain()(statusHandler(http.StatusTeapot)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestChain_ServerStack(t *testing.T) {
	t.Parallel()

	sink := &logSink{}
	logger := sink.logger()

	h := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.OpenTelemetry(nil),
		middleware.Logging(logger),
		chimw.Timeout(time.Second),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline := r.Context().Deadline()
		assert.True(t, hasDeadline)
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/board", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))
	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderCorrelationID))
	sink.find(t, "recovered from panic")
}
