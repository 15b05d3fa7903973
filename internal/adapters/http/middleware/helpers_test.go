package middleware_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// logSink captures JSON log records for inspection.
type logSink struct {
	buf bytes.Buffer
}

func (s *logSink) logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(&s.buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (s *logSink) records(t *testing.T) []map[string]any {
	t.Helper()

	var out []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(s.buf.Bytes()))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		out = append(out, rec)
	}
	require.NoError(t, sc.Err())
	return out
}

// find returns the first record with the given message.
func (s *logSink) find(t *testing.T, msg string) map[string]any {
	t.Helper()

	for _, rec := range s.records(t) {
		if rec["msg"] == msg {
			return rec
		}
	}
	t.Fatalf("no %q record in:\n%s", msg, s.buf.String())
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func statusHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
}
