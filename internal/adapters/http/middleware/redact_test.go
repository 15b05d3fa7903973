package middleware_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/list-creation-service/internal/adapters/http/middleware"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	h.Set("Authorization", "Bearer abc")
	h.Set("X-Api-Key", "k")
	h.Set("Cookie", "session=1")
	h.Add("Accept", "application/json")
	h.Add("Accept", "text/plain")

	got := make(map[string]string)
	var order []string
	for _, a := range middleware.RedactHeaders(h) {
		got[a.Key] = a.Value.String()
		order = append(order, a.Key)
	}

	assert.Equal(t, []string{"Accept", "Authorization", "Cookie", "X-Api-Key"}, order)
	assert.Equal(t, "application/json,text/plain", got["Accept"])
	assert.Equal(t, "[REDACTED]", got["Authorization"])
	assert.Equal(t, "[REDACTED]", got["Cookie"])
	assert.Equal(t, "[REDACTED]", got["X-Api-Key"])
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.RedactHeaders(http.Header{}))
}
