package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/list-creation-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/list-creation-service/internal/domain"
	"github.com/jsamuelsen11/list-creation-service/internal/platform/logging"
)

// maxBodyBytes caps request bodies. Move requests are a few dozen bytes.
const maxBodyBytes = 64 << 10

// parseListNumber reads a positive list number from the chi path parameter.
func parseListNumber(r *http.Request, param string) (int, error) {
	n, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil || n < 1 {
		return 0, domain.NewValidationError(param, "must be a positive integer")
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response", "error", err)
	}
}

type validator interface {
	Validate() error
}

// bindJSON decodes the body into dst and validates it. On failure it writes
// the problem response and reports false.
func bindJSON(w http.ResponseWriter, r *http.Request, dst validator) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		msg := "invalid JSON"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = "too large"
		}
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", msg))
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
