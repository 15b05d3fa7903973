package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/list-creation-service/internal/domain"
)

// ErrorResponse is an RFC 9457 problem document. Code is an extension member
// carrying a stable, machine-readable error kind.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Code     string        `json:"code"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail describes one rejected request field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// Problem codes exposed in ErrorResponse.Code.
const (
	CodeInvalidRequest        = "invalid_request"
	CodeSelectionInvalid      = "selection_invalid"
	CodeSelectionUnresolvable = "selection_unresolvable"
	CodeItemNotFound          = "item_not_found"
	CodeNotFound              = "not_found"
	CodeSessionActive         = "session_active"
	CodeNoSession             = "no_session"
	CodeFetchInProgress       = "fetch_in_progress"
	CodeStaleFetch            = "stale_fetch"
	CodeConflict              = "conflict"
	CodeFetchFailed           = "fetch_failed"
	CodeMalformedData         = "malformed_data"
	CodeUnavailable           = "unavailable"
	CodeInternal              = "internal"
)

// internalDetail replaces the message of unmapped errors.
const internalDetail = "an unexpected error occurred"

type problemKind struct {
	target error
	status int
	code   string
}

// problemKinds is matched in order, so specific board errors precede the
// generic sentinels they wrap.
var problemKinds = []problemKind{
	{domain.ErrValidation, http.StatusBadRequest, CodeInvalidRequest},
	{domain.ErrSelectionInvalid, http.StatusUnprocessableEntity, CodeSelectionInvalid},
	{domain.ErrSelectionUnresolvable, http.StatusNotFound, CodeSelectionUnresolvable},
	{domain.ErrItemNotFound, http.StatusNotFound, CodeItemNotFound},
	{domain.ErrNotFound, http.StatusNotFound, CodeNotFound},
	{domain.ErrSessionActive, http.StatusConflict, CodeSessionActive},
	{domain.ErrNoSession, http.StatusConflict, CodeNoSession},
	{domain.ErrFetchInProgress, http.StatusConflict, CodeFetchInProgress},
	{domain.ErrStaleFetch, http.StatusConflict, CodeStaleFetch},
	{domain.ErrConflict, http.StatusConflict, CodeConflict},
	{domain.ErrFetchFailed, http.StatusBadGateway, CodeFetchFailed},
	{domain.ErrMalformedData, http.StatusBadGateway, CodeMalformedData},
	{domain.ErrUnavailable, http.StatusBadGateway, CodeUnavailable},
}

func classify(err error) problemKind {
	for _, k := range problemKinds {
		if errors.Is(err, k.target) {
			return k
		}
	}
	return problemKind{status: http.StatusInternalServerError, code: CodeInternal}
}

// NewErrorResponse builds the problem document for err. Unmapped errors
// become a 500 whose detail does not echo the underlying message.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	kind := classify(err)

	detail := err.Error()
	if kind.code == CodeInternal {
		detail = internalDetail
	}

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(kind.status),
		Status:   kind.status,
		Code:     kind.code,
		Detail:   detail,
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "encoding problem response",
			slog.String("code", resp.Code),
			slog.Any("error", encErr),
		)
	}
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return strings.Compare(a.Location, b.Location)
	})
	return details
}
