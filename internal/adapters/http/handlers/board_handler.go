package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/list-creation-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/list-creation-service/internal/domain/board"
	"github.com/jsamuelsen11/list-creation-service/internal/domain/lists"
	"github.com/jsamuelsen11/list-creation-service/internal/ports"
)

// BoardHandler handles HTTP requests for the list board. Every successful
// response carries the full board snapshot after the operation.
type BoardHandler struct {
	service ports.BoardService
}

// NewBoardHandler creates a new BoardHandler with the given service port.
func NewBoardHandler(service ports.BoardService) *BoardHandler {
	return &BoardHandler{service: service}
}

// GetBoard handles GET /api/v1/board.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(h.service.Snapshot(r.Context())))
}

// Refresh handles POST /api/v1/board/refresh.
func (h *BoardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.service.Refresh(r.Context()))
}

// ToggleList handles POST /api/v1/board/selection/{listNumber}.
func (h *BoardHandler) ToggleList(w http.ResponseWriter, r *http.Request) {
	n, err := parseListNumber(r, "listNumber")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.respond(w, r)(h.service.ToggleList(r.Context(), n))
}

// ClearSelection handles DELETE /api/v1/board/selection.
func (h *BoardHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.service.ClearSelection(r.Context()))
}

// OpenSession handles POST /api/v1/board/session.
func (h *BoardHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.OpenSession(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToBoardResponse(state))
}

// MoveItem handles POST /api/v1/board/session/moves.
func (h *BoardHandler) MoveItem(w http.ResponseWriter, r *http.Request) {
	var req dto.MoveItemRequest
	if !bindJSON(w, r, &req) {
		return
	}

	h.respond(w, r)(h.service.MoveItem(r.Context(), lists.Pane(req.From), lists.Pane(req.To), *req.ItemID))
}

// CommitSession handles POST /api/v1/board/session/commit.
func (h *BoardHandler) CommitSession(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.service.CommitSession(r.Context()))
}

// CancelSession handles DELETE /api/v1/board/session.
func (h *BoardHandler) CancelSession(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.service.CancelSession(r.Context()))
}

// DismissError handles DELETE /api/v1/board/error.
func (h *BoardHandler) DismissError(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(h.service.DismissError(r.Context())))
}

// respond returns a writer for a service result: the error as problem+json,
// otherwise the board with 200 OK.
func (h *BoardHandler) respond(w http.ResponseWriter, r *http.Request) func(board.State, error) {
	return func(state board.State, err error) {
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, dto.ToBoardResponse(state))
	}
}
