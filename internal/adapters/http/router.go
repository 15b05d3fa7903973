// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/list-creation-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/list-creation-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/list-creation-service/internal/domain"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	boardHandler *handlers.BoardHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteErrorResponse(w, r, fmt.Errorf("route %s: %w", r.URL.Path, domain.ErrNotFound))
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1/board", func(r chi.Router) {
		r.Get("/", boardHandler.GetBoard)
		r.Post("/refresh", boardHandler.Refresh)
		r.Delete("/error", boardHandler.DismissError)

		// Selection of the two lists to combine.
		r.Post("/selection/{listNumber}", boardHandler.ToggleList)
		r.Delete("/selection", boardHandler.ClearSelection)

		// Move session over the selected lists.
		r.Post("/session", boardHandler.OpenSession)
		r.Delete("/session", boardHandler.CancelSession)
		r.Post("/session/moves", boardHandler.MoveItem)
		r.Post("/session/commit", boardHandler.CommitSession)
	})

	return r
}
