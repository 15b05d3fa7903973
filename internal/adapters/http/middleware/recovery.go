package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/list-creation-service/internal/adapters/http/dto"
)

// errPanic is what clients see for a recovered panic; it maps to a 500.
var errPanic = errors.New("handler panicked")

// Recovery turns a handler panic into a logged stack trace and, when nothing
// was written yet, a problem+json 500. http.ErrAbortHandler is re-raised so
// that net/http can abort the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "recovered from panic",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)

				if ww.Status() == 0 {
					dto.WriteErrorResponse(ww, r, errPanic)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
