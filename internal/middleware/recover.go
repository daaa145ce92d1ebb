package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"USERTODO_BACK-END/internal/utils"
)

// Recover turns a handler panic into a 500 envelope.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				requestID, _ := RequestIDFromContext(r.Context())
				logger.ErrorContext(r.Context(), "panic recovered",
					"panic", fmt.Sprint(rec),
					"path", r.URL.Path,
					"request_id", requestID,
					"stack", string(debug.Stack()),
				)
				utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", nil)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
