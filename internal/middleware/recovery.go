package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"search-system/internal/errs"

	"github.com/rs/zerolog/log"
)

// Recovery converts panics into a 500 response carrying the stable internal
// error code. Stack detail goes to the log, never to the client.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("stack", string(debug.Stack())).
					Str("url", r.URL.String()).
					Str("method", r.Method).
					Msg("Panic recovered")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)

				body := map[string]interface{}{
					"error": map[string]interface{}{
						"code":    string(errs.CodeInternal),
						"message": "Internal server error",
					},
				}
				if err := json.NewEncoder(w).Encode(body); err != nil {
					http.Error(w, "Internal server error", http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(w, r)
	})
}
