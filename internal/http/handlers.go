package http

import (
	"context"
	"encoding/json"
	"net/http"

	"search-system/internal/errs"
	"search-system/internal/services/llm"
	"search-system/internal/services/search"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// SearchService is the pipeline entry point as seen by the HTTP layer.
type SearchService interface {
	Search(ctx context.Context, query string) (*search.Result, error)
}

// SearchHandler handles the search endpoint.
type SearchHandler struct {
	service SearchService
}

func NewSearchHandler(service SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// RegisterRoutes registers the search route.
func (h *SearchHandler) RegisterRoutes(r chi.Router) {
	r.Get("/search", h.Search)
}

// Search handles GET /search?q=<query>. Input validation and outcome metrics
// belong to the pipeline; the handler only translates outcomes to the wire.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	result, err := h.service.Search(r.Context(), q)
	if err != nil {
		log.Error().Err(err).Str("query", q).Msg("Search failed")
		writeError(w, err)
		return
	}

	if result.Empty() {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": noResultsMessage(result.Intent)})
		return
	}

	writeJSON(w, http.StatusOK, result.Records())
}

func noResultsMessage(intent llm.Intent) string {
	if intent == llm.IntentEvent {
		return "No upcoming events found."
	}
	return "No results found."
}

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(code errs.Code) int {
	switch code {
	case errs.CodeInvalidInput:
		return http.StatusBadRequest
	case errs.CodeResourceExhausted:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := errs.CodeOf(err)
	writeJSON(w, statusFor(code), NewErrorResponse(string(code), errs.MessageOf(err)))
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}
