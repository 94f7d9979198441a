package http

import (
	"net/http"
	"time"

	"search-system/internal/metrics"
	"search-system/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Router struct {
	chi.Router
}

func NewRouter() *Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)

	return &Router{r}
}

// RegisterSearchRoutes registers the search endpoint.
func (r *Router) RegisterSearchRoutes(handler *SearchHandler) {
	handler.RegisterRoutes(r)
}

// RegisterHealthRoutes registers health check routes.
func (r *Router) RegisterHealthRoutes() {
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","timestamp":"` + time.Now().Format(time.RFC3339) + `"}`))
	})
}

// RegisterMetricsRoutes exposes the prometheus registry.
func (r *Router) RegisterMetricsRoutes() {
	r.Handle("/metrics", metrics.Handler())
}
