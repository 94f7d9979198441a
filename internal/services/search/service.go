package search

import (
	"context"
	"fmt"
	"strings"

	"search-system/internal/config"
	"search-system/internal/errs"
	"search-system/internal/metrics"
	"search-system/internal/services/events"
	"search-system/internal/services/llm"
	"search-system/internal/services/places"

	"github.com/rs/zerolog/log"
)

// EventSearcher is the event source adapter as seen by the orchestrator.
type EventSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]events.Record, error)
}

// PlaceSearcher is the location source adapter as seen by the orchestrator.
type PlaceSearcher interface {
	Search(ctx context.Context, query string, limit int, enrich bool) ([]places.Record, error)
}

// Result is one homogeneous record sequence: exactly one of Events or Places
// is populated, decided by Intent.
type Result struct {
	Intent llm.Intent
	Events []events.Record
	Places []places.Record
}

// Empty reports whether the matched adapter returned zero records.
func (r *Result) Empty() bool {
	return len(r.Events) == 0 && len(r.Places) == 0
}

// Records returns the populated sequence for serialization, in the order the
// source adapter produced it.
func (r *Result) Records() interface{} {
	if r.Intent == llm.IntentEvent {
		return r.Events
	}
	return r.Places
}

// Service sequences classification, adapter dispatch and error translation
// for one request.
type Service struct {
	llm    llm.Client
	events EventSearcher
	places PlaceSearcher
	cfg    config.SearchConfig
}

func NewService(llmClient llm.Client, eventSearcher EventSearcher, placeSearcher PlaceSearcher, cfg config.SearchConfig) *Service {
	return &Service{
		llm:    llmClient,
		events: eventSearcher,
		places: placeSearcher,
		cfg:    cfg,
	}
}

// Search runs the full pipeline for one query. Validation happens before any
// external call; classification is a single LLM decision; the matched
// adapter owns its branch's failures. The orchestrator also owns metric
// recording so failures after classification carry their real intent label.
func (s *Service) Search(ctx context.Context, query string) (*Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		metrics.SearchesTotal.WithLabelValues("unknown", "error").Inc()
		return nil, errs.New(errs.CodeInvalidInput, "query must not be empty")
	}

	intent, err := s.llm.Classify(ctx, query)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("unknown", "error").Inc()
		return nil, fmt.Errorf("classify query: %w", err)
	}

	log.Info().Str("query", query).Stringer("intent", intent).Msg("Query classified")

	switch intent {
	case llm.IntentEvent:
		records, err := s.events.Search(ctx, query, s.cfg.EventLimit)
		if err != nil {
			metrics.SearchesTotal.WithLabelValues(intent.String(), "error").Inc()
			return nil, err
		}
		return s.observe(&Result{Intent: intent, Events: records}), nil
	case llm.IntentLocation:
		records, err := s.places.Search(ctx, query, s.cfg.PlaceLimit, s.cfg.EnrichOfferings)
		if err != nil {
			metrics.SearchesTotal.WithLabelValues(intent.String(), "error").Inc()
			return nil, err
		}
		return s.observe(&Result{Intent: intent, Places: records}), nil
	default:
		metrics.SearchesTotal.WithLabelValues(intent.String(), "error").Inc()
		return nil, errs.New(errs.CodeInternal, fmt.Sprintf("unhandled intent %v", intent))
	}
}

func (s *Service) observe(result *Result) *Result {
	outcome := "ok"
	if result.Empty() {
		outcome = "no_results"
	}
	metrics.SearchesTotal.WithLabelValues(result.Intent.String(), outcome).Inc()
	return result
}
