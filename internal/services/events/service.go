package events

import (
	"context"
	"fmt"
	"strings"
	"time"

	"search-system/internal/services/llm"
	"search-system/internal/upstream"

	"github.com/rs/zerolog/log"
)

// Record is the normalized event shape returned to clients. Timestamps carry
// a display-only representation, not a sortable instant.
type Record struct {
	Title       string `json:"Title"`
	Start       string `json:"Start Date & Time"`
	End         string `json:"End Date & Time"`
	Location    string `json:"Location"`
	Description string `json:"Description"`
	Citation    string `json:"Citation"`
}

// Service is the event source adapter: it narrows the query to a category,
// runs one bounded events lookup and normalizes the results.
type Service struct {
	events upstream.EventsAPI
	geo    upstream.Geocoder
	llm    llm.Client
}

func NewService(events upstream.EventsAPI, geo upstream.Geocoder, llmClient llm.Client) *Service {
	return &Service{
		events: events,
		geo:    geo,
		llm:    llmClient,
	}
}

// Search returns at most limit upcoming events matching the query, in
// source order. Zero matches is not an error.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]Record, error) {
	category := ""
	if cat, err := s.llm.EventCategory(ctx, query); err != nil {
		log.Warn().Err(err).Str("query", query).Msg("Event category classification failed, searching without category filter")
	} else {
		category = cat
	}

	now := time.Now()
	raw, err := s.events.SearchEvents(ctx, upstream.EventSearch{
		Query:     query,
		Category:  category,
		ActiveGTE: now.Format("2006-01-02"),
		ActiveLTE: now.AddDate(1, 0, 0).Format("2006-01-02"),
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}

	records := make([]Record, 0, len(raw))
	for _, ev := range raw {
		records = append(records, s.normalize(ctx, ev))
	}
	return records, nil
}

func (s *Service) normalize(ctx context.Context, ev upstream.Event) Record {
	location := "No address found for the provided coordinates."
	if len(ev.Location) == 2 {
		// Source order is [longitude, latitude].
		if addr, err := s.geo.ReverseGeocode(ctx, ev.Location[1], ev.Location[0]); err != nil {
			log.Warn().Err(err).Str("title", ev.Title).Msg("Reverse geocoding failed for event location")
		} else {
			location = addr
		}
	}

	description := strings.TrimSpace(ev.Description)
	if description == "" {
		description = fmt.Sprintf("Sourced from PredictHQ: %s.", ev.Title)
	}

	return Record{
		Title:       ev.Title,
		Start:       FormatDisplayTime(ev.Start),
		End:         FormatDisplayTime(ev.End),
		Location:    location,
		Description: description,
		Citation:    SearchURL(ev.Title),
	}
}
