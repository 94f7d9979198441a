package places

import (
	"context"
	"fmt"
	"strings"

	"search-system/internal/services/llm"
	"search-system/internal/upstream"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Offerings maps offering name to a price string, "NA" when unknown.
type Offerings map[string]string

// Record is the normalized place shape returned to clients. OpeningHours is
// always present, empty when the source has none. Offerings is a pointer so
// the key is absent entirely when enrichment is off, and serializes as {}
// when enrichment ran but produced nothing.
type Record struct {
	Name          string            `json:"Name"`
	Address       string            `json:"Address"`
	OpeningHours  map[string]string `json:"Opening Hours"`
	Description   string            `json:"Description"`
	Offerings     *Offerings        `json:"Top Offerings & Prices,omitempty"`
	ContactNumber string            `json:"Contact Number"`
	Citation      []string          `json:"Citation"`
}

// Service is the location source adapter: geocode bias, text search, then a
// per-place detail and enrichment fan-out.
type Service struct {
	places  upstream.PlacesAPI
	geo     upstream.Geocoder
	llm     llm.Client
	workers int
}

func NewService(placesAPI upstream.PlacesAPI, geo upstream.Geocoder, llmClient llm.Client, workers int) *Service {
	if workers <= 0 {
		workers = 1
	}
	return &Service{
		places:  placesAPI,
		geo:     geo,
		llm:     llmClient,
		workers: workers,
	}
}

// Search returns at most limit places matching the query, in source order.
// Each candidate's detail fetch, description and optional offerings run
// concurrently; the result sequence still follows candidate order. Zero
// matches is not an error.
func (s *Service) Search(ctx context.Context, query string, limit int, enrich bool) ([]Record, error) {
	var bias *upstream.LatLng
	if ll, err := s.geo.Geocode(ctx, query); err != nil {
		// Bias is a quality improvement, not a correctness requirement.
		log.Warn().Err(err).Str("query", query).Msg("Geocoding failed, searching without location bias")
	} else {
		bias = ll
	}

	candidates, err := s.places.TextSearch(ctx, query, bias)
	if err != nil {
		return nil, fmt.Errorf("search places: %w", err)
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	if len(candidates) == 0 {
		return []Record{}, nil
	}

	records := make([]Record, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			rec, err := s.build(gctx, candidate.PlaceID, enrich)
			if err != nil {
				return fmt.Errorf("place %q: %w", candidate.Name, err)
			}
			records[i] = *rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

// build assembles one place record. The description call is mandatory and
// its failure fails the whole request; offerings failures degrade to an
// empty mapping for this place only.
func (s *Service) build(ctx context.Context, placeID string, enrich bool) (*Record, error) {
	details, err := s.places.Details(ctx, placeID)
	if err != nil {
		return nil, err
	}

	description, err := s.llm.Describe(ctx, details.Name, details.FormattedAddress)
	if err != nil {
		return nil, fmt.Errorf("describe place: %w", err)
	}

	citation := []string{}
	if details.URL != "" {
		citation = []string{details.URL}
	}

	record := &Record{
		Name:          details.Name,
		Address:       details.FormattedAddress,
		OpeningHours:  FormatOpeningHours(details.OpeningHours.Periods),
		Description:   strings.TrimSpace(description),
		ContactNumber: FormatContactNumber(details.FormattedPhoneNumber),
		Citation:      citation,
	}

	if enrich {
		offerings := Offerings(s.offerings(ctx, details))
		record.Offerings = &offerings
	}

	return record, nil
}

func (s *Service) offerings(ctx context.Context, details *upstream.PlaceDetails) map[string]string {
	out, err := s.llm.Offerings(ctx, details.Name, details.FormattedAddress)
	if err != nil {
		log.Warn().Err(err).Str("name", details.Name).Msg("Offerings generation failed, returning empty offerings")
		return map[string]string{}
	}
	if out == nil {
		out = map[string]string{}
	}
	return out
}
