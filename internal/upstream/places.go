package upstream

import (
	"context"
	"fmt"
	"time"

	"search-system/internal/errs"

	"github.com/go-resty/resty/v2"
)

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceSummary is one text-search candidate.
type PlaceSummary struct {
	PlaceID string `json:"place_id"`
	Name    string `json:"name"`
}

// PeriodPoint is one side of an opening-hours period. Day is 0-indexed from
// Sunday; Time is "HHMM".
type PeriodPoint struct {
	Day  int    `json:"day"`
	Time string `json:"time"`
}

// OpeningPeriod is one open/close pair. Close is absent for places that never
// close.
type OpeningPeriod struct {
	Open  PeriodPoint  `json:"open"`
	Close *PeriodPoint `json:"close"`
}

// PlaceDetails is the per-place detail payload.
type PlaceDetails struct {
	Name                 string `json:"name"`
	FormattedAddress     string `json:"formatted_address"`
	FormattedPhoneNumber string `json:"formatted_phone_number"`
	URL                  string `json:"url"`
	OpeningHours         struct {
		Periods []OpeningPeriod `json:"periods"`
	} `json:"opening_hours"`
}

// PlacesAPI is the places search-and-detail collaborator.
type PlacesAPI interface {
	TextSearch(ctx context.Context, query string, bias *LatLng) ([]PlaceSummary, error)
	Details(ctx context.Context, placeID string) (*PlaceDetails, error)
}

// GooglePlacesClient talks to the Google Places web service.
type GooglePlacesClient struct {
	client *resty.Client
	key    string
}

func NewGooglePlacesClient(baseURL, apiKey string, timeout time.Duration) *GooglePlacesClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &GooglePlacesClient{client: c, key: apiKey}
}

const biasRadiusMeters = "5000"

func (g *GooglePlacesClient) TextSearch(ctx context.Context, query string, bias *LatLng) ([]PlaceSummary, error) {
	var out struct {
		Results []PlaceSummary `json:"results"`
		Status  string         `json:"status"`
	}

	req := g.client.R().
		SetContext(ctx).
		SetResult(&out).
		SetQueryParams(map[string]string{
			"query": query,
			"key":   g.key,
		})
	if bias != nil {
		req.SetQueryParam("location", fmt.Sprintf("%f,%f", bias.Lat, bias.Lng))
		req.SetQueryParam("radius", biasRadiusMeters)
	}

	resp, err := req.Get("/maps/api/place/textsearch/json")
	if err != nil {
		return nil, errs.Wrap(errs.CodeExternalSource, "places search request failed", err)
	}
	if resp.IsError() {
		return nil, errs.External(resp.StatusCode(), fmt.Sprintf("places search returned status %d", resp.StatusCode()))
	}
	if err := checkPlacesStatus(out.Status, "places search"); err != nil {
		return nil, err
	}

	return out.Results, nil
}

func (g *GooglePlacesClient) Details(ctx context.Context, placeID string) (*PlaceDetails, error) {
	var out struct {
		Result PlaceDetails `json:"result"`
		Status string       `json:"status"`
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&out).
		SetQueryParams(map[string]string{
			"place_id": placeID,
			"fields":   "name,formatted_address,formatted_phone_number,opening_hours,url",
			"key":      g.key,
		}).
		Get("/maps/api/place/details/json")
	if err != nil {
		return nil, errs.Wrap(errs.CodeExternalSource, "place details request failed", err)
	}
	if resp.IsError() {
		return nil, errs.External(resp.StatusCode(), fmt.Sprintf("place details returned status %d", resp.StatusCode()))
	}
	if err := checkPlacesStatus(out.Status, "place details"); err != nil {
		return nil, err
	}

	return &out.Result, nil
}

// checkPlacesStatus maps the web service's in-body status onto the error
// taxonomy. ZERO_RESULTS is not an error; an empty candidate list is a valid
// outcome.
func checkPlacesStatus(status, operation string) error {
	switch status {
	case "OK", "ZERO_RESULTS":
		return nil
	case "REQUEST_DENIED":
		return errs.New(errs.CodeInvalidInput, operation+" rejected the configured credentials")
	case "OVER_QUERY_LIMIT":
		return errs.New(errs.CodeResourceExhausted, operation+" quota exhausted")
	default:
		return errs.New(errs.CodeExternalSource, fmt.Sprintf("%s returned status %s", operation, status))
	}
}
