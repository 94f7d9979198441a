package upstream

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"search-system/internal/errs"

	"github.com/go-resty/resty/v2"
)

// SingaporeScope is the Geonames ID bounding every events search.
const SingaporeScope = "1880252"

// Event is a raw events-source record. Start and End are ISO 8601 UTC
// strings; Location is [longitude, latitude].
type Event struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Start       string    `json:"start"`
	End         string    `json:"end"`
	Location    []float64 `json:"location"`
}

// EventSearch are the parameters of one bounded events lookup.
type EventSearch struct {
	Query     string
	Category  string
	ActiveGTE string
	ActiveLTE string
	Limit     int
}

// EventsAPI is the events search collaborator.
type EventsAPI interface {
	SearchEvents(ctx context.Context, search EventSearch) ([]Event, error)
}

// PredictHQClient talks to the PredictHQ events API.
type PredictHQClient struct {
	client *resty.Client
}

func NewPredictHQClient(baseURL, token string, timeout time.Duration) *PredictHQClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &PredictHQClient{client: c}
}

func (p *PredictHQClient) SearchEvents(ctx context.Context, search EventSearch) ([]Event, error) {
	var out struct {
		Results []Event `json:"results"`
	}

	req := p.client.R().
		SetContext(ctx).
		SetResult(&out).
		SetQueryParams(map[string]string{
			"q":           search.Query,
			"place.scope": SingaporeScope,
			"active.gte":  search.ActiveGTE,
			"active.lte":  search.ActiveLTE,
			"limit":       strconv.Itoa(search.Limit),
			"sort":        "start",
		})
	if search.Category != "" {
		req.SetQueryParam("category", search.Category)
	}

	resp, err := req.Get("/v1/events/")
	if err != nil {
		return nil, errs.Wrap(errs.CodeExternalSource, "events search request failed", err)
	}
	if resp.IsError() {
		return nil, errs.External(resp.StatusCode(), fmt.Sprintf("events search returned status %d", resp.StatusCode()))
	}

	return out.Results, nil
}
