package upstream

import (
	"context"
	"fmt"
	"time"

	"search-system/internal/errs"

	"github.com/go-resty/resty/v2"
)

// Geocoder resolves free text to coordinates and coordinates to a formatted
// address.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*LatLng, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

// GeocodingClient talks to the Google Geocoding web service.
type GeocodingClient struct {
	client *resty.Client
	key    string
}

func NewGeocodingClient(baseURL, apiKey string, timeout time.Duration) *GeocodingClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &GeocodingClient{client: c, key: apiKey}
}

type geocodeResponse struct {
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location LatLng `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

func (g *GeocodingClient) Geocode(ctx context.Context, address string) (*LatLng, error) {
	out, err := g.lookup(ctx, map[string]string{"address": address})
	if err != nil {
		return nil, err
	}
	if len(out.Results) == 0 {
		return nil, fmt.Errorf("no geocoding match for %q", address)
	}
	loc := out.Results[0].Geometry.Location
	return &loc, nil
}

func (g *GeocodingClient) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	out, err := g.lookup(ctx, map[string]string{"latlng": fmt.Sprintf("%f,%f", lat, lng)})
	if err != nil {
		return "", err
	}
	if len(out.Results) == 0 {
		return "", fmt.Errorf("no address found for %f,%f", lat, lng)
	}
	return out.Results[0].FormattedAddress, nil
}

func (g *GeocodingClient) lookup(ctx context.Context, params map[string]string) (*geocodeResponse, error) {
	var out geocodeResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&out).
		SetQueryParams(params).
		SetQueryParam("key", g.key).
		Get("/maps/api/geocode/json")
	if err != nil {
		return nil, errs.Wrap(errs.CodeExternalSource, "geocoding request failed", err)
	}
	if resp.IsError() {
		return nil, errs.External(resp.StatusCode(), fmt.Sprintf("geocoding returned status %d", resp.StatusCode()))
	}

	return &out, nil
}
