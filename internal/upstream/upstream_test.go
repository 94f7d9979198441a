package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"search-system/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = 5 * time.Second

func TestPredictHQSearchEvents(t *testing.T) {
	var gotQuery url.Values
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": [
				{
					"title": "Jazz by the Bay",
					"description": "Live jazz.",
					"category": "concerts",
					"start": "2024-03-05T12:30:00Z",
					"end": "2024-03-05T15:30:00Z",
					"location": [103.8591, 1.2838]
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewPredictHQClient(server.URL, "test-token", testTimeout)
	events, err := client.SearchEvents(context.Background(), EventSearch{
		Query:     "concerts",
		Category:  "concerts",
		ActiveGTE: "2024-03-01",
		ActiveLTE: "2025-03-01",
		Limit:     5,
	})
	require.NoError(t, err)
	require.Len(t, events, 1)

	assert.Equal(t, "Jazz by the Bay", events[0].Title)
	assert.Equal(t, []float64{103.8591, 1.2838}, events[0].Location)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "concerts", gotQuery.Get("q"))
	assert.Equal(t, "concerts", gotQuery.Get("category"))
	assert.Equal(t, SingaporeScope, gotQuery.Get("place.scope"))
	assert.Equal(t, "5", gotQuery.Get("limit"))
	assert.Equal(t, "start", gotQuery.Get("sort"))
}

func TestPredictHQSearchEventsUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewPredictHQClient(server.URL, "test-token", testTimeout)
	_, err := client.SearchEvents(context.Background(), EventSearch{Query: "concerts", Limit: 5})
	require.Error(t, err)

	var e *errs.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, errs.CodeExternalSource, e.Code)
	assert.Equal(t, http.StatusServiceUnavailable, e.UpstreamStatus)
}

func TestPlacesTextSearch(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"place_id": "abc123", "name": "Maxwell Food Centre"},
				{"place_id": "def456", "name": "Lau Pa Sat"}
			]
		}`))
	}))
	defer server.Close()

	client := NewGooglePlacesClient(server.URL, "test-key", testTimeout)
	results, err := client.TextSearch(context.Background(), "hawker centres", &LatLng{Lat: 1.3, Lng: 103.85})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "abc123", results[0].PlaceID)
	assert.Equal(t, "hawker centres", gotQuery.Get("query"))
	assert.Equal(t, "test-key", gotQuery.Get("key"))
	assert.NotEmpty(t, gotQuery.Get("location"))
	assert.NotEmpty(t, gotQuery.Get("radius"))
}

func TestPlacesTextSearchWithoutBias(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	client := NewGooglePlacesClient(server.URL, "test-key", testTimeout)
	results, err := client.TextSearch(context.Background(), "nothing here", nil)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, gotQuery.Get("location"))
}

func TestPlacesStatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantCode errs.Code
	}{
		{name: "request denied is a credential problem", status: "REQUEST_DENIED", wantCode: errs.CodeInvalidInput},
		{name: "over query limit is quota exhaustion", status: "OVER_QUERY_LIMIT", wantCode: errs.CodeResourceExhausted},
		{name: "anything else is an external source error", status: "UNKNOWN_ERROR", wantCode: errs.CodeExternalSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"status": "` + tt.status + `", "results": []}`))
			}))
			defer server.Close()

			client := NewGooglePlacesClient(server.URL, "test-key", testTimeout)
			_, err := client.TextSearch(context.Background(), "cafes", nil)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errs.CodeOf(err))
		})
	}
}

func TestPlacesDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc123", r.URL.Query().Get("place_id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"result": {
				"name": "Maxwell Food Centre",
				"formatted_address": "1 Kadayanallur St, Singapore 069184",
				"formatted_phone_number": "6225 5632",
				"url": "https://maps.google.com/?cid=1",
				"opening_hours": {
					"periods": [
						{"open": {"day": 1, "time": "0800"}, "close": {"day": 1, "time": "2200"}}
					]
				}
			}
		}`))
	}))
	defer server.Close()

	client := NewGooglePlacesClient(server.URL, "test-key", testTimeout)
	details, err := client.Details(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, "Maxwell Food Centre", details.Name)
	assert.Equal(t, "6225 5632", details.FormattedPhoneNumber)
	require.Len(t, details.OpeningHours.Periods, 1)
	assert.Equal(t, "0800", details.OpeningHours.Periods[0].Open.Time)
	require.NotNil(t, details.OpeningHours.Periods[0].Close)
	assert.Equal(t, "2200", details.OpeningHours.Periods[0].Close.Time)
}

func TestGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "orchard road", r.URL.Query().Get("address"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"formatted_address": "Orchard Rd, Singapore", "geometry": {"location": {"lat": 1.3048, "lng": 103.8318}}}
			]
		}`))
	}))
	defer server.Close()

	client := NewGeocodingClient(server.URL, "test-key", testTimeout)
	loc, err := client.Geocode(context.Background(), "orchard road")
	require.NoError(t, err)
	assert.InDelta(t, 1.3048, loc.Lat, 1e-6)
	assert.InDelta(t, 103.8318, loc.Lng, 1e-6)
}

func TestGeocodeNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	client := NewGeocodingClient(server.URL, "test-key", testTimeout)
	_, err := client.Geocode(context.Background(), "xyzzy")
	assert.Error(t, err)
}

func TestReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("latlng"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [{"formatted_address": "1 Esplanade Dr, Singapore 038981", "geometry": {"location": {"lat": 1.2838, "lng": 103.8591}}}]
		}`))
	}))
	defer server.Close()

	client := NewGeocodingClient(server.URL, "test-key", testTimeout)
	addr, err := client.ReverseGeocode(context.Background(), 1.2838, 103.8591)
	require.NoError(t, err)
	assert.Equal(t, "1 Esplanade Dr, Singapore 038981", addr)
}
