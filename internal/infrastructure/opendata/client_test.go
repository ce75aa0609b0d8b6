package opendata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nyc-parking-api/internal/config"
)

func newTestClient(signsURL, metersURL, violationsURL string) *client {
	cfg := &config.OpenDataConfig{
		ParkingSignsURL: signsURL,
		MeterZonesURL:   metersURL,
		ViolationsURL:   violationsURL,
		AppToken:        "test-token",
		RequestTimeout:  5 * time.Second,
		FallbackLimit:   100,
	}
	return NewClient(cfg, zap.NewNop()).(*client)
}

func TestFetchParkingSigns(t *testing.T) {
	var gotUserAgent, gotToken, gotLimit string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotToken = r.Header.Get("X-App-Token")
		gotLimit = r.URL.Query().Get("$limit")

		json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"sign_id":          "S1",
				"sign_description": "NO PARKING 8AM-6PM",
				"latitude":         "40.7589",
				"longitude":        "-73.9851",
				"street_name":      "BROADWAY",
				"borough":          "MANHATTAN",
				"order_no":         "X-100",
			},
			{
				// За пределами NYC - отбрасывается
				"sign_id":   "S2",
				"latitude":  "34.0522",
				"longitude": "-118.2437",
			},
			{
				// Без координат - отбрасывается
				"sign_id": "S3",
				"borough": "QUEENS",
			},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL, srv.URL)
	signs, err := c.FetchParkingSigns(context.Background(), 5000)

	require.NoError(t, err)
	require.Len(t, signs, 1)
	assert.Equal(t, "S1", signs[0].SignID)
	assert.Equal(t, "NO PARKING 8AM-6PM", signs[0].SignDescription)
	assert.Equal(t, 40.7589, signs[0].Latitude)
	assert.Equal(t, "X-100", signs[0].Attributes["order_no"])
	assert.NotContains(t, signs[0].Attributes, "sign_id")

	assert.Contains(t, gotUserAgent, "Mozilla")
	assert.Equal(t, "test-token", gotToken)
	assert.Equal(t, "5000", gotLimit)
}

func TestFetchRows_RetriesOn403WithFallbackLimit(t *testing.T) {
	var limits []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := r.URL.Query().Get("$limit")
		limits = append(limits, limit)
		if limit != "100" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"lat": "40.7589", "long": "-73.9851", "meter_number": "M1", "status": "Active"},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL, srv.URL)
	meters, err := c.FetchMeterZones(context.Background(), 50000)

	require.NoError(t, err)
	require.Len(t, meters, 1)
	assert.Equal(t, "M1", meters[0].MeterNumber)
	assert.Equal(t, []string{"50000", "100"}, limits)
}

func TestFetchRows_NonRetryableStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL, srv.URL)
	_, err := c.FetchParkingSigns(context.Background(), 1000)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestFetchViolations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"summons_number":   "1449591712",
				"issue_date":       "2023-06-15",
				"violation_code":   "21",
				"violation_county": "BK",
				"latitude":         "40.6782",
				"longitude":        "-73.9442",
			},
			{
				// Координаты вне NYC остаются пустыми, запись сохраняется
				"summons_number": "1449591713",
				"issue_date":     "2023-06-16",
				"violation_code": "40",
				"latitude":       "0",
				"longitude":      "0",
			},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL, srv.URL)
	violations, err := c.FetchViolations(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, violations, 2)

	assert.Equal(t, "1449591712", violations[0].SummonsNumber)
	assert.Equal(t, "21", violations[0].ViolationCode)
	require.NotNil(t, violations[0].Latitude)
	assert.Equal(t, 40.6782, *violations[0].Latitude)

	assert.Nil(t, violations[1].Latitude)
	assert.Nil(t, violations[1].Longitude)
}

func TestProbe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("$limit"))
		json.NewEncoder(w).Encode([]map[string]interface{}{{"a": "1"}, {"a": "2"}})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL, srv.URL)
	probes := c.Probe(context.Background())

	require.Contains(t, probes, "parking_signs")
	require.Contains(t, probes, "meter_zones")
	assert.Equal(t, http.StatusOK, probes["parking_signs"].StatusCode)
	assert.Equal(t, 2, probes["parking_signs"].DataLength)
	assert.Empty(t, probes["parking_signs"].Error)
}
