package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citywatch/citywatch/internal/scoring"
)

func testCity(url string) City {
	return City{Code: "chi", Name: "Chicago", CrimeURL: url, CivicURL: url, CameraURL: url}
}

func TestCrimeAdapter_MapsSocrataFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"case_number": "JH123", "primary_type": "HOMICIDE", "description": "FIRST DEGREE",
			 "block": "001XX N STATE ST", "date": "2026-08-29T10:00:00.000",
			 "latitude": "41.8781", "longitude": "-87.6298"},
			{"case_number": "JH124", "primary_type": "THEFT",
			 "latitude": "", "longitude": ""}
		]`))
	}))
	defer server.Close()

	adapter := NewCrimeAdapter(time.Second, scoring.DefaultScorer())
	incidents, err := adapter.FetchIncidents(context.Background(), testCity(server.URL))

	require.NoError(t, err)
	// The record without coordinates is dropped.
	require.Len(t, incidents, 1)

	inc := incidents[0]
	assert.Equal(t, "JH123", inc.ID)
	assert.Equal(t, "HOMICIDE", inc.Category)
	assert.Equal(t, "001XX N STATE ST", inc.Address)
	assert.InDelta(t, 41.8781, inc.Lat, 1e-9)
	assert.InDelta(t, -87.6298, inc.Lng, 1e-9)
	assert.Equal(t, "Chicago PD", inc.Source)
	assert.GreaterOrEqual(t, inc.Priority, 95)
	assert.LessOrEqual(t, inc.Priority, 100)
}

func TestCrimeAdapter_UpstreamErrorReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	adapter := NewCrimeAdapter(time.Second, scoring.DefaultScorer())
	incidents, err := adapter.FetchIncidents(context.Background(), testCity(server.URL))

	require.Error(t, err)
	assert.Nil(t, incidents)
}

func TestCrimeAdapter_MalformedBodyReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "an array"`))
	}))
	defer server.Close()

	adapter := NewCrimeAdapter(time.Second, scoring.DefaultScorer())
	_, err := adapter.FetchIncidents(context.Background(), testCity(server.URL))

	require.Error(t, err)
}

func TestCivicAdapter_LowerBaseline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"sr_number": "SR-1", "sr_type": "Pothole in Street", "status": "completed",
			 "latitude": "41.88", "longitude": "-87.63"}
		]`))
	}))
	defer server.Close()

	adapter := NewCivicAdapter(time.Second, scoring.DefaultScorer())
	incidents, err := adapter.FetchIncidents(context.Background(), testCity(server.URL))

	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, 40, incidents[0].Priority)
	assert.Equal(t, "311 Pothole in Street", incidents[0].Category)
	assert.Equal(t, "Chicago 311", incidents[0].Source)
}

func TestCityRegistry_UnknownCodeFallsBack(t *testing.T) {
	registry := DefaultRegistry()

	city := registry.Resolve("atlantis")

	assert.Equal(t, "chi", city.Code)
	assert.Equal(t, registry.Default(), city)
}
