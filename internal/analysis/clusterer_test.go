package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citywatch/citywatch/internal/models"
)

func ptr(v float64) *float64 { return &v }

func TestAnalyze_SingleIncidentCell(t *testing.T) {
	a := NewGridAnalyzer()

	outcome, err := a.Analyze(context.Background(), Input{
		Incidents: []models.IncidentRecord{
			{ID: "i1", Title: "Shots fired", Lat: 41.87, Lng: -87.63, Priority: 95},
		},
	})

	require.NoError(t, err)
	require.Len(t, outcome.Result.Hotspots, 1)

	h := outcome.Result.Hotspots[0]
	assert.InDelta(t, 41.9, h.Lat, 1e-9)
	assert.InDelta(t, -87.6, h.Lng, 1e-9)
	assert.Equal(t, 1, h.IncidentCount)
	assert.Equal(t, 0, h.CameraCount)
	// intensity = 95 / (1 incident + 0 cameras + 1)
	assert.InDelta(t, 47.5, h.Intensity, 1e-9)
	assert.Equal(t, "Shots fired", h.TopIncident)
	assert.False(t, outcome.Degraded)
}

func TestAnalyze_EmptyInput(t *testing.T) {
	a := NewGridAnalyzer()

	outcome, err := a.Analyze(context.Background(), Input{})

	require.NoError(t, err)
	assert.Empty(t, outcome.Result.Hotspots)
	assert.Empty(t, outcome.Result.Correlations)
	assert.Equal(t, models.ThreatLow, outcome.Result.ThreatLevel)
	assert.Contains(t, outcome.Result.Summary, "0 potential hotspots")
}

func TestAnalyze_Idempotent(t *testing.T) {
	a := NewGridAnalyzer()
	in := Input{
		Incidents: []models.IncidentRecord{
			{ID: "i1", Title: "Armed robbery", Lat: 41.87, Lng: -87.63, Priority: 95},
			{ID: "i2", Title: "Theft", Lat: 41.88, Lng: -87.61, Priority: 65},
			{ID: "i3", Title: "Assault", Lat: 40.71, Lng: -74.0, Priority: 80},
		},
		Cameras: []models.CameraRecord{
			{ID: "c1", Lat: ptr(41.86), Lng: ptr(-87.64), Viewers: 120},
		},
	}

	first, err := a.Analyze(context.Background(), in)
	require.NoError(t, err)
	second, err := a.Analyze(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first.Result.Hotspots, second.Result.Hotspots)
	assert.Equal(t, first.Result.Correlations, second.Result.Correlations)
	assert.Equal(t, first.Result.ThreatLevel, second.Result.ThreatLevel)
}

func TestAnalyze_LowViewerCamerasIgnored(t *testing.T) {
	a := NewGridAnalyzer()

	outcome, err := a.Analyze(context.Background(), Input{
		Incidents: []models.IncidentRecord{
			{ID: "i1", Title: "Burglary", Lat: 41.87, Lng: -87.63, Priority: 80},
		},
		Cameras: []models.CameraRecord{
			{ID: "quiet", Lat: ptr(41.87), Lng: ptr(-87.63), Viewers: 10},
		},
	})

	require.NoError(t, err)
	require.Len(t, outcome.Result.Hotspots, 1)
	assert.Equal(t, 0, outcome.Result.Hotspots[0].CameraCount)
}

func TestAnalyze_CamerasWithoutCoordinatesSkipped(t *testing.T) {
	a := NewGridAnalyzer()

	outcome, err := a.Analyze(context.Background(), Input{
		Cameras: []models.CameraRecord{
			{ID: "nowhere", Viewers: 500},
		},
	})

	require.NoError(t, err)
	assert.Empty(t, outcome.Result.Hotspots)
}

func TestAnalyze_ThresholdDiscardsWeakCells(t *testing.T) {
	a := NewGridAnalyzer()

	// intensity = 30 / 2 = 15, below the default threshold of 25.
	outcome, err := a.Analyze(context.Background(), Input{
		Incidents: []models.IncidentRecord{
			{ID: "i1", Title: "Noise complaint", Lat: 41.87, Lng: -87.63, Priority: 30},
		},
	})

	require.NoError(t, err)
	assert.Empty(t, outcome.Result.Hotspots)
	assert.Equal(t, models.ThreatLow, outcome.Result.ThreatLevel)
}

func TestAnalyze_IntensityClampedTo100(t *testing.T) {
	a := NewGridAnalyzer()

	outcome, err := a.Analyze(context.Background(), Input{
		Cameras: []models.CameraRecord{
			{ID: "c1", Lat: ptr(41.87), Lng: ptr(-87.63), Viewers: 100000},
		},
	})

	require.NoError(t, err)
	require.Len(t, outcome.Result.Hotspots, 1)
	assert.InDelta(t, 100.0, outcome.Result.Hotspots[0].Intensity, 1e-9)
	assert.Equal(t, models.ThreatHigh, outcome.Result.ThreatLevel)
}

func TestAnalyze_ThreatLevels(t *testing.T) {
	a := NewGridAnalyzer()

	// Two incidents in the same cell: intensity = (95+95)/3 ≈ 63.3 → medium.
	outcome, err := a.Analyze(context.Background(), Input{
		Incidents: []models.IncidentRecord{
			{ID: "i1", Title: "Homicide", Lat: 41.87, Lng: -87.63, Priority: 95},
			{ID: "i2", Title: "Shooting", Lat: 41.872, Lng: -87.634, Priority: 95},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, models.ThreatMedium, outcome.Result.ThreatLevel)
}

func TestAnalyze_HotspotCapAndOrdering(t *testing.T) {
	a := NewGridAnalyzer()
	a.MaxHotspots = 2

	in := Input{
		Incidents: []models.IncidentRecord{
			{ID: "i1", Lat: 10.0, Lng: 10.0, Priority: 90},
			{ID: "i2", Lat: 20.0, Lng: 20.0, Priority: 70},
			{ID: "i3", Lat: 30.0, Lng: 30.0, Priority: 60},
		},
	}

	outcome, err := a.Analyze(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, outcome.Result.Hotspots, 2)
	assert.Greater(t, outcome.Result.Hotspots[0].Intensity, outcome.Result.Hotspots[1].Intensity)
	assert.Contains(t, outcome.Result.Summary, "2 potential hotspots")
}

func TestAnalyze_CorrelationsRequireBothKinds(t *testing.T) {
	a := NewGridAnalyzer()

	outcome, err := a.Analyze(context.Background(), Input{
		Incidents: []models.IncidentRecord{
			{ID: "i1", Title: "Robbery", Lat: 41.87, Lng: -87.63, Priority: 95},
			{ID: "i2", Title: "Assault", Lat: 10.0, Lng: 10.0, Priority: 80},
		},
		Cameras: []models.CameraRecord{
			{ID: "c1", Lat: ptr(41.87), Lng: ptr(-87.63), Viewers: 200},
		},
	})

	require.NoError(t, err)
	require.Len(t, outcome.Result.Correlations, 1)
	corr := outcome.Result.Correlations[0]
	assert.InDelta(t, 41.9, corr.Lat, 1e-9)
	assert.Equal(t, 1, corr.IncidentCount)
	assert.Equal(t, 1, corr.CameraCount)
	assert.Contains(t, corr.Description, "co-located")
}
