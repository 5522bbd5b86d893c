package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citywatch/citywatch/internal/adapters"
	"github.com/citywatch/citywatch/internal/analysis"
	"github.com/citywatch/citywatch/internal/models"
)

type stubIncidentSource struct {
	name      string
	incidents []models.IncidentRecord
	err       error
	lastCity  string
}

func (s *stubIncidentSource) Name() string { return s.name }

func (s *stubIncidentSource) FetchIncidents(_ context.Context, city adapters.City) ([]models.IncidentRecord, error) {
	s.lastCity = city.Code
	return s.incidents, s.err
}

type stubCameraSource struct {
	cameras []models.CameraRecord
	err     error
}

func (s *stubCameraSource) Name() string { return "stub-cctv" }

func (s *stubCameraSource) FetchCameras(_ context.Context, _ adapters.City) ([]models.CameraRecord, error) {
	return s.cameras, s.err
}

type stubNewsSource struct {
	articles []models.NewsArticle
	err      error
}

func (s *stubNewsSource) Name() string { return "stub-news" }

func (s *stubNewsSource) FetchNews(_ context.Context) ([]models.NewsArticle, error) {
	return s.articles, s.err
}

func newTestAggregator(incidentSources []adapters.IncidentSource, cameras adapters.CameraSource, news adapters.NewsSource) Aggregator {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewAggregatorService(
		adapters.DefaultRegistry(),
		incidentSources,
		cameras,
		news,
		adapters.DefaultRadioDirectory(),
		analysis.NewGridAnalyzer(),
		nil, // uncached
		logger,
	)
}

func TestIncidents_MergesAndSortsByPriority(t *testing.T) {
	crime := &stubIncidentSource{name: "crime", incidents: []models.IncidentRecord{
		{ID: "c1", Priority: 95},
		{ID: "c2", Priority: 65},
	}}
	civic := &stubIncidentSource{name: "civic311", incidents: []models.IncidentRecord{
		{ID: "s1", Priority: 80},
	}}

	agg := newTestAggregator([]adapters.IncidentSource{crime, civic}, &stubCameraSource{}, &stubNewsSource{})
	incidents, err := agg.Incidents(context.Background(), "chi")

	require.NoError(t, err)
	require.Len(t, incidents, 3)
	assert.Equal(t, []string{"c1", "s1", "c2"}, []string{incidents[0].ID, incidents[1].ID, incidents[2].ID})
}

func TestIncidents_FailingSourceExcludedNotFatal(t *testing.T) {
	healthy := &stubIncidentSource{name: "crime", incidents: []models.IncidentRecord{
		{ID: "c1", Priority: 90},
		{ID: "c2", Priority: 50},
	}}
	broken := &stubIncidentSource{name: "civic311", err: errors.New("connection refused")}

	agg := newTestAggregator([]adapters.IncidentSource{healthy, broken}, &stubCameraSource{}, &stubNewsSource{})
	incidents, err := agg.Incidents(context.Background(), "chi")

	require.NoError(t, err)
	require.Len(t, incidents, 2)
	assert.Equal(t, "c1", incidents[0].ID)
	assert.Equal(t, "c2", incidents[1].ID)
}

func TestIncidents_UnknownCityFallsBackToDefault(t *testing.T) {
	src := &stubIncidentSource{name: "crime"}

	agg := newTestAggregator([]adapters.IncidentSource{src}, &stubCameraSource{}, &stubNewsSource{})
	_, err := agg.Incidents(context.Background(), "atlantis")

	require.NoError(t, err)
	assert.Equal(t, "chi", src.lastCity)
}

func TestCameras_SortedByViewers(t *testing.T) {
	cams := &stubCameraSource{cameras: []models.CameraRecord{
		{ID: "quiet", Viewers: 10},
		{ID: "busy", Viewers: 900},
	}}

	agg := newTestAggregator(nil, cams, &stubNewsSource{})
	cameras, err := agg.Cameras(context.Background(), "chi")

	require.NoError(t, err)
	require.Len(t, cameras, 2)
	assert.Equal(t, "busy", cameras[0].ID)
}

func TestCameras_FailureDegradesToEmpty(t *testing.T) {
	agg := newTestAggregator(nil, &stubCameraSource{err: errors.New("timeout")}, &stubNewsSource{})

	cameras, err := agg.Cameras(context.Background(), "chi")

	require.NoError(t, err)
	assert.Empty(t, cameras)
}

func TestNews_FailureDegradesToEmpty(t *testing.T) {
	agg := newTestAggregator(nil, &stubCameraSource{}, &stubNewsSource{err: errors.New("quota exceeded")})

	articles, err := agg.News(context.Background())

	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestRadioStreams_KnownAndUnknownCity(t *testing.T) {
	agg := newTestAggregator(nil, &stubCameraSource{}, &stubNewsSource{})

	sea := agg.RadioStreams("sea")
	require.NotEmpty(t, sea)
	assert.Equal(t, "sea", sea[0].City)

	// Unknown code falls back to the default city's streams.
	fallback := agg.RadioStreams("atlantis")
	require.NotEmpty(t, fallback)
	assert.Equal(t, "chi", fallback[0].City)
}

func TestAlerts_TaggedUnionSortedByTime(t *testing.T) {
	base := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	crime := &stubIncidentSource{name: "crime", incidents: []models.IncidentRecord{
		{ID: "i1", Title: "Robbery", Priority: 80, Timestamp: base.Add(-time.Hour), Lat: 41.9, Lng: -87.6},
	}}
	news := &stubNewsSource{articles: []models.NewsArticle{
		{ID: "n1", Title: "Storm warning", Time: base, Sentiment: "negative"},
	}}

	agg := newTestAggregator([]adapters.IncidentSource{crime}, &stubCameraSource{}, news)
	alerts, err := agg.Alerts(context.Background(), "chi")

	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, models.AlertNews, alerts[0].Kind)
	assert.Equal(t, "negative", alerts[0].Sentiment)
	assert.Equal(t, models.AlertIncident, alerts[1].Kind)
	assert.Equal(t, 80, alerts[1].Priority)
	require.NotNil(t, alerts[1].Lat)
}

func TestAnalyze_DelegatesToEngine(t *testing.T) {
	agg := newTestAggregator(nil, &stubCameraSource{}, &stubNewsSource{})

	outcome, err := agg.Analyze(context.Background(), analysis.Input{
		Incidents: []models.IncidentRecord{{ID: "i1", Lat: 41.87, Lng: -87.63, Priority: 95}},
	})

	require.NoError(t, err)
	require.Len(t, outcome.Result.Hotspots, 1)
	assert.False(t, outcome.Degraded)
}
