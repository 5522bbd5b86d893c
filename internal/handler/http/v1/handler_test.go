package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/citywatch/citywatch/internal/analysis"
	"github.com/citywatch/citywatch/internal/config"
	"github.com/citywatch/citywatch/internal/models"
	"github.com/citywatch/citywatch/internal/refresh"
	"github.com/citywatch/citywatch/internal/service/mocks"
)

// stubSnapshots hands out a fixed snapshot; nil means no cycle has completed.
type stubSnapshots struct {
	snap *refresh.Snapshot
}

func (s *stubSnapshots) Snapshot() *refresh.Snapshot { return s.snap }

// newTestHandler creates a Handler backed by a mocked aggregator.
func newTestHandler(t *testing.T) (*mocks.MockAggregator, *stubSnapshots, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockAggregator := mocks.NewMockAggregator(ctrl)
	snapshots := &stubSnapshots{}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // silence logs in tests

	cfg := &config.Config{
		DefaultCity: "chi",
		APIKeys:     []string{"test-api-key"},
	}

	handler := NewHandler(mockAggregator, snapshots, logger, cfg, false)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return mockAggregator, snapshots, router
}

// makeRequest is a helper for running HTTP requests against the test router.
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListIncidents_Success(t *testing.T) {
	mockAggregator, _, router := newTestHandler(t)
	expected := []models.IncidentRecord{
		{ID: "inc-1", Title: "Armed robbery", Priority: 95, Source: "Chicago PD"},
		{ID: "inc-2", Title: "Vandalism", Priority: 50, Source: "Chicago 311"},
	}

	mockAggregator.EXPECT().Incidents(gomock.Any(), "chi").Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "Armed robbery", resp[0].Title)
	assert.Equal(t, 95, resp[0].Priority)
}

func TestListIncidents_CityQueryPassedThrough(t *testing.T) {
	mockAggregator, _, router := newTestHandler(t)

	mockAggregator.EXPECT().Incidents(gomock.Any(), "nyc").Return([]models.IncidentRecord{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?city=nyc", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListIncidents_ServiceError(t *testing.T) {
	mockAggregator, _, router := newTestHandler(t)

	mockAggregator.EXPECT().Incidents(gomock.Any(), "chi").Return(nil, errors.New("aggregation broke")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListCameras_Success(t *testing.T) {
	mockAggregator, _, router := newTestHandler(t)
	lat, lng := 41.88, -87.63
	expected := []models.CameraRecord{
		{ID: "cam-1", Name: "State & Madison", Status: "online", Lat: &lat, Lng: &lng, Viewers: 320},
		{ID: "cam-2", Name: "Union Station", Status: "online", Viewers: 110},
	}

	mockAggregator.EXPECT().Cameras(gomock.Any(), "chi").Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/cameras", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []CameraResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, 320, resp[0].Viewers)
	require.NotNil(t, resp[0].Lat)
	assert.InDelta(t, 41.88, *resp[0].Lat, 1e-9)
	assert.Nil(t, resp[1].Lat)
}

func TestListNews_Success(t *testing.T) {
	mockAggregator, _, router := newTestHandler(t)
	expected := []models.NewsArticle{
		{Title: "Shooting reported downtown", Source: "Tribune", Sentiment: "negative", Category: "crime"},
	}

	mockAggregator.EXPECT().News(gomock.Any()).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/news", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []NewsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "negative", resp[0].Sentiment)
}

func TestListRadioStreams_Success(t *testing.T) {
	mockAggregator, _, router := newTestHandler(t)
	expected := []models.RadioStream{
		{ID: "chi-pd", Name: "Chicago Police Zone 4", URL: "https://streams.example/chi-pd", City: "chi"},
	}

	mockAggregator.EXPECT().RadioStreams("chi").Return(expected).Times(1)

	w := makeRequest(router, "GET", "/api/v1/radio-streams", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []RadioStreamResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "chi-pd", resp[0].ID)
}

func TestListAlerts_Success(t *testing.T) {
	mockAggregator, _, router := newTestHandler(t)
	expected := []models.Alert{
		{Kind: models.AlertIncident, ID: "inc-1", Title: "Assault", Priority: 80},
		{Kind: models.AlertNews, ID: "news-1", Title: "Protest downtown", Sentiment: "negative"},
	}

	mockAggregator.EXPECT().Alerts(gomock.Any(), "chi").Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "incident", resp[0].Kind)
	assert.Equal(t, 80, resp[0].Priority)
	assert.Equal(t, "news", resp[1].Kind)
	assert.Equal(t, "negative", resp[1].Sentiment)
}

func TestAnalyzeHotspots_Success(t *testing.T) {
	mockAggregator, _, router := newTestHandler(t)
	reqBody := AnalyzeRequest{
		Incidents: []IncidentPayload{
			{ID: "inc-1", Title: "Shooting", Lat: 41.87, Lng: -87.63, Priority: 95},
		},
	}
	outcome := models.AnalysisOutcome{
		Result: models.AnalysisResult{
			Hotspots: []models.Hotspot{
				{Lat: 41.9, Lng: -87.6, Intensity: 47.5, IncidentCount: 1},
			},
			Correlations: []models.Correlation{},
			ThreatLevel:  models.ThreatMedium,
			Summary:      "Identified 1 potential hotspots across 1 incidents and 0 cameras.",
		},
	}

	mockAggregator.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in analysis.Input) (models.AnalysisOutcome, error) {
			require.Len(t, in.Incidents, 1)
			assert.Equal(t, 95, in.Incidents[0].Priority)
			return outcome, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/analyze-hotspots", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AnalysisResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Hotspots, 1)
	assert.InDelta(t, 47.5, resp.Hotspots[0].Intensity, 1e-9)
	assert.Equal(t, "medium", resp.ThreatLevel)
	assert.False(t, resp.Degraded)
}

func TestAnalyzeHotspots_DegradedOutcomePassedThrough(t *testing.T) {
	mockAggregator, _, router := newTestHandler(t)
	outcome := models.AnalysisOutcome{
		Result: models.AnalysisResult{
			Hotspots:     []models.Hotspot{},
			Correlations: []models.Correlation{},
			ThreatLevel:  models.ThreatLow,
		},
		Degraded:       true,
		DegradedReason: "upstream 503",
	}

	mockAggregator.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(outcome, nil).Times(1)

	bodyBytes, _ := json.Marshal(AnalyzeRequest{})
	w := makeRequest(router, "POST", "/api/v1/analyze-hotspots", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AnalysisResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	assert.Equal(t, "upstream 503", resp.DegradedReason)
}

func TestAnalyzeHotspots_InvalidJSON(t *testing.T) {
	mockAggregator, _, router := newTestHandler(t)

	mockAggregator.EXPECT().Analyze(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/analyze-hotspots", bytes.NewBufferString(`{"incidents": [`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestAnalyzeHotspots_ValidationError(t *testing.T) {
	mockAggregator, _, router := newTestHandler(t)
	reqBody := AnalyzeRequest{
		Incidents: []IncidentPayload{
			{ID: "inc-1", Title: "Shooting", Lat: 41.87, Lng: -87.63, Priority: 150},
		},
	}

	mockAggregator.EXPECT().Analyze(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/analyze-hotspots", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Priority' failed on the 'lte' tag")
}

func TestAnalyzeHotspots_ServiceError(t *testing.T) {
	mockAggregator, _, router := newTestHandler(t)

	mockAggregator.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(models.AnalysisOutcome{}, errors.New("analysis broke")).Times(1)

	bodyBytes, _ := json.Marshal(AnalyzeRequest{})
	w := makeRequest(router, "POST", "/api/v1/analyze-hotspots", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetSnapshot_Success(t *testing.T) {
	_, snapshots, router := newTestHandler(t)
	snapshots.snap = &refresh.Snapshot{
		City: "chi",
		Incidents: []models.IncidentRecord{
			{ID: "inc-1", Title: "Robbery", Priority: 80},
		},
		Analysis: models.AnalysisOutcome{
			Result: models.AnalysisResult{ThreatLevel: models.ThreatMedium},
		},
		GeneratedAt: time.Now().UTC(),
	}

	w := makeRequest(router, "GET", "/api/v1/snapshot", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SnapshotResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "chi", resp.City)
	require.Len(t, resp.Incidents, 1)
	assert.Equal(t, "medium", resp.Analysis.ThreatLevel)
}

func TestGetSnapshot_NotReady(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/snapshot", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "snapshot not ready")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"redis":false`)
	assert.Contains(t, w.Body.String(), `"ai":false`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_BearerHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
