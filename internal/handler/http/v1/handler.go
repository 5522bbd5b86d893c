package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/citywatch/citywatch/internal/config"
	"github.com/citywatch/citywatch/internal/refresh"
	"github.com/citywatch/citywatch/internal/service"
)

// SnapshotProvider hands out the latest background refresh snapshot.
type SnapshotProvider interface {
	Snapshot() *refresh.Snapshot
}

type Handler struct {
	aggregator service.Aggregator
	snapshots  SnapshotProvider
	logger     *logrus.Logger
	validate   *validator.Validate
	cfg        *config.Config
	redisUp    bool
}

// NewHandler wires the API handler. snapshots may be nil when the
// background refresher is disabled; redisUp reflects the startup probe.
func NewHandler(aggregator service.Aggregator, snapshots SnapshotProvider, logger *logrus.Logger, cfg *config.Config, redisUp bool) *Handler {
	return &Handler{
		aggregator: aggregator,
		snapshots:  snapshots,
		logger:     logger,
		validate:   validator.New(),
		cfg:        cfg,
		redisUp:    redisUp,
	}
}

// city resolves the requested city code, falling back to the configured default.
func (h *Handler) city(c *gin.Context) string {
	city := c.Query("city")
	if city == "" {
		city = h.cfg.DefaultCity
	}
	return city
}

// @Summary List incidents
// @Description Get merged crime and civic incidents for a city, sorted by priority descending. Unknown city codes fall back to the default city.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param city query string false "City code (chi, nyc, la, sf, sea)"
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.aggregator.Incidents(c.Request.Context(), h.city(c))
	if err != nil {
		log.WithError(err).Error("Failed to aggregate incidents")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary List CCTV cameras
// @Description Get the public camera directory for a city, sorted by viewers descending.
// @Tags Cameras
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param city query string false "City code (chi, nyc, la, sf, sea)"
// @Success 200 {array} CameraResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cameras [get]
func (h *Handler) listCameras(c *gin.Context) {
	log := h.logger.WithField("method", "listCameras")

	cameras, err := h.aggregator.Cameras(c.Request.Context(), h.city(c))
	if err != nil {
		log.WithError(err).Error("Failed to aggregate cameras")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToCameraResponses(cameras))
}

// @Summary List news articles
// @Description Get the latest headlines from the news aggregator, newest first.
// @Tags News
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} NewsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /news [get]
func (h *Handler) listNews(c *gin.Context) {
	log := h.logger.WithField("method", "listNews")

	articles, err := h.aggregator.News(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to aggregate news")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToNewsResponses(articles))
}

// @Summary List radio streams
// @Description Get the static scanner and radio stream directory for a city.
// @Tags Radio
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param city query string false "City code (chi, nyc, la, sf, sea)"
// @Success 200 {array} RadioStreamResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /radio-streams [get]
func (h *Handler) listRadioStreams(c *gin.Context) {
	streams := h.aggregator.RadioStreams(h.city(c))
	c.JSON(http.StatusOK, ModelsToRadioStreamResponses(streams))
}

// @Summary List alerts
// @Description Get the unified alert feed of incidents and news for a city, newest first.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param city query string false "City code (chi, nyc, la, sf, sea)"
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")

	alerts, err := h.aggregator.Alerts(c.Request.Context(), h.city(c))
	if err != nil {
		log.WithError(err).Error("Failed to aggregate alerts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Analyze hotspots
// @Description Run hotspot analysis over the submitted incidents, cameras and news. Falls back to the local grid clusterer when AI analysis is unavailable; the response is tagged with degraded in that case.
// @Tags Analysis
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AnalyzeRequest true "Record sets to analyze"
// @Success 200 {object} AnalysisResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analyze-hotspots [post]
func (h *Handler) analyzeHotspots(c *gin.Context) {
	var input AnalyzeRequest
	log := h.logger.WithField("method", "analyzeHotspots")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := h.aggregator.Analyze(c.Request.Context(), DTOToAnalysisInput(input))
	if err != nil {
		log.WithError(err).Error("Failed to analyze records")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, OutcomeToAnalysisResponse(outcome))
}

// @Summary Get the latest snapshot
// @Description Get the result of the most recent background refresh cycle for the default city.
// @Tags Snapshot
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SnapshotResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "No snapshot available yet"
// @Router /snapshot [get]
func (h *Handler) getSnapshot(c *gin.Context) {
	if h.snapshots == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "background refresh disabled"})
		return
	}
	snap := h.snapshots.Snapshot()
	if snap == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "snapshot not ready"})
		return
	}
	c.JSON(http.StatusOK, SnapshotToResponse(snap))
}

// @Summary Get application health status
// @Description Get health status of the application and its optional dependencies
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Redis:  h.redisUp,
		AI:     h.cfg.AIAPIKey != "" && h.cfg.AIModel != "",
	})
}
