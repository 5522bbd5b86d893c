package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes. Auth middleware, when given,
// covers everything except the health check.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, auth ...gin.HandlerFunc) {
	protected := api.Group("", auth...)

	// Read-only dashboard feeds
	protected.GET("/incidents", h.listIncidents)
	protected.GET("/cameras", h.listCameras)
	protected.GET("/news", h.listNews)
	protected.GET("/radio-streams", h.listRadioStreams)
	protected.GET("/alerts", h.listAlerts)
	protected.GET("/snapshot", h.getSnapshot)

	// Hotspot analysis
	protected.POST("/analyze-hotspots", h.analyzeHotspots)

	// Health-check route stays unauthenticated
	api.GET("/system/health", h.healthCheck)
}
