package v1

import "time"

// IncidentPayload is an incident submitted for analysis.
// @Description Incident record submitted for hotspot analysis
type IncidentPayload struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Address     string    `json:"address,omitempty"`
	Lat         float64   `json:"lat" validate:"required,latitude"`
	Lng         float64   `json:"lng" validate:"required,longitude"`
	Timestamp   time.Time `json:"timestamp"`
	Source      string    `json:"source,omitempty"`
	Category    string    `json:"category,omitempty"`
	Priority    int       `json:"priority" validate:"gte=0,lte=100"`
	Status      string    `json:"status,omitempty"`
	Description string    `json:"description,omitempty"`
}

// CameraPayload is a camera submitted for analysis.
// @Description Camera record submitted for hotspot analysis
type CameraPayload struct {
	ID      string   `json:"id"`
	Name    string   `json:"name,omitempty"`
	Lat     *float64 `json:"lat,omitempty" validate:"omitempty,latitude"`
	Lng     *float64 `json:"lng,omitempty" validate:"omitempty,longitude"`
	Viewers int      `json:"viewers" validate:"gte=0"`
	Status  string   `json:"status,omitempty"`
}

// NewsPayload is a news article submitted for analysis.
// @Description News article submitted for hotspot analysis
type NewsPayload struct {
	Title     string    `json:"title"`
	Source    string    `json:"source,omitempty"`
	Time      time.Time `json:"time"`
	Sentiment string    `json:"sentiment,omitempty"`
}

// AnalyzeRequest carries the record sets for one analysis pass.
// @Description Request body for hotspot analysis
type AnalyzeRequest struct {
	Incidents []IncidentPayload `json:"incidents" validate:"dive"`
	Cameras   []CameraPayload   `json:"cameras" validate:"dive"`
	News      []NewsPayload     `json:"news" validate:"dive"`
}

// IncidentResponse is the API shape of an incident record.
// @Description Normalized incident record
type IncidentResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Address     string    `json:"address,omitempty"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Timestamp   time.Time `json:"timestamp"`
	Source      string    `json:"source"`
	Category    string    `json:"category"`
	Priority    int       `json:"priority"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
}

// CameraResponse is the API shape of a camera record.
// @Description Normalized CCTV camera record
type CameraResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	URL       string   `json:"url,omitempty"`
	StreamURL string   `json:"stream_url,omitempty"`
	Location  string   `json:"location,omitempty"`
	Status    string   `json:"status"`
	Lat       *float64 `json:"lat,omitempty"`
	Lng       *float64 `json:"lng,omitempty"`
	Viewers   int      `json:"viewers"`
	Source    string   `json:"source,omitempty"`
}

// NewsResponse is the API shape of a news article.
// @Description Normalized news article
type NewsResponse struct {
	ID        string    `json:"id,omitempty"`
	Title     string    `json:"title"`
	Source    string    `json:"source"`
	Time      time.Time `json:"time"`
	Sentiment string    `json:"sentiment,omitempty"`
	Category  string    `json:"category,omitempty"`
	Location  string    `json:"location,omitempty"`
}

// RadioStreamResponse is the API shape of a radio stream descriptor.
// @Description Static radio stream descriptor
type RadioStreamResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Frequency string `json:"frequency,omitempty"`
	Genre     string `json:"genre,omitempty"`
	City      string `json:"city"`
}

// HotspotResponse is the API shape of a derived hotspot.
// @Description Derived geographic hotspot
type HotspotResponse struct {
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	Intensity     float64 `json:"intensity"`
	Description   string  `json:"description"`
	IncidentCount int     `json:"incident_count,omitempty"`
	CameraCount   int     `json:"camera_count,omitempty"`
	TopIncident   string  `json:"top_incident,omitempty"`
}

// CorrelationResponse describes incident/camera co-occurrence in a cell.
// @Description Incident and camera co-occurrence within one grid cell
type CorrelationResponse struct {
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	IncidentCount int     `json:"incident_count"`
	CameraCount   int     `json:"camera_count"`
	Description   string  `json:"description"`
}

// AnalysisResponse is the result of one analysis pass, tagged with its
// provenance (primary AI path vs. local fallback).
// @Description Hotspot analysis result
type AnalysisResponse struct {
	Hotspots       []HotspotResponse     `json:"hotspots"`
	Correlations   []CorrelationResponse `json:"correlations"`
	ThreatLevel    string                `json:"threat_level"`
	Summary        string                `json:"summary"`
	AnalyzedAt     time.Time             `json:"analyzed_at"`
	Degraded       bool                  `json:"degraded"`
	DegradedReason string                `json:"degraded_reason,omitempty"`
}

// AlertResponse is one entry of the unified alert feed.
// @Description Tagged alert feed entry (incident or news)
type AlertResponse struct {
	Kind      string    `json:"kind"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Source    string    `json:"source"`
	Time      time.Time `json:"time"`
	Location  string    `json:"location,omitempty"`
	Lat       *float64  `json:"lat,omitempty"`
	Lng       *float64  `json:"lng,omitempty"`
	Priority  int       `json:"priority,omitempty"`
	Sentiment string    `json:"sentiment,omitempty"`
}

// SnapshotResponse is the latest completed refresh cycle.
// @Description Latest background refresh snapshot
type SnapshotResponse struct {
	City        string             `json:"city"`
	Incidents   []IncidentResponse `json:"incidents"`
	Cameras     []CameraResponse   `json:"cameras"`
	News        []NewsResponse     `json:"news"`
	Analysis    AnalysisResponse   `json:"analysis"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// HealthResponse reports process liveness and dependency readiness.
// @Description Liveness and readiness descriptor
type HealthResponse struct {
	Status string `json:"status"`
	Redis  bool   `json:"redis"`
	AI     bool   `json:"ai"`
}
