package models

import "time"

// ThreatLevel is the coarse label derived from mean hotspot intensity.
type ThreatLevel string

const (
	ThreatLow    ThreatLevel = "low"
	ThreatMedium ThreatLevel = "medium"
	ThreatHigh   ThreatLevel = "high"
)

// Rank orders threat levels so they can be compared; unknown values rank lowest.
func (t ThreatLevel) Rank() int {
	switch t {
	case ThreatLow:
		return 1
	case ThreatMedium:
		return 2
	case ThreatHigh:
		return 3
	}
	return 0
}

// Valid reports whether the value is one of the three known levels.
func (t ThreatLevel) Valid() bool {
	return t.Rank() > 0
}

// Hotspot is a derived geographic cluster. It is ephemeral: recomputed
// every analysis pass and never persisted.
type Hotspot struct {
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	Intensity     float64 `json:"intensity"`
	Description   string  `json:"description"`
	IncidentCount int     `json:"incident_count,omitempty"`
	CameraCount   int     `json:"camera_count,omitempty"`
	TopIncident   string  `json:"top_incident,omitempty"`
}

// Correlation describes incident/camera co-occurrence within one grid cell.
type Correlation struct {
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	IncidentCount int     `json:"incident_count"`
	CameraCount   int     `json:"camera_count"`
	Description   string  `json:"description"`
}

// AnalysisResult is the output of a single clustering pass. No history is kept.
type AnalysisResult struct {
	Hotspots     []Hotspot     `json:"hotspots"`
	Correlations []Correlation `json:"correlations"`
	ThreatLevel  ThreatLevel   `json:"threat_level"`
	Summary      string        `json:"summary"`
	AnalyzedAt   time.Time     `json:"analyzed_at"`
}

// AnalysisOutcome tags a result with its provenance so callers can tell a
// primary AI analysis from the deterministic local fallback.
type AnalysisOutcome struct {
	Result         AnalysisResult `json:"result"`
	Degraded       bool           `json:"degraded"`
	DegradedReason string         `json:"degraded_reason,omitempty"`
}
