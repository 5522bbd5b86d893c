// Package analysis derives hotspots and an overall threat level from the
// merged record set, either locally or by delegating to a generative-AI
// service with the local clusterer as unconditional fallback.
package analysis

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/citywatch/citywatch/internal/models"
)

// Input is the record set handed to one analysis pass.
type Input struct {
	Incidents []models.IncidentRecord
	Cameras   []models.CameraRecord
	News      []models.NewsArticle
}

// Analyzer abstracts the strategy used to produce an analysis result.
type Analyzer interface {
	Analyze(ctx context.Context, in Input) (models.AnalysisOutcome, error)
}

// GridAnalyzer buckets records into coarse grid cells formed by rounding
// coordinates to one decimal place (~11 km) and scores each cell. It is a
// deliberate O(n) single pass: no spatial index, no density clustering.
type GridAnalyzer struct {
	MinIntensity     float64
	MaxHotspots      int
	MinCameraViewers int
	MaxCorrelations  int
}

// now is indirected so tests can pin analysis timestamps.
var now = time.Now

// NewGridAnalyzer returns a GridAnalyzer with the default thresholds.
func NewGridAnalyzer() GridAnalyzer {
	return GridAnalyzer{
		MinIntensity:     25,
		MaxHotspots:      15,
		MinCameraViewers: 50,
		MaxCorrelations:  5,
	}
}

type gridCell struct {
	lat, lng  float64
	incidents []models.IncidentRecord
	cameras   []models.CameraRecord
	weighted  float64
}

// Analyze runs the grid clustering pass. It never fails: the worst case is
// an empty result with a low threat level.
func (a GridAnalyzer) Analyze(_ context.Context, in Input) (models.AnalysisOutcome, error) {
	cells := make(map[string]*gridCell)

	for _, inc := range in.Incidents {
		cell := a.cellFor(cells, inc.Lat, inc.Lng)
		cell.incidents = append(cell.incidents, inc)
		cell.weighted += float64(inc.Priority)
	}
	for _, cam := range in.Cameras {
		if cam.Lat == nil || cam.Lng == nil {
			continue
		}
		if cam.Viewers <= a.MinCameraViewers {
			continue
		}
		cell := a.cellFor(cells, *cam.Lat, *cam.Lng)
		cell.cameras = append(cell.cameras, cam)
		cell.weighted += float64(cam.Viewers)
	}

	hotspots := make([]models.Hotspot, 0, len(cells))
	for _, cell := range cells {
		intensity := cell.weighted / float64(len(cell.incidents)+len(cell.cameras)+1)
		intensity = clampIntensity(intensity)
		if intensity < a.MinIntensity {
			continue
		}
		hotspots = append(hotspots, models.Hotspot{
			Lat:           cell.lat,
			Lng:           cell.lng,
			Intensity:     intensity,
			Description:   fmt.Sprintf("%d incidents and %d active cameras in grid cell (%.1f, %.1f)", len(cell.incidents), len(cell.cameras), cell.lat, cell.lng),
			IncidentCount: len(cell.incidents),
			CameraCount:   len(cell.cameras),
			TopIncident:   topIncident(cell.incidents),
		})
	}

	sort.Slice(hotspots, func(i, j int) bool {
		if hotspots[i].Intensity != hotspots[j].Intensity {
			return hotspots[i].Intensity > hotspots[j].Intensity
		}
		if hotspots[i].Lat != hotspots[j].Lat {
			return hotspots[i].Lat < hotspots[j].Lat
		}
		return hotspots[i].Lng < hotspots[j].Lng
	})
	if len(hotspots) > a.MaxHotspots {
		hotspots = hotspots[:a.MaxHotspots]
	}

	result := models.AnalysisResult{
		Hotspots:     hotspots,
		Correlations: a.correlations(hotspots),
		ThreatLevel:  threatLevel(hotspots),
		Summary: fmt.Sprintf("Identified %d potential hotspots across %d incidents and %d cameras.",
			len(hotspots), len(in.Incidents), len(in.Cameras)),
		AnalyzedAt: now(),
	}

	return models.AnalysisOutcome{Result: result}, nil
}

func (a GridAnalyzer) cellFor(cells map[string]*gridCell, lat, lng float64) *gridCell {
	rlat, rlng := roundCoord(lat), roundCoord(lng)
	key := fmt.Sprintf("%.1f,%.1f", rlat, rlng)
	cell, ok := cells[key]
	if !ok {
		cell = &gridCell{lat: rlat, lng: rlng}
		cells[key] = cell
	}
	return cell
}

// correlations describes the top hotspots where incidents and monitored
// cameras co-occur in the same cell.
func (a GridAnalyzer) correlations(hotspots []models.Hotspot) []models.Correlation {
	correlations := make([]models.Correlation, 0)
	for _, h := range hotspots {
		if len(correlations) >= a.MaxCorrelations {
			break
		}
		if h.IncidentCount == 0 || h.CameraCount == 0 {
			continue
		}
		correlations = append(correlations, models.Correlation{
			Lat:           h.Lat,
			Lng:           h.Lng,
			IncidentCount: h.IncidentCount,
			CameraCount:   h.CameraCount,
			Description: fmt.Sprintf("%d incidents co-located with %d monitored cameras near (%.1f, %.1f)",
				h.IncidentCount, h.CameraCount, h.Lat, h.Lng),
		})
	}
	return correlations
}

func threatLevel(hotspots []models.Hotspot) models.ThreatLevel {
	if len(hotspots) == 0 {
		return models.ThreatLow
	}
	var total float64
	for _, h := range hotspots {
		total += h.Intensity
	}
	mean := total / float64(len(hotspots))
	switch {
	case mean > 70:
		return models.ThreatHigh
	case mean > 40:
		return models.ThreatMedium
	default:
		return models.ThreatLow
	}
}

func topIncident(incidents []models.IncidentRecord) string {
	var top string
	best := -1
	for _, inc := range incidents {
		if inc.Priority > best {
			best = inc.Priority
			top = inc.Title
		}
	}
	return top
}

func roundCoord(v float64) float64 {
	return math.Round(v*10) / 10
}

func clampIntensity(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
