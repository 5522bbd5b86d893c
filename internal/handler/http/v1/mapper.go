package v1

import (
	"github.com/citywatch/citywatch/internal/analysis"
	"github.com/citywatch/citywatch/internal/models"
	"github.com/citywatch/citywatch/internal/refresh"
)

// DTOToAnalysisInput converts a submitted request into the analysis input.
func DTOToAnalysisInput(req AnalyzeRequest) analysis.Input {
	in := analysis.Input{
		Incidents: make([]models.IncidentRecord, 0, len(req.Incidents)),
		Cameras:   make([]models.CameraRecord, 0, len(req.Cameras)),
		News:      make([]models.NewsArticle, 0, len(req.News)),
	}
	for _, p := range req.Incidents {
		in.Incidents = append(in.Incidents, models.IncidentRecord{
			ID:          p.ID,
			Title:       p.Title,
			Address:     p.Address,
			Lat:         p.Lat,
			Lng:         p.Lng,
			Timestamp:   p.Timestamp,
			Source:      p.Source,
			Category:    p.Category,
			Priority:    p.Priority,
			Status:      p.Status,
			Description: p.Description,
		})
	}
	for _, p := range req.Cameras {
		in.Cameras = append(in.Cameras, models.CameraRecord{
			ID:      p.ID,
			Name:    p.Name,
			Lat:     p.Lat,
			Lng:     p.Lng,
			Viewers: p.Viewers,
			Status:  p.Status,
		})
	}
	for _, p := range req.News {
		in.News = append(in.News, models.NewsArticle{
			Title:     p.Title,
			Source:    p.Source,
			Time:      p.Time,
			Sentiment: p.Sentiment,
		})
	}
	return in
}

// ModelToIncidentResponse converts a domain record into the response DTO.
func ModelToIncidentResponse(rec models.IncidentRecord) IncidentResponse {
	return IncidentResponse{
		ID:          rec.ID,
		Title:       rec.Title,
		Address:     rec.Address,
		Lat:         rec.Lat,
		Lng:         rec.Lng,
		Timestamp:   rec.Timestamp,
		Source:      rec.Source,
		Category:    rec.Category,
		Priority:    rec.Priority,
		Status:      rec.Status,
		Description: rec.Description,
	}
}

// ModelsToIncidentResponses converts a slice of records into response DTOs.
func ModelsToIncidentResponses(recs []models.IncidentRecord) []IncidentResponse {
	responses := make([]IncidentResponse, len(recs))
	for i, rec := range recs {
		responses[i] = ModelToIncidentResponse(rec)
	}
	return responses
}

// ModelToCameraResponse converts a camera record into the response DTO.
func ModelToCameraResponse(rec models.CameraRecord) CameraResponse {
	return CameraResponse{
		ID:        rec.ID,
		Name:      rec.Name,
		URL:       rec.URL,
		StreamURL: rec.StreamURL,
		Location:  rec.Location,
		Status:    rec.Status,
		Lat:       rec.Lat,
		Lng:       rec.Lng,
		Viewers:   rec.Viewers,
		Source:    rec.Source,
	}
}

// ModelsToCameraResponses converts a slice of camera records into response DTOs.
func ModelsToCameraResponses(recs []models.CameraRecord) []CameraResponse {
	responses := make([]CameraResponse, len(recs))
	for i, rec := range recs {
		responses[i] = ModelToCameraResponse(rec)
	}
	return responses
}

// ModelsToNewsResponses converts a slice of articles into response DTOs.
func ModelsToNewsResponses(articles []models.NewsArticle) []NewsResponse {
	responses := make([]NewsResponse, len(articles))
	for i, a := range articles {
		responses[i] = NewsResponse{
			ID:        a.ID,
			Title:     a.Title,
			Source:    a.Source,
			Time:      a.Time,
			Sentiment: a.Sentiment,
			Category:  a.Category,
			Location:  a.Location,
		}
	}
	return responses
}

// ModelsToRadioStreamResponses converts stream descriptors into response DTOs.
func ModelsToRadioStreamResponses(streams []models.RadioStream) []RadioStreamResponse {
	responses := make([]RadioStreamResponse, len(streams))
	for i, s := range streams {
		responses[i] = RadioStreamResponse{
			ID:        s.ID,
			Name:      s.Name,
			URL:       s.URL,
			Frequency: s.Frequency,
			Genre:     s.Genre,
			City:      s.City,
		}
	}
	return responses
}

// ModelsToAlertResponses converts the alert feed into response DTOs.
func ModelsToAlertResponses(alerts []models.Alert) []AlertResponse {
	responses := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		responses[i] = AlertResponse{
			Kind:      string(a.Kind),
			ID:        a.ID,
			Title:     a.Title,
			Source:    a.Source,
			Time:      a.Time,
			Location:  a.Location,
			Lat:       a.Lat,
			Lng:       a.Lng,
			Priority:  a.Priority,
			Sentiment: a.Sentiment,
		}
	}
	return responses
}

// OutcomeToAnalysisResponse flattens an analysis outcome into the response DTO.
func OutcomeToAnalysisResponse(outcome models.AnalysisOutcome) AnalysisResponse {
	resp := AnalysisResponse{
		Hotspots:       make([]HotspotResponse, len(outcome.Result.Hotspots)),
		Correlations:   make([]CorrelationResponse, len(outcome.Result.Correlations)),
		ThreatLevel:    string(outcome.Result.ThreatLevel),
		Summary:        outcome.Result.Summary,
		AnalyzedAt:     outcome.Result.AnalyzedAt,
		Degraded:       outcome.Degraded,
		DegradedReason: outcome.DegradedReason,
	}
	for i, h := range outcome.Result.Hotspots {
		resp.Hotspots[i] = HotspotResponse{
			Lat:           h.Lat,
			Lng:           h.Lng,
			Intensity:     h.Intensity,
			Description:   h.Description,
			IncidentCount: h.IncidentCount,
			CameraCount:   h.CameraCount,
			TopIncident:   h.TopIncident,
		}
	}
	for i, c := range outcome.Result.Correlations {
		resp.Correlations[i] = CorrelationResponse{
			Lat:           c.Lat,
			Lng:           c.Lng,
			IncidentCount: c.IncidentCount,
			CameraCount:   c.CameraCount,
			Description:   c.Description,
		}
	}
	return resp
}

// SnapshotToResponse converts the latest refresh snapshot into the response DTO.
func SnapshotToResponse(snap *refresh.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		City:        snap.City,
		Incidents:   ModelsToIncidentResponses(snap.Incidents),
		Cameras:     ModelsToCameraResponses(snap.Cameras),
		News:        ModelsToNewsResponses(snap.News),
		Analysis:    OutcomeToAnalysisResponse(snap.Analysis),
		GeneratedAt: snap.GeneratedAt,
	}
}
