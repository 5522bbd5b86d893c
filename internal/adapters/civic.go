package adapters

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/citywatch/citywatch/internal/models"
	"github.com/citywatch/citywatch/internal/scoring"
)

// socrataServiceRequest covers the 311 service-request portals.
type socrataServiceRequest struct {
	SRNumber      string `json:"sr_number"`
	UniqueKey     string `json:"unique_key"`
	SRType        string `json:"sr_type"`
	ComplaintType string `json:"complaint_type"`
	Descriptor    string `json:"descriptor"`
	StreetAddress string `json:"street_address"`
	Address       string `json:"incident_address"`
	Status        string `json:"status"`
	CreatedDate   string `json:"created_date"`
	Latitude      string `json:"latitude"`
	Longitude     string `json:"longitude"`
}

// CivicAdapter maps 311 service requests to IncidentRecord. Service
// requests carry a lower baseline than crime reports.
type CivicAdapter struct {
	client *http.Client
	scorer scoring.Scorer
}

// NewCivicAdapter builds the adapter; the scorer baseline is lowered so
// 311 noise never outranks unmatched crime reports.
func NewCivicAdapter(timeout time.Duration, scorer scoring.Scorer) *CivicAdapter {
	scorer.Baseline = 40
	return &CivicAdapter{
		client: &http.Client{Timeout: timeout},
		scorer: scorer,
	}
}

// Name identifies the adapter in facade logs.
func (a *CivicAdapter) Name() string { return "civic311" }

// FetchIncidents retrieves and normalizes the city's 311 feed.
func (a *CivicAdapter) FetchIncidents(ctx context.Context, city City) ([]models.IncidentRecord, error) {
	var raw []socrataServiceRequest
	if err := getJSON(ctx, a.client, city.CivicURL, &raw); err != nil {
		return nil, fmt.Errorf("civic adapter: %w", err)
	}

	now := time.Now()
	incidents := make([]models.IncidentRecord, 0, len(raw))
	for _, rec := range raw {
		lat, okLat := parseCoord(rec.Latitude)
		lng, okLng := parseCoord(rec.Longitude)
		if !okLat || !okLng {
			continue
		}

		srType := coalesce(rec.SRType, rec.ComplaintType)
		created := parseTimestamp(rec.CreatedDate)
		status := coalesce(rec.Status, "open")

		incidents = append(incidents, models.IncidentRecord{
			ID:          coalesce(rec.SRNumber, rec.UniqueKey, uuid.NewString()),
			Title:       coalesce(srType, "Service request"),
			Address:     coalesce(rec.StreetAddress, rec.Address),
			Lat:         lat,
			Lng:         lng,
			Timestamp:   created,
			Source:      city.Name + " 311",
			Category:    "311 " + srType,
			Priority:    a.scorer.Score(srType, rec.Descriptor, status, created, now),
			Status:      status,
			Description: rec.Descriptor,
		})
	}

	return incidents, nil
}
