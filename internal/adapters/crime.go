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

// socrataCrime is a superset of the field names the municipal crime portals
// use; each city fills a different subset and the adapter coalesces them.
type socrataCrime struct {
	ID          string `json:"id"`
	CaseNumber  string `json:"case_number"`
	UniqueKey   string `json:"unique_key"`
	PrimaryType string `json:"primary_type"`
	OffenseDesc string `json:"ofns_desc"`
	CrimeDesc   string `json:"crm_cd_desc"`
	Description string `json:"description"`
	Block       string `json:"block"`
	Address     string `json:"address"`
	Date        string `json:"date"`
	OccurredOn  string `json:"occ_date"`
	ReportDate  string `json:"report_datetime"`
	Status      string `json:"status"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
}

// CrimeAdapter maps municipal crime-portal records to IncidentRecord and
// applies the priority scorer.
type CrimeAdapter struct {
	client *http.Client
	scorer scoring.Scorer
}

// NewCrimeAdapter builds the adapter with its own transport timeout.
func NewCrimeAdapter(timeout time.Duration, scorer scoring.Scorer) *CrimeAdapter {
	return &CrimeAdapter{
		client: &http.Client{Timeout: timeout},
		scorer: scorer,
	}
}

// Name identifies the adapter in facade logs.
func (a *CrimeAdapter) Name() string { return "crime" }

// FetchIncidents retrieves and normalizes the city's crime feed. Records
// without valid coordinates are dropped.
func (a *CrimeAdapter) FetchIncidents(ctx context.Context, city City) ([]models.IncidentRecord, error) {
	var raw []socrataCrime
	if err := getJSON(ctx, a.client, city.CrimeURL, &raw); err != nil {
		return nil, fmt.Errorf("crime adapter: %w", err)
	}

	now := time.Now()
	incidents := make([]models.IncidentRecord, 0, len(raw))
	for _, rec := range raw {
		lat, okLat := parseCoord(rec.Latitude)
		lng, okLng := parseCoord(rec.Longitude)
		if !okLat || !okLng {
			continue
		}

		category := coalesce(rec.PrimaryType, rec.OffenseDesc, rec.CrimeDesc)
		description := rec.Description
		status := coalesce(rec.Status, "reported")
		occurred := parseTimestamp(coalesce(rec.Date, rec.OccurredOn, rec.ReportDate))

		incidents = append(incidents, models.IncidentRecord{
			ID:          coalesce(rec.ID, rec.CaseNumber, rec.UniqueKey, uuid.NewString()),
			Title:       coalesce(category, "Reported incident"),
			Address:     coalesce(rec.Block, rec.Address),
			Lat:         lat,
			Lng:         lng,
			Timestamp:   occurred,
			Source:      city.Name + " PD",
			Category:    category,
			Priority:    a.scorer.Score(category, description, status, occurred, now),
			Status:      status,
			Description: description,
		})
	}

	return incidents, nil
}
