package models

import "time"

// AlertKind discriminates the alert union. It is resolved once at
// ingestion instead of being re-inferred from optional fields.
type AlertKind string

const (
	AlertIncident AlertKind = "incident"
	AlertNews     AlertKind = "news"
)

// Alert is the unified entry shown in the dashboard alert feed. Exactly one
// of the kind-specific fields is meaningful, selected by Kind.
type Alert struct {
	Kind      AlertKind `json:"kind"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Source    string    `json:"source"`
	Time      time.Time `json:"time"`
	Location  string    `json:"location,omitempty"`
	Lat       *float64  `json:"lat,omitempty"`
	Lng       *float64  `json:"lng,omitempty"`
	Priority  int       `json:"priority,omitempty"`  // incident alerts only
	Sentiment string    `json:"sentiment,omitempty"` // news alerts only
}

// AlertFromIncident resolves an incident record into the alert union.
func AlertFromIncident(rec IncidentRecord) Alert {
	lat, lng := rec.Lat, rec.Lng
	return Alert{
		Kind:     AlertIncident,
		ID:       rec.ID,
		Title:    rec.Title,
		Source:   rec.Source,
		Time:     rec.Timestamp,
		Location: rec.Address,
		Lat:      &lat,
		Lng:      &lng,
		Priority: rec.Priority,
	}
}

// AlertFromNews resolves a news article into the alert union.
func AlertFromNews(article NewsArticle) Alert {
	return Alert{
		Kind:      AlertNews,
		ID:        article.ID,
		Title:     article.Title,
		Source:    article.Source,
		Time:      article.Time,
		Location:  article.Location,
		Sentiment: article.Sentiment,
	}
}
