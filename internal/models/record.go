package models

import "time"

// IncidentRecord is the normalized shape shared by all incident providers.
// Records are immutable once fetched; a refresh cycle replaces them wholesale.
type IncidentRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Address     string    `json:"address"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Timestamp   time.Time `json:"timestamp"`
	Source      string    `json:"source"`
	Category    string    `json:"category"`
	Priority    int       `json:"priority"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
}

// CameraRecord describes one entry of a public CCTV directory.
// Lat/Lng may be absent; such cameras stay in listings but are
// skipped by clustering and map placement.
type CameraRecord struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	URL       string   `json:"url"`
	StreamURL string   `json:"stream_url,omitempty"`
	Location  string   `json:"location"`
	Status    string   `json:"status"`
	Lat       *float64 `json:"lat,omitempty"`
	Lng       *float64 `json:"lng,omitempty"`
	Viewers   int      `json:"viewers"`
	Source    string   `json:"source,omitempty"`
}

// NewsArticle is a headline from the news aggregator. Sentiment is derived
// by keyword counting at ingestion, not by a model.
type NewsArticle struct {
	ID        string    `json:"id,omitempty"`
	Title     string    `json:"title"`
	Source    string    `json:"source"`
	Time      time.Time `json:"time"`
	Sentiment string    `json:"sentiment,omitempty"`
	Category  string    `json:"category,omitempty"`
	Location  string    `json:"location,omitempty"`
}

// RadioStream is a static descriptor of a public scanner/radio feed.
type RadioStream struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Frequency string `json:"frequency,omitempty"`
	Genre     string `json:"genre,omitempty"`
	City      string `json:"city"`
}
