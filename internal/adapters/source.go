// Package adapters normalizes provider-specific upstream schemas into the
// common record shapes. Every adapter degrades to an empty result at the
// aggregation boundary; errors carry enough context for the facade to log.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/citywatch/citywatch/internal/models"
)

// IncidentSource fetches normalized incident records for one city.
type IncidentSource interface {
	Name() string
	FetchIncidents(ctx context.Context, city City) ([]models.IncidentRecord, error)
}

// CameraSource fetches normalized camera records for one city.
type CameraSource interface {
	Name() string
	FetchCameras(ctx context.Context, city City) ([]models.CameraRecord, error)
}

// NewsSource fetches news articles from the aggregator feed.
type NewsSource interface {
	Name() string
	FetchNews(ctx context.Context) ([]models.NewsArticle, error)
}

// getJSON performs a GET and decodes the JSON body into dest.
func getJSON(ctx context.Context, client *http.Client, url string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("adapter: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("adapter: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("adapter: unexpected status %d from %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("adapter: decode body: %w", err)
	}
	return nil
}

// coalesce returns the first non-empty string.
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// parseCoord parses a Socrata-style string coordinate. Zero and
// unparseable values are reported as invalid.
func parseCoord(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return v, true
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseTimestamp tries the timestamp layouts seen across the open-data
// portals; a zero time signals an unparseable value.
func parseTimestamp(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
