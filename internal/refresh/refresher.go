// Package refresh runs the periodic aggregation cycle and owns the
// immutable in-memory snapshot handed to readers.
package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/citywatch/citywatch/internal/analysis"
	"github.com/citywatch/citywatch/internal/models"
	"github.com/citywatch/citywatch/internal/service"
	"github.com/citywatch/citywatch/internal/webhook"
)

// Snapshot is the immutable result of one refresh cycle. A new cycle
// replaces the whole value; nothing mutates it in place.
type Snapshot struct {
	City        string                  `json:"city"`
	Incidents   []models.IncidentRecord `json:"incidents"`
	Cameras     []models.CameraRecord   `json:"cameras"`
	News        []models.NewsArticle    `json:"news"`
	Analysis    models.AnalysisOutcome  `json:"analysis"`
	GeneratedAt time.Time               `json:"generated_at"`
}

// Refresher periodically re-aggregates the default city and swaps the
// snapshot. Each cycle cancels its predecessor, so a slow stale cycle can
// never overwrite a newer snapshot.
type Refresher struct {
	aggregator    service.Aggregator
	publisher     webhook.AlertPublisher
	logger        *logrus.Logger
	interval      time.Duration
	city          string
	minAlertLevel models.ThreatLevel

	mu      sync.RWMutex
	current *Snapshot

	cancelCycle context.CancelFunc
}

// New builds a refresher; publisher may be nil to disable alerting.
func New(aggregator service.Aggregator, publisher webhook.AlertPublisher, logger *logrus.Logger, interval time.Duration, city string, minAlertLevel models.ThreatLevel) *Refresher {
	if !minAlertLevel.Valid() {
		minAlertLevel = models.ThreatHigh
	}
	return &Refresher{
		aggregator:    aggregator,
		publisher:     publisher,
		logger:        logger,
		interval:      interval,
		city:          city,
		minAlertLevel: minAlertLevel,
	}
}

// Start launches the refresh loop until ctx is cancelled.
func (r *Refresher) Start(ctx context.Context) {
	r.logger.WithField("interval", r.interval.String()).Info("Starting refresh loop...")
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		r.startCycle(ctx)
		for {
			select {
			case <-ctx.Done():
				r.logger.Info("Stopping refresh loop.")
				return
			case <-ticker.C:
				r.startCycle(ctx)
			}
		}
	}()
}

// startCycle cancels any in-flight cycle and begins a new one.
func (r *Refresher) startCycle(parent context.Context) {
	if r.cancelCycle != nil {
		r.cancelCycle()
	}
	cycleCtx, cancel := context.WithCancel(parent)
	r.cancelCycle = cancel
	go r.runCycle(cycleCtx)
}

// Snapshot returns the latest completed cycle, or nil before the first one.
func (r *Refresher) Snapshot() *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *Refresher) runCycle(ctx context.Context) {
	log := r.logger.WithFields(logrus.Fields{
		"service": "refresh",
		"city":    r.city,
	})

	incidents, err := r.aggregator.Incidents(ctx, r.city)
	if err != nil {
		log.WithError(err).Error("Refresh cycle failed to aggregate incidents")
		return
	}
	cameras, err := r.aggregator.Cameras(ctx, r.city)
	if err != nil {
		log.WithError(err).Error("Refresh cycle failed to aggregate cameras")
		return
	}
	news, err := r.aggregator.News(ctx)
	if err != nil {
		log.WithError(err).Error("Refresh cycle failed to aggregate news")
		return
	}

	outcome, err := r.aggregator.Analyze(ctx, analysis.Input{
		Incidents: incidents,
		Cameras:   cameras,
		News:      news,
	})
	if err != nil {
		log.WithError(err).Error("Refresh cycle failed to analyze records")
		return
	}

	// A superseded cycle must not overwrite the newer snapshot.
	if ctx.Err() != nil {
		log.Debug("Refresh cycle superseded, discarding result")
		return
	}

	snapshot := &Snapshot{
		City:        r.city,
		Incidents:   incidents,
		Cameras:     cameras,
		News:        news,
		Analysis:    outcome,
		GeneratedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.current = snapshot
	r.mu.Unlock()

	log.WithFields(logrus.Fields{
		"incidents":    len(incidents),
		"cameras":      len(cameras),
		"threat_level": outcome.Result.ThreatLevel,
		"degraded":     outcome.Degraded,
	}).Info("Refresh cycle completed")

	r.maybeAlert(ctx, outcome)
}

// maybeAlert publishes a threat alert when the cycle reaches the
// configured level; publish failures are logged, never fatal.
func (r *Refresher) maybeAlert(ctx context.Context, outcome models.AnalysisOutcome) {
	if r.publisher == nil {
		return
	}
	if outcome.Result.ThreatLevel.Rank() < r.minAlertLevel.Rank() {
		return
	}

	alert := webhook.ThreatAlert{
		City:         r.city,
		ThreatLevel:  outcome.Result.ThreatLevel,
		HotspotCount: len(outcome.Result.Hotspots),
		Degraded:     outcome.Degraded,
		Timestamp:    time.Now().UTC(),
	}
	if len(outcome.Result.Hotspots) > 0 {
		top := outcome.Result.Hotspots[0]
		alert.TopHotspot = &top
	}

	if err := r.publisher.Publish(ctx, alert); err != nil {
		r.logger.WithError(err).Error("Failed to publish threat alert")
	}
}
