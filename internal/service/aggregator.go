package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/citywatch/citywatch/internal/adapters"
	"github.com/citywatch/citywatch/internal/analysis"
	"github.com/citywatch/citywatch/internal/models"
)

// Aggregator is the uniform query surface over all source adapters.
// A failing adapter contributes an empty list; its error is logged and
// never surfaced to the caller.
type Aggregator interface {
	Incidents(ctx context.Context, cityCode string) ([]models.IncidentRecord, error)
	Cameras(ctx context.Context, cityCode string) ([]models.CameraRecord, error)
	News(ctx context.Context) ([]models.NewsArticle, error)
	RadioStreams(cityCode string) []models.RadioStream
	Alerts(ctx context.Context, cityCode string) ([]models.Alert, error)
	Analyze(ctx context.Context, in analysis.Input) (models.AnalysisOutcome, error)
}

type aggregatorService struct {
	registry        *adapters.CityRegistry
	incidentSources []adapters.IncidentSource
	cameraSource    adapters.CameraSource
	newsSource      adapters.NewsSource
	radio           *adapters.RadioDirectory
	analyzer        analysis.Analyzer
	cache           *SnapshotCache
	logger          *logrus.Logger
}

// NewAggregatorService wires the facade. cache may be nil (uncached mode).
func NewAggregatorService(
	registry *adapters.CityRegistry,
	incidentSources []adapters.IncidentSource,
	cameraSource adapters.CameraSource,
	newsSource adapters.NewsSource,
	radio *adapters.RadioDirectory,
	analyzer analysis.Analyzer,
	cache *SnapshotCache,
	logger *logrus.Logger,
) Aggregator {
	return &aggregatorService{
		registry:        registry,
		incidentSources: incidentSources,
		cameraSource:    cameraSource,
		newsSource:      newsSource,
		radio:           radio,
		analyzer:        analyzer,
		cache:           cache,
		logger:          logger,
	}
}

// Incidents fans out across all incident adapters for the city, merges the
// results, and sorts them by priority descending.
func (s *aggregatorService) Incidents(ctx context.Context, cityCode string) ([]models.IncidentRecord, error) {
	city := s.registry.Resolve(cityCode)
	log := s.logger.WithFields(logrus.Fields{
		"service": "aggregator",
		"method":  "Incidents",
		"city":    city.Code,
	})

	cacheKey := "incidents:" + city.Code
	var cached []models.IncidentRecord
	if s.cache.Get(ctx, cacheKey, &cached) {
		log.WithField("count", len(cached)).Debug("Incidents served from cache")
		return cached, nil
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		merged []models.IncidentRecord
	)
	for _, src := range s.incidentSources {
		wg.Add(1)
		go func(src adapters.IncidentSource) {
			defer wg.Done()
			incidents, err := src.FetchIncidents(ctx, city)
			if err != nil {
				log.WithError(err).WithField("source", src.Name()).Warn("Incident source failed, contributing empty result")
				return
			}
			mu.Lock()
			merged = append(merged, incidents...)
			mu.Unlock()
		}(src)
	}
	wg.Wait()

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Priority != merged[j].Priority {
			return merged[i].Priority > merged[j].Priority
		}
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})

	s.cache.Set(ctx, cacheKey, merged)
	log.WithField("count", len(merged)).Info("Incidents aggregated")
	return merged, nil
}

// Cameras returns the city's camera directory sorted by viewers descending.
func (s *aggregatorService) Cameras(ctx context.Context, cityCode string) ([]models.CameraRecord, error) {
	city := s.registry.Resolve(cityCode)
	log := s.logger.WithFields(logrus.Fields{
		"service": "aggregator",
		"method":  "Cameras",
		"city":    city.Code,
	})

	cacheKey := "cameras:" + city.Code
	var cached []models.CameraRecord
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	cameras, err := s.cameraSource.FetchCameras(ctx, city)
	if err != nil {
		log.WithError(err).WithField("source", s.cameraSource.Name()).Warn("Camera source failed, contributing empty result")
		return []models.CameraRecord{}, nil
	}

	sort.Slice(cameras, func(i, j int) bool {
		return cameras[i].Viewers > cameras[j].Viewers
	})

	s.cache.Set(ctx, cacheKey, cameras)
	log.WithField("count", len(cameras)).Info("Cameras aggregated")
	return cameras, nil
}

// News returns the aggregator feed, absorbed to empty on failure.
func (s *aggregatorService) News(ctx context.Context) ([]models.NewsArticle, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "aggregator",
		"method":  "News",
	})

	articles, err := s.newsSource.FetchNews(ctx)
	if err != nil {
		log.WithError(err).WithField("source", s.newsSource.Name()).Warn("News source failed, contributing empty result")
		return []models.NewsArticle{}, nil
	}

	sort.Slice(articles, func(i, j int) bool {
		return articles[i].Time.After(articles[j].Time)
	})
	return articles, nil
}

// RadioStreams returns the static stream directory for the city.
func (s *aggregatorService) RadioStreams(cityCode string) []models.RadioStream {
	city := s.registry.Resolve(cityCode)
	return s.radio.Streams(city.Code)
}

// Alerts merges incidents and news into the tagged alert feed, newest first.
func (s *aggregatorService) Alerts(ctx context.Context, cityCode string) ([]models.Alert, error) {
	incidents, err := s.Incidents(ctx, cityCode)
	if err != nil {
		return nil, fmt.Errorf("service: could not aggregate incidents for alerts: %w", err)
	}
	articles, err := s.News(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not aggregate news for alerts: %w", err)
	}

	alerts := make([]models.Alert, 0, len(incidents)+len(articles))
	for _, inc := range incidents {
		alerts = append(alerts, models.AlertFromIncident(inc))
	}
	for _, article := range articles {
		alerts = append(alerts, models.AlertFromNews(article))
	}

	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].Time.After(alerts[j].Time)
	})
	return alerts, nil
}

// Analyze delegates to the configured analysis engine.
func (s *aggregatorService) Analyze(ctx context.Context, in analysis.Input) (models.AnalysisOutcome, error) {
	outcome, err := s.analyzer.Analyze(ctx, in)
	if err != nil {
		return models.AnalysisOutcome{}, fmt.Errorf("service: analysis failed: %w", err)
	}
	return outcome, nil
}
