// Package webhook queues threat alerts in Redis and delivers them to a
// configured endpoint with HMAC signing.
package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/citywatch/citywatch/internal/models"
)

const alertQueueKey = "threat_alerts"

// ThreatAlert is emitted when an analysis cycle crosses the configured
// threat level.
type ThreatAlert struct {
	City         string             `json:"city"`
	ThreatLevel  models.ThreatLevel `json:"threat_level"`
	HotspotCount int                `json:"hotspot_count"`
	TopHotspot   *models.Hotspot    `json:"top_hotspot,omitempty"`
	Degraded     bool               `json:"degraded"`
	Timestamp    time.Time          `json:"timestamp"`
}

// AlertPublisher publishes threat alerts for asynchronous delivery.
type AlertPublisher interface {
	Publish(ctx context.Context, alert ThreatAlert) error
}

// RedisAlertPublisher queues alerts on a Redis list.
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher wraps the given client.
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{redisClient: client}
}

// Publish pushes the alert onto the delivery queue.
func (p *RedisAlertPublisher) Publish(ctx context.Context, alert ThreatAlert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal threat alert: %w", err)
	}

	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish threat alert to Redis: %w", err)
	}
	return nil
}
