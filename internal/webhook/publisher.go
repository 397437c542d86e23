package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/disaster_triage_system/internal/models"
)

const (
	alertQueueKey = "alert_events"
)

// AlertEvent - событие для внешних подписчиков: срочный инцидент
// после триажа либо кластер, требующий немедленного реагирования
type AlertEvent struct {
	IncidentID  uuid.UUID           `json:"incident_id"`
	Title       string              `json:"title"`
	Type        models.IncidentType `json:"incident_type"`
	Urgency     models.UrgencyLevel `json:"urgency_level"`
	Latitude    float64             `json:"latitude"`
	Longitude   float64             `json:"longitude"`
	IsDuplicate bool                `json:"is_duplicate"`
	Timestamp   time.Time           `json:"timestamp"`
}

// AlertPublisher - интерфейс для публикации срочных событий
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher - реализация AlertPublisher, использующая очередь Redis
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
