package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	messageQueueKey = "alert_messages"
)

// MessageEvent - оповещение, поставленное в очередь на доставку через шлюз
type MessageEvent struct {
	MessageID      uuid.UUID `json:"message_id"`
	Content        string    `json:"content"`
	Channels       []string  `json:"channels"`
	TargetLocation string    `json:"target_location"`
	Recipients     int       `json:"recipients"`
	Timestamp      time.Time `json:"timestamp"`
}

// Publisher - интерфейс для постановки оповещений в очередь
type Publisher interface {
	Publish(ctx context.Context, event MessageEvent) error
}

// RedisPublisher - реализация Publisher, использующая список Redis как очередь
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует оповещение в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event MessageEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal message event: %w", err)
	}

	// LPUSH добавляет в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, messageQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish message event to Redis: %w", err)
	}
	return nil
}

// LogPublisher только пишет оповещение в лог. Используется, когда Redis не настроен
type LogPublisher struct {
	logger *logrus.Logger
}

func NewLogPublisher(logger *logrus.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event MessageEvent) error {
	p.logger.WithFields(logrus.Fields{
		"message_id": event.MessageID,
		"channels":   event.Channels,
		"location":   event.TargetLocation,
	}).Warn("Message queue is not configured. Alert message was not dispatched.")
	return nil
}
