package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/climate_dashboard/internal/config"
	"github.com/shenikar/climate_dashboard/internal/models"
	"github.com/shenikar/climate_dashboard/internal/observability"
	"github.com/sirupsen/logrus"
)

const (
	signatureHeader = "X-Gateway-Signature"
	popTimeout      = 5 * time.Second
)

// Итоги доставки для метрик
const (
	outcomeDelivered = "delivered"
	outcomeFailed    = "failed"
	outcomeSkipped   = "skipped"
)

// DeliveryRecorder принимает итоговый статус доставки оповещения
type DeliveryRecorder interface {
	RecordDelivery(ctx context.Context, id uuid.UUID, status string) error
}

// Worker забирает оповещения из очереди и отправляет их в шлюз SMS/Voice/USSD
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	recorder    DeliveryRecorder
	metrics     *observability.Metrics
	clock       clockwork.Clock
	httpClient  *http.Client
}

// NewWorker создает новый Worker. metrics может быть nil
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config, recorder DeliveryRecorder, metrics *observability.Metrics, clock clockwork.Clock) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		recorder:    recorder,
		metrics:     metrics,
		clock:       clock,
		httpClient: &http.Client{
			Timeout: cfg.GatewayTimeout,
		},
	}
}

// Start запускает горутину обработки очереди. Горутина завершается при отмене ctx
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting message delivery worker...")
	go func() {
		for {
			if ctx.Err() != nil {
				w.logger.Info("Stopping message delivery worker.")
				return
			}

			result, err := w.redisClient.BRPop(ctx, popTimeout, messageQueueKey).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
					continue
				}
				w.logger.WithError(err).Error("Failed to pop message event from Redis")
				w.sleep(ctx, w.cfg.GatewayBaseDelay)
				continue
			}

			// result[0] - ключ, result[1] - значение
			payload := result[1]
			var event MessageEvent
			if err := json.Unmarshal([]byte(payload), &event); err != nil {
				w.logger.WithError(err).Error("Failed to unmarshal message event from Redis")
				continue
			}

			w.processEvent(ctx, event, []byte(payload))
		}
	}()
}

func (w *Worker) processEvent(ctx context.Context, event MessageEvent, payload []byte) {
	log := w.logger.WithFields(logrus.Fields{
		"message_id": event.MessageID,
		"location":   event.TargetLocation,
	})
	log.Debug("Processing message event...")

	if w.cfg.GatewayURL == "" {
		log.Warn("Gateway URL is not configured. Skipping message delivery.")
		w.finish(ctx, log, event.MessageID, outcomeSkipped, models.MessageStatusFailed)
		return
	}

	maxRetries := w.cfg.GatewayMaxRetries
	delay := w.cfg.GatewayBaseDelay

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := w.send(ctx, payload)
		if err == nil {
			log.WithField("attempt", attempt).Info("Message delivered to gateway.")
			w.finish(ctx, log, event.MessageID, outcomeDelivered, models.MessageStatusDelivered)
			return
		}
		if attempt == maxRetries {
			log.WithError(err).Warn("Gateway delivery attempt failed.")
			break
		}
		log.WithError(err).Warnf("Gateway delivery attempt failed. Retrying in %v. Retries left: %d", delay, maxRetries-attempt)
		if !w.sleep(ctx, delay) {
			break
		}
		delay *= 2
	}

	log.Errorf("Failed to deliver message after %d attempts.", maxRetries)
	w.finish(ctx, log, event.MessageID, outcomeFailed, models.MessageStatusFailed)
}

func (w *Worker) send(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.GatewayURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись добавляется, только если задан GATEWAY_SECRET
	if w.cfg.GatewaySecret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(payload, w.cfg.GatewaySecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send gateway request: %w", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("gateway responded with status code %d", resp.StatusCode)
	}
	return nil
}

func (w *Worker) finish(ctx context.Context, log *logrus.Entry, id uuid.UUID, outcome, status string) {
	if w.metrics != nil {
		w.metrics.Deliveries.WithLabelValues(outcome).Inc()
	}
	if err := w.recorder.RecordDelivery(ctx, id, status); err != nil {
		log.WithError(err).Warn("Failed to record delivery status")
	}
}

// sleep ждет d или отмены ctx. Возвращает false, если ctx отменен
func (w *Worker) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-w.clock.After(d):
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
