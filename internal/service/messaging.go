package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/climate_dashboard/internal/fixtures"
	"github.com/shenikar/climate_dashboard/internal/models"
	"github.com/shenikar/climate_dashboard/internal/observability"
	"github.com/shenikar/climate_dashboard/internal/webhook"
	"github.com/sirupsen/logrus"
)

// OutboxLimit - сколько последних оповещений хранит центр сообщений
const OutboxLimit = 50

var (
	ErrTemplateNotFound = errors.New("message template not found")
	ErrEmptyMessage     = errors.New("message has neither template nor content")
	ErrMessageNotFound  = errors.New("message not found")
)

// SendMessageInput - параметры рассылки оповещения
type SendMessageInput struct {
	TemplateID     int64
	Content        string
	Channels       []string
	TargetLocation string
	Recipients     int
}

// MessageService определяет контракт центра сообщений
type MessageService interface {
	Templates(ctx context.Context) ([]models.MessageTemplate, error)
	RecentMessages(ctx context.Context) []models.Message
	SendMessage(ctx context.Context, input SendMessageInput) (*models.Message, error)
	RecordDelivery(ctx context.Context, id uuid.UUID, status string) error
}

type messageService struct {
	catalog   Catalog
	publisher webhook.Publisher
	logger    *logrus.Logger
	clock     clockwork.Clock
	metrics   *observability.Metrics

	mu     sync.RWMutex
	outbox []models.Message // самые свежие в начале
}

func NewMessageService(catalog Catalog, publisher webhook.Publisher, logger *logrus.Logger, clock clockwork.Clock, metrics *observability.Metrics) MessageService {
	return &messageService{
		catalog:   catalog,
		publisher: publisher,
		logger:    logger,
		clock:     clock,
		metrics:   metrics,
		outbox:    fixtures.RecentMessages(),
	}
}

// Templates возвращает шаблоны оповещений
func (s *messageService) Templates(ctx context.Context) ([]models.MessageTemplate, error) {
	templates, err := s.catalog.MessageTemplates(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "Templates").Error("Failed to load message templates")
		return nil, fmt.Errorf("service: could not load message templates: %w", err)
	}
	return templates, nil
}

// RecentMessages возвращает отправленные оповещения, самые свежие первыми
func (s *messageService) RecentMessages(_ context.Context) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.outbox)
}

// SendMessage ставит оповещение в очередь доставки
func (s *messageService) SendMessage(ctx context.Context, input SendMessageInput) (*models.Message, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "message",
		"method":      "SendMessage",
		"template_id": input.TemplateID,
		"location":    input.TargetLocation,
	})
	log.Info("Attempting to send alert message")

	message := models.Message{
		ID:             uuid.New(),
		Content:        input.Content,
		Recipients:     input.Recipients,
		Channels:       slices.Clone(input.Channels),
		Status:         models.MessageStatusSending,
		Timestamp:      s.clock.Now(),
		TargetLocation: input.TargetLocation,
	}

	if input.TemplateID != 0 {
		template, err := s.findTemplate(ctx, input.TemplateID)
		if err != nil {
			log.WithError(err).Warn("Failed to resolve message template")
			return nil, err
		}
		message.Template = template.Name
		if message.Content == "" {
			message.Content = template.Content
		}
	}
	if message.Content == "" {
		return nil, ErrEmptyMessage
	}

	event := webhook.MessageEvent{
		MessageID:      message.ID,
		Content:        message.Content,
		Channels:       message.Channels,
		TargetLocation: message.TargetLocation,
		Recipients:     message.Recipients,
		Timestamp:      message.Timestamp,
	}
	// Итог доставки может прийти от воркера раньше, чем вернется Publish
	s.remember(message)
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish message event")
		s.update(message.ID, func(m *models.Message) { m.Status = models.MessageStatusFailed })
		return nil, fmt.Errorf("service: could not queue message: %w", err)
	}
	if s.metrics != nil {
		s.metrics.MessagesPublished.Inc()
	}

	log.WithField("message_id", message.ID).Info("Alert message queued")
	return &message, nil
}

// RecordDelivery обновляет статус оповещения по итогам доставки через шлюз
func (s *messageService) RecordDelivery(_ context.Context, id uuid.UUID, status string) error {
	found := s.update(id, func(m *models.Message) {
		m.Status = status
		if status == models.MessageStatusDelivered {
			m.DeliveryRate = 100
		}
	})
	if !found {
		return fmt.Errorf("service: message %s: %w", id, ErrMessageNotFound)
	}
	return nil
}

func (s *messageService) findTemplate(ctx context.Context, id int64) (*models.MessageTemplate, error) {
	templates, err := s.catalog.MessageTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not load message templates: %w", err)
	}
	i := slices.IndexFunc(templates, func(t models.MessageTemplate) bool { return t.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("service: template %d: %w", id, ErrTemplateNotFound)
	}
	return &templates[i], nil
}

func (s *messageService) remember(message models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outbox = slices.Insert(s.outbox, 0, message)
	if len(s.outbox) > OutboxLimit {
		clear(s.outbox[OutboxLimit:])
		s.outbox = s.outbox[:OutboxLimit]
	}
}

// update применяет fn к оповещению с данным id. Возвращает false, если его нет в outbox
func (s *messageService) update(id uuid.UUID, fn func(*models.Message)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.outbox, func(m models.Message) bool { return m.ID == id })
	if i < 0 {
		return false
	}
	fn(&s.outbox[i])
	return true
}
