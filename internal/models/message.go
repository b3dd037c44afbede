package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы рассылки
const (
	MessageStatusSending   = "sending"
	MessageStatusDelivered = "delivered"
	MessageStatusFailed    = "failed"
)

// Каналы рассылки оповещений
var MessageChannels = []string{"SMS", "Voice", "USSD"}

// MessageTemplate - шаблон оповещения
type MessageTemplate struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Usage    int    `json:"usage"`
}

// Message - отправленное оповещение
type Message struct {
	ID             uuid.UUID `json:"id"`
	Template       string    `json:"template,omitempty"`
	Content        string    `json:"content"`
	Recipients     int       `json:"recipients"`
	Channels       []string  `json:"channels"`
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
	DeliveryRate   float64   `json:"delivery_rate"`
	TargetLocation string    `json:"target_location"`
}
