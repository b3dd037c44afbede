package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/climate_dashboard/internal/models"
)

// ListQueryRequest DTO параметров списка: поиск и окно страницы.
// Фильтры по измерениям читаются отдельно, по схеме вида записей
// @Description DTO параметров списка
type ListQueryRequest struct {
	Search   string `form:"search" validate:"max=200"`
	Page     int    `form:"page" validate:"omitempty,min=1,max=1000000"`
	PageSize int    `form:"pageSize" validate:"omitempty,min=1,max=1000"`
}

// ReportResponse DTO отчета
// @Description DTO отчета о климатическом инциденте
type ReportResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Reporter    string    `json:"reporter"`
	Phone       string    `json:"phone"`
	Type        string    `json:"type"`
	Severity    string    `json:"severity"`
	Status      string    `json:"status"`
	Channel     string    `json:"channel"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
}

// ReportListResponse DTO страницы отчетов
// @Description Страница отчетов, "Showing X to Y of N" и быстрая статистика
type ReportListResponse struct {
	Items        []ReportResponse     `json:"items"`
	TotalMatched int                  `json:"total_matched"`
	TotalPages   int                  `json:"total_pages"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
	ShowingFrom  int                  `json:"showing_from"`
	ShowingTo    int                  `json:"showing_to"`
	Summary      models.ReportSummary `json:"summary"`
}

// UserResponse DTO пользователя
// @Description DTO пользователя системы
type UserResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Role        string    `json:"role"`
	Department  string    `json:"department"`
	State       string    `json:"state"`
	Status      string    `json:"status"`
	LastLogin   time.Time `json:"last_login"`
	JoinDate    time.Time `json:"join_date"`
	Permissions []string  `json:"permissions"`
}

// UserListResponse DTO страницы пользователей
// @Description Страница пользователей
type UserListResponse struct {
	Items        []UserResponse `json:"items"`
	TotalMatched int            `json:"total_matched"`
	TotalPages   int            `json:"total_pages"`
	Page         int            `json:"page"`
	PageSize     int            `json:"page_size"`
	ShowingFrom  int            `json:"showing_from"`
	ShowingTo    int            `json:"showing_to"`
}

// MapPinResponse DTO метки карты
// @Description DTO метки карты с возрастом отчета
type MapPinResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Location   string    `json:"location"`
	Severity   string    `json:"severity"`
	Type       string    `json:"type"`
	ReportedAt time.Time `json:"reported_at"`
	Age        string    `json:"age"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
}

// MapPinListResponse DTO страницы меток карты
// @Description Страница меток карты
type MapPinListResponse struct {
	Items        []MapPinResponse `json:"items"`
	TotalMatched int              `json:"total_matched"`
	TotalPages   int              `json:"total_pages"`
	Page         int              `json:"page"`
	PageSize     int              `json:"page_size"`
}

// SendMessageRequest DTO для рассылки оповещения
// @Description DTO для рассылки оповещения. Нужен template_id или content
type SendMessageRequest struct {
	TemplateID     int64    `json:"template_id,omitempty" validate:"omitempty,gt=0"`
	Content        string   `json:"content,omitempty" validate:"required_without=TemplateID,max=480"`
	Channels       []string `json:"channels" validate:"required,min=1,dive,oneof=SMS Voice USSD"`
	TargetLocation string   `json:"target_location" validate:"required,max=100"`
	Recipients     int      `json:"recipients" validate:"min=0"`
}

// MessageResponse DTO отправленного оповещения
// @Description DTO отправленного оповещения
type MessageResponse struct {
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
