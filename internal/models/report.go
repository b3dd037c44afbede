package models

import (
	"time"

	"github.com/shenikar/climate_dashboard/internal/query"
)

// Статусы отчета
const (
	ReportStatusPending   = "pending"
	ReportStatusEscalated = "escalated"
	ReportStatusResolved  = "resolved"
)

// Уровни серьезности
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Каналы поступления отчетов
const (
	ChannelVoice = "voice"
	ChannelSMS   = "sms"
	ChannelUSSD  = "ussd"
)

// Report - отчет о климатическом инциденте
type Report struct {
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

// ReportSchema - измерения фильтрации и поля поиска для отчетов
var ReportSchema = query.Schema[Report]{
	Dimensions: map[string]query.Accessor[Report]{
		"status":   func(r Report) string { return r.Status },
		"severity": func(r Report) string { return r.Severity },
		"channel":  func(r Report) string { return r.Channel },
		"type":     func(r Report) string { return r.Type },
	},
	Searchable: []query.Accessor[Report]{
		func(r Report) string { return r.Title },
		func(r Report) string { return r.Location },
		func(r Report) string { return r.ID },
	},
	Options: map[string][]string{
		"status":   {query.All, "Pending", "Escalated", "Resolved"},
		"severity": {query.All, "High", "Medium", "Low"},
		"channel":  {query.All, "Voice", "SMS", "USSD"},
	},
}

// ReportSummary - быстрая статистика по отфильтрованным отчетам
type ReportSummary struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	HighSeverity int `json:"high_severity"`
	Resolved     int `json:"resolved"`
}

// SummarizeReports считает быструю статистику по набору отчетов
func SummarizeReports(reports []Report) ReportSummary {
	summary := ReportSummary{Total: len(reports)}
	for _, r := range reports {
		switch r.Status {
		case ReportStatusPending:
			summary.Pending++
		case ReportStatusResolved:
			summary.Resolved++
		}
		if r.Severity == SeverityHigh {
			summary.HighSeverity++
		}
	}
	return summary
}
