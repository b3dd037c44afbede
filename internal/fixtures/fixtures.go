// Package fixtures содержит демонстрационные данные дашборда.
// Коллекции возвращаются копиями, поэтому вызывающий код не может изменить исходные данные.
package fixtures

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/climate_dashboard/internal/models"
)

const timestampLayout = "2006-01-02 15:04:05"

func at(value string) time.Time {
	t, err := time.Parse(timestampLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

var reports = []models.Report{
	{
		ID:          "RPT-2024-001",
		Title:       "Severe Flooding in Victoria Island",
		Location:    "Lagos State, Victoria Island",
		Reporter:    "Community Member",
		Phone:       "+234-801-xxx-1234",
		Type:        "Flood Alert",
		Severity:    models.SeverityHigh,
		Status:      models.ReportStatusPending,
		Channel:     models.ChannelVoice,
		Timestamp:   at("2024-01-15 09:23:45"),
		Description: "Heavy rainfall causing severe flooding in residential areas...",
		Latitude:    6.4281,
		Longitude:   3.4219,
	},
	{
		ID:          "RPT-2024-002",
		Title:       "Drought Conditions in Gwale LGA",
		Location:    "Kano State, Gwale",
		Reporter:    "Local Farmer",
		Phone:       "+234-802-xxx-5678",
		Type:        "Drought Warning",
		Severity:    models.SeverityMedium,
		Status:      models.ReportStatusEscalated,
		Channel:     models.ChannelSMS,
		Timestamp:   at("2024-01-15 08:45:12"),
		Description: "Prolonged dry conditions affecting crop yields...",
		Latitude:    12.0022,
		Longitude:   8.5920,
	},
	{
		ID:          "RPT-2024-003",
		Title:       "Storm Warning Port Harcourt",
		Location:    "Rivers State, Port Harcourt",
		Reporter:    "Weather Observer",
		Phone:       "+234-803-xxx-9012",
		Type:        "Storm Alert",
		Severity:    models.SeverityHigh,
		Status:      models.ReportStatusResolved,
		Channel:     models.ChannelUSSD,
		Timestamp:   at("2024-01-15 07:12:30"),
		Description: "Strong winds and heavy rain approaching the area...",
		Latitude:    4.8156,
		Longitude:   7.0498,
	},
	{
		ID:          "RPT-2024-004",
		Title:       "Heat Wave in Kaduna City",
		Location:    "Kaduna State, Kaduna",
		Reporter:    "Health Official",
		Phone:       "+234-804-xxx-3456",
		Type:        "Heat Wave",
		Severity:    models.SeverityMedium,
		Status:      models.ReportStatusPending,
		Channel:     models.ChannelVoice,
		Timestamp:   at("2024-01-15 06:30:15"),
		Description: "Extremely high temperatures affecting public health...",
		Latitude:    10.5105,
		Longitude:   7.4165,
	},
	{
		ID:          "RPT-2024-005",
		Title:       "Landslide Risk in Abeokuta",
		Location:    "Ogun State, Abeokuta",
		Reporter:    "Emergency Service",
		Phone:       "+234-805-xxx-7890",
		Type:        "Landslide Risk",
		Severity:    models.SeverityHigh,
		Status:      models.ReportStatusEscalated,
		Channel:     models.ChannelSMS,
		Timestamp:   at("2024-01-15 05:45:00"),
		Description: "Unstable soil conditions following heavy rainfall...",
		Latitude:    7.1475,
		Longitude:   3.3619,
	},
}

var users = []models.User{
	{
		ID:          1,
		Name:        "Dr. Amina Hassan",
		Email:       "a.hassan@climate.gov.ng",
		Phone:       "+234-801-234-5678",
		Role:        "Administrator",
		Department:  "Climate Monitoring",
		State:       "Federal Capital Territory",
		Status:      "active",
		LastLogin:   at("2024-01-15 14:30:00"),
		JoinDate:    at("2023-06-15 00:00:00"),
		Permissions: []string{"all_access", "user_management", "system_config"},
	},
	{
		ID:          2,
		Name:        "Eng. Chidi Okonkwo",
		Email:       "c.okonkwo@climate.gov.ng",
		Phone:       "+234-802-345-6789",
		Role:        "State Coordinator",
		Department:  "Emergency Response",
		State:       "Lagos State",
		Status:      "active",
		LastLogin:   at("2024-01-15 12:15:00"),
		JoinDate:    at("2023-08-20 00:00:00"),
		Permissions: []string{"reports_view", "alerts_send", "data_export"},
	},
	{
		ID:          3,
		Name:        "Mrs. Fatima Abdullahi",
		Email:       "f.abdullahi@climate.gov.ng",
		Phone:       "+234-803-456-7890",
		Role:        "Data Analyst",
		Department:  "Research & Analytics",
		State:       "Kano State",
		Status:      "active",
		LastLogin:   at("2024-01-15 09:45:00"),
		JoinDate:    at("2023-04-10 00:00:00"),
		Permissions: []string{"analytics_access", "reports_view", "data_export"},
	},
	{
		ID:          4,
		Name:        "Mr. Emeka Nwosu",
		Email:       "e.nwosu@climate.gov.ng",
		Phone:       "+234-804-567-8901",
		Role:        "Field Coordinator",
		Department:  "Field Operations",
		State:       "Rivers State",
		Status:      "inactive",
		LastLogin:   at("2024-01-10 16:20:00"),
		JoinDate:    at("2023-09-05 00:00:00"),
		Permissions: []string{"reports_create", "field_data_entry"},
	},
	{
		ID:          5,
		Name:        "Dr. Aisha Bello",
		Email:       "a.bello@climate.gov.ng",
		Phone:       "+234-805-678-9012",
		Role:        "Researcher",
		Department:  "Climate Science",
		State:       "Kaduna State",
		Status:      "active",
		LastLogin:   at("2024-01-15 11:30:00"),
		JoinDate:    at("2023-07-12 00:00:00"),
		Permissions: []string{"analytics_access", "research_tools", "data_export"},
	},
}

var mapPins = []models.MapPin{
	{
		ID:         1,
		Title:      "Severe Flooding",
		Location:   "Lagos, Victoria Island",
		Severity:   models.SeverityHigh,
		Type:       models.PinTypeFlood,
		ReportedAt: at("2024-01-15 14:28:00"),
		Latitude:   6.4281,
		Longitude:  3.4219,
	},
	{
		ID:         2,
		Title:      "Drought Conditions",
		Location:   "Kano, Gwale LGA",
		Severity:   models.SeverityMedium,
		Type:       models.PinTypeDrought,
		ReportedAt: at("2024-01-15 14:15:00"),
		Latitude:   12.0022,
		Longitude:  8.5920,
	},
	{
		ID:         3,
		Title:      "Storm Warning",
		Location:   "Rivers, Port Harcourt",
		Severity:   models.SeverityHigh,
		Type:       models.PinTypeStorm,
		ReportedAt: at("2024-01-15 14:07:00"),
		Latitude:   4.8156,
		Longitude:  7.0498,
	},
}

var messageTemplates = []models.MessageTemplate{
	{
		ID:       1,
		Name:     "Flood Warning",
		Type:     "Emergency",
		Content:  "URGENT: Flood warning issued for your area. Seek higher ground immediately. Stay safe and follow emergency protocols.",
		Category: "Weather Alert",
		Usage:    124,
	},
	{
		ID:       2,
		Name:     "Drought Advisory",
		Type:     "Advisory",
		Content:  "Water conservation advisory in effect. Please conserve water and follow rationing guidelines. Monitor official updates.",
		Category: "Resource Management",
		Usage:    89,
	},
	{
		ID:       3,
		Name:     "Storm Alert",
		Type:     "Emergency",
		Content:  "Severe storm approaching. Secure loose objects, stay indoors, and avoid travel. Emergency services on standby.",
		Category: "Weather Alert",
		Usage:    67,
	},
	{
		ID:       4,
		Name:     "Heat Wave Warning",
		Type:     "Health",
		Content:  "Extreme heat warning. Stay hydrated, avoid outdoor activities during peak hours. Check on elderly neighbors.",
		Category: "Health Advisory",
		Usage:    45,
	},
}

var recentMessages = []models.Message{
	{
		ID:             uuid.MustParse("6f1c2a4e-0b1d-4c55-9f0a-2f3e5d7c8a01"),
		Template:       "Flood Warning",
		Recipients:     1247,
		Channels:       []string{"SMS", "Voice"},
		Status:         models.MessageStatusDelivered,
		Timestamp:      at("2024-01-15 14:30:00"),
		DeliveryRate:   98.2,
		TargetLocation: "Lagos State",
	},
	{
		ID:             uuid.MustParse("6f1c2a4e-0b1d-4c55-9f0a-2f3e5d7c8a02"),
		Template:       "Drought Advisory",
		Recipients:     856,
		Channels:       []string{"SMS", "USSD"},
		Status:         models.MessageStatusSending,
		Timestamp:      at("2024-01-15 13:45:00"),
		DeliveryRate:   76.5,
		TargetLocation: "Kano State",
	},
	{
		ID:             uuid.MustParse("6f1c2a4e-0b1d-4c55-9f0a-2f3e5d7c8a03"),
		Template:       "Storm Alert",
		Recipients:     2103,
		Channels:       []string{"Voice", "SMS"},
		Status:         models.MessageStatusDelivered,
		Timestamp:      at("2024-01-15 12:15:00"),
		DeliveryRate:   94.7,
		TargetLocation: "Rivers State",
	},
}

var statCards = []models.StatCard{
	{Title: "Reports Today", Value: "127", Change: "+12%", Trend: "up"},
	{Title: "Unresolved Reports", Value: "23", Change: "-8%", Trend: "down"},
	{Title: "Avg Response Time", Value: "2.3m", Change: "-15%", Trend: "down"},
	{Title: "Active Channels", Value: "3", Change: "0%", Trend: "stable"},
}

var analytics = models.Analytics{
	ReportsTrend: []models.MonthlyTrend{
		{Month: "Jan", Reports: 45, Resolved: 42},
		{Month: "Feb", Reports: 52, Resolved: 48},
		{Month: "Mar", Reports: 78, Resolved: 71},
		{Month: "Apr", Reports: 65, Resolved: 60},
		{Month: "May", Reports: 89, Resolved: 82},
		{Month: "Jun", Reports: 127, Resolved: 118},
	},
	ReportTypes: []models.TypeShare{
		{Type: "Floods", Count: 45, Percentage: 35.4},
		{Type: "Droughts", Count: 32, Percentage: 25.2},
		{Type: "Storms", Count: 28, Percentage: 22.0},
		{Type: "Heat Waves", Count: 15, Percentage: 11.8},
		{Type: "Others", Count: 7, Percentage: 5.5},
	},
	TopLocations: []models.LocationTrend{
		{State: "Lagos", Reports: 34, Trend: "up"},
		{State: "Kano", Reports: 28, Trend: "down"},
		{State: "Rivers", Reports: 23, Trend: "up"},
		{State: "Kaduna", Reports: 19, Trend: "up"},
		{State: "Ogun", Reports: 16, Trend: "down"},
	},
}

var weatherAlerts = []models.WeatherAlert{
	{Kind: "Heat Wave", Reading: "42°C", State: "Sokoto State"},
	{Kind: "Heavy Rain", Reading: "85mm", State: "Lagos State"},
	{Kind: "Strong Winds", Reading: "65km/h", State: "Rivers State"},
	{Kind: "Drought", Reading: "45 days", State: "Kano State"},
}

func Reports() []models.Report { return slices.Clone(reports) }

func Users() []models.User { return slices.Clone(users) }

func MapPins() []models.MapPin { return slices.Clone(mapPins) }

func MessageTemplates() []models.MessageTemplate { return slices.Clone(messageTemplates) }

func RecentMessages() []models.Message { return slices.Clone(recentMessages) }

func StatCards() []models.StatCard { return slices.Clone(statCards) }

func WeatherAlerts() []models.WeatherAlert { return slices.Clone(weatherAlerts) }

// Analytics возвращает копию данных экрана аналитики
func Analytics() models.Analytics {
	return models.Analytics{
		ReportsTrend: slices.Clone(analytics.ReportsTrend),
		ReportTypes:  slices.Clone(analytics.ReportTypes),
		TopLocations: slices.Clone(analytics.TopLocations),
	}
}
