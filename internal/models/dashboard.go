package models

// StatCard - карточка ключевого показателя на обзорном экране
type StatCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
}

// ChannelStat - доля отчетов, поступивших по каналу
type ChannelStat struct {
	Channel    string `json:"channel"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// Overview - данные обзорного экрана
type Overview struct {
	Stats         []StatCard    `json:"stats"`
	Channels      []ChannelStat `json:"channels"`
	RecentReports []Report      `json:"recent_reports"`
}

// MonthlyTrend - число отчетов и решенных отчетов за месяц
type MonthlyTrend struct {
	Month    string `json:"month"`
	Reports  int    `json:"reports"`
	Resolved int    `json:"resolved"`
}

// TypeShare - доля типа инцидентов
type TypeShare struct {
	Type       string  `json:"type"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// LocationTrend - штат с наибольшим числом отчетов
type LocationTrend struct {
	State   string `json:"state"`
	Reports int    `json:"reports"`
	Trend   string `json:"trend"`
}

// Analytics - данные экрана аналитики
type Analytics struct {
	ReportsTrend []MonthlyTrend  `json:"reports_trend"`
	ReportTypes  []TypeShare     `json:"report_types"`
	TopLocations []LocationTrend `json:"top_locations"`
}

// WeatherAlert - карточка погодного предупреждения
type WeatherAlert struct {
	Kind    string `json:"kind"`
	Reading string `json:"reading"`
	State   string `json:"state"`
}
