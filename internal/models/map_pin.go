package models

import (
	"strings"
	"time"

	"github.com/shenikar/climate_dashboard/internal/query"
)

// Типы инцидентов на карте
const (
	PinTypeFlood    = "flood"
	PinTypeDrought  = "drought"
	PinTypeStorm    = "storm"
	PinTypeHeatwave = "heatwave"
)

// AllReportsLabel - подпись фильтра карты без ограничений
const AllReportsLabel = "All Reports"

// MapPin - метка инцидента на карте
type MapPin struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Location   string    `json:"location"`
	Severity   string    `json:"severity"`
	Type       string    `json:"type"`
	ReportedAt time.Time `json:"reported_at"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
}

var MapPinSchema = query.Schema[MapPin]{
	Dimensions: map[string]query.Accessor[MapPin]{
		"type":     func(p MapPin) string { return p.Type },
		"severity": func(p MapPin) string { return p.Severity },
	},
	Searchable: []query.Accessor[MapPin]{
		func(p MapPin) string { return p.Title },
		func(p MapPin) string { return p.Location },
	},
	Options: map[string][]string{
		"severity": {query.All, "High", "Medium", "Low"},
	},
}

// MapFilter - подпись фильтра карты и тип метки, который она выбирает
type MapFilter struct {
	Label string `json:"label"`
	Type  string `json:"type,omitempty"`
	Count int    `json:"count"`
}

// MapFilters - фильтры боковой панели карты в порядке отображения
var MapFilters = []MapFilter{
	{Label: AllReportsLabel},
	{Label: "Floods", Type: PinTypeFlood},
	{Label: "Droughts", Type: PinTypeDrought},
	{Label: "Storms", Type: PinTypeStorm},
	{Label: "Heat Waves", Type: PinTypeHeatwave},
}

// PinTypeForFilter переводит подпись фильтра карты в тип метки.
// Неизвестная подпись считается сырым типом и возвращается как есть.
func PinTypeForFilter(label string) string {
	if query.IsAll(label) || strings.EqualFold(label, AllReportsLabel) {
		return query.All
	}
	for _, f := range MapFilters {
		if strings.EqualFold(f.Label, label) {
			return f.Type
		}
	}
	return label
}

// CountMapFilters возвращает фильтры карты с посчитанным числом меток
func CountMapFilters(pins []MapPin) []MapFilter {
	byType := make(map[string]int)
	for _, p := range pins {
		byType[p.Type]++
	}
	out := make([]MapFilter, len(MapFilters))
	for i, f := range MapFilters {
		f.Count = byType[f.Type]
		if f.Type == "" {
			f.Count = len(pins)
		}
		out[i] = f
	}
	return out
}
