package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeReports(t *testing.T) {
	reports := []Report{
		{ID: "1", Status: ReportStatusPending, Severity: SeverityHigh},
		{ID: "2", Status: ReportStatusResolved, Severity: SeverityLow},
		{ID: "3", Status: ReportStatusEscalated, Severity: SeverityHigh},
		{ID: "4", Status: ReportStatusPending, Severity: SeverityMedium},
	}

	summary := SummarizeReports(reports)

	assert.Equal(t, ReportSummary{Total: 4, Pending: 2, HighSeverity: 2, Resolved: 1}, summary)
}

func TestSummarizeReports_Empty(t *testing.T) {
	assert.Equal(t, ReportSummary{}, SummarizeReports(nil))
}

func TestCountRoles_FirstAppearanceOrder(t *testing.T) {
	users := []User{
		{Role: "Researcher"},
		{Role: "Administrator"},
		{Role: "Researcher"},
		{Role: "Data Analyst"},
	}

	counts := CountRoles(users)

	assert.Equal(t, []RoleCount{
		{Name: "Researcher", Count: 2},
		{Name: "Administrator", Count: 1},
		{Name: "Data Analyst", Count: 1},
	}, counts)
}

func TestCountRoles_EmptyIsNotNil(t *testing.T) {
	counts := CountRoles(nil)

	assert.NotNil(t, counts)
	assert.Empty(t, counts)
}

func TestPinTypeForFilter(t *testing.T) {
	tests := []struct {
		label    string
		expected string
	}{
		{"All Reports", "All"},
		{"all reports", "All"},
		{"All", "All"},
		{"", "All"},
		{"Floods", PinTypeFlood},
		{"heat waves", PinTypeHeatwave},
		{"storm", "storm"},
		{"Tornado", "Tornado"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.expected, PinTypeForFilter(tt.label))
		})
	}
}

func TestCountMapFilters(t *testing.T) {
	pins := []MapPin{
		{Type: PinTypeFlood},
		{Type: PinTypeFlood},
		{Type: PinTypeStorm},
		{Type: "wildfire"},
	}

	filters := CountMapFilters(pins)

	counts := make(map[string]int, len(filters))
	for _, f := range filters {
		counts[f.Label] = f.Count
	}
	assert.Equal(t, map[string]int{
		AllReportsLabel: 4,
		"Floods":        2,
		"Droughts":      0,
		"Storms":        1,
		"Heat Waves":    0,
	}, counts)
	// Исходный список фильтров не меняется
	assert.Zero(t, MapFilters[1].Count)
}
