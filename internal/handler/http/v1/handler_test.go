package v1

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/climate_dashboard/internal/config"
	"github.com/shenikar/climate_dashboard/internal/fixtures"
	"github.com/shenikar/climate_dashboard/internal/models"
	"github.com/shenikar/climate_dashboard/internal/query"
	"github.com/shenikar/climate_dashboard/internal/service"
	"github.com/shenikar/climate_dashboard/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Момент "сейчас" для тестов: через две минуты после метки наводнения
var testNow = time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)

type testDeps struct {
	dashboard *mocks.MockDashboardService
	messages  *mocks.MockMessageService
	router    *gin.Engine
}

// newTestHandler создает Handler с мокированными сервисами и фиксированными часами
func newTestHandler(t *testing.T) testDeps {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		dashboard: mocks.NewMockDashboardService(ctrl),
		messages:  mocks.NewMockMessageService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DefaultPageSize: 10,
		MaxPageSize:     100,
	}

	handler := NewHandler(deps.dashboard, deps.messages, logger, cfg, clockwork.NewFakeClockAt(testNow))

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	deps.router = gin.New()
	api := deps.router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return deps
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func reportPage(items []models.Report, page, size, total int) *service.ReportPage {
	return &service.ReportPage{
		PageResult: query.PageResult[models.Report]{
			Items:        items,
			TotalMatched: total,
			TotalPages:   (total + size - 1) / size,
			Page:         page,
			PageSize:     size,
		},
		Summary: models.SummarizeReports(items),
	}
}

func TestListReports_Success(t *testing.T) {
	deps := newTestHandler(t)
	reports := fixtures.Reports()

	expectedQuery := service.ListQuery{
		Criteria: query.Criteria{
			Filters: map[string]string{"severity": "High", "status": "All"},
			Search:  "state",
		},
		Page: query.PageRequest{Number: 2, Size: 2},
	}
	deps.dashboard.EXPECT().
		ListReports(gomock.Any(), expectedQuery).
		Return(reportPage(reports[2:4], 2, 2, 5), nil).
		Times(1)

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/reports?search=state&severity=High&status=All&page=2&pageSize=2", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "RPT-2024-003", resp.Items[0].ID)
	assert.Equal(t, 5, resp.TotalMatched)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 3, resp.ShowingFrom)
	assert.Equal(t, 4, resp.ShowingTo)
	assert.Equal(t, 2, resp.Summary.Total)
}

func TestListReports_EmptyPageShowsZeroRange(t *testing.T) {
	deps := newTestHandler(t)

	deps.dashboard.EXPECT().
		ListReports(gomock.Any(), gomock.Any()).
		Return(reportPage([]models.Report{}, 9, 10, 5), nil).
		Times(1)

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/reports?page=9", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
	assert.NotNil(t, resp.Items)
	assert.Equal(t, 0, resp.ShowingFrom)
	assert.Equal(t, 0, resp.ShowingTo)
	assert.Contains(t, w.Body.String(), `"items":[]`)
}

func TestListReports_InvalidPage(t *testing.T) {
	deps := newTestHandler(t)

	deps.dashboard.EXPECT().ListReports(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/reports?page=two", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListReports_PageBounds(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		errorTag string
	}{
		{"negative page", "page=-1", "'Page' failed on the 'min' tag"},
		{"huge page", "page=4611686018427387905&pageSize=2", "'Page' failed on the 'max' tag"},
		{"negative page size", "pageSize=-5", "'PageSize' failed on the 'min' tag"},
		{"huge page size", "pageSize=9223372036854775807", "'PageSize' failed on the 'max' tag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestHandler(t)

			deps.dashboard.EXPECT().ListReports(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

			w := makeRequest(deps.router, http.MethodGet, "/api/v1/reports?"+tt.query, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.errorTag)
		})
	}
}

func TestListReports_SearchTooLong(t *testing.T) {
	deps := newTestHandler(t)

	deps.dashboard.EXPECT().ListReports(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/reports?search="+strings.Repeat("a", 201), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Search' failed on the 'max' tag")
}

func TestListReports_ServiceError(t *testing.T) {
	deps := newTestHandler(t)

	deps.dashboard.EXPECT().ListReports(gomock.Any(), gomock.Any()).Return(nil, errors.New("catalog down")).Times(1)

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/reports", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestReportFilters(t *testing.T) {
	deps := newTestHandler(t)

	deps.dashboard.EXPECT().ReportFilterOptions().Return(models.ReportSchema.Options).Times(1)

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/reports/filters", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"All", "Pending", "Escalated", "Resolved"}, resp["status"])
}

func TestGetReport_Success(t *testing.T) {
	deps := newTestHandler(t)
	report := fixtures.Reports()[1]

	deps.dashboard.EXPECT().GetReport(gomock.Any(), report.ID).Return(&report, nil).Times(1)

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/reports/"+report.ID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, report.Title, resp.Title)
}

func TestGetReport_NotFound(t *testing.T) {
	deps := newTestHandler(t)
	serviceError := fmt.Errorf("service: report RPT-0: %w", service.ErrReportNotFound)

	deps.dashboard.EXPECT().GetReport(gomock.Any(), "RPT-0").Return(nil, serviceError).Times(1)

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/reports/RPT-0", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "report not found")
}

func TestGetReport_ServiceError(t *testing.T) {
	deps := newTestHandler(t)

	deps.dashboard.EXPECT().GetReport(gomock.Any(), "RPT-1").Return(nil, errors.New("db error")).Times(1)

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/reports/RPT-1", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestExportReports_WritesCSV(t *testing.T) {
	deps := newTestHandler(t)
	reports := fixtures.Reports()

	deps.dashboard.EXPECT().
		ExportReports(gomock.Any(), query.Criteria{Filters: map[string]string{"channel": "Voice"}}).
		Return([]models.Report{reports[0], reports[3]}, nil).
		Times(1)

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/reports/export?channel=Voice", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "reports.csv")

	records, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, reportCSVHeader, records[0])
	assert.Equal(t, "RPT-2024-001", records[1][0])
	assert.Equal(t, "2024-01-15T09:23:45Z", records[1][9])
	assert.Equal(t, "6.4281", records[1][11])
	assert.Equal(t, "RPT-2024-004", records[2][0])
}

func TestListUsers_Success(t *testing.T) {
	deps := newTestHandler(t)
	users := fixtures.Users()

	deps.dashboard.EXPECT().
		ListUsers(gomock.Any(), service.ListQuery{
			Criteria: query.Criteria{Filters: map[string]string{"role": "Researcher"}},
		}).
		Return(&query.PageResult[models.User]{Items: users[4:], TotalMatched: 1, TotalPages: 1, Page: 1, PageSize: 10}, nil).
		Times(1)

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/users?role=Researcher", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp UserListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Dr. Aisha Bello", resp.Items[0].Name)
	assert.Equal(t, []string{"analytics_access", "research_tools", "data_export"}, resp.Items[0].Permissions)
	assert.Equal(t, 1, resp.ShowingFrom)
	assert.Equal(t, 1, resp.ShowingTo)
}

func TestUserFilters(t *testing.T) {
	deps := newTestHandler(t)

	deps.dashboard.EXPECT().UserFilterOptions().Return(models.UserSchema.Options).Times(1)

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/users/filters", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"All", "active", "inactive", "pending"}, resp["status"])
}

func TestRoleDistribution_Success(t *testing.T) {
	deps := newTestHandler(t)

	deps.dashboard.EXPECT().RoleDistribution(gomock.Any()).Return([]models.RoleCount{{Name: "Administrator", Count: 1}}, nil).Times(1)

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/users/roles", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"name":"Administrator","count":1}]`, w.Body.String())
}

func TestListMapPins_FilterLabelOverridesType(t *testing.T) {
	deps := newTestHandler(t)
	pins := fixtures.MapPins()

	deps.dashboard.EXPECT().
		ListMapPins(gomock.Any(), service.ListQuery{
			Criteria: query.Criteria{Filters: map[string]string{"type": "Floods"}},
		}).
		Return(&query.PageResult[models.MapPin]{Items: pins[:1], TotalMatched: 1, TotalPages: 1, Page: 1, PageSize: 10}, nil).
		Times(1)

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/map/pins?type=storm&filter=Floods", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp MapPinListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Severe Flooding", resp.Items[0].Title)
	assert.Equal(t, "2 mins ago", resp.Items[0].Age)
}

func TestMapFilters_Success(t *testing.T) {
	deps := newTestHandler(t)

	deps.dashboard.EXPECT().MapFilters(gomock.Any()).Return(models.CountMapFilters(fixtures.MapPins()), nil).Times(1)

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/map/filters", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.MapFilter
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 5)
	assert.Equal(t, 3, resp[0].Count)
}

func TestOverview_Success(t *testing.T) {
	deps := newTestHandler(t)

	reports := fixtures.Reports()
	overview := &models.Overview{
		Stats: fixtures.StatCards(),
		Channels: []models.ChannelStat{
			{Channel: models.ChannelVoice, Count: 2, Percentage: 40},
			{Channel: models.ChannelSMS, Count: 2, Percentage: 40},
			{Channel: models.ChannelUSSD, Count: 1, Percentage: 20},
		},
		RecentReports: reports,
	}
	deps.dashboard.EXPECT().Overview(gomock.Any()).Return(overview, nil).Times(1)

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/overview", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.Overview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, fixtures.StatCards(), resp.Stats)
	assert.Equal(t, overview.Channels, resp.Channels)
	require.Len(t, resp.RecentReports, 5)
	assert.Equal(t, reports[0].ID, resp.RecentReports[0].ID)
	assert.True(t, reports[0].Timestamp.Equal(resp.RecentReports[0].Timestamp))
}

func TestOverview_ServiceError(t *testing.T) {
	deps := newTestHandler(t)

	deps.dashboard.EXPECT().Overview(gomock.Any()).Return(nil, errors.New("catalog down")).Times(1)

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/overview", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAnalyticsAndWeather(t *testing.T) {
	deps := newTestHandler(t)

	deps.dashboard.EXPECT().Analytics(gomock.Any()).Return(fixtures.Analytics()).Times(1)
	deps.dashboard.EXPECT().WeatherAlerts(gomock.Any()).Return(fixtures.WeatherAlerts()).Times(1)

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/analytics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var analytics models.Analytics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analytics))
	assert.Len(t, analytics.ReportsTrend, 6)

	w = makeRequest(deps.router, http.MethodGet, "/api/v1/weather/alerts", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var alerts []models.WeatherAlert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alerts))
	assert.Len(t, alerts, 4)
}

func TestSendMessage_Success(t *testing.T) {
	deps := newTestHandler(t)
	reqBody := SendMessageRequest{
		TemplateID:     1,
		Channels:       []string{"SMS", "Voice"},
		TargetLocation: "Lagos State",
		Recipients:     1200,
	}
	sent := &models.Message{
		ID:             uuid.New(),
		Template:       "Flood Warning",
		Content:        "URGENT: Flood warning issued for your area.",
		Recipients:     1200,
		Channels:       reqBody.Channels,
		Status:         models.MessageStatusSending,
		Timestamp:      testNow,
		TargetLocation: "Lagos State",
	}

	deps.messages.EXPECT().
		SendMessage(gomock.Any(), service.SendMessageInput{
			TemplateID:     1,
			Channels:       []string{"SMS", "Voice"},
			TargetLocation: "Lagos State",
			Recipients:     1200,
		}).
		Return(sent, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(deps.router, http.MethodPost, "/api/v1/messages", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusAccepted, w.Code)
	var resp MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, sent.ID, resp.ID)
	assert.Equal(t, models.MessageStatusSending, resp.Status)
}

func TestSendMessage_InvalidJSON(t *testing.T) {
	deps := newTestHandler(t)

	deps.messages.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(deps.router, http.MethodPost, "/api/v1/messages", bytes.NewBufferString(`{"channels": [`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestSendMessage_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     SendMessageRequest
		expected string
	}{
		{
			name:     "unknown channel",
			body:     SendMessageRequest{Content: "Alert", Channels: []string{"Email"}, TargetLocation: "Lagos State"},
			expected: "failed on the 'oneof' tag",
		},
		{
			name:     "no channels",
			body:     SendMessageRequest{Content: "Alert", TargetLocation: "Lagos State"},
			expected: "Error:Field validation for 'Channels' failed on the 'required' tag",
		},
		{
			name:     "neither template nor content",
			body:     SendMessageRequest{Channels: []string{"SMS"}, TargetLocation: "Lagos State"},
			expected: "Error:Field validation for 'Content' failed on the 'required_without' tag",
		},
		{
			name:     "missing location",
			body:     SendMessageRequest{Content: "Alert", Channels: []string{"SMS"}},
			expected: "Error:Field validation for 'TargetLocation' failed on the 'required' tag",
		},
		{
			name:     "negative recipients",
			body:     SendMessageRequest{Content: "Alert", Channels: []string{"SMS"}, TargetLocation: "Lagos State", Recipients: -1},
			expected: "Error:Field validation for 'Recipients' failed on the 'min' tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestHandler(t)
			deps.messages.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Times(0)

			bodyBytes, _ := json.Marshal(tt.body)
			w := makeRequest(deps.router, http.MethodPost, "/api/v1/messages", bytes.NewBuffer(bodyBytes))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.expected)
		})
	}
}

func TestSendMessage_TemplateNotFound(t *testing.T) {
	deps := newTestHandler(t)
	serviceError := fmt.Errorf("service: template 9: %w", service.ErrTemplateNotFound)

	deps.messages.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(nil, serviceError).Times(1)

	bodyBytes, _ := json.Marshal(SendMessageRequest{TemplateID: 9, Channels: []string{"USSD"}, TargetLocation: "Kano State"})
	w := makeRequest(deps.router, http.MethodPost, "/api/v1/messages", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "message template not found")
}

func TestSendMessage_QueueError(t *testing.T) {
	deps := newTestHandler(t)

	deps.messages.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(nil, errors.New("service: could not queue message")).Times(1)

	bodyBytes, _ := json.Marshal(SendMessageRequest{Content: "Alert", Channels: []string{"SMS"}, TargetLocation: "Kano State"})
	w := makeRequest(deps.router, http.MethodPost, "/api/v1/messages", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRecentMessagesAndTemplates(t *testing.T) {
	deps := newTestHandler(t)

	deps.messages.EXPECT().RecentMessages(gomock.Any()).Return(fixtures.RecentMessages()).Times(1)
	deps.messages.EXPECT().Templates(gomock.Any()).Return(fixtures.MessageTemplates(), nil).Times(1)

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/messages", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var messages []MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	require.Len(t, messages, 3)
	assert.Equal(t, "Flood Warning", messages[0].Template)

	w = makeRequest(deps.router, http.MethodGet, "/api/v1/messages/templates", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var templates []models.MessageTemplate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &templates))
	assert.Len(t, templates, 4)
}

func TestHealthCheck_Success(t *testing.T) {
	deps := newTestHandler(t)

	w := makeRequest(deps.router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		age  time.Duration
		want string
	}{
		{30 * time.Second, "just now"},
		{time.Minute, "1 min ago"},
		{15 * time.Minute, "15 mins ago"},
		{time.Hour, "1 hour ago"},
		{5 * time.Hour, "5 hours ago"},
		{72 * time.Hour, "3 days ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAge(tt.age))
	}
}
