package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/shenikar/climate_dashboard/internal/config"
	"github.com/shenikar/climate_dashboard/internal/fixtures"
	"github.com/shenikar/climate_dashboard/internal/models"
	"github.com/shenikar/climate_dashboard/internal/observability"
	"github.com/shenikar/climate_dashboard/internal/query"
	"github.com/sirupsen/logrus"
)

// ErrReportNotFound возвращается, когда отчета с таким ID нет в каталоге
var ErrReportNotFound = errors.New("report not found")

const recentReportsLimit = 5

// Catalog определяет контракт неизменяемого источника записей дашборда
type Catalog interface {
	Reports(ctx context.Context) ([]models.Report, error)
	Users(ctx context.Context) ([]models.User, error)
	MapPins(ctx context.Context) ([]models.MapPin, error)
	MessageTemplates(ctx context.Context) ([]models.MessageTemplate, error)
}

// PageCache определяет контракт кэша готовых страниц
type PageCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// ListQuery - фильтры и окно страницы, пришедшие от экрана
type ListQuery struct {
	Criteria query.Criteria   `json:"criteria"`
	Page     query.PageRequest `json:"page"`
}

// ReportPage - страница отчетов вместе с быстрой статистикой по всем совпавшим отчетам
type ReportPage struct {
	query.PageResult[models.Report]
	Summary models.ReportSummary `json:"summary"`
}

// DashboardService определяет контракт для чтения данных экранов дашборда
type DashboardService interface {
	ListReports(ctx context.Context, q ListQuery) (*ReportPage, error)
	GetReport(ctx context.Context, id string) (*models.Report, error)
	ExportReports(ctx context.Context, criteria query.Criteria) ([]models.Report, error)
	ReportFilterOptions() map[string][]string
	ListUsers(ctx context.Context, q ListQuery) (*query.PageResult[models.User], error)
	UserFilterOptions() map[string][]string
	RoleDistribution(ctx context.Context) ([]models.RoleCount, error)
	ListMapPins(ctx context.Context, q ListQuery) (*query.PageResult[models.MapPin], error)
	MapFilters(ctx context.Context) ([]models.MapFilter, error)
	Overview(ctx context.Context) (*models.Overview, error)
	Analytics(ctx context.Context) models.Analytics
	WeatherAlerts(ctx context.Context) []models.WeatherAlert
}

type dashboardService struct {
	catalog Catalog
	cache   PageCache
	logger  *logrus.Logger
	cfg     *config.Config
	metrics *observability.Metrics
}

// NewDashboardService создает сервис дашборда. cache может быть nil - тогда страницы не кэшируются
func NewDashboardService(catalog Catalog, cache PageCache, logger *logrus.Logger, cfg *config.Config, metrics *observability.Metrics) DashboardService {
	return &dashboardService{
		catalog: catalog,
		cache:   cache,
		logger:  logger,
		cfg:     cfg,
		metrics: metrics,
	}
}

// ListReports возвращает страницу отчетов с учетом фильтров и поиска
func (s *dashboardService) ListReports(ctx context.Context, q ListQuery) (*ReportPage, error) {
	q.Page = s.normalizePage(q.Page)
	log := s.logger.WithFields(logrus.Fields{
		"service":   "dashboard",
		"method":    "ListReports",
		"page":      q.Page.Number,
		"page_size": q.Page.Size,
	})

	key := cacheKey("reports", q)
	var page ReportPage
	if s.cacheGet(ctx, log, key, &page) {
		return &page, nil
	}

	reports, err := s.catalog.Reports(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load reports from catalog")
		return nil, fmt.Errorf("service: could not load reports: %w", err)
	}

	start := time.Now()
	matched := query.Filter(reports, q.Criteria, models.ReportSchema)
	page = ReportPage{
		PageResult: query.Paginate(matched, q.Page),
		Summary:    models.SummarizeReports(matched),
	}
	s.observe("reports", start, page.TotalMatched)

	s.cacheSet(ctx, log, key, page)
	log.WithField("matched", page.TotalMatched).Debug("Reports listed")
	return &page, nil
}

// GetReport возвращает отчет по идентификатору
func (s *dashboardService) GetReport(ctx context.Context, id string) (*models.Report, error) {
	reports, err := s.catalog.Reports(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("report_id", id).Error("Failed to load reports from catalog")
		return nil, fmt.Errorf("service: could not load reports: %w", err)
	}
	i := slices.IndexFunc(reports, func(r models.Report) bool { return r.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("service: report %s: %w", id, ErrReportNotFound)
	}
	return &reports[i], nil
}

// ExportReports возвращает все отчеты, подходящие под фильтры, без пагинации
func (s *dashboardService) ExportReports(ctx context.Context, criteria query.Criteria) ([]models.Report, error) {
	reports, err := s.catalog.Reports(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ExportReports").Error("Failed to load reports from catalog")
		return nil, fmt.Errorf("service: could not load reports: %w", err)
	}
	start := time.Now()
	matched := query.Filter(reports, criteria, models.ReportSchema)
	s.observe("reports", start, len(matched))
	return matched, nil
}

func (s *dashboardService) ReportFilterOptions() map[string][]string {
	return cloneOptions(models.ReportSchema.Options)
}

// ListUsers возвращает страницу пользователей
func (s *dashboardService) ListUsers(ctx context.Context, q ListQuery) (*query.PageResult[models.User], error) {
	q.Page = s.normalizePage(q.Page)
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "ListUsers",
	})

	key := cacheKey("users", q)
	var page query.PageResult[models.User]
	if s.cacheGet(ctx, log, key, &page) {
		return &page, nil
	}

	users, err := s.catalog.Users(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load users from catalog")
		return nil, fmt.Errorf("service: could not load users: %w", err)
	}

	start := time.Now()
	page = query.Run(users, q.Criteria, q.Page, models.UserSchema)
	s.observe("users", start, page.TotalMatched)

	s.cacheSet(ctx, log, key, page)
	return &page, nil
}

func (s *dashboardService) UserFilterOptions() map[string][]string {
	return cloneOptions(models.UserSchema.Options)
}

// RoleDistribution считает пользователей по ролям
func (s *dashboardService) RoleDistribution(ctx context.Context) ([]models.RoleCount, error) {
	users, err := s.catalog.Users(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "RoleDistribution").Error("Failed to load users from catalog")
		return nil, fmt.Errorf("service: could not load users: %w", err)
	}
	return models.CountRoles(users), nil
}

// ListMapPins возвращает страницу меток карты.
// Фильтр "type" принимает как подписи боковой панели ("Floods"), так и сырые типы ("flood")
func (s *dashboardService) ListMapPins(ctx context.Context, q ListQuery) (*query.PageResult[models.MapPin], error) {
	q.Page = s.normalizePage(q.Page)
	q.Criteria = resolvePinFilter(q.Criteria)
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "ListMapPins",
	})

	key := cacheKey("pins", q)
	var page query.PageResult[models.MapPin]
	if s.cacheGet(ctx, log, key, &page) {
		return &page, nil
	}

	pins, err := s.catalog.MapPins(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load map pins from catalog")
		return nil, fmt.Errorf("service: could not load map pins: %w", err)
	}

	start := time.Now()
	page = query.Run(pins, q.Criteria, q.Page, models.MapPinSchema)
	s.observe("pins", start, page.TotalMatched)

	s.cacheSet(ctx, log, key, page)
	return &page, nil
}

// MapFilters возвращает фильтры карты с числом меток
func (s *dashboardService) MapFilters(ctx context.Context) ([]models.MapFilter, error) {
	pins, err := s.catalog.MapPins(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "MapFilters").Error("Failed to load map pins from catalog")
		return nil, fmt.Errorf("service: could not load map pins: %w", err)
	}
	return models.CountMapFilters(pins), nil
}

// Overview собирает данные обзорного экрана
func (s *dashboardService) Overview(ctx context.Context) (*models.Overview, error) {
	reports, err := s.catalog.Reports(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "Overview").Error("Failed to load reports from catalog")
		return nil, fmt.Errorf("service: could not load reports: %w", err)
	}

	recent := slices.Clone(reports)
	slices.SortStableFunc(recent, func(a, b models.Report) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if len(recent) > recentReportsLimit {
		recent = recent[:recentReportsLimit]
	}

	return &models.Overview{
		Stats:         fixtures.StatCards(),
		Channels:      channelStats(reports),
		RecentReports: recent,
	}, nil
}

func (s *dashboardService) Analytics(_ context.Context) models.Analytics {
	return fixtures.Analytics()
}

func (s *dashboardService) WeatherAlerts(_ context.Context) []models.WeatherAlert {
	return fixtures.WeatherAlerts()
}

// normalizePage подставляет размер страницы по умолчанию и ограничивает максимальный
func (s *dashboardService) normalizePage(page query.PageRequest) query.PageRequest {
	if page.Size < 1 {
		page.Size = s.cfg.DefaultPageSize
	}
	if page.Size > s.cfg.MaxPageSize {
		page.Size = s.cfg.MaxPageSize
	}
	return page.Normalize()
}

func (s *dashboardService) observe(kind string, start time.Time, matched int) {
	if s.metrics == nil {
		return
	}
	s.metrics.Queries.WithLabelValues(kind).Inc()
	s.metrics.QueryDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	s.metrics.QueryMatched.WithLabelValues(kind).Observe(float64(matched))
}

func (s *dashboardService) cacheGet(ctx context.Context, log *logrus.Entry, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.Get(ctx, key, dst)
	switch {
	case err != nil:
		log.WithError(err).Warn("Failed to read page from cache")
		s.countCache("error")
		return false
	case found:
		s.countCache("hit")
		return true
	default:
		s.countCache("miss")
		return false
	}
}

func (s *dashboardService) cacheSet(ctx context.Context, log *logrus.Entry, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		log.WithError(err).Warn("Failed to write page to cache")
	}
}

func (s *dashboardService) countCache(result string) {
	if s.metrics != nil {
		s.metrics.PageCache.WithLabelValues(result).Inc()
	}
}

// cacheKey строит ключ кэша из вида записей и нормализованного запроса.
// json.Marshal сортирует ключи map, поэтому ключ детерминирован
func cacheKey(kind string, q ListQuery) string {
	raw, _ := json.Marshal(q)
	sum := sha256.Sum256(raw)
	return "page:" + kind + ":" + hex.EncodeToString(sum[:])
}

func resolvePinFilter(criteria query.Criteria) query.Criteria {
	filters := make(map[string]string, len(criteria.Filters))
	for dimension, value := range criteria.Filters {
		if strings.EqualFold(dimension, "type") {
			value = models.PinTypeForFilter(value)
		}
		filters[dimension] = value
	}
	criteria.Filters = filters
	return criteria
}

// channelStats считает долю отчетов по каналам в процентах (с округлением)
func channelStats(reports []models.Report) []models.ChannelStat {
	stats := []models.ChannelStat{
		{Channel: models.ChannelVoice},
		{Channel: models.ChannelSMS},
		{Channel: models.ChannelUSSD},
	}
	for _, r := range reports {
		for i := range stats {
			if stats[i].Channel == r.Channel {
				stats[i].Count++
			}
		}
	}
	if len(reports) == 0 {
		return stats
	}
	for i := range stats {
		stats[i].Percentage = int(math.Round(float64(stats[i].Count) * 100 / float64(len(reports))))
	}
	return stats
}

func cloneOptions(options map[string][]string) map[string][]string {
	out := make(map[string][]string, len(options))
	for dimension, values := range options {
		out[dimension] = slices.Clone(values)
	}
	return out
}
