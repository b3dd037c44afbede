package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/climate_dashboard/internal/config"
	"github.com/shenikar/climate_dashboard/internal/models"
	"github.com/shenikar/climate_dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	dashboardService service.DashboardService
	messageService   service.MessageService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
	clock            clockwork.Clock
}

func NewHandler(dashboardService service.DashboardService, messageService service.MessageService, logger *logrus.Logger, cfg *config.Config, clock clockwork.Clock) *Handler {
	return &Handler{
		dashboardService: dashboardService,
		messageService:   messageService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
		clock:            clock,
	}
}

// @Summary Get a page of reports
// @Description Filter, search and paginate climate incident reports. Summary counts cover every matched report.
// @Tags Reports
// @Accept json
// @Produce json
// @Param search query string false "Case-insensitive search over title, location and ID"
// @Param status query string false "Status filter" Enums(All, Pending, Escalated, Resolved)
// @Param severity query string false "Severity filter" Enums(All, High, Medium, Low)
// @Param channel query string false "Channel filter" Enums(All, Voice, SMS, USSD)
// @Param type query string false "Report type filter"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} ReportListResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")

	q, err := h.bindListQuery(c, models.ReportSchema.DimensionNames())
	if err != nil {
		log.WithError(err).Warn("Invalid list query")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.dashboardService.ListReports(c.Request.Context(), q)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ReportPageToResponse(page))
}

// @Summary Get report filter options
// @Description Get the selectable values of every report filter. "All" is always first.
// @Tags Reports
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /reports/filters [get]
func (h *Handler) reportFilters(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.ReportFilterOptions())
}

// @Summary Get report by ID
// @Description Get a single report by its ID
// @Tags Reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getReport").WithField("id", id)

	report, err := h.dashboardService.GetReport(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		log.WithError(err).Error("Failed to get report from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(*report))
}

// @Summary Get a page of users
// @Description Filter, search and paginate system users
// @Tags Users
// @Produce json
// @Param search query string false "Case-insensitive search over name, email and state"
// @Param role query string false "Role filter"
// @Param status query string false "Status filter" Enums(All, active, inactive)
// @Param department query string false "Department filter"
// @Param state query string false "State filter"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} UserListResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	log := h.logger.WithField("method", "listUsers")

	q, err := h.bindListQuery(c, models.UserSchema.DimensionNames())
	if err != nil {
		log.WithError(err).Warn("Invalid list query")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.dashboardService.ListUsers(c.Request.Context(), q)
	if err != nil {
		log.WithError(err).Error("Failed to list users from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, UserPageToResponse(page))
}

// @Summary Get user filter options
// @Tags Users
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /users/filters [get]
func (h *Handler) userFilters(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.UserFilterOptions())
}

// @Summary Get role distribution
// @Description Count users per role, in order of first appearance
// @Tags Users
// @Produce json
// @Success 200 {array} models.RoleCount
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/roles [get]
func (h *Handler) roleDistribution(c *gin.Context) {
	roles, err := h.dashboardService.RoleDistribution(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).WithField("method", "roleDistribution").Error("Failed to get role distribution from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, roles)
}

// @Summary Get a page of map pins
// @Description Filter map pins by sidebar label ("Floods") or raw type ("flood")
// @Tags Map
// @Produce json
// @Param filter query string false "Sidebar filter label" Enums(All Reports, Floods, Droughts, Storms, Heat Waves)
// @Param type query string false "Raw pin type"
// @Param severity query string false "Severity filter"
// @Param search query string false "Case-insensitive search over title and location"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} MapPinListResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /map/pins [get]
func (h *Handler) listMapPins(c *gin.Context) {
	log := h.logger.WithField("method", "listMapPins")

	q, err := h.bindListQuery(c, models.MapPinSchema.DimensionNames())
	if err != nil {
		log.WithError(err).Warn("Invalid list query")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Подпись боковой панели имеет приоритет над сырым типом
	if label := c.Query("filter"); label != "" {
		q.Criteria.Filters["type"] = label
	}

	page, err := h.dashboardService.ListMapPins(c.Request.Context(), q)
	if err != nil {
		log.WithError(err).Error("Failed to list map pins from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, MapPinPageToResponse(page, h.clock.Now()))
}

// @Summary Get map filters
// @Description Get sidebar filter labels with pin counts
// @Tags Map
// @Produce json
// @Success 200 {array} models.MapFilter
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /map/filters [get]
func (h *Handler) mapFilters(c *gin.Context) {
	filters, err := h.dashboardService.MapFilters(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).WithField("method", "mapFilters").Error("Failed to get map filters from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, filters)
}

// @Summary Get dashboard overview
// @Description Stat cards, report channel shares and the most recent reports
// @Tags Overview
// @Produce json
// @Success 200 {object} models.Overview
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /overview [get]
func (h *Handler) overview(c *gin.Context) {
	overview, err := h.dashboardService.Overview(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).WithField("method", "overview").Error("Failed to get overview from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, overview)
}

// @Summary Get analytics
// @Tags Overview
// @Produce json
// @Success 200 {object} models.Analytics
// @Router /analytics [get]
func (h *Handler) analytics(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.Analytics(c.Request.Context()))
}

// @Summary Get weather alerts
// @Tags Overview
// @Produce json
// @Success 200 {array} models.WeatherAlert
// @Router /weather/alerts [get]
func (h *Handler) weatherAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.WeatherAlerts(c.Request.Context()))
}

// @Summary Get message templates
// @Tags Messages
// @Produce json
// @Success 200 {array} models.MessageTemplate
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /messages/templates [get]
func (h *Handler) messageTemplates(c *gin.Context) {
	templates, err := h.messageService.Templates(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).WithField("method", "messageTemplates").Error("Failed to get templates from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, templates)
}

// @Summary Get recent messages
// @Description Get sent alert messages, most recent first
// @Tags Messages
// @Produce json
// @Success 200 {array} MessageResponse
// @Router /messages [get]
func (h *Handler) recentMessages(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsToMessageResponses(h.messageService.RecentMessages(c.Request.Context())))
}

// @Summary Send an alert message
// @Description Queue an alert for delivery over SMS, Voice and USSD. Content falls back to the template content.
// @Tags Messages
// @Accept json
// @Produce json
// @Param message body SendMessageRequest true "Alert message"
// @Success 202 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Template not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /messages [post]
func (h *Handler) sendMessage(c *gin.Context) {
	var input SendMessageRequest
	log := h.logger.WithField("method", "sendMessage")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messageService.SendMessage(c.Request.Context(), DTOToSendMessageInput(input))
	switch {
	case errors.Is(err, service.ErrTemplateNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "message template not found"})
		return
	case errors.Is(err, service.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.WithError(err).Error("Failed to send message in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusAccepted, ModelToMessageResponse(*message))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
