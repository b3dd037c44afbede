package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Экран отчетов
	reports := api.Group("/reports")
	{
		reports.GET("", h.listReports)
		reports.GET("/filters", h.reportFilters)
		reports.GET("/export", h.exportReports)
		reports.GET("/:id", h.getReport)
	}

	// Управление пользователями
	users := api.Group("/users")
	{
		users.GET("", h.listUsers)
		users.GET("/filters", h.userFilters)
		users.GET("/roles", h.roleDistribution)
	}

	// Карта инцидентов
	incidentMap := api.Group("/map")
	{
		incidentMap.GET("/pins", h.listMapPins)
		incidentMap.GET("/filters", h.mapFilters)
	}

	// Центр сообщений
	messages := api.Group("/messages")
	{
		messages.GET("", h.recentMessages)
		messages.POST("", h.sendMessage)
		messages.GET("/templates", h.messageTemplates)
	}

	api.GET("/overview", h.overview)
	api.GET("/analytics", h.analytics)
	api.GET("/weather/alerts", h.weatherAlerts)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
