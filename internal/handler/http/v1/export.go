package v1

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/climate_dashboard/internal/models"
)

var reportCSVHeader = []string{
	"id", "title", "location", "reporter", "phone", "type", "severity",
	"status", "channel", "timestamp", "description", "latitude", "longitude",
}

// @Summary Export reports as CSV
// @Description Export every report matching the filters, without pagination
// @Tags Reports
// @Produce text/csv
// @Param search query string false "Case-insensitive search over title, location and ID"
// @Param status query string false "Status filter"
// @Param severity query string false "Severity filter"
// @Param channel query string false "Channel filter"
// @Param type query string false "Report type filter"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/export [get]
func (h *Handler) exportReports(c *gin.Context) {
	log := h.logger.WithField("method", "exportReports")

	q, err := h.bindListQuery(c, models.ReportSchema.DimensionNames())
	if err != nil {
		log.WithError(err).Warn("Invalid list query")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reports, err := h.dashboardService.ExportReports(c.Request.Context(), q.Criteria)
	if err != nil {
		log.WithError(err).Error("Failed to export reports from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="reports.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(reportCSVHeader); err != nil {
		log.WithError(err).Error("Failed to write CSV header")
		return
	}
	for _, r := range reports {
		if err := w.Write(reportCSVRecord(r)); err != nil {
			log.WithError(err).Error("Failed to write CSV record")
			return
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.WithError(err).Error("Failed to flush CSV")
	}
}

func reportCSVRecord(r models.Report) []string {
	return []string{
		r.ID,
		r.Title,
		r.Location,
		r.Reporter,
		r.Phone,
		r.Type,
		r.Severity,
		r.Status,
		r.Channel,
		r.Timestamp.Format(time.RFC3339),
		r.Description,
		strconv.FormatFloat(r.Latitude, 'f', -1, 64),
		strconv.FormatFloat(r.Longitude, 'f', -1, 64),
	}
}
