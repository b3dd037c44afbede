package v1

import (
	"fmt"
	"time"

	"github.com/shenikar/climate_dashboard/internal/models"
	"github.com/shenikar/climate_dashboard/internal/query"
	"github.com/shenikar/climate_dashboard/internal/service"
)

// ModelToReportResponse преобразует доменную модель отчета в DTO
func ModelToReportResponse(model models.Report) ReportResponse {
	return ReportResponse{
		ID:          model.ID,
		Title:       model.Title,
		Location:    model.Location,
		Reporter:    model.Reporter,
		Phone:       model.Phone,
		Type:        model.Type,
		Severity:    model.Severity,
		Status:      model.Status,
		Channel:     model.Channel,
		Timestamp:   model.Timestamp,
		Description: model.Description,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
	}
}

// ReportPageToResponse преобразует страницу отчетов в DTO
func ReportPageToResponse(page *service.ReportPage) ReportListResponse {
	items := make([]ReportResponse, len(page.Items))
	for i, report := range page.Items {
		items[i] = ModelToReportResponse(report)
	}
	from, to := page.ShowingRange()
	return ReportListResponse{
		Items:        items,
		TotalMatched: page.TotalMatched,
		TotalPages:   page.TotalPages,
		Page:         page.Page,
		PageSize:     page.PageSize,
		ShowingFrom:  from,
		ShowingTo:    to,
		Summary:      page.Summary,
	}
}

func ModelToUserResponse(model models.User) UserResponse {
	return UserResponse{
		ID:          model.ID,
		Name:        model.Name,
		Email:       model.Email,
		Phone:       model.Phone,
		Role:        model.Role,
		Department:  model.Department,
		State:       model.State,
		Status:      model.Status,
		LastLogin:   model.LastLogin,
		JoinDate:    model.JoinDate,
		Permissions: model.Permissions,
	}
}

func UserPageToResponse(page *query.PageResult[models.User]) UserListResponse {
	items := make([]UserResponse, len(page.Items))
	for i, user := range page.Items {
		items[i] = ModelToUserResponse(user)
	}
	from, to := page.ShowingRange()
	return UserListResponse{
		Items:        items,
		TotalMatched: page.TotalMatched,
		TotalPages:   page.TotalPages,
		Page:         page.Page,
		PageSize:     page.PageSize,
		ShowingFrom:  from,
		ShowingTo:    to,
	}
}

// MapPinPageToResponse преобразует страницу меток, считая возраст каждой метки относительно now
func MapPinPageToResponse(page *query.PageResult[models.MapPin], now time.Time) MapPinListResponse {
	items := make([]MapPinResponse, len(page.Items))
	for i, pin := range page.Items {
		items[i] = MapPinResponse{
			ID:         pin.ID,
			Title:      pin.Title,
			Location:   pin.Location,
			Severity:   pin.Severity,
			Type:       pin.Type,
			ReportedAt: pin.ReportedAt,
			Age:        formatAge(now.Sub(pin.ReportedAt)),
			Latitude:   pin.Latitude,
			Longitude:  pin.Longitude,
		}
	}
	return MapPinListResponse{
		Items:        items,
		TotalMatched: page.TotalMatched,
		TotalPages:   page.TotalPages,
		Page:         page.Page,
		PageSize:     page.PageSize,
	}
}

func ModelToMessageResponse(model models.Message) MessageResponse {
	return MessageResponse{
		ID:             model.ID,
		Template:       model.Template,
		Content:        model.Content,
		Recipients:     model.Recipients,
		Channels:       model.Channels,
		Status:         model.Status,
		Timestamp:      model.Timestamp,
		DeliveryRate:   model.DeliveryRate,
		TargetLocation: model.TargetLocation,
	}
}

func ModelsToMessageResponses(messages []models.Message) []MessageResponse {
	responses := make([]MessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = ModelToMessageResponse(message)
	}
	return responses
}

// DTOToSendMessageInput преобразует DTO рассылки во входные данные сервиса
func DTOToSendMessageInput(dto SendMessageRequest) service.SendMessageInput {
	return service.SendMessageInput{
		TemplateID:     dto.TemplateID,
		Content:        dto.Content,
		Channels:       dto.Channels,
		TargetLocation: dto.TargetLocation,
		Recipients:     dto.Recipients,
	}
}

// formatAge форматирует возраст отчета в виде "2 mins ago"
func formatAge(age time.Duration) string {
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return plural(int(age/time.Minute), "min")
	case age < 24*time.Hour:
		return plural(int(age/time.Hour), "hour")
	default:
		return plural(int(age/(24*time.Hour)), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
