package repository

import (
	"context"

	"github.com/shenikar/climate_dashboard/internal/fixtures"
	"github.com/shenikar/climate_dashboard/internal/models"
	"github.com/shenikar/climate_dashboard/internal/service"
)

// FixtureCatalog отдает встроенные демо-данные. Используется, когда DATABASE_URL не задан
type FixtureCatalog struct{}

func NewFixtureCatalog() service.Catalog {
	return FixtureCatalog{}
}

func (FixtureCatalog) Reports(_ context.Context) ([]models.Report, error) {
	return fixtures.Reports(), nil
}

func (FixtureCatalog) Users(_ context.Context) ([]models.User, error) {
	return fixtures.Users(), nil
}

func (FixtureCatalog) MapPins(_ context.Context) ([]models.MapPin, error) {
	return fixtures.MapPins(), nil
}

func (FixtureCatalog) MessageTemplates(_ context.Context) ([]models.MessageTemplate, error) {
	return fixtures.MessageTemplates(), nil
}
