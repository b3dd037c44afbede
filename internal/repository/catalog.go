package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/climate_dashboard/internal/models"
	"github.com/shenikar/climate_dashboard/internal/service"
)

// PostgresCatalog читает записи дашборда из таблиц, заполненных миграциями.
// Порядок записей задается колонкой position и совпадает с порядком демо-данных
type PostgresCatalog struct {
	db *pgxpool.Pool
}

func NewPostgresCatalog(db *pgxpool.Pool) service.Catalog {
	return &PostgresCatalog{
		db: db,
	}
}

// Reports возвращает все отчеты
func (r *PostgresCatalog) Reports(ctx context.Context) ([]models.Report, error) {
	query := `
		SELECT
			id,
			title,
			location,
			reporter,
			phone,
			type,
			severity,
			status,
			channel,
			reported_at,
			description,
			latitude,
			longitude
		FROM reports
		ORDER BY position;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]models.Report, 0)
	for rows.Next() {
		var report models.Report
		err := rows.Scan(
			&report.ID,
			&report.Title,
			&report.Location,
			&report.Reporter,
			&report.Phone,
			&report.Type,
			&report.Severity,
			&report.Status,
			&report.Channel,
			&report.Timestamp,
			&report.Description,
			&report.Latitude,
			&report.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reports iteration: %w", err)
	}
	return reports, nil
}

// Users возвращает всех пользователей вместе с их правами
func (r *PostgresCatalog) Users(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT
			id,
			name,
			email,
			phone,
			role,
			department,
			state,
			status,
			last_login,
			join_date,
			permissions
		FROM users
		ORDER BY position;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Phone,
			&user.Role,
			&user.Department,
			&user.State,
			&user.Status,
			&user.LastLogin,
			&user.JoinDate,
			&user.Permissions,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error users iteration: %w", err)
	}
	return users, nil
}

// MapPins возвращает все метки карты
func (r *PostgresCatalog) MapPins(ctx context.Context) ([]models.MapPin, error) {
	query := `
		SELECT
			id,
			title,
			location,
			severity,
			type,
			reported_at,
			latitude,
			longitude
		FROM map_pins
		ORDER BY position;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list map pins: %w", err)
	}
	defer rows.Close()

	pins := make([]models.MapPin, 0)
	for rows.Next() {
		var pin models.MapPin
		err := rows.Scan(
			&pin.ID,
			&pin.Title,
			&pin.Location,
			&pin.Severity,
			&pin.Type,
			&pin.ReportedAt,
			&pin.Latitude,
			&pin.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan map pin row: %w", err)
		}
		pins = append(pins, pin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error map pins iteration: %w", err)
	}
	return pins, nil
}

// MessageTemplates возвращает шаблоны оповещений
func (r *PostgresCatalog) MessageTemplates(ctx context.Context) ([]models.MessageTemplate, error) {
	query := `
		SELECT id, name, type, content, category, usage
		FROM message_templates
		ORDER BY position;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list message templates: %w", err)
	}
	defer rows.Close()

	templates := make([]models.MessageTemplate, 0)
	for rows.Next() {
		var template models.MessageTemplate
		err := rows.Scan(
			&template.ID,
			&template.Name,
			&template.Type,
			&template.Content,
			&template.Category,
			&template.Usage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message template row: %w", err)
		}
		templates = append(templates, template)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error message templates iteration: %w", err)
	}
	return templates, nil
}
