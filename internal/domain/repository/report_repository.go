package repository

import (
	"context"

	"github.com/spotshot-api/internal/domain"
)

// ReportRepository - интерфейс для работы с жалобами
type ReportRepository interface {
	// Create сохраняет жалобу
	Create(ctx context.Context, report *domain.Report) error

	// ListByStatus возвращает жалобы в указанных статусах
	ListByStatus(ctx context.Context, statuses []string) ([]*domain.Report, error)

	// SetStatus обновляет статус жалобы
	SetStatus(ctx context.Context, id, status string) error
}
