package repository

import (
	"context"

	"github.com/spotshot-api/internal/domain"
)

// SpotRepository - интерфейс для работы со спотами
type SpotRepository interface {
	// ListVisible возвращает споты с учётом видимости: принятые модерацией
	// плюс собственные споты viewerID (если он задан)
	ListVisible(ctx context.Context, filter domain.SpotFilter, viewerID string) ([]*domain.Spot, error)

	// GetByID возвращает спот по идентификатору
	GetByID(ctx context.Context, id string) (*domain.Spot, error)

	// Create сохраняет новый спот
	Create(ctx context.Context, spot *domain.Spot) error

	// Update обновляет поля спота (только автором)
	Update(ctx context.Context, spot *domain.Spot) error

	// SetAccepted выставляет флаг модерации
	SetAccepted(ctx context.Context, id string, accepted bool) error

	// ListByAuthor возвращает споты пользователя (включая непринятые)
	ListByAuthor(ctx context.Context, authorID string) ([]*domain.Spot, error)

	// CountByAuthor возвращает количество спотов пользователя
	CountByAuthor(ctx context.Context, authorID string) (int, error)

	// Countries возвращает отсортированный список стран с принятыми спотами
	Countries(ctx context.Context) ([]string, error)

	// Cities возвращает города; при пустой стране - все города
	Cities(ctx context.Context, country string) ([]string, error)
}
