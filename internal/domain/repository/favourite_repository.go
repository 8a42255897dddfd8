package repository

import (
	"context"

	"github.com/spotshot-api/internal/domain"
)

// FavouriteRepository - интерфейс для работы с избранным
type FavouriteRepository interface {
	// Add создаёт связь пользователь-спот. Возвращает false, если
	// связь уже существовала (операция идемпотентна).
	Add(ctx context.Context, fav *domain.Favourite) (bool, error)

	// ListSpotsByUser возвращает сохранённые споты пользователя
	ListSpotsByUser(ctx context.Context, userID string) ([]*domain.Spot, error)

	// Exists проверяет наличие связи
	Exists(ctx context.Context, userID, spotID string) (bool, error)

	// CountBySpot возвращает количество сохранений спота
	CountBySpot(ctx context.Context, spotID string) (int, error)
}
