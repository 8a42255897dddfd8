package repository

import (
	"context"

	"github.com/spotshot-api/internal/domain"
)

// UserRepository - интерфейс для чтения профилей
type UserRepository interface {
	// GetByID возвращает профиль пользователя
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
}
