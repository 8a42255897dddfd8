package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/spotshot-api/internal/domain"
	"github.com/spotshot-api/internal/domain/repository"
	"github.com/spotshot-api/internal/pkg/errors"
)

// UserUseCase - use case для профилей
type UserUseCase struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewUserUseCase - создание нового UserUseCase
func NewUserUseCase(userRepo repository.UserRepository, logger *zap.Logger) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile возвращает публичный профиль пользователя
func (uc *UserUseCase) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	if id == "" {
		return nil, errors.ErrInvalidRequest
	}

	return uc.userRepo.GetByID(ctx, id)
}
