package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spotshot-api/internal/domain"
	"github.com/spotshot-api/internal/domain/repository"
	"github.com/spotshot-api/internal/pkg/errors"
	"github.com/spotshot-api/internal/usecase/dto"
)

// FavouriteUseCase - use case для избранного.
// После первой вставки публикует событие в стрим, чтобы воркер
// инвалидировал кешированные счётчики на всех инстансах.
type FavouriteUseCase struct {
	favRepo    repository.FavouriteRepository
	spotRepo   repository.SpotRepository
	cacheRepo  repository.CacheRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
	countTTL   time.Duration
}

// NewFavouriteUseCase - создание нового FavouriteUseCase
func NewFavouriteUseCase(
	favRepo repository.FavouriteRepository,
	spotRepo repository.SpotRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
	countTTL time.Duration,
) *FavouriteUseCase {
	return &FavouriteUseCase{
		favRepo:    favRepo,
		spotRepo:   spotRepo,
		cacheRepo:  cacheRepo,
		streamRepo: streamRepo,
		logger:     logger,
		countTTL:   countTTL,
	}
}

// AddFavourite сохраняет спот в избранное. Повторное сохранение
// не ошибка: ответ помечается already_saved. Удаления избранного
// в продукте нет, вид события removed зарезервирован.
func (uc *FavouriteUseCase) AddFavourite(ctx context.Context, req dto.AddFavouriteRequest) (*dto.AddFavouriteResponse, error) {
	if _, err := uc.spotRepo.GetByID(ctx, req.SpotID); err != nil {
		return nil, err
	}

	fav := &domain.Favourite{
		ID:     uuid.NewString(),
		UserID: req.UserID,
		SpotID: req.SpotID,
	}

	inserted, err := uc.favRepo.Add(ctx, fav)
	if err != nil {
		uc.logger.Error("Failed to add favourite",
			zap.String("user_id", req.UserID),
			zap.String("spot_id", req.SpotID),
			zap.Error(err))
		return nil, err
	}

	if inserted {
		// Кеш и стрим - best effort: сохранение уже состоялось,
		// счётчик догонит по TTL даже если здесь не повезло
		if err := uc.cacheRepo.InvalidateFavourites(ctx, req.UserID, req.SpotID); err != nil {
			uc.logger.Warn("Failed to invalidate favourites cache", zap.Error(err))
		}

		event := domain.FavouriteEvent{
			Kind:   domain.FavouriteAdded,
			UserID: req.UserID,
			SpotID: req.SpotID,
		}
		if err := uc.streamRepo.PublishToStream(ctx, domain.StreamFavouriteEvents, event); err != nil {
			uc.logger.Warn("Failed to publish favourite event", zap.Error(err))
		}

		uc.logger.Info("Favourite added",
			zap.String("user_id", req.UserID),
			zap.String("spot_id", req.SpotID))
	}

	return &dto.AddFavouriteResponse{
		Success:      true,
		AlreadySaved: !inserted,
	}, nil
}

// ListFavourites возвращает сохранённые споты пользователя
func (uc *FavouriteUseCase) ListFavourites(ctx context.Context, userID string) ([]*domain.Spot, error) {
	if userID == "" {
		return nil, errors.ErrInvalidRequest
	}

	spots, err := uc.favRepo.ListSpotsByUser(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to list favourites", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	return spots, nil
}

// CheckFavourite проверяет, сохранил ли пользователь спот
func (uc *FavouriteUseCase) CheckFavourite(ctx context.Context, userID, spotID string) (*dto.CheckFavouriteResponse, error) {
	if userID == "" || spotID == "" {
		return nil, errors.ErrInvalidRequest
	}

	exists, err := uc.favRepo.Exists(ctx, userID, spotID)
	if err != nil {
		return nil, err
	}

	return &dto.CheckFavouriteResponse{Favorited: exists}, nil
}

// FavouriteCount возвращает количество сохранений спота (cache-aside)
func (uc *FavouriteUseCase) FavouriteCount(ctx context.Context, spotID string) (*dto.CountResponse, error) {
	if spotID == "" {
		return nil, errors.ErrInvalidRequest
	}

	if cached, err := uc.cacheRepo.GetFavouriteCount(ctx, spotID); err == nil && cached >= 0 {
		return &dto.CountResponse{Count: cached}, nil
	}

	count, err := uc.favRepo.CountBySpot(ctx, spotID)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetFavouriteCount(ctx, spotID, count, uc.countTTL); err != nil {
		uc.logger.Warn("Failed to cache favourite count", zap.String("spot_id", spotID), zap.Error(err))
	}

	return &dto.CountResponse{Count: count}, nil
}
