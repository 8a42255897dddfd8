package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spotshot-api/internal/domain"
	"github.com/spotshot-api/internal/domain/repository"
	"github.com/spotshot-api/internal/pkg/errors"
	"github.com/spotshot-api/internal/pkg/utils"
	"github.com/spotshot-api/internal/usecase/dto"
)

// Cache keys for location option lists
const (
	countriesCacheKey = "spots:countries"
	citiesCachePrefix = "spots:cities:"
)

// SpotUseCase - use case для работы со спотами
type SpotUseCase struct {
	spotRepo  repository.SpotRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	listTTL   time.Duration
}

// NewSpotUseCase - создание нового SpotUseCase
func NewSpotUseCase(
	spotRepo repository.SpotRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	listTTL time.Duration,
) *SpotUseCase {
	return &SpotUseCase{
		spotRepo:  spotRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		listTTL:   listTTL,
	}
}

// ListSpots возвращает видимые споты с опциональными фильтрами страны/города.
// viewerID пустой для неавторизованных - они видят только принятые споты.
func (uc *SpotUseCase) ListSpots(ctx context.Context, req dto.ListSpotsRequest, viewerID string) ([]*domain.Spot, error) {
	filter := domain.SpotFilter{
		Country: strings.TrimSpace(req.Country),
		City:    strings.TrimSpace(req.City),
	}

	spots, err := uc.spotRepo.ListVisible(ctx, filter, viewerID)
	if err != nil {
		uc.logger.Error("Failed to list spots", zap.Error(err))
		return nil, err
	}

	return spots, nil
}

// GetSpot возвращает спот с учётом видимости. Непринятый спот для
// чужого пользователя неотличим от несуществующего.
func (uc *SpotUseCase) GetSpot(ctx context.Context, id, viewerID string) (*domain.Spot, error) {
	if id == "" {
		return nil, errors.ErrInvalidRequest
	}

	spot, err := uc.spotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !spot.VisibleTo(viewerID) {
		return nil, errors.ErrSpotNotFound
	}

	return spot, nil
}

// CreateSpot сохраняет новый спот. Спот попадает в очередь модерации
// (accepted=false) и до принятия виден только автору.
func (uc *SpotUseCase) CreateSpot(ctx context.Context, req dto.CreateSpotRequest, authorID string) (*domain.Spot, error) {
	if authorID == "" {
		return nil, errors.ErrUnauthorized
	}
	if !utils.ValidateCoordinates(req.Latitude, req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	spot := &domain.Spot{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		PhotoTips:   req.PhotoTips,
		City:        req.City,
		Country:     req.Country,
		Image:       req.Image,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		AuthorID:    authorID,
		Accepted:    false,
	}

	if err := uc.spotRepo.Create(ctx, spot); err != nil {
		uc.logger.Error("Failed to create spot", zap.String("spot_id", id), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Spot created",
		zap.String("spot_id", spot.ID),
		zap.String("author_id", authorID),
		zap.String("country", spot.Country),
		zap.String("city", spot.City))

	return spot, nil
}

// UpdateSpot применяет правки автора. Отредактированный спот снова
// уходит на модерацию.
func (uc *SpotUseCase) UpdateSpot(ctx context.Context, id string, req dto.UpdateSpotRequest, userID string) (*domain.Spot, error) {
	if userID == "" {
		return nil, errors.ErrUnauthorized
	}

	spot, err := uc.spotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if spot.AuthorID != userID {
		return nil, errors.ErrForbidden
	}

	spot.Name = req.Name
	spot.Description = req.Description
	spot.PhotoTips = req.PhotoTips
	spot.City = req.City
	spot.Country = req.Country
	spot.Image = req.Image
	spot.Accepted = false

	if err := uc.spotRepo.Update(ctx, spot); err != nil {
		uc.logger.Error("Failed to update spot", zap.String("spot_id", id), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Spot updated", zap.String("spot_id", id), zap.String("author_id", userID))

	return spot, nil
}

// UserSpots возвращает все споты пользователя, включая непринятые
func (uc *SpotUseCase) UserSpots(ctx context.Context, userID string) ([]*domain.Spot, error) {
	if userID == "" {
		return nil, errors.ErrInvalidRequest
	}

	return uc.spotRepo.ListByAuthor(ctx, userID)
}

// UserSpotCount возвращает количество спотов пользователя
func (uc *SpotUseCase) UserSpotCount(ctx context.Context, userID string) (*dto.CountResponse, error) {
	if userID == "" {
		return nil, errors.ErrInvalidRequest
	}

	count, err := uc.spotRepo.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.CountResponse{Count: count}, nil
}

// Countries возвращает список стран (cache-aside)
func (uc *SpotUseCase) Countries(ctx context.Context) ([]string, error) {
	if cached, err := uc.cacheRepo.GetStringList(ctx, countriesCacheKey); err == nil && cached != nil {
		return cached, nil
	}

	countries, err := uc.spotRepo.Countries(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetStringList(ctx, countriesCacheKey, countries, uc.listTTL); err != nil {
		uc.logger.Warn("Failed to cache countries", zap.Error(err))
	}

	return countries, nil
}

// Cities возвращает города страны (cache-aside)
func (uc *SpotUseCase) Cities(ctx context.Context, country string) ([]string, error) {
	key := citiesCachePrefix + country
	if cached, err := uc.cacheRepo.GetStringList(ctx, key); err == nil && cached != nil {
		return cached, nil
	}

	cities, err := uc.spotRepo.Cities(ctx, country)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetStringList(ctx, key, cities, uc.listTTL); err != nil {
		uc.logger.Warn("Failed to cache cities", zap.String("country", country), zap.Error(err))
	}

	return cities, nil
}
