package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/spotshot-api/internal/domain"
	"github.com/spotshot-api/internal/domain/repository"
	"github.com/spotshot-api/internal/pkg/errors"
	"github.com/spotshot-api/internal/pkg/utils"
	"github.com/spotshot-api/internal/usecase/dto"
)

// GeocodeUseCase - use case обратного геокодирования для клиентов
// без доступа к нативному геокодеру устройства
type GeocodeUseCase struct {
	geocodeRepo repository.GeocodeRepository
	logger      *zap.Logger
}

// NewGeocodeUseCase - создание нового GeocodeUseCase
func NewGeocodeUseCase(geocodeRepo repository.GeocodeRepository, logger *zap.Logger) *GeocodeUseCase {
	return &GeocodeUseCase{
		geocodeRepo: geocodeRepo,
		logger:      logger,
	}
}

// ReverseGeocode возвращает страну и город для точки
func (uc *GeocodeUseCase) ReverseGeocode(ctx context.Context, req dto.ReverseGeocodeRequest) (*domain.Address, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	addr, err := uc.geocodeRepo.ReverseGeocode(ctx, req.Lat, req.Lon)
	if err != nil {
		uc.logger.Error("Reverse geocode failed",
			zap.Float64("lat", req.Lat),
			zap.Float64("lon", req.Lon),
			zap.Error(err))
		return nil, err
	}

	return addr, nil
}
