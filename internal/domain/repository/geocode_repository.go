package repository

import (
	"context"

	"github.com/spotshot-api/internal/domain"
)

// GeocodeRepository - интерфейс обратного геокодирования координат
type GeocodeRepository interface {
	// ReverseGeocode возвращает страну и город для точки
	ReverseGeocode(ctx context.Context, lat, lon float64) (*domain.Address, error)
}
