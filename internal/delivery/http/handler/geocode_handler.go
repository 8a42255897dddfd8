package handler

import (
	"github.com/gofiber/fiber/v2"
	apperrors "github.com/spotshot-api/internal/pkg/errors"
	"github.com/spotshot-api/internal/pkg/utils"
	"github.com/spotshot-api/internal/pkg/validator"
	"github.com/spotshot-api/internal/usecase"
	"github.com/spotshot-api/internal/usecase/dto"
	"go.uber.org/zap"
)

// GeocodeHandler - обработчик обратного геокодирования
type GeocodeHandler struct {
	geoUC  *usecase.GeocodeUseCase
	logger *zap.Logger
}

// NewGeocodeHandler - создание нового GeocodeHandler
func NewGeocodeHandler(geoUC *usecase.GeocodeUseCase, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		geoUC:  geoUC,
		logger: logger,
	}
}

// Reverse godoc
// @Summary Страна и город по координатам
// @Tags Geocode
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Success 200 {object} utils.SuccessResponse{data=domain.Address}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/geocode/reverse [get]
func (h *GeocodeHandler) Reverse(c *fiber.Ctx) error {
	var req dto.ReverseGeocodeRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidCoordinates)
	}

	address, err := h.geoUC.ReverseGeocode(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, address, nil)
}
