package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spotshot-api/internal/delivery/http/middleware"
	apperrors "github.com/spotshot-api/internal/pkg/errors"
	"github.com/spotshot-api/internal/pkg/utils"
	"github.com/spotshot-api/internal/pkg/validator"
	"github.com/spotshot-api/internal/usecase"
	"github.com/spotshot-api/internal/usecase/dto"
	"go.uber.org/zap"
)

// SpotHandler - обработчик для спотов
type SpotHandler struct {
	spotUC *usecase.SpotUseCase
	logger *zap.Logger
}

// NewSpotHandler - создание нового SpotHandler
func NewSpotHandler(spotUC *usecase.SpotUseCase, logger *zap.Logger) *SpotHandler {
	return &SpotHandler{
		spotUC: spotUC,
		logger: logger,
	}
}

// List godoc
// @Summary Список спотов
// @Description Возвращает принятые модерацией споты плюс собственные споты автора. Опциональные фильтры по стране и городу.
// @Tags Spots
// @Produce json
// @Param country query string false "Фильтр по стране"
// @Param city query string false "Фильтр по городу"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Spot}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/spots [get]
func (h *SpotHandler) List(c *fiber.Ctx) error {
	var req dto.ListSpotsRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	spots, err := h.spotUC.ListSpots(c.Context(), req, middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spots, &utils.Meta{Total: len(spots)})
}

// Get godoc
// @Summary Спот по идентификатору
// @Tags Spots
// @Produce json
// @Param id path string true "Идентификатор спота"
// @Success 200 {object} utils.SuccessResponse{data=domain.Spot}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/spots/spot/{id} [get]
func (h *SpotHandler) Get(c *fiber.Ctx) error {
	spot, err := h.spotUC.GetSpot(c.Context(), c.Params("id"), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spot, nil)
}

// Create godoc
// @Summary Создание спота
// @Description Новый спот уходит на модерацию и до принятия виден только автору.
// @Tags Spots
// @Accept json
// @Produce json
// @Param request body dto.CreateSpotRequest true "Данные спота"
// @Success 200 {object} utils.SuccessResponse{data=domain.Spot}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/spots [post]
func (h *SpotHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSpotRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, apperrors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"error": err.Error(),
		}))
	}

	spot, err := h.spotUC.CreateSpot(c.Context(), req, middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spot, nil)
}

// Update godoc
// @Summary Редактирование спота автором
// @Tags Spots
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор спота"
// @Param request body dto.UpdateSpotRequest true "Новые данные"
// @Success 200 {object} utils.SuccessResponse{data=domain.Spot}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/spots/{id} [put]
func (h *SpotHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateSpotRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, apperrors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"error": err.Error(),
		}))
	}

	spot, err := h.spotUC.UpdateSpot(c.Context(), c.Params("id"), req, middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spot, nil)
}

// Countries godoc
// @Summary Список стран с принятыми спотами
// @Tags Spots
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]string}
// @Router /api/spots/countries [get]
func (h *SpotHandler) Countries(c *fiber.Ctx) error {
	countries, err := h.spotUC.Countries(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, countries, &utils.Meta{Total: len(countries)})
}

// Cities godoc
// @Summary Список городов страны
// @Tags Spots
// @Produce json
// @Param country query string false "Страна"
// @Success 200 {object} utils.SuccessResponse{data=[]string}
// @Router /api/spots/cities [get]
func (h *SpotHandler) Cities(c *fiber.Ctx) error {
	cities, err := h.spotUC.Cities(c.Context(), c.Query("country"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, cities, &utils.Meta{Total: len(cities)})
}

// UserSpots godoc
// @Summary Споты пользователя (включая непринятые)
// @Tags Spots
// @Produce json
// @Param userId path string true "Идентификатор пользователя"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Spot}
// @Router /api/spots/user/{userId} [get]
func (h *SpotHandler) UserSpots(c *fiber.Ctx) error {
	spots, err := h.spotUC.UserSpots(c.Context(), c.Params("userId"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spots, &utils.Meta{Total: len(spots)})
}

// UserSpotCount godoc
// @Summary Количество спотов пользователя
// @Tags Spots
// @Produce json
// @Param userId path string true "Идентификатор пользователя"
// @Success 200 {object} utils.SuccessResponse{data=dto.CountResponse}
// @Router /api/spots/count/{userId} [get]
func (h *SpotHandler) UserSpotCount(c *fiber.Ctx) error {
	count, err := h.spotUC.UserSpotCount(c.Context(), c.Params("userId"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, count, nil)
}
