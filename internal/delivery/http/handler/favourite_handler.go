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

// FavouriteHandler - обработчик для избранного
type FavouriteHandler struct {
	favUC  *usecase.FavouriteUseCase
	logger *zap.Logger
}

// NewFavouriteHandler - создание нового FavouriteHandler
func NewFavouriteHandler(favUC *usecase.FavouriteUseCase, logger *zap.Logger) *FavouriteHandler {
	return &FavouriteHandler{
		favUC:  favUC,
		logger: logger,
	}
}

// Add godoc
// @Summary Сохранение спота в избранное
// @Description Идемпотентная операция: повторное сохранение помечается already_saved.
// @Tags Favourites
// @Accept json
// @Produce json
// @Param request body dto.AddFavouriteRequest true "Пользователь и спот"
// @Success 200 {object} utils.SuccessResponse{data=dto.AddFavouriteResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/favourites [post]
func (h *FavouriteHandler) Add(c *fiber.Ctx) error {
	var req dto.AddFavouriteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	// Тело может сохранять только от своего имени
	if userID := middleware.UserID(c); userID != "" {
		req.UserID = userID
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, apperrors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"error": err.Error(),
		}))
	}

	resp, err := h.favUC.AddFavourite(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// List godoc
// @Summary Сохранённые споты пользователя
// @Tags Favourites
// @Produce json
// @Param userId path string true "Идентификатор пользователя"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Spot}
// @Router /api/favourites/{userId} [get]
func (h *FavouriteHandler) List(c *fiber.Ctx) error {
	spots, err := h.favUC.ListFavourites(c.Context(), c.Params("userId"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spots, &utils.Meta{Total: len(spots)})
}

// Check godoc
// @Summary Проверка, сохранил ли пользователь спот
// @Tags Favourites
// @Produce json
// @Param userId query string true "Идентификатор пользователя"
// @Param spotId query string true "Идентификатор спота"
// @Success 200 {object} utils.SuccessResponse{data=dto.CheckFavouriteResponse}
// @Router /api/favourites/check [get]
func (h *FavouriteHandler) Check(c *fiber.Ctx) error {
	resp, err := h.favUC.CheckFavourite(c.Context(), c.Query("userId"), c.Query("spotId"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// Count godoc
// @Summary Количество сохранений спота
// @Tags Favourites
// @Produce json
// @Param spotId path string true "Идентификатор спота"
// @Success 200 {object} utils.SuccessResponse{data=dto.CountResponse}
// @Router /api/favourites/count/{spotId} [get]
func (h *FavouriteHandler) Count(c *fiber.Ctx) error {
	resp, err := h.favUC.FavouriteCount(c.Context(), c.Params("spotId"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}
