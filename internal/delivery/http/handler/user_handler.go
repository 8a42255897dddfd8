package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spotshot-api/internal/pkg/utils"
	"github.com/spotshot-api/internal/usecase"
	"go.uber.org/zap"
)

// UserHandler - обработчик для профилей пользователей
type UserHandler struct {
	userUC *usecase.UserUseCase
	logger *zap.Logger
}

// NewUserHandler - создание нового UserHandler
func NewUserHandler(userUC *usecase.UserUseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		logger: logger,
	}
}

// Get godoc
// @Summary Профиль пользователя
// @Tags Users
// @Produce json
// @Param id path string true "Идентификатор пользователя"
// @Success 200 {object} utils.SuccessResponse{data=domain.Profile}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/users/{id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	profile, err := h.userUC.GetProfile(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, profile, nil)
}
