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

// ModerationHandler - обработчик для жалоб и модерации
type ModerationHandler struct {
	modUC  *usecase.ModerationUseCase
	logger *zap.Logger
}

// NewModerationHandler - создание нового ModerationHandler
func NewModerationHandler(modUC *usecase.ModerationUseCase, logger *zap.Logger) *ModerationHandler {
	return &ModerationHandler{
		modUC:  modUC,
		logger: logger,
	}
}

// Report godoc
// @Summary Жалоба на спот
// @Tags Moderation
// @Accept json
// @Produce json
// @Param request body dto.ReportSpotRequest true "Жалоба"
// @Success 200 {object} utils.SuccessResponse{data=domain.Report}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/moderation/report [post]
func (h *ModerationHandler) Report(c *fiber.Ctx) error {
	var req dto.ReportSpotRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, apperrors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"error": err.Error(),
		}))
	}

	report, err := h.modUC.ReportSpot(c.Context(), req, middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, report, nil)
}

// ListReports godoc
// @Summary Список жалоб
// @Description По умолчанию возвращает только жалобы в статусе pending.
// @Tags Moderation
// @Produce json
// @Param status query []string false "Статусы жалоб" collectionFormat(multi)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Report}
// @Router /api/moderation/reports [get]
func (h *ModerationHandler) ListReports(c *fiber.Ctx) error {
	var req dto.ListReportsRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	reports, err := h.modUC.ListReports(c.Context(), req.Statuses)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, reports, &utils.Meta{Total: len(reports)})
}

// Review godoc
// @Summary Решение модератора по споту
// @Description Принимает или отклоняет спот. Принятый спот становится видимым всем.
// @Tags Moderation
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор спота"
// @Param request body dto.ReviewSpotRequest true "Решение"
// @Success 200 {object} utils.SuccessResponse{data=domain.Spot}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/moderation/review/{id} [post]
func (h *ModerationHandler) Review(c *fiber.Ctx) error {
	var req dto.ReviewSpotRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	spot, err := h.modUC.ReviewSpot(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, spot, nil)
}
