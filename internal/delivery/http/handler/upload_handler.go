package handler

import (
	"github.com/gofiber/fiber/v2"
	apperrors "github.com/spotshot-api/internal/pkg/errors"
	"github.com/spotshot-api/internal/pkg/utils"
	"github.com/spotshot-api/internal/usecase"
	"go.uber.org/zap"
)

// UploadHandler - обработчик загрузки изображений
type UploadHandler struct {
	uploadUC *usecase.UploadUseCase
	logger   *zap.Logger
}

// NewUploadHandler - создание нового UploadHandler
func NewUploadHandler(uploadUC *usecase.UploadUseCase, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		uploadUC: uploadUC,
		logger:   logger,
	}
}

// Upload godoc
// @Summary Загрузка изображения спота
// @Description Принимает multipart-форму с полем image и возвращает постоянный URL.
// @Tags Upload
// @Accept mpfd
// @Produce json
// @Param image formData file true "Файл изображения"
// @Success 200 {object} utils.SuccessResponse{data=dto.UploadResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"error": "image file is required",
		}))
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file", zap.Error(err))
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}
	defer file.Close()

	resp, err := h.uploadUC.UploadImage(c.Context(), file, fileHeader.Filename)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}
