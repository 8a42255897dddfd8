package usecase

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/spotshot-api/internal/domain/repository"
	"github.com/spotshot-api/internal/pkg/errors"
	"github.com/spotshot-api/internal/usecase/dto"
)

// UploadUseCase - use case для загрузки изображений спотов
type UploadUseCase struct {
	imageRepo repository.ImageRepository
	logger    *zap.Logger
}

// NewUploadUseCase - создание нового UploadUseCase
func NewUploadUseCase(imageRepo repository.ImageRepository, logger *zap.Logger) *UploadUseCase {
	return &UploadUseCase{
		imageRepo: imageRepo,
		logger:    logger,
	}
}

// UploadImage загружает изображение в хостинг и возвращает постоянный URL
func (uc *UploadUseCase) UploadImage(ctx context.Context, file io.Reader, filename string) (*dto.UploadResponse, error) {
	if file == nil {
		return nil, errors.ErrInvalidRequest
	}

	img, err := uc.imageRepo.Upload(ctx, file, filename)
	if err != nil {
		uc.logger.Error("Image upload failed", zap.String("filename", filename), zap.Error(err))
		return nil, errors.ErrUploadFailed
	}

	return &dto.UploadResponse{
		URL:      img.URL,
		PublicID: img.PublicID,
	}, nil
}
