package repository

import (
	"context"
	"io"

	"github.com/spotshot-api/internal/domain"
)

// ImageRepository - интерфейс загрузки изображений во внешний хостинг
type ImageRepository interface {
	// Upload загружает изображение и возвращает постоянный URL
	Upload(ctx context.Context, file io.Reader, filename string) (*domain.UploadedImage, error)
}
