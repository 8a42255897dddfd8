package cloudinary

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/spotshot-api/internal/config"
	"github.com/spotshot-api/internal/domain"
	"github.com/spotshot-api/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	cld    *cloudinary.Cloudinary
	folder string
	logger *zap.Logger
}

// NewClient создает клиент для загрузки изображений в Cloudinary
func NewClient(cfg *config.CloudinaryConfig, logger *zap.Logger) (repository.ImageRepository, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}

	return &client{
		cld:    cld,
		folder: cfg.UploadFolder,
		logger: logger,
	}, nil
}

// Upload загружает изображение и возвращает постоянный secure URL.
// Имя файла используется только как подсказка, public id генерирует Cloudinary.
func (c *client) Upload(ctx context.Context, file io.Reader, filename string) (*domain.UploadedImage, error) {
	resp, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:           c.folder,
		FilenameOverride: filename,
		UniqueFilename:   api.Bool(true),
	})
	if err != nil {
		c.logger.Error("Cloudinary upload failed",
			zap.String("filename", filename),
			zap.Error(err))
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}

	if resp.SecureURL == "" {
		c.logger.Error("Cloudinary returned empty URL", zap.String("filename", filename))
		return nil, fmt.Errorf("cloudinary upload: empty secure url")
	}

	c.logger.Debug("Image uploaded",
		zap.String("public_id", resp.PublicID),
		zap.String("url", resp.SecureURL))

	return &domain.UploadedImage{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
	}, nil
}
