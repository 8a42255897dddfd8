package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spotshot-api/internal/domain"
	"github.com/spotshot-api/internal/domain/repository"
	"github.com/spotshot-api/internal/pkg/errors"
	"github.com/spotshot-api/internal/usecase/dto"
)

// ModerationUseCase - use case для жалоб и модерации спотов
type ModerationUseCase struct {
	reportRepo repository.ReportRepository
	spotRepo   repository.SpotRepository
	logger     *zap.Logger
}

// NewModerationUseCase - создание нового ModerationUseCase
func NewModerationUseCase(
	reportRepo repository.ReportRepository,
	spotRepo repository.SpotRepository,
	logger *zap.Logger,
) *ModerationUseCase {
	return &ModerationUseCase{
		reportRepo: reportRepo,
		spotRepo:   spotRepo,
		logger:     logger,
	}
}

// ReportSpot сохраняет жалобу на спот
func (uc *ModerationUseCase) ReportSpot(ctx context.Context, req dto.ReportSpotRequest, reporterID string) (*domain.Report, error) {
	if reporterID == "" {
		reporterID = req.ReporterID
	}
	if reporterID == "" {
		return nil, errors.ErrUnauthorized
	}

	if _, err := uc.spotRepo.GetByID(ctx, req.SpotID); err != nil {
		return nil, err
	}

	report := &domain.Report{
		ID:         uuid.NewString(),
		SpotID:     req.SpotID,
		ReporterID: reporterID,
		Reason:     req.Reason,
		Status:     domain.ReportStatusPending,
	}

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		uc.logger.Error("Failed to create report", zap.String("spot_id", req.SpotID), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Spot reported",
		zap.String("spot_id", req.SpotID),
		zap.String("reporter_id", reporterID))

	return report, nil
}

// ListReports возвращает жалобы в указанных статусах;
// без статусов - только ожидающие
func (uc *ModerationUseCase) ListReports(ctx context.Context, statuses []string) ([]*domain.Report, error) {
	if len(statuses) == 0 {
		statuses = []string{domain.ReportStatusPending}
	}
	for _, s := range statuses {
		if !domain.ValidReportStatus(s) {
			return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"status": s,
			})
		}
	}

	return uc.reportRepo.ListByStatus(ctx, statuses)
}

// ReviewSpot выставляет флаг модерации спота
func (uc *ModerationUseCase) ReviewSpot(ctx context.Context, spotID string, req dto.ReviewSpotRequest) (*domain.Spot, error) {
	if err := uc.spotRepo.SetAccepted(ctx, spotID, req.Accept); err != nil {
		return nil, err
	}

	spot, err := uc.spotRepo.GetByID(ctx, spotID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Spot reviewed",
		zap.String("spot_id", spotID),
		zap.Bool("accepted", req.Accept))

	return spot, nil
}
