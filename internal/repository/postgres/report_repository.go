package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/spotshot-api/internal/domain"
	"github.com/spotshot-api/internal/domain/repository"
	apperrors "github.com/spotshot-api/internal/pkg/errors"
	"go.uber.org/zap"
)

type reportRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewReportRepository(db *DB) repository.ReportRepository {
	return &reportRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	query := `
		INSERT INTO reports (id, spot_id, reporter_id, reason, status)
		VALUES (:id, :spot_id, :reporter_id, :reason, :status)
	`

	if _, err := r.db.NamedExecContext(ctx, query, report); err != nil {
		r.logger.Error("Failed to create report", zap.String("spot_id", report.SpotID), zap.Error(err))
		return apperrors.ErrDatabaseError
	}

	return nil
}

func (r *reportRepository) ListByStatus(ctx context.Context, statuses []string) ([]*domain.Report, error) {
	query := `
		SELECT id, spot_id, reporter_id, reason, status, created_at
		FROM reports
		WHERE status = ANY($1)
		ORDER BY created_at
	`

	reports := []*domain.Report{}
	if err := r.db.SelectContext(ctx, &reports, query, pq.Array(statuses)); err != nil {
		r.logger.Error("Failed to list reports", zap.Strings("statuses", statuses), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return reports, nil
}

func (r *reportRepository) SetStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE reports SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		r.logger.Error("Failed to set report status", zap.String("report_id", id), zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.ErrInvalidRequest
	}

	return nil
}
