package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spotshot-api/internal/domain"
	"github.com/spotshot-api/internal/domain/repository"
	apperrors "github.com/spotshot-api/internal/pkg/errors"
	"go.uber.org/zap"
)

const spotColumns = `id, name, description, photo_tips, city, country, image,
	latitude, longitude, author_id, accepted, created_at`

type spotRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSpotRepository(db *DB) repository.SpotRepository {
	return &spotRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// ListVisible возвращает принятые споты плюс собственные споты viewerID.
// Фильтры страны и города добавляются только когда заданы.
func (r *spotRepository) ListVisible(ctx context.Context, filter domain.SpotFilter, viewerID string) ([]*domain.Spot, error) {
	query := `SELECT ` + spotColumns + `
		FROM spots
		WHERE (accepted = true OR author_id = $1)`
	args := []interface{}{viewerID}

	if country := filter.NormalizedCountry(); country != "" {
		args = append(args, country)
		query += fmt.Sprintf(" AND country = $%d", len(args))
	}
	if city := filter.NormalizedCity(); city != "" {
		args = append(args, city)
		query += fmt.Sprintf(" AND city = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	spots := []*domain.Spot{}
	if err := r.db.SelectContext(ctx, &spots, query, args...); err != nil {
		r.logger.Error("Failed to list spots", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return spots, nil
}

func (r *spotRepository) GetByID(ctx context.Context, id string) (*domain.Spot, error) {
	query := `SELECT ` + spotColumns + ` FROM spots WHERE id = $1`

	var spot domain.Spot
	if err := r.db.GetContext(ctx, &spot, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrSpotNotFound
		}
		r.logger.Error("Failed to get spot", zap.String("spot_id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &spot, nil
}

func (r *spotRepository) Create(ctx context.Context, spot *domain.Spot) error {
	query := `
		INSERT INTO spots (id, name, description, photo_tips, city, country,
			image, latitude, longitude, author_id, accepted)
		VALUES (:id, :name, :description, :photo_tips, :city, :country,
			:image, :latitude, :longitude, :author_id, :accepted)
	`

	if _, err := r.db.NamedExecContext(ctx, query, spot); err != nil {
		r.logger.Error("Failed to create spot", zap.String("spot_id", spot.ID), zap.Error(err))
		return apperrors.ErrDatabaseError
	}

	return nil
}

func (r *spotRepository) Update(ctx context.Context, spot *domain.Spot) error {
	query := `
		UPDATE spots
		SET name = :name, description = :description, photo_tips = :photo_tips,
			city = :city, country = :country, image = :image, accepted = :accepted
		WHERE id = :id
	`

	res, err := r.db.NamedExecContext(ctx, query, spot)
	if err != nil {
		r.logger.Error("Failed to update spot", zap.String("spot_id", spot.ID), zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.ErrSpotNotFound
	}

	return nil
}

func (r *spotRepository) SetAccepted(ctx context.Context, id string, accepted bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE spots SET accepted = $1 WHERE id = $2`, accepted, id)
	if err != nil {
		r.logger.Error("Failed to set accepted flag", zap.String("spot_id", id), zap.Error(err))
		return apperrors.ErrDatabaseError
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return apperrors.ErrSpotNotFound
	}

	return nil
}

func (r *spotRepository) ListByAuthor(ctx context.Context, authorID string) ([]*domain.Spot, error) {
	query := `SELECT ` + spotColumns + `
		FROM spots
		WHERE author_id = $1
		ORDER BY created_at DESC`

	spots := []*domain.Spot{}
	if err := r.db.SelectContext(ctx, &spots, query, authorID); err != nil {
		r.logger.Error("Failed to list author spots", zap.String("author_id", authorID), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return spots, nil
}

func (r *spotRepository) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM spots WHERE author_id = $1`, authorID)
	if err != nil {
		r.logger.Error("Failed to count author spots", zap.String("author_id", authorID), zap.Error(err))
		return 0, apperrors.ErrDatabaseError
	}

	return count, nil
}

func (r *spotRepository) Countries(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT country
		FROM spots
		WHERE accepted = true AND country <> ''
		ORDER BY country
	`

	countries := []string{}
	if err := r.db.SelectContext(ctx, &countries, query); err != nil {
		r.logger.Error("Failed to list countries", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return countries, nil
}

func (r *spotRepository) Cities(ctx context.Context, country string) ([]string, error) {
	query := `
		SELECT DISTINCT city
		FROM spots
		WHERE accepted = true AND city <> ''
	`
	args := []interface{}{}

	if country != "" && country != domain.FilterAll {
		args = append(args, country)
		query += " AND country = $1"
	}
	query += " ORDER BY city"

	cities := []string{}
	if err := r.db.SelectContext(ctx, &cities, query, args...); err != nil {
		r.logger.Error("Failed to list cities", zap.String("country", country), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return cities, nil
}
