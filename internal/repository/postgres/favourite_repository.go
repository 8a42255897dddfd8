package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/spotshot-api/internal/domain"
	"github.com/spotshot-api/internal/domain/repository"
	apperrors "github.com/spotshot-api/internal/pkg/errors"
	"go.uber.org/zap"
)

type favouriteRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFavouriteRepository(db *DB) repository.FavouriteRepository {
	return &favouriteRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Add вставляет связь user-spot. ON CONFLICT DO NOTHING даёт
// идемпотентность: повторное сохранение не ошибка, просто no-op.
func (r *favouriteRepository) Add(ctx context.Context, fav *domain.Favourite) (bool, error) {
	query := `
		INSERT INTO favourites (id, user_id, spot_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, spot_id) DO NOTHING
	`

	res, err := r.db.ExecContext(ctx, query, fav.ID, fav.UserID, fav.SpotID)
	if err != nil {
		r.logger.Error("Failed to add favourite",
			zap.String("user_id", fav.UserID),
			zap.String("spot_id", fav.SpotID),
			zap.Error(err))
		return false, apperrors.ErrDatabaseError
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, apperrors.ErrDatabaseError
	}

	return rows > 0, nil
}

func (r *favouriteRepository) ListSpotsByUser(ctx context.Context, userID string) ([]*domain.Spot, error) {
	query := `
		SELECT s.id, s.name, s.description, s.photo_tips, s.city, s.country,
			s.image, s.latitude, s.longitude, s.author_id, s.accepted, s.created_at
		FROM spots s
		JOIN favourites f ON f.spot_id = s.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	spots := []*domain.Spot{}
	if err := r.db.SelectContext(ctx, &spots, query, userID); err != nil {
		r.logger.Error("Failed to list favourite spots", zap.String("user_id", userID), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return spots, nil
}

func (r *favouriteRepository) Exists(ctx context.Context, userID, spotID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM favourites WHERE user_id = $1 AND spot_id = $2)`

	if err := r.db.GetContext(ctx, &exists, query, userID, spotID); err != nil {
		r.logger.Error("Failed to check favourite", zap.Error(err))
		return false, apperrors.ErrDatabaseError
	}

	return exists, nil
}

func (r *favouriteRepository) CountBySpot(ctx context.Context, spotID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM favourites WHERE spot_id = $1`

	if err := r.db.GetContext(ctx, &count, query, spotID); err != nil {
		r.logger.Error("Failed to count favourites", zap.String("spot_id", spotID), zap.Error(err))
		return 0, apperrors.ErrDatabaseError
	}

	return count, nil
}
