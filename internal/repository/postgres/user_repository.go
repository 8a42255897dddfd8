package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/spotshot-api/internal/domain"
	"github.com/spotshot-api/internal/domain/repository"
	apperrors "github.com/spotshot-api/internal/pkg/errors"
	"go.uber.org/zap"
)

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT id, username, avatar_url, created_at FROM profiles WHERE id = $1`

	var profile domain.Profile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		r.logger.Error("Failed to get profile", zap.String("user_id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &profile, nil
}
