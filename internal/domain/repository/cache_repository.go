package repository

import (
	"context"
	"time"
)

// CacheRepository - интерфейс для кеширования
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// GetFavouriteCount возвращает кешированный счётчик сохранений
	// спота; -1 при промахе кеша
	GetFavouriteCount(ctx context.Context, spotID string) (int, error)

	// SetFavouriteCount кеширует счётчик сохранений спота
	SetFavouriteCount(ctx context.Context, spotID string, count int, ttl time.Duration) error

	// InvalidateFavourites сбрасывает кеш счётчика спота и списка
	// избранного пользователя
	InvalidateFavourites(ctx context.Context, userID, spotID string) error

	// GetStringList / SetStringList - кеш списков стран и городов
	GetStringList(ctx context.Context, key string) ([]string, error)
	SetStringList(ctx context.Context, key string, values []string, ttl time.Duration) error
}
