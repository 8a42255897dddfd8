package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spotshot-api/internal/domain/repository"
	"go.uber.org/zap"
)

// Favourite cache keys. API и воркер инвалидируют одни и те же ключи,
// поэтому они собираются только здесь.
func favouriteCountKey(spotID string) string { return "favourites:count:" + spotID }
func favouriteUserKey(userID string) string  { return "favourites:user:" + userID }

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redisConn *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redisConn.Client(),
		logger: redisConn.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetFavouriteCount возвращает кешированный счётчик; -1 при промахе
func (r *cacheRepository) GetFavouriteCount(ctx context.Context, spotID string) (int, error) {
	data, err := r.Get(ctx, favouriteCountKey(spotID))
	if err != nil {
		return -1, err
	}
	if data == nil {
		return -1, nil // Cache miss
	}

	count, err := strconv.Atoi(string(data))
	if err != nil {
		r.logger.Warn("Corrupted favourite count in cache", zap.String("spot_id", spotID))
		return -1, nil
	}

	return count, nil
}

func (r *cacheRepository) SetFavouriteCount(ctx context.Context, spotID string, count int, ttl time.Duration) error {
	return r.Set(ctx, favouriteCountKey(spotID), []byte(strconv.Itoa(count)), ttl)
}

// InvalidateFavourites сбрасывает оба ключа одной командой
func (r *cacheRepository) InvalidateFavourites(ctx context.Context, userID, spotID string) error {
	err := r.client.Del(ctx, favouriteCountKey(spotID), favouriteUserKey(userID)).Err()
	if err != nil {
		r.logger.Error("Failed to invalidate favourites cache",
			zap.String("user_id", userID),
			zap.String("spot_id", spotID),
			zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	return nil
}

func (r *cacheRepository) GetStringList(ctx context.Context, key string) ([]string, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		r.logger.Warn("Corrupted string list in cache", zap.String("key", key))
		return nil, nil
	}

	return values, nil
}

func (r *cacheRepository) SetStringList(ctx context.Context, key string, values []string, ttl time.Duration) error {
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal string list: %w", err)
	}

	return r.Set(ctx, key, data, ttl)
}
