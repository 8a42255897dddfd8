package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/spotshot-api/internal/domain"
)

// MockSpotRepository is a mock of SpotRepository
type MockSpotRepository struct {
	mock.Mock
}

func (m *MockSpotRepository) ListVisible(ctx context.Context, filter domain.SpotFilter, viewerID string) ([]*domain.Spot, error) {
	args := m.Called(ctx, filter, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Spot), args.Error(1)
}

func (m *MockSpotRepository) GetByID(ctx context.Context, id string) (*domain.Spot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Spot), args.Error(1)
}

func (m *MockSpotRepository) Create(ctx context.Context, spot *domain.Spot) error {
	args := m.Called(ctx, spot)
	return args.Error(0)
}

func (m *MockSpotRepository) Update(ctx context.Context, spot *domain.Spot) error {
	args := m.Called(ctx, spot)
	return args.Error(0)
}

func (m *MockSpotRepository) SetAccepted(ctx context.Context, id string, accepted bool) error {
	args := m.Called(ctx, id, accepted)
	return args.Error(0)
}

func (m *MockSpotRepository) ListByAuthor(ctx context.Context, authorID string) ([]*domain.Spot, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Spot), args.Error(1)
}

func (m *MockSpotRepository) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	args := m.Called(ctx, authorID)
	return args.Int(0), args.Error(1)
}

func (m *MockSpotRepository) Countries(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSpotRepository) Cities(ctx context.Context, country string) ([]string, error) {
	args := m.Called(ctx, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockFavouriteRepository is a mock of FavouriteRepository
type MockFavouriteRepository struct {
	mock.Mock
}

func (m *MockFavouriteRepository) Add(ctx context.Context, fav *domain.Favourite) (bool, error) {
	args := m.Called(ctx, fav)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavouriteRepository) ListSpotsByUser(ctx context.Context, userID string) ([]*domain.Spot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Spot), args.Error(1)
}

func (m *MockFavouriteRepository) Exists(ctx context.Context, userID, spotID string) (bool, error) {
	args := m.Called(ctx, userID, spotID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavouriteRepository) CountBySpot(ctx context.Context, spotID string) (int, error) {
	args := m.Called(ctx, spotID)
	return args.Int(0), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetFavouriteCount(ctx context.Context, spotID string) (int, error) {
	args := m.Called(ctx, spotID)
	return args.Int(0), args.Error(1)
}

func (m *MockCacheRepository) SetFavouriteCount(ctx context.Context, spotID string, count int, ttl time.Duration) error {
	args := m.Called(ctx, spotID, count, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateFavourites(ctx context.Context, userID, spotID string) error {
	args := m.Called(ctx, userID, spotID)
	return args.Error(0)
}

func (m *MockCacheRepository) GetStringList(ctx context.Context, key string) ([]string, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCacheRepository) SetStringList(ctx context.Context, key string, values []string, ttl time.Duration) error {
	args := m.Called(ctx, key, values, ttl)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, limit int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

// MockReportRepository is a mock of ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) ListByStatus(ctx context.Context, statuses []string) ([]*domain.Report, error) {
	args := m.Called(ctx, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Report), args.Error(1)
}

func (m *MockReportRepository) SetStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
