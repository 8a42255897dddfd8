package favourites_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/spotshot-api/internal/domain"
	"github.com/spotshot-api/internal/worker/favourites"
)

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

func newTestWorker(stream *MockStreamRepository, fav *MockFavouriteRepository, cache *MockCacheRepository) *favourites.CountWorker {
	return favourites.NewCountWorker(
		stream, fav, cache,
		"favourite-count-workers",
		20, 3, time.Minute,
		zap.NewNop(),
	)
}

// TestCountWorker_Name tests the worker name
func TestCountWorker_Name(t *testing.T) {
	w := newTestWorker(&MockStreamRepository{}, &MockFavouriteRepository{}, &MockCacheRepository{})
	assert.Equal(t, "favourite-count", w.Name())
}

// TestCountWorker_ProcessesEvent проверяет инвалидацию и прогрев счётчика
func TestCountWorker_ProcessesEvent(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockFav := &MockFavouriteRepository{}
	mockCache := &MockCacheRepository{}

	event := domain.FavouriteEvent{
		Kind:   domain.FavouriteAdded,
		UserID: "user-1",
		SpotID: "spot-1",
	}
	payload, _ := json.Marshal(event)

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamFavouriteEvents, "favourite-count-workers").
		Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamFavouriteEvents, "favourite-count-workers", mock.Anything, 20).
		Return([]domain.StreamMessage{{ID: "1-0", Data: string(payload)}}, nil).Once()
	mockStream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{}, nil)
	acked := make(chan struct{})
	mockStream.On("AckMessage", mock.Anything, domain.StreamFavouriteEvents, "favourite-count-workers", "1-0").
		Run(func(args mock.Arguments) { close(acked) }).
		Return(nil)

	mockCache.On("InvalidateFavourites", mock.Anything, "user-1", "spot-1").Return(nil)
	mockFav.On("CountBySpot", mock.Anything, "spot-1").Return(7, nil)
	mockCache.On("SetFavouriteCount", mock.Anything, "spot-1", 7, time.Minute).Return(nil)

	w := newTestWorker(mockStream, mockFav, mockCache)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = w.Start(ctx)
		close(done)
	}()

	select {
	case <-acked:
	case <-time.After(2 * time.Second):
		t.Fatal("event was not acknowledged")
	}

	_ = w.Stop()
	cancel()
	<-done

	mockCache.AssertCalled(t, "InvalidateFavourites", mock.Anything, "user-1", "spot-1")
	mockCache.AssertCalled(t, "SetFavouriteCount", mock.Anything, "spot-1", 7, time.Minute)
	mockStream.AssertCalled(t, "AckMessage", mock.Anything, domain.StreamFavouriteEvents, "favourite-count-workers", "1-0")
}

// TestCountWorker_SkipsCorruptMessage проверяет ACK битых сообщений
func TestCountWorker_SkipsCorruptMessage(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockFav := &MockFavouriteRepository{}
	mockCache := &MockCacheRepository{}

	mockStream.On("CreateConsumerGroup", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{{ID: "2-0", Data: "not json"}}, nil).Once()
	mockStream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{}, nil)
	acked := make(chan struct{})
	mockStream.On("AckMessage", mock.Anything, domain.StreamFavouriteEvents, "favourite-count-workers", "2-0").
		Run(func(args mock.Arguments) { close(acked) }).
		Return(nil)

	w := newTestWorker(mockStream, mockFav, mockCache)

	ctx := context.Background()
	done := make(chan struct{})
	go func() {
		_ = w.Start(ctx)
		close(done)
	}()

	select {
	case <-acked:
	case <-time.After(2 * time.Second):
		t.Fatal("corrupt message was not acknowledged")
	}

	_ = w.Stop()
	<-done

	// кеш не трогали
	mockCache.AssertNotCalled(t, "InvalidateFavourites", mock.Anything, mock.Anything, mock.Anything)
}
