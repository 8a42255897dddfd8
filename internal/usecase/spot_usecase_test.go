package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spotshot-api/internal/domain"
	"github.com/spotshot-api/internal/pkg/errors"
	"github.com/spotshot-api/internal/usecase"
	"github.com/spotshot-api/internal/usecase/dto"
)

func newSpotUseCase(spotRepo *MockSpotRepository, cacheRepo *MockCacheRepository) *usecase.SpotUseCase {
	return usecase.NewSpotUseCase(spotRepo, cacheRepo, zap.NewNop(), time.Minute)
}

// TestSpotUseCase_GetSpot_HidesUnacceptedFromStrangers: непринятый
// спот для чужого пользователя выглядит как несуществующий
func TestSpotUseCase_GetSpot_HidesUnacceptedFromStrangers(t *testing.T) {
	spotRepo := &MockSpotRepository{}
	uc := newSpotUseCase(spotRepo, &MockCacheRepository{})

	pending := &domain.Spot{ID: "spot-1", AuthorID: "author-1", Accepted: false}
	spotRepo.On("GetByID", mock.Anything, "spot-1").Return(pending, nil)

	tests := []struct {
		name     string
		viewerID string
		wantErr  error
	}{
		{"stranger", "user-2", errors.ErrSpotNotFound},
		{"unauthenticated", "", errors.ErrSpotNotFound},
		{"author", "author-1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spot, err := uc.GetSpot(context.Background(), "spot-1", tt.viewerID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, spot)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "spot-1", spot.ID)
			}
		})
	}
}

// TestSpotUseCase_CreateSpot: новый спот уходит на модерацию
func TestSpotUseCase_CreateSpot(t *testing.T) {
	spotRepo := &MockSpotRepository{}
	uc := newSpotUseCase(spotRepo, &MockCacheRepository{})

	spotRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Spot) bool {
		return s.ID != "" && s.AuthorID == "author-1" && !s.Accepted
	})).Return(nil)

	spot, err := uc.CreateSpot(context.Background(), dto.CreateSpotRequest{
		Name:      "Pont Neuf",
		City:      "Paris",
		Country:   "France",
		Image:     "https://img.example/1.jpg",
		Latitude:  48.857,
		Longitude: 2.341,
	}, "author-1")

	require.NoError(t, err)
	assert.NotEmpty(t, spot.ID)
	assert.False(t, spot.Accepted)
	assert.Equal(t, "author-1", spot.AuthorID)
	spotRepo.AssertExpectations(t)
}

// TestSpotUseCase_CreateSpot_InvalidCoordinates
func TestSpotUseCase_CreateSpot_InvalidCoordinates(t *testing.T) {
	uc := newSpotUseCase(&MockSpotRepository{}, &MockCacheRepository{})

	_, err := uc.CreateSpot(context.Background(), dto.CreateSpotRequest{
		Name:     "Bad",
		Latitude: 123.0, Longitude: 500.0,
	}, "author-1")

	assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)
}

// TestSpotUseCase_CreateSpot_Unauthenticated
func TestSpotUseCase_CreateSpot_Unauthenticated(t *testing.T) {
	uc := newSpotUseCase(&MockSpotRepository{}, &MockCacheRepository{})

	_, err := uc.CreateSpot(context.Background(), dto.CreateSpotRequest{
		Latitude: 1, Longitude: 1,
	}, "")

	assert.ErrorIs(t, err, errors.ErrUnauthorized)
}

// TestSpotUseCase_UpdateSpot_OnlyAuthor: чужой пользователь
// получает 403, правки не сохраняются
func TestSpotUseCase_UpdateSpot_OnlyAuthor(t *testing.T) {
	spotRepo := &MockSpotRepository{}
	uc := newSpotUseCase(spotRepo, &MockCacheRepository{})

	spot := &domain.Spot{ID: "spot-1", AuthorID: "author-1", Accepted: true}
	spotRepo.On("GetByID", mock.Anything, "spot-1").Return(spot, nil)

	_, err := uc.UpdateSpot(context.Background(), "spot-1", dto.UpdateSpotRequest{Name: "X"}, "intruder")

	assert.ErrorIs(t, err, errors.ErrForbidden)
	spotRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// TestSpotUseCase_UpdateSpot_ResetsModeration: правка автора
// возвращает спот в очередь модерации
func TestSpotUseCase_UpdateSpot_ResetsModeration(t *testing.T) {
	spotRepo := &MockSpotRepository{}
	uc := newSpotUseCase(spotRepo, &MockCacheRepository{})

	spot := &domain.Spot{ID: "spot-1", AuthorID: "author-1", Accepted: true}
	spotRepo.On("GetByID", mock.Anything, "spot-1").Return(spot, nil)
	spotRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Spot) bool {
		return !s.Accepted && s.Name == "New name"
	})).Return(nil)

	updated, err := uc.UpdateSpot(context.Background(), "spot-1", dto.UpdateSpotRequest{
		Name: "New name",
	}, "author-1")

	require.NoError(t, err)
	assert.False(t, updated.Accepted)
	spotRepo.AssertExpectations(t)
}

// TestSpotUseCase_Countries_CacheAside: хит кеша не ходит в БД
func TestSpotUseCase_Countries_CacheAside(t *testing.T) {
	spotRepo := &MockSpotRepository{}
	cacheRepo := &MockCacheRepository{}
	uc := newSpotUseCase(spotRepo, cacheRepo)

	cacheRepo.On("GetStringList", mock.Anything, "spots:countries").
		Return([]string{"France", "Japan"}, nil)

	countries, err := uc.Countries(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"France", "Japan"}, countries)
	spotRepo.AssertNotCalled(t, "Countries", mock.Anything)
}

// TestSpotUseCase_Countries_CacheMiss: промах кеша идёт в БД
// и прогревает кеш
func TestSpotUseCase_Countries_CacheMiss(t *testing.T) {
	spotRepo := &MockSpotRepository{}
	cacheRepo := &MockCacheRepository{}
	uc := newSpotUseCase(spotRepo, cacheRepo)

	cacheRepo.On("GetStringList", mock.Anything, "spots:countries").Return(nil, nil)
	spotRepo.On("Countries", mock.Anything).Return([]string{"Iceland"}, nil)
	cacheRepo.On("SetStringList", mock.Anything, "spots:countries", []string{"Iceland"}, time.Minute).
		Return(nil)

	countries, err := uc.Countries(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Iceland"}, countries)
	cacheRepo.AssertExpectations(t)
}

// TestSpotUseCase_ListSpots_PassesFilter
func TestSpotUseCase_ListSpots_PassesFilter(t *testing.T) {
	spotRepo := &MockSpotRepository{}
	uc := newSpotUseCase(spotRepo, &MockCacheRepository{})

	expected := []*domain.Spot{{ID: "spot-1"}}
	spotRepo.On("ListVisible", mock.Anything,
		domain.SpotFilter{Country: "France", City: "Paris"}, "viewer-1").
		Return(expected, nil)

	spots, err := uc.ListSpots(context.Background(), dto.ListSpotsRequest{
		Country: "France",
		City:    "Paris",
	}, "viewer-1")

	require.NoError(t, err)
	assert.Equal(t, expected, spots)
}
