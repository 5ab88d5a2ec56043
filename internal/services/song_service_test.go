package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"songrate/internal/models"
	"songrate/internal/repositories"
)

// MockSongRepository is a mock for testing services
type MockSongRepository struct {
	mock.Mock
}

func (m *MockSongRepository) List(ctx context.Context, page, size int) ([]models.Song, int64, error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).([]models.Song), args.Get(1).(int64), args.Error(2)
}

func (m *MockSongRepository) AverageDifficulty(ctx context.Context, level *int) (float64, error) {
	args := m.Called(ctx, level)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockSongRepository) SearchByText(ctx context.Context, message string) ([]models.Song, error) {
	args := m.Called(ctx, message)
	return args.Get(0).([]models.Song), args.Error(1)
}

func (m *MockSongRepository) FindByID(ctx context.Context, id string) (*models.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Song), args.Error(1)
}

func (m *MockSongRepository) SaveMany(ctx context.Context, songs []models.Song) error {
	args := m.Called(ctx, songs)
	return args.Error(0)
}

func testSong(id string) models.Song {
	objID, _ := primitive.ObjectIDFromHex(id)
	return models.Song{
		ID:         objID,
		Artist:     "The Yousicians",
		Title:      "Lycanthropic Metamorphosis",
		Difficulty: 14.6,
		Level:      13,
		Released:   time.Date(2016, 10, 26, 0, 0, 0, 0, time.UTC),
	}
}

func TestSongService_ListSongs(t *testing.T) {
	mockRepo := &MockSongRepository{}
	service := NewSongService(mockRepo)

	songs := []models.Song{testSong("64d2f8f4a2b3c4d5e6f70001")}
	mockRepo.On("List", mock.Anything, 2, 5).Return(songs, int64(11), nil)

	page, err := service.ListSongs(context.Background(), 2, 5)
	require.NoError(t, err)

	assert.Equal(t, int64(11), page.Total)
	assert.Equal(t, 2, page.Page)
	// Size reflects the number of items actually returned
	assert.Equal(t, 1, page.Size)

	require.Len(t, page.Items, 1)
	item := page.Items[0]
	assert.Equal(t, "64d2f8f4a2b3c4d5e6f70001", item.ID)
	assert.Equal(t, "The Yousicians", item.Artist)
	assert.Equal(t, 14.6, item.Difficulty)
	assert.Equal(t, "2016-10-26", item.Released)

	mockRepo.AssertExpectations(t)
}

func TestSongService_ListSongs_EmptyPage(t *testing.T) {
	mockRepo := &MockSongRepository{}
	service := NewSongService(mockRepo)

	mockRepo.On("List", mock.Anything, 99, 10).Return([]models.Song{}, int64(3), nil)

	page, err := service.ListSongs(context.Background(), 99, 10)
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 0, page.Size)
}

func TestSongService_AverageDifficulty(t *testing.T) {
	mockRepo := &MockSongRepository{}
	service := NewSongService(mockRepo)

	level := 13
	mockRepo.On("AverageDifficulty", mock.Anything, &level).Return(14.6, nil)

	avg, err := service.AverageDifficulty(context.Background(), &level)
	require.NoError(t, err)
	assert.Equal(t, 14.6, avg)

	mockRepo.AssertExpectations(t)
}

func TestSongService_AverageDifficulty_NoMatch(t *testing.T) {
	mockRepo := &MockSongRepository{}
	service := NewSongService(mockRepo)

	mockRepo.On("AverageDifficulty", mock.Anything, (*int)(nil)).Return(0.0, nil)

	avg, err := service.AverageDifficulty(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)
}

func TestSongService_SearchSongs(t *testing.T) {
	mockRepo := &MockSongRepository{}
	service := NewSongService(mockRepo)

	songs := []models.Song{testSong("64d2f8f4a2b3c4d5e6f70002")}
	mockRepo.On("SearchByText", mock.Anything, "yousicians").Return(songs, nil)

	results, err := service.SearchSongs(context.Background(), "yousicians")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "64d2f8f4a2b3c4d5e6f70002", results[0].ID)

	mockRepo.AssertExpectations(t)
}

func TestSongService_SearchSongs_NoMatch(t *testing.T) {
	mockRepo := &MockSongRepository{}
	service := NewSongService(mockRepo)

	mockRepo.On("SearchByText", mock.Anything, "no such song").Return([]models.Song{}, nil)

	results, err := service.SearchSongs(context.Background(), "no such song")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSongService_GetSong(t *testing.T) {
	mockRepo := &MockSongRepository{}
	service := NewSongService(mockRepo)

	song := testSong("64d2f8f4a2b3c4d5e6f70003")
	mockRepo.On("FindByID", mock.Anything, "64d2f8f4a2b3c4d5e6f70003").Return(&song, nil)

	entity, err := service.GetSong(context.Background(), "64d2f8f4a2b3c4d5e6f70003")
	require.NoError(t, err)

	assert.Equal(t, "64d2f8f4a2b3c4d5e6f70003", entity.ID)
	assert.Equal(t, "Lycanthropic Metamorphosis", entity.Title)
	assert.Equal(t, "2016-10-26", entity.Released)
}

func TestSongService_GetSong_NotFound(t *testing.T) {
	mockRepo := &MockSongRepository{}
	service := NewSongService(mockRepo)

	mockRepo.On("FindByID", mock.Anything, "not-a-hex-id").Return(nil, repositories.ErrSongNotFound)

	_, err := service.GetSong(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
