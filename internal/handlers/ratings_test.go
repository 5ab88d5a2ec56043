package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"songrate/internal/services"
	"songrate/internal/testutil"
)

func TestRatingHandler_CreateRating(t *testing.T) {
	mockService := &MockRatingService{}
	router := setupTestRouter(&MockSongService{}, mockService)
	helper := testutil.NewHTTPTestHelper(t, router)

	entity := services.RatingEntity{
		ID:     "64d2f8f4a2b3c4d5e6f70099",
		SongID: "64d2f8f4a2b3c4d5e6f70001",
		Rating: 5,
	}
	mockService.On("AddRating", mock.Anything, "64d2f8f4a2b3c4d5e6f70001", 5).Return(entity, nil)

	recorder := helper.PostJSON("/ratings", RatingCreateRequest{
		SongID: "64d2f8f4a2b3c4d5e6f70001",
		Rating: 5,
	})
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response services.RatingEntity
	helper.DecodeJSON(recorder, &response)
	assert.Equal(t, "64d2f8f4a2b3c4d5e6f70099", response.ID)
	assert.Equal(t, 5, response.Rating)

	mockService.AssertExpectations(t)
}

func TestRatingHandler_CreateRating_OutOfRange(t *testing.T) {
	mockService := &MockRatingService{}
	router := setupTestRouter(&MockSongService{}, mockService)
	helper := testutil.NewHTTPTestHelper(t, router)

	for _, rating := range []int{-1, 0, 6, 100} {
		recorder := helper.PostJSON("/ratings", RatingCreateRequest{
			SongID: "64d2f8f4a2b3c4d5e6f70001",
			Rating: rating,
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code, "rating %d", rating)
	}

	// Range violations never reach the service
	mockService.AssertNotCalled(t, "AddRating", mock.Anything, mock.Anything, mock.Anything)
}

func TestRatingHandler_CreateRating_MissingSongID(t *testing.T) {
	mockService := &MockRatingService{}
	router := setupTestRouter(&MockSongService{}, mockService)
	helper := testutil.NewHTTPTestHelper(t, router)

	recorder := helper.PostJSON("/ratings", map[string]interface{}{"rating": 3})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRatingHandler_CreateRating_MalformedSongID(t *testing.T) {
	mockService := &MockRatingService{}
	router := setupTestRouter(&MockSongService{}, mockService)
	helper := testutil.NewHTTPTestHelper(t, router)

	mockService.On("AddRating", mock.Anything, "definitely-not-an-object-id", 3).
		Return(services.RatingEntity{}, services.ErrNotFound)

	recorder := helper.PostJSON("/ratings", RatingCreateRequest{
		SongID: "definitely-not-an-object-id",
		Rating: 3,
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var response map[string]interface{}
	helper.DecodeJSON(recorder, &response)
	assert.Equal(t, "Song not found", response["error"])
}

func TestRatingHandler_GetStats(t *testing.T) {
	mockService := &MockRatingService{}
	router := setupTestRouter(&MockSongService{}, mockService)
	helper := testutil.NewHTTPTestHelper(t, router)

	stats := services.RatingStatsEntity{Average: 3.0, Lowest: 1, Highest: 5}
	mockService.On("GetStats", mock.Anything, "64d2f8f4a2b3c4d5e6f70001").Return(stats, nil)

	recorder := helper.GetJSON("/ratings/64d2f8f4a2b3c4d5e6f70001/stats")
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response services.RatingStatsEntity
	helper.DecodeJSON(recorder, &response)
	assert.Equal(t, 3.0, response.Average)
	assert.Equal(t, 1, response.Lowest)
	assert.Equal(t, 5, response.Highest)
}

func TestRatingHandler_GetStats_NoRatings(t *testing.T) {
	mockService := &MockRatingService{}
	router := setupTestRouter(&MockSongService{}, mockService)
	helper := testutil.NewHTTPTestHelper(t, router)

	mockService.On("GetStats", mock.Anything, "64d2f8f4a2b3c4d5e6f70042").
		Return(services.RatingStatsEntity{}, nil)

	recorder := helper.GetJSON("/ratings/64d2f8f4a2b3c4d5e6f70042/stats")

	// Zero ratings is a 200 with zero stats, not a 404
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response services.RatingStatsEntity
	helper.DecodeJSON(recorder, &response)
	assert.Equal(t, 0.0, response.Average)
	assert.Equal(t, 0, response.Lowest)
	assert.Equal(t, 0, response.Highest)
}

func TestRatingHandler_GetStats_MalformedSongID(t *testing.T) {
	mockService := &MockRatingService{}
	router := setupTestRouter(&MockSongService{}, mockService)
	helper := testutil.NewHTTPTestHelper(t, router)

	mockService.On("GetStats", mock.Anything, "bogus").
		Return(services.RatingStatsEntity{}, services.ErrNotFound)

	recorder := helper.GetJSON("/ratings/bogus/stats")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRatingHandler_GetStats_ServiceError(t *testing.T) {
	mockService := &MockRatingService{}
	router := setupTestRouter(&MockSongService{}, mockService)
	helper := testutil.NewHTTPTestHelper(t, router)

	mockService.On("GetStats", mock.Anything, "64d2f8f4a2b3c4d5e6f70001").
		Return(services.RatingStatsEntity{}, errors.New("connection reset"))

	recorder := helper.GetJSON("/ratings/64d2f8f4a2b3c4d5e6f70001/stats")
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
