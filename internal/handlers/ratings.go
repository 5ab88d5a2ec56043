package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"songrate/internal/services"
)

// RatingCreateRequest represents the body for submitting a rating
type RatingCreateRequest struct {
	SongID string `json:"song_id" binding:"required"`
	Rating int    `json:"rating" binding:"required,gte=1,lte=5"`
}

// RatingHandler handles rating-related requests
type RatingHandler struct {
	ratingService services.RatingService
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(ratingService services.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// CreateRating handles POST /ratings
func (h *RatingHandler) CreateRating(c *gin.Context) {
	var req RatingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	rating, err := h.ratingService.AddRating(c.Request.Context(), req.SongID, req.Rating)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Song not found",
			})
			return
		}
		slog.Error("Failed to add rating", "song_id", req.SongID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// GetStats handles GET /ratings/:song_id/stats
func (h *RatingHandler) GetStats(c *gin.Context) {
	songID := c.Param("song_id")

	stats, err := h.ratingService.GetStats(c.Request.Context(), songID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Song not found",
			})
			return
		}
		slog.Error("Failed to fetch rating stats", "song_id", songID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}
