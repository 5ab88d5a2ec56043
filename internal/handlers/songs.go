package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"songrate/internal/services"
)

// ListSongsParams represents the query parameters for the song listing.
// Size is a pointer so an explicit size=0 fails validation while an absent
// size falls back to the configured default.
type ListSongsParams struct {
	Page int  `form:"page,default=1" binding:"gte=1"`
	Size *int `form:"size" binding:"omitempty,gte=1"`
}

// DifficultyParams represents the query parameters for the difficulty aggregate
type DifficultyParams struct {
	Level *int `form:"level" binding:"omitempty,gte=1"`
}

// SearchSongsParams represents the query parameters for text search
type SearchSongsParams struct {
	Message string `form:"message" binding:"required,min=1"`
}

// PagedSongsResponse represents one page of songs
type PagedSongsResponse struct {
	Items []services.SongEntity `json:"items"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Size  int                   `json:"size"`
}

// SongListResponse represents an unpaged list of songs
type SongListResponse struct {
	Songs []services.SongEntity `json:"songs"`
}

// AverageDifficultyResponse represents the difficulty aggregate
type AverageDifficultyResponse struct {
	AverageDifficulty float64 `json:"average_difficulty"`
}

// SongHandler handles song-related requests
type SongHandler struct {
	songService services.SongService
}

// NewSongHandler creates a new song handler
func NewSongHandler(songService services.SongService) *SongHandler {
	return &SongHandler{songService: songService}
}

// ListSongs handles GET /songs
func (h *SongHandler) ListSongs(c *gin.Context) {
	var params ListSongsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	size := 0
	if params.Size != nil {
		size = *params.Size
	}

	page, err := h.songService.ListSongs(c.Request.Context(), params.Page, size)
	if err != nil {
		slog.Error("Failed to list songs", "page", params.Page, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, PagedSongsResponse{
		Items: page.Items,
		Total: page.Total,
		Page:  page.Page,
		Size:  page.Size,
	})
}

// AverageDifficulty handles GET /songs/difficulty
func (h *SongHandler) AverageDifficulty(c *gin.Context) {
	var params DifficultyParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	avg, err := h.songService.AverageDifficulty(c.Request.Context(), params.Level)
	if err != nil {
		slog.Error("Failed to compute average difficulty", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, AverageDifficultyResponse{AverageDifficulty: avg})
}

// SearchSongs handles GET /songs/search
func (h *SongHandler) SearchSongs(c *gin.Context) {
	var params SearchSongsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Search message is required",
			"details": err.Error(),
		})
		return
	}

	songs, err := h.songService.SearchSongs(c.Request.Context(), params.Message)
	if err != nil {
		slog.Error("Failed to search songs", "message", params.Message, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// No matches is an ordinary empty result, not a 404
	c.JSON(http.StatusOK, SongListResponse{Songs: songs})
}

// GetSong handles GET /songs/:id
func (h *SongHandler) GetSong(c *gin.Context) {
	song, err := h.songService.GetSong(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Song not found",
			})
			return
		}
		slog.Error("Failed to fetch song", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, song)
}
