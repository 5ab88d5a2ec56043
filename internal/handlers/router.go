package handlers

import (
	"github.com/gin-gonic/gin"
)

// SetupRouter binds all handlers onto a new gin engine
func SetupRouter(songs *SongHandler, ratings *RatingHandler, health *HealthHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/songs", songs.ListSongs)
	router.GET("/songs/difficulty", songs.AverageDifficulty)
	router.GET("/songs/search", songs.SearchSongs)
	router.GET("/songs/:id", songs.GetSong)

	router.POST("/ratings", ratings.CreateRating)
	router.GET("/ratings/:song_id/stats", ratings.GetStats)

	router.GET("/health", health.Check)

	return router
}
