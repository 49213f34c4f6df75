package handlers

import (
	"net/http"

	"worship-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SongHandler handles HTTP requests for the song catalog
type SongHandler struct {
	songService service.SongServiceInterface
}

// NewSongHandler creates a new song handler
func NewSongHandler(songService service.SongServiceInterface) *SongHandler {
	return &SongHandler{songService: songService}
}

// ListSongs handles GET /songs
// @Summary List songs
// @Description Get all songs with their performance histories, in creation order
// @Tags songs
// @Produce json
// @Success 200 {array} service.SongResponse "Songs"
// @Security BearerAuth
// @Router /songs [get]
func (h *SongHandler) ListSongs(c *gin.Context) {
	songs, err := h.songService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, songs)
}

// GetSong handles GET /songs/:id
// @Summary Get a song
// @Tags songs
// @Produce json
// @Param id path string true "Song ID"
// @Success 200 {object} service.SongResponse "Song"
// @Failure 404 {object} ErrorResponse "Song not found"
// @Security BearerAuth
// @Router /songs/{id} [get]
func (h *SongHandler) GetSong(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	song, err := h.songService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, song)
}

// SaveSong handles POST /songs
// @Summary Create or update a song
// @Description Save a song; a request with an id fully replaces the catalog entry
// @Tags songs
// @Accept json
// @Produce json
// @Param request body service.SaveSongRequest true "Song"
// @Success 200 {object} service.SongResponse "Stored song"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /songs [post]
func (h *SongHandler) SaveSong(c *gin.Context) {
	var req service.SaveSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	song, err := h.songService.Save(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, song)
}

// DeleteSong handles DELETE /songs/:id
// @Summary Delete a song
// @Description Remove a song and its embedded performance history
// @Tags songs
// @Produce json
// @Param id path string true "Song ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Song not found"
// @Security BearerAuth
// @Router /songs/{id} [delete]
func (h *SongHandler) DeleteSong(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.songService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddPerformance handles POST /songs/:id/performances
// @Summary Add a performance
// @Description Append one performance to the song's history; prior entries are never touched
// @Tags songs
// @Accept json
// @Produce json
// @Param id path string true "Song ID"
// @Param request body service.AddPerformanceRequest true "Performance"
// @Success 200 {object} service.SongResponse "Updated song"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Song not found"
// @Security BearerAuth
// @Router /songs/{id}/performances [post]
func (h *SongHandler) AddPerformance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.AddPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	req.SongID = id

	song, err := h.songService.AddPerformance(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, song)
}
