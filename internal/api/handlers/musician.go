package handlers

import (
	"net/http"

	"worship-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MusicianHandler handles HTTP requests for musician operations
type MusicianHandler struct {
	rosterService service.RosterServiceInterface
}

// NewMusicianHandler creates a new musician handler
func NewMusicianHandler(rosterService service.RosterServiceInterface) *MusicianHandler {
	return &MusicianHandler{rosterService: rosterService}
}

// ListMusicians handles GET /musicians
// @Summary List musicians
// @Tags musicians
// @Produce json
// @Success 200 {array} models.Musician "Musicians"
// @Security BearerAuth
// @Router /musicians [get]
func (h *MusicianHandler) ListMusicians(c *gin.Context) {
	musicians, err := h.rosterService.ListMusicians()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, musicians)
}

// SaveMusician handles POST /musicians
// @Summary Create or update a musician
// @Tags musicians
// @Accept json
// @Produce json
// @Param request body service.SaveMusicianRequest true "Musician"
// @Success 200 {object} models.Musician "Stored musician"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /musicians [post]
func (h *MusicianHandler) SaveMusician(c *gin.Context) {
	var req service.SaveMusicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	musician, err := h.rosterService.SaveMusician(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, musician)
}

// DeleteMusician handles DELETE /musicians/:id
// @Summary Delete a musician
// @Tags musicians
// @Produce json
// @Param id path string true "Musician ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Musician not found"
// @Security BearerAuth
// @Router /musicians/{id} [delete]
func (h *MusicianHandler) DeleteMusician(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.rosterService.DeleteMusician(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
