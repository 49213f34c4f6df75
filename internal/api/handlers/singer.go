package handlers

import (
	"net/http"

	"worship-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SingerHandler handles HTTP requests for singer operations
type SingerHandler struct {
	rosterService service.RosterServiceInterface
}

// NewSingerHandler creates a new singer handler
func NewSingerHandler(rosterService service.RosterServiceInterface) *SingerHandler {
	return &SingerHandler{rosterService: rosterService}
}

// ListSingers handles GET /singers
// @Summary List singers
// @Tags singers
// @Produce json
// @Success 200 {array} models.Singer "Singers"
// @Security BearerAuth
// @Router /singers [get]
func (h *SingerHandler) ListSingers(c *gin.Context) {
	singers, err := h.rosterService.ListSingers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, singers)
}

// SaveSinger handles POST /singers
// @Summary Create or update a singer
// @Tags singers
// @Accept json
// @Produce json
// @Param request body service.SaveSingerRequest true "Singer"
// @Success 200 {object} models.Singer "Stored singer"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /singers [post]
func (h *SingerHandler) SaveSinger(c *gin.Context) {
	var req service.SaveSingerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	singer, err := h.rosterService.SaveSinger(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, singer)
}

// DeleteSinger handles DELETE /singers/:id
// @Summary Delete a singer
// @Description Remove a singer; schedules referencing it render "Removido" from then on
// @Tags singers
// @Produce json
// @Param id path string true "Singer ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Singer not found"
// @Security BearerAuth
// @Router /singers/{id} [delete]
func (h *SingerHandler) DeleteSinger(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.rosterService.DeleteSinger(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
