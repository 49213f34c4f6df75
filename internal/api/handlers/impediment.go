package handlers

import (
	"net/http"

	"worship-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ImpedimentHandler handles HTTP requests for impediment operations
type ImpedimentHandler struct {
	impedimentService service.ImpedimentServiceInterface
}

// NewImpedimentHandler creates a new impediment handler
func NewImpedimentHandler(impedimentService service.ImpedimentServiceInterface) *ImpedimentHandler {
	return &ImpedimentHandler{impedimentService: impedimentService}
}

// ListImpediments handles GET /impediments
// @Summary List impediments
// @Tags impediments
// @Produce json
// @Success 200 {array} models.Impediment "Impediments"
// @Security BearerAuth
// @Router /impediments [get]
func (h *ImpedimentHandler) ListImpediments(c *gin.Context) {
	impediments, err := h.impedimentService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, impediments)
}

// SaveImpediment handles POST /impediments
// @Summary Create or update an impediment
// @Description Record that a singer or musician is unavailable on a given date
// @Tags impediments
// @Accept json
// @Produce json
// @Param request body service.SaveImpedimentRequest true "Impediment"
// @Success 200 {object} models.Impediment "Stored impediment"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /impediments [post]
func (h *ImpedimentHandler) SaveImpediment(c *gin.Context) {
	var req service.SaveImpedimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	impediment, err := h.impedimentService.Save(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, impediment)
}

// DeleteImpediment handles DELETE /impediments/:id
// @Summary Delete an impediment
// @Tags impediments
// @Produce json
// @Param id path string true "Impediment ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Impediment not found"
// @Security BearerAuth
// @Router /impediments/{id} [delete]
func (h *ImpedimentHandler) DeleteImpediment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.impedimentService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
