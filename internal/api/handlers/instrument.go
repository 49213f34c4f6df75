package handlers

import (
	"net/http"

	"worship-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InstrumentHandler handles HTTP requests for instrument operations
type InstrumentHandler struct {
	rosterService service.RosterServiceInterface
}

// NewInstrumentHandler creates a new instrument handler
func NewInstrumentHandler(rosterService service.RosterServiceInterface) *InstrumentHandler {
	return &InstrumentHandler{rosterService: rosterService}
}

// ListInstruments handles GET /instruments
// @Summary List instruments
// @Tags instruments
// @Produce json
// @Success 200 {array} models.Instrument "Instruments"
// @Security BearerAuth
// @Router /instruments [get]
func (h *InstrumentHandler) ListInstruments(c *gin.Context) {
	instruments, err := h.rosterService.ListInstruments()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, instruments)
}

// SaveInstrument handles POST /instruments
// @Summary Create or update an instrument
// @Tags instruments
// @Accept json
// @Produce json
// @Param request body service.SaveInstrumentRequest true "Instrument"
// @Success 200 {object} models.Instrument "Stored instrument"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /instruments [post]
func (h *InstrumentHandler) SaveInstrument(c *gin.Context) {
	var req service.SaveInstrumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	instrument, err := h.rosterService.SaveInstrument(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, instrument)
}

// DeleteInstrument handles DELETE /instruments/:id
// @Summary Delete an instrument
// @Tags instruments
// @Produce json
// @Param id path string true "Instrument ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Instrument not found"
// @Security BearerAuth
// @Router /instruments/{id} [delete]
func (h *InstrumentHandler) DeleteInstrument(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.rosterService.DeleteInstrument(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
