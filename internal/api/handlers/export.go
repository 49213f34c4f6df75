package handlers

import (
	"net/http"

	"worship-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler handles HTTP requests for display-ready export documents
type ExportHandler struct {
	exportService service.ExportServiceInterface
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// SongSheet handles GET /export/songs/:id
// @Summary Get a song sheet
// @Description Get the lyric-sheet document for a song with its resolved performance history
// @Tags export
// @Produce json
// @Param id path string true "Song ID"
// @Success 200 {object} service.SongSheet "Song sheet"
// @Failure 404 {object} ErrorResponse "Song not found"
// @Security BearerAuth
// @Router /export/songs/{id} [get]
func (h *ExportHandler) SongSheet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sheet, err := h.exportService.SongSheet(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// MonthlySchedule handles GET /export/schedules/:month
// @Summary Get a monthly schedule document
// @Description Get the resolved schedule table for one month (YYYY-MM), sorted by date
// @Tags export
// @Produce json
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {object} service.MonthlySchedule "Monthly schedule"
// @Failure 400 {object} ErrorResponse "Invalid month"
// @Security BearerAuth
// @Router /export/schedules/{month} [get]
func (h *ExportHandler) MonthlySchedule(c *gin.Context) {
	doc, err := h.exportService.MonthlySchedule(c.Param("month"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
