package handlers

import (
	"net/http"

	"worship-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles HTTP requests for schedule operations
type ScheduleHandler struct {
	scheduleService service.ScheduleServiceInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService service.ScheduleServiceInterface) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// ListSchedules handles GET /schedules
// @Summary List schedules
// @Description Get all schedules in creation order, optionally filtered by date
// @Tags schedules
// @Produce json
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {array} service.ScheduleResponse "Schedules"
// @Security BearerAuth
// @Router /schedules [get]
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	schedules, err := h.scheduleService.List(c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// ListResolvedSchedules handles GET /schedules/resolved
// @Summary List resolved schedules
// @Description Get schedules with every stored id replaced by its display label
// @Tags schedules
// @Produce json
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {array} service.ScheduleRow "Resolved schedule rows"
// @Security BearerAuth
// @Router /schedules/resolved [get]
func (h *ScheduleHandler) ListResolvedSchedules(c *gin.Context) {
	rows, err := h.scheduleService.ListResolved(c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// AddSchedule handles POST /schedules
// @Summary Create or replace a schedule
// @Description Save the schedule for a (date, leader) pair; an existing pair is fully replaced
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body service.AddScheduleRequest true "Schedule"
// @Success 200 {object} service.ScheduleResponse "Stored schedule"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /schedules [post]
func (h *ScheduleHandler) AddSchedule(c *gin.Context) {
	var req service.AddScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	schedule, err := h.scheduleService.Add(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// DeleteSchedule handles DELETE /schedules/:id
// @Summary Delete a schedule
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Schedule not found"
// @Security BearerAuth
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.scheduleService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
