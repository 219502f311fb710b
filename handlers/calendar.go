package handlers

import (
	"net/http"

	"nailbar/models"
	"nailbar/services/calendar"
	"nailbar/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler exposes the weekly schedule and closure endpoints.
type CalendarHandler struct {
	Svc calendar.CalendarService
}

func NewCalendarHandler(svc calendar.CalendarService) *CalendarHandler {
	return &CalendarHandler{Svc: svc}
}

// GetSchedule returns the seven-day schedule, Monday first.
func (h *CalendarHandler) GetSchedule(c *gin.Context) {
	days, err := h.Svc.GetSchedule(c.Request.Context())
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// SetSchedule replaces the weekly schedule wholesale.
func (h *CalendarHandler) SetSchedule(c *gin.Context) {
	var input struct {
		Days []models.DaySchedule `json:"days" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.SetSchedule(c.Request.Context(), input.Days); err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	getLogger(c).Info("weekly schedule replaced")
	c.JSON(http.StatusOK, gin.H{"message": "Schedule updated"})
}

// ListClosures returns all recorded closure dates.
func (h *CalendarHandler) ListClosures(c *gin.Context) {
	closures, err := h.Svc.ListClosures(c.Request.Context())
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"closures": closures})
}

// AddClosure records a full-day closure.
func (h *CalendarHandler) AddClosure(c *gin.Context) {
	var input struct {
		Date   string `json:"date" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	closure, err := h.Svc.AddClosureDate(c.Request.Context(), input.Date, input.Reason)
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	getLogger(c).Info("closure added", zap.String("date", closure.Date))
	c.JSON(http.StatusCreated, closure)
}

// RemoveClosure deletes a closure by id.
func (h *CalendarHandler) RemoveClosure(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.RemoveClosureDate(c.Request.Context(), id); err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Closure removed"})
}
