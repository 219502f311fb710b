package handlers

import (
	"net/http"
	"strconv"

	"nailbar/models"
	"nailbar/services/booking"
	"nailbar/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the scheduling and lifecycle endpoints.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// GetAvailability returns the bookable slot grid for a date and duration.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required", "")
		return
	}
	duration, err := strconv.Atoi(c.DefaultQuery("duration", "60"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "duration must be a number of minutes", "")
		return
	}

	slots, err := h.Svc.GenerateSlots(c.Request.Context(), date, duration)
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// StartSession prices a service selection and opens a checkout session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		Items []models.SessionItem `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Svc.StartSession(c.Request.Context(), input.Items)
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CreateBooking books a slot. When the request carries a session id the
// cached checkout session is discarded after a successful insert.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input struct {
		booking.CreateAppointmentRequest
		SessionID string `json:"sessionId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Svc.CreateAppointment(c.Request.Context(), input.CreateAppointmentRequest)
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	if input.SessionID != "" {
		h.Svc.DropSession(c.Request.Context(), input.SessionID)
	}
	getLogger(c).Info("appointment booked",
		zap.String("appointmentId", appt.ID), zap.String("date", appt.Date), zap.String("time", appt.Time))
	c.JSON(http.StatusCreated, appt)
}

// LookupBookings returns a customer's appointments by email or phone.
func (h *BookingHandler) LookupBookings(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appts, err := h.Svc.FindCustomerAppointments(c.Request.Context(), input.Email, input.Phone)
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// CancelBooking applies the customer cancel transition.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Email string `json:"email"`
	}
	// Body is optional; an empty email still resolves to a customer actor.
	_ = c.ShouldBindJSON(&input)

	appt, err := h.Svc.CancelAppointment(c.Request.Context(), id, booking.Actor{Email: input.Email})
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	getLogger(c).Info("appointment cancelled", zap.String("appointmentId", appt.ID))
	c.JSON(http.StatusOK, appt)
}

// ChangeBooking moves an appointment to a new slot under the 48-hour
// change policy.
func (h *BookingHandler) ChangeBooking(c *gin.Context) {
	id := c.Param("id")
	var input booking.ChangeAppointmentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Svc.ChangeAppointment(c.Request.Context(), id, input)
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	getLogger(c).Info("appointment changed",
		zap.String("originalId", id), zap.String("newId", result.NewAppointment.ID))
	c.JSON(http.StatusOK, result)
}
