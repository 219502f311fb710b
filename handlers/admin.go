package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	appointmentRepo "nailbar/database/repository/appointment"
	adminService "nailbar/services/admin"
	"nailbar/services/booking"
	"nailbar/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the back-office endpoints.
type AdminHandler struct {
	Svc     adminService.AdminService
	Booking booking.BookingService
	Repo    appointmentRepo.AppointmentRepository
}

func NewAdminHandler(svc adminService.AdminService, bookingSvc booking.BookingService, repo appointmentRepo.AppointmentRepository) *AdminHandler {
	return &AdminHandler{Svc: svc, Booking: bookingSvc, Repo: repo}
}

// Login exchanges credentials for an admin session token.
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	token, account, err := h.Svc.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		// Auth failures always answer 401, whatever the underlying code.
		if utils.HasCode(err, utils.CodeValidation) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
			return
		}
		utils.JSONServiceError(c, err)
		return
	}
	getLogger(c).Info("admin logged in", zap.String("email", account.Email))
	c.JSON(http.StatusOK, gin.H{"token": token, "admin": account})
}

// ListAppointments lists appointments in a date range, optionally
// filtered by status.
func (h *AdminHandler) ListAppointments(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	status := c.Query("status")

	appts, err := h.Repo.FindByRange(c.Request.Context(), from, to, status)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Service temporarily unavailable", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// UpdateAppointmentStatus applies an admin status transition.
func (h *AdminHandler) UpdateAppointmentStatus(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Booking.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	getLogger(c).Info("appointment status updated",
		zap.String("appointmentId", id), zap.String("status", input.Status))
	c.JSON(http.StatusOK, appt)
}

// UpdateAppointmentPayment applies an admin payment transition.
func (h *AdminHandler) UpdateAppointmentPayment(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		PaymentStatus string `json:"paymentStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Booking.UpdatePaymentStatus(c.Request.Context(), id, input.PaymentStatus)
	if err != nil {
		utils.JSONServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// DeleteAppointment removes an appointment record outright. Cancellation
// is the normal path; deletion is for test bookings and data hygiene.
func (h *AdminHandler) DeleteAppointment(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Appointment not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Service temporarily unavailable", "")
		return
	}
	getLogger(c).Info("appointment deleted", zap.String("appointmentId", id))
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}

// RevenueReport returns per-month revenue of completed, paid
// appointments for a year.
func (h *AdminHandler) RevenueReport(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "year must be a number", "")
		return
	}

	report, err := h.Repo.MonthlyRevenue(c.Request.Context(), year)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Service temporarily unavailable", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "months": report})
}
