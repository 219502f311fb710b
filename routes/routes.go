package routes

import (
	"time"

	"nailbar/handlers"
	"nailbar/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the customer-facing endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.Services.ListServices)
		api.GET("/calendar/schedule", hb.Calendar.GetSchedule)
		api.GET("/calendar/closures", hb.Calendar.ListClosures)
		api.GET("/availability", hb.Booking.GetAvailability)

		api.POST("/bookings/session", hb.Booking.StartSession)
		api.POST("/bookings", hb.Booking.CreateBooking)
		api.POST("/bookings/lookup", hb.Booking.LookupBookings)
		api.POST("/bookings/:id/cancel", hb.Booking.CancelBooking)
		api.POST("/bookings/:id/change", hb.Booking.ChangeBooking)

		api.POST("/payments/intent", hb.Payments.CreateDepositIntent)
	}
}

// RegisterAdminRoutes registers the back-office endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.Admin.Login)

		// Everything below requires a valid admin token.
		adminGroup.Use(middleware.AdminAuthMiddleware())

		adminGroup.GET("/calendar/schedule", hb.Calendar.GetSchedule)
		adminGroup.PUT("/calendar/schedule", hb.Calendar.SetSchedule)
		adminGroup.POST("/calendar/closures", hb.Calendar.AddClosure)
		adminGroup.DELETE("/calendar/closures/:id", hb.Calendar.RemoveClosure)

		adminGroup.GET("/appointments", hb.Admin.ListAppointments)
		adminGroup.PATCH("/appointments/:id/status", hb.Admin.UpdateAppointmentStatus)
		adminGroup.PATCH("/appointments/:id/payment", hb.Admin.UpdateAppointmentPayment)
		adminGroup.DELETE("/appointments/:id", hb.Admin.DeleteAppointment)

		adminGroup.GET("/services", hb.Services.ListAllServices)
		adminGroup.POST("/services", hb.Services.CreateService)
		adminGroup.PUT("/services/:id", hb.Services.UpdateService)
		adminGroup.DELETE("/services/:id", hb.Services.DeleteService)

		adminGroup.GET("/reports/revenue", hb.Admin.RevenueReport)
	}
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
