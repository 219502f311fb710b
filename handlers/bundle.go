package handlers

// HandlerBundle groups the endpoint handlers for route registration.
type HandlerBundle struct {
	Booking  *BookingHandler
	Calendar *CalendarHandler
	Services *ServiceHandler
	Admin    *AdminHandler
	Payments *PaymentHandler
}
