package models

// SessionItem is one catalogue selection inside a checkout session.
// Quantity only applies to extras; main services are always quantity 1.
type SessionItem struct {
	ServiceID string `json:"serviceId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// BookingSession holds a customer's checkout state while they pick a slot.
// Cached in Redis for a short TTL, never persisted.
type BookingSession struct {
	SessionID     string        `json:"sessionId"`
	Items         []SessionItem `json:"items"`
	ServiceName   string        `json:"serviceName"`
	TotalPrice    float64       `json:"totalPrice"`
	TotalDuration int           `json:"totalDuration"`
	Date          string        `json:"date,omitempty"`
	Time          string        `json:"time,omitempty"`
}
