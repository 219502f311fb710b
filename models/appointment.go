package models

import "time"

// Appointment status values. Completed and cancelled are terminal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Payment status values, tracked independently of the appointment status.
const (
	PaymentPending   = "pending"
	PaymentPaid      = "paid"
	PaymentRefunded  = "refunded"
	PaymentCancelled = "cancelled"
)

// Accepted payment methods.
const (
	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"
)

// Appointment is the central booking record. Date is "YYYY-MM-DD" and Time
// is the "HH:MM" start of the booked window. Start and End carry the same
// window as minutes from midnight for overlap queries.
type Appointment struct {
	ID                    string    `bson:"id" json:"id"`
	CustomerName          string    `bson:"customerName" json:"customerName"`
	CustomerEmail         string    `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone         string    `bson:"customerPhone" json:"customerPhone"`
	ServiceName           string    `bson:"serviceName" json:"serviceName"`
	ServicePrice          float64   `bson:"servicePrice" json:"servicePrice"`
	ServiceDuration       int       `bson:"serviceDuration,omitempty" json:"serviceDuration,omitempty"`
	Date                  string    `bson:"date" json:"date"`
	Time                  string    `bson:"time" json:"time"`
	EndTime               string    `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Start                 int       `bson:"start" json:"start"`
	End                   int       `bson:"end" json:"end"`
	Status                string    `bson:"status" json:"status"`
	PaymentStatus         string    `bson:"paymentStatus" json:"paymentStatus"`
	PaymentMethod         string    `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	PaymentIntentID       string    `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	CancellationReason    string    `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	OriginalAppointmentID string    `bson:"originalAppointmentId,omitempty" json:"originalAppointmentId,omitempty"`
	CreatedAt             time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time `bson:"updatedAt" json:"updatedAt"`
}

// MonthRevenue is one row of the monthly revenue report.
type MonthRevenue struct {
	Month        string  `bson:"_id" json:"month"`
	Total        float64 `bson:"total" json:"total"`
	Appointments int     `bson:"count" json:"appointments"`
}
