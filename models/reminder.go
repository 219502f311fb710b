package models

// ReminderPayload is the asynq task body for a scheduled appointment
// reminder email.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}
