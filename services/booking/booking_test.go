package booking

import (
	"context"
	"testing"
	"time"

	"nailbar/models"
	"nailbar/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateAppointmentRequest {
	return CreateAppointmentRequest{
		CustomerName:    "Amelia Stone",
		CustomerEmail:   "Amelia.Stone@Example.com",
		CustomerPhone:   "07911 123456",
		ServiceName:     "Gel Manicure",
		ServicePrice:    35,
		ServiceDuration: 60,
		Date:            "2026-03-09",
		Time:            "10:00",
		PaymentMethod:   models.PaymentMethodCash,
	}
}

func TestCreateAppointmentBooksPendingSlot(t *testing.T) {
	repo := newFakeApptRepo()
	notifier := &fakeNotifier{}
	reminders := &fakeReminders{}
	svc := &DefaultBookingService{
		Repo:      repo,
		Calendar:  newFakeCalendar("09:00", "17:00"),
		Notifier:  notifier,
		Reminders: reminders,
		Now:       func() time.Time { return fixedNow },
	}

	appt, err := svc.CreateAppointment(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, models.StatusPending, appt.Status)
	assert.Equal(t, models.PaymentPending, appt.PaymentStatus)
	assert.Equal(t, "amelia.stone@example.com", appt.CustomerEmail)
	assert.Equal(t, 600, appt.Start)
	assert.Equal(t, 660, appt.End)
	assert.Equal(t, "11:00", appt.EndTime)

	assert.Equal(t, []string{appt.ID}, notifier.confirmations)
	assert.Equal(t, []string{appt.ID}, notifier.adminNotices)
	assert.Equal(t, []string{appt.ID}, reminders.scheduled)

	stored, err := repo.FindByID(context.Background(), appt.ID)
	require.NoError(t, err)
	assert.Equal(t, appt.ID, stored.ID)
}

func TestCreateAppointmentRejectsTakenSlot(t *testing.T) {
	existing := &models.Appointment{
		ID:              "existing",
		Date:            "2026-03-09",
		Time:            "10:30",
		Start:           630,
		ServiceDuration: 60,
		Status:          models.StatusPending,
	}
	svc := &DefaultBookingService{
		Repo:     newFakeApptRepo(existing),
		Calendar: newFakeCalendar("09:00", "17:00"),
		Now:      func() time.Time { return fixedNow },
	}

	_, err := svc.CreateAppointment(context.Background(), validCreateRequest())
	assert.True(t, utils.HasCode(err, utils.CodeConflict), "overlapping booking must be rejected, got %v", err)
}

func TestCreateAppointmentValidation(t *testing.T) {
	svc := &DefaultBookingService{
		Repo:     newFakeApptRepo(),
		Calendar: newFakeCalendar("09:00", "17:00", "2026-03-16"),
		Now:      func() time.Time { return fixedNow },
	}

	tests := []struct {
		name   string
		mutate func(*CreateAppointmentRequest)
	}{
		{"zero duration", func(r *CreateAppointmentRequest) { r.ServiceDuration = 0 }},
		{"unknown payment method", func(r *CreateAppointmentRequest) { r.PaymentMethod = "crypto" }},
		{"malformed time", func(r *CreateAppointmentRequest) { r.Time = "10am" }},
		{"malformed date", func(r *CreateAppointmentRequest) { r.Date = "09/03/2026" }},
		{"in the past", func(r *CreateAppointmentRequest) { r.Date = "2026-03-01" }},
		{"closed day", func(r *CreateAppointmentRequest) { r.Date = "2026-03-16" }},
		{"before opening", func(r *CreateAppointmentRequest) { r.Time = "08:00" }},
		{"after closing", func(r *CreateAppointmentRequest) { r.Time = "17:30" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			_, err := svc.CreateAppointment(context.Background(), req)
			assert.True(t, utils.HasCode(err, utils.CodeValidation), "got %v", err)
		})
	}
}
