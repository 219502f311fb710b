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

func newChangeService(repo *fakeApptRepo) (*DefaultBookingService, *fakeNotifier, *fakeReminders) {
	notifier := &fakeNotifier{}
	reminders := &fakeReminders{}
	svc := &DefaultBookingService{
		Repo:      repo,
		Calendar:  newFakeCalendar("09:00", "17:00"),
		Notifier:  notifier,
		Reminders: reminders,
		Now:       func() time.Time { return fixedNow },
	}
	return svc, notifier, reminders
}

func TestChangeAppointmentCancelsAndLinksReplacement(t *testing.T) {
	original := seedAppointment(models.StatusConfirmed, models.PaymentPaid)
	original.PaymentMethod = models.PaymentMethodBankTransfer
	repo := newFakeApptRepo(original)
	svc, notifier, reminders := newChangeService(repo)

	result, err := svc.ChangeAppointment(context.Background(), "appt-1", ChangeAppointmentRequest{
		NewDate: "2026-03-12",
		NewTime: "14:00",
	})
	require.NoError(t, err)

	newAppt := result.NewAppointment
	assert.NotEqual(t, "appt-1", newAppt.ID)
	assert.Equal(t, "appt-1", newAppt.OriginalAppointmentID)
	assert.Equal(t, "2026-03-12", newAppt.Date)
	assert.Equal(t, "14:00", newAppt.Time)
	assert.Equal(t, models.StatusPending, newAppt.Status)
	// The replacement keeps the pre-cancellation payment state and method.
	assert.Equal(t, models.PaymentPaid, newAppt.PaymentStatus)
	assert.Equal(t, models.PaymentMethodBankTransfer, newAppt.PaymentMethod)
	assert.Equal(t, original.CustomerEmail, newAppt.CustomerEmail)
	assert.Equal(t, 60, newAppt.ServiceDuration)

	assert.Equal(t, models.StatusCancelled, result.OriginalAppointment.Status)
	assert.Equal(t, models.PaymentCancelled, result.OriginalAppointment.PaymentStatus)
	assert.Equal(t, "Changed to new appointment", result.OriginalAppointment.CancellationReason)

	stored, err := repo.FindByID(context.Background(), "appt-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, stored.Status)

	assert.Equal(t, []string{newAppt.ID}, notifier.changes)
	assert.Equal(t, []string{newAppt.ID}, reminders.scheduled)
}

func TestChangeAppointmentHonours48HourWindow(t *testing.T) {
	// fixedNow is Monday 2026-03-02 08:00; an appointment on the 3rd at
	// 10:00 is inside the window, one on the 5th is outside it.
	tooClose := seedAppointment(models.StatusConfirmed, models.PaymentPending)
	tooClose.Date = "2026-03-03"
	svc, _, _ := newChangeService(newFakeApptRepo(tooClose))

	_, err := svc.ChangeAppointment(context.Background(), "appt-1", ChangeAppointmentRequest{
		NewDate: "2026-03-12",
		NewTime: "14:00",
	})
	require.Error(t, err)
	assert.True(t, utils.HasCode(err, utils.CodePolicyViolation), "got %v", err)
	assert.Contains(t, err.Error(), "48 hours")

	farEnough := seedAppointment(models.StatusConfirmed, models.PaymentPending)
	farEnough.Date = "2026-03-05"
	svc, _, _ = newChangeService(newFakeApptRepo(farEnough))

	_, err = svc.ChangeAppointment(context.Background(), "appt-1", ChangeAppointmentRequest{
		NewDate: "2026-03-12",
		NewTime: "14:00",
	})
	assert.NoError(t, err)
}

func TestChangeAppointmentPolicyUsesOriginalTime(t *testing.T) {
	// Moving an appointment into the near future is allowed as long as the
	// ORIGINAL start is more than 48 hours away.
	original := seedAppointment(models.StatusConfirmed, models.PaymentPending)
	original.Date = "2026-03-09"
	svc, _, _ := newChangeService(newFakeApptRepo(original))

	result, err := svc.ChangeAppointment(context.Background(), "appt-1", ChangeAppointmentRequest{
		NewDate: "2026-03-03",
		NewTime: "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-03", result.NewAppointment.Date)
}

func TestChangeAppointmentRejectsTerminalStates(t *testing.T) {
	for _, status := range []string{models.StatusCancelled, models.StatusCompleted} {
		t.Run(status, func(t *testing.T) {
			appt := seedAppointment(status, models.PaymentPending)
			svc, _, _ := newChangeService(newFakeApptRepo(appt))

			_, err := svc.ChangeAppointment(context.Background(), "appt-1", ChangeAppointmentRequest{
				NewDate: "2026-03-12",
				NewTime: "14:00",
			})
			assert.True(t, utils.HasCode(err, utils.CodeInvalidState), "got %v", err)
		})
	}
}

func TestChangeAppointmentRejectsTakenTarget(t *testing.T) {
	original := seedAppointment(models.StatusConfirmed, models.PaymentPending)
	blocker := &models.Appointment{
		ID:              "blocker",
		Date:            "2026-03-12",
		Time:            "14:00",
		Start:           840,
		ServiceDuration: 60,
		Status:          models.StatusConfirmed,
	}
	svc, _, _ := newChangeService(newFakeApptRepo(original, blocker))

	_, err := svc.ChangeAppointment(context.Background(), "appt-1", ChangeAppointmentRequest{
		NewDate: "2026-03-12",
		NewTime: "14:30",
	})
	assert.True(t, utils.HasCode(err, utils.CodeConflict), "got %v", err)
}

func TestChangeAppointmentCanMoveWithinSameDay(t *testing.T) {
	// The replacement must not conflict with the original it supersedes.
	original := seedAppointment(models.StatusConfirmed, models.PaymentPending)
	svc, _, _ := newChangeService(newFakeApptRepo(original))

	result, err := svc.ChangeAppointment(context.Background(), "appt-1", ChangeAppointmentRequest{
		NewDate: "2026-03-09",
		NewTime: "10:30",
	})
	require.NoError(t, err)
	assert.Equal(t, "10:30", result.NewAppointment.Time)
}

func TestChangeAppointmentOverrides(t *testing.T) {
	original := seedAppointment(models.StatusConfirmed, models.PaymentPending)
	svc, _, _ := newChangeService(newFakeApptRepo(original))

	result, err := svc.ChangeAppointment(context.Background(), "appt-1", ChangeAppointmentRequest{
		NewDate:         "2026-03-12",
		NewTime:         "14:00",
		NewEndTime:      "15:30",
		NewServiceName:  "Luxury Pedicure",
		NewServicePrice: 55,
	})
	require.NoError(t, err)

	newAppt := result.NewAppointment
	assert.Equal(t, 90, newAppt.ServiceDuration)
	assert.Equal(t, "15:30", newAppt.EndTime)
	assert.Equal(t, "Luxury Pedicure", newAppt.ServiceName)
	assert.Equal(t, 55.0, newAppt.ServicePrice)
}

func TestChangeAppointmentUnknownID(t *testing.T) {
	svc, _, _ := newChangeService(newFakeApptRepo())
	_, err := svc.ChangeAppointment(context.Background(), "missing", ChangeAppointmentRequest{
		NewDate: "2026-03-12",
		NewTime: "14:00",
	})
	assert.True(t, utils.HasCode(err, utils.CodeNotFound), "got %v", err)
}
