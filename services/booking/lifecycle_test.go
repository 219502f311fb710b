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

func seedAppointment(status, paymentStatus string) *models.Appointment {
	return &models.Appointment{
		ID:              "appt-1",
		CustomerName:    "Amelia Stone",
		CustomerEmail:   "amelia.stone@example.com",
		Date:            "2026-03-09",
		Time:            "10:00",
		Start:           600,
		End:             660,
		ServiceDuration: 60,
		Status:          status,
		PaymentStatus:   paymentStatus,
	}
}

func newLifecycleService(repo *fakeApptRepo, notifier *fakeNotifier) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:     repo,
		Notifier: notifier,
		Now:      func() time.Time { return fixedNow },
	}
}

func TestCancelAppointmentForcesPaymentCancelled(t *testing.T) {
	repo := newFakeApptRepo(seedAppointment(models.StatusConfirmed, models.PaymentPaid))
	notifier := &fakeNotifier{}
	svc := newLifecycleService(repo, notifier)

	appt, err := svc.CancelAppointment(context.Background(), "appt-1", Actor{Email: "amelia.stone@example.com"})
	require.NoError(t, err)

	assert.Equal(t, models.StatusCancelled, appt.Status)
	assert.Equal(t, models.PaymentCancelled, appt.PaymentStatus)
	assert.Equal(t, []string{"appt-1"}, notifier.cancellations)

	stored, err := repo.FindByID(context.Background(), "appt-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, stored.Status)
	assert.Equal(t, models.PaymentCancelled, stored.PaymentStatus)
}

func TestCancelAppointmentGuards(t *testing.T) {
	tests := []struct {
		name  string
		appt  *models.Appointment
		actor Actor
		code  string
	}{
		{
			"already cancelled",
			seedAppointment(models.StatusCancelled, models.PaymentCancelled),
			Actor{Admin: true},
			utils.CodeInvalidState,
		},
		{
			"customer cannot cancel completed",
			seedAppointment(models.StatusCompleted, models.PaymentPaid),
			Actor{},
			utils.CodeInvalidState,
		},
		{
			"customer cannot cancel a past appointment",
			func() *models.Appointment {
				a := seedAppointment(models.StatusConfirmed, models.PaymentPaid)
				a.Date = "2026-02-23"
				return a
			}(),
			Actor{},
			utils.CodeInvalidState,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newLifecycleService(newFakeApptRepo(tt.appt), &fakeNotifier{})
			_, err := svc.CancelAppointment(context.Background(), tt.appt.ID, tt.actor)
			assert.True(t, utils.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestAdminCanCancelPastAppointment(t *testing.T) {
	appt := seedAppointment(models.StatusConfirmed, models.PaymentPending)
	appt.Date = "2026-02-23"
	svc := newLifecycleService(newFakeApptRepo(appt), &fakeNotifier{})

	cancelled, err := svc.CancelAppointment(context.Background(), "appt-1", Actor{Admin: true})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		to        string
		wantErr   string
		wantState string
	}{
		{"pending to confirmed", models.StatusPending, models.StatusConfirmed, "", models.StatusConfirmed},
		{"pending to completed", models.StatusPending, models.StatusCompleted, "", models.StatusCompleted},
		{"confirmed to completed", models.StatusConfirmed, models.StatusCompleted, "", models.StatusCompleted},
		{"confirmed cannot re-confirm", models.StatusConfirmed, models.StatusConfirmed, utils.CodeInvalidState, ""},
		{"completed is terminal", models.StatusCompleted, models.StatusConfirmed, utils.CodeInvalidState, ""},
		{"cancelled is terminal", models.StatusCancelled, models.StatusConfirmed, utils.CodeInvalidState, ""},
		{"unknown status", models.StatusPending, "paused", utils.CodeValidation, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeApptRepo(seedAppointment(tt.from, models.PaymentPending))
			svc := newLifecycleService(repo, &fakeNotifier{})

			appt, err := svc.UpdateStatus(context.Background(), "appt-1", tt.to)
			if tt.wantErr != "" {
				assert.True(t, utils.HasCode(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantState, appt.Status)
		})
	}
}

func TestUpdateStatusCancelledRoutesThroughCancel(t *testing.T) {
	repo := newFakeApptRepo(seedAppointment(models.StatusConfirmed, models.PaymentPaid))
	notifier := &fakeNotifier{}
	svc := newLifecycleService(repo, notifier)

	appt, err := svc.UpdateStatus(context.Background(), "appt-1", models.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, appt.Status)
	assert.Equal(t, models.PaymentCancelled, appt.PaymentStatus)
	assert.Equal(t, []string{"appt-1"}, notifier.cancellations)
}

func TestUpdatePaymentStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		payment string
		to      string
		wantErr string
	}{
		{"pending to paid", models.StatusConfirmed, models.PaymentPending, models.PaymentPaid, ""},
		{"paid to refunded", models.StatusConfirmed, models.PaymentPaid, models.PaymentRefunded, ""},
		{"cannot refund unpaid", models.StatusConfirmed, models.PaymentPending, models.PaymentRefunded, utils.CodeInvalidState},
		{"cannot re-pay", models.StatusConfirmed, models.PaymentPaid, models.PaymentPaid, utils.CodeInvalidState},
		{"frozen when cancelled", models.StatusCancelled, models.PaymentCancelled, models.PaymentPaid, utils.CodeInvalidState},
		{"unknown payment status", models.StatusConfirmed, models.PaymentPending, "waived", utils.CodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeApptRepo(seedAppointment(tt.status, tt.payment))
			svc := newLifecycleService(repo, &fakeNotifier{})

			appt, err := svc.UpdatePaymentStatus(context.Background(), "appt-1", tt.to)
			if tt.wantErr != "" {
				assert.True(t, utils.HasCode(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, appt.PaymentStatus)
		})
	}
}

func TestLifecycleUnknownAppointment(t *testing.T) {
	svc := newLifecycleService(newFakeApptRepo(), &fakeNotifier{})

	_, err := svc.CancelAppointment(context.Background(), "missing", Actor{Admin: true})
	assert.True(t, utils.HasCode(err, utils.CodeNotFound))

	_, err = svc.UpdateStatus(context.Background(), "missing", models.StatusConfirmed)
	assert.True(t, utils.HasCode(err, utils.CodeNotFound))

	_, err = svc.UpdatePaymentStatus(context.Background(), "missing", models.PaymentPaid)
	assert.True(t, utils.HasCode(err, utils.CodeNotFound))
}
