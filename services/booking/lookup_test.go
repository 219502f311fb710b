package booking

import (
	"context"
	"testing"

	"nailbar/models"
	"nailbar/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "07911123456", NormalizePhone("07911 123456"))
	assert.Equal(t, "447911123456", NormalizePhone("+44 7911-123456"))
	assert.Equal(t, "", NormalizePhone("none"))
}

func TestPhoneMatchForms(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  []string
	}{
		{
			"local number with spaces",
			"07911 123456",
			[]string{"07911123456", "07911 123456"},
		},
		{
			"international form gains a local variant",
			"+44 7911 123456",
			[]string{"447911123456", "+44 7911 123456", "0447911123456"},
		},
		{
			"already normalized",
			"07911123456",
			[]string{"07911123456"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PhoneMatchForms(tt.phone))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "amelia.stone@example.com", NormalizeEmail("  Amelia.Stone@Example.COM "))
}

func TestFindCustomerAppointmentsMatchesEitherIdentifier(t *testing.T) {
	byEmail := &models.Appointment{
		ID:            "by-email",
		CustomerEmail: "amelia.stone@example.com",
		CustomerPhone: "07000 000000",
		Date:          "2026-03-09",
	}
	byPhone := &models.Appointment{
		ID:            "by-phone",
		CustomerEmail: "someone.else@example.com",
		CustomerPhone: "07911 123456",
		Date:          "2026-03-10",
	}
	svc := &DefaultBookingService{Repo: newFakeApptRepo(byEmail, byPhone)}

	// Email lookup is case-insensitive.
	appts, err := svc.FindCustomerAppointments(context.Background(), "AMELIA.STONE@example.com", "")
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, "by-email", appts[0].ID)

	// Phone lookup tolerates the stored as-typed format.
	appts, err = svc.FindCustomerAppointments(context.Background(), "", "07911 123456")
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, "by-phone", appts[0].ID)
}

func TestFindCustomerAppointmentsRequiresAnIdentifier(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeApptRepo()}
	_, err := svc.FindCustomerAppointments(context.Background(), "", "")
	assert.True(t, utils.HasCode(err, utils.CodeValidation), "got %v", err)
}
