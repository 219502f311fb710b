package booking

import (
	"testing"

	"nailbar/models"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart int
		aDur   int
		bStart int
		bDur   int
		want   bool
	}{
		{"identical windows", 600, 60, 600, 60, true},
		{"candidate inside existing", 615, 30, 600, 60, true},
		{"existing inside candidate", 600, 120, 630, 30, true},
		{"partial overlap at start", 570, 60, 600, 60, true},
		{"partial overlap at end", 630, 60, 600, 60, true},
		{"back to back, candidate after", 660, 60, 600, 60, false},
		{"back to back, candidate before", 540, 60, 600, 60, false},
		{"fully apart", 480, 30, 600, 60, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aDur, tt.bStart, tt.bDur))
		})
	}
}

func TestDurationOfDefaultsToAnHour(t *testing.T) {
	assert.Equal(t, 90, durationOf(models.Appointment{ServiceDuration: 90}))
	assert.Equal(t, DefaultAppointmentDuration, durationOf(models.Appointment{}))
}

func TestConflictsWithAnySkipsNothing(t *testing.T) {
	existing := []models.Appointment{
		{Start: 600, ServiceDuration: 60},
		{Start: 780, ServiceDuration: 30},
	}
	assert.True(t, conflictsWithAny(630, 30, existing))
	assert.True(t, conflictsWithAny(770, 15, existing))
	assert.False(t, conflictsWithAny(660, 120, existing))
	assert.False(t, conflictsWithAny(660, 30, nil))
}
