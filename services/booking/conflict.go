package booking

import "nailbar/models"

// DefaultAppointmentDuration is the conflict width, in minutes, assumed
// for an existing appointment whose duration was never recorded.
const DefaultAppointmentDuration = 60

// Overlaps reports whether the half-open intervals [aStart, aStart+aDur)
// and [bStart, bStart+bDur) intersect. Times are minutes from midnight on
// the same date; appointments never span midnight.
func Overlaps(aStart, aDur, bStart, bDur int) bool {
	return aStart < bStart+bDur && bStart < aStart+aDur
}

// durationOf returns an appointment's conflict width in minutes.
func durationOf(appt models.Appointment) int {
	if appt.ServiceDuration > 0 {
		return appt.ServiceDuration
	}
	return DefaultAppointmentDuration
}

// conflictsWithAny checks a candidate window against every existing
// appointment on the same date.
func conflictsWithAny(start, duration int, existing []models.Appointment) bool {
	for _, appt := range existing {
		if Overlaps(start, duration, appt.Start, durationOf(appt)) {
			return true
		}
	}
	return false
}
