package booking

import (
	"context"
	"sort"
	"sync"

	appointmentRepo "nailbar/database/repository/appointment"
	"nailbar/models"
	"nailbar/services/calendar"
)

// fakeApptRepo is an in-memory AppointmentRepository that mirrors the
// transactional conflict semantics of the Mongo implementation.
type fakeApptRepo struct {
	mu    sync.Mutex
	appts map[string]*models.Appointment
}

func newFakeApptRepo(seed ...*models.Appointment) *fakeApptRepo {
	repo := &fakeApptRepo{appts: make(map[string]*models.Appointment)}
	for _, a := range seed {
		cp := *a
		repo.appts[a.ID] = &cp
	}
	return repo
}

func (r *fakeApptRepo) FindByID(_ context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	cp := *appt
	return &cp, nil
}

func (r *fakeApptRepo) FindActiveByDate(_ context.Context, date string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if a.Date == date && a.Status != models.StatusCancelled {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}

func (r *fakeApptRepo) FindByCustomer(_ context.Context, email string, phoneForms []string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if email != "" && a.CustomerEmail == email {
			out = append(out, *a)
			continue
		}
		for _, p := range phoneForms {
			if a.CustomerPhone == p {
				out = append(out, *a)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeApptRepo) FindByRange(_ context.Context, from, to, status string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if from != "" && a.Date < from {
			continue
		}
		if to != "" && a.Date > to {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeApptRepo) conflicts(candidate *models.Appointment, excludeID string) bool {
	for _, a := range r.appts {
		if a.ID == excludeID || a.Status == models.StatusCancelled || a.Date != candidate.Date {
			continue
		}
		if Overlaps(candidate.Start, candidate.ServiceDuration, a.Start, durationOf(*a)) {
			return true
		}
	}
	return false
}

func (r *fakeApptRepo) InsertIfSlotFree(_ context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conflicts(appt, "") {
		return appointmentRepo.ErrSlotTaken
	}
	cp := *appt
	r.appts[appt.ID] = &cp
	return nil
}

func (r *fakeApptRepo) CancelAndReplace(_ context.Context, originalID, reason string, replacement *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	original, ok := r.appts[originalID]
	if !ok {
		return appointmentRepo.ErrNotFound
	}
	if r.conflicts(replacement, originalID) {
		return appointmentRepo.ErrSlotTaken
	}
	original.Status = models.StatusCancelled
	original.PaymentStatus = models.PaymentCancelled
	original.CancellationReason = reason
	cp := *replacement
	r.appts[replacement.ID] = &cp
	return nil
}

func (r *fakeApptRepo) UpdateFields(_ context.Context, id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.appts[id]
	if !ok {
		return appointmentRepo.ErrNotFound
	}
	for k, v := range fields {
		s, _ := v.(string)
		switch k {
		case "status":
			appt.Status = s
		case "paymentStatus":
			appt.PaymentStatus = s
		case "cancellationReason":
			appt.CancellationReason = s
		}
	}
	return nil
}

func (r *fakeApptRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appts[id]; !ok {
		return appointmentRepo.ErrNotFound
	}
	delete(r.appts, id)
	return nil
}

func (r *fakeApptRepo) MonthlyRevenue(context.Context, int) ([]models.MonthRevenue, error) {
	return nil, nil
}

func (r *fakeApptRepo) EnsureIndexes(context.Context) error { return nil }

// fakeCalendar answers IsOpen from a fixed window and a closed-date set.
type fakeCalendar struct {
	window      calendar.Window
	closedDates map[string]bool
}

func newFakeCalendar(open, close string, closedDates ...string) *fakeCalendar {
	closed := make(map[string]bool)
	for _, d := range closedDates {
		closed[d] = true
	}
	return &fakeCalendar{
		window:      calendar.Window{OpenTime: open, CloseTime: close},
		closedDates: closed,
	}
}

func (c *fakeCalendar) GetSchedule(context.Context) ([]models.DaySchedule, error) { return nil, nil }
func (c *fakeCalendar) SetSchedule(context.Context, []models.DaySchedule) error   { return nil }
func (c *fakeCalendar) ListClosures(context.Context) ([]models.ClosureDate, error) {
	return nil, nil
}
func (c *fakeCalendar) AddClosureDate(context.Context, string, string) (*models.ClosureDate, error) {
	return nil, nil
}
func (c *fakeCalendar) RemoveClosureDate(context.Context, string) error { return nil }

func (c *fakeCalendar) IsOpen(_ context.Context, date string) (bool, *calendar.Window, error) {
	if c.closedDates[date] {
		return false, nil, nil
	}
	w := c.window
	return true, &w, nil
}

// fakeNotifier records which notifications were sent.
type fakeNotifier struct {
	confirmations []string
	cancellations []string
	changes       []string
	adminNotices  []string
	reminders     []string
}

func (n *fakeNotifier) SendBookingConfirmation(_ context.Context, appt *models.Appointment) error {
	n.confirmations = append(n.confirmations, appt.ID)
	return nil
}

func (n *fakeNotifier) SendAdminNotification(_ context.Context, appt *models.Appointment) error {
	n.adminNotices = append(n.adminNotices, appt.ID)
	return nil
}

func (n *fakeNotifier) SendCancellationNotice(_ context.Context, appt *models.Appointment) error {
	n.cancellations = append(n.cancellations, appt.ID)
	return nil
}

func (n *fakeNotifier) SendChangeConfirmation(_ context.Context, newAppt, _ *models.Appointment) error {
	n.changes = append(n.changes, newAppt.ID)
	return nil
}

func (n *fakeNotifier) SendReminder(_ context.Context, appt *models.Appointment) error {
	n.reminders = append(n.reminders, appt.ID)
	return nil
}

// fakeReminders records scheduled reminder appointments.
type fakeReminders struct {
	scheduled []string
}

func (r *fakeReminders) Schedule(_ context.Context, appt *models.Appointment) error {
	r.scheduled = append(r.scheduled, appt.ID)
	return nil
}
