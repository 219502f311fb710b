package booking

import (
	"context"
	"strings"

	"nailbar/models"
	"nailbar/utils"
)

// NormalizePhone strips everything but digits from a phone number.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PhoneMatchForms returns the variants a supplied phone number is compared
// under: digits-only, as typed, and digits-only with a leading zero for
// numbers entered without the UK local prefix.
func PhoneMatchForms(phone string) []string {
	normalized := NormalizePhone(phone)
	forms := []string{}
	seen := map[string]bool{}
	add := func(f string) {
		if f != "" && !seen[f] {
			seen[f] = true
			forms = append(forms, f)
		}
	}
	add(normalized)
	add(strings.TrimSpace(phone))
	if normalized != "" && !strings.HasPrefix(normalized, "0") {
		add("0" + normalized)
	}
	return forms
}

// NormalizeEmail lower-cases an email address. Applied on both storage and
// lookup so matching is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindCustomerAppointments looks up a customer's appointments by email or
// phone, tolerating phone format variance.
func (s *DefaultBookingService) FindCustomerAppointments(ctx context.Context, email, phone string) ([]models.Appointment, error) {
	email = NormalizeEmail(email)
	var phoneForms []string
	if phone != "" {
		phoneForms = PhoneMatchForms(phone)
	}
	if email == "" && len(phoneForms) == 0 {
		return nil, utils.NewValidationError("an email address or phone number is required")
	}

	appts, err := s.Repo.FindByCustomer(ctx, email, phoneForms)
	if err != nil {
		return nil, utils.NewStorageError(err)
	}
	return appts, nil
}
