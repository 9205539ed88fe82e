package bookings

import (
	"fmt"
	"regexp"
	"strings"

	"homeservice-backend/models"
)

var (
	emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	// Indian mobile: optional +91 prefix, optional leading 0 or 91,
	// then a digit 6-9 followed by nine digits.
	phoneRegex = regexp.MustCompile(`^(\+91[\-\s]?)?0?(91)?[6789]\d{9}$`)
)

// Contact is the single channel a booking can be reached on. Exactly one
// of email or phone backs it, selected by Method, so a booking can never
// carry both.
type Contact struct {
	Method string
	Value  string
}

// NewContact validates the contact details for the chosen method and
// returns the populated channel. Pure; email case is normalized by the
// storage step (Apply), not here.
//
// Methods other than email/phone pass through unvalidated; the HTTP
// boundary enforces the enum separately.
func NewContact(method, email, phone string) (Contact, error) {
	switch method {
	case models.ContactMethodEmail:
		email = strings.TrimSpace(email)
		if email == "" {
			return Contact{}, fmt.Errorf("%w: Email is required for email contact.", ErrInvalidContact)
		}
		if !emailRegex.MatchString(email) {
			return Contact{}, fmt.Errorf("%w: Please enter a valid email address.", ErrInvalidContact)
		}
		return Contact{Method: models.ContactMethodEmail, Value: email}, nil

	case models.ContactMethodPhone:
		phone = strings.TrimSpace(phone)
		if phone == "" {
			return Contact{}, fmt.Errorf("%w: Phone is required for phone contact.", ErrInvalidContact)
		}
		if !phoneRegex.MatchString(phone) {
			return Contact{}, fmt.Errorf("%w: Please enter a valid Indian phone number (10 digits, starting with 6-9).", ErrInvalidContact)
		}
		return Contact{Method: models.ContactMethodPhone, Value: phone}, nil
	}

	return Contact{Method: method}, nil
}

// Apply writes the contact onto a booking, clearing the other channel so
// the pairing invariant holds across method switches on update.
func (c Contact) Apply(b *models.Booking) {
	b.ContactMethod = c.Method
	switch c.Method {
	case models.ContactMethodEmail:
		b.Email = strings.ToLower(c.Value)
		b.Phone = ""
	case models.ContactMethodPhone:
		b.Phone = c.Value
		b.Email = ""
	}
}
