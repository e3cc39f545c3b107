package page

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

var (
	ErrMissingField = errors.New("missing field")
	ErrInvalidEmail = errors.New("invalid email address")
)

// SubmitMessage is shown after a contact form was sent.
const SubmitMessage = "Message sent successfully! 🚀"

// ContactForm holds the fields of the contact section.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Validate checks that every field is filled in and that Email is a bare
// address.
func (f ContactForm) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", f.Name},
		{"email", f.Email},
		{"subject", f.Subject},
		{"message", f.Message},
	}
	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field.name)
		}
	}

	email := strings.TrimSpace(f.Email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, f.Email)
	}
	return nil
}

// Reset clears every field.
func (f *ContactForm) Reset() {
	*f = ContactForm{}
}
