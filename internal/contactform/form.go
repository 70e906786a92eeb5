// Package contactform is the client half of the contact pipeline: it checks
// input locally, posts it to the API and reports the outcome in terms a form
// UI can render.
package contactform

import (
	"strings"

	"github.com/folio/backend/internal/validation"
)

// Form holds what the visitor typed.
type Form struct {
	Name    string
	Email   string
	Message string
}

// FieldErrors maps a field name to the message shown next to it.
type FieldErrors map[string]string

// Validate runs the cheap checks done before any network call.
func (f *Form) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Please enter your name."
	}
	email := strings.TrimSpace(f.Email)
	switch {
	case email == "":
		errs["email"] = "Please enter your email address."
	case !validation.IsEmail(email):
		errs["email"] = "Please enter a valid email address."
	}
	if strings.TrimSpace(f.Message) == "" {
		errs["message"] = "Please enter a message."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Reset clears every field.
func (f *Form) Reset() {
	*f = Form{}
}

func (f *Form) payload() map[string]string {
	return map[string]string{
		"name":    f.Name,
		"email":   f.Email,
		"message": f.Message,
	}
}
