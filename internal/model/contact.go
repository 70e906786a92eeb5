package model

import "time"

// ContactMessage represents a message submitted via the contact form.
// ID and CreatedAt are assigned by the store on insert and never change.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactInput is a validated, trimmed submission ready to be stored.
// Only validation.ParseContact should construct one from request data.
type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email,email_tld"`
	Message string `json:"message" validate:"required"`
}
