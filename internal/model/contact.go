package model

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout is the short month/day/year form shown on stored messages.
const DateLayout = "1/2/2006"

// ContactRecord represents a message submitted via the contact form.
// JSON field names match the snapshot written by earlier versions of the page.
type ContactRecord struct {
	ID        int64  `json:"id"        yaml:"id"`
	Name      string `json:"name"      yaml:"name"`
	Email     string `json:"email"     yaml:"email"`
	Phone     string `json:"phone"     yaml:"phone"`
	Message   string `json:"message"   yaml:"message"`
	Date      string `json:"date"      yaml:"date"`
	EmailSent bool   `json:"emailSent" yaml:"emailSent"`
}

// Fields returns the four user-editable fields of the record.
func (c ContactRecord) Fields() ContactFields {
	return ContactFields{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Message: c.Message,
	}
}

// ContactFields carries the text inputs of the contact form.
type ContactFields struct {
	Name    string `json:"name"    yaml:"name"`
	Email   string `json:"email"   yaml:"email"`
	Phone   string `json:"phone"   yaml:"phone"`
	Message string `json:"message" yaml:"message"`
}

// IsZero reports whether every field is empty.
func (f ContactFields) IsZero() bool {
	return f == ContactFields{}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the fields in form order and returns a *ValidationError
// describing the first failure, or nil.
func (f ContactFields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &ValidationError{Field: "name", Message: "Please enter a name"}
	}
	if strings.TrimSpace(f.Email) == "" || !emailPattern.MatchString(f.Email) {
		return &ValidationError{Field: "email", Message: "Please enter a valid email"}
	}
	if strings.TrimSpace(f.Phone) == "" {
		return &ValidationError{Field: "phone", Message: "Please enter a phone number"}
	}
	if strings.TrimSpace(f.Message) == "" {
		return &ValidationError{Field: "message", Message: "Please enter a message"}
	}
	return nil
}

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidationError is returned when a submitted field is missing or malformed.
// Message is meant to be shown to the user as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Message
}
