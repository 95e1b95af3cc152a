package booking

import (
	"strings"

	"flashbooth/internal/pkg/validate"
)

// FieldErrors maps form field names to human-readable messages. An empty map
// means the step is valid and the client may advance.
type FieldErrors map[string]string

// SelectionStep is the first step of the booking form: which photobooth,
// which date, which time.
type SelectionStep struct {
	ProductID string
	EventDate string
	EventTime string
}

func (s SelectionStep) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(s.ProductID) == "" {
		errs["product"] = "Please select a photobooth"
	}
	if strings.TrimSpace(s.EventDate) == "" {
		errs["date"] = "Please select a date"
	}
	if strings.TrimSpace(s.EventTime) == "" {
		errs["time"] = "Please select a time"
	}
	return errs
}

// ContactStep is the second step: who is booking and where the event happens.
type ContactStep struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	EventType string
}

func (s ContactStep) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(s.FirstName) == "" {
		errs["firstName"] = "Please enter your first name"
	}
	if strings.TrimSpace(s.LastName) == "" {
		errs["lastName"] = "Please enter your last name"
	}
	if strings.TrimSpace(s.Email) == "" {
		errs["email"] = "Please enter your email"
	} else if validate.Email(s.Email) != nil {
		errs["email"] = "Please enter a valid email"
	}
	if strings.TrimSpace(s.Phone) == "" {
		errs["phone"] = "Please enter your phone number"
	} else if validate.Phone(s.Phone) != nil {
		errs["phone"] = "Please enter a valid phone number (10 digits)"
	}
	if strings.TrimSpace(s.Address) == "" {
		errs["address"] = "Please enter the event address"
	}
	if strings.TrimSpace(s.EventType) == "" {
		errs["eventType"] = "Please select an event type"
	}
	return errs
}
