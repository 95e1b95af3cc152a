package request

import (
	"flashbooth/internal/domain/booking"
)

// CreateBookingRequest carries the whole multi-step form. Fields are loose
// strings on purpose: validation happens in the domain steps so the client
// gets per-field messages instead of a single bind failure.
type CreateBookingRequest struct {
	ProductID       string  `json:"product_id"`
	EventDate       string  `json:"event_date"`
	EventTime       string  `json:"event_time"`
	Duration        int     `json:"duration"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Address         string  `json:"address"`
	EventType       string  `json:"event_type"`
	GuestsCount     *int32  `json:"guests_count,omitempty"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

func (r CreateBookingRequest) SelectionStep() booking.SelectionStep {
	return booking.SelectionStep{
		ProductID: r.ProductID,
		EventDate: r.EventDate,
		EventTime: r.EventTime,
	}
}

func (r CreateBookingRequest) ContactStep() booking.ContactStep {
	return booking.ContactStep{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		EventType: r.EventType,
	}
}

// ValidateAll merges both step validations; a form that passes here is safe
// to persist.
func (r CreateBookingRequest) ValidateAll() booking.FieldErrors {
	fieldErrs := r.SelectionStep().Validate()
	for field, msg := range r.ContactStep().Validate() {
		fieldErrs[field] = msg
	}
	return fieldErrs
}

// ValidateStepRequest checks a single form step so the frontend can gate
// navigation without submitting.
type ValidateStepRequest struct {
	Step string               `json:"step" binding:"required,oneof=selection contact"`
	Form CreateBookingRequest `json:"form"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateBookingPaymentRequest struct {
	DepositPaid     *bool    `json:"deposit_paid,omitempty"`
	FullPaymentPaid *bool    `json:"full_payment_paid,omitempty"`
	DepositAmount   *float64 `json:"deposit_amount,omitempty"`
	PaidAmount      *float64 `json:"paid_amount,omitempty"`
}

// QuoteRequest asks for the price of a duration against a product's base
// price without creating anything.
type QuoteRequest struct {
	ProductID string `form:"product_id" binding:"required,uuid"`
	Duration  int    `form:"duration" binding:"required"`
}
