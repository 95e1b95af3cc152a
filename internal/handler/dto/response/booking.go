package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"flashbooth/internal/domain/booking"
	"flashbooth/internal/usecase/queries"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	CustomerID      uuid.UUID `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	ProductID       uuid.UUID `json:"product_id"`
	ProductName     string    `json:"product_name"`
	EventDate       string    `json:"event_date"`
	EventTime       string    `json:"event_time"`
	Duration        int       `json:"duration"`
	Address         string    `json:"address"`
	EventType       string    `json:"event_type"`
	GuestsCount     *int32    `json:"guests_count,omitempty"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
	TotalPrice      int32     `json:"total_price"`
	Status          string    `json:"status"`
	DepositPaid     bool      `json:"deposit_paid"`
	FullPaymentPaid bool      `json:"full_payment_paid"`
	DepositAmount   float64   `json:"deposit_amount"`
	PaidAmount      float64   `json:"paid_amount"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

// ValidationErrorResponse carries per-field messages for an invalid form step.
type ValidationErrorResponse struct {
	Valid  bool                `json:"valid"`
	Errors booking.FieldErrors `json:"errors"`
}

type QuoteResponse struct {
	ProductID  uuid.UUID `json:"product_id"`
	Duration   int       `json:"duration"`
	TotalPrice int32     `json:"total_price"`
}
