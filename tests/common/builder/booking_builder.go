//go:build unit || integration

package builder

import (
	"time"

	reqdto "flashbooth/internal/handler/dto/request"
	"flashbooth/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingFormBuilder produces a complete, valid booking form; tests break
// individual fields from there.
type BookingFormBuilder struct {
	ProductID string
	EventDate string
	EventTime string
	Duration  int
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	EventType string
}

func NewBookingFormBuilder() *BookingFormBuilder {
	return &BookingFormBuilder{
		ProductID: uuid.NewString(),
		EventDate: time.Now().AddDate(0, 1, 0).Format(time.DateOnly),
		EventTime: "18:00",
		Duration:  4,
		FirstName: "Marie",
		LastName:  "Dupont",
		Email:     "marie.dupont@example.com",
		Phone:     "06 12 34 56 78",
		Address:   "12 rue de la Paix, 75002 Paris",
		EventType: "wedding",
	}
}

func (b *BookingFormBuilder) With(mutate func(*BookingFormBuilder)) *BookingFormBuilder {
	mutate(b)
	return b
}

func (b *BookingFormBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ProductID: b.ProductID,
		EventDate: b.EventDate,
		EventTime: b.EventTime,
		Duration:  b.Duration,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Email:     b.Email,
		Phone:     b.Phone,
		Address:   b.Address,
		EventType: b.EventType,
	}
}

func (b *BookingFormBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		CustomerName:  b.FirstName + " " + b.LastName,
		CustomerEmail: b.Email,
		CustomerPhone: b.Phone,
		ProductID:     uuid.MustParse(b.ProductID),
		ProductName:   "Classic Booth",
		EventDate:     b.EventDate,
		EventTime:     b.EventTime,
		Duration:      b.Duration,
		Address:       b.Address,
		EventType:     b.EventType,
		TotalPrice:    650,
		Status:        "pending",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}
