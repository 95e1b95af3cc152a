package booking

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrInvalidDuration   = errors.New("invalid rental duration")
	ErrInvalidEventDate  = errors.New("invalid event date")
	ErrInvalidEventTime  = errors.New("invalid event time")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
)

var eventTimeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type Booking struct {
	id              uuid.UUID
	customerID      uuid.UUID
	productID       uuid.UUID
	eventDate       time.Time
	eventTime       string
	duration        Duration
	address         string
	eventType       string
	guestsCount     *int32
	specialRequests *string
	totalPrice      int32
	status          Status
	depositPaid     bool
	fullPaymentPaid bool
	depositAmount   float64
	paidAmount      float64
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBooking builds a submission-time booking: status pending, nothing paid.
// basePrice is the selected product's 4-hour price; the total is derived here
// so the stored price always matches the quote shown to the customer.
func NewBooking(
	customerID, productID uuid.UUID,
	eventDate time.Time,
	eventTime string,
	duration Duration,
	address, eventType string,
	guestsCount *int32,
	specialRequests *string,
	basePrice float64,
) (*Booking, error) {
	if !duration.IsValid() {
		return nil, ErrInvalidDuration
	}
	if eventDate.IsZero() {
		return nil, ErrInvalidEventDate
	}
	if !eventTimeRe.MatchString(eventTime) {
		return nil, ErrInvalidEventTime
	}

	return &Booking{
		id:              uuid.New(),
		customerID:      customerID,
		productID:       productID,
		eventDate:       eventDate,
		eventTime:       eventTime,
		duration:        duration,
		address:         address,
		eventType:       eventType,
		guestsCount:     guestsCount,
		specialRequests: specialRequests,
		totalPrice:      Quote(basePrice, duration),
		status:          StatusPending,
		depositPaid:     false,
		fullPaymentPaid: false,
	}, nil
}

func ReconstructBooking(
	id, customerID, productID uuid.UUID,
	eventDate time.Time,
	eventTime string,
	duration Duration,
	address, eventType string,
	guestsCount *int32,
	specialRequests *string,
	totalPrice int32,
	status Status,
	depositPaid, fullPaymentPaid bool,
	depositAmount, paidAmount float64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		customerID:      customerID,
		productID:       productID,
		eventDate:       eventDate,
		eventTime:       eventTime,
		duration:        duration,
		address:         address,
		eventType:       eventType,
		guestsCount:     guestsCount,
		specialRequests: specialRequests,
		totalPrice:      totalPrice,
		status:          status,
		depositPaid:     depositPaid,
		fullPaymentPaid: fullPaymentPaid,
		depositAmount:   depositAmount,
		paidAmount:      paidAmount,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// TransitionTo moves the booking along the allowed status graph.
func (b *Booking) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

func (b *Booking) SetDepositPaid(paid bool)     { b.depositPaid = paid }
func (b *Booking) SetFullPaymentPaid(paid bool) { b.fullPaymentPaid = paid }

func (b *Booking) SetDepositAmount(amount float64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	b.depositAmount = amount
	return nil
}

func (b *Booking) SetPaidAmount(amount float64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	b.paidAmount = amount
	return nil
}

func (b *Booking) IsTerminal() bool {
	return b.status == StatusCompleted || b.status == StatusCancelled
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) CustomerID() uuid.UUID    { return b.customerID }
func (b *Booking) ProductID() uuid.UUID     { return b.productID }
func (b *Booking) EventDate() time.Time     { return b.eventDate }
func (b *Booking) EventTime() string        { return b.eventTime }
func (b *Booking) Duration() Duration       { return b.duration }
func (b *Booking) Address() string          { return b.address }
func (b *Booking) EventType() string        { return b.eventType }
func (b *Booking) GuestsCount() *int32      { return b.guestsCount }
func (b *Booking) SpecialRequests() *string { return b.specialRequests }
func (b *Booking) TotalPrice() int32        { return b.totalPrice }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) DepositPaid() bool        { return b.depositPaid }
func (b *Booking) FullPaymentPaid() bool    { return b.fullPaymentPaid }
func (b *Booking) DepositAmount() float64   { return b.depositAmount }
func (b *Booking) PaidAmount() float64      { return b.paidAmount }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
