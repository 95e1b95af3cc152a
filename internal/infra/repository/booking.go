package repository

import (
	"context"
	"time"

	"flashbooth/internal/domain/booking"
	"flashbooth/internal/infra"
	"flashbooth/internal/infra/db"
	"flashbooth/internal/pkg/pgconv"
	"flashbooth/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) commands.BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (
			id, customer_id, product_id, event_date, event_time, duration,
			address, event_type, guests_count, special_requests,
			total_price, status, deposit_paid, full_payment_paid,
			deposit_amount, paid_amount
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		b.ID(), b.CustomerID(), b.ProductID(),
		b.EventDate(), b.EventTime(), int32(b.Duration()),
		b.Address(), b.EventType(), b.GuestsCount(), b.SpecialRequests(),
		b.TotalPrice(), b.Status().String(),
		b.DepositPaid(), b.FullPaymentPaid(),
		b.DepositAmount(), b.PaidAmount(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, customer_id, product_id, event_date, event_time, duration,
		       address, event_type, guests_count, special_requests,
		       total_price, status, deposit_paid, full_payment_paid,
		       deposit_amount, paid_amount, created_at, updated_at
		FROM bookings
		WHERE id = $1`

	var (
		bookingID, customerID, productID uuid.UUID
		eventDate                        pgtype.Date
		eventTime                        string
		duration                         int32
		address, eventType               string
		guestsCount                      pgtype.Int4
		specialRequests                  pgtype.Text
		totalPrice                       int32
		status                           string
		depositPaid, fullPaymentPaid     bool
		depositAmount, paidAmount        float64
		createdAt, updatedAt             time.Time
	)

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&bookingID, &customerID, &productID,
		&eventDate, &eventTime, &duration,
		&address, &eventType, &guestsCount, &specialRequests,
		&totalPrice, &status, &depositPaid, &fullPaymentPaid,
		&depositAmount, &paidAmount, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	return booking.ReconstructBooking(
		bookingID, customerID, productID,
		pgconv.DateFromPgtype(eventDate), eventTime, booking.Duration(duration),
		address, eventType,
		pgconv.Int32PtrFromPgtype(guestsCount), pgconv.StringPtrFromPgtype(specialRequests),
		totalPrice, booking.Status(status),
		depositPaid, fullPaymentPaid, depositAmount, paidAmount,
		createdAt, updatedAt,
	), nil
}

// Update persists the mutable back-office fields: status and payment flags.
// Submission-time fields never change after insert.
func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	const query = `
		UPDATE bookings SET
			status            = $2,
			deposit_paid      = $3,
			full_payment_paid = $4,
			deposit_amount    = $5,
			paid_amount       = $6,
			updated_at        = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		b.ID(), b.Status().String(),
		b.DepositPaid(), b.FullPaymentPaid(),
		b.DepositAmount(), b.PaidAmount(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
