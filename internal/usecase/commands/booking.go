package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"flashbooth/internal/domain/booking"
	"flashbooth/internal/domain/customer"
	"flashbooth/internal/domain/product"
	reqdto "flashbooth/internal/handler/dto/request"
	"flashbooth/internal/infra"
	"flashbooth/internal/infra/db"
	"flashbooth/internal/pkg/errs"
	"flashbooth/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrProductUnavailable      = errs.New("product no longer available")
	ErrSlotTaken               = errs.New("slot already booked")
	ErrSlotBlocked             = errs.New("date blocked for this product")
	ErrEmailInUse              = errs.New("email already in use")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidStatusChange     = errs.New("status change not allowed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ValidationError carries the per-field messages of an invalid booking form.
type ValidationError struct {
	Fields booking.FieldErrors
}

func (e *ValidationError) Error() string {
	return "booking form validation failed"
}

type CustomerRepository interface {
	// Upsert inserts the customer or, when the email already exists,
	// overwrites name/phone/address on the existing row. Returns the id of
	// the row that ends up holding the email.
	Upsert(ctx context.Context, tx db.DBTX, c *customer.Customer) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error
}

type ProductSnapshotRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
}

type AvailabilityChecker interface {
	IsBlocked(ctx context.Context, productID uuid.UUID, date time.Time) (bool, error)
}

type BookingCommands interface {
	Submit(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.BookingView, error)
	UpdatePayment(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingPaymentRequest) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	customerRepo   CustomerRepository
	productRepo    ProductSnapshotRepository
	availability   AvailabilityChecker
	bookingQueries queries.BookingQueries
	pool           *pgxpool.Pool
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	customerRepo CustomerRepository,
	productRepo ProductSnapshotRepository,
	availability AvailabilityChecker,
	bookingQueries queries.BookingQueries,
	pool *pgxpool.Pool,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		customerRepo:   customerRepo,
		productRepo:    productRepo,
		availability:   availability,
		bookingQueries: bookingQueries,
		pool:           pool,
	}
}

// Submit runs the public booking workflow: validate the whole form, resolve
// the product, upsert the customer keyed by email, insert the booking. The
// customer upsert and booking insert share one transaction; a failed insert
// therefore does not leave a half-updated customer behind. Resubmitting the
// same form creates a second booking on purpose; only the slot constraint
// dedups.
func (b *bookingCommandsImpl) Submit(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	if fieldErrs := req.ValidateAll(); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, ErrProductUnavailable
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, errs.Mark(err, booking.ErrInvalidEventDate)
	}

	duration, err := booking.NewDuration(req.Duration)
	if err != nil {
		return nil, err
	}

	selectedProduct, err := b.resolveProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	blocked, err := b.availability.IsBlocked(ctx, productID, eventDate)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if blocked {
		return nil, ErrSlotBlocked
	}

	contact, err := customer.NewCustomer(req.FirstName, req.LastName, req.Email, req.Phone, req.Address)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	bookingID, err := b.submitTransaction(ctx, req, contact, selectedProduct, eventDate, duration)
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the full view for the confirmation step.
	view, err := b.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (b *bookingCommandsImpl) submitTransaction(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	contact *customer.Customer,
	selectedProduct *product.Product,
	eventDate time.Time,
	duration booking.Duration,
) (uuid.UUID, error) {
	tx, err := b.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	customerID, err := b.customerRepo.Upsert(ctx, tx, contact)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailInUse
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	newBooking, err := booking.NewBooking(
		customerID,
		selectedProduct.ID(),
		eventDate,
		req.EventTime,
		duration,
		req.Address,
		req.EventType,
		req.GuestsCount,
		req.SpecialRequests,
		selectedProduct.Price(),
	)
	if err != nil {
		return uuid.Nil, err
	}

	bookingID, err := b.bookingRepo.Create(ctx, tx, newBooking)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return uuid.Nil, ErrSlotTaken
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return uuid.Nil, ErrProductUnavailable
		default:
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return uuid.Nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	return bookingID, nil
}

func (b *bookingCommandsImpl) resolveProduct(ctx context.Context, productID uuid.UUID) (*product.Product, error) {
	p, err := b.productRepo.FindByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductUnavailable
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !p.Available() {
		return nil, ErrProductUnavailable
	}
	return p, nil
}

func (b *bookingCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.BookingView, error) {
	next, err := booking.NewStatus(status)
	if err != nil {
		return nil, ErrInvalidStatusChange
	}

	entity, err := b.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := entity.TransitionTo(next); err != nil {
		return nil, errs.Mark(err, ErrInvalidStatusChange)
	}

	if err := b.bookingRepo.Update(ctx, b.pool, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return b.bookingQueries.GetByID(ctx, id)
}

func (b *bookingCommandsImpl) UpdatePayment(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingPaymentRequest) (*queries.BookingView, error) {
	entity, err := b.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if req.DepositPaid != nil {
		entity.SetDepositPaid(*req.DepositPaid)
	}
	if req.FullPaymentPaid != nil {
		entity.SetFullPaymentPaid(*req.FullPaymentPaid)
	}
	if req.DepositAmount != nil {
		if err := entity.SetDepositAmount(*req.DepositAmount); err != nil {
			return nil, err
		}
	}
	if req.PaidAmount != nil {
		if err := entity.SetPaidAmount(*req.PaidAmount); err != nil {
			return nil, err
		}
	}

	if err := b.bookingRepo.Update(ctx, b.pool, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return b.bookingQueries.GetByID(ctx, id)
}
