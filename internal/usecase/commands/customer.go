package commands

import (
	"context"

	"github.com/google/uuid"

	"flashbooth/internal/infra"
	"flashbooth/internal/pkg/errs"
)

var (
	ErrCustomerNotFound    = errs.New("customer not found")
	ErrCustomerHasBookings = errs.New("customer has bookings and cannot be deleted")
)

type CustomerCommands interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerCommandsImpl struct {
	customerRepo CustomerRepository
}

func NewCustomerCommands(customerRepo CustomerRepository) CustomerCommands {
	return &customerCommandsImpl{customerRepo: customerRepo}
}

// Delete refuses while bookings still reference the customer; the booking
// history has to be resolved first.
func (c *customerCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.customerRepo.Delete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrCustomerNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrCustomerHasBookings
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}
