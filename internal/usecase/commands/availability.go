package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	reqdto "flashbooth/internal/handler/dto/request"
	"flashbooth/internal/infra"
	"flashbooth/internal/pkg/errs"
	"flashbooth/internal/usecase/queries"
)

var (
	ErrBlockNotFound   = errs.New("availability block not found")
	ErrBlockExists     = errs.New("date already blocked")
	ErrInvalidBlockDay = errs.New("invalid block date")
)

type AvailabilityRepository interface {
	AvailabilityChecker
	Insert(ctx context.Context, id uuid.UUID, productID *uuid.UUID, date time.Time, reason *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AvailabilityCommands interface {
	Create(ctx context.Context, req reqdto.CreateAvailabilityBlockRequest) (*queries.AvailabilityBlockView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type availabilityCommandsImpl struct {
	availabilityRepo AvailabilityRepository
}

func NewAvailabilityCommands(availabilityRepo AvailabilityRepository) AvailabilityCommands {
	return &availabilityCommandsImpl{availabilityRepo: availabilityRepo}
}

// Create blocks a date. With a product id the block covers one booth; without
// it the block covers the whole fleet.
func (a *availabilityCommandsImpl) Create(ctx context.Context, req reqdto.CreateAvailabilityBlockRequest) (*queries.AvailabilityBlockView, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidBlockDay
	}

	var productID *uuid.UUID
	if req.ProductID != nil {
		parsed, err := uuid.Parse(*req.ProductID)
		if err != nil {
			return nil, ErrProductNotFound
		}
		productID = &parsed
	}

	id := uuid.New()
	if err := a.availabilityRepo.Insert(ctx, id, productID, date, req.Reason); err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrBlockExists
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrProductNotFound
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return &queries.AvailabilityBlockView{
		ID:        id,
		ProductID: productID,
		BlockDate: date.Format("2006-01-02"),
		Reason:    req.Reason,
	}, nil
}

func (a *availabilityCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := a.availabilityRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBlockNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
