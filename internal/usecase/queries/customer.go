package queries

import (
	"context"
	"strconv"

	"flashbooth/internal/infra"
	"flashbooth/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCustomerNotFound = errs.New("customer not found")

type CustomerQueries interface {
	List(ctx context.Context) ([]*CustomerListItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	// ExportRows returns the CSV export rows, header included.
	ExportRows(ctx context.Context) ([][]string, error)
}

type CustomerReadStore interface {
	FindAll(ctx context.Context) ([]*CustomerListItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{readStore: readStore}
}

func (q *customerQueriesImpl) List(ctx context.Context) ([]*CustomerListItem, error) {
	return q.readStore.FindAll(ctx)
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return view, nil
}

var customerExportHeader = []string{"First name", "Last name", "Email", "Phone", "Address", "Bookings", "Registered"}

func (q *customerQueriesImpl) ExportRows(ctx context.Context) ([][]string, error) {
	customers, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(customers)+1)
	rows = append(rows, customerExportHeader)
	for _, c := range customers {
		rows = append(rows, []string{
			c.FirstName,
			c.LastName,
			c.Email,
			c.Phone,
			c.Address,
			strconv.FormatInt(c.BookingsCount, 10),
			c.CreatedAt.Format("2006-01-02"),
		})
	}
	return rows, nil
}
