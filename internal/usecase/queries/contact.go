package queries

import (
	"context"

	"flashbooth/internal/infra"
	"flashbooth/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrMessageNotFound = errs.New("contact message not found")

type ContactQueries interface {
	List(ctx context.Context, status string) ([]*ContactMessageView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ContactMessageView, error)
}

type ContactReadStore interface {
	FindAll(ctx context.Context, status string) ([]*ContactMessageView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ContactMessageView, error)
}

type contactQueriesImpl struct {
	readStore ContactReadStore
}

func NewContactQueries(readStore ContactReadStore) ContactQueries {
	return &contactQueriesImpl{readStore: readStore}
}

func (q *contactQueriesImpl) List(ctx context.Context, status string) ([]*ContactMessageView, error) {
	return q.readStore.FindAll(ctx, status)
}

func (q *contactQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ContactMessageView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return view, nil
}
