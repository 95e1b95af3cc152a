package commands

import (
	"context"
	"strings"

	"github.com/google/uuid"

	reqdto "flashbooth/internal/handler/dto/request"
	"flashbooth/internal/infra"
	"flashbooth/internal/pkg/errs"
	"flashbooth/internal/pkg/validate"
	"flashbooth/internal/usecase/queries"
)

var (
	ErrMessageNotFound  = errs.New("contact message not found")
	ErrSuspiciousSender = errs.New("sender email rejected")
)

// Contact message lifecycle in the back office.
const (
	MessageStatusNew      = "new"
	MessageStatusRead     = "read"
	MessageStatusReplied  = "replied"
	MessageStatusArchived = "archived"
)

type ContactRepository interface {
	Insert(ctx context.Context, id uuid.UUID, name, email string, phone *string, message string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContactCommands interface {
	Submit(ctx context.Context, req reqdto.CreateContactMessageRequest) (*queries.ContactMessageView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactCommandsImpl struct {
	contactRepo    ContactRepository
	contactQueries queries.ContactQueries
}

func NewContactCommands(contactRepo ContactRepository, contactQueries queries.ContactQueries) ContactCommands {
	return &contactCommandsImpl{
		contactRepo:    contactRepo,
		contactQueries: contactQueries,
	}
}

// Submit stores a public contact-form message. The sender address goes
// through the strict email check because this form is the main spam target.
func (c *contactCommandsImpl) Submit(ctx context.Context, req reqdto.CreateContactMessageRequest) (*queries.ContactMessageView, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if err := validate.StrictEmail(email); err != nil {
		return nil, errs.Mark(err, ErrSuspiciousSender)
	}

	var phone *string
	if req.Phone != nil && strings.TrimSpace(*req.Phone) != "" {
		normalized, err := validate.FrenchPhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		phone = &normalized
	}

	id := uuid.New()
	if err := c.contactRepo.Insert(ctx, id, strings.TrimSpace(req.Name), email, phone, strings.TrimSpace(req.Message)); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.contactQueries.GetByID(ctx, id)
}

func (c *contactCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if err := c.contactRepo.UpdateStatus(ctx, id, status); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrMessageNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *contactCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.contactRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrMessageNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
