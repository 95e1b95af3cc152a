package commands

import (
	"context"

	"github.com/google/uuid"

	"flashbooth/internal/domain/user"
	reqdto "flashbooth/internal/handler/dto/request"
	"flashbooth/internal/infra"
	"flashbooth/internal/pkg/errs"
	"flashbooth/internal/pkg/password"
	"flashbooth/internal/usecase/queries"
)

var (
	ErrEmailTaken   = errs.New("email already registered")
	ErrWeakPassword = errs.New("password does not meet strength requirements")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	UpdateProfile(ctx context.Context, id uuid.UUID, fullName *string, passwordHash *string) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type UserCommands interface {
	Create(ctx context.Context, req reqdto.CreateUserRequest) (*queries.UserView, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	UpdateProfile(ctx context.Context, id uuid.UUID, req reqdto.UpdateProfileRequest) error
}

type userCommandsImpl struct {
	userRepo UserRepository
}

func NewUserCommands(userRepo UserRepository) UserCommands {
	return &userCommandsImpl{
		userRepo: userRepo,
	}
}

func (u *userCommandsImpl) Create(ctx context.Context, req reqdto.CreateUserRequest) (*queries.UserView, error) {
	if err := password.Validate(req.Password); err != nil {
		return nil, errs.Mark(err, ErrWeakPassword)
	}

	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, err
	}

	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	account := user.NewUser(email, hash, req.FullName, role)

	if err := u.userRepo.Create(ctx, account); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &queries.UserView{
		ID:       account.ID(),
		Email:    account.Email().Value(),
		FullName: account.FullName(),
		Role:     account.Role().String(),
		IsActive: account.IsActive(),
	}, nil
}

func (u *userCommandsImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := u.userRepo.SetActive(ctx, id, active); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *userCommandsImpl) UpdateProfile(ctx context.Context, id uuid.UUID, req reqdto.UpdateProfileRequest) error {
	var passwordHash *string
	if req.Password != nil {
		if err := password.Validate(*req.Password); err != nil {
			return errs.Mark(err, ErrWeakPassword)
		}
		hash, err := password.HashPassword(*req.Password)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		passwordHash = &hash
	}

	if err := u.userRepo.UpdateProfile(ctx, id, req.FullName, passwordHash); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
