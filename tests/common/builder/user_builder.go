//go:build unit || integration

package builder

import (
	"flashbooth/internal/domain/user"
	"flashbooth/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email        string
	PasswordHash string
	FullName     *string
	Role         string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	fullName := "Test Staff"
	return &UserBuilder{
		Email:        "staff@example.com",
		PasswordHash: "hashed_password",
		FullName:     &fullName,
		Role:         "admin",
		IsActive:     true,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, u.FullName, role), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
