package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a back-office account (admin or staff). Customers are not users;
// they exist only as booking contacts.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	fullName     *string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
}

func NewUser(email Email, passwordHash string, fullName *string, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		fullName:     fullName,
		role:         role,
		isActive:     true,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) FullName() *string     { return u.fullName }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
