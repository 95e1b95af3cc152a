package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingName  = errors.New("customer name is required")
	ErrMissingEmail = errors.New("customer email is required")
)

// Customer is a booking contact. Email is the natural key: one row per email,
// contact details overwritten on every new booking with that email.
type Customer struct {
	id        uuid.UUID
	firstName string
	lastName  string
	email     string
	phone     string
	address   string
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(firstName, lastName, email, phone, address string) (*Customer, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)
	if firstName == "" || lastName == "" {
		return nil, ErrMissingName
	}
	if email == "" {
		return nil, ErrMissingEmail
	}

	return &Customer{
		id:        uuid.New(),
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     strings.TrimSpace(phone),
		address:   strings.TrimSpace(address),
	}, nil
}

func ReconstructCustomer(id uuid.UUID, firstName, lastName, email, phone, address string, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
		address:   address,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) FirstName() string    { return c.firstName }
func (c *Customer) LastName() string     { return c.lastName }
func (c *Customer) FullName() string     { return c.firstName + " " + c.lastName }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) Address() string      { return c.address }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }
