package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingName   = errors.New("product name is required")
	ErrNegativePrice = errors.New("product price cannot be negative")
)

// Product is a rentable photobooth model. Price covers the canonical 4-hour
// rental; the booking domain scales it by duration.
type Product struct {
	id          uuid.UUID
	name        string
	description string
	imageURL    string
	price       float64
	category    string
	features    []string
	available   bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(name, description, imageURL string, price float64, category string, features []string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}

	return &Product{
		id:          uuid.New(),
		name:        name,
		description: description,
		imageURL:    imageURL,
		price:       price,
		category:    category,
		features:    features,
		available:   true,
	}, nil
}

func ReconstructProduct(id uuid.UUID, name, description, imageURL string, price float64, category string, features []string, available bool, createdAt, updatedAt time.Time) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		imageURL:    imageURL,
		price:       price,
		category:    category,
		features:    features,
		available:   available,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Product) SetAvailable(available bool) { p.available = available }

func (p *Product) ID() uuid.UUID        { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) ImageURL() string     { return p.imageURL }
func (p *Product) Price() float64       { return p.price }
func (p *Product) Category() string     { return p.category }
func (p *Product) Features() []string   { return p.features }
func (p *Product) Available() bool      { return p.available }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }
