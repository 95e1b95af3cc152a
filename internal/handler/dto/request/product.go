package request

import (
	"flashbooth/internal/domain/product"
)

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Category    string   `json:"category"`
	Features    []string `json:"features"`
}

func (r CreateProductRequest) ToDomain() (*product.Product, error) {
	return product.NewProduct(r.Name, r.Description, r.ImageURL, r.Price, r.Category, r.Features)
}

type UpdateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Category    string   `json:"category"`
	Features    []string `json:"features"`
	Available   bool     `json:"available"`
}

type SetProductAvailabilityRequest struct {
	Available bool `json:"available"`
}
