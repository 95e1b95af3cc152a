package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"flashbooth/internal/usecase/queries"
)

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Features    []string  `json:"features"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	var resp ProductResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromProductList(views []*queries.ProductView) []*ProductResponse {
	res := make([]*ProductResponse, len(views))
	for i, v := range views {
		res[i] = FromProductView(v)
	}
	return res
}
