package request

type CreateAvailabilityBlockRequest struct {
	ProductID *string `json:"product_id,omitempty"`
	Date      string  `json:"date" binding:"required"`
	Reason    *string `json:"reason,omitempty"`
}
