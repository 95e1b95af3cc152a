package request

type CreateContactMessageRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required"`
	Phone   *string `json:"phone,omitempty"`
	Message string  `json:"message" binding:"required"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new read replied archived"`
}
