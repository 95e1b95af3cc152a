package request

type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	FullName *string `json:"full_name,omitempty"`
	Role     string  `json:"role" binding:"required,oneof=staff admin"`
}

type SetUserActiveRequest struct {
	Active bool `json:"active"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Password *string `json:"password,omitempty"`
}
