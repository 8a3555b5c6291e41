package request

type CustomerRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Phone string `json:"phone" validate:"omitempty,min=8,max=20"`
	Email string `json:"email" validate:"omitempty,email"`
}
