package request

type CreateCollaboratorRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=100"`
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,min=6"`
	Specialty      string  `json:"specialty" validate:"omitempty,max=100"`
	CommissionRate float64 `json:"commission_rate" validate:"min=0,max=100"`
}

// UpdateCollaboratorRequest leaves the password unchanged when empty.
type UpdateCollaboratorRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=100"`
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"omitempty,min=6"`
	Specialty      string  `json:"specialty" validate:"omitempty,max=100"`
	CommissionRate float64 `json:"commission_rate" validate:"min=0,max=100"`
	IsActive       *bool   `json:"is_active,omitempty"`
}
