package response

import (
	"salon-booking/internal/data/entity"
)

type CollaboratorResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Specialty      string  `json:"specialty,omitempty"`
	CommissionRate float64 `json:"commission_rate"`
	IsActive       bool    `json:"is_active"`
}

// PublicCollaboratorResponse is the trimmed listing served to the
// booking page; it carries no contact or payout details.
type PublicCollaboratorResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty,omitempty"`
}

func CollaboratorToResponse(u *entity.User) CollaboratorResponse {
	return CollaboratorResponse{
		ID:             u.ID.String(),
		Name:           u.Name,
		Email:          u.Email,
		Specialty:      u.Specialty,
		CommissionRate: u.CommissionRate,
		IsActive:       u.IsActive,
	}
}

func CollaboratorToPublicResponse(u *entity.User) PublicCollaboratorResponse {
	return PublicCollaboratorResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Specialty: u.Specialty,
	}
}
