package response

import (
	"fmt"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/pkg/utils"
)

type ServiceLineResponse struct {
	Name        string `json:"name"`
	PriceCents  int64  `json:"price_cents"`
	Price       string `json:"price"`
	DurationMin int    `json:"duration_min"`
}

type AppointmentResponse struct {
	ID                string                   `json:"id"`
	CustomerID        *string                  `json:"customer_id,omitempty"`
	ClientName        string                   `json:"client_name"`
	CollaboratorID    string                   `json:"collaborator_id"`
	CollaboratorName  string                   `json:"collaborator_name,omitempty"`
	Service           string                   `json:"service,omitempty"`
	Services          []ServiceLineResponse    `json:"services,omitempty"`
	Date              string                   `json:"date"`
	Time              string                   `json:"time"`
	EndTime           string                   `json:"end_time"`
	DurationMin       int                      `json:"duration_min"`
	ServiceValueCents int64                    `json:"service_value_cents"`
	ServiceValue      string                   `json:"service_value"`
	Status            entity.AppointmentStatus `json:"status"`
	ConfirmedWhatsApp bool                     `json:"confirmed_whatsapp"`
	CreatedAt         time.Time                `json:"created_at"`
}

// ScheduleSlot is one cell of the day grid.
type ScheduleSlot struct {
	Time        string               `json:"time"`
	State       string               `json:"state"`
	Appointment *AppointmentResponse `json:"appointment,omitempty"`
}

type ScheduleResponse struct {
	CollaboratorID string         `json:"collaborator_id"`
	Date           string         `json:"date"`
	Slots          []ScheduleSlot `json:"slots"`
}

type WhatsAppLinkResponse struct {
	AppointmentID string `json:"appointment_id"`
	Link          string `json:"link"`
}

func formatMinutes(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

func AppointmentToResponse(a *entity.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:                a.ID.String(),
		ClientName:        a.ClientName,
		CollaboratorID:    a.CollaboratorID.String(),
		Service:           a.Service,
		Date:              a.Date,
		Time:              a.Time,
		EndTime:           formatMinutes(a.EndMin()),
		DurationMin:       a.DurationMin,
		ServiceValueCents: a.ServiceValueCents,
		ServiceValue:      utils.FormatBRL(a.ServiceValueCents),
		Status:            a.Status,
		ConfirmedWhatsApp: a.ConfirmedWhatsApp,
		CreatedAt:         a.CreatedAt,
	}

	if a.CustomerID != nil {
		id := a.CustomerID.String()
		resp.CustomerID = &id
	}

	for _, line := range a.Services {
		resp.Services = append(resp.Services, ServiceLineResponse{
			Name:        line.Name,
			PriceCents:  line.PriceCents,
			Price:       utils.FormatBRL(line.PriceCents),
			DurationMin: line.DurationMin,
		})
	}

	return resp
}
