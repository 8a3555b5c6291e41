package request

// PublicBookingRequest comes from the unauthenticated booking page.
// The service is free text there; itemized lines are an admin feature.
type PublicBookingRequest struct {
	ClientName     string `json:"client_name" validate:"required,min=2,max=100"`
	Phone          string `json:"phone" validate:"required,min=8,max=20"`
	Service        string `json:"service" validate:"required,max=200"`
	CollaboratorID string `json:"collaborator_id" validate:"required,uuid4"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	Time           string `json:"time" validate:"required,datetime=15:04"`
}

// AdminAppointmentRequest books on behalf of a registered customer with
// catalog services; price and duration are snapshotted at booking time.
type AdminAppointmentRequest struct {
	CustomerID     string   `json:"customer_id" validate:"required,uuid4"`
	CollaboratorID string   `json:"collaborator_id" validate:"required,uuid4"`
	ServiceIDs     []string `json:"service_ids" validate:"required,min=1,dive,uuid4"`
	Date           string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time           string   `json:"time" validate:"required,datetime=15:04"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed rejected"`
}
