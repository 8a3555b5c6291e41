package entity

import (
	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusRejected  AppointmentStatus = "rejected"
	AppointmentStatusFinalized AppointmentStatus = "finalized"
)

// DefaultDurationMin applies when an appointment carries no duration.
const DefaultDurationMin = 60

// ServiceLine is one requested service on an appointment, snapshotted
// from the catalog at booking time.
type ServiceLine struct {
	Name        string `json:"name"`
	PriceCents  int64  `json:"price_cents"`
	DurationMin int    `json:"duration_min"`
}

// Appointment occupies [StartMin, StartMin+DurationMin) on a
// collaborator's day. Date is "2006-01-02", Time is "15:04"; StartMin
// is the start expressed in minutes since midnight and is what the
// overlap checks work on. Public bookings carry only the legacy
// Service descriptor; admin bookings carry itemized Services.
type Appointment struct {
	Base
	CustomerID        *uuid.UUID        `db:"customer_id"`
	ClientName        string            `db:"client_name"`
	ClientPhone       string            `db:"client_phone"`
	CollaboratorID    uuid.UUID         `db:"collaborator_id"`
	Service           string            `db:"service"`
	Services          []ServiceLine     `db:"services_list"`
	Date              string            `db:"date"`
	Time              string            `db:"time"`
	DurationMin       int               `db:"duration_min"`
	StartMin          int               `db:"start_min"`
	ServiceValueCents int64             `db:"service_value_cents"`
	Status            AppointmentStatus `db:"status"`
	ConfirmedWhatsApp bool              `db:"confirmed_whatsapp"`
}

// EndMin is the exclusive end of the occupied interval.
func (a *Appointment) EndMin() int {
	d := a.DurationMin
	if d <= 0 {
		d = DefaultDurationMin
	}
	return a.StartMin + d
}
