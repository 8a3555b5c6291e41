package entity

import (
	"github.com/google/uuid"
)

// Sale is the immutable record written when an appointment is
// finalized. It is only ever removed by an explicit reversal, which
// also reopens the appointment as confirmed.
type Sale struct {
	BaseSimple
	AppointmentID      uuid.UUID   `db:"appointment_id"`
	CollaboratorID     uuid.UUID   `db:"collaborator_id"`
	ProductIDs         []uuid.UUID `db:"product_ids"`
	ServiceValueCents  int64       `db:"service_value_cents"`
	ProductsValueCents int64       `db:"products_value_cents"`
	TotalValueCents    int64       `db:"total_value_cents"`
	DiscountValueCents int64       `db:"discount_value_cents"`
	DiscountPercent    float64     `db:"discount_percent"`
	FinalValueCents    int64       `db:"final_value_cents"`
	PaymentMethod      string      `db:"payment_method"`
}
