package request

// CheckoutPreviewRequest drives the totals preview. Discount is either
// flat cents ("value") or a percentage of the subtotal ("percent",
// fractions allowed). ServiceValueCents lets the operator price the
// service at the counter; when absent the appointment's snapshot is
// used, which is the only source of a price for public bookings.
type CheckoutPreviewRequest struct {
	AppointmentID     string   `json:"appointment_id" validate:"required,uuid4"`
	ServiceValueCents *int64   `json:"service_value_cents" validate:"omitempty,min=0"`
	ProductIDs        []string `json:"product_ids" validate:"omitempty,dive,uuid4"`
	Discount          float64  `json:"discount" validate:"min=0"`
	DiscountType      string   `json:"discount_type" validate:"omitempty,oneof=value percent"`
}

type FinalizeRequest struct {
	CheckoutPreviewRequest
	PaymentMethod string `json:"payment_method" validate:"required,oneof=pix cash credit debit"`
}
