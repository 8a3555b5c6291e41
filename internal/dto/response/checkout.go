package response

import (
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/pkg/utils"
)

type TotalsResponse struct {
	ServiceValueCents  int64  `json:"service_value_cents"`
	ProductsValueCents int64  `json:"products_value_cents"`
	SubtotalCents      int64  `json:"subtotal_cents"`
	DiscountCents      int64  `json:"discount_cents"`
	FinalValueCents    int64  `json:"final_value_cents"`
	CommissionCents    int64  `json:"commission_cents"`
	MarginCents        int64  `json:"margin_cents"`
	FinalValue         string `json:"final_value"`
	Commission         string `json:"commission"`
	Margin             string `json:"margin"`
}

type SaleResponse struct {
	ID                 string    `json:"id"`
	AppointmentID      string    `json:"appointment_id"`
	CollaboratorID     string    `json:"collaborator_id"`
	CollaboratorName   string    `json:"collaborator_name,omitempty"`
	ProductIDs         []string  `json:"product_ids,omitempty"`
	ServiceValueCents  int64     `json:"service_value_cents"`
	ProductsValueCents int64     `json:"products_value_cents"`
	TotalValueCents    int64     `json:"total_value_cents"`
	DiscountValueCents int64     `json:"discount_value_cents"`
	DiscountPercent    float64   `json:"discount_percent"`
	FinalValueCents    int64     `json:"final_value_cents"`
	FinalValue         string    `json:"final_value"`
	PaymentMethod      string    `json:"payment_method"`
	CommissionCents    int64     `json:"commission_cents,omitempty"`
	MarginCents        int64     `json:"margin_cents,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func SaleToResponse(s *entity.Sale) *SaleResponse {
	resp := &SaleResponse{
		ID:                 s.ID.String(),
		AppointmentID:      s.AppointmentID.String(),
		CollaboratorID:     s.CollaboratorID.String(),
		ServiceValueCents:  s.ServiceValueCents,
		ProductsValueCents: s.ProductsValueCents,
		TotalValueCents:    s.TotalValueCents,
		DiscountValueCents: s.DiscountValueCents,
		DiscountPercent:    s.DiscountPercent,
		FinalValueCents:    s.FinalValueCents,
		FinalValue:         utils.FormatBRL(s.FinalValueCents),
		PaymentMethod:      s.PaymentMethod,
		CreatedAt:          s.CreatedAt,
	}

	for _, id := range s.ProductIDs {
		resp.ProductIDs = append(resp.ProductIDs, id.String())
	}

	return resp
}
