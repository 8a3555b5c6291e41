package response

import (
	"salon-booking/pkg/utils"
)

type ReportTotalsResponse struct {
	RevenueCents    int64  `json:"revenue_cents"`
	CommissionCents int64  `json:"commission_cents"`
	MarginCents     int64  `json:"margin_cents"`
	Revenue         string `json:"revenue"`
	Commission      string `json:"commission"`
	Margin          string `json:"margin"`
	SaleCount       int    `json:"sale_count"`
}

type SalesReportResponse struct {
	From   string               `json:"from"`
	To     string               `json:"to"`
	Sales  []*SaleResponse      `json:"sales"`
	Totals ReportTotalsResponse `json:"totals"`
}

func NewReportTotals(revenue, commission, margin int64, count int) ReportTotalsResponse {
	return ReportTotalsResponse{
		RevenueCents:    revenue,
		CommissionCents: commission,
		MarginCents:     margin,
		Revenue:         utils.FormatBRL(revenue),
		Commission:      utils.FormatBRL(commission),
		Margin:          utils.FormatBRL(margin),
		SaleCount:       count,
	}
}
