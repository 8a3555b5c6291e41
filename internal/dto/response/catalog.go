package response

import (
	"salon-booking/internal/data/entity"
	"salon-booking/pkg/utils"
)

type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"price_cents"`
	Price       string `json:"price"`
	DurationMin int    `json:"duration_min"`
}

type ProductResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Price      string `json:"price"`
	Quantity   int    `json:"quantity"`
	LowStock   bool   `json:"low_stock"`
}

// LowStockThreshold flags products that need reordering.
const LowStockThreshold = 5

type StockSummaryResponse struct {
	Products      []ProductResponse `json:"products"`
	LowStockCount int               `json:"low_stock_count"`
}

func ServiceToResponse(s *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		PriceCents:  s.PriceCents,
		Price:       utils.FormatBRL(s.PriceCents),
		DurationMin: s.DurationMin,
	}
}

func ProductToResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID.String(),
		Name:       p.Name,
		PriceCents: p.PriceCents,
		Price:      utils.FormatBRL(p.PriceCents),
		Quantity:   p.Quantity,
		LowStock:   p.Quantity <= LowStockThreshold,
	}
}
