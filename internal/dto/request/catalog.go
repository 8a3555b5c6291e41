package request

type ServiceRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	PriceCents  int64  `json:"price_cents" validate:"min=0"`
	DurationMin int    `json:"duration_min" validate:"required,min=5,max=480"`
}

type ProductRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	PriceCents int64  `json:"price_cents" validate:"min=0"`
	Quantity   int    `json:"quantity" validate:"min=0"`
}
