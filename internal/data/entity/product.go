package entity

// Product is a retail item. Quantity is decremented by one per unit
// consumed when a sale is finalized.
type Product struct {
	Base
	Name       string `db:"name"`
	PriceCents int64  `db:"price_cents"`
	Quantity   int    `db:"quantity"`
}
