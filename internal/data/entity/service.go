package entity

// Service is a catalog entry consulted when building appointment line
// items. PriceCents and DurationMin are snapshotted into the
// appointment at booking time.
type Service struct {
	Base
	Name        string `db:"name"`
	PriceCents  int64  `db:"price_cents"`
	DurationMin int    `db:"duration_min"`
}
