package entity

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationInfo    NotificationKind = "info"
	NotificationWarning NotificationKind = "warning"
	NotificationError   NotificationKind = "error"
)

// Notification is a shared admin-inbox entry. AmountCents and Phone are
// first-class optional fields so downstream consumers never have to
// parse them back out of the message text.
type Notification struct {
	BaseSimple
	Title       string           `db:"title"`
	Message     string           `db:"message"`
	Kind        NotificationKind `db:"kind"`
	AmountCents *int64           `db:"amount_cents"`
	Phone       *string          `db:"phone"`
	IsRead      bool             `db:"is_read"`
}
