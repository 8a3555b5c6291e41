package entity

type UserRole string

const (
	RoleCollaborator UserRole = "collaborator"
	RoleAdmin        UserRole = "admin"
)

// User is a staff account: every collaborator can sign in, and admins
// additionally manage the back office. CommissionRate is the percentage
// of service revenue paid out; it is read at calculation time, not
// snapshotted into sales.
type User struct {
	Base
	Name           string   `db:"name"`
	Email          string   `db:"email"`
	PasswordHash   string   `db:"password"`
	Role           UserRole `db:"role"`
	Specialty      string   `db:"specialty"`
	CommissionRate float64  `db:"commission_rate"`
	IsActive       bool     `db:"is_active"`
}
