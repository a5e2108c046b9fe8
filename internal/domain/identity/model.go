package identity

import "time"

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// User is a registered demo account. There is no credential storage; the
// register endpoint only records who is using the system.
type User struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
